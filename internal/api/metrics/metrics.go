// Package metrics defines and registers all custom Prometheus metrics for
// the hospital system API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hospital"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "ok", "not_found", "bad_password", "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations, by role.",
	},
	[]string{"role"},
)

// TokenRefreshesTotal counts refresh-token exchanges by outcome.
// Label:
//   - result: "ok", "invalid", "unknown_user", "stale"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh-token exchanges, labelled by result.",
	},
	[]string{"result"},
)

// ── Health-report intake metrics ──────────────────────────────────────────────

// ReportsProcessedTotal counts reports that completed processing successfully.
var ReportsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_processed_total",
		Help:      "Total number of health reports successfully persisted, by status.",
	},
	[]string{"status"},
)

// ReportsErrorsTotal counts reports that failed processing.
// Label:
//   - reason: short failure description (e.g. "invalid_report", "patient_not_found", "insert_failed")
var ReportsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_errors_total",
		Help:      "Total number of health reports that failed processing.",
	},
	[]string{"reason"},
)

// ReportsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new report, processed)
var ReportsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_dedup_total",
		Help:      "Total number of report deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ReportQueueDepth tracks the number of reports waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ReportQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "report_queue_depth",
		Help:      "Current number of reports pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ReportProcessingDuration measures end-to-end processing of one report.
var ReportProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_processing_duration_seconds",
		Help:      "Duration of report processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)
