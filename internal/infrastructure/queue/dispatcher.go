package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/carehub/hospital-system/internal/api/metrics"
	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes health reports to a fixed set of workers using
// consistent hashing on the patient id, guaranteeing per-patient report
// ordering.
type Dispatcher struct {
	workers []chan ports.HealthReportInput
	service ports.HealthRecordService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.HealthRecordService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.HealthReportInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.HealthReportInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a report to the worker responsible for its patient. The
// call never blocks: when the worker's buffer is full it returns
// domain.ErrQueueFull and the caller sheds the request instead of stalling.
func (d *Dispatcher) Enqueue(report ports.HealthReportInput) error {
	i := d.shardIndex(report.PatientID)
	select {
	case d.workers[i] <- report:
	default:
		metrics.ReportsErrorsTotal.WithLabelValues("queue_full").Inc()
		return domain.ErrQueueFull
	}
	metrics.ReportQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	return nil
}

// shardIndex maps a patient id deterministically to a worker index.
func (d *Dispatcher) shardIndex(patientID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(patientID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.HealthReportInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case report, ok := <-ch:
			if !ok {
				return
			}
			metrics.ReportQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Process(ctx, report); err != nil {
				d.log.Error().Err(err).
					Str("patient_id", report.PatientID).
					Int("worker_id", id).
					Msg("report processing failed")
			}
		}
	}
}
