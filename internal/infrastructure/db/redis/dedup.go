package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// ReportDedup provides idempotency checks for health-report intake.
// Key format: report:<patient_id>:<unix_timestamp>
type ReportDedup struct {
	client *redis.Client
}

// NewReportDedup creates a ReportDedup wrapping the given Redis client.
func NewReportDedup(client *redis.Client) *ReportDedup {
	return &ReportDedup{client: client}
}

// IsDuplicate reports whether this exact report has already been processed.
func (d *ReportDedup) IsDuplicate(ctx context.Context, patientID string, reportedAt time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(patientID, reportedAt)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this report has been processed (expires after dedupTTL).
func (d *ReportDedup) Mark(ctx context.Context, patientID string, reportedAt time.Time) error {
	return d.client.Set(ctx, d.key(patientID, reportedAt), "1", dedupTTL).Err()
}

func (d *ReportDedup) key(patientID string, reportedAt time.Time) string {
	return fmt.Sprintf("report:%s:%d", patientID, reportedAt.Unix())
}
