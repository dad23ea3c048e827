package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/ports"
)

type recordingService struct {
	mu        sync.Mutex
	processed []ports.HealthReportInput
	done      chan struct{}
}

func newRecordingService(expected int) *recordingService {
	return &recordingService{done: make(chan struct{}, expected)}
}

func (s *recordingService) Process(_ context.Context, in ports.HealthReportInput) error {
	s.mu.Lock()
	s.processed = append(s.processed, in)
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *recordingService) List(context.Context, string) ([]domain.HealthRecord, error) {
	return nil, nil
}

func (s *recordingService) Get(context.Context, string) (*domain.HealthRecord, error) {
	return nil, nil
}

func waitFor(t *testing.T, svc *recordingService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-svc.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for report %d of %d", i+1, n)
		}
	}
}

func TestDispatcher_ProcessesEnqueuedReports(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := newRecordingService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	for _, id := range []string{"pat_a", "pat_b", "pat_c"} {
		if err := d.Enqueue(ports.HealthReportInput{PatientID: id}); err != nil {
			t.Fatalf("Enqueue(%s) returned error: %v", id, err)
		}
	}
	waitFor(t, svc, 3)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	seen := make(map[string]bool)
	for _, in := range svc.processed {
		seen[in.PatientID] = true
	}
	for _, id := range []string{"pat_a", "pat_b", "pat_c"} {
		if !seen[id] {
			t.Fatalf("report for %s was never processed", id)
		}
	}
}

func TestDispatcher_ShardIsStablePerPatient(t *testing.T) {
	d := NewDispatcher(8, nil, zerolog.Nop())

	first := d.shardIndex("pat_42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("pat_42"); got != first {
			t.Fatalf("shard index changed: %d vs %d", first, got)
		}
	}
}

func TestDispatcher_EnqueueShedsWhenBufferFull(t *testing.T) {
	// workers never started, so the single shard's buffer fills up
	d := NewDispatcher(1, nil, zerolog.Nop())

	for i := 0; i < channelBuffer; i++ {
		if err := d.Enqueue(ports.HealthReportInput{PatientID: "pat_1"}); err != nil {
			t.Fatalf("Enqueue %d returned error: %v", i, err)
		}
	}

	if err := d.Enqueue(ports.HealthReportInput{PatientID: "pat_1"}); err != domain.ErrQueueFull {
		t.Fatalf("expected ErrQueueFull on full buffer, got %v", err)
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
