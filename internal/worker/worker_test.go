package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spec-kit/supplychain-dashboard/internal/events"
	"github.com/spec-kit/supplychain-dashboard/internal/observability"
	"github.com/spec-kit/supplychain-dashboard/internal/service"
)

type countingPurger struct {
	calls atomic.Int64
	fail  bool
}

func (p *countingPurger) PurgeExpired(context.Context) (int64, error) {
	p.calls.Add(1)
	if p.fail {
		return 0, errors.New("db down")
	}
	return 2, nil
}

func TestSessionPurgerRunsUntilCancelled(t *testing.T) {
	for _, fail := range []bool{false, true} {
		p := &countingPurger{fail: fail}
		ctx, cancel := context.WithCancel(context.Background())
		done := StartSessionPurger(ctx, p, 5*time.Millisecond, nil)

		deadline := time.Now().Add(2 * time.Second)
		for p.calls.Load() < 2 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("purger did not stop")
		}
		if p.calls.Load() < 2 {
			t.Fatalf("expected repeated purges, got %d", p.calls.Load())
		}
	}
}

func TestSessionPurgerDisabled(t *testing.T) {
	select {
	case <-StartSessionPurger(context.Background(), nil, time.Second, nil):
	default:
		t.Fatalf("nil purger should return a closed channel")
	}
}

func TestStartNotificationWorker(t *testing.T) {
	if StartNotificationWorker(nil) {
		t.Fatalf("nil service must not start")
	}
	d := events.NewInMemoryDispatcher()
	m := observability.NewMetrics()
	if !StartNotificationWorker(service.NewNotificationService(d, nil, m)) {
		t.Fatalf("expected worker to start")
	}
	_ = d.Publish(context.Background(), events.NewEvent(events.EventLogout, events.Actor{}, nil))
	if m.Snapshot().EventsConsumed["logout"] != 1 {
		t.Fatalf("expected logout to be consumed")
	}
}
