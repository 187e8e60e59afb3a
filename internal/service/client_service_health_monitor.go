package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/cidr-viewer/internal/adapter"
	"github.com/MKhiriev/cidr-viewer/models"
)

// DefaultHealthInterval is the polling period used when Start is given none.
const DefaultHealthInterval = 5 * time.Second

// HealthChecker is the part of adapter.ServerAdapter the monitor needs.
type HealthChecker interface {
	HealthCheck(ctx context.Context, opts ...adapter.CallOption) (adapter.Payload, error)
}

type healthMonitor struct {
	checker HealthChecker
	now     func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHealthMonitor creates a HealthMonitor polling checker. The monitor is
// idle until Start is called.
func NewHealthMonitor(checker HealthChecker) HealthMonitor {
	return &healthMonitor{checker: checker, now: time.Now}
}

// Start implements HealthMonitor.
func (m *healthMonitor) Start(ctx context.Context, interval time.Duration, onChange func(HealthStatus)) {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// stop and install under one lock, so concurrent Starts leave exactly
	// one loop running
	m.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		var last *HealthStatus
		observe := func() {
			status := m.check(jobCtx, interval)
			if jobCtx.Err() != nil {
				return
			}
			if last == nil || last.Healthy != status.Healthy {
				if onChange != nil {
					onChange(status)
				}
			}
			last = &status
		}

		observe()
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				observe()
			}
		}
	}()
}

// Stop implements HealthMonitor.
func (m *healthMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()
}

// stopLocked must be called with mu held. The polling goroutine never takes
// mu, so waiting for it here cannot deadlock.
func (m *healthMonitor) stopLocked() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.wg.Wait()
}

// check bounds a single request by the polling interval so that a hanging API
// never delays the next tick.
func (m *healthMonitor) check(ctx context.Context, interval time.Duration) HealthStatus {
	payload, err := m.checker.HealthCheck(ctx, adapter.WithTimeout(interval))

	healthy := false
	if err == nil {
		var resp models.HealthResponse
		resp, err = adapter.DecodeAs[models.HealthResponse](payload)
		healthy = err == nil && resp.Status == models.StatusHealthy
	}

	return HealthStatus{
		Healthy:   healthy,
		Response:  payload,
		Err:       err,
		CheckedAt: m.now(),
	}
}
