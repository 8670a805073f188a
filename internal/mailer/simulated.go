package mailer

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

const (
	defaultSimulatedDelay       = time.Second
	defaultSimulatedFailureRate = 0.05
)

// SimulatedSender emulates a transactional provider for environments
// without credentials: it sleeps to mimic network latency, then fails a
// configurable fraction of sends.
type SimulatedSender struct {
	delay       time.Duration
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// SimulatedOption configures the simulated sender.
type SimulatedOption func(*SimulatedSender)

// WithDelay overrides the artificial delivery latency.
func WithDelay(d time.Duration) SimulatedOption {
	return func(s *SimulatedSender) { s.delay = d }
}

// WithFailureRate overrides the failure probability. Values are clamped
// to [0, 1].
func WithFailureRate(rate float64) SimulatedOption {
	return func(s *SimulatedSender) { s.failureRate = min(max(rate, 0), 1) }
}

// WithRandSource supplies the random source so tests can force outcomes.
func WithRandSource(src rand.Source) SimulatedOption {
	return func(s *SimulatedSender) { s.rng = rand.New(src) }
}

// NewSimulatedSender creates a sender that delivers nothing. Defaults:
// ~1s latency and a 5% failure rate.
func NewSimulatedSender(opts ...SimulatedOption) *SimulatedSender {
	s := &SimulatedSender{
		delay:       defaultSimulatedDelay,
		failureRate: defaultSimulatedFailureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send sleeps for the configured delay, then succeeds unless the random
// draw selects failure. The context cancels the wait.
func (s *SimulatedSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	draw := s.rng.Float64()
	s.mu.Unlock()

	if draw < s.failureRate {
		return ErrSimulatedFailure
	}
	return nil
}
