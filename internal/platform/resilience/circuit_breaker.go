package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

type BreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenProbes   int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenProbes:   2,
	}
}

// Breaker trips after FailureThreshold consecutive failures and rejects calls
// for OpenTimeout. It then lets HalfOpenProbes calls through; if they all
// succeed the breaker closes again, any failure reopens it.
type Breaker struct {
	mu sync.Mutex

	threshold int
	timeout   time.Duration
	probes    int

	state     CircuitState
	failures  int
	openedAt  time.Time
	inFlight  int
	successes int
	now       func() time.Time
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	defaults := DefaultBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenProbes < 1 {
		cfg.HalfOpenProbes = defaults.HalfOpenProbes
	}

	return &Breaker{
		threshold: cfg.FailureThreshold,
		timeout:   cfg.OpenTimeout,
		probes:    cfg.HalfOpenProbes,
		state:     CircuitStateClosed,
		now:       time.Now,
	}
}

// Do runs fn when the breaker admits it and records the outcome. Context
// cancellation by the caller is not held against the dependency.
func (b *Breaker) Do(fn func() error) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := fn()
	switch {
	case err == nil:
		b.recordSuccess()
	case errors.Is(err, context.Canceled):
		b.release()
	default:
		b.recordFailure()
	}
	return err
}

func (b *Breaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.timeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.timeout {
			return ErrCircuitOpen
		}
		b.state = CircuitStateHalfOpen
		b.inFlight = 0
		b.successes = 0
	}

	if b.state == CircuitStateHalfOpen {
		if b.inFlight >= b.probes {
			return ErrCircuitOpen
		}
		b.inFlight++
	}
	return nil
}

func (b *Breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		b.inFlight = max(b.inFlight-1, 0)
		b.successes++
		if b.successes >= b.probes && b.inFlight == 0 {
			b.state = CircuitStateClosed
			b.failures = 0
			b.successes = 0
			b.openedAt = time.Time{}
		}
	}
}

func (b *Breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.threshold {
			b.trip()
		}
	case CircuitStateHalfOpen:
		b.trip()
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
}

func (b *Breaker) release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateHalfOpen {
		b.inFlight = max(b.inFlight-1, 0)
	}
}

func (b *Breaker) trip() {
	b.state = CircuitStateOpen
	b.openedAt = b.now()
	b.inFlight = 0
	b.successes = 0
}
