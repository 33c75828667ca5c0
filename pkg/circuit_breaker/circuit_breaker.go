package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

type Config struct {
	// RecordLength is the number of most recent calls the failure ratio is computed over.
	RecordLength int `envconfig:"CB_RECORD_LENGTH"`
	// Timeout is how long the breaker stays open before letting a probe through.
	Timeout time.Duration `envconfig:"CB_TIMEOUT"`
	// Percentile is the failure ratio that opens the breaker.
	Percentile float64 `envconfig:"CB_PERCENTILE"`
	// RecoveryRequests is how many consecutive half-open successes close it again.
	RecoveryRequests int `envconfig:"CB_RECOVERY_REQUESTS"`
}

type circuitBreaker struct {
	mu  sync.Mutex
	cfg Config

	state           Status
	lastAttemptedAt time.Time
	// ring buffer of call outcomes, true means failed
	buffer       []bool
	pos          int
	successCount int
	now          func() time.Time
}

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

var ErrOpenCB = errors.New("circuit breaker is open")

func New(cfg Config) CircuitBreaker {
	if cfg.RecordLength <= 0 {
		cfg.RecordLength = 1
	}
	return &circuitBreaker{
		cfg:    cfg,
		state:  Closed,
		buffer: make([]bool, cfg.RecordLength),
		now:    time.Now,
	}
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Call(service func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.lastAttemptedAt) > cb.cfg.Timeout {
			cb.state = HalfOpen
			cb.successCount = 0
		} else {
			cb.mu.Unlock()
			return ErrOpenCB
		}
	}
	cb.mu.Unlock()

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.buffer[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % cb.cfg.RecordLength

	if cb.state == HalfOpen {
		if err != nil {
			cb.trip()
		} else {
			cb.successCount++
			if cb.successCount >= cb.cfg.RecoveryRequests {
				cb.reset()
			}
		}
		return err
	}

	fails := 0
	for _, failed := range cb.buffer {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(cb.cfg.RecordLength) >= cb.cfg.Percentile {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.lastAttemptedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.buffer {
		cb.buffer[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}
