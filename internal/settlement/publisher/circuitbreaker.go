package publisher

import (
	"sync"
	"time"
)

// circuitBreaker prevents saga runs from stalling behind a dead broker.
// When producing keeps failing the circuit opens and events are dropped
// without attempting delivery until the cooldown expires.
type circuitBreaker struct {
	mu sync.RWMutex

	threshold int           // failures to trigger open
	cooldown  time.Duration // how long to stay open

	failures  int       // consecutive failures
	openUntil time.Time // when to transition from open to half-open
	isOpen    bool
}

func newCircuitBreaker(threshold int, cooldown time.Duration) *circuitBreaker {
	if threshold <= 0 {
		threshold = 5
	}
	if cooldown <= 0 {
		cooldown = time.Minute
	}
	return &circuitBreaker{threshold: threshold, cooldown: cooldown}
}

// Allow returns true if the circuit is closed (healthy) or half-open (testing).
func (cb *circuitBreaker) Allow() bool {
	cb.mu.RLock()
	if !cb.isOpen {
		cb.mu.RUnlock()
		return true
	}
	expired := time.Now().After(cb.openUntil)
	cb.mu.RUnlock()

	if expired {
		// Transition to half-open - allow one request through
		cb.mu.Lock()
		defer cb.mu.Unlock()
		if cb.isOpen && time.Now().After(cb.openUntil) {
			cb.isOpen = false
			cb.failures = 0
		}
		return !cb.isOpen
	}
	return false
}

// RecordSuccess records a successful produce, closing the circuit.
func (cb *circuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failures = 0
	cb.isOpen = false
}

// RecordFailure records a failed produce, potentially opening the circuit.
func (cb *circuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failures++
	if cb.failures >= cb.threshold {
		cb.isOpen = true
		cb.openUntil = time.Now().Add(cb.cooldown)
	}
}
