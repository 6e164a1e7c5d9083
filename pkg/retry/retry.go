// Package retry provides bounded retries with backoff for upstream calls.
package retry

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/lisadascse72/Recipe-generator/pkg/errors"
	"github.com/lisadascse72/Recipe-generator/pkg/logger"
)

// Policy controls how an operation is retried
type Policy struct {
	MaxAttempts int
	// InitialDelay is the delay before the second attempt.
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// BackoffMultiplier of 0 means fixed delay, 1 means linear, anything
	// larger means exponential.
	BackoffMultiplier float64
	// Jitter is the fraction of the delay added as random noise, so
	// concurrent retries don't align. 0 disables it.
	Jitter float64
}

// DefaultPolicy suits a single chatty upstream like a model endpoint.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:       3,
		InitialDelay:      500 * time.Millisecond,
		MaxDelay:          10 * time.Second,
		BackoffMultiplier: 2,
		Jitter:            0.1,
	}
}

// RetryableFunc is an operation that can be safely re-executed
type RetryableFunc func(ctx context.Context) error

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Do runs fn up to policy.MaxAttempts times, sleeping between attempts.
// The name shows up in logs only.
func Do(ctx context.Context, name string, policy Policy, fn RetryableFunc) error {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return errors.New(errors.CodeTimeoutError, "retry", "context cancelled", err)
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt >= policy.MaxAttempts-1 {
			break
		}

		delay := calculateDelay(attempt, policy)
		logger.Warnf("%s failed (attempt %d/%d), retrying in %s: %v", name, attempt+1, policy.MaxAttempts, delay, err)

		select {
		case <-ctx.Done():
			return errors.New(errors.CodeTimeoutError, "retry", "context cancelled during retry", ctx.Err())
		case <-time.After(delay):
		}
	}

	return errors.New(errors.CodeOf(lastErr), "retry", "all retry attempts failed", lastErr)
}

// calculateDelay calculates the delay for the next retry attempt
func calculateDelay(attempt int, policy Policy) time.Duration {
	var delay time.Duration

	switch policy.BackoffMultiplier {
	case 0:
		// Fixed backoff
		delay = policy.InitialDelay
	case 1:
		// Linear backoff
		delay = policy.InitialDelay * time.Duration(attempt+1)
	default:
		// Exponential backoff
		delay = time.Duration(float64(policy.InitialDelay) * math.Pow(policy.BackoffMultiplier, float64(attempt)))
	}

	if policy.MaxDelay > 0 && delay > policy.MaxDelay {
		delay = policy.MaxDelay
	}

	if delay > 0 && policy.Jitter > 0 {
		rngMu.Lock()
		jitter := time.Duration(rng.Int63n(int64(float64(delay)*policy.Jitter) + 1))
		rngMu.Unlock()
		delay += jitter
	}

	return delay
}
