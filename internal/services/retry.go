package services

import (
	"context"
	"errors"
	"net"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RetryPolicy controls how store calls are retried on transient failures
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultRetry retries three times with 200ms, 400ms backoff
var DefaultRetry = RetryPolicy{Attempts: 3, BaseDelay: 200 * time.Millisecond}

// isTransient reports timeouts and network failures worth retrying
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// withRetry runs fn until it succeeds, fails permanently, or the policy's
// attempts are spent. The caller's context stops the loop early.
func withRetry[T any](ctx context.Context, p RetryPolicy, logger *zap.Logger, op string, fn func(context.Context) (T, error)) (T, error) {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.BaseDelay

	var (
		result T
		err    error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err = fn(ctx)
		if err == nil || !isTransient(err) || ctx.Err() != nil || attempt == attempts {
			return result, err
		}
		logger.Warn("Transient store error, retrying",
			zap.String("op", op), zap.Int("attempt", attempt), zap.Duration("backoff", delay), zap.Error(err))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
	return result, err
}
