package irc

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
)

// NewCircuitBreakerConfig returns a function that creates circuit breakers for writers.
// This is a helper for common use cases.
// The breaker trips after at least 3 writes with a failure ratio of 60% or more.
// Context cancellation is not counted as a failure.
func NewCircuitBreakerConfig(maxRequests uint32, interval, timeout time.Duration) func(string) *gobreaker.CircuitBreaker[int] {
	return func(name string) *gobreaker.CircuitBreaker[int] {
		settings := gobreaker.Settings{
			Name:        name,
			MaxRequests: maxRequests,
			Interval:    interval,
			Timeout:     timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
			IsSuccessful: isBreakerSuccess,
		}
		return gobreaker.NewCircuitBreaker[int](settings)
	}
}

// isBreakerSuccess counts only transport failures against the breaker.
func isBreakerSuccess(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
