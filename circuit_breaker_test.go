package irc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircuitBreakerConfig(t *testing.T) {
	newBreaker := NewCircuitBreakerConfig(1, time.Minute, time.Minute)

	cb := newBreaker("libera")
	require.NotNil(t, cb)

	assert.Equal(t, "libera", cb.Name())
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestCircuitBreaker_TripsOnFailureRatio(t *testing.T) {
	cb := NewCircuitBreakerConfig(1, time.Minute, time.Minute)("test")

	fail := func() (int, error) { return 0, fmt.Errorf("failure") }
	succeed := func() (int, error) { return 1, nil }

	// 1 success out of 3: 66% failures
	_, err := cb.Execute(succeed)
	require.NoError(t, err)
	_, err = cb.Execute(fail)
	require.Error(t, err)
	assert.Equal(t, gobreaker.StateClosed, cb.State())

	_, err = cb.Execute(fail)
	require.Error(t, err)
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err = cb.Execute(succeed)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestCircuitBreaker_StaysClosedBelowThreshold(t *testing.T) {
	cb := NewCircuitBreakerConfig(1, time.Minute, time.Minute)("test")

	for range 4 {
		_, err := cb.Execute(func() (int, error) { return 1, nil })
		require.NoError(t, err)
	}
	for range 5 {
		_, _ = cb.Execute(func() (int, error) { return 0, errors.New("failure") })
	}

	// 5 failures out of 9 requests
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestCircuitBreaker_ContextErrorsAreNotFailures(t *testing.T) {
	cb := NewCircuitBreakerConfig(1, time.Minute, time.Minute)("test")

	for _, err := range []error{context.Canceled, context.DeadlineExceeded, context.Canceled, context.DeadlineExceeded} {
		_, got := cb.Execute(func() (int, error) { return 0, err })
		require.ErrorIs(t, got, err)
	}

	assert.Equal(t, gobreaker.StateClosed, cb.State())
	assert.Equal(t, uint32(0), cb.Counts().TotalFailures)
}

func TestIsBreakerSuccess(t *testing.T) {
	tests := []struct {
		err      error
		expected bool
	}{
		{nil, true},
		{context.Canceled, true},
		{fmt.Errorf("acquire: %w", context.DeadlineExceeded), true},
		{errors.New("broken pipe"), false},
		{ErrWriterClosed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, isBreakerSuccess(tt.err), "error: %v", tt.err)
	}
}

func TestCircuitBreakerState_String(t *testing.T) {
	tests := []struct {
		state    gobreaker.State
		expected string
	}{
		{gobreaker.StateClosed, "closed"},
		{gobreaker.StateHalfOpen, "half-open"},
		{gobreaker.StateOpen, "open"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}
