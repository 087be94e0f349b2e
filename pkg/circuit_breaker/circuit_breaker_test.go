package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/practicum/shareit/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	const (
		recordLength     = 10
		timeout          = 50 * time.Millisecond
		percentile       = 0.5
		recoveryRequests = 3
	)

	okService := func() error { return nil }
	failingService := func() error { return errors.New("service error") }

	cb := circuit_breaker.New(recordLength, timeout, percentile, recoveryRequests)

	for i := 0; i < recordLength; i++ {
		require.NoError(t, cb.Call(okService))
	}

	// enough failures to open the breaker
	for i := 0; i < recordLength; i++ {
		_ = cb.Call(failingService)
	}
	require.ErrorIs(t, cb.Call(okService), circuit_breaker.ErrOpenCB)

	// after the timeout the breaker probes in half-open
	time.Sleep(timeout * 2)
	for i := 0; i <= recoveryRequests; i++ {
		require.NoError(t, cb.Call(okService))
	}

	// closed again
	require.NoError(t, cb.Call(okService))

	// a failure while half-open reopens immediately
	for i := 0; i < recordLength; i++ {
		_ = cb.Call(failingService)
	}
	time.Sleep(timeout * 2)
	require.Error(t, cb.Call(failingService))
	require.ErrorIs(t, cb.Call(okService), circuit_breaker.ErrOpenCB)
}
