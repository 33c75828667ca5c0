package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	errService := errors.New("service error")
	ok := func() error { return nil }
	fail := func() error { return errService }

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := New(Config{RecordLength: 10, Timeout: time.Second, Percentile: 0.3, RecoveryRequests: 2}).(*circuitBreaker)
	cb.now = func() time.Time { return now }

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	require.ErrorIs(t, cb.Call(fail), errService)
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Closed, cb.State())
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Open, cb.State())

	called := false
	require.ErrorIs(t, cb.Call(func() error { called = true; return nil }), ErrOpenCB)
	require.False(t, called)

	// probe after timeout fails and reopens
	now = now.Add(2 * time.Second)
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Open, cb.State())

	now = now.Add(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_Reset(t *testing.T) {
	cb := New(Config{RecordLength: 2, Timeout: time.Hour, Percentile: 0.5, RecoveryRequests: 1})
	_ = cb.Call(func() error { return errors.New("boom") })
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
