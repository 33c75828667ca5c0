package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTransient = errors.New("transient")

func isTransient(err error) bool { return errors.Is(err, errTransient) }

func Test_Do_SuccessNoRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	}, WithRetryIf(isTransient))

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func Test_Do_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	}, WithRetryIf(isTransient), WithBaseDelay(time.Millisecond))

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func Test_Do_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(context.Context) error {
		calls++
		return errTransient
	}, WithRetryIf(isTransient), WithMaxAttempts(3), WithBaseDelay(time.Millisecond))

	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, calls)
}

func Test_Do_PermanentErrorFailsFast(t *testing.T) {
	permanent := errors.New("permanent")
	calls := 0
	err := Do(context.Background(), func(context.Context) error {
		calls++
		return permanent
	}, WithRetryIf(isTransient))

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func Test_Do_NoPredicateNeverRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(context.Context) error {
		calls++
		return errTransient
	})

	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
}

func Test_Do_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	err := Do(ctx, func(context.Context) error {
		cancel()
		return errTransient
	}, WithRetryIf(isTransient), WithBaseDelay(time.Second))

	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Do_InvalidOptions(t *testing.T) {
	fn := func(context.Context) error { return nil }
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"max attempts", WithMaxAttempts(0), ErrInvalidMaxAttempts},
		{"base delay", WithBaseDelay(-time.Second), ErrNegativeBaseDelay},
		{"jitter", WithJitterFactor(1.5), ErrInvalidJitterFactor},
		{"predicate", WithRetryIf(nil), ErrNilPredicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Do(context.Background(), fn, tt.opt), tt.want)
		})
	}
}
