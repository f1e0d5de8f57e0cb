package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orgball2608/social-media-reader/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts uint64) Config {
	cfg := FromAttempts(attempts, time.Millisecond, 2*time.Millisecond)
	cfg.RandomizationFactor = 0
	return cfg
}

func TestDoStopsAfterBudget(t *testing.T) {
	calls := 0
	boom := errors.New("boom")

	err := Do(context.Background(), logger.Nop(), "test", func() error {
		calls++
		return boom
	}, fastConfig(3))

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestDoPermanentIsNotRetried(t *testing.T) {
	calls := 0
	boom := errors.New("boom")

	err := Do(context.Background(), logger.Nop(), "test", func() error {
		calls++
		return Permanent(boom)
	}, fastConfig(5))

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestDoSucceedsAfterFailure(t *testing.T) {
	calls := 0

	err := Do(context.Background(), logger.Nop(), "test", func() error {
		calls++
		if calls == 1 {
			return errors.New("transient")
		}
		return nil
	}, fastConfig(3))

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFromAttempts(t *testing.T) {
	cfg := FromAttempts(1, time.Second, time.Minute)
	assert.Equal(t, uint64(0), cfg.MaxRetries)

	cfg = FromAttempts(0, time.Second, time.Minute)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
}
