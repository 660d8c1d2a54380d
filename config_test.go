package lnsplit_test

import (
	"testing"

	"github.com/fwojciec/lnsplit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := lnsplit.DefaultConfig()

	assert.Equal(t, 0.20, cfg.TagThreshold)
	assert.Equal(t, []string{"WELT"}, cfg.TagDenylist)
	assert.Equal(t, 100, cfg.MinTextLength)
	assert.True(t, cfg.DropBoilerplate)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("negative threshold", func(t *testing.T) {
		t.Parallel()

		cfg := lnsplit.DefaultConfig()
		cfg.TagThreshold = -0.1

		assert.Equal(t, lnsplit.EINVALID, lnsplit.ErrorCode(cfg.Validate()))
	})

	t.Run("threshold of one or more", func(t *testing.T) {
		t.Parallel()

		cfg := lnsplit.DefaultConfig()
		cfg.TagThreshold = 1.0

		assert.Equal(t, lnsplit.EINVALID, lnsplit.ErrorCode(cfg.Validate()))
	})

	t.Run("negative text length", func(t *testing.T) {
		t.Parallel()

		cfg := lnsplit.DefaultConfig()
		cfg.MinTextLength = -1

		assert.Equal(t, lnsplit.EINVALID, lnsplit.ErrorCode(cfg.Validate()))
	})

	t.Run("zero threshold is valid", func(t *testing.T) {
		t.Parallel()

		cfg := lnsplit.DefaultConfig()
		cfg.TagThreshold = 0

		assert.NoError(t, cfg.Validate())
	})
}
