package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/lnsplit"
	"github.com/fwojciec/lnsplit/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lnsplit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full file overrides every default", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
tag_threshold: 0.35
tag_denylist:
  - WELT
  - ZEIT
min_text_length: 50
drop_boilerplate: false
`)

		cfg, err := yaml.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 0.35, cfg.TagThreshold)
		assert.Equal(t, []string{"WELT", "ZEIT"}, cfg.TagDenylist)
		assert.Equal(t, 50, cfg.MinTextLength)
		assert.False(t, cfg.DropBoilerplate)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "tag_threshold: 0.5\n")

		cfg, err := yaml.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 0.5, cfg.TagThreshold)
		assert.Equal(t, lnsplit.DefaultTagDenylist(), cfg.TagDenylist)
		assert.Equal(t, lnsplit.DefaultMinTextLength, cfg.MinTextLength)
		assert.True(t, cfg.DropBoilerplate)
	})

	t.Run("explicit zero values override", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "tag_threshold: 0\nmin_text_length: 0\n")

		cfg, err := yaml.LoadConfig(path)
		require.NoError(t, err)

		assert.Zero(t, cfg.TagThreshold)
		assert.Zero(t, cfg.MinTextLength)
	})

	t.Run("empty denylist clears the default", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "tag_denylist: []\n")

		cfg, err := yaml.LoadConfig(path)
		require.NoError(t, err)

		assert.Empty(t, cfg.TagDenylist)
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "tag_threshold: 1.5\n")

		_, err := yaml.LoadConfig(path)

		assert.Equal(t, lnsplit.EINVALID, lnsplit.ErrorCode(err))
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "tag_threshold: [not a number\n")

		_, err := yaml.LoadConfig(path)

		assert.Error(t, err)
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Error(t, err)
	})
}
