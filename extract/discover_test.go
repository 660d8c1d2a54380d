package extract_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/lnsplit"
	"github.com/fwojciec/lnsplit/extract"
	"github.com/stretchr/testify/assert"
)

func TestDiscoverTags(t *testing.T) {
	t.Parallel()

	t.Run("keeps frequent tags in first-occurrence order", func(t *testing.T) {
		t.Parallel()

		corpus := "SECTION: POLITIK\nLENGTH: 312 words\nSECTION: WIRTSCHAFT\nLENGTH: 87 words\n"

		tags := extract.DiscoverTags(corpus, 2, lnsplit.DefaultConfig())

		assert.Equal(t, []string{"SECTION", "LENGTH"}, tags)
	})

	t.Run("share at exactly the threshold is dropped", func(t *testing.T) {
		t.Parallel()

		corpus := strings.Repeat("LENGTH: 100 words\n", 2000)

		tags := extract.DiscoverTags(corpus, 10000, lnsplit.DefaultConfig())

		assert.Empty(t, tags)
	})

	t.Run("share just above the threshold is kept", func(t *testing.T) {
		t.Parallel()

		corpus := strings.Repeat("LENGTH: 100 words\n", 2001)

		tags := extract.DiscoverTags(corpus, 10000, lnsplit.DefaultConfig())

		assert.Equal(t, []string{"LENGTH"}, tags)
	})

	t.Run("lower threshold admits the same share", func(t *testing.T) {
		t.Parallel()

		cfg := lnsplit.DefaultConfig()
		cfg.TagThreshold = 0.19
		corpus := "LENGTH: 100 words\n"

		tags := extract.DiscoverTags(corpus, 5, cfg)

		assert.Equal(t, []string{"LENGTH"}, tags)
	})

	t.Run("denylist drops matching names regardless of frequency", func(t *testing.T) {
		t.Parallel()

		corpus := strings.Repeat("WELT: am Sonntag\nSECTION: POLITIK\n", 3)

		tags := extract.DiscoverTags(corpus, 3, lnsplit.DefaultConfig())

		assert.Equal(t, []string{"SECTION"}, tags)
	})

	t.Run("zero documents discover nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract.DiscoverTags("LENGTH: 100 words\n", 0, lnsplit.DefaultConfig()))
	})

	t.Run("candidates must open a line", func(t *testing.T) {
		t.Parallel()

		corpus := strings.Repeat("siehe LENGTH: 100 words mitten im Satz\n", 3)

		tags := extract.DiscoverTags(corpus, 3, lnsplit.DefaultConfig())

		assert.Empty(t, tags)
	})

	t.Run("candidates need at least three characters", func(t *testing.T) {
		t.Parallel()

		corpus := strings.Repeat("AB: kurz\nURL: lang\n", 3)

		tags := extract.DiscoverTags(corpus, 3, lnsplit.DefaultConfig())

		assert.Equal(t, []string{"URL"}, tags)
	})

	t.Run("hyphenated names qualify", func(t *testing.T) {
		t.Parallel()

		corpus := strings.Repeat("ID-NUMMER: 12345\n", 3)

		tags := extract.DiscoverTags(corpus, 3, lnsplit.DefaultConfig())

		assert.Equal(t, []string{"ID-NUMMER"}, tags)
	})

	t.Run("lowercase names never qualify", func(t *testing.T) {
		t.Parallel()

		corpus := strings.Repeat("length: 100 words\n", 3)

		tags := extract.DiscoverTags(corpus, 3, lnsplit.DefaultConfig())

		assert.Empty(t, tags)
	})
}
