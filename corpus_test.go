package lnsplit_test

import (
	"testing"

	"github.com/fwojciec/lnsplit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpus_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		corpus := &lnsplit.Corpus{
			Name:       "welt-1999",
			Attributes: lnsplit.NewSchema([]string{"LENGTH"}).Attributes(),
		}

		assert.NoError(t, corpus.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		corpus := &lnsplit.Corpus{
			Attributes: lnsplit.NewSchema(nil).Attributes(),
		}

		assert.Equal(t, lnsplit.EINVALID, lnsplit.ErrorCode(corpus.Validate()))
	})

	t.Run("invalid attributes", func(t *testing.T) {
		t.Parallel()

		corpus := &lnsplit.Corpus{
			Name:       "welt-1999",
			Attributes: []string{"TITLE", "TEXT"},
		}

		assert.Equal(t, lnsplit.EINVALID, lnsplit.ErrorCode(corpus.Validate()))
	})
}

func TestCorpus_Schema(t *testing.T) {
	t.Parallel()

	corpus := &lnsplit.Corpus{
		Name:       "welt-1999",
		Attributes: lnsplit.NewSchema([]string{"LENGTH", "SECTION"}).Attributes(),
	}

	schema, err := corpus.Schema()
	require.NoError(t, err)

	assert.Equal(t, []string{"LENGTH", "SECTION"}, schema.Tags())
}
