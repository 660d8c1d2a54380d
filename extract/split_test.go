package extract_test

import (
	"testing"

	"github.com/fwojciec/lnsplit/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDocuments(t *testing.T) {
	t.Parallel()

	t.Run("splits at copyright footers in corpus order", func(t *testing.T) {
		t.Parallel()

		corpus := "Dokument 1\n\nFirst body.\n          Copyright 1999 ACME Media GmbH\n\n" +
			"Dokument 2\n\nSecond body.\n          Copyright 1999 ACME Media GmbH\n\n" +
			"Dokument 3\n\nThird body.\n          Copyright 1999 ACME Media GmbH\n\n" +
			"search terms and export matter"

		docs := extract.SplitDocuments(corpus)

		require.Len(t, docs, 3)
		assert.Contains(t, docs[0], "First body.")
		assert.Contains(t, docs[1], "Second body.")
		assert.Contains(t, docs[2], "Third body.")
	})

	t.Run("drops trailing matter after the final footer", func(t *testing.T) {
		t.Parallel()

		corpus := "Dokument 1\n\nBody.\n          Copyright 2000 ACME\n\ntrailing search terms"

		docs := extract.SplitDocuments(corpus)

		require.Len(t, docs, 1)
		assert.NotContains(t, docs[0], "trailing search terms")
	})

	t.Run("corpus ending at the final footer yields the document", func(t *testing.T) {
		t.Parallel()

		corpus := "Dokument 1\n\nBody.\n          Copyright 2000 ACME\n"

		docs := extract.SplitDocuments(corpus)

		require.Len(t, docs, 1)
		assert.Contains(t, docs[0], "Body.")
	})

	t.Run("no footer yields no documents", func(t *testing.T) {
		t.Parallel()

		docs := extract.SplitDocuments("Dokument 1\n\nBody text without any footer.\n")

		assert.Empty(t, docs)
	})

	t.Run("under-indented copyright mention does not split", func(t *testing.T) {
		t.Parallel()

		corpus := "Dokument 1\n\nBody.\n  Copyright 2000 ACME\n\nmore text"

		docs := extract.SplitDocuments(corpus)

		assert.Empty(t, docs)
	})

	t.Run("tab-indented footers split", func(t *testing.T) {
		t.Parallel()

		corpus := "Dokument 1\n\nBody.\n\t\t\t\t\tCopyright 2000 ACME\n\ntrailing"

		docs := extract.SplitDocuments(corpus)

		require.Len(t, docs, 1)
		assert.Contains(t, docs[0], "Body.")
	})

	t.Run("empty corpus yields no documents", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract.SplitDocuments(""))
	})
}
