package main

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regextract/regextract-go/pkg/regextract"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestBuildExtractor_NoPatterns(t *testing.T) {
	ex, err := buildExtractor(nil, defaultChunkSize, testLogger)
	require.NoError(t, err)
	assert.Equal(t, regextract.Categories(), ex.Categories())
}

func TestBuildExtractor_WithPatternFile(t *testing.T) {
	ex, err := buildExtractor([]string{filepath.Join("testdata", "ids.yaml")}, defaultChunkSize, testLogger)
	require.NoError(t, err)

	cats := ex.Categories()
	assert.Equal(t, regextract.Category("order_ids"), cats[len(cats)-1])

	got, err := ex.Extract("order_ids", "ref ORD-123456 and ORD-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD-123456"}, got)
}

func TestBuildExtractor_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := buildExtractor([]string{filepath.Join(t.TempDir(), "nope.yaml")}, defaultChunkSize, testLogger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pattern file 1")
	})

	t.Run("same file twice", func(t *testing.T) {
		ids := filepath.Join("testdata", "ids.yaml")
		_, err := buildExtractor([]string{ids, ids}, defaultChunkSize, testLogger)
		var dup *regextract.DuplicateCategoryError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "order_ids", dup.Name)
	})

	t.Run("bad chunk size", func(t *testing.T) {
		_, err := buildExtractor(nil, 0, testLogger)
		assert.Error(t, err)
	})
}

func TestSelectCategories(t *testing.T) {
	ex, err := buildExtractor(nil, defaultChunkSize, testLogger)
	require.NoError(t, err)

	t.Run("all by default", func(t *testing.T) {
		got, err := selectCategories(ex, nil)
		require.NoError(t, err)
		assert.Equal(t, ex.Categories(), got)
	})

	t.Run("catalog order kept", func(t *testing.T) {
		got, err := selectCategories(ex, []string{"hashtags", "emails", "hashtags"})
		require.NoError(t, err)
		assert.Equal(t, []regextract.Category{regextract.CategoryEmails, regextract.CategoryHashtags}, got)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := selectCategories(ex, []string{"emails", "not_a_real_type"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, regextract.ErrUnrecognizedDataType))
	})
}
