package search_test

import (
	"testing"

	"github.com/fwojciec/torrench/search"
	"github.com/stretchr/testify/assert"
)

func TestContentHash(t *testing.T) {
	t.Parallel()

	t.Run("is stable and fixed width", func(t *testing.T) {
		t.Parallel()
		h := search.ContentHash([]byte("d4:infodee"))
		assert.Len(t, h, 16)
		assert.Equal(t, h, search.ContentHash([]byte("d4:infodee")))
	})

	t.Run("differs for different content", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, search.ContentHash([]byte("a")), search.ContentHash([]byte("b")))
	})
}

func TestTruncateName(t *testing.T) {
	t.Parallel()

	t.Run("returns name unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Show - 01", search.TruncateName("Show - 01", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		result := search.TruncateName("[Group] A Very Long Show Title - 01 (1080p)", 20)
		assert.Equal(t, "[Group] A Very Lo...", result)
		assert.Len(t, result, 20)
	})

	t.Run("counts runes, not bytes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ワンピース", search.TruncateName("ワンピース", 5))
		assert.Equal(t, "ワン...", search.TruncateName("ワンピース第1話", 5))
	})

	t.Run("returns empty string when maxLen is not positive", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, search.TruncateName("Show", 0))
		assert.Empty(t, search.TruncateName("Show", -1))
	})

	t.Run("returns prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Sho", search.TruncateName("Show - 01", 3))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{700 * 1024 * 1024, "700.0 MiB"},
		{3 * 1024 * 1024 * 1024 / 2, "1.5 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, search.FormatBytes(tt.bytes))
		})
	}
}
