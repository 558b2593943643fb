package torrench_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/torrench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCategory(t *testing.T) {
	t.Parallel()

	t.Run("zero selects all categories", func(t *testing.T) {
		t.Parallel()

		c, err := torrench.SelectCategory("0")

		require.NoError(t, err)
		assert.Equal(t, "All categories", c.Name)
		assert.Equal(t, "0_0", c.Code)
	})

	t.Run("selects by index", func(t *testing.T) {
		t.Parallel()

		c, err := torrench.SelectCategory("6")

		require.NoError(t, err)
		assert.Equal(t, torrench.Category{Name: "Software", Code: "6_0"}, c)
	})

	t.Run("out of range index is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := torrench.SelectCategory("99")

		require.Error(t, err)
		assert.Equal(t, torrench.EINVALID, torrench.ErrorCode(err))
	})

	t.Run("negative index is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := torrench.SelectCategory("-1")

		assert.Equal(t, torrench.EINVALID, torrench.ErrorCode(err))
	})

	t.Run("non-integer input is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := torrench.SelectCategory("anime")

		require.Error(t, err)
		assert.Equal(t, torrench.EINVALID, torrench.ErrorCode(err))
	})
}

func TestCategoryByName(t *testing.T) {
	t.Parallel()

	t.Run("matches name ignoring case", func(t *testing.T) {
		t.Parallel()

		c, err := torrench.CategoryByName("live action")

		require.NoError(t, err)
		assert.Equal(t, "4_0", c.Code)
	})

	t.Run("matches code", func(t *testing.T) {
		t.Parallel()

		c, err := torrench.CategoryByName("2_0")

		require.NoError(t, err)
		assert.Equal(t, "Audio", c.Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := torrench.CategoryByName("games")

		assert.Equal(t, torrench.ENOTFOUND, torrench.ErrorCode(err))
	})
}

func TestFormatCategories(t *testing.T) {
	t.Parallel()

	got := torrench.FormatCategories()

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, len(torrench.Categories))
	assert.Equal(t, "[0] All categories", lines[0])
	assert.Equal(t, "[6] Software", lines[6])
}
