package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		age  int
		want Category
	}{
		{60, CategoryRegular},
		{79, CategoryRegular},
		{80, CategoryOctogenarian},
		{89, CategoryOctogenarian},
		{90, CategoryNonagenarian},
		{99, CategoryNonagenarian},
		{100, CategoryCentenarian},
		{150, CategoryCentenarian},
		{0, CategoryRegular},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveCategory(tt.age), "age %d", tt.age)
	}
}

func TestParseCategory(t *testing.T) {
	t.Run("accepts known categories case-insensitively", func(t *testing.T) {
		c, err := ParseCategory("octogenarian")
		require.NoError(t, err)
		assert.Equal(t, CategoryOctogenarian, c)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := ParseCategory("SUPERCENTENARIAN")
		assert.Error(t, err)
	})
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Octogenarian (80-89)", CategoryOctogenarian.Label())
	assert.Equal(t, "Centenarian (100+)", CategoryCentenarian.Label())
}

func TestCategoriesOrder(t *testing.T) {
	got := Categories()
	require.Len(t, got, 4)
	assert.Equal(t, CategoryRegular, got[0])
	assert.Equal(t, CategoryCentenarian, got[3])
}
