package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fridgechef/internal/category"
	"github.com/pageza/fridgechef/internal/types"
)

func TestParseIngredients(t *testing.T) {
	want := []string{"eggs", "milk", "flour"}

	assert.Equal(t, want, ParseIngredients("eggs,milk,flour"))
	assert.Equal(t, want, ParseIngredients("eggs, milk , flour"))
	assert.Equal(t, []string{"eggs", "milk"}, ParseIngredients("eggs,,  ,milk"))
	assert.Empty(t, ParseIngredients(""))
	assert.Empty(t, ParseIngredients(" , ,"))
	assert.Equal(t, []string{"sour cream"}, ParseIngredients(" sour cream "))
}

func TestNewQuery(t *testing.T) {
	q := NewQuery(ModeIngredients, "milk, eggs")
	assert.Equal(t, ModeIngredients, q.Mode)
	assert.Equal(t, []string{"milk", "eggs"}, q.Ingredients)
	assert.False(t, q.Empty())

	q = NewQuery(ModeText, "  chicken, rice  ")
	assert.Equal(t, ModeText, q.Mode)
	assert.Equal(t, "chicken, rice", q.Text)
	assert.Nil(t, q.Ingredients)

	assert.True(t, NewQuery(ModeText, "   ").Empty())
	assert.True(t, NewQuery(ModeIngredients, ",,").Empty())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Text")
	require.NoError(t, err)
	assert.Equal(t, ModeText, m)

	_, err = ParseMode("fuzzy")
	assert.Error(t, err)
}

func TestFilterByCreator(t *testing.T) {
	recipes := []types.Recipe{
		{ID: "1", CreatedBy: "A"},
		{ID: "2", CreatedBy: "B"},
		{ID: "3", CreatedBy: "A"},
		{ID: "4", CreatedBy: "C"},
	}

	got := FilterByCreator(recipes, "A")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	assert.Empty(t, FilterByCreator(recipes, "Z"))
}

func TestFilterByCategory(t *testing.T) {
	recipes := []types.Recipe{
		{ID: "1", Category: "dinner"},
		{ID: "2", Category: "lunch"},
		{ID: "3", Category: "dinner"},
	}

	t.Run("no category selected is identity", func(t *testing.T) {
		got := FilterByCategory(recipes, "")
		assert.Equal(t, recipes, got)
	})

	t.Run("selected category", func(t *testing.T) {
		got := FilterByCategory(recipes, category.Dinner)
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, FilterByCategory(recipes, category.Desserts))
	})
}
