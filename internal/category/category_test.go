package category

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/fridgechef/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Fluffy PANCAKE Stack", Breakfast},
		{"Cheese Omelette", Breakfast},
		{"Club Sandwich", Lunch},
		{"Beef Steak", Dinner},
		{"Tomato Soup", Dinner},
		{"Soup Cake Surprise", Dinner},
		{"Apple Pie", Desserts},
		{"Vanilla Ice Cream", Desserts},
		{"Vegan Bowl", Vegetarian},
		{"Garden Delight", Vegetarian},
		{"Grilled Chicken", QuickAndEasy},
		{"Fish Tacos", QuickAndEasy},
		{"", Vegetarian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestClassifyRuleOrderDecides(t *testing.T) {
	// breakfast is declared before desserts
	assert.Equal(t, Breakfast, Classify("Pancake Cake"))
	// a rule match beats the meat fallback
	assert.Equal(t, Lunch, Classify("Chicken Salad"))
}

func TestClassifyWithCustomTable(t *testing.T) {
	rules := []Rule{
		{Key: Desserts, Keywords: []string{"cake"}},
		{Key: Dinner, Keywords: []string{"soup"}},
	}
	assert.Equal(t, Desserts, ClassifyWith(rules, MeatKeywords, "Soup Cake Surprise"))
	assert.Equal(t, Vegetarian, ClassifyWith(nil, nil, "Grilled Chicken"))
}

func TestAssignMissing(t *testing.T) {
	recipes := []types.Recipe{
		{Name: "Tomato Soup"},
		{Name: "Tomato Soup", Category: "mainDishes"},
		{Name: "Beef Stew"},
	}

	AssignMissing(recipes)

	assert.Equal(t, string(Dinner), recipes[0].Category)
	assert.Equal(t, "mainDishes", recipes[1].Category)
	assert.Equal(t, string(QuickAndEasy), recipes[2].Category)
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("soupsAndStews")
	assert.True(t, ok)
	assert.Equal(t, "Soups & Stews", c.Name)

	c, ok = Lookup(QuickAndEasy)
	assert.True(t, ok)
	assert.Equal(t, "Quick & Easy", c.Name)

	assert.False(t, Valid("brunch"))
	assert.True(t, ValidDifficulty("Intermediate"))
	assert.False(t, ValidDifficulty("Hard"))
}
