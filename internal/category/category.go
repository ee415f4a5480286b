// Package category classifies recipes into a fixed set of category keys and
// holds the display catalog of categories.
package category

import (
	"strings"

	"github.com/pageza/fridgechef/internal/types"
)

// Key identifies a recipe category
type Key string

// Keys produced by the name classifier
const (
	Breakfast    Key = "breakfast"
	Lunch        Key = "lunch"
	Dinner       Key = "dinner"
	Desserts     Key = "desserts"
	Vegetarian   Key = "vegetarian"
	QuickAndEasy Key = "quickAndEasy"
)

// Rule assigns Key to any name containing one of Keywords
type Rule struct {
	Key      Key
	Keywords []string
}

// DefaultRules is evaluated in order; the first matching rule wins.
var DefaultRules = []Rule{
	{Key: Breakfast, Keywords: []string{"breakfast", "pancake", "omelette"}},
	{Key: Lunch, Keywords: []string{"salad", "sandwich"}},
	{Key: Dinner, Keywords: []string{"soup", "steak", "pasta"}},
	{Key: Desserts, Keywords: []string{"cake", "pie", "ice cream"}},
	{Key: Vegetarian, Keywords: []string{"vegetable", "vegan"}},
}

// MeatKeywords decide the fallback when no rule matches
var MeatKeywords = []string{"chicken", "beef", "pork", "fish"}

// Classify assigns a recipe name to exactly one category using DefaultRules
func Classify(name string) Key {
	return ClassifyWith(DefaultRules, MeatKeywords, name)
}

// ClassifyWith runs the classifier against a caller-supplied rule table.
// Names that match no rule are Vegetarian unless they mention meat, in which
// case they are QuickAndEasy.
func ClassifyWith(rules []Rule, meat []string, name string) Key {
	name = strings.ToLower(name)

	for _, rule := range rules {
		if containsAny(name, rule.Keywords) {
			return rule.Key
		}
	}

	if !containsAny(name, meat) {
		return Vegetarian
	}
	return QuickAndEasy
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// AssignMissing fills in the category of every recipe that has none, in place
func AssignMissing(recipes []types.Recipe) {
	for i := range recipes {
		if recipes[i].Category == "" {
			recipes[i].Category = string(Classify(recipes[i].Name))
		}
	}
}
