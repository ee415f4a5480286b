// Package search turns raw search input into backend queries and filters
// fetched recipe collections locally.
package search

import (
	"fmt"
	"strings"

	"github.com/pageza/fridgechef/internal/category"
	"github.com/pageza/fridgechef/internal/types"
)

// Mode selects how a search string is interpreted
type Mode string

const (
	ModeIngredients Mode = "ingredients"
	ModeText        Mode = "text"
)

// ParseMode converts a user-supplied mode name
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeIngredients:
		return ModeIngredients, nil
	case ModeText:
		return ModeText, nil
	default:
		return "", fmt.Errorf("unknown search mode %q", s)
	}
}

// Query is a normalized search request
type Query struct {
	Mode        Mode
	Ingredients []string
	Text        string
}

// NewQuery normalizes raw input for the given mode
func NewQuery(mode Mode, raw string) Query {
	if mode == ModeText {
		return Query{Mode: ModeText, Text: strings.TrimSpace(raw)}
	}
	return Query{Mode: ModeIngredients, Ingredients: ParseIngredients(raw)}
}

// Empty reports whether the query has nothing to search for
func (q Query) Empty() bool {
	if q.Mode == ModeText {
		return q.Text == ""
	}
	return len(q.Ingredients) == 0
}

// ParseIngredients splits a comma-separated list into trimmed, non-empty
// terms. Input order is preserved.
func ParseIngredients(raw string) []string {
	var terms []string
	for _, tok := range strings.Split(raw, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			terms = append(terms, tok)
		}
	}
	return terms
}

// FilterByCreator returns the recipes authored by creatorID in their
// original order
func FilterByCreator(recipes []types.Recipe, creatorID string) []types.Recipe {
	out := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.CreatedBy == creatorID {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCategory returns the recipes in the given category. An empty key
// means no category is selected and returns recipes unchanged.
func FilterByCategory(recipes []types.Recipe, key category.Key) []types.Recipe {
	if key == "" {
		return recipes
	}
	out := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if category.Key(r.Category) == key {
			out = append(out, r)
		}
	}
	return out
}
