package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pageza/fridgechef/internal/category"
	"github.com/pageza/fridgechef/internal/types"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printRecipes(w io.Writer, recipes []types.Recipe) {
	if len(recipes) == 0 {
		fmt.Fprintln(w, "No recipes found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tCUISINE\tRATING")
	for _, r := range recipes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Category, r.Cuisine, formatRating(r.Rating))
	}
	tw.Flush()
}

func printRecipe(w io.Writer, r *types.Recipe) {
	fmt.Fprintf(w, "%s\n%s\n", r.Name, strings.Repeat("=", len(r.Name)))
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", r.ID)
	fmt.Fprintf(tw, "Category:\t%s\n", categoryName(r.Category))
	fmt.Fprintf(tw, "Cuisine:\t%s\n", r.Cuisine)
	if r.Difficulty != "" {
		fmt.Fprintf(tw, "Difficulty:\t%s\n", r.Difficulty)
	}
	fmt.Fprintf(tw, "Rating:\t%s\n", formatRating(r.Rating))
	fmt.Fprintf(tw, "Image:\t%s\n", r.ImageOrPlaceholder())
	tw.Flush()

	if len(r.Ingredients) > 0 {
		fmt.Fprintln(w, "\nIngredients:")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(w, "  - %s %s\n", ing.Amount, ing.Name)
		}
	}
	if r.Instructions != "" {
		fmt.Fprintf(w, "\nInstructions:\n%s\n", r.Instructions)
	}
}

func printProfile(w io.Writer, p *types.UserProfile) {
	fmt.Fprintf(w, "[%s] %s\n", p.Initials(), p.Name)
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", p.ID)
	if p.Email != "" {
		fmt.Fprintf(tw, "Email:\t%s\n", p.Email)
	}
	if p.Bio != "" {
		fmt.Fprintf(tw, "Bio:\t%s\n", p.Bio)
	}
	fmt.Fprintf(tw, "Recipes:\t%d\n", p.RecipesCount)
	fmt.Fprintf(tw, "Followers:\t%d\n", p.FollowersCount)
	fmt.Fprintf(tw, "Following:\t%d\n", p.FollowingCount)
	tw.Flush()
}

func printUsers(w io.Writer, users []types.UserProfile) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tFOLLOWERS\tFOLLOWING\tRECIPES")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", u.ID, u.Name, u.FollowersCount, u.FollowingCount, u.RecipesCount)
	}
	tw.Flush()
}

func printCategories(w io.Writer, cats []category.Category) {
	tw := newTable(w)
	for _, c := range cats {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Key, c.Name)
	}
	tw.Flush()
}

func categoryName(key string) string {
	if c, ok := category.Lookup(category.Key(key)); ok {
		return c.Name
	}
	return key
}

func formatRating(r *float64) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *r)
}
