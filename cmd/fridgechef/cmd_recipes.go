package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/fridgechef/internal/category"
	"github.com/pageza/fridgechef/internal/search"
	"github.com/pageza/fridgechef/internal/service"
	"github.com/pageza/fridgechef/internal/types"
)

func newRecipesCmd(opts *options) *cobra.Command {
	recipesCmd := &cobra.Command{
		Use:     "recipes",
		Aliases: []string{"recipe"},
		Short:   "Browse, search and manage recipes",
	}
	recipesCmd.AddCommand(
		newRecipesListCmd(opts),
		newRecipesExploreCmd(opts),
		newRecipesMineCmd(opts),
		newRecipesSearchCmd(opts),
		newRecipesShowCmd(opts),
		newRecipesAddCmd(opts),
		newRecipesEditCmd(opts),
		newRecipesDeleteCmd(opts),
		newRecipesRateCmd(opts),
	)
	return recipesCmd
}

func newRecipesListCmd(opts *options) *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := opts.app.recipes.List(cmd.Context(), opts.app.cred, page, limit)
			if err != nil {
				return err
			}
			printRecipes(cmd.OutOrStdout(), recipes)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "Recipes per page")
	return cmd
}

func newRecipesExploreCmd(opts *options) *cobra.Command {
	var key string
	var page, limit int
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse recipes by category",
		Long: `Lists recipes, assigning a category to those without one from their
name, and keeps the ones in --category. Run 'fridgechef categories' for keys.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if key != "" && !category.Valid(category.Key(key)) {
				return fmt.Errorf("unknown category %q", key)
			}
			recipes, err := opts.app.recipes.Explore(cmd.Context(), opts.app.cred, category.Key(key), page, limit)
			if err != nil {
				return err
			}
			printRecipes(cmd.OutOrStdout(), recipes)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "category", "", "Category key to keep")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "Recipes per page")
	return cmd
}

func newRecipesMineCmd(opts *options) *cobra.Command {
	var ingredients, text string
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "List your own recipes, optionally narrowed by a search",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := search.NewQuery(search.ModeIngredients, ingredients)
			if text != "" {
				q = search.NewQuery(search.ModeText, text)
			}
			recipes, err := opts.app.recipes.MyRecipes(cmd.Context(), opts.app.cred, q)
			if err != nil {
				return err
			}
			printRecipes(cmd.OutOrStdout(), recipes)
			return nil
		},
	}
	cmd.Flags().StringVar(&ingredients, "ingredients", "", "Comma-separated ingredients")
	cmd.Flags().StringVar(&text, "text", "", "Free-text search")
	cmd.MarkFlagsMutuallyExclusive("ingredients", "text")
	return cmd
}

func newRecipesSearchCmd(opts *options) *cobra.Command {
	var ingredients, text string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search recipes by ingredients or text",
		Example: `  fridgechef recipes search --ingredients "tomato, basil"
  fridgechef recipes search --text soup`,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := search.NewQuery(search.ModeIngredients, ingredients)
			if cmd.Flags().Changed("text") {
				q = search.NewQuery(search.ModeText, text)
			}
			recipes, err := opts.app.recipes.Search(cmd.Context(), opts.app.cred, q)
			if err != nil {
				return err
			}
			printRecipes(cmd.OutOrStdout(), recipes)
			return nil
		},
	}
	cmd.Flags().StringVar(&ingredients, "ingredients", "", "Comma-separated ingredients")
	cmd.Flags().StringVar(&text, "text", "", "Free-text search")
	cmd.MarkFlagsMutuallyExclusive("ingredients", "text")
	cmd.MarkFlagsOneRequired("ingredients", "text")
	return cmd
}

func newRecipesShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := opts.app.recipes.Get(cmd.Context(), opts.app.cred, args[0])
			if err != nil {
				return err
			}
			printRecipe(cmd.OutOrStdout(), recipe)
			return nil
		},
	}
}

// recipeForm holds the flags shared by add and edit
type recipeForm struct {
	name         string
	category     string
	cuisine      string
	difficulty   string
	ingredients  []string
	instructions string
	image        string
}

func (f *recipeForm) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Recipe name")
	cmd.Flags().StringVar(&f.category, "category", "", "Category key")
	cmd.Flags().StringVar(&f.cuisine, "cuisine", "", "Cuisine")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Easy, Intermediate or Advanced")
	cmd.Flags().StringArrayVar(&f.ingredients, "ingredient", nil, `Ingredient as "name=amount", repeatable`)
	cmd.Flags().StringVar(&f.instructions, "instructions", "", "Preparation steps")
	cmd.Flags().StringVar(&f.image, "image", "", "Local photo to upload")
}

func (f *recipeForm) input() *types.RecipeInput {
	in := &types.RecipeInput{
		Name:         f.name,
		Category:     f.category,
		Cuisine:      f.cuisine,
		Difficulty:   f.difficulty,
		Instructions: f.instructions,
	}
	for _, raw := range f.ingredients {
		name, amount, _ := strings.Cut(raw, "=")
		in.Ingredients = append(in.Ingredients, types.Ingredient{
			Name:   strings.TrimSpace(name),
			Amount: strings.TrimSpace(amount),
		})
	}
	return in
}

// openImage opens the --image file. The caller closes it.
func (f *recipeForm) openImage() (*service.ImageFile, *os.File, error) {
	if f.image == "" {
		return nil, nil, nil
	}
	file, err := os.Open(f.image)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	return &service.ImageFile{Name: filepath.Base(f.image), Body: file}, file, nil
}

func newRecipesAddCmd(opts *options) *cobra.Command {
	form := &recipeForm{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a recipe",
		Example: `  fridgechef recipes add --name "Tomato Soup" --category soupsAndStews \
    --cuisine Italian --ingredient "Tomato=4" --ingredient "Basil=1 bunch" \
    --instructions "Simmer for 20 minutes."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			image, file, err := form.openImage()
			if err != nil {
				return err
			}
			if file != nil {
				defer file.Close()
			}
			recipe, err := opts.app.recipes.Create(cmd.Context(), opts.app.cred, form.input(), image)
			if err != nil {
				return err
			}
			printRecipe(cmd.OutOrStdout(), recipe)
			return nil
		},
	}
	form.bind(cmd)
	return cmd
}

func newRecipesEditCmd(opts *options) *cobra.Command {
	form := &recipeForm{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a recipe's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, file, err := form.openImage()
			if err != nil {
				return err
			}
			if file != nil {
				defer file.Close()
			}
			recipe, err := opts.app.recipes.Update(cmd.Context(), opts.app.cred, args[0], form.input(), image)
			if err != nil {
				return err
			}
			printRecipe(cmd.OutOrStdout(), recipe)
			return nil
		},
	}
	form.bind(cmd)
	return cmd
}

func newRecipesDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.recipes.Delete(cmd.Context(), opts.app.cred, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %s\n", args[0])
			return nil
		},
	}
}

func newRecipesRateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <id> <rating>",
		Short: "Rate a recipe from 0 to 5",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid rating %q: %w", args[1], err)
			}
			recipe, err := opts.app.recipes.Rate(cmd.Context(), opts.app.cred, args[0], rating)
			if err != nil {
				return err
			}
			printRecipe(cmd.OutOrStdout(), recipe)
			return nil
		},
	}
}
