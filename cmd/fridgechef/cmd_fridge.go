package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/fridgechef/internal/category"
)

func newFridgeCmd(opts *options) *cobra.Command {
	fridgeCmd := &cobra.Command{
		Use:   "fridge",
		Short: "Work with fridge photos",
	}

	scanCmd := &cobra.Command{
		Use:   "scan <photo>",
		Short: "Upload a fridge photo and suggest recipes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open photo: %w", err)
			}
			defer f.Close()

			result, err := opts.app.fridge.Scan(cmd.Context(), opts.app.cred, filepath.Base(args[0]), f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Scan.Ingredients) == 0 {
				fmt.Fprintln(out, "No ingredients detected.")
				return nil
			}
			fmt.Fprintf(out, "Detected: %s\n\n", strings.Join(result.Scan.Ingredients, ", "))
			printRecipes(out, result.Suggestions)
			return nil
		},
	}

	fridgeCmd.AddCommand(scanCmd)
	return fridgeCmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List category keys",
		// needs no backend or session
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Recipe categories:")
			printCategories(out, category.Catalog)
			fmt.Fprintln(out, "\nAssigned from recipe names:")
			printCategories(out, category.Legacy)
			return nil
		},
	}
}
