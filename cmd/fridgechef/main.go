// Command fridgechef is the command-line front end of the FridgeChef client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// tokenEnv holds the bearer token between invocations; it is never written
// to disk
const tokenEnv = "FRIDGECHEF_TOKEN"

// options are the global flags plus the state built from them
type options struct {
	verbose    bool
	configPath string
	token      string

	app *app
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fridgechef",
		Short: "FridgeChef - find recipes for what is in your fridge",
		Long: `fridgechef talks to the FridgeChef backend.

Sign in with 'fridgechef login', then export the printed FRIDGECHEF_TOKEN
so later commands can authenticate. Only your user id is remembered locally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("FRIDGECHEF_CONFIG"), "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", "", "Bearer token (defaults to $"+tokenEnv+")")

	rootCmd.AddCommand(
		newLoginCmd(opts),
		newSignupCmd(opts),
		newLogoutCmd(opts),
		newWhoamiCmd(opts),
		newProfileCmd(opts),
		newRecipesCmd(opts),
		newUsersCmd(opts),
		newFridgeCmd(opts),
		newCategoriesCmd(),
	)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &options{}
	err := newRootCmd(opts).ExecuteContext(ctx)
	opts.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// close releases whatever the command opened, including after a failed run
func (o *options) close() {
	if o.app != nil {
		o.app.close()
		o.app = nil
	}
}

