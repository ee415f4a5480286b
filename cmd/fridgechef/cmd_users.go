package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/fridgechef/internal/social"
)

// rosterSize is how many users follow and unfollow load to report counts
const rosterSize = 100

func newUsersCmd(opts *options) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Browse users and manage who you follow",
	}

	var page, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := opts.app.profiles.Users(cmd.Context(), opts.app.cred, page, limit)
			if err != nil {
				return err
			}
			printUsers(cmd.OutOrStdout(), users)
			return nil
		},
	}
	listCmd.Flags().IntVar(&page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&limit, "limit", 20, "Users per page")

	usersCmd.AddCommand(
		listCmd,
		newFollowCmd(opts, true),
		newFollowCmd(opts, false),
	)
	return usersCmd
}

func newFollowCmd(opts *options, follow bool) *cobra.Command {
	use, short := "follow <id>", "Follow a user"
	if !follow {
		use, short = "unfollow <id>", "Stop following a user"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			users, err := opts.app.profiles.Users(ctx, opts.app.cred, 1, rosterSize)
			if err != nil {
				return err
			}
			roster := social.NewRoster(opts.app.client, users, opts.app.logger)

			id := args[0]
			var state social.State
			if follow {
				state, err = roster.Follow(ctx, opts.app.cred, id)
			} else {
				state, err = roster.Unfollow(ctx, opts.app.cred, id)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if u, ok := roster.User(id); ok {
				fmt.Fprintf(out, "%s: %s (%d followers)\n", u.Name, state, u.FollowersCount)
			} else {
				fmt.Fprintf(out, "%s: %s\n", id, state)
			}
			return nil
		},
	}
}
