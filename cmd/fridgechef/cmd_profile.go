package main

import (
	"github.com/spf13/cobra"

	"github.com/pageza/fridgechef/internal/types"
)

func newProfileCmd(opts *options) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your profile",
	}

	var name, bio, picture string
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update name, bio or profile picture",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &types.UpdateProfileRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("bio") {
				req.Bio = &bio
			}
			if cmd.Flags().Changed("picture") {
				req.ProfilePicture = &picture
			}

			profile, err := opts.app.profiles.UpdateProfile(cmd.Context(), opts.app.cred, req)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), profile)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&name, "name", "", "Display name")
	updateCmd.Flags().StringVar(&bio, "bio", "", "Short bio")
	updateCmd.Flags().StringVar(&picture, "picture", "", "Profile picture URL")

	profileCmd.AddCommand(updateCmd)
	return profileCmd
}
