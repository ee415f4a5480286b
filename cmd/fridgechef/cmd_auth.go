package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/fridgechef/internal/session"
)

// passwordEnv supplies the password without putting it on the command line
const passwordEnv = "FRIDGECHEF_PASSWORD"

// passwordInput collects the password from --password-stdin, --password or
// $FRIDGECHEF_PASSWORD, in that order
type passwordInput struct {
	flag      string
	fromStdin bool
}

func (p *passwordInput) register(cmd *cobra.Command, usage string) {
	cmd.Flags().StringVar(&p.flag, "password", "", usage+" (visible in shell history; prefer $"+passwordEnv+" or --password-stdin)")
	cmd.Flags().BoolVar(&p.fromStdin, "password-stdin", false, "Read the password from the first line of stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
}

func (p *passwordInput) read(cmd *cobra.Command) (string, error) {
	if p.fromStdin {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return "", fmt.Errorf("failed to read password from stdin: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	if p.flag != "" {
		return p.flag, nil
	}
	return os.Getenv(passwordEnv), nil
}

func newLoginCmd(opts *options) *cobra.Command {
	var email string
	var password passwordInput

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print a token to export",
		Long: `Signs in with email and password and remembers your user id.

The token is printed as export FRIDGECHEF_TOKEN=<token>. Eval it for later
commands; it is not stored anywhere.

Example:
  eval "$(fridgechef login --email ada@example.com --password-stdin < pw.txt)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := password.read(cmd)
			if err != nil {
				return err
			}
			sess, err := opts.app.auth.Login(cmd.Context(), email, pw)
			if err != nil {
				return err
			}
			printSession(cmd, sess)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	password.register(cmd, "Account password")
	return cmd
}

func newSignupCmd(opts *options) *cobra.Command {
	var name, email string
	var password passwordInput

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and print a token to export",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := password.read(cmd)
			if err != nil {
				return err
			}
			sess, err := opts.app.auth.Signup(cmd.Context(), name, email, pw)
			if err != nil {
				return err
			}
			printSession(cmd, sess)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	password.register(cmd, "Account password (at least 6 characters)")
	return cmd
}

func printSession(cmd *cobra.Command, sess *session.Session) {
	fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", tokenEnv, sess.Credential.Token)
	fmt.Fprintf(cmd.ErrOrStderr(), "Signed in as %s\n", sess.UserID)
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out. You can unset "+tokenEnv+".")
			return nil
		},
	}
}

func newWhoamiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := opts.app.profiles.Profile(cmd.Context(), opts.app.cred)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), profile)
			return nil
		},
	}
}
