package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/app/services/core/gate"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/dto/requests"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"strings"

	"github.com/spf13/cobra"
)

func loginCmd(options *cliOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newCLIApp(options)
			if err != nil {
				return err
			}

			if password == "" {
				password, err = readLine(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
				if err != nil {
					return err
				}
			}

			// Bind flags to request
			request := &requests.Login{Email: email, Password: password}
			// Sanitize request
			utils.SanitizeLoginRequest(request)

			// Validate request
			err = utils.ValidateForm(request)
			if err != nil {
				return errors.New(exceptions.ClientMessage(err))
			}

			ctx, cancel := app.context()
			defer cancel()

			session, _, err := app.AuthUsecase.Login(ctx, request)
			if err != nil {
				return errors.New(exceptions.MessageOrDefault(err, constvars.ErrClientInvalidCredentials))
			}

			user := session.CurrentUser()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", describeUser(user))
			if !user.HasRole() {
				app.Out.Warnf("No role selected yet; finish %s in the portal", gate.PostAuthPath(user))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func logoutCmd(options *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newCLIApp(options)
			if err != nil {
				return err
			}

			ctx, cancel := app.context()
			defer cancel()

			session, err := app.loadSession(ctx)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}

			err = app.AuthUsecase.Logout(ctx, session)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func whoamiCmd(options *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the user of the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newCLIApp(options)
			if err != nil {
				return err
			}

			ctx, cancel := app.context()
			defer cancel()

			session, err := app.loadSession(ctx)
			if err != nil {
				return errors.New(exceptions.ClientMessage(err))
			}

			user := session.CurrentUser()
			role := "none"
			if user.HasRole() {
				role = string(user.Role)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\nrole: %s\n", describeUser(user), role)
			return nil
		},
	}
}

func describeUser(user *models.User) string {
	if user == nil || user.Email == "" {
		return user.DisplayName("unknown user")
	}
	return fmt.Sprintf("%s <%s>", user.DisplayName(user.Email), user.Email)
}

// readLine prints prompt to out and reads one trimmed line from in.
func readLine(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
