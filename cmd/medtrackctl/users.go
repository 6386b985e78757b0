package main

import (
	"errors"
	"fmt"
	"io"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func usersCmd(options *cliOptions) *cobra.Command {
	var roleName string

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List the users holding a role",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := models.ParseRole(roleName)
			if err != nil {
				return errors.New(constvars.ErrClientInvalidRole)
			}

			app, err := newCLIApp(options)
			if err != nil {
				return err
			}

			ctx, cancel := app.context()
			defer cancel()
			ctx, err = app.adminContext(ctx)
			if err != nil {
				return errors.New(exceptions.ClientMessage(err))
			}

			users, err := app.AdminAPI.GetUsersByRole(ctx, role)
			if err != nil {
				return errors.New(exceptions.MessageOrDefault(err, constvars.ErrClientLoadAdminRecords))
			}
			printUsers(cmd.OutOrStdout(), users)
			return nil
		},
	}

	cmd.Flags().StringVarP(&roleName, "role", "r", "", "PATIENT, DOCTOR, PHARMACIST or ADMIN")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func printUsers(out io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(out, "No users found.")
		return
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tEMAIL\tENABLED")
	for _, user := range users {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%t\n", user.ID, user.DisplayName("-"), user.Email, user.Enabled)
	}
	writer.Flush()
}
