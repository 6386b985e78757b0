package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/app/services/core/records"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func recordsCmd(options *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List, save and delete admin records",
	}
	cmd.AddCommand(
		recordKindsCmd(),
		recordListCmd(options),
		recordSaveCmd(options),
		recordDeleteCmd(options),
	)
	return cmd
}

func recordKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the record kinds",
		Run: func(cmd *cobra.Command, args []string) {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, kind := range records.Kinds() {
				fmt.Fprintf(writer, "%s\t%s\t%s\n", kind.Key(), kind.Label(), kind.Hint())
			}
			writer.Flush()
		},
	}
}

func recordListCmd(options *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <kind>",
		Short: "List the records of a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newCLIApp(options)
			if err != nil {
				return err
			}
			editor, err := app.openEditor(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := app.context()
			defer cancel()
			ctx, err = app.adminContext(ctx)
			if err != nil {
				return errors.New(exceptions.ClientMessage(err))
			}

			err = editor.Load(ctx)
			if err != nil {
				return errors.New(editor.Error)
			}
			printRecords(cmd.OutOrStdout(), editor.Active, editor.Rows())
			return nil
		},
	}
}

func recordSaveCmd(options *cliOptions) *cobra.Command {
	var recordID, file string

	cmd := &cobra.Command{
		Use:   "save <kind>",
		Short: "Create a record, or update one with --id, from a JSON draft",
		Long: `Reads a JSON object from --file, or from stdin when --file is "-" or empty,
and sends it through the same normalization and checks as the control center.
Run "records save <kind> --template" to print the empty draft of a kind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newCLIApp(options)
			if err != nil {
				return err
			}
			editor, err := app.openEditor(args[0])
			if err != nil {
				return err
			}

			if template, _ := cmd.Flags().GetBool("template"); template {
				fmt.Fprintln(cmd.OutOrStdout(), editor.Draft)
				return nil
			}

			draft, err := readDraft(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			ctx, cancel := app.context()
			defer cancel()
			ctx, err = app.adminContext(ctx)
			if err != nil {
				return errors.New(exceptions.ClientMessage(err))
			}

			editor.EditingID = recordID
			editor.Draft = draft
			err = editor.Save(ctx)
			if editor.Message != "" {
				fmt.Fprintln(cmd.OutOrStdout(), editor.Message)
				if err != nil {
					app.Out.Warnf("Saved, but reloading failed: %s", editor.Error)
				}
				return nil
			}
			if err != nil {
				return errors.New(editor.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&recordID, "id", "", "Id of the record to update")
	cmd.Flags().StringVarP(&file, "file", "f", "", `JSON draft file ("-" for stdin)`)
	cmd.Flags().Bool("template", false, "Print the empty draft of the kind and exit")
	return cmd
}

func recordDeleteCmd(options *cliOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <kind> <id>",
		Short: "Delete a record after confirmation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newCLIApp(options)
			if err != nil {
				return err
			}
			editor, err := app.openEditor(args[0])
			if err != nil {
				return err
			}
			recordID := args[1]

			ctx, err := app.adminContext(newRequestContext())
			if err != nil {
				return errors.New(exceptions.ClientMessage(err))
			}

			confirmed := yes
			if !confirmed {
				prompt := fmt.Sprintf("Delete %s %s? [y/N] ", strings.ToLower(editor.Active.Singular()), recordID)
				confirmed, err = confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
				if err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(ctx, app.Config.API.Timeout())
			defer cancel()

			err = editor.Delete(ctx, recordID, confirmed)
			if err != nil && editor.Message == "" {
				if editor.Error == "" {
					// Declined at the prompt.
					fmt.Fprintln(cmd.OutOrStdout(), exceptions.ClientMessage(err))
					return nil
				}
				return errors.New(editor.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), editor.Message)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

func (a *cliApp) openEditor(kindKey string) (*records.Editor, error) {
	editor := records.NewEditor(a.AdminAPI, a.Log)
	err := editor.Select(kindKey)
	if err != nil {
		return nil, fmt.Errorf("%s Known kinds: %s", exceptions.ClientMessage(err), kindKeys())
	}
	return editor, nil
}

func kindKeys() string {
	keys := make([]string, 0, len(records.Kinds()))
	for _, kind := range records.Kinds() {
		keys = append(keys, kind.Key())
	}
	return strings.Join(keys, ", ")
}

func printRecords(out io.Writer, kind records.Kind, rows []models.Record) {
	if len(rows) == 0 {
		fmt.Fprintf(out, "No %s found.\n", strings.ToLower(kind.Label()))
		return
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tSUMMARY\tDETAILS\tUPDATED")
	for _, record := range rows {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", record.ID(), kind.Summary(record), kind.Details(record), records.UpdatedAt(record))
	}
	writer.Flush()
}

// readDraft reads the JSON draft from path, or from in for "" and "-".
func readDraft(in io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}

	draft := strings.TrimSpace(string(data))
	if draft == "" {
		return "", errors.New(constvars.ErrClientInvalidJSON)
	}
	return draft, nil
}

// confirm asks a yes/no question; only "y" and "yes" confirm.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	answer, err := readLine(in, out, prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
