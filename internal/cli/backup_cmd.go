package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/importer"
	"github.com/spf13/cobra"
)

func newActivityExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every activity to a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := app.Backup.Export(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return importer.WriteImportSchema(cmd.OutOrStdout(), schema)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			if err := importer.WriteImportSchema(f, schema); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s activities to %s\n",
				formatter.Count(len(schema.Activities)), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newActivityImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Load activities from a JSON backup",
		Long: `Load activities from a JSON backup written by "activity export".

The whole file is validated first and written in one transaction.
Activities whose id already exists are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Backup.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s activities", formatter.Count(res.Imported))
			if res.Skipped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " (%s already present)", formatter.Count(res.Skipped))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
