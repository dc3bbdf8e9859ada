package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

func newExportCmd(a *app) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the history as json, csv or txt",
		Long: `Writes the history to a file named password-history.<format> in the
current directory unless --out is given. Use --out - to print to stdout.
Exports contain plaintext passwords and are written with mode 0600.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseExportFormat(format)
			if err != nil {
				return err
			}

			content, err := service.Export(a.history.Entries(), f)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
				return err
			}
			if out == "" {
				out = f.Filename()
			}
			if err := os.WriteFile(out, []byte(content), 0o600); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d entries to %s (%s)\n", a.history.Len(), out, f.MIMEType())
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, csv or txt")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout")
	return cmd
}
