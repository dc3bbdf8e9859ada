package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, search, annotate and delete recorded passwords",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List history entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := a.history.Entries()
			if search != "" {
				entries = a.history.Search(search)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No passwords generated yet")
				return nil
			}
			return printEntries(cmd.OutOrStdout(), entries)
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "only show passwords containing this text (case-insensitive)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.history.Delete(cmd.Context(), args[0])
			return nil
		},
	}

	var yes bool
	wipe := &cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear %d entries without --yes", a.history.Len())
			}
			a.history.Clear(cmd.Context())
			return nil
		},
	}
	wipe.Flags().BoolVarP(&yes, "yes", "y", false, "confirm clearing the whole history")

	note := &cobra.Command{
		Use:   "note <id> <text>...",
		Short: "Set the notes of a history entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.history.UpdateNotes(cmd.Context(), args[0], strings.Join(args[1:], " "))
			return err
		},
	}

	cmd.AddCommand(list, del, wipe, note)
	return cmd
}

func printEntries(w io.Writer, entries []model.HistoryEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tSTRENGTH\tPASSWORD\tNOTES")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Mode,
			crypto.StrengthLabel(e.Strength),
			e.Password,
			e.Notes,
		)
	}
	return tw.Flush()
}
