package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/model"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		req     model.GenerateRequest
		upper   bool
		lower   bool
		numbers bool
		symbols bool
		sep     string
		copyOut bool
		noWait  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password and record it in history",
		Long: `Generates a password in one of three modes:

  password       random characters from the selected classes
  passphrase     dictionary words joined by a separator
  pronounceable  alternating vowels and consonants

With --count greater than 1 a batch is printed and nothing is recorded.
With --copy the password is placed on the clipboard and cleared again after
CLIPBOARD_CLEAR_AFTER unless the clipboard changed in the meantime.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("upper") {
				req.Uppercase = &upper
			}
			if flags.Changed("lower") {
				req.Lowercase = &lower
			}
			if flags.Changed("numbers") {
				req.Numbers = &numbers
			}
			if flags.Changed("symbols") {
				req.Symbols = &symbols
			}
			if flags.Changed("separator") {
				req.Separator = &sep
			}

			out := cmd.OutOrStdout()

			if req.Count > 1 {
				batch, err := a.generator.Batch(req)
				if err != nil {
					return err
				}
				for _, p := range batch.Passwords {
					fmt.Fprintln(out, p)
				}
				return nil
			}

			resp, err := a.generator.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, resp.Password)
			fmt.Fprintf(cmd.ErrOrStderr(), "strength: %d (%s)\n", resp.Strength.Score, resp.Strength.Label)

			if !copyOut {
				return nil
			}

			guard := clipboard.NewGuard(a.clipboard, a.cfg.ClipboardClearAfter, nil)
			if !guard.Copy(resp.Password) {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
			if noWait || a.cfg.ClipboardClearAfter <= 0 {
				guard.Cancel()
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "clearing clipboard in %s\n", a.cfg.ClipboardClearAfter)
			guard.Wait()
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&req.Mode, "mode", "m", "password", "password, passphrase or pronounceable")
	f.StringVar(&req.Policy, "policy", "", "policy template for password mode (see pwgen policies)")
	f.IntVarP(&req.Length, "length", "l", 0, "password length (default 16, pronounceable 12)")
	f.BoolVar(&upper, "upper", true, "include uppercase letters")
	f.BoolVar(&lower, "lower", true, "include lowercase letters")
	f.BoolVar(&numbers, "numbers", true, "include digits")
	f.BoolVar(&symbols, "symbols", true, "include symbols")
	f.BoolVar(&req.ExcludeAmbiguous, "exclude-ambiguous", false, "leave out 0oO1lI")
	f.StringVar(&req.CustomChars, "custom", "", "extra characters to draw from")
	f.IntVarP(&req.WordCount, "words", "w", 0, "passphrase word count (default 4)")
	f.StringVar(&sep, "separator", "-", "passphrase word separator")
	f.BoolVar(&req.Capitalize, "capitalize", false, "capitalize passphrase words")
	f.BoolVar(&req.AppendNumber, "append-number", false, "append a 3 digit number to the passphrase")
	f.IntVarP(&req.Count, "count", "n", 1, "number of passwords; more than 1 prints a batch without recording")
	f.BoolVarP(&copyOut, "copy", "c", false, "copy the password to the clipboard")
	f.BoolVar(&noWait, "no-wait", false, "with --copy, exit immediately and leave the clipboard as is")
	return cmd
}
