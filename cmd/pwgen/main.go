// Command pwgen generates passwords from the terminal and manages the local
// password history.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

// app holds the services shared by all subcommands. It is populated in
// PersistentPreRunE so commands that need no history stay cheap.
type app struct {
	cfg       config.Config
	store     repository.KeyValueStore
	history   *service.HistoryService
	generator *service.GeneratorService
	clipboard clipboard.Sink
}

func main() {
	if err := newRootCmd(&app{clipboard: clipboard.System{}}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	var historyFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "pwgen",
		Short: "Generate passwords, passphrases and pronounceable passwords.",
		Long: `pwgen generates passwords locally from the operating system's secure
random source, scores their strength and keeps the last 100 results in a
history that can be searched, annotated and exported.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			_ = godotenv.Load()
			a.cfg = config.Load()
			if historyFile != "" {
				a.cfg.HistoryFile = historyFile
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			a.store = repository.Open(ctx, a.cfg.DatabaseDSN, a.cfg.HistoryFile)
			a.history = service.NewHistoryService(a.store, time.Now)
			a.history.Load(ctx)
			a.generator = service.NewGeneratorService(crypto.NewGenerator(crypto.CryptoSource{}, nil), a.history)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.store == nil {
				return nil
			}
			return a.store.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&historyFile, "history-file", "", "history file (default $HISTORY_FILE or ./password-history.json)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(
		newGenerateCmd(a),
		newStrengthCmd(),
		newHistoryCmd(a),
		newExportCmd(a),
		newHashPasswordCmd(),
		newPoliciesCmd(),
	)
	return cmd
}

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength <password>",
		Short: "Score a password without recording it",
		Args:  cobra.ExactArgs(1),
		// Scoring needs no history.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			s := service.Score(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", s.Score, s.Label)
			return nil
		},
	}
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print an Argon2id hash suitable for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := crypto.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the password policy templates",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range crypto.PolicyNames() {
				opts, err := crypto.ApplyPolicy(name, crypto.PasswordOptions{})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s length=%d numbers=%t symbols=%t exclude-ambiguous=%t\n",
					name, opts.Length, opts.Numbers, opts.Symbols, opts.ExcludeAmbiguous)
			}
			return nil
		},
	}
}
