// Package cli provides the bstree command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamOgunyinka/DSA/internal/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// configKey and loggerKey store per-invocation state in the command context.
type (
	configKey struct{}
	loggerKey struct{}
)

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "bstree",
		Short: "Build, query and draw binary search trees",
		Long: `bstree builds an unbalanced binary search tree from the integer
values given as arguments, inserted left to right, and then traverses,
queries, edits or exports it.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if cfg.FileUsed != "" {
				logger.Debug("using config file", "path", cfg.FileUsed)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bstree.yaml)")
	rootCmd.PersistentFlags().String("order", "", "traversal order (pre|in|post|breadth)")
	rootCmd.PersistentFlags().Bool("reverse", false, "order values descending")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (text|table)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log tree mutations to stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("order", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"pre", "in", "post", "breadth"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputTable}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newTraverseCommand())
	rootCmd.AddCommand(newFindCommand())
	rootCmd.AddCommand(newRemoveCommand())
	rootCmd.AddCommand(newDOTCommand())
	rootCmd.AddCommand(newPrintCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// getConfig returns the config stored by PersistentPreRunE, or defaults.
func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}

	return config.Default()
}

// getLogger returns the logger stored by PersistentPreRunE, or slog.Default.
func getLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}

	return slog.Default()
}
