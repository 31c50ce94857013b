// Package cli implements the lvldsa command-line interface.
//
// # Commands
//
//   - list: show the lessons
//   - run: print one or more lesson demonstrations
//   - bench: compare the linear and BST user databases
//   - tree: parse a tuple-notation tree, print its stats and renderings
//   - graph: show a fixture graph, or print it as DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger and
// the loaded configuration travel through context.Context.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvldsa/internal/config"
)

var version = "dev"

// SetVersion sets the string reported by --version.
func SetVersion(v string) { version = v }

// NewRootCommand builds the command tree. Command output goes to
// cmd.OutOrStdout and logs to cmd.ErrOrStderr.
func NewRootCommand() *cobra.Command {
	var (
		verbose bool
		cfgPath string
		seed    int64
	)

	root := &cobra.Command{
		Use:          "lvldsa",
		Short:        "lvldsa runs the lessons of a data structures and algorithms course",
		Long:         `lvldsa is a course log: every lesson's data structures, algorithms and practice problems, runnable as demonstrations.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			logger.Debug("configuration ready", "path", cfgPath, "seed", cfg.Seed)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withConfig(withLogger(ctx, logger), cfg))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (overrides config)")

	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newTreeCmd())
	root.AddCommand(newGraphCmd())

	return root
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
