// Command datagen turns raw CSV datasets into typed Go source.
package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/datasets/cmd/datagen/commands"
	"github.com/teranos/datasets/display"
	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/logger"
)

var rootCmd = &cobra.Command{
	Use:   "datagen",
	Short: "Generate typed Go datasets from CSV",
	Long: `datagen reads the datasets declared in datagen.toml, parses each raw CSV
against its column schema and writes a gofmt-formatted Go file holding a
record struct and a fixed-length table of every parsed row.

Available commands:
  generate - Regenerate dataset sources (optionally watching for changes)
  check    - Verify committed dataset sources are up to date
  fetch    - Download raw CSV files for datasets with a url
  config   - Show or lint the configuration
  version  - Show datagen version information

Examples:
  datagen generate            # Regenerate every dataset
  datagen generate iris -v    # One dataset, with per-row warnings
  datagen generate --watch    # Regenerate on every CSV or config change
  datagen check               # Fail if a generated file is stale
  datagen fetch iris          # Download raw_data/iris.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(display.WantJSON(cmd), verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	// Plain output when piped.
	if fi, err := os.Stdout.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		pterm.DisableColor()
	}

	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().StringVarP(&commands.ConfigPath, "config", "c", "", "Path to datagen.toml (default: nearest one above the working directory)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit JSON logs and results (or set DATAGEN_JSON=1)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.FetchCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(err)
		os.Exit(1)
	}
}
