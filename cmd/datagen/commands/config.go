package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/datasets/config"
	"github.com/teranos/datasets/display"
	"github.com/teranos/datasets/errors"
)

// ConfigCmd groups configuration subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the datagen configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults and DATAGEN_* environment overrides
are applied, with every dataset's derived names and paths filled in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if display.WantJSON(cmd) {
			return printJSON(cfg)
		}
		out, err := cfg.Render()
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n", cfg.Path)
		os.Stdout.Write(out)
		return nil
	},
}

var configLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report unknown keys and invalid settings",
	Long: `Check the config file for keys datagen does not recognise (usually typos
such as strict_heder) and for settings that fail validation. Exits non-zero
when anything is reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ConfigPath
		if path == "" {
			wd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, "failed to get working directory")
			}
			if path, err = config.Find(wd); err != nil {
				return err
			}
		}

		unknown, err := config.LintFile(path)
		if err != nil {
			return err
		}
		for _, key := range unknown {
			pterm.Warning.Printfln("unknown key %s", key)
		}

		cfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		invalid := errors.Errors(cfg.Validate())
		for _, e := range invalid {
			pterm.Error.Println(e.Error())
		}

		if n := len(unknown) + len(invalid); n > 0 {
			return errors.Newf("%s: %d problem(s) found", path, n)
		}
		pterm.Success.Printfln("%s is valid", path)
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configLintCmd)
}
