package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/datasets/datagen"
	"github.com/teranos/datasets/display"
)

// CheckCmd verifies generated dataset sources without writing them.
var CheckCmd = &cobra.Command{
	Use:   "check [dataset...]",
	Short: "Check that generated dataset sources are up to date",
	Long: `Render every dataset in memory and compare the result with the file on disk.
Nothing is written.

Exit codes:
  0 - Every generated file is up to date
  1 - A file is stale or missing, or a dataset failed to render

Examples:
  datagen check          # Check every dataset
  datagen check iris     # Check one dataset`,
	RunE: runCheck,
}

type checkView struct {
	Dataset string `json:"dataset"`
	Output  string `json:"output"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	datasets, err := resolveDatasets(cfg, args)
	if err != nil {
		return err
	}

	gen := &datagen.Generator{Jobs: cfg.Generate.Jobs}
	results, checkErr := gen.Check(datasets)

	if display.WantJSON(cmd) {
		views := make([]checkView, len(results))
		for i, r := range results {
			views[i] = checkView{Dataset: r.Dataset, Output: r.Output, Status: r.Status.String(), Error: errString(r.Err)}
		}
		if err := printJSON(views); err != nil {
			return err
		}
		return checkErr
	}

	for _, r := range results {
		switch {
		case r.Err != nil:
			pterm.Printf("%s %s: %v\n", pterm.Red("✗"), r.Dataset, r.Err)
		case r.Status == datagen.UpToDate:
			pterm.Printf("%s %s up to date\n", pterm.Green("✓"), r.Dataset)
		default:
			pterm.Printf("%s %s %s (%s)\n", pterm.Red("✗"), r.Dataset, r.Status, r.Output)
		}
	}
	if checkErr == nil {
		pterm.Success.Println("All generated datasets are up to date")
	}
	return checkErr
}
