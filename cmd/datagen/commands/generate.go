package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/datasets/config"
	"github.com/teranos/datasets/datagen"
	"github.com/teranos/datasets/display"
	"github.com/teranos/datasets/logger"
)

var (
	generateStrict bool
	generateJobs   int
	generateWatch  bool
)

// GenerateCmd regenerates dataset sources.
var GenerateCmd = &cobra.Command{
	Use:   "generate [dataset...]",
	Short: "Generate Go sources from raw CSV datasets",
	Long: `Parse each dataset's raw CSV against its schema and write the generated
Go file. Rows that fail to parse are dropped with a warning; with --strict any
dropped row fails the dataset and leaves its previous file untouched.

A failed dataset never stops the others. The command exits non-zero when any
dataset failed.

Examples:
  datagen generate                 # Every configured dataset
  datagen generate iris linnerud   # Only these, in this order
  datagen generate --strict        # Fail on any unparseable row
  datagen generate --watch         # Keep regenerating on changes`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().BoolVar(&generateStrict, "strict", false, "Treat any dropped row as fatal")
	GenerateCmd.Flags().IntVarP(&generateJobs, "jobs", "j", 0, "Datasets generated in parallel (default: generate.jobs from config)")
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Watch raw CSV files and the config, regenerating on change")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	datasets, err := resolveDatasets(cfg, args)
	if err != nil {
		return err
	}

	jobs := cfg.Generate.Jobs
	if generateJobs > 0 {
		jobs = generateJobs
	}
	gen := &datagen.Generator{Jobs: jobs, Strict: generateStrict}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	jsonOut := display.WantJSON(cmd)
	results, runErr := gen.Run(ctx, datasets)
	if err := printResults(results, jsonOut); err != nil {
		return err
	}
	if !generateWatch {
		return runErr
	}

	reload := func() ([]datagen.Dataset, error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		return resolveDatasets(cfg, args)
	}
	w, err := datagen.NewWatcher(gen, datasets, cfg.Path, reload, func(results []datagen.Result, err error) {
		if perr := printResults(results, jsonOut); perr != nil {
			logger.Warnw("failed to print results", logger.FieldError, perr)
		}
	})
	if err != nil {
		return err
	}

	if !jsonOut {
		pterm.Info.Printfln("Watching %d dataset(s) and %s (Ctrl+C to stop)", len(datasets), filepath.Base(cfg.Path))
	}
	return w.Run(ctx)
}

func resolveDatasets(cfg *config.Config, names []string) ([]datagen.Dataset, error) {
	selected, err := cfg.Select(names)
	if err != nil {
		return nil, err
	}
	return datagen.FromConfig(cfg, selected)
}

type resultView struct {
	Dataset    string `json:"dataset"`
	Output     string `json:"output"`
	Retained   int    `json:"retained"`
	Dropped    int    `json:"dropped"`
	Bytes      int    `json:"bytes"`
	Changed    bool   `json:"changed"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// printResults renders a summary table, or JSON with --json.
func printResults(results []datagen.Result, jsonOut bool) error {
	if jsonOut {
		views := make([]resultView, len(results))
		for i, r := range results {
			views[i] = resultView{
				Dataset:    r.Dataset,
				Output:     r.Output,
				Retained:   r.Retained,
				Dropped:    r.Dropped,
				Bytes:      r.Bytes,
				Changed:    r.Changed,
				DurationMS: r.Duration.Milliseconds(),
				Error:      errString(r.Err),
			}
		}
		return printJSON(views)
	}

	data := pterm.TableData{{"Dataset", "Rows", "Dropped", "Size", "Status"}}
	showTiming := logger.ShouldOutput(logger.Verbosity, logger.OutputTiming)
	if showTiming {
		data[0] = append(data[0], "Time")
	}
	failed := 0
	for _, r := range results {
		row := []string{r.Dataset, "-", "-", "-", ""}
		switch {
		case r.Err != nil:
			failed++
			row[4] = pterm.Red("✗ failed")
		default:
			row[1] = fmt.Sprintf("%d", r.Retained)
			row[2] = fmt.Sprintf("%d", r.Dropped)
			if r.Dropped > 0 {
				row[2] = pterm.Yellow(row[2])
			}
			row[3] = humanize.Bytes(uint64(r.Bytes))
			if r.Changed {
				row[4] = pterm.Green("✓ written")
			} else {
				row[4] = pterm.Gray("unchanged")
			}
		}
		if showTiming {
			row = append(row, r.Duration.Round(time.Millisecond).String())
		}
		data = append(data, row)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	if failed > 0 {
		pterm.Warning.Printfln("%d of %d dataset(s) failed", failed, len(results))
	}
	return nil
}
