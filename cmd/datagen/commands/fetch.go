package commands

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/datasets/display"
	"github.com/teranos/datasets/fetch"
)

var (
	fetchForce        bool
	fetchTimeout      time.Duration
	fetchAllowPrivate bool
)

// FetchCmd downloads raw dataset sources.
var FetchCmd = &cobra.Command{
	Use:   "fetch [dataset...]",
	Short: "Download raw CSV files for datasets with a url",
	Long: `Download each selected dataset's url into its source path. Files that are
already present are left alone unless --force is given.

Any address go-getter understands works as a url: http(s), local paths,
s3:: and gcs:: sources. Downloads over http(s) refuse private and loopback
addresses unless --allow-private is set.

Examples:
  datagen fetch                  # Every dataset with a url
  datagen fetch iris --force     # Re-download iris`,
	RunE: runFetch,
}

func init() {
	FetchCmd.Flags().BoolVarP(&fetchForce, "force", "f", false, "Re-download sources that already exist")
	FetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 5*time.Minute, "Timeout for each http(s) download")
	FetchCmd.Flags().BoolVar(&fetchAllowPrivate, "allow-private", false, "Allow downloads from private and loopback addresses")
}

type fetchView struct {
	Dataset string `json:"dataset"`
	Path    string `json:"path"`
	Bytes   int64  `json:"bytes"`
	Skipped bool   `json:"skipped"`
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	selected, err := cfg.Select(args)
	if err != nil {
		return err
	}
	targets, err := fetch.Targets(cfg, selected)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	f := &fetch.Fetcher{
		Force:        fetchForce,
		Pwd:          cfg.Root(),
		Timeout:      fetchTimeout,
		AllowPrivate: fetchAllowPrivate,
	}
	results, fetchErr := f.Fetch(ctx, targets)

	if display.WantJSON(cmd) {
		views := make([]fetchView, len(results))
		for i, r := range results {
			views[i] = fetchView{Dataset: r.Name, Path: r.Path, Bytes: r.Bytes, Skipped: r.Skipped}
		}
		if err := printJSON(views); err != nil {
			return err
		}
		return fetchErr
	}

	for _, r := range results {
		if r.Skipped {
			pterm.Printf("%s %s already present (%s)\n", pterm.Gray("-"), r.Name, humanize.Bytes(uint64(r.Bytes)))
			continue
		}
		pterm.Printf("%s %s %s → %s\n", pterm.Green("✓"), r.Name, humanize.Bytes(uint64(r.Bytes)), r.Path)
	}
	return fetchErr
}
