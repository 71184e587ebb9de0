package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/datasets/display"
	"github.com/teranos/datasets/version"
)

// VersionCmd prints build information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show datagen version information",
	Long:  `Display version, build time, commit hash and platform of the datagen binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		if display.WantJSON(cmd) {
			return printJSON(info)
		}
		fmt.Println(info.String())
		fmt.Printf("Platform: %s\n", info.Platform)
		fmt.Printf("Go: %s\n", info.GoVersion)
		return nil
	},
}
