// Package display decides between human and machine output for CLI commands.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/datasets/errors"
)

// EnvJSON selects JSON output when no --json flag is given.
const EnvJSON = "DATAGEN_JSON"

// WantJSON reports whether cmd should print JSON. An explicit --json flag on
// the command or the root wins; otherwise DATAGEN_JSON is consulted.
func WantJSON(cmd *cobra.Command) bool {
	if cmd != nil {
		if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
			v, _ := cmd.Flags().GetBool("json")
			return v
		}
		if f := cmd.Root().PersistentFlags().Lookup("json"); f != nil && f.Changed {
			v, _ := cmd.Root().PersistentFlags().GetBool("json")
			return v
		}
	}

	v, err := strconv.ParseBool(os.Getenv(EnvJSON))
	return err == nil && v
}

// PrintJSON writes v as indented JSON followed by a newline.
func PrintJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
