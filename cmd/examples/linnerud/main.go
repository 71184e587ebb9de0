// Command linnerud prints the range of every variable in the bundled
// Linnerud data set.
package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/teranos/datasets/datasets/linnerud"
)

func main() {
	pterm.DefaultHeader.Println("Linnerud")
	fmt.Printf("%d records\n\n", linnerud.NumRows)

	data := pterm.TableData{{"Variable", "Kind", "Min", "Max", "Mean"}}
	for i, name := range linnerud.FeatureNames {
		data = append(data, summarize(name, "exercise", func(r linnerud.Linnerud) int32 { return r.Exercise()[i] }))
	}
	for i, name := range linnerud.TargetNames {
		data = append(data, summarize(name, "physiological", func(r linnerud.Linnerud) int32 { return r.Physiological()[i] }))
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func summarize(name, kind string, value func(linnerud.Linnerud) int32) []string {
	lo, hi := value(linnerud.Data[0]), value(linnerud.Data[0])
	var sum int64
	for _, r := range linnerud.Data {
		v := value(r)
		lo = min(lo, v)
		hi = max(hi, v)
		sum += int64(v)
	}
	mean := float64(sum) / float64(linnerud.NumRows)
	return []string{name, kind, fmt.Sprint(lo), fmt.Sprint(hi), fmt.Sprintf("%.2f", mean)}
}
