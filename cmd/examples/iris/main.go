// Command iris prints a summary of the bundled iris data set, before and
// after centering the features on their means.
package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/teranos/datasets/datasets/iris"
	"github.com/teranos/datasets/scale"
)

func main() {
	rows := iris.All()

	counts := make([]int, len(iris.TargetNames))
	for _, r := range rows {
		if s := r.Species(); s >= 0 {
			counts[s]++
		}
	}

	pterm.DefaultHeader.Println("Iris")
	fmt.Printf("%d records, %d features\n\n", iris.NumRows, iris.NumFeatures)
	for i, name := range iris.TargetNames {
		fmt.Printf("  %-16s %d\n", name, counts[i])
	}

	means := scale.ColumnMeans(rows)
	data := pterm.TableData{{"Feature", "Mean", "First row", "Centered"}}
	first := rows[0].Features()
	scale.SubtractMean(rows)
	centered := rows[0].Features()
	for i, name := range iris.FeatureNames {
		data = append(data, []string{
			name,
			fmt.Sprintf("%.4f", means[i]),
			fmt.Sprintf("%.1f", first[i]),
			fmt.Sprintf("%+.4f", centered[i]),
		})
	}
	fmt.Println()
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
