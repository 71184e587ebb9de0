// Package scale centers dataset columns on their mean.
package scale

// Scalable is a record whose columns can be read and written as float64.
// Float reports false for a column that does not take part in scaling.
type Scalable interface {
	ColumnCount() int
	Float(i int) (float64, bool)
	SetFloat(i int, v float64)
}

// ColumnMeans returns the mean of every column over rows. Columns that no row
// reports are zero.
func ColumnMeans[T any, P interface {
	*T
	Scalable
}](rows []T) []float64 {
	if len(rows) == 0 {
		return nil
	}

	cols := P(&rows[0]).ColumnCount()
	sums := make([]float64, cols)
	counts := make([]int, cols)
	for i := range rows {
		row := P(&rows[i])
		for j := range cols {
			if v, ok := row.Float(j); ok {
				sums[j] += v
				counts[j]++
			}
		}
	}

	for j := range cols {
		if counts[j] > 0 {
			sums[j] /= float64(counts[j])
		}
	}
	return sums
}

// SubtractMean shifts every reported column of rows so its mean is zero.
// Rows are modified in place; empty input is a no-op.
func SubtractMean[T any, P interface {
	*T
	Scalable
}](rows []T) {
	means := ColumnMeans[T, P](rows)
	for i := range rows {
		row := P(&rows[i])
		for j, mean := range means {
			if v, ok := row.Float(j); ok {
				row.SetFloat(j, v-mean)
			}
		}
	}
}
