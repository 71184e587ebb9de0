// Package iris bundles Fisher's Iris data set: 150 flowers, 50 from each of
// three species, measured on four features.
//
// Data is generated from raw_data/iris.csv. Iris records implement
// scale.Scalable, so the features can be centered with scale.SubtractMean.
package iris

//go:generate go run ../../cmd/datagen generate iris

// NumFeatures is the number of measured columns.
const NumFeatures = 4

// NumRows is the number of records in Data.
const NumRows = len(Data)

// FeatureNames labels the measured columns in record order.
var FeatureNames = [NumFeatures]string{
	"sepal length (cm)",
	"sepal width (cm)",
	"petal length (cm)",
	"petal width (cm)",
}

// TargetNames are the species, indexed by Species.
var TargetNames = [3]string{
	"Iris setosa",
	"Iris versicolor",
	"Iris virginica",
}

// classes maps the Class column to its TargetNames index.
var classes = map[string]int{
	"Iris-setosa":     0,
	"Iris-versicolor": 1,
	"Iris-virginica":  2,
}

// All returns a copy of Data that callers may modify.
func All() []Iris {
	out := make([]Iris, NumRows)
	copy(out, Data[:])
	return out
}

// Features returns the four measurements.
func (r Iris) Features() [NumFeatures]float64 {
	return [NumFeatures]float64{r.SepalLengthInCm, r.SepalWidthInCm, r.PetalLengthInCm, r.PetalWidthInCm}
}

// Species returns the TargetNames index of the record's class, or -1 for an
// unknown class.
func (r Iris) Species() int {
	if i, ok := classes[r.Class]; ok {
		return i
	}
	return -1
}
