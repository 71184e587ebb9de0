// Package linnerud bundles the Linnerud multi-output regression data set:
// three exercise variables and three physiological variables measured on
// twenty middle-aged men in a fitness club.
package linnerud

//go:generate go run ../../cmd/datagen generate linnerud

// NumFeatures is the number of exercise variables.
const NumFeatures = 3

// NumRows is the number of records in Data.
const NumRows = len(Data)

// FeatureNames labels the exercise variables returned by Exercise.
var FeatureNames = [NumFeatures]string{"Chins", "Situps", "Jumps"}

// TargetNames labels the physiological variables returned by Physiological.
var TargetNames = [3]string{"Weight", "Waist", "Pulse"}

// All returns a copy of Data that callers may modify.
func All() []Linnerud {
	out := make([]Linnerud, NumRows)
	copy(out, Data[:])
	return out
}

// Exercise returns the record's exercise variables in FeatureNames order.
func (r Linnerud) Exercise() [NumFeatures]int32 {
	return [NumFeatures]int32{r.Chins, r.Situps, r.Jumps}
}

// Physiological returns the record's targets in TargetNames order.
func (r Linnerud) Physiological() [3]int32 {
	return [3]int32{r.Weight, r.Waist, r.Pulse}
}
