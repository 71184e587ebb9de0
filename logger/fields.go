package logger

import "go.uber.org/zap"

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	FieldDataset    = "dataset"
	FieldFile       = "file"
	FieldOutput     = "output"
	FieldLine       = "line"
	FieldColumn     = "column"
	FieldValue      = "value"
	FieldError      = "error"
	FieldRetained   = "retained"
	FieldDropped    = "dropped"
	FieldBytes      = "bytes"
	FieldDurationMS = "duration_ms"
	FieldComponent  = "component"
)

// ComponentLogger returns a named logger for a specific component.
//
//	type Generator struct {
//	    log *zap.SugaredLogger
//	}
//
//	g := &Generator{log: logger.ComponentLogger("datagen")}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// DatasetLogger returns a component logger carrying the dataset name.
func DatasetLogger(component, dataset string) *zap.SugaredLogger {
	return Logger.Named(component).With(FieldDataset, dataset)
}
