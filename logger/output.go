package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
//	0 (default) - generation summary, stale artifacts, fatal errors
//	1 (-v)      - + per-dataset progress, each dropped row
//	2 (-vv)     - + timing, resolved configuration
//	3 (-vvv)    - + reader internals (header, record positions)
//	4 (-vvvv)   - + full record dumps

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 - Always shown
	OutputResults OutputCategory = iota // Generation summary table
	OutputErrors                        // Fatal errors with hints

	// Level 1 (-v)
	OutputProgress    // "generating iris" style progress
	OutputDroppedRows // One line per discarded row

	// Level 2 (-vv)
	OutputTiming // Per-dataset durations
	OutputConfig // Effective configuration

	// Level 3 (-vvv)
	OutputReaderFlow // Header handling, record positions

	// Level 4 (-vvvv)
	OutputDataDump // go-spew dumps of retained records
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:     VerbosityUser,
	OutputErrors:      VerbosityUser,
	OutputProgress:    VerbosityInfo,
	OutputDroppedRows: VerbosityInfo,
	OutputTiming:      VerbosityDebug,
	OutputConfig:      VerbosityDebug,
	OutputReaderFlow:  VerbosityTrace,
	OutputDataDump:    VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:     "results",
	OutputErrors:      "errors",
	OutputProgress:    "progress",
	OutputDroppedRows: "dropped-rows",
	OutputTiming:      "timing",
	OutputConfig:      "config",
	OutputReaderFlow:  "reader",
	OutputDataDump:    "data-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
