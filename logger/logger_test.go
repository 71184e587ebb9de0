package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func resetLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Logger = zap.NewNop().Sugar()
		JSONOutput = false
		Verbosity = 0
	})
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
	}{
		{name: "console default", jsonOutput: false, verbosity: 0},
		{name: "console verbose", jsonOutput: false, verbosity: 2},
		{name: "json", jsonOutput: true, verbosity: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLogger(t)

			require.NoError(t, Initialize(tt.jsonOutput, tt.verbosity))
			assert.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)
			assert.Equal(t, tt.verbosity, Verbosity)
		})
	}
}

func TestVerbosityFiltersLevels(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	require.NoError(t, InitializeWriter(&buf, false, VerbosityUser))

	Infow("hidden at default verbosity")
	Warnw("dropped row", FieldLine, 3)
	Cleanup()

	out := stripANSI(buf.String())
	assert.NotContains(t, out, "hidden at default verbosity")
	assert.Contains(t, out, "dropped row")
	assert.Contains(t, out, "line=3")
}

func TestJSONOutput(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	require.NoError(t, InitializeWriter(&buf, true, VerbosityInfo))

	DatasetLogger("datagen", "iris").Infow("dataset generated", FieldRetained, 150)
	Cleanup()

	line := strings.TrimSpace(buf.String())
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	assert.Equal(t, "dataset generated", decoded["msg"])
	assert.Equal(t, "iris", decoded[FieldDataset])
	assert.Equal(t, float64(150), decoded[FieldRetained])
	assert.Equal(t, "datagen", decoded["logger"])
}

func TestLoggingBeforeInitialize(t *testing.T) {
	resetLogger(t)
	Logger = zap.NewNop().Sugar()

	assert.NotPanics(t, func() {
		Infow("info")
		Infof("info %d", 1)
		Warnw("warn")
		Errorw("error")
		Debugw("debug")
		Cleanup()
	})
}

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(-1))
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(VerbosityUser))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(VerbosityInfo))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityDebug))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityAll+3))
}

func TestShouldOutput(t *testing.T) {
	tests := []struct {
		verbosity int
		category  OutputCategory
		want      bool
	}{
		{VerbosityUser, OutputResults, true},
		{VerbosityUser, OutputDroppedRows, false},
		{VerbosityInfo, OutputDroppedRows, true},
		{VerbosityInfo, OutputTiming, false},
		{VerbosityDebug, OutputTiming, true},
		{VerbosityTrace, OutputDataDump, false},
		{VerbosityAll, OutputDataDump, true},
		{VerbosityTrace, OutputCategory(999), false},
	}

	for _, tt := range tests {
		t.Run(LevelName(tt.verbosity)+"/"+CategoryName(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldOutput(tt.verbosity, tt.category))
		})
	}
}
