package logger

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/datasets/errors"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

func encode(t *testing.T, enc zapcore.Encoder, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	buf, err := enc.EncodeEntry(ent, fields)
	require.NoError(t, err)
	defer buf.Free()
	return stripANSI(buf.String())
}

// The console encoder must never silently discard fields.
func TestMinimalEncoderKeepsEveryField(t *testing.T) {
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2024, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "datagen",
		Message:    "dataset generated",
	}

	tests := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String(FieldDataset, "iris"), "dataset=iris"},
		{zap.Int(FieldRetained, 150), "retained=150"},
		{zap.Int64(FieldLine, 42), "line=42"},
		{zap.Bool("strict", true), "strict=true"},
		{zap.Float64("ratio", 0.5), "ratio=0.5"},
		{zap.String(FieldValue, "not a number"), `value="not a number"`},
		{zap.Strings("columns", []string{"a", "b"}), `columns="[a b]"`},
	}

	fields := make([]zapcore.Field, 0, len(tests))
	for _, tt := range tests {
		fields = append(fields, tt.field)
	}

	out := encode(t, newMinimalEncoder(), entry, fields...)
	assert.True(t, strings.HasPrefix(out, "13:04:35  datagen  dataset generated  "), out)
	for _, tt := range tests {
		assert.Contains(t, out, tt.mustFind)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestMinimalEncoderLevels(t *testing.T) {
	enc := newMinimalEncoder()
	base := zapcore.Entry{Time: time.Now(), Message: "msg"}

	base.Level = zapcore.InfoLevel
	assert.NotContains(t, encode(t, enc, base), "INFO")

	base.Level = zapcore.WarnLevel
	assert.Contains(t, encode(t, enc, base), "  WARN  msg")

	base.Level = zapcore.ErrorLevel
	assert.Contains(t, encode(t, enc, base), "  ERROR  msg")

	base.Level = zapcore.DebugLevel
	assert.Contains(t, encode(t, enc, base), "  DEBUG  msg")
}

func TestMinimalEncoderContextFields(t *testing.T) {
	enc := newMinimalEncoder()
	enc.AddString(FieldDataset, "linnerud")
	enc.AddString(FieldComponent, "csvread")

	clone := enc.Clone()
	clone.AddInt(FieldLine, 7)

	ent := zapcore.Entry{Level: zapcore.WarnLevel, Time: time.Now(), Message: "dropped row"}
	out := encode(t, clone, ent, zap.String(FieldColumn, "pulse"))

	// context fields sorted, then entry fields
	assert.Contains(t, out, "component=csvread dataset=linnerud line=7 column=pulse")

	// the original encoder is unaffected by fields added to the clone
	assert.NotContains(t, encode(t, enc, ent), "line=7")
}

func TestMinimalEncoderErrorField(t *testing.T) {
	ent := zapcore.Entry{Level: zapcore.ErrorLevel, Time: time.Now(), Message: "generation failed"}
	out := encode(t, newMinimalEncoder(), ent, zap.Error(errors.New("source read failure")))

	assert.Contains(t, out, `error="source read failure"`)
	assert.NotContains(t, out, "errorVerbose")
}
