package schema

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/datasets/errors"
)

func TestParseColumnType(t *testing.T) {
	tests := []struct {
		name string
		want ColumnType
	}{
		{"float64", Float64Type},
		{"f64", Float64Type},
		{"Float64", Float64Type},
		{"f32", Float32Type},
		{"i8", Int8Type},
		{"int32", Int32Type},
		{"UInt8", Uint8Type},
		{"u64", Uint64Type},
		{"bool", BoolType},
		{"String", StringType},
		{"&str", StringType},
		{" string ", StringType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumnType(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseColumnType("decimal")
	assert.Error(t, err)
}

func TestColumnTypeParse(t *testing.T) {
	tests := []struct {
		typ     ColumnType
		raw     string
		want    any
		wantErr bool
	}{
		{Float64Type, "5.1", 5.1, false},
		{Float32Type, "0.25", float32(0.25), false},
		{Int8Type, "-128", int8(-128), false},
		{Int8Type, "128", nil, true},
		{Int16Type, "300", int16(300), false},
		{Int32Type, "191", int32(191), false},
		{Int64Type, "-9000000000", int64(-9000000000), false},
		{Uint8Type, "3", uint8(3), false},
		{Uint8Type, "+7", uint8(7), false},
		{Uint8Type, "256", nil, true},
		{Uint8Type, "-1", nil, true},
		{Uint8Type, "bogus", nil, true},
		{Uint16Type, "65535", uint16(65535), false},
		{Uint32Type, "70000", uint32(70000), false},
		{Uint64Type, "18446744073709551615", uint64(math.MaxUint64), false},
		{BoolType, "true", true, false},
		{BoolType, "yes", nil, true},
		{StringType, "Iris-setosa", "Iris-setosa", false},
		{StringType, "", "", false},
		{Float64Type, "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String()+"/"+tt.raw, func(t *testing.T) {
			got, err := tt.typ.Parse(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColumnTypeParseInvalid(t *testing.T) {
	_, err := InvalidType.Parse("1")
	assert.Error(t, err)
}

func TestColumnTypeText(t *testing.T) {
	text, err := Uint16Type.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "uint16", string(text))

	var ct ColumnType
	require.NoError(t, ct.UnmarshalText([]byte("f32")))
	assert.Equal(t, Float32Type, ct)

	assert.Error(t, ct.UnmarshalText([]byte("complex128")))

	_, err = InvalidType.MarshalText()
	assert.Error(t, err)
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  Schema
		wantErr bool
	}{
		{
			name: "iris",
			schema: Schema{
				{"sepal_length_in_cm", Float64Type},
				{"class", StringType},
			},
		},
		{name: "empty", schema: Schema{}, wantErr: true},
		{name: "blank name", schema: Schema{{" ", Float64Type}}, wantErr: true},
		{name: "invalid type", schema: Schema{{"a", InvalidType}}, wantErr: true},
		{name: "duplicate", schema: Schema{{"a", Float64Type}, {"a", Uint8Type}}, wantErr: true},
		{name: "field collision", schema: Schema{{"record_id", Int32Type}, {"record-id", Int32Type}}, wantErr: true},
		{name: "no identifier", schema: Schema{{"%%", Int32Type}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrInvalidConfig), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchemaLookups(t *testing.T) {
	s := Schema{{"a", Float64Type}, {"b", Uint8Type}}

	assert.Equal(t, []string{"a", "b"}, s.Names())
	assert.Equal(t, 1, s.Index("b"))
	assert.Equal(t, -1, s.Index("c"))
	assert.Equal(t, "B", s[1].FieldName())
}

func TestHeaderMismatches(t *testing.T) {
	s := Schema{{"sepal_length", Float64Type}, {"class", StringType}}

	assert.Empty(t, s.HeaderMismatches([]string{"sepal length", "class"}))
	assert.Len(t, s.HeaderMismatches([]string{"sepal_length", "species"}), 1)
	assert.Len(t, s.HeaderMismatches([]string{"sepal_length"}), 1)
	assert.Len(t, s.HeaderMismatches([]string{"x", "y", "z"}), 3)
}

func TestFormatLiteral(t *testing.T) {
	tests := []struct {
		name string
		typ  ColumnType
		v    any
		want string
	}{
		{"decimal", Float64Type, 5.1, "5.1"},
		{"integral float", Float64Type, 4.0, "4.0"},
		{"large float", Float64Type, 1e21, "1e+21"},
		{"float32", Float32Type, float32(0.1), "0.1"},
		{"nan", Float64Type, math.NaN(), "math.NaN()"},
		{"inf", Float64Type, math.Inf(1), "math.Inf(1)"},
		{"neg inf", Float64Type, math.Inf(-1), "math.Inf(-1)"},
		{"float32 nan", Float32Type, float32(math.NaN()), "float32(math.NaN())"},
		{"float32 neg inf", Float32Type, float32(math.Inf(-1)), "float32(math.Inf(-1))"},
		{"float32 neg zero", Float32Type, float32(math.Copysign(0, -1)), "float32(math.Copysign(0, -1))"},
		{"neg zero", Float64Type, math.Copysign(0, -1), "math.Copysign(0, -1)"},
		{"int8", Int8Type, int8(-5), "-5"},
		{"uint64", Uint64Type, uint64(math.MaxUint64), "18446744073709551615"},
		{"bool", BoolType, true, "true"},
		{"string", StringType, `say "hi"`, `"say \"hi\""`},
		{"nil float", Float64Type, nil, "0.0"},
		{"nil string", StringType, nil, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLiteral(tt.typ, tt.v))
		})
	}
}

func TestFormatLiteralRoundTrip(t *testing.T) {
	values := []float64{5.1, 0.2, 1.0 / 3.0, 123456789.125, 1e-7, 6.02214076e23}
	for _, v := range values {
		lit := FormatLiteral(Float64Type, v)
		back, err := strconv.ParseFloat(lit, 64)
		require.NoError(t, err, lit)
		assert.Equal(t, v, back, lit)
	}
}
