package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "dataset %s", "iris")

	assert.Equal(t, "dataset iris: original", wrapped.Error())
}

type rowError struct {
	line int64
}

func (e *rowError) Error() string {
	return fmt.Sprintf("line %d: bad row", e.line)
}

func (e *rowError) Is(target error) bool {
	return target == ErrColumnNotFound
}

func TestAs(t *testing.T) {
	wrapped := Wrap(&rowError{line: 7}, "wrapped")

	var target *rowError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, int64(7), target.line)
}

func TestIsRowError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "column not found sentinel", err: ErrColumnNotFound, want: true},
		{name: "wrapped invalid value", err: Wrap(ErrInvalidColumnValue, "line 3"), want: true},
		{name: "typed error delegating Is", err: &rowError{line: 2}, want: true},
		{name: "source failure", err: Wrap(ErrSourceRead, "open"), want: false},
		{name: "unrelated", err: New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRowError(tt.err))
		})
	}
}

func TestIsSourceError(t *testing.T) {
	assert.False(t, IsSourceError(nil))
	assert.True(t, IsSourceError(Wrapf(ErrSourceRead, "reading %s", "iris.csv")))
	assert.False(t, IsSourceError(ErrColumnNotFound))
}

func TestAppend(t *testing.T) {
	var err error
	err = Append(err, nil)
	assert.NoError(t, err)

	first := Newf("dataset %s failed", "iris")
	second := Newf("dataset %s failed", "linnerud")
	err = Append(err, first)
	err = Append(err, second)

	parts := Errors(err)
	require.Len(t, parts, 2)
	assert.Same(t, first, parts[0])
	assert.Same(t, second, parts[1])
	assert.Contains(t, err.Error(), "iris")
	assert.Contains(t, err.Error(), "linnerud")
}

func TestWithHint(t *testing.T) {
	err := WithHint(Wrap(ErrSourceRead, "open raw_data/iris.csv"), "run 'datagen fetch iris'")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "run 'datagen fetch iris'", hints[0])
	assert.True(t, IsSourceError(err))
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, Append(nil, nil))
}

func ExampleWrap() {
	err := Wrap(ErrSourceRead, "dataset iris")
	fmt.Println(err)
	// Output: dataset iris: source read failure
}
