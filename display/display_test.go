package display

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommands() (root, child *cobra.Command) {
	root = &cobra.Command{Use: "datagen"}
	root.PersistentFlags().Bool("json", false, "")
	child = &cobra.Command{Use: "check", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child)
	return root, child
}

func TestWantJSON(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
		want bool
	}{
		{name: "default", args: []string{"check"}, want: false},
		{name: "flag", args: []string{"check", "--json"}, want: true},
		{name: "env", args: []string{"check"}, env: "1", want: true},
		{name: "flag overrides env", args: []string{"check", "--json=false"}, env: "true", want: false},
		{name: "bad env", args: []string{"check"}, env: "maybe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvJSON, tt.env)
			root, child := newCommands()
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Equal(t, tt.want, WantJSON(child))
		})
	}
}

func TestWantJSONNilCommand(t *testing.T) {
	t.Setenv(EnvJSON, "true")
	assert.True(t, WantJSON(nil))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]int{"retained": 150}))
	assert.Equal(t, "{\n  \"retained\": 150\n}\n", buf.String())
}
