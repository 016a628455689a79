package extractor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCssVariableMachine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{"--a", []string{"--a"}},
		{"--my-color", []string{"--my-color"}},
		{"var(--a)", []string{"--a"}},
		{"-", nil},
		{"--", nil},
		{`--foo\!bar`, []string{`--foo\!bar`}},
		{`--foo\ bar`, nil},
	}

	for _, tt := range tests {
		got := runMachine(tt.input, &CssVariableMachine{})
		require.Equal(t, tt.expected, got, "input %q", tt.input)
	}
}
