package extractor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func runMachine(input string, m Machine) []string {
	cursor := NewCursor([]byte(input))
	var got []string
	for i := 0; i < len(input); i++ {
		cursor.MoveTo(i)
		if st := m.Next(cursor); st.Kind == Done {
			got = append(got, string(st.Span.Slice(cursor.Input())))
		}
	}
	return got
}

func TestStringMachine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{`'foo'`, []string{`'foo'`}},
		{`content-['hello_world']`, []string{`'hello_world'`}},
		{"'\"`hello`\"'", []string{"'\"`hello`\"'"}},
		{"' hello world '", nil},
	}

	for _, tt := range tests {
		got := runMachine(tt.input, &StringMachine{})
		require.Equal(t, tt.expected, got, "input %q", tt.input)
	}
}
