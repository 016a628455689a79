package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cssx-dev/cssx/extractor"
)

func TestRubyProcess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"%w[flex px-2.5]", "%w flex px-2.5 "},
		{
			"%w[flex data-[state=pending]:bg-[#0088cc] flex-col]",
			"%w flex data-[state=pending]:bg-[#0088cc] flex-col ",
		},
		{"%w{flex px-2.5}", "%w flex px-2.5 "},
		{
			"%w{flex data-[state=pending]:bg-(--my-color) flex-col}",
			"%w flex data-[state=pending]:bg-(--my-color) flex-col ",
		},
		{"%w(flex px-2.5)", "%w flex px-2.5 "},
		{
			"%w(flex data-[state=pending]:bg-(--my-color) flex-col)",
			"%w flex data-[state=pending]:bg-(--my-color) flex-col ",
		},
		{`%w[foo\ bar baz\ bat]`, `%w foo  bar baz  bat `},
		{`%W[foo\ bar baz\ bat]`, `%W foo  bar baz  bat `},
		{`%w[foo[bar baz]qux]`, `%w foo[bar baz]qux `},
	}

	for _, tt := range tests {
		got := Ruby{}.Process([]byte(tt.input))
		require.Equal(t, tt.expected, string(got), "input %q", tt.input)
		require.Len(t, got, len(tt.input), "must preserve byte length")
	}
}

func TestRubyExtraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{"%w[flex px-2.5]", []string{"flex", "px-2.5"}},
		{"%w[px-2.5 flex]", []string{"flex", "px-2.5"}},
		{"%w[2xl:flex]", []string{"2xl:flex"}},
		{
			"%w[flex data-[state=pending]:bg-[#0088cc] flex-col]",
			[]string{"flex", "data-[state=pending]:bg-[#0088cc]", "flex-col"},
		},
		{"%w{flex px-2.5}", []string{"flex", "px-2.5"}},
		{"%w{px-2.5 flex}", []string{"flex", "px-2.5"}},
		{"%w{2xl:flex}", []string{"2xl:flex"}},
		{
			"%w{flex data-[state=pending]:bg-(--my-color) flex-col}",
			[]string{"flex", "data-[state=pending]:bg-(--my-color)", "flex-col"},
		},
		{"%w(flex px-2.5)", []string{"flex", "px-2.5"}},
		{"%w(px-2.5 flex)", []string{"flex", "px-2.5"}},
		{"%w(2xl:flex)", []string{"2xl:flex"}},
		{
			"%w(flex data-[state=pending]:bg-(--my-color) flex-col)",
			[]string{"flex", "data-[state=pending]:bg-(--my-color)", "flex-col"},
		},
	}

	ex := extractor.New()
	for _, tt := range tests {
		processed := Ruby{}.Process([]byte(tt.input))
		results := ex.Extract(processed)

		var candidates []string
		for _, r := range results {
			if r.Kind == extractor.ExtractedCandidate {
				candidates = append(candidates, r.String())
			}
		}
		for _, want := range tt.expected {
			require.Contains(t, candidates, want, "input %q", tt.input)
		}
	}
}
