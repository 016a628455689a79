package extractor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func candidateStrings(t *testing.T, input string) ([]string, []string) {
	t.Helper()
	results := New().Extract([]byte(input))

	var candidates, cssVars []string
	for _, r := range results {
		switch r.Kind {
		case ExtractedCandidate:
			candidates = append(candidates, string(r.Bytes))
		case ExtractedCssVariable:
			cssVars = append(cssVars, string(r.Bytes))
		}
	}
	return candidates, cssVars
}

func TestExtractConcreteScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		candidates []string
		cssVars    []string
	}{
		{
			name:       "plain utilities",
			input:      "flex items-center px-2.5",
			candidates: []string{"flex", "items-center", "px-2.5"},
		},
		{
			name:       "html with variant and arbitrary property",
			input:      `<div class="hover:bg-red-500/20 [color:red]!"></div>`,
			candidates: []string{"hover:bg-red-500/20", "[color:red]!"},
		},
		{
			name:       "candidates inside a bracketed attribute call",
			input:      `[CssClass("flex",'italic')]`,
			candidates: []string{"flex", "italic"},
		},
		{
			name:       "touching arbitrary variant and utility",
			input:      "has-[.italic]:flex",
			candidates: []string{"has-[.italic]:flex"},
		},
		{
			name:    "css variables inside calc",
			input:   "calc(var(--a) + var(--b))",
			cssVars: []string{"--a", "--b"},
		},
		{
			name:       "arbitrary variable suffixes",
			input:      "bg-(--my-color,red) bg-[#0088cc]/(--o)",
			candidates: []string{"bg-(--my-color,red)", "bg-[#0088cc]/(--o)"},
			cssVars:    []string{"--my-color", "--o"},
		},
		{
			name:  "double important is invalid",
			input: "!flex!",
		},
		{
			name:       "already preprocessed ruby word array",
			input:      "%w flex px-2.5 ",
			candidates: []string{"flex", "px-2.5"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			candidates, cssVars := candidateStrings(t, tt.input)
			require.Equal(t, tt.candidates, candidates)
			require.Equal(t, tt.cssVars, cssVars)
		})
	}
}

func TestExtractNegativeScenarios(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"<div",
		"</div>",
		"bg-red-500/20/20",
		"bg-red-500!/20",
	} {
		candidates, _ := candidateStrings(t, input)
		require.Empty(t, candidates, "input %q should yield no candidates", input)
	}
}

func TestExtractStandaloneCssVariableIsNotACandidate(t *testing.T) {
	t.Parallel()

	candidates, cssVars := candidateStrings(t, "--my-color")
	require.Empty(t, candidates)
	require.Equal(t, []string{"--my-color"}, cssVars)
}

func TestExtractUniversalProperties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"flex items-center hover:bg-red-500/20 [color:red]!",
		"",
		"\x00\x00binary\x00garbage\x00",
		"[[[[[[unterminated",
	}

	for _, input := range inputs {
		require.NotPanics(t, func() {
			results := New().Extract([]byte(input))
			for _, r := range results {
				require.NotEmpty(t, r.Bytes)
			}
		})
	}
}

func TestExtractNestedCandidateRecoveredWhenOuterFails(t *testing.T) {
	t.Parallel()

	candidates, _ := candidateStrings(t, `[CssClass("flex")]`)
	require.Equal(t, []string{"flex"}, candidates)
}
