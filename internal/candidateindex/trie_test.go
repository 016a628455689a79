package candidateindex

import "testing"

func TestSplitCandidate(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"flex", []string{"flex"}},
		{"hover:bg-red-500", []string{"hover", "bg-red-500"}},
		{"hover:focus:bg-red-500", []string{"hover", "focus", "bg-red-500"}},
		{"has-[.italic]:flex", []string{"has-[.italic]", "flex"}},
		{"[color:red]!", []string{"[color:red]!"}},
	}

	for _, tt := range tests {
		got := splitCandidate(tt.input)
		if len(got) != len(tt.expected) {
			t.Fatalf("splitCandidate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("splitCandidate(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestIndexCountWithVariantPrefix(t *testing.T) {
	idx := New()
	idx.Add("hover:bg-red-500")
	idx.Add("hover:bg-blue-500")
	idx.Add("hover:focus:underline")
	idx.Add("flex")

	if got := idx.CountWithVariantPrefix("hover"); got != 3 {
		t.Errorf("CountWithVariantPrefix(hover) = %d, want 3", got)
	}
	if got := idx.CountWithVariantPrefix("hover", "focus"); got != 1 {
		t.Errorf("CountWithVariantPrefix(hover, focus) = %d, want 1", got)
	}
	if got := idx.CountWithVariantPrefix("active"); got != 0 {
		t.Errorf("CountWithVariantPrefix(active) = %d, want 0", got)
	}
}

func TestIndexDebugString(t *testing.T) {
	idx := New()
	idx.Add("hover:flex")
	idx.Add("hover:italic")

	expected := "hover(flex(*)italic(*))"
	if got := idx.DebugString(); got != expected {
		t.Errorf("DebugString() = %q, want %q", got, expected)
	}
}
