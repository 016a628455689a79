package extractor

import "sort"

// ExtractedKind tags what an Extracted value represents.
type ExtractedKind int

const (
	ExtractedCandidate ExtractedKind = iota
	ExtractedCssVariable
)

// Extracted is one scanner result: a candidate utility class name or a CSS
// custom-property name. Bytes borrows from the buffer passed to Extract; the
// caller must keep that buffer alive for as long as it holds onto Bytes.
// Start and End are the byte offsets of the match within that buffer, for
// callers that want to report a position back to the user.
type Extracted struct {
	Kind       ExtractedKind
	Bytes      []byte
	Start, End int
}

func (e Extracted) String() string { return string(e.Bytes) }

// Extractor drives a Cursor across a buffer, feeding the top-level
// CandidateMachine, any nested CandidateMachines opened by `[`, and the
// CssVariableMachine at every byte position. It holds no state between
// calls to Extract beyond reusable scratch buffers.
type Extractor struct {
	cssVariable CssVariableMachine
	top         CandidateMachine
	nested      []CandidateMachine
}

// New returns a ready-to-use Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract scans input end to end and returns every candidate and CSS
// variable found, CSS variables first (in the order their closing byte was
// reached), then candidates (in the left-to-right order surviving span
// de-duplication).
func (e *Extractor) Extract(input []byte) []Extracted {
	e.top.Reset()
	e.cssVariable.Reset()
	e.nested = e.nested[:0]

	var cssVars []Extracted
	var spans []Span

	cursor := NewCursor(input)
	for i := 0; i < len(input); i++ {
		cursor.MoveTo(i)

		if isWhitespace(cursor.Curr) {
			e.nested = e.nested[:0]
		} else {
			for idx := range e.nested {
				if st := e.nested[idx].Next(cursor); st.Kind == Done {
					spans = append(spans, st.Span)
				}
			}
			if cursor.Curr == '[' {
				e.nested = append(e.nested, CandidateMachine{})
			}
		}

		if st := e.top.Next(cursor); st.Kind == Done {
			spans = append(spans, st.Span)
		}

		if st := e.cssVariable.Next(cursor); st.Kind == Done {
			cssVars = append(cssVars, Extracted{
				Kind:  ExtractedCssVariable,
				Bytes: st.Span.Slice(input),
				Start: st.Span.Start,
				End:   st.Span.End,
			})
		}
	}

	kept := dropCoveredSpans(spans)

	result := make([]Extracted, 0, len(cssVars)+len(kept))
	result = append(result, cssVars...)
	for _, s := range kept {
		result = append(result, Extracted{
			Kind:  ExtractedCandidate,
			Bytes: s.Slice(input),
			Start: s.Start,
			End:   s.End,
		})
	}
	return result
}

// dropCoveredSpans implements the de-duplication in §4.14: sort by start
// ascending (ties broken by end descending), then keep a span only if it
// extends past every span kept so far. This keeps the outermost span at each
// start position and drops anything strictly covered by it.
func dropCoveredSpans(spans []Span) []Span {
	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	kept := make([]Span, 0, len(sorted))
	maxEnd := -1
	for _, s := range sorted {
		if maxEnd == -1 || s.End > maxEnd {
			kept = append(kept, s)
			maxEnd = s.End
		}
	}
	return kept
}
