package extractor

// Span is an inclusive [Start, End] byte range into the buffer a Cursor
// walks. Invariant: Start <= End < len(input).
type Span struct {
	Start int
	End   int
}

// NewSpan builds a Span from inclusive bounds.
func NewSpan(start, end int) Span { return Span{Start: start, End: end} }

// Slice returns the bytes the span covers.
func (s Span) Slice(input []byte) []byte { return input[s.Start : s.End+1] }

// Len reports how many bytes the span covers.
func (s Span) Len() int { return s.End - s.Start + 1 }

// Kind tags a MachineState's variant.
type Kind int

const (
	// Idle means the machine is not currently tracking a token.
	Idle Kind = iota
	// Parsing means the machine is mid-token; the caller must keep feeding it.
	Parsing
	// Done means a token completed at the current cursor position.
	Done
)

// MachineState is the uniform return value of every machine's Next call.
// Done implicitly means the machine has already reset itself to Idle.
type MachineState struct {
	Kind Kind
	Span Span
}

// idleState, parsingState and doneState are the three constructors every
// machine uses to report its status.
func idleState() MachineState { return MachineState{Kind: Idle} }
func parsingState() MachineState { return MachineState{Kind: Parsing} }
func doneState(span Span) MachineState { return MachineState{Kind: Done, Span: span} }

// Machine is the shared contract every sub-machine implements. Next reads
// only cursor.Prev/Curr/Next/AtEnd; it never advances the cursor. Reset
// returns the machine to its zero value, equivalent to a fresh instance.
type Machine interface {
	Next(cursor *Cursor) MachineState
	Reset()
}
