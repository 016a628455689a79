// Package extractor implements the byte-level candidate scanner: a
// composition of single-pass state machines that walk a source buffer one
// byte at a time and classify overlapping lexical constructs (utilities,
// variants, modifiers, arbitrary values, CSS variables) without any
// knowledge of the host language surrounding them.
package extractor

// sentinel is returned by Cursor whenever a read falls outside the input
// buffer. It is never a legitimate byte of any token recognized here, so a
// machine can treat it like any other disallowed byte without a special case.
const sentinel byte = 0x00

// Cursor is a read-only walk over a byte buffer shared by every machine
// during one Extract call. Only the Extractor advances it; machines only
// read Prev/Curr/Next.
type Cursor struct {
	input []byte

	Pos  int
	Prev byte
	Curr byte
	Next byte

	AtEnd bool
}

// NewCursor creates a cursor positioned at the start of input.
func NewCursor(input []byte) *Cursor {
	c := &Cursor{input: input}
	c.MoveTo(0)
	return c
}

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.input) }

// Input returns the underlying buffer. Machines use this only to slice a
// completed Span; they must never mutate it.
func (c *Cursor) Input() []byte { return c.input }

// MoveTo repositions the cursor and recomputes Prev/Curr/Next.
func (c *Cursor) MoveTo(pos int) {
	c.Pos = pos
	c.Prev = c.byteAt(pos - 1)
	c.Curr = c.byteAt(pos)
	c.Next = c.byteAt(pos + 1)
	c.AtEnd = pos == len(c.input)-1
}

// PeekAt returns the byte at Pos+offset, or sentinel if that falls outside
// the buffer. Used sparingly, by CandidateMachine's object-key exception,
// which needs to look two bytes ahead rather than the usual one.
func (c *Cursor) PeekAt(offset int) byte { return c.byteAt(c.Pos + offset) }

func (c *Cursor) byteAt(i int) byte {
	if i < 0 || i >= len(c.input) {
		return sentinel
	}
	return c.input[i]
}
