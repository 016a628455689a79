package extractor

type candidateState int

const (
	candIdle candidateState = iota
	candParsing
	candResumeAtBoundary
)

// disallowedCandidateNext holds the bytes that may never immediately follow
// a completed candidate; seeing one of these rejects the whole candidate
// rather than closing it.
var disallowedCandidateNext = map[byte]bool{
	'/': true, '!': true, '=': true, '#': true,
	'-': true, '[': true, '(': true, ':': true,
}

// CandidateMachine recognizes a sequence of touching variants followed by
// exactly one utility: `hover:focus:bg-red-500/20!`. It drives a
// VariantMachine and a UtilityMachine side by side at every byte, deciding
// what to do from their joint state.
type CandidateMachine struct {
	state    candidateState
	startPos int

	haveVariant    bool
	lastVariantEnd int

	utility UtilityMachine
	variant VariantMachine
}

func (m *CandidateMachine) Reset() { *m = CandidateMachine{} }

func (m *CandidateMachine) restart() MachineState {
	m.Reset()
	return idleState()
}

func (m *CandidateMachine) done(start int, cursor *Cursor) MachineState {
	m.Reset()
	return doneState(NewSpan(start, cursor.Pos))
}

func (m *CandidateMachine) Next(cursor *Cursor) MachineState {
	switch m.state {
	case candResumeAtBoundary:
		if isBoundaryByte(cursor.Curr) {
			m.state = candIdle
		}
		return idleState()

	case candIdle:
		switch {
		case cursor.Curr == '-' && cursor.Next == '-':
			// candidates never start with `--`, that's CSS-variable territory
			m.state = candResumeAtBoundary
			return idleState()
		case cursor.Curr == '<' || cursor.Curr == '/':
			// HTML tag markers
			m.state = candResumeAtBoundary
			return idleState()
		default:
			m.startPos = cursor.Pos
			m.haveVariant = false
			m.lastVariantEnd = -1
			m.state = candParsing
			return m.step(cursor)
		}

	case candParsing:
		return m.step(cursor)
	}
	return idleState()
}

// step feeds both sub-machines at the current cursor position and applies
// the joint-state decision table.
func (m *CandidateMachine) step(cursor *Cursor) MachineState {
	uState := m.utility.Next(cursor)
	vState := m.variant.Next(cursor)

	if vState.Kind == Done {
		m.haveVariant = true
		m.lastVariantEnd = vState.Span.End
		m.utility.Reset()
		m.variant.Reset()
		return parsingState()
	}

	switch uState.Kind {
	case Idle:
		if vState.Kind == Idle {
			return m.restart()
		}
		return parsingState()

	case Parsing:
		return parsingState()

	case Done:
		// object-key utility: `{ underline: true }` style host-language syntax.
		if !m.haveVariant && cursor.Next == ':' && isWhitespace(cursor.PeekAt(2)) {
			return m.done(m.startPos, cursor)
		}
		if vState.Kind == Parsing && cursor.Next == ':' {
			// what looked like a completed utility was actually a variant prefix.
			m.utility.Reset()
			return parsingState()
		}
		if disallowedCandidateNext[cursor.Next] {
			return m.restart()
		}
		return m.closeCandidate(uState.Span, cursor)
	}
	return parsingState()
}

func (m *CandidateMachine) closeCandidate(utilitySpan Span, cursor *Cursor) MachineState {
	if m.haveVariant && m.lastVariantEnd+1 == utilitySpan.Start {
		return m.done(m.startPos, cursor)
	}
	m.Reset()
	return doneState(utilitySpan)
}
