package extractor

// CssVariableMachine recognizes CSS custom-property identifiers per the CSS
// Syntax Module's ident-token: a leading "--" followed by one or more
// [A-Za-z0-9_-] bytes, with \-escapes counted as two bytes each.
type CssVariableMachine struct {
	parsing      bool
	startPos     int
	skipUntilPos int
}

func (m *CssVariableMachine) Reset() { *m = CssVariableMachine{} }

func (m *CssVariableMachine) restart() MachineState {
	m.Reset()
	return idleState()
}

func (m *CssVariableMachine) done(start int, cursor *Cursor) MachineState {
	m.Reset()
	return doneState(NewSpan(start, cursor.Pos))
}

func (m *CssVariableMachine) Next(cursor *Cursor) MachineState {
	if m.parsing && cursor.Pos < m.skipUntilPos {
		return parsingState()
	}

	if !m.parsing {
		if cursor.Curr == '-' && cursor.Next == '-' {
			m.parsing = true
			m.startPos = cursor.Pos
			m.skipUntilPos = cursor.Pos + 2
			return parsingState()
		}
		return idleState()
	}

	switch {
	case cursor.Curr == '\\':
		if isWhitespace(cursor.Next) || cursor.Next == sentinel {
			return m.restart()
		}
		m.skipUntilPos = cursor.Pos + 2
		return parsingState()
	case isIdentContinue(cursor.Curr):
		if cursor.Next == sentinel {
			return m.done(m.startPos, cursor)
		}
		if isIdentContinue(cursor.Next) || cursor.Next == '\\' {
			return parsingState()
		}
		return m.done(m.startPos, cursor)
	default:
		return m.restart()
	}
}
