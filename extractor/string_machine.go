package extractor

// StringMachine recognizes a balanced quoted literal delimited by ", ', or `.
// Whitespace inside the literal invalidates it: a candidate token cannot
// contain raw whitespace, so this machine is stricter than a general string
// lexer would be.
type StringMachine struct {
	parsing       bool
	quote         byte
	startPos      int
	skipUntilPos  int
}

func (m *StringMachine) Reset() {
	*m = StringMachine{}
}

func (m *StringMachine) restart() MachineState {
	m.Reset()
	return idleState()
}

func (m *StringMachine) done(start int, cursor *Cursor) MachineState {
	m.Reset()
	return doneState(NewSpan(start, cursor.Pos))
}

func (m *StringMachine) Next(cursor *Cursor) MachineState {
	if m.parsing && cursor.Pos < m.skipUntilPos {
		return parsingState()
	}

	if !m.parsing {
		if !isQuote(cursor.Curr) {
			return idleState()
		}
		m.parsing = true
		m.quote = cursor.Curr
		m.startPos = cursor.Pos
		return parsingState()
	}

	switch {
	case cursor.Curr == '\\':
		if isWhitespace(cursor.Next) {
			return m.restart()
		}
		m.skipUntilPos = cursor.Pos + 2
		return parsingState()
	case cursor.Curr == m.quote:
		return m.done(m.startPos, cursor)
	case isWhitespace(cursor.Curr):
		return m.restart()
	default:
		return parsingState()
	}
}
