package extractor

type arbitraryVariableState int

const (
	avarIdle arbitraryVariableState = iota
	avarParsingName
	avarParsingFallback
	avarParsingFallbackString
	avarParsingEnd
)

// ArbitraryVariableMachine recognizes `(--name[,fallback])`, delegating the
// name to CssVariableMachine and the fallback to the same bracket-balancing
// and string-delegation rules as ArbitraryValueMachine, except the closing
// delimiter is `)` and a top-level `:` is disallowed (it would alias variant
// syntax).
type ArbitraryVariableMachine struct {
	state        arbitraryVariableState
	startPos     int
	skipUntilPos int
	cssVar       CssVariableMachine
	stack        bracketStack
	str          StringMachine
}

func (m *ArbitraryVariableMachine) Reset() { *m = ArbitraryVariableMachine{} }

func (m *ArbitraryVariableMachine) restart() MachineState {
	m.Reset()
	return idleState()
}

func (m *ArbitraryVariableMachine) done(start int, cursor *Cursor) MachineState {
	m.Reset()
	return doneState(NewSpan(start, cursor.Pos))
}

func (m *ArbitraryVariableMachine) Next(cursor *Cursor) MachineState {
	switch m.state {
	case avarIdle:
		if cursor.Curr != '(' || cursor.Next != '-' {
			return idleState()
		}
		m.startPos = cursor.Pos
		m.state = avarParsingName
		return parsingState()

	case avarParsingName:
		sub := m.cssVar.Next(cursor)
		switch sub.Kind {
		case Done:
			if cursor.Next == ',' {
				m.state = avarParsingFallback
			} else {
				m.state = avarParsingEnd
			}
			return parsingState()
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}

	case avarParsingEnd:
		if cursor.Curr != ')' {
			return m.restart()
		}
		return m.done(m.startPos, cursor)

	case avarParsingFallbackString:
		sub := m.str.Next(cursor)
		switch sub.Kind {
		case Done:
			m.state = avarParsingFallback
		case Idle:
			return m.restart()
		}
		return parsingState()

	case avarParsingFallback:
		if cursor.Pos < m.skipUntilPos {
			return parsingState()
		}
		switch {
		case isQuote(cursor.Curr):
			m.state = avarParsingFallbackString
			m.str.Next(cursor)
			return parsingState()
		case cursor.Curr == '\\':
			if isWhitespace(cursor.Next) {
				return m.restart()
			}
			m.skipUntilPos = cursor.Pos + 2
			return parsingState()
		case isWhitespace(cursor.Curr):
			return m.restart()
		case cursor.Curr == ':' && m.stack.empty():
			return m.restart()
		case cursor.Curr == '(' || cursor.Curr == '[' || cursor.Curr == '{':
			closer, _ := closerFor(cursor.Curr)
			m.stack.push(closer)
			return parsingState()
		case cursor.Curr == ')':
			if !m.stack.empty() {
				if m.stack.popIfMatches(')') {
					return parsingState()
				}
				return m.restart()
			}
			return m.done(m.startPos, cursor)
		case cursor.Curr == ']' || cursor.Curr == '}':
			if m.stack.popIfMatches(cursor.Curr) {
				return parsingState()
			}
			return m.restart()
		default:
			return parsingState()
		}
	}
	return idleState()
}
