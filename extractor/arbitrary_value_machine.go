package extractor

type arbitraryValueState int

const (
	avIdle arbitraryValueState = iota
	avParsing
	avParsingString
)

// ArbitraryValueMachine recognizes a bracket-delimited value `[ … ]`,
// balancing nested brackets and delegating to StringMachine for embedded
// quoted literals, which may freely contain unbalanced brackets.
type ArbitraryValueMachine struct {
	state        arbitraryValueState
	startPos     int
	skipUntilPos int
	stack        bracketStack
	str          StringMachine
}

func (m *ArbitraryValueMachine) Reset() { *m = ArbitraryValueMachine{} }

func (m *ArbitraryValueMachine) restart() MachineState {
	m.Reset()
	return idleState()
}

func (m *ArbitraryValueMachine) done(start int, cursor *Cursor) MachineState {
	m.Reset()
	return doneState(NewSpan(start, cursor.Pos))
}

func (m *ArbitraryValueMachine) Next(cursor *Cursor) MachineState {
	switch m.state {
	case avIdle:
		if cursor.Curr != '[' {
			return idleState()
		}
		m.startPos = cursor.Pos
		m.state = avParsing
		return parsingState()

	case avParsingString:
		sub := m.str.Next(cursor)
		switch sub.Kind {
		case Done:
			m.state = avParsing
		case Idle:
			return m.restart()
		}
		return parsingState()

	case avParsing:
		if cursor.Pos < m.skipUntilPos {
			return parsingState()
		}
		switch {
		case isQuote(cursor.Curr):
			m.state = avParsingString
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
		case cursor.Curr == '(' || cursor.Curr == '[' || cursor.Curr == '{':
			closer, _ := closerFor(cursor.Curr)
			m.stack.push(closer)
			return parsingState()
		case cursor.Curr == ']':
			if !m.stack.empty() {
				if m.stack.popIfMatches(']') {
					return parsingState()
				}
				return m.restart()
			}
			if m.startPos+1 == cursor.Pos {
				// empty `[]` is never valid
				return m.restart()
			}
			return m.done(m.startPos, cursor)
		case cursor.Curr == ')' || cursor.Curr == '}':
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
