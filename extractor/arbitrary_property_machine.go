package extractor

type arbitraryPropertyState int

const (
	apIdle arbitraryPropertyState = iota
	apParsingProperty
	apParsingPropertyVariable
	apParsingValue
	apParsingValueString
)

// ArbitraryPropertyMachine recognizes `[property:value]`: a CSS property
// name (or a `--custom-property` name), a single top-level colon, then a
// value that follows the same bracket-balancing and string-delegation rules
// as ArbitraryValueMachine.
type ArbitraryPropertyMachine struct {
	state        arbitraryPropertyState
	startPos     int
	valueStart   int
	skipUntilPos int
	cssVar       CssVariableMachine
	stack        bracketStack
	str          StringMachine
}

func isPropertyNameByte(b byte) bool { return isLetter(b) || b == '-' }

func (m *ArbitraryPropertyMachine) Reset() { *m = ArbitraryPropertyMachine{} }

func (m *ArbitraryPropertyMachine) restart() MachineState {
	m.Reset()
	return idleState()
}

func (m *ArbitraryPropertyMachine) done(start int, cursor *Cursor) MachineState {
	m.Reset()
	return doneState(NewSpan(start, cursor.Pos))
}

func (m *ArbitraryPropertyMachine) Next(cursor *Cursor) MachineState {
	switch m.state {
	case apIdle:
		if cursor.Curr != '[' {
			return idleState()
		}
		m.startPos = cursor.Pos
		m.state = apParsingProperty
		return parsingState()

	case apParsingProperty:
		switch {
		case cursor.Pos == m.startPos+1 && cursor.Curr == '-' && cursor.Next == '-':
			m.state = apParsingPropertyVariable
			m.cssVar.Next(cursor)
			return parsingState()
		case cursor.Curr == ':' && cursor.Pos > m.startPos+1:
			m.state = apParsingValue
			m.valueStart = cursor.Pos + 1
			return parsingState()
		case isPropertyNameByte(cursor.Curr):
			return parsingState()
		default:
			return m.restart()
		}

	case apParsingPropertyVariable:
		sub := m.cssVar.Next(cursor)
		switch sub.Kind {
		case Done:
			if cursor.Next != ':' {
				return m.restart()
			}
			m.skipUntilPos = cursor.Pos + 2
			m.valueStart = m.skipUntilPos
			m.state = apParsingValue
			return parsingState()
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}

	case apParsingValueString:
		sub := m.str.Next(cursor)
		switch sub.Kind {
		case Done:
			m.state = apParsingValue
		case Idle:
			return m.restart()
		}
		return parsingState()

	case apParsingValue:
		if cursor.Pos < m.skipUntilPos {
			return parsingState()
		}
		switch {
		case isQuote(cursor.Curr):
			m.state = apParsingValueString
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
		case cursor.Curr == ']':
			if !m.stack.empty() {
				if m.stack.popIfMatches(']') {
					return parsingState()
				}
				return m.restart()
			}
			if cursor.Pos == m.valueStart {
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
