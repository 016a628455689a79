package extractor

type namedUtilityState int

const (
	nuIdle namedUtilityState = iota
	nuParsing
	nuParsingArbValue
	nuParsingArbVariable
)

// isDashContinue is the class a `-` or `_` byte may be followed by while
// continuing a NamedUtilityMachine segment: [-_A-Za-z0-9] (no dot — a dot
// only ever sits between two digits).
func isDashContinue(b byte) bool { return isAlnum(b) || b == '-' || b == '_' }

// NamedUtilityMachine recognizes identifiers of the form
// `name(-name)*([-\[arb\]]|[-(arb-var)])?`, e.g. `flex`, `bg-red-500`,
// `px-2.5`, `bg-[#0cc]`, `bg-(--c)`.
type NamedUtilityMachine struct {
	state       namedUtilityState
	startPos    int
	arbValue    ArbitraryValueMachine
	arbVariable ArbitraryVariableMachine
}

func (m *NamedUtilityMachine) Reset() { *m = NamedUtilityMachine{} }

func (m *NamedUtilityMachine) restart() MachineState {
	m.Reset()
	return idleState()
}

func (m *NamedUtilityMachine) done(start int, cursor *Cursor) MachineState {
	m.Reset()
	return doneState(NewSpan(start, cursor.Pos))
}

func (m *NamedUtilityMachine) Next(cursor *Cursor) MachineState {
	switch m.state {
	case nuIdle:
		switch {
		case isLower(cursor.Curr) && (isWhitespace(cursor.Next) || cursor.Next == sentinel):
			// a single lowercase letter utility, e.g. the bare letter
			// utilities some frameworks define.
			return m.done(cursor.Pos, cursor)
		case isLower(cursor.Curr) || cursor.Curr == '@':
			m.startPos = cursor.Pos
			m.state = nuParsing
			return parsingState()
		case cursor.Curr == '-' && isLetter(cursor.Next):
			m.startPos = cursor.Pos
			m.state = nuParsing
			return parsingState()
		default:
			return idleState()
		}

	case nuParsing:
		switch {
		case cursor.Curr == '-' && cursor.Next == '[':
			m.state = nuParsingArbValue
			return parsingState()
		case cursor.Curr == '-' && cursor.Next == '(':
			m.state = nuParsingArbVariable
			return parsingState()
		case cursor.Curr == '.':
			if isDigit(cursor.Prev) && isDigit(cursor.Next) {
				return parsingState()
			}
			return m.restart()
		case isDigit(cursor.Curr):
			if isDigit(cursor.Next) || cursor.Next == '.' || isLetter(cursor.Next) {
				return parsingState()
			}
			return m.done(m.startPos, cursor)
		case isLetter(cursor.Curr) || cursor.Curr == '_':
			if cursor.Next == sentinel || !isNamedUtilitySegment(cursor.Next) {
				return m.done(m.startPos, cursor)
			}
			return parsingState()
		case cursor.Curr == '-':
			if isDashContinue(cursor.Next) {
				return parsingState()
			}
			return m.restart()
		default:
			return m.restart()
		}

	case nuParsingArbValue:
		sub := m.arbValue.Next(cursor)
		switch sub.Kind {
		case Done:
			return m.done(m.startPos, cursor)
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}

	case nuParsingArbVariable:
		sub := m.arbVariable.Next(cursor)
		switch sub.Kind {
		case Done:
			return m.done(m.startPos, cursor)
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}
	}
	return idleState()
}
