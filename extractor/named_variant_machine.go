package extractor

type namedVariantState int

const (
	nvIdle namedVariantState = iota
	nvParsing
	nvParsingModifier
	nvParsingArbValue
	nvParsingArbVariable
	nvAwaitingColon
)

// NamedVariantMachine recognizes the same name grammar as NamedUtilityMachine
// (additionally accepting `*`, e.g. the direct-child variant) but requires
// termination by `:`, optionally preceded by a `/modifier` or an arbitrary
// value/variable suffix: `hover:`, `group-hover/20:`, `data-[x=y]:`,
// `supports-(--x):`.
type NamedVariantMachine struct {
	state       namedVariantState
	startPos    int
	modifier    ModifierMachine
	arbValue    ArbitraryValueMachine
	arbVariable ArbitraryVariableMachine
}

func (m *NamedVariantMachine) Reset() { *m = NamedVariantMachine{} }

func (m *NamedVariantMachine) restart() MachineState {
	m.Reset()
	return idleState()
}

func (m *NamedVariantMachine) done(start int, cursor *Cursor) MachineState {
	m.Reset()
	return doneState(NewSpan(start, cursor.Pos))
}

func (m *NamedVariantMachine) Next(cursor *Cursor) MachineState {
	switch m.state {
	case nvIdle:
		switch {
		case cursor.Curr == '*':
			m.startPos = cursor.Pos
			m.state = nvParsing
			return parsingState()
		case isLower(cursor.Curr) || cursor.Curr == '@':
			m.startPos = cursor.Pos
			m.state = nvParsing
			return parsingState()
		case cursor.Curr == '-' && isLetter(cursor.Next):
			m.startPos = cursor.Pos
			m.state = nvParsing
			return parsingState()
		default:
			return idleState()
		}

	case nvParsing:
		switch {
		case cursor.Curr == '/':
			if m.modifier.Next(cursor).Kind == Idle {
				return m.restart()
			}
			m.state = nvParsingModifier
			return parsingState()
		case cursor.Curr == '-' && cursor.Next == '[':
			m.state = nvParsingArbValue
			return parsingState()
		case cursor.Curr == '-' && cursor.Next == '(':
			m.state = nvParsingArbVariable
			return parsingState()
		case cursor.Curr == '.':
			if isDigit(cursor.Prev) && isDigit(cursor.Next) {
				return parsingState()
			}
			return m.restart()
		case isDigit(cursor.Curr):
			switch {
			case isDigit(cursor.Next) || cursor.Next == '.' || isLetter(cursor.Next):
				return parsingState()
			case cursor.Next == ':':
				m.state = nvAwaitingColon
				return parsingState()
			default:
				return m.restart()
			}
		case isLetter(cursor.Curr) || cursor.Curr == '_' || cursor.Curr == '*':
			switch {
			case cursor.Next == ':':
				m.state = nvAwaitingColon
				return parsingState()
			case isNamedUtilitySegment(cursor.Next) || cursor.Next == '*' || cursor.Next == '/':
				return parsingState()
			default:
				return m.restart()
			}
		case cursor.Curr == '-':
			switch {
			case cursor.Next == ':':
				m.state = nvAwaitingColon
				return parsingState()
			case isDashContinue(cursor.Next):
				return parsingState()
			default:
				return m.restart()
			}
		default:
			return m.restart()
		}

	case nvParsingModifier:
		sub := m.modifier.Next(cursor)
		switch sub.Kind {
		case Done:
			if cursor.Next != ':' {
				return m.restart()
			}
			m.state = nvAwaitingColon
			return parsingState()
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}

	case nvParsingArbValue:
		sub := m.arbValue.Next(cursor)
		switch sub.Kind {
		case Done:
			if cursor.Next != ':' {
				return m.restart()
			}
			m.state = nvAwaitingColon
			return parsingState()
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}

	case nvParsingArbVariable:
		sub := m.arbVariable.Next(cursor)
		switch sub.Kind {
		case Done:
			if cursor.Next != ':' {
				return m.restart()
			}
			m.state = nvAwaitingColon
			return parsingState()
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}

	case nvAwaitingColon:
		if cursor.Curr != ':' {
			return m.restart()
		}
		return m.done(m.startPos, cursor)
	}
	return idleState()
}
