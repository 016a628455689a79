package extractor

type utilityState int

const (
	utIdle utilityState = iota
	utParsingArbProperty
	utParsingNamed
	utParsingModifier
	utParsingImportant
)

// UtilityMachine wraps a named utility or an arbitrary property with its
// optional affixes: a leading legacy `!important` marker, a trailing
// `/modifier`, and a trailing `!important` marker.
type UtilityMachine struct {
	state           utilityState
	startPos        int
	leadingImportant bool
	arbProperty     ArbitraryPropertyMachine
	namedUtility    NamedUtilityMachine
	modifier        ModifierMachine
}

func (m *UtilityMachine) Reset() { *m = UtilityMachine{} }

func (m *UtilityMachine) restart() MachineState {
	m.Reset()
	return idleState()
}

func (m *UtilityMachine) done(start int, cursor *Cursor) MachineState {
	m.Reset()
	return doneState(NewSpan(start, cursor.Pos))
}

// afterBaseDone decides the next state once the underlying named-utility or
// arbitrary-property machine has completed: an unmodified utility, one
// carrying a trailing modifier, or one carrying a trailing `!important`.
func (m *UtilityMachine) afterBaseDone(cursor *Cursor) MachineState {
	switch {
	case cursor.Next == '/':
		m.state = utParsingModifier
		return parsingState()
	case cursor.Next == '!':
		m.state = utParsingImportant
		return parsingState()
	default:
		return m.done(m.startPos, cursor)
	}
}

func (m *UtilityMachine) Next(cursor *Cursor) MachineState {
	switch m.state {
	case utIdle:
		switch {
		case cursor.Curr == '!' && cursor.Next == '[':
			m.leadingImportant = true
			m.startPos = cursor.Pos
			m.state = utParsingArbProperty
			return parsingState()

		case cursor.Curr == '[':
			m.leadingImportant = false
			m.startPos = cursor.Pos
			m.state = utParsingArbProperty
			sub := m.arbProperty.Next(cursor)
			return m.afterInlineFeed(sub, cursor)

		case cursor.Curr == '!' && (isLetter(cursor.Next) || cursor.Next == '@'):
			m.leadingImportant = true
			m.startPos = cursor.Pos
			m.state = utParsingNamed
			return parsingState()

		case isLetter(cursor.Curr) || cursor.Curr == '@' || (cursor.Curr == '-' && isLetter(cursor.Next)):
			m.leadingImportant = false
			m.startPos = cursor.Pos
			m.state = utParsingNamed
			sub := m.namedUtility.Next(cursor)
			return m.afterInlineFeed(sub, cursor)

		default:
			return idleState()
		}

	case utParsingArbProperty:
		sub := m.arbProperty.Next(cursor)
		return m.afterInlineFeed(sub, cursor)

	case utParsingNamed:
		sub := m.namedUtility.Next(cursor)
		return m.afterInlineFeed(sub, cursor)

	case utParsingModifier:
		sub := m.modifier.Next(cursor)
		switch sub.Kind {
		case Done:
			switch {
			case cursor.Next == '/':
				return m.restart()
			case cursor.Next == '!':
				m.state = utParsingImportant
				return parsingState()
			default:
				return m.done(m.startPos, cursor)
			}
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}

	case utParsingImportant:
		if cursor.Curr != '!' {
			return m.restart()
		}
		if m.leadingImportant {
			// double-important ("!flex!") is invalid
			return m.restart()
		}
		return m.done(m.startPos, cursor)
	}
	return idleState()
}

func (m *UtilityMachine) afterInlineFeed(sub MachineState, cursor *Cursor) MachineState {
	switch sub.Kind {
	case Done:
		return m.afterBaseDone(cursor)
	case Idle:
		return m.restart()
	default:
		return parsingState()
	}
}
