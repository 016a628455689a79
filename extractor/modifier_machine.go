package extractor

type modifierState int

const (
	modIdle modifierState = iota
	modParsingArbValue
	modParsingArbVariable
	modParsingNamed
)

// ModifierMachine recognizes the `/…` suffix on a utility or variant:
// `/named`, `/[arbitrary-value]`, or `/(--arbitrary-variable)`.
type ModifierMachine struct {
	state       modifierState
	startPos    int
	arbValue    ArbitraryValueMachine
	arbVariable ArbitraryVariableMachine
}

func (m *ModifierMachine) Reset() { *m = ModifierMachine{} }

func (m *ModifierMachine) restart() MachineState {
	m.Reset()
	return idleState()
}

func (m *ModifierMachine) done(start int, cursor *Cursor) MachineState {
	m.Reset()
	return doneState(NewSpan(start, cursor.Pos))
}

func (m *ModifierMachine) Next(cursor *Cursor) MachineState {
	switch m.state {
	case modIdle:
		if cursor.Curr != '/' {
			return idleState()
		}
		switch {
		case cursor.Next == '[':
			m.startPos = cursor.Pos
			m.state = modParsingArbValue
			return parsingState()
		case cursor.Next == '(':
			m.startPos = cursor.Pos
			m.state = modParsingArbVariable
			return parsingState()
		case isAlnum(cursor.Next):
			m.startPos = cursor.Pos
			m.state = modParsingNamed
			return parsingState()
		default:
			return idleState()
		}

	case modParsingArbValue:
		sub := m.arbValue.Next(cursor)
		switch sub.Kind {
		case Done:
			return m.done(m.startPos, cursor)
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}

	case modParsingArbVariable:
		sub := m.arbVariable.Next(cursor)
		switch sub.Kind {
		case Done:
			return m.done(m.startPos, cursor)
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}

	case modParsingNamed:
		if !isModifierNamedChar(cursor.Curr) {
			return m.restart()
		}
		if !isModifierNamedChar(cursor.Next) {
			return m.done(m.startPos, cursor)
		}
		return parsingState()
	}
	return idleState()
}
