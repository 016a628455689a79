package extractor

type variantState int

const (
	varIdle variantState = iota
	varParsingArbitrary
	varAwaitingColon
	varParsingNamed
)

// VariantMachine recognizes either an arbitrary variant (`[…]:`) or,
// otherwise, delegates to NamedVariantMachine.
type VariantMachine struct {
	state    variantState
	startPos int
	arbValue ArbitraryValueMachine
	named    NamedVariantMachine
}

func (m *VariantMachine) Reset() { *m = VariantMachine{} }

func (m *VariantMachine) restart() MachineState {
	m.Reset()
	return idleState()
}

func (m *VariantMachine) done(start int, cursor *Cursor) MachineState {
	m.Reset()
	return doneState(NewSpan(start, cursor.Pos))
}

func (m *VariantMachine) Next(cursor *Cursor) MachineState {
	switch m.state {
	case varIdle:
		if cursor.Curr == '[' {
			m.startPos = cursor.Pos
			m.state = varParsingArbitrary
			m.arbValue.Next(cursor)
			return parsingState()
		}

		sub := m.named.Next(cursor)
		switch sub.Kind {
		case Idle:
			return idleState()
		case Done:
			m.Reset()
			return sub
		default:
			m.state = varParsingNamed
			return parsingState()
		}

	case varParsingNamed:
		sub := m.named.Next(cursor)
		switch sub.Kind {
		case Done:
			m.Reset()
			return sub
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}

	case varParsingArbitrary:
		sub := m.arbValue.Next(cursor)
		switch sub.Kind {
		case Done:
			if cursor.Next != ':' {
				return m.restart()
			}
			m.state = varAwaitingColon
			return parsingState()
		case Idle:
			return m.restart()
		default:
			return parsingState()
		}

	case varAwaitingColon:
		if cursor.Curr != ':' {
			return m.restart()
		}
		return m.done(m.startPos, cursor)
	}
	return idleState()
}
