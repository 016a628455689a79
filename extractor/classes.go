package extractor

// Byte classification helpers shared by every machine. Kept free functions,
// not methods, since they operate on a single byte rather than machine state.

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\x0C':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isLetter(b byte) bool { return isLower(b) || isUpper(b) }

func isAlnum(b byte) bool { return isLetter(b) || isDigit(b) }

// isIdentContinue is the CSS ident-continue class used by CssVariableMachine:
// [A-Za-z0-9_-].
func isIdentContinue(b byte) bool { return isAlnum(b) || b == '_' || b == '-' }

// isNamedUtilitySegment is the class of bytes a NamedUtilityMachine segment
// may continue on: [-_.A-Za-z0-9].
func isNamedUtilitySegment(b byte) bool { return isAlnum(b) || b == '-' || b == '_' || b == '.' }

// isNamedUtilityTerminator is the class that must NOT follow a letter/underscore
// for the segment to continue; anything outside [-_.A-Za-z0-9] terminates it.
func isNamedUtilityTerminator(b byte) bool { return !isNamedUtilitySegment(b) }

// isModifierNamedChar is the class ModifierMachine's named branch accepts:
// [A-Za-z0-9_.-].
func isModifierNamedChar(b byte) bool { return isAlnum(b) || b == '_' || b == '.' || b == '-' }

// isBoundaryByte is whitespace or one of the quote/eq bytes after which a
// new candidate may begin (used by CandidateMachine's ResumeAtBoundary state).
func isBoundaryByte(b byte) bool {
	if isWhitespace(b) {
		return true
	}
	switch b {
	case '"', '\'', '`', '=':
		return true
	}
	return false
}

// closerFor returns the closing byte for an opening bracket byte, and ok=false
// if b is not an opening bracket.
func closerFor(b byte) (byte, bool) {
	switch b {
	case '(':
		return ')', true
	case '[':
		return ']', true
	case '{':
		return '}', true
	}
	return 0, false
}

// isCloser reports whether b is one of the three closing bracket bytes.
func isCloser(b byte) bool {
	switch b {
	case ')', ']', '}':
		return true
	}
	return false
}

// isQuote reports whether b opens a StringMachine-recognized literal.
func isQuote(b byte) bool {
	switch b {
	case '"', '\'', '`':
		return true
	}
	return false
}
