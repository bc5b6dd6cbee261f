package keycode

import tea "github.com/charmbracelet/bubbletea"

// FromTeaKey translates a bubbletea key event into the 16-bit key-code
// space the entry controller understands, ok reporting whether the key
// maps to anything at all (unmapped keys are dropped by the caller, the
// terminal-input stand-in for "frame discarded on parity failure", §7).
func FromTeaKey(msg tea.KeyMsg) (Code, bool) {
	switch msg.Type {
	case tea.KeyLeft:
		return KeyLeft, true
	case tea.KeyRight:
		return KeyRight, true
	case tea.KeyUp:
		return KeyUp, true
	case tea.KeyDown:
		return KeyDown, true
	case tea.KeyEnter:
		return KeyEnter, true
	case tea.KeyBackspace:
		return KeyDelete, true
	case tea.KeyEsc:
		return KeyEsc, true
	case tea.KeyTab:
		return KeyShiftToggle, true
	case tea.KeyCtrlL:
		return KeyClear, true
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return KeyNone, false
	}
	return fromRune(msg.Runes[0])
}

func fromRune(r rune) (Code, bool) {
	switch {
	case r >= '0' && r <= '9':
		return KeyDigit0 + Code(r-'0'), true
	case r >= 'a' && r <= 'z':
		return KeyLetter(int(r - 'a')), true
	case r >= 'A' && r <= 'Z':
		return KeyLetter(int(r - 'A')), true
	}
	switch r {
	case '.':
		return KeyDot, true
	case '+':
		return KeyPlus, true
	case '-':
		return KeyMinus, true
	case '*':
		return KeyMul, true
	case '/':
		return KeyDiv, true
	case '=':
		return KeyEquals, true
	case '(':
		return KeyLeftParen, true
	case ')':
		return KeyRightParen, true
	case ',':
		return KeyComma, true
	case '~':
		return KeyNegate, true
	case '\\':
		return KeyFraction, true
	case '@':
		return KeyRadical, true
	case '$':
		return KeySigma, true
	case '%':
		return KeyPi, true
	case '^':
		return KeyExponent, true
	case '|':
		return KeyAbs, true
	case '?':
		return KeyApprox, true
	}
	return KeyNone, false
}
