// Package keycode defines the 16-bit key codes the entry controller
// consumes (§6): a fixed set of discrete key IDs, two analog-joystick flag
// spaces, and the modal shift/ctrl transition codes that light LEDs on the
// original keyboard. Values are grouped by iota block the way bubbletea's
// own tea.KeyType enum is laid out, since no example repo models a
// hardware key-code table directly.
package keycode

// Code is a 16-bit key code. The two high flag bits (ADCXMask, ADCYMask)
// mark an analog-joystick packet; when either is set the low 10 bits carry
// an unsigned axis value instead of a discrete key ID.
type Code uint16

const (
	// ADCXMask marks a joystick X-axis packet; the low 10 bits are the
	// axis value.
	ADCXMask Code = 1 << 15
	// ADCYMask marks a joystick Y-axis packet; the low 10 bits are the
	// axis value.
	ADCYMask Code = 1 << 14
	// AxisValueMask isolates the 10-bit axis payload from a joystick packet.
	AxisValueMask Code = 0x03FF
)

// IsAxis reports whether c carries an analog-joystick axis reading rather
// than a discrete key ID.
func (c Code) IsAxis() bool { return c&(ADCXMask|ADCYMask) != 0 }

// AxisValue extracts the 10-bit axis payload; valid only when IsAxis is true.
func (c Code) AxisValue() int { return int(c & AxisValueMask) }

// Discrete key IDs, low block (digits, letters, punctuation map through
// Table below; this block holds the rest: function/structure/navigation
// keys and the modal transition codes).
const (
	KeyNone Code = iota
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
	KeyDot
	KeyPlus
	KeyMinus
	KeyMul
	KeyDiv
	KeyEquals
	KeyLeftParen
	KeyRightParen
	KeyComma
	KeyNegate

	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyApprox
	KeyDelete
	KeyClear
	KeyEsc

	KeyFraction
	KeyRadical
	KeySigma
	KeyPi
	KeyExponent
	KeyAbs
	KeyPiecewise
	KeyMatrix

	KeyTrigMenu
	KeyConstMenu
	KeyFuncMenu
	KeyRecallMenu
	KeyGraphMenu
	KeyClearVarMenu
	KeyPeriodicTableMenu
	KeyConfigMenu

	// Modal transition codes: pressing these toggles a sticky shift/ctrl
	// state rather than producing a character. The receiver uses them to
	// light keyboard LEDs (§6); the terminal rendition has no LEDs, so
	// entry.Controller just tracks the booleans.
	KeyShiftToggle
	KeyCtrlToggle

	KeyLetterA // KeyLetterA..KeyLetterZ are contiguous
)

// KeyLetter returns the Code for the nth letter (0 = 'a', 25 = 'z').
func KeyLetter(n int) Code { return KeyLetterA + Code(n) }

// IsLetter reports whether c is one of KeyLetterA..KeyLetterA+25.
func (c Code) IsLetter() bool { return c >= KeyLetterA && c < KeyLetterA+26 }

// Letter returns the lowercase ASCII byte for a letter code.
func (c Code) Letter() byte { return byte('a') + byte(c-KeyLetterA) }
