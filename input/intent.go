package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // q, Esc, Ctrl+C
	IntentJump   // Space, Up
	IntentPause  // p
	IntentResize // Terminal resize event
)

// Intent is a parsed input event
type Intent struct {
	Type IntentType
}

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentJump:
		return "jump"
	case IntentPause:
		return "pause"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}
