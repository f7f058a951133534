package input

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

// actionRegistry maps canonical action names used in keymap files to intents
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none":  IntentNone,
	"quit":  IntentQuit,
	"jump":  IntentJump,
	"pause": IntentPause,
}

// keyNames maps keymap names to special keys
var keyNames = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"ctrl-p":    tcell.KeyCtrlP,
}

// ActionIntent resolves a canonical action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KeyByName resolves a special key name
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}
