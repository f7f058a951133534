package input

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// Handler parses tcell events into intents and latches jump presses
// Terminals report presses but not releases, so a press holds the jump until the next tick consumes it
type Handler struct {
	keys *KeyTable
	jump atomic.Bool
}

// NewHandler creates a handler; nil keys selects the default bindings
func NewHandler(keys *KeyTable) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Handler{keys: keys}
}

// Process parses a tcell event and returns an Intent
// Returns nil for unbound keys and ignored events
func (h *Handler) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

// HandleKey resolves a key and rune pair against the key table
func (h *Handler) HandleKey(key tcell.Key, r rune) *Intent {
	var (
		it IntentType
		ok bool
	)
	if key == tcell.KeyRune {
		it, ok = h.keys.Runes[r]
	} else {
		it, ok = h.keys.SpecialKeys[key]
	}
	if !ok || it == IntentNone {
		return nil
	}

	if it == IntentJump {
		h.jump.Store(true)
	}
	return &Intent{Type: it}
}

// ConsumeJump reports whether a jump was pressed since the last call, clearing the latch
func (h *Handler) ConsumeJump() bool {
	return h.jump.Swap(false)
}
