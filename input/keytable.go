package input

import (
	"cmp"
	"maps"
	"slices"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents in normal (non-prompt) state
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	Keys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyLeft:   IntentRotateLeft,
			tcell.KeyRight:  IntentRotateRight,
			tcell.KeyUp:     IntentRotateUp,
			tcell.KeyDown:   IntentRotateDown,
			tcell.KeyPgUp:   IntentZoomIn,
			tcell.KeyPgDn:   IntentZoomOut,
			tcell.KeyHome:   IntentResetView,
			tcell.KeyF1:     IntentToggleHelp,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentPause,
			'm': IntentToggleMute,
			'd': IntentToggleDust,
			'?': IntentToggleHelp,
			'c': IntentClear,
			'0': IntentModeNone,
			'1': IntentModeRandom,
			'2': IntentModeOrigin,
			'3': IntentModeDestination,
			'4': IntentModePair,
			'/': IntentSearchOpen,
			'f': IntentLaunchOpen,
			'h': IntentRotateLeft,
			'l': IntentRotateRight,
			'k': IntentRotateUp,
			'j': IntentRotateDown,
			'+': IntentZoomIn,
			'=': IntentZoomIn,
			'-': IntentZoomOut,
			'r': IntentResetView,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event, IntentNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Binding is one key and the action it triggers
type Binding struct {
	Key    string
	Action string
}

// Bindings lists every binding sorted by action, then key
func (kt *KeyTable) Bindings() []Binding {
	out := make([]Binding, 0, len(kt.Keys)+len(kt.Runes))
	for k, it := range kt.Keys {
		name, ok := tcell.KeyNames[k]
		if !ok {
			continue
		}
		out = append(out, Binding{Key: name, Action: ActionName(it)})
	}
	for r, it := range kt.Runes {
		name := string(r)
		if r == ' ' {
			name = "Space"
		}
		out = append(out, Binding{Key: name, Action: ActionName(it)})
	}
	slices.SortFunc(out, func(a, b Binding) int {
		if c := cmp.Compare(a.Action, b.Action); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}
