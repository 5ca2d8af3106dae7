package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// InputState is the key-processing state of the machine
type InputState uint8

const (
	StateNormal InputState = iota
	StatePrompt
)

// maxPromptLen bounds typed prompt input
const maxPromptLen = 32

// Machine resolves key events to intents and owns the prompt line editor
type Machine struct {
	table  *KeyTable
	state  InputState
	kind   PromptKind
	prompt []rune
}

// NewMachine creates a machine using table, nil means defaults
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{
		table:  table,
		prompt: make([]rune, 0, maxPromptLen),
	}
}

// Process consumes one key event
func (m *Machine) Process(ev *tcell.EventKey) Intent {
	if m.state == StatePrompt {
		return m.processPrompt(ev)
	}

	it := m.table.Lookup(ev)
	switch it {
	case IntentSearchOpen:
		m.openPrompt(PromptSearch)
		return Intent{Type: it, Prompt: PromptSearch}
	case IntentLaunchOpen:
		m.openPrompt(PromptLaunch)
		return Intent{Type: it, Prompt: PromptLaunch}
	}
	return Intent{Type: it}
}

func (m *Machine) openPrompt(kind PromptKind) {
	m.state = StatePrompt
	m.kind = kind
	m.prompt = m.prompt[:0]
}

// processPrompt edits the prompt line; Ctrl-C still quits
func (m *Machine) processPrompt(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		m.reset()
		return Intent{Type: IntentQuit}
	case tcell.KeyEscape:
		kind := m.kind
		m.reset()
		return Intent{Type: IntentPromptCancel, Prompt: kind}
	case tcell.KeyEnter:
		kind := m.kind
		text := strings.TrimSpace(string(m.prompt))
		m.reset()
		return Intent{Type: IntentPromptSubmit, Prompt: kind, Text: text}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(m.prompt); n > 0 {
			m.prompt = m.prompt[:n-1]
		}
	case tcell.KeyCtrlU:
		m.prompt = m.prompt[:0]
	case tcell.KeyRune:
		if len(m.prompt) < maxPromptLen {
			m.prompt = append(m.prompt, ev.Rune())
		}
	}
	return Intent{}
}

func (m *Machine) reset() {
	m.state = StateNormal
	m.kind = PromptNone
	m.prompt = m.prompt[:0]
}

// State returns the current state
func (m *Machine) State() InputState {
	return m.state
}

// Prompt returns the open prompt kind and its current text
func (m *Machine) Prompt() (PromptKind, string) {
	return m.kind, string(m.prompt)
}
