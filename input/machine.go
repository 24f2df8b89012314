package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-crush/render"
)

// InputState is the pending-sequence state of the machine
type InputState uint8

const (
	StateIdle InputState = iota
	StateCount
	StatePrefixG
)

// maxCount caps the numeric prefix
const maxCount = 99

// Machine is the input state machine
// Parses tcell events into semantic Intent
type Machine struct {
	state    InputState
	keyTable *KeyTable

	count int

	// Buttons held at the previous mouse event; clicks fire on press only
	buttons tcell.ButtonMask

	// Command buffer for visual feedback
	cmdBuffer []rune
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		state:     StateIdle,
		keyTable:  DefaultKeyTable(),
		cmdBuffer: make([]rune, 0, 8),
	}
}

// GetPendingCommand returns the current command buffer for UI display
func (m *Machine) GetPendingCommand() string {
	if len(m.cmdBuffer) == 0 {
		return ""
	}
	return string(m.cmdBuffer)
}

// State returns the pending-sequence state
func (m *Machine) State() InputState {
	return m.state
}

// Reset clears all pending state
func (m *Machine) Reset() {
	m.state = StateIdle
	m.count = 0
	m.cmdBuffer = m.cmdBuffer[:0]
}

// Process parses a terminal event and returns an Intent
// Returns nil if input is incomplete or unbound
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		entry, ok := m.keyTable.SpecialKeys[ev.Key()]
		if !ok {
			m.Reset()
			return nil
		}
		// Esc cancels a pending count or prefix before it quits
		if ev.Key() == tcell.KeyEscape && m.state != StateIdle {
			m.Reset()
			return nil
		}
		return m.handleEntry(entry)
	}

	key := ev.Rune()
	switch m.state {
	case StatePrefixG:
		return m.processPrefixG(key)
	default:
		return m.processIdleOrCount(key)
	}
}

func (m *Machine) processIdleOrCount(key rune) *Intent {
	m.cmdBuffer = append(m.cmdBuffer, key)

	// Handle count accumulation
	if key >= '1' && key <= '9' {
		m.accumulateCount(key)
		m.state = StateCount
		return nil
	}
	if key == '0' && m.count > 0 {
		m.accumulateCount(key)
		return nil
	}

	entry, ok := m.keyTable.Runes[key]
	if !ok {
		m.Reset()
		return nil
	}

	return m.handleEntry(entry)
}

func (m *Machine) processPrefixG(key rune) *Intent {
	m.cmdBuffer = append(m.cmdBuffer, key)

	entry, ok := m.keyTable.PrefixG[key]
	if !ok {
		m.Reset()
		return nil
	}
	return m.handleEntry(entry)
}

func (m *Machine) handleEntry(entry KeyEntry) *Intent {
	switch entry.Behavior {
	case BehaviorPrefix:
		m.state = StatePrefixG
		return nil

	case BehaviorMotion:
		intent := &Intent{
			Type:    IntentMotion,
			Motion:  entry.Motion,
			Count:   m.effectiveCount(),
			Command: m.GetPendingCommand(),
		}
		m.Reset()
		return intent

	case BehaviorAction, BehaviorSystem:
		intent := &Intent{Type: entry.IntentType, Count: 1}
		m.Reset()
		return intent
	}

	m.Reset()
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	prev := m.buttons
	m.buttons = ev.Buttons()

	if ev.Buttons()&tcell.Button1 == 0 || prev&tcell.Button1 != 0 {
		return nil
	}

	x, y := ev.Position()
	cell, ok := render.HitTest(x, y)
	if !ok {
		return nil
	}
	m.Reset()
	return &Intent{Type: IntentMouseClick, Cell: cell, Count: 1}
}

func (m *Machine) accumulateCount(key rune) {
	m.count = m.count*10 + int(key-'0')
	if m.count > maxCount {
		m.count = maxCount
	}
}

func (m *Machine) effectiveCount() int {
	if m.count == 0 {
		return 1
	}
	return m.count
}
