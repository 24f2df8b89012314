package input

import "github.com/gdamore/tcell/v2"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorMotion
	BehaviorPrefix
	BehaviorAction
	BehaviorSystem
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior   KeyBehavior
	Motion     MotionOp
	IntentType IntentType
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry

	// Keys after g prefix
	PrefixG map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {BehaviorSystem, MotionNone, IntentQuit},
			tcell.KeyEscape: {BehaviorSystem, MotionNone, IntentQuit},
			tcell.KeyUp:     {BehaviorMotion, MotionUp, IntentMotion},
			tcell.KeyDown:   {BehaviorMotion, MotionDown, IntentMotion},
			tcell.KeyLeft:   {BehaviorMotion, MotionLeft, IntentMotion},
			tcell.KeyRight:  {BehaviorMotion, MotionRight, IntentMotion},
			tcell.KeyHome:   {BehaviorMotion, MotionLineStart, IntentMotion},
			tcell.KeyEnd:    {BehaviorMotion, MotionLineEnd, IntentMotion},
			tcell.KeyEnter:  {BehaviorAction, MotionNone, IntentSelect},
		},

		Runes: map[rune]KeyEntry{
			// Basic motions
			'h': {BehaviorMotion, MotionLeft, IntentMotion},
			'j': {BehaviorMotion, MotionDown, IntentMotion},
			'k': {BehaviorMotion, MotionUp, IntentMotion},
			'l': {BehaviorMotion, MotionRight, IntentMotion},
			'0': {BehaviorMotion, MotionLineStart, IntentMotion},
			'$': {BehaviorMotion, MotionLineEnd, IntentMotion},
			'G': {BehaviorMotion, MotionBottom, IntentMotion},

			'g': {BehaviorPrefix, MotionNone, IntentNone},

			// Game actions
			' ': {BehaviorAction, MotionNone, IntentSelect},
			'?': {BehaviorAction, MotionNone, IntentHint},
			'n': {BehaviorAction, MotionNone, IntentNewGame},
			'm': {BehaviorSystem, MotionNone, IntentToggleMute},
			'q': {BehaviorSystem, MotionNone, IntentQuit},
		},

		PrefixG: map[rune]KeyEntry{
			'g': {BehaviorMotion, MotionTop, IntentMotion},
		},
	}
}
