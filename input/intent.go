package input

import "github.com/lixenwraith/vi-crush/board"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentResize     // Terminal resize event
	IntentToggleMute // m

	// Cursor navigation
	IntentMotion // h,j,k,l,0,$,gg,G,arrows

	// Game actions
	IntentSelect     // Space, Enter: gesture at cursor
	IntentMouseClick // Left-click: gesture at clicked cell
	IntentHint       // ?
	IntentNewGame    // n
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentResize:     "resize",
	IntentToggleMute: "toggle_mute",
	IntentMotion:     "motion",
	IntentSelect:     "select",
	IntentMouseClick: "mouse_click",
	IntentHint:       "hint",
	IntentNewGame:    "new_game",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// MotionOp identifies cursor motion algorithm
type MotionOp uint8

const (
	MotionNone      MotionOp = iota
	MotionLeft               // h, Left arrow
	MotionRight              // l, Right arrow
	MotionUp                 // k, Up arrow
	MotionDown               // j, Down arrow
	MotionLineStart          // 0, Home
	MotionLineEnd            // $, End
	MotionTop                // gg
	MotionBottom             // G
)

// Intent is the parsed form of one or more terminal events
type Intent struct {
	Type    IntentType
	Motion  MotionOp
	Count   int         // Effective count (minimum 1)
	Cell    board.Coord // Target of IntentMouseClick
	Command string      // Captured sequence for visual feedback
}
