package constants

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the redraw interval while idle
	FrameUpdateInterval = 50 * time.Millisecond

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// UI Timing
const (
	// StatusMessageTimeout is how long transient status messages stay visible
	StatusMessageTimeout = 2 * time.Second

	// HintDuration is how long a hinted pair stays highlighted
	HintDuration = 2 * time.Second

	// RejectFlashDuration is how long the cursor flashes after an illegal swap
	RejectFlashDuration = 300 * time.Millisecond
)

// Board Layout
const (
	// CellWidth is the terminal columns used by one board cell
	CellWidth = 4

	// CellHeight is the terminal rows used by one board cell
	CellHeight = 2

	// BoardOriginX is the left margin of the board
	BoardOriginX = 2

	// BoardOriginY is the top margin of the board, below the HUD
	BoardOriginY = 4

	// ProgressBarWidth is the width of the score progress bar in cells
	ProgressBarWidth = 24
)

// TokenGlyphs are the runes drawn for each token kind
var TokenGlyphs = [TokenKinds]rune{'●', '▲', '■', '◆', '★', '♥'}
