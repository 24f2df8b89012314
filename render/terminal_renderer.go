package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/constants"
	"github.com/lixenwraith/vi-crush/engine"
)

const helpText = "hjkl/arrows move  space select  ? hint  n new  m mute  q quit"

// Overlay is front-end state drawn on top of the session view
type Overlay struct {
	Cursor board.Coord

	// Hint pair highlighted after '?'
	Hint    [2]board.Coord
	HasHint bool

	// Reject pair flashed after an illegal swap
	Reject    [2]board.Coord
	HasReject bool

	Message string
	Muted   bool
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen dimensions
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(v engine.View, o Overlay) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusText)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	if r.width < MinWidth || r.height < MinHeight {
		r.drawText(0, 0, fmt.Sprintf("terminal too small: need %dx%d", MinWidth, MinHeight), defaultStyle)
		r.screen.Show()
		return
	}

	r.drawHeader(v, o, defaultStyle)
	r.drawProgressBar(v.Progress, defaultStyle)
	r.drawMessage(o.Message, defaultStyle)
	r.drawBoard(v, o)
	r.drawText(constants.BoardOriginX, helpRow(), helpText, defaultStyle.Foreground(RgbDimText))

	if v.State.Terminal() {
		r.drawBanner(v)
	}

	r.screen.Show()
}

// drawHeader draws the title and counters
func (r *TerminalRenderer) drawHeader(v engine.View, o Overlay, defaultStyle tcell.Style) {
	r.drawText(constants.BoardOriginX, rowTitle, "VI-CRUSH", defaultStyle.Bold(true))
	if o.Muted {
		r.drawRight(rowTitle, "[muted]", defaultStyle.Foreground(RgbDimText))
	}

	x := r.drawText(constants.BoardOriginX, rowScore, "Score ", defaultStyle)
	x = r.drawText(x, rowScore, fmt.Sprintf("%d/%d", v.Score, v.Target), defaultStyle.Foreground(RgbScoreText).Bold(true))
	x = r.drawText(x, rowScore, "   Moves ", defaultStyle)
	r.drawText(x, rowScore, fmt.Sprintf("%d", v.MovesRemaining), defaultStyle.Foreground(RgbScoreText).Bold(true))
}

// drawProgressBar draws score progress toward the target
func (r *TerminalRenderer) drawProgressBar(progress float64, defaultStyle tcell.Style) {
	filled := int(progress * constants.ProgressBarWidth)
	if filled > constants.ProgressBarWidth {
		filled = constants.ProgressBarWidth
	}

	x := constants.BoardOriginX
	for i := 0; i < constants.ProgressBarWidth; i++ {
		style := defaultStyle.Foreground(RgbBarEmpty)
		ch := '░'
		if i < filled {
			style = defaultStyle.Foreground(GetProgressColor(float64(i+1) / constants.ProgressBarWidth))
			ch = '█'
		}
		r.screen.SetContent(x+i, rowProgress, ch, nil, style)
	}
	r.drawText(x+constants.ProgressBarWidth+1, rowProgress, fmt.Sprintf("%3d%%", int(progress*100)), defaultStyle)
}

func (r *TerminalRenderer) drawMessage(msg string, defaultStyle tcell.Style) {
	if msg == "" {
		return
	}
	style := defaultStyle
	if strings.HasPrefix(msg, "COMBO") {
		style = style.Foreground(RgbComboText).Bold(true)
	}
	r.drawText(constants.BoardOriginX, rowMessage, msg, style)
}

// drawBoard paints every cell with its highlight
func (r *TerminalRenderer) drawBoard(v engine.View, o Overlay) {
	for row := 0; row < constants.BoardSize; row++ {
		for col := 0; col < constants.BoardSize; col++ {
			c := board.At(row, col)
			r.drawCell(c, v.Cells[row][col], highlightFor(c, v, o))
		}
	}
}

// highlightFor picks one highlight per cell; selection wins over transient marks
func highlightFor(c board.Coord, v engine.View, o Overlay) Highlight {
	switch {
	case v.HasSelection && v.Selected == c:
		return HighlightSelected
	case o.HasReject && (o.Reject[0] == c || o.Reject[1] == c):
		return HighlightReject
	case o.HasHint && (o.Hint[0] == c || o.Hint[1] == c):
		return HighlightHint
	case o.Cursor == c:
		return HighlightCursor
	default:
		return HighlightNone
	}
}

func (r *TerminalRenderer) drawCell(c board.Coord, cell board.Cell, h Highlight) {
	x, y := CellOrigin(c)
	style := CellStyle(cell, h)

	glyph := '·'
	if k, ok := cell.Kind(); ok {
		glyph = constants.TokenGlyphs[k]
	}

	for dx := 0; dx < glyphWidth; dx++ {
		r.screen.SetContent(x+dx, y, ' ', nil, style)
	}
	r.screen.SetContent(x+glyphWidth/2, y, glyph, nil, style)
}

// drawBanner overlays the end-of-game message centered on the board
func (r *TerminalRenderer) drawBanner(v engine.View) {
	var text string
	style := tcell.StyleDefault.Foreground(RgbScoreText).Bold(true)
	if v.State == engine.StateWon {
		text = fmt.Sprintf(" YOU WIN! %d points ", v.Score)
		style = style.Background(RgbWinBg)
	} else {
		text = fmt.Sprintf(" OUT OF MOVES %d/%d ", v.Score, v.Target)
		style = style.Background(RgbLoseBg)
	}
	sub := " n: new game  q: quit "

	midY := constants.BoardOriginY + boardHeight/2 - 1
	r.drawCentered(midY, text, style)
	r.drawCentered(midY+1, sub, style)
}

// drawCentered draws text centered over the board columns
func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	x := constants.BoardOriginX + (boardWidth-runewidth.StringWidth(text))/2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}

// drawRight draws text flush with the right edge of the board
func (r *TerminalRenderer) drawRight(y int, text string, style tcell.Style) {
	r.drawText(constants.BoardOriginX+boardWidth-runewidth.StringWidth(text), y, text, style)
}

// drawText draws text and returns the column after the last cell written
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}
