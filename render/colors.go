package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/constants"
)

// Highlight selects the background treatment of a board cell
type Highlight uint8

const (
	HighlightNone Highlight = iota
	HighlightCursor
	HighlightSelected
	HighlightHint
	HighlightReject
)

// Token base colors, one per kind
var tokenHex = [constants.TokenKinds]string{
	"#f7768e", // Red
	"#e0af68", // Amber
	"#7aa2f7", // Blue
	"#9ece6a", // Green
	"#bb9af7", // Purple
	"#7dcfff", // Cyan
}

var (
	colBackground = mustHex("#1a1b26") // Tokyo Night background
	colCellBg     = mustHex("#24283b") // Slightly lifted cell well
	colCursorBg   = mustHex("#414868")
	colWhite      = mustHex("#ffffff")
	colHint       = mustHex("#9ece6a")
	colReject     = mustHex("#ff0000")
	colBarLow     = mustHex("#8b0000")
	colBarHigh    = mustHex("#22c55e")

	tokenColors [constants.TokenKinds]colorful.Color
)

// RGB color definitions for HUD and chrome
var (
	RgbBackground = toTcell(colBackground)
	RgbStatusText = tcell.NewRGBColor(192, 202, 245)
	RgbDimText    = tcell.NewRGBColor(86, 95, 137)
	RgbScoreText  = tcell.NewRGBColor(255, 255, 255)
	RgbComboText  = tcell.NewRGBColor(255, 158, 100)
	RgbWinBg      = tcell.NewRGBColor(34, 139, 34)
	RgbLoseBg     = tcell.NewRGBColor(180, 50, 50)
	RgbBarEmpty   = tcell.NewRGBColor(40, 42, 54)
)

func init() {
	for i, h := range tokenHex {
		tokenColors[i] = mustHex(h)
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// TokenColor returns the foreground color of a token kind
func TokenColor(k board.Kind) tcell.Color {
	if int(k) >= len(tokenColors) {
		return RgbStatusText
	}
	return toTcell(tokenColors[k])
}

// CellStyle returns the style of a board cell under the given highlight
func CellStyle(cell board.Cell, h Highlight) tcell.Style {
	k, ok := cell.Kind()
	if !ok {
		return tcell.StyleDefault.Background(toTcell(colCellBg)).Foreground(RgbDimText)
	}
	base := tokenColors[k]
	style := tcell.StyleDefault.Foreground(toTcell(base))

	switch h {
	case HighlightCursor:
		return style.Background(toTcell(colCursorBg)).Bold(true)
	case HighlightSelected:
		// Inverted: the token color fills the cell, lightened toward white
		return style.Background(toTcell(base.BlendLab(colWhite, 0.25))).Foreground(toTcell(colBackground)).Bold(true)
	case HighlightHint:
		return style.Background(toTcell(colCellBg.BlendLab(colHint, 0.45)))
	case HighlightReject:
		return style.Background(toTcell(colCellBg.BlendLab(colReject, 0.6)))
	default:
		return style.Background(toTcell(colCellBg))
	}
}

// GetProgressColor returns the color at a position of the score progress bar
// progress is 0.0 to 1.0, blending dark red into green through HCL space
func GetProgressColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return RgbBarEmpty
	}
	if progress > 1.0 {
		progress = 1.0
	}
	return toTcell(colBarLow.BlendHcl(colBarHigh, progress))
}
