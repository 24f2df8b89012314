package constants

import (
	"testing"
)

// TestTokenGlyphsDistinct verifies every token kind draws differently
func TestTokenGlyphsDistinct(t *testing.T) {
	seen := make(map[rune]int, TokenKinds)
	for k, g := range TokenGlyphs {
		if prev, ok := seen[g]; ok {
			t.Errorf("Kind %d reuses glyph %q of kind %d", k, g, prev)
		}
		seen[g] = k
	}
}

// TestTokenKindsFitLetterNotation verifies kinds map onto A..Z board notation
func TestTokenKindsFitLetterNotation(t *testing.T) {
	if TokenKinds < 3 || TokenKinds > 26 {
		t.Errorf("Expected TokenKinds in [3,26], got %d", TokenKinds)
	}
}

// TestTransientDurations verifies hint and flash timings stay readable
func TestTransientDurations(t *testing.T) {
	if RejectFlashDuration >= HintDuration {
		t.Errorf("Expected reject flash %v shorter than hint %v", RejectFlashDuration, HintDuration)
	}
	if FrameUpdateInterval >= RejectFlashDuration {
		t.Errorf("Expected frame interval %v shorter than reject flash %v", FrameUpdateInterval, RejectFlashDuration)
	}
}

// TestBoardLayoutCellSize verifies a cell has room for a glyph and a gutter
func TestBoardLayoutCellSize(t *testing.T) {
	if CellWidth < 2 || CellHeight < 1 {
		t.Errorf("Expected cell at least 2x1, got %dx%d", CellWidth, CellHeight)
	}
	if BoardOriginY < 4 {
		t.Errorf("Expected BoardOriginY to leave 4 HUD rows, got %d", BoardOriginY)
	}
}
