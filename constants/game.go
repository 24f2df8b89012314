package constants

// Board Geometry
const (
	// BoardSize is the number of rows and columns of the square board
	BoardSize = 8

	// TokenKinds is the size of the token alphabet
	TokenKinds = 6

	// MinRunLength is the shortest run of identical tokens that counts as a match
	MinRunLength = 3
)

// Scoring
const (
	// PointsPerToken is awarded for every cell removed in a pass
	PointsPerToken = 10

	// ComboBonusStep is added per consecutive matching pass after the first
	ComboBonusStep = 50
)

// Session Defaults
const (
	// DefaultMoveBudget is the number of committed swaps per game
	DefaultMoveBudget = 30

	// DefaultTargetScore is the score that wins the game
	DefaultTargetScore = 1000
)
