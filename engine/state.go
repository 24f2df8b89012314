package engine

// State is the session lifecycle phase. It only leaves Playing once per game
// and only returns to Playing through NewGame.
type State uint8

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "PLAYING"
	case StateWon:
		return "WON"
	case StateLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the game is over
func (s State) Terminal() bool {
	return s != StatePlaying
}
