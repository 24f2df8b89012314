package audio

// SoundType identifies a game sound effect
type SoundType int

const (
	SoundMatch  SoundType = iota // Cascade pass chime, pitched by combo
	SoundReject                  // Swap rolled back
	SoundWin                     // Target reached
	SoundLose                    // Move budget exhausted
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundMatch:
		return "match"
	case SoundReject:
		return "reject"
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	default:
		return "unknown"
	}
}
