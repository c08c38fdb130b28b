package game

// Outcome is the round result. It is Ongoing until the tick in which
// one or both cycles crash, then set exactly once.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Player1Wins
	Player2Wins
	Draw
)

// Winner returns the winning cycle's ID, or 0 for Ongoing and Draw
func (o Outcome) Winner() CycleID {
	switch o {
	case Player1Wins:
		return Player1
	case Player2Wins:
		return Player2
	default:
		return 0
	}
}

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "Ongoing"
	case Player1Wins:
		return "Player1Wins"
	case Player2Wins:
		return "Player2Wins"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}
