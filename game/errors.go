package game

// ActionError is returned by State.Result when an action cannot be applied.
type ActionError int

const (
	// InvalidMove is an action that does not make sense on any board.
	InvalidMove ActionError = iota + 1
	// IllegalMove is well formed but violates the rules in the current state.
	IllegalMove
	// WrongPlayer is an action made out of turn.
	WrongPlayer
)

func (e ActionError) Error() string {
	switch e {
	case InvalidMove:
		return "invalid move"
	case IllegalMove:
		return "illegal move"
	case WrongPlayer:
		return "wrong player"
	}
	return "unknown action error"
}
