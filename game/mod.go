package game

// State is the capability set a two-player, zero-sum, perfect-information game exposes to
// be searchable. P identifies players, A describes moves and S is the implementing state
// type itself.
//
// State should be immutable - Result always returns a new value and never mutates the
// receiver.
type State[P, A comparable, S any] interface {
	// Player returns the player to move.
	Player() P
	// Actions returns the legal actions of the player to move, in a deterministic order.
	Actions() []A
	// Result returns the state reached by playing action, or an ActionError.
	Result(action A) (S, error)
	// Utility returns the value of a terminal state from player's perspective. It must be
	// antisymmetric between the two players, draws are 0. Undefined on non-terminal states.
	Utility(player P) float64
	// Terminal reports whether no further play is possible.
	Terminal() bool
}

// Action is implemented by actions that carry the player making them.
type Action[P comparable] interface {
	Mover() P
}

// Game creates initial states.
type Game[S any] interface {
	InitialState() S
}
