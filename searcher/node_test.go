package searcher

import (
	"adversarial/game"
)

type mockAction int

// mockState is a node of a hand-built game tree. Actions are child indices.
type mockState struct {
	player   string
	utility  float64 // Terminal utility for player
	children []*mockState
	reject   bool // Result rejects every action
	stuck    bool // Non-terminal without actions
}

func leaf(player string, utility float64) *mockState {
	return &mockState{player: player, utility: utility}
}

func node(player string, children ...*mockState) *mockState {
	return &mockState{player: player, children: children}
}

func (m *mockState) Player() string {
	return m.player
}

func (m *mockState) Actions() []mockAction {
	actions := make([]mockAction, len(m.children))
	for i := range m.children {
		actions[i] = mockAction(i)
	}
	return actions
}

func (m *mockState) Result(action mockAction) (*mockState, error) {
	if m.reject {
		return nil, game.IllegalMove
	}
	if action < 0 || int(action) >= len(m.children) {
		return nil, game.InvalidMove
	}
	return m.children[action], nil
}

func (m *mockState) Utility(player string) float64 {
	if player == m.player {
		return m.utility
	}
	return -m.utility
}

func (m *mockState) Terminal() bool {
	return len(m.children) == 0 && !m.stuck
}

func opponent(player string) string {
	if player == "max" {
		return "min"
	}
	return "max"
}

func newMinimax(opts ...Option) *Minimax[string, mockAction, *mockState] {
	return NewMinimax[string, mockAction, *mockState](opts...)
}
