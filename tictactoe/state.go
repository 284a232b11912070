package tictactoe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"adversarial/game"
)

const Size = 9

// lines are the eight winning triples: rows, columns, then diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

var ErrBadBoard = errors.New("bad board")

// Action places the mover's symbol at Position, 0-8 in row-major order.
type Action struct {
	Position int    `json:"position"`
	Player   Player `json:"-"`
}

func (a Action) Mover() Player {
	return a.Player
}

func (a Action) String() string {
	return fmt.Sprintf("%s@%d", a.Player, a.Position)
}

// ParseAction reads a square number as a move by the player to move in s. Range and
// occupancy are left to Result.
func ParseAction(line string, s State) (Action, error) {
	position, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return Action{}, fmt.Errorf("%w: want a square 0-8", game.InvalidMove)
	}
	return Action{Position: position, Player: s.Turn}, nil
}

// State is a board and the player to move. It is a comparable value, copies never share
// storage.
type State struct {
	Board [Size]Cell
	Turn  Player
}

var _ game.State[Player, Action, State] = State{}

// NewGame returns the empty board with X to move.
func NewGame() State {
	return State{Turn: X}
}

// ParseState reads a board written as nine characters of 'X', 'O' or '.', row by row. The
// player to move is derived from the symbol counts.
func ParseState(board string) (State, error) {
	if len(board) != Size {
		return State{}, fmt.Errorf("%w: want %d cells, got %d", ErrBadBoard, Size, len(board))
	}

	var s State
	crosses, noughts := 0, 0
	for i, r := range board {
		switch r {
		case 'X', 'x':
			s.Board[i] = Cross
			crosses++
		case 'O', 'o':
			s.Board[i] = Nought
			noughts++
		case '.', '-', '_':
			s.Board[i] = Empty
		default:
			return State{}, fmt.Errorf("%w: unexpected %q at %d", ErrBadBoard, r, i)
		}
	}

	switch crosses - noughts {
	case 0:
		s.Turn = X
	case 1:
		s.Turn = O
	default:
		return State{}, fmt.Errorf("%w: %d crosses and %d noughts", ErrBadBoard, crosses, noughts)
	}
	return s, nil
}

func (s State) Player() Player {
	return s.Turn
}

// Actions returns a move onto every empty square in position order, or none once the game
// is decided.
func (s State) Actions() []Action {
	if _, ok := s.Winner(); ok {
		return nil
	}
	actions := make([]Action, 0, Size)
	for i, c := range s.Board {
		if c == Empty {
			actions = append(actions, Action{Position: i, Player: s.Turn})
		}
	}
	return actions
}

func (s State) Result(action Action) (State, error) {
	if action.Player != s.Turn {
		return State{}, game.WrongPlayer
	}
	if action.Position < 0 || action.Position >= Size {
		return State{}, game.InvalidMove
	}
	if s.Board[action.Position] != Empty {
		return State{}, game.IllegalMove
	}
	if _, ok := s.Winner(); ok {
		return State{}, game.IllegalMove
	}

	next := s
	next.Board[action.Position] = action.Player.Cell()
	next.Turn = s.Turn.Opponent()
	return next, nil
}

func (s State) Utility(player Player) float64 {
	winner, ok := s.Winner()
	switch {
	case !ok:
		return 0
	case winner == player:
		return 1
	default:
		return -1
	}
}

func (s State) Terminal() bool {
	if _, ok := s.Winner(); ok {
		return true
	}
	return s.full()
}

// Winner returns the player owning a complete line.
func (s State) Winner() (Player, bool) {
	for _, line := range lines {
		c := s.Board[line[0]]
		if c == Empty {
			continue
		}
		if s.Board[line[1]] == c && s.Board[line[2]] == c {
			return c.Player()
		}
	}
	return 0, false
}

func (s State) full() bool {
	for _, c := range s.Board {
		if c == Empty {
			return false
		}
	}
	return true
}

// Encode writes the board in the format read by ParseState.
func (s State) Encode() string {
	var b strings.Builder
	for _, c := range s.Board {
		b.WriteRune(c.rune())
	}
	return b.String()
}

// String renders the board on three lines, numbering the empty squares.
func (s State) String() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			i := row*3 + col
			if col > 0 {
				b.WriteString(" | ")
			}
			if s.Board[i] == Empty {
				fmt.Fprintf(&b, "%d", i)
			} else {
				b.WriteRune(s.Board[i].rune())
			}
		}
		if row < 2 {
			b.WriteString("\n---------\n")
		}
	}
	return b.String()
}

// Game is the tic-tac-toe initial-state factory.
type Game struct{}

var _ game.Game[State] = Game{}

func (Game) InitialState() State {
	return NewGame()
}
