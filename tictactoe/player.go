package tictactoe

import (
	"fmt"
	"strings"
)

// Player is one of the two symbols.
type Player int8

const (
	X Player = iota + 1
	O
)

func (p Player) Opponent() Player {
	if p == X {
		return O
	}
	return X
}

func (p Player) Cell() Cell {
	if p == X {
		return Cross
	}
	return Nought
}

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return fmt.Sprintf("Player(%d)", int8(p))
}

func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	}
	return 0, fmt.Errorf("unknown player %q", s)
}

// Cell is the content of one board square.
type Cell int8

const (
	Empty Cell = iota
	Cross
	Nought
)

// Player returns the owner of the cell, if any.
func (c Cell) Player() (Player, bool) {
	switch c {
	case Cross:
		return X, true
	case Nought:
		return O, true
	}
	return 0, false
}

func (c Cell) rune() rune {
	switch c {
	case Cross:
		return 'X'
	case Nought:
		return 'O'
	}
	return '.'
}
