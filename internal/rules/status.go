package rules

import (
	"strings"

	"github.com/corentings/chess/v2"
)

// State classifies the game for the status line.
type State int

const (
	Playing State = iota
	Checkmate
	Stalemate
	Drawn // engine-forced draw other than stalemate
)

// Status is derived from the engine every frame and never stored.
type Status struct {
	State  State
	Turn   chess.Color  // valid while Playing
	Check  bool         // valid while Playing
	Winner chess.Color  // valid on Checkmate
	Method chess.Method // valid on Drawn
}

// Text renders the side-panel status line.
func (s Status) Text() string {
	switch s.State {
	case Checkmate:
		if s.Winner == chess.White {
			return "CHECKMATE! White Wins"
		}
		return "CHECKMATE! Black Wins"
	case Stalemate:
		return "STALEMATE (Draw)"
	case Drawn:
		return "DRAW (" + strings.ToLower(s.Method.String()) + ")"
	}
	text := "Turn: White"
	if s.Turn == chess.Black {
		text = "Turn: Black"
	}
	if s.Check {
		text += " (CHECK)"
	}
	return text
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s.State != Playing
}

// Result returns a short key for the stats store: "white", "black",
// "stalemate" or "draw". Empty while the game is in progress.
func (s Status) Result() string {
	switch s.State {
	case Checkmate:
		if s.Winner == chess.White {
			return "white"
		}
		return "black"
	case Stalemate:
		return "stalemate"
	case Drawn:
		return "draw"
	}
	return ""
}
