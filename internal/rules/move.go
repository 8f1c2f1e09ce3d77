package rules

import (
	"github.com/corentings/chess/v2"
)

// Candidate is a move the user is proposing. It is constructed, tried
// against the engine and discarded within one click; nothing stores it.
type Candidate struct {
	From  chess.Square
	To    chess.Square
	Promo chess.PieceType
}

// Build constructs a candidate move from origin to destination, given the
// piece currently occupying the origin. A pawn arriving on the far rank is
// always promoted to a queen; offering an under-promotion picker is a
// non-goal. Build never fails: legality is decided by the engine when the
// candidate is tried, not here.
func Build(from, to chess.Square, moving chess.Piece) Candidate {
	c := Candidate{From: from, To: to}
	if moving.Type() == chess.Pawn && (to.Rank() == chess.Rank8 || to.Rank() == chess.Rank1) {
		c.Promo = chess.Queen
	}
	return c
}

// UCI returns the candidate in UCI wire form, e.g. "e2e4" or "e7e8q".
func (c Candidate) UCI() string {
	s := c.From.String() + c.To.String()
	if c.Promo == chess.Queen {
		s += "q"
	}
	return s
}

func (c Candidate) String() string {
	return c.UCI()
}
