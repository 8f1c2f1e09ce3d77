// Package rules wraps the external chess rules library behind the small
// query/apply surface the board UI needs. The library owns the position,
// move legality and game termination; nothing in this package second-guesses
// it.
package rules

import (
	"fmt"

	"github.com/corentings/chess/v2"
)

// Game holds the live position. All methods are synchronous; the position
// mutates only inside a successful TryMove.
type Game struct {
	inner *chess.Game
}

// New starts a game from the standard initial position.
func New() *Game {
	return &Game{inner: chess.NewGame()}
}

// PieceAt returns the piece occupying sq, or chess.NoPiece.
func (g *Game) PieceAt(sq chess.Square) chess.Piece {
	return g.inner.Position().Board().Piece(sq)
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Color {
	return g.inner.Position().Turn()
}

// TryMove pushes the candidate if it is a member of the current legal-move
// set. A candidate that does not parse into a square pair, or that the
// engine rejects, comes back as an error and leaves the position untouched.
func (g *Game) TryMove(c Candidate) error {
	if err := g.inner.PushNotationMove(c.UCI(), chess.UCINotation{}, nil); err != nil {
		return fmt.Errorf("move %s: %w", c.UCI(), err)
	}
	return nil
}

// InCheck reports whether the side to move is in check. The engine tags
// every applied move, so the last move carries the answer; the starting
// position is never check.
func (g *Game) InCheck() bool {
	moves := g.inner.Moves()
	if len(moves) == 0 {
		return false
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

// Status derives the current game status. Checkmate and stalemate win over
// everything else; check is reported only for a game still in progress.
func (g *Game) Status() Status {
	switch g.inner.Method() {
	case chess.Checkmate:
		winner := chess.White
		if g.inner.Outcome() == chess.BlackWon {
			winner = chess.Black
		}
		return Status{State: Checkmate, Winner: winner}
	case chess.Stalemate:
		return Status{State: Stalemate}
	}
	// The engine ends some games on its own (75-move rule, fivefold
	// repetition, insufficient material).
	if g.inner.Outcome() == chess.Draw {
		return Status{State: Drawn, Method: g.inner.Method()}
	}
	return Status{State: Playing, Turn: g.Turn(), Check: g.InCheck()}
}

// Reset returns the game to the starting position.
func (g *Game) Reset() {
	g.inner = chess.NewGame()
}

// MoveCount returns the number of half-moves played so far.
func (g *Game) MoveCount() int {
	return len(g.inner.Moves())
}

// FEN returns the current position for logging and tests.
func (g *Game) FEN() string {
	return g.inner.FEN()
}
