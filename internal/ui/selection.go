package ui

import (
	"github.com/corentings/chess/v2"
	"go.uber.org/zap"

	"clickchess/internal/rules"
)

// Board is the slice of the rules engine the selection machine needs.
// *rules.Game satisfies it; tests use a stub.
type Board interface {
	PieceAt(sq chess.Square) chess.Piece
	Turn() chess.Color
	TryMove(c rules.Candidate) error
}

// Selector is the two-click selection state machine: the first click on a
// piece of the side to move selects it, the second click anywhere attempts
// the move and clears the selection. Clearing happens whether or not the
// move was legal; a mis-click means re-selecting, not a retry loop.
type Selector struct {
	origin Cell
	active bool
	log    *zap.Logger
}

// NewSelector returns an empty selector. log must not be nil; pass
// zap.NewNop() when logging is unwanted.
func NewSelector(log *zap.Logger) *Selector {
	return &Selector{log: log}
}

// Selected returns the selected origin cell, if any.
func (s *Selector) Selected() (Cell, bool) {
	return s.origin, s.active
}

// Clear drops the current selection.
func (s *Selector) Clear() {
	s.active = false
}

// Click feeds one bounds-checked click to the state machine.
func (s *Selector) Click(cell Cell, b Board) {
	if !s.active {
		piece := b.PieceAt(cell.Square())
		if piece == chess.NoPiece || piece.Color() != b.Turn() {
			// Empty square or an opponent piece: nothing to select.
			return
		}
		s.origin = cell
		s.active = true
		s.log.Debug("selected", zap.String("square", cell.Square().String()))
		return
	}

	from := s.origin
	s.active = false

	cand := rules.Build(from.Square(), cell.Square(), b.PieceAt(from.Square()))
	if err := b.TryMove(cand); err != nil {
		s.log.Debug("move discarded", zap.String("uci", cand.UCI()), zap.Error(err))
		return
	}
	s.log.Info("move played", zap.String("uci", cand.UCI()))
}
