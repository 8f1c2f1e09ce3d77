package ui

import (
	"github.com/corentings/chess/v2"
)

// Board geometry. The board pixel extent is exactly 8 squares, so pixel to
// cell conversion is plain integer division with no rounding loss.
const (
	SquareSize   = 80
	BoardSize    = SquareSize * 8
	PanelWidth   = 200
	ScreenWidth  = BoardSize + PanelWidth
	ScreenHeight = BoardSize
)

// Cell is a board square in screen-grid coordinates: Col 0 is the leftmost
// file, Row 0 the topmost rank. The rules engine counts ranks from the
// bottom instead, so the two are related by a vertical flip.
type Cell struct {
	Col int
	Row int
}

// PixelToCell maps window coordinates to a cell. The second return is false
// for clicks outside the 8x8 grid (side panel, window edge).
func PixelToCell(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= BoardSize || y >= BoardSize {
		return Cell{}, false
	}
	return Cell{Col: x / SquareSize, Row: y / SquareSize}, true
}

// Square converts the cell to the engine's square identifier.
func (c Cell) Square() chess.Square {
	return chess.NewSquare(chess.File(c.Col), chess.Rank(7-c.Row))
}

// CellOf is the inverse of Cell.Square, used when rendering engine squares.
func CellOf(sq chess.Square) Cell {
	return Cell{Col: int(sq.File()), Row: 7 - int(sq.Rank())}
}

// PixelOrigin returns the top-left window coordinates of the cell.
func (c Cell) PixelOrigin() (int, int) {
	return c.Col * SquareSize, c.Row * SquareSize
}
