package ui

import (
	"github.com/corentings/chess/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// PieceSource is the board query the renderer needs: which piece, if any,
// sits on a square.
type PieceSource interface {
	PieceAt(sq chess.Square) chess.Piece
}

// Renderer draws the board, pieces, selection highlight and status line.
// It holds no game state; everything it shows is passed in per frame.
type Renderer struct {
	sprites *SpriteManager
	theme   *Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme *Theme, log *zap.Logger) *Renderer {
	return &Renderer{
		sprites: NewSpriteManager(SquareSize, log),
		theme:   theme,
	}
}

// Theme returns the active theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// DrawBoard draws the 8x8 grid of alternating squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := r.theme.DarkSquare
			if (col+row)%2 == 0 {
				c = r.theme.LightSquare
			}

			x, y := (Cell{Col: col, Row: row}).PixelOrigin()
			vector.DrawFilledRect(screen, float32(x), float32(y),
				float32(SquareSize), float32(SquareSize), c, false)
		}
	}
}

// DrawPieces draws every occupied square's piece at its cell origin.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b PieceSource) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			cell := Cell{Col: col, Row: row}
			piece := b.PieceAt(cell.Square())
			if piece == chess.NoPiece {
				continue
			}
			x, y := cell.PixelOrigin()
			r.sprites.DrawPieceAt(screen, piece, x, y)
		}
	}
}

// DrawSelection draws the translucent highlight on the selected cell.
func (r *Renderer) DrawSelection(screen *ebiten.Image, cell Cell) {
	x, y := cell.PixelOrigin()
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(SquareSize), float32(SquareSize), r.theme.SelectedSquare, false)
}

// DrawStatus draws the status line in the side panel.
func (r *Renderer) DrawStatus(screen *ebiten.Image, status string) {
	face := GetBoldFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(BoardSize+20), 20)
	op.ColorScale.ScaleWithColor(r.theme.TextColor)
	text.Draw(screen, status, face, op)
}
