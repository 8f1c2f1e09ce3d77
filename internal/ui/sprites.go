package ui

import (
	"bytes"
	"embed"
	"image"
	"image/color"

	"github.com/corentings/chess/v2"
	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager owns the piece images. Pieces whose SVG asset is missing or
// unreadable get a generated placeholder instead, so the board always has
// something distinct to show for every piece.
type SpriteManager struct {
	pieces      map[chess.Piece]*ebiten.Image
	size        int     // Display size (e.g. 80)
	renderScale float64 // Render at higher resolution for quality
}

// NewSpriteManager loads all twelve piece sprites at the given display size.
func NewSpriteManager(size int, log *zap.Logger) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[chess.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadPieces(log)
	return sm
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p chess.Piece) *ebiten.Image {
	return sm.pieces[p]
}

var allPieces = []chess.Piece{
	chess.WhiteKing, chess.WhiteQueen, chess.WhiteRook,
	chess.WhiteBishop, chess.WhiteKnight, chess.WhitePawn,
	chess.BlackKing, chess.BlackQueen, chess.BlackRook,
	chess.BlackBishop, chess.BlackKnight, chess.BlackPawn,
}

func pieceAssetName(p chess.Piece) string {
	prefix := "w"
	if p.Color() == chess.Black {
		prefix = "b"
	}

	var suffix string
	switch p.Type() {
	case chess.King:
		suffix = "K"
	case chess.Queen:
		suffix = "Q"
	case chess.Rook:
		suffix = "R"
	case chess.Bishop:
		suffix = "B"
	case chess.Knight:
		suffix = "N"
	case chess.Pawn:
		suffix = "P"
	}

	return "assets/pieces/" + prefix + suffix + ".svg"
}

func pieceLetter(p chess.Piece) string {
	switch p.Type() {
	case chess.King:
		return "K"
	case chess.Queen:
		return "Q"
	case chess.Rook:
		return "R"
	case chess.Bishop:
		return "B"
	case chess.Knight:
		return "N"
	default:
		return "P"
	}
}

// loadPieces rasterises the embedded SVGs; any failure degrades that piece
// to a placeholder with a warning.
func (sm *SpriteManager) loadPieces(log *zap.Logger) {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, piece := range allPieces {
		path := pieceAssetName(piece)

		img, err := renderSVG(pieceAssets, path, renderSize)
		if err != nil {
			log.Warn("piece asset unavailable, using placeholder",
				zap.String("asset", path), zap.Error(err))
			sm.pieces[piece] = placeholderSprite(piece, renderSize)
			continue
		}
		sm.pieces[piece] = ebiten.NewImageFromImage(img)
	}
}

func renderSVG(fs embed.FS, path string, size int) (image.Image, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// placeholderSprite draws a rounded disc in the side's color with the piece
// letter, so a missing asset is still recognisable on the board.
func placeholderSprite(p chess.Piece, size int) *ebiten.Image {
	fill := color.RGBA{235, 235, 235, 255}
	ink := color.RGBA{25, 25, 25, 255}
	if p.Color() == chess.Black {
		fill, ink = ink, fill
	}

	dc := gg.NewContext(size, size)
	margin := float64(size) / 8

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(margin, margin, float64(size)-2*margin, float64(size)-2*margin, float64(size)/6)
	dc.FillPreserve()
	dc.SetColor(ink)
	dc.SetLineWidth(float64(size) / 40)
	dc.Stroke()

	if face := placeholderFace(float64(size) / 2); face != nil {
		dc.SetFontFace(face)
		dc.SetColor(ink)
		dc.DrawStringAnchored(pieceLetter(p), float64(size)/2, float64(size)/2, 0.5, 0.5)
	}

	return ebiten.NewImageFromImage(dc.Image())
}

func placeholderFace(size float64) font.Face {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72})
	if err != nil {
		return nil
	}
	return face
}

// DrawPieceAt draws a piece with its top-left corner at the given pixel
// coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p chess.Piece, x, y int) {
	if p == chess.NoPiece {
		return
	}
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
