package rules

import (
	"testing"

	"github.com/corentings/chess/v2"
)

func playUCI(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		piece := g.PieceAt(squareFromUCI(t, m[:2]))
		cand := Build(squareFromUCI(t, m[:2]), squareFromUCI(t, m[2:4]), piece)
		if err := g.TryMove(cand); err != nil {
			t.Fatalf("move %s rejected: %v", m, err)
		}
	}
}

func squareFromUCI(t *testing.T, s string) chess.Square {
	t.Helper()
	file := chess.File(s[0] - 'a')
	rank := chess.Rank(s[1] - '1')
	return chess.NewSquare(file, rank)
}

func TestOpeningMoveFlipsTurn(t *testing.T) {
	g := New()
	if g.Turn() != chess.White {
		t.Fatalf("expected white to move first, got %v", g.Turn())
	}

	e2 := squareFromUCI(t, "e2")
	pawn := g.PieceAt(e2)
	if pawn.Type() != chess.Pawn || pawn.Color() != chess.White {
		t.Fatalf("expected white pawn on e2, got %v", pawn)
	}

	if err := g.TryMove(Build(e2, squareFromUCI(t, "e4"), pawn)); err != nil {
		t.Fatalf("e2e4 rejected: %v", err)
	}
	if g.Turn() != chess.Black {
		t.Fatalf("turn did not flip, got %v", g.Turn())
	}
	if g.PieceAt(squareFromUCI(t, "e4")).Type() != chess.Pawn {
		t.Fatal("pawn did not arrive on e4")
	}
	if g.PieceAt(e2) != chess.NoPiece {
		t.Fatal("pawn still on e2")
	}
}

func TestIllegalMoveLeavesPositionUntouched(t *testing.T) {
	g := New()
	before := g.FEN()

	e2 := squareFromUCI(t, "e2")
	cand := Build(e2, squareFromUCI(t, "e5"), g.PieceAt(e2))
	if err := g.TryMove(cand); err == nil {
		t.Fatal("e2e5 should be illegal")
	}
	if g.FEN() != before {
		t.Fatalf("position changed after rejected move:\n%s\n%s", before, g.FEN())
	}
	if g.Turn() != chess.White {
		t.Fatalf("turn changed after rejected move: %v", g.Turn())
	}
}

func TestNullMoveRejected(t *testing.T) {
	g := New()
	e2 := squareFromUCI(t, "e2")
	if err := g.TryMove(Build(e2, e2, g.PieceAt(e2))); err == nil {
		t.Fatal("e2e2 should be rejected")
	}
}

func TestCheckDetection(t *testing.T) {
	g := New()
	if g.InCheck() {
		t.Fatal("starting position reported as check")
	}

	// 1.c4 d5 2.Qa4+ leaves black in check with the game still on.
	playUCI(t, g, "c2c4", "d7d5", "d1a4")

	if !g.InCheck() {
		t.Fatal("expected black to be in check after Qa4+")
	}
	st := g.Status()
	if st.State != Playing || !st.Check || st.Turn != chess.Black {
		t.Fatalf("unexpected status %+v", st)
	}
	if got := st.Text(); got != "Turn: Black (CHECK)" {
		t.Fatalf("status text = %q", got)
	}
}

func TestCheckmateWinsOverCheck(t *testing.T) {
	g := New()
	// Fool's mate: 1.f3 e5 2.g4 Qh4#
	playUCI(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	st := g.Status()
	if st.State != Checkmate {
		t.Fatalf("expected checkmate, got %+v", st)
	}
	if st.Winner != chess.Black {
		t.Fatalf("expected black winner, got %v", st.Winner)
	}
	if got := st.Text(); got != "CHECKMATE! Black Wins" {
		t.Fatalf("status text = %q", got)
	}
}

func TestStalemate(t *testing.T) {
	g := New()
	// Sam Loyd's ten-move stalemate.
	playUCI(t, g,
		"c2c4", "h7h5",
		"h2h4", "a7a5",
		"d1a4", "a8a6",
		"a4a5", "a6h6",
		"a5c7", "f7f6",
		"c7d7", "e8f7",
		"d7b7", "d8d3",
		"b7b8", "d3h7",
		"b8c8", "f7g6",
		"c8e6",
	)

	st := g.Status()
	if st.State != Stalemate {
		t.Fatalf("expected stalemate, got %+v", st)
	}
	if got := st.Text(); got != "STALEMATE (Draw)" {
		t.Fatalf("status text = %q", got)
	}
}

func TestAutoQueenPromotionApplies(t *testing.T) {
	g := New()
	// March the h-pawn through: 1.h4 g5 2.hxg5 Nf6 3.g6 Ng8 4.g7 Nf6 5.gxh8=Q
	playUCI(t, g, "h2h4", "g7g5", "h4g5", "g8f6", "g5g6", "f6g8", "g6g7", "g8f6")

	from := squareFromUCI(t, "g7")
	to := squareFromUCI(t, "h8")
	cand := Build(from, to, g.PieceAt(from))
	if cand.Promo != chess.Queen {
		t.Fatalf("expected queen promotion, got %v", cand.Promo)
	}
	if err := g.TryMove(cand); err != nil {
		t.Fatalf("promotion rejected: %v", err)
	}
	got := g.PieceAt(to)
	if got.Type() != chess.Queen || got.Color() != chess.White {
		t.Fatalf("expected white queen on h8, got %v", got)
	}
}

func TestReset(t *testing.T) {
	g := New()
	playUCI(t, g, "e2e4")
	g.Reset()
	if g.MoveCount() != 0 {
		t.Fatalf("expected empty move list after reset, got %d", g.MoveCount())
	}
	if g.Turn() != chess.White {
		t.Fatalf("expected white to move after reset, got %v", g.Turn())
	}
}
