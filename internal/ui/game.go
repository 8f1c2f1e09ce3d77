// Package ui implements the interactive chess board using Ebitengine.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"clickchess/internal/rules"
	"clickchess/internal/storage"
)

// Game wires input, selection, rules and rendering into an ebiten.Game.
// Everything runs on the ebiten update thread: clicks mutate the position
// synchronously, so a frame never sees a half-applied move.
type Game struct {
	rules    *rules.Game
	selector *Selector
	input    *InputHandler
	renderer *Renderer

	store    *storage.Storage
	prefs    *storage.Preferences
	recorded bool // result already counted for this game

	log *zap.Logger
}

// NewGame builds the board. themePath, when non-empty, overrides the theme
// remembered in preferences. Storage and theme trouble degrade with a
// warning; only the rendering substrate itself is required.
func NewGame(log *zap.Logger, themePath string) (*Game, error) {
	g := &Game{
		rules:    rules.New(),
		selector: NewSelector(log),
		input:    NewInputHandler(),
		log:      log,
	}

	store, err := storage.NewStorage()
	if err != nil {
		log.Warn("storage unavailable, preferences will not persist", zap.Error(err))
		g.prefs = storage.DefaultPreferences()
	} else {
		g.store = store
		g.prefs, err = store.LoadPreferences()
		if err != nil {
			log.Warn("failed to load preferences", zap.Error(err))
			g.prefs = storage.DefaultPreferences()
		}
	}

	if themePath == "" {
		themePath = g.prefs.ThemeFile
	}

	theme := DefaultTheme()
	if themePath != "" {
		loaded, err := LoadTheme(themePath)
		if err != nil {
			log.Warn("falling back to default theme", zap.Error(err))
		} else {
			theme = loaded
			g.prefs.ThemeFile = themePath
		}
	}
	g.renderer = NewRenderer(theme, log)

	if g.store != nil {
		if err := g.store.SavePreferences(g.prefs); err != nil {
			log.Warn("failed to save preferences", zap.Error(err))
		}
	}

	return g, nil
}

// Update handles one tick: poll input, route a bounded click into the
// selection machine, and count a finished game once.
func (g *Game) Update() error {
	g.input.Update()

	if g.input.IsLeftJustPressed() {
		mx, my := g.input.MousePosition()
		if cell, ok := PixelToCell(mx, my); ok {
			g.selector.Click(cell, g.rules)
		}
	}

	g.recordResultOnce()
	return nil
}

func (g *Game) recordResultOnce() {
	if g.recorded {
		return
	}
	st := g.rules.Status()
	if !st.Over() {
		return
	}
	g.recorded = true

	g.log.Info("game finished",
		zap.String("result", st.Result()),
		zap.String("fen", g.rules.FEN()))

	if g.store != nil {
		if err := g.store.RecordResult(st.Result()); err != nil {
			g.log.Warn("failed to record result", zap.Error(err))
		}
	}
}

// Draw renders the frame: board, pieces, highlight, status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)
	g.renderer.DrawPieces(screen, g.rules)

	if cell, ok := g.selector.Selected(); ok {
		g.renderer.DrawSelection(screen, cell)
	}

	g.renderer.DrawStatus(screen, g.rules.Status().Text())
}

// Layout fixes the logical screen size; ebiten scales to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Close releases owned resources.
func (g *Game) Close() {
	if g.store != nil {
		if err := g.store.Close(); err != nil {
			g.log.Warn("failed to close storage", zap.Error(err))
		}
	}
}
