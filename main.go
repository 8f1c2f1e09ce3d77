// ClickChess - a point-and-click chess board built with Ebitengine.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v3"

	"clickchess/internal/logx"
	"clickchess/internal/ui"
)

func main() {
	cmd := &cli.Command{
		Name:  "clickchess",
		Usage: "interactive chess board",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "theme",
				Usage: "path to a theme YAML file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: "info",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logx.New(c.String("log-level"))
			defer logger.Sync()

			game, err := ui.NewGame(logger, c.String("theme"))
			if err != nil {
				return err
			}
			defer game.Close()

			ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
			ebiten.SetWindowTitle("ClickChess")

			// RunGame returns when the user closes the window.
			return ebiten.RunGame(game)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
