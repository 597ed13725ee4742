//go:build ebiten

package main

import (
	"errors"
	"fmt"

	"biomegrow/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newViewCmd(root *rootOptions) *cobra.Command {
	cfg := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Play the sequence in a window (space pause, n step, r restart, s new seed, 1 changed cells)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := root.setup(cfg, cmd.Flags())
			if err != nil {
				return err
			}
			m, err := cfg.LoadSeedMap(cmd.Context())
			if err != nil {
				log.Error("seed map", "err", err)
				return err
			}
			game, err := app.New(cfg, m, log)
			if err != nil {
				log.Error("viewer", "err", err)
				return err
			}
			w, h := game.Layout(0, 0)
			ebiten.SetWindowTitle(fmt.Sprintf("biomegrow - %s", m.Name))
			ebiten.SetTPS(cfg.TPS)
			ebiten.SetWindowSize(w, h)
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				log.Error("viewer", "err", err)
				return err
			}
			return nil
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}
