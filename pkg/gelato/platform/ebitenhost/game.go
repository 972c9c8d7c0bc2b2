package ebitenhost

import (
	"github.com/BrandonKowalski/gelato/pkg/gelato"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game runs a gelato pool as an ebiten.Game. Controls are handled in Update
// and drawing happens in Draw, since ebiten may call Draw any number of times
// per Update. World, if set, runs first and is drawn below the overlay.
type Game struct {
	Host  *Host
	Pool  *gelato.Pool
	World ebiten.Game
}

var _ ebiten.Game = (*Game)(nil)

func NewGame(h *Host, pool *gelato.Pool) *Game {
	return &Game{Host: h, Pool: pool}
}

func (g *Game) Update() error {
	if g.World != nil {
		if err := g.World.Update(); err != nil {
			return err
		}
	}

	g.Host.Update()
	if g.Pool != nil {
		g.Pool.HandleControls()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.World != nil {
		g.World.Draw(screen)
	}

	g.Host.SetScreen(screen)
	defer g.Host.SetScreen(nil)

	if g.Pool != nil {
		g.Pool.Draw()
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.World != nil {
		return g.World.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
