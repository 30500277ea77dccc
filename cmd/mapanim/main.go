// Command mapanim is an interactive demo of the map animation system: a
// synthetic grid map whose viewport is driven entirely through the
// scheduler. Every frame advances the system and commits the animated
// rect back into the screen, the same loop a real map renderer runs.
//
// Keys: arrows pan, Q/E rotate, Z/X zoom, F eased fly-to home, T tour,
// Escape quits. Tuning lives in an optional mapanim.yaml.
package main

import (
	"fmt"
	"log"
	"math"

	"github.com/MikhayN/omim/pkg/animation"
	"github.com/MikhayN/omim/pkg/geometry"
	"github.com/MikhayN/omim/pkg/viewport"
	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

type game struct {
	cfg    *config
	screen *viewport.Screen
	sys    *animation.System
	home   geometry.Point
}

func newGame(cfg *config) *game {
	pixelRect := geometry.RectFromLTWH(0, 0, float64(cfg.Window.Width), float64(cfg.Window.Height))
	screen := viewport.New(pixelRect)
	home := screen.Center()
	return &game{
		cfg:    cfg,
		screen: screen,
		sys:    animation.Instance(),
		home:   home,
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()

	dt := 1.0 / float64(ebiten.TPS())
	g.sys.Advance(dt)
	g.screen.SetFromRect(g.sys.GetRect(g.screen))
	return nil
}

func (g *game) handleInput() {
	// Pan by half a viewport in the pressed direction.
	halfSpan := g.screen.Scale() * g.screen.PixelRect().Width() / 2
	pans := map[ebiten.Key]geometry.Point{
		ebiten.KeyArrowLeft:  {X: -halfSpan},
		ebiten.KeyArrowRight: {X: halfSpan},
		ebiten.KeyArrowUp:    {Y: -halfSpan},
		ebiten.KeyArrowDown:  {Y: halfSpan},
	}
	for key, d := range pans {
		if inpututil.IsKeyJustPressed(key) {
			follow := animation.NewFollowAnimation()
			follow.SetMove(g.screen.Center(), g.screen.Center().Add(d), g.screen)
			g.sys.AddAnimation(follow, true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.addRotate(math.Pi / 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.addRotate(-math.Pi / 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.addZoom(0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.addZoom(2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.addFlyHome()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.addTour()
	}
}

func (g *game) addRotate(delta float64) {
	follow := animation.NewFollowAnimation()
	follow.SetRotate(g.screen.Angle(), g.screen.Angle()+delta)
	g.sys.AddAnimation(follow, true)
}

func (g *game) addZoom(factor float64) {
	follow := animation.NewFollowAnimation()
	follow.SetScale(g.screen.Scale(), g.screen.Scale()*factor)
	g.sys.AddAnimation(follow, true)
}

// addFlyHome returns to the home position, upright at scale 1, eased for a
// fly-to feel.
func (g *game) addFlyHome() {
	follow := animation.NewFullFollowAnimation(
		g.screen.Center(), g.home,
		g.screen.Angle(), 0,
		g.screen.Scale(), 1, g.screen)
	follow.SetEasing(ease.InOutQuad)
	g.sys.AddAnimation(follow, true)
}

// addTour queues a three-leg sequence: out to a corner, a combined
// rotate-and-zoom, then back home. Stages run strictly one at a time.
func (g *game) addTour() {
	tour := animation.NewSequenceAnimation(true, false)
	corner := geometry.Point{X: g.cfg.Grid.Extent, Y: g.cfg.Grid.Extent}

	leg1 := animation.NewFollowAnimation()
	leg1.SetMove(g.screen.Center(), corner, g.screen)
	tour.AddAnimation(leg1)

	leg2 := animation.NewFollowAnimation()
	leg2.SetRotate(g.screen.Angle(), g.screen.Angle()+math.Pi/2)
	leg2.SetScale(g.screen.Scale(), g.screen.Scale()*2)
	tour.AddAnimation(leg2)

	leg3 := animation.NewFullFollowAnimation(
		corner, g.home,
		g.screen.Angle()+math.Pi/2, 0,
		g.screen.Scale()*2, 1, g.screen)
	tour.AddAnimation(leg3)

	if g.cfg.Tour.Eased {
		leg1.SetEasing(ease.InOutQuad)
		leg3.SetEasing(ease.InOutQuad)
	}
	g.sys.AddAnimation(tour, true)
}

func (g *game) Draw(dst *ebiten.Image) {
	dst.Fill(colornames.Midnightblue)
	g.drawGrid(dst)
	g.drawHome(dst)
	g.drawHUD(dst)
}

// drawGrid projects the synthetic map grid through the screen converter;
// lines stay straight under rotation, so projecting the endpoints is
// enough.
func (g *game) drawGrid(dst *ebiten.Image) {
	extent := g.cfg.Grid.Extent
	for v := 0.0; v <= extent; v += g.cfg.Grid.Step {
		major := math.Mod(v, 5*g.cfg.Grid.Step) == 0
		clr := colornames.Slategray
		if major {
			clr = colornames.Lightsteelblue
		}
		h0 := g.screen.GtoP(geometry.Point{X: 0, Y: v})
		h1 := g.screen.GtoP(geometry.Point{X: extent, Y: v})
		vector.StrokeLine(dst, float32(h0.X), float32(h0.Y), float32(h1.X), float32(h1.Y), 1, clr, true)

		v0 := g.screen.GtoP(geometry.Point{X: v, Y: 0})
		v1 := g.screen.GtoP(geometry.Point{X: v, Y: extent})
		vector.StrokeLine(dst, float32(v0.X), float32(v0.Y), float32(v1.X), float32(v1.Y), 1, clr, true)
	}
}

func (g *game) drawHome(dst *ebiten.Image) {
	p := g.screen.GtoP(g.home)
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), 5, colornames.Orange, true)
}

func (g *game) drawHUD(dst *ebiten.Image) {
	center := g.screen.Center()
	status := fmt.Sprintf(
		"center (%.0f, %.0f)  angle %.0f deg  scale %.2f  animating %v",
		center.X, center.Y, g.screen.Angle()*180/math.Pi, g.screen.Scale(),
		g.sys.AnimationExists(animation.ObjectMapPlane))
	ebitenutil.DebugPrintAt(dst, status, 10, 10)
	ebitenutil.DebugPrintAt(dst, "arrows pan | Q/E rotate | Z/X zoom | F fly home | T tour | Esc quit", 10, 30)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	cfg, err := loadConfig("mapanim.yaml")
	if err != nil {
		log.Fatal(err)
	}

	game := newGame(cfg)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("mapanim")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
