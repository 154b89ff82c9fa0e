// cmd/rotatef/main.go
package main

import (
	"log"

	"rotating-f/internal/anim"
	"rotating-f/internal/app"
	"rotating-f/internal/assets"
	"rotating-f/internal/config"
	"rotating-f/internal/event"
	"rotating-f/pkg/palette"
	"rotating-f/pkg/path"
	"rotating-f/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppGame связывает контроллер анимации с циклом ebiten. Update и Draw
// вызываются ebiten из одного потока.
type AppGame struct {
	animation *app.Animation
	scheduler *app.TickScheduler
	renderer  *render.FrameRenderer
	metrics   anim.GlyphMetrics
	redraw    *app.Redraw
}

func (a *AppGame) Update() error {
	a.scheduler.Fire()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	if !a.redraw.Take() {
		return
	}
	a.renderer.Draw(screen, a.animation.Frame(a.redraw.Viewport(), a.metrics))
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.redraw.Resize(anim.Viewport{Width: outsideWidth, Height: outsideHeight})
	return outsideWidth, outsideHeight
}

func main() {
	log.SetPrefix(config.LogPrefix)

	fonts := assets.NewFontManager(config.GlyphDPI)
	defer fonts.Cleanup()
	face, err := fonts.Face(config.GlyphFontSize)
	if err != nil {
		log.Fatal(err)
	}

	p := path.Build()
	log.Printf("built path: %d points", p.Len())

	sched := app.NewTickScheduler(event.NewDispatcher())
	game := &AppGame{
		animation: app.NewAnimation(p, sched),
		scheduler: sched,
		renderer:  render.NewFrameRenderer(palette.Default(), face),
		metrics:   assets.Measure(face, config.GlyphText),
		redraw:    app.NewRedraw(anim.Viewport{Width: config.ScreenWidth, Height: config.ScreenHeight}),
	}
	sched.OnRedraw(game.redraw.Request)
	defer game.renderer.Deallocate()

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	centerWindow()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	sched.Stop()
	log.Printf("window closed after %d ticks", game.animation.Ticks())
}

// centerWindow ставит окно по центру основного монитора.
func centerWindow() {
	m := ebiten.Monitor()
	if m == nil {
		return
	}
	mw, mh := m.Size()
	ebiten.SetWindowPosition((mw-config.ScreenWidth)/2, (mh-config.ScreenHeight)/2)
}
