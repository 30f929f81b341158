// Package native runs the platformer on a tcell screen with true-colour
// cells and optional sound cues. It is the closest thing to a native
// window a terminal offers.
package native

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-platformer/internal/engine"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

func init() {
	registry.Register("tcell", func() registry.Backend { return &Backend{} })
}

// hudStyle is used for the status line drawn over the top row.
var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// Backend is the tcell backend.
type Backend struct{}

func (b *Backend) ID() string    { return "tcell" }
func (b *Backend) Title() string { return "tcell true-colour screen" }

// Run takes over the terminal until q, Esc or Ctrl+C.
func (b *Backend) Run(eng *engine.Engine, opts registry.Options) error {
	var cues *Cues
	if opts.Sound {
		cues = NewCues()
		if err := cues.Init(); err != nil {
			if opts.Logger != nil {
				opts.Logger.Warn("sound disabled", "error", err)
			}
			cues = nil
		}
		defer cues.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("native: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("native: cannot init screen: %w", err)
	}
	defer screen.Fini()

	loop(screen, eng, opts, cues)
	return nil
}

// loop polls screen events and steps the engine at the configured rate.
func loop(screen tcell.Screen, eng *engine.Engine, opts registry.Options, cues *Cues) {
	r := NewRenderer(screen, opts.Config.Render.CellWidth, opts.Config.Render.CellHeight)

	tickRate := opts.Runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	// Terminal flushes run on their own goroutine so a slow Show never
	// delays a tick. A frame still being drawn makes the next one drop.
	frames := make(chan frame, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		drawFrames(screen, r, frames)
	}()
	defer wg.Wait()
	defer close(frames)

	for {
		select {
		case ev := <-events:
			if !handleEvent(screen, eng.Input, ev) {
				return
			}

		case <-ticker.C:
			cues.Play(eng.Step())
			render.Focus(r, eng.World)

			f := frame{world: eng.World.Clone(), hud: eng.Status().String()}
			select {
			case frames <- f:
			default:
			}
		}
	}
}

// frame is a world snapshot handed to the draw goroutine.
type frame struct {
	world *world.World
	hud   string
}

// drawFrames draws and shows every frame received until frames is closed.
func drawFrames(screen tcell.Screen, r *Renderer, frames <-chan frame) {
	for f := range frames {
		render.Draw(r, f.world)
		r.DrawText(0, 0, f.hud, hudStyle)
		screen.Show()
	}
}

// handleEvent applies one screen event. It returns false on a quit request.
func handleEvent(screen tcell.Screen, st *input.State, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, quit := MapKey(ev)
		if quit {
			return false
		}
		st.Press(k)

	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}

// MapKey translates a tcell key event to a movement key. quit reports a
// request to leave.
func MapKey(ev *tcell.EventKey) (k input.Key, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return input.KeyNone, true
	case tcell.KeyUp:
		return input.KeyUp, false
	case tcell.KeyDown:
		return input.KeyDown, false
	case tcell.KeyLeft:
		return input.KeyLeft, false
	case tcell.KeyRight:
		return input.KeyRight, false
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return input.KeyNone, true
		}
		return input.KeyForRune(ev.Rune()), false
	}
	return input.KeyNone, false
}
