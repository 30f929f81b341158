// Package headless runs the platformer without a terminal, drawing into an
// in-memory pixel buffer and saving the last frame as a PNG.
package headless

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/engine"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

// DefaultFrames is used when a run names neither a frame count nor a script.
const DefaultFrames = 120

func init() {
	registry.Register("headless", func() registry.Backend { return &Backend{} })
}

// Backend is the headless backend.
type Backend struct{}

func (b *Backend) ID() string    { return "headless" }
func (b *Backend) Title() string { return "Headless PNG snapshot" }

// Run simulates opts.Frames frames as fast as possible, following
// opts.Script if one is given, and writes the final frame to opts.Out.
func (b *Backend) Run(eng *engine.Engine, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	frames := opts.Frames
	if frames <= 0 {
		frames = max(opts.Script.Len(), DefaultFrames)
	}

	// Same viewport a terminal of this size would show
	cellW, cellH := opts.Config.Render.CellWidth, opts.Config.Render.CellHeight
	buf := render.NewBuffer(opts.Runtime.ScreenW*cellW, opts.Runtime.ScreenH*cellH)

	Simulate(eng, buf, frames, opts.Script, logger)

	if opts.Out == "" {
		return nil
	}
	if err := buf.SavePNG(opts.Out); err != nil {
		return err
	}
	logger.Info("saved snapshot", "path", opts.Out, "frames", frames)
	return nil
}

// Simulate runs frames cycles of eng into r. With a script, each frame
// holds exactly the script's keys for that tick.
func Simulate(eng *engine.Engine, r render.Renderer, frames int, script input.Script, logger *log.Logger) {
	for i := range frames {
		if script != nil {
			eng.Input.Apply(script.At(i))
		}
		ev := eng.Cycle(r)

		st := eng.Status()
		logger.Debug("frame",
			"tick", st.Tick,
			"pos", st.Pos,
			"vel", st.Vel,
			"in_air", st.InAir,
			"scroll", st.Scroll,
			"input", st.Intent,
			"event", ev,
		)
	}
}
