package overlay

import (
	"context"
	"log/slog"

	"github.com/gogpu/overlay/text"
)

// BaseFontSize is the default pixel size the overlay font is loaded at.
const BaseFontSize = text.BaseSize

// FrameStats summarizes one RenderFrame call.
type FrameStats struct {
	// Drained is the number of commands taken from the queue.
	Drained int
	// Drawn is the number of text surfaces emitted, excluding the anchor.
	Drawn int
	// Skipped counts text commands that were not drawn: unknown mode,
	// missing camera, invalid geometry.
	Skipped int
	// Discarded counts commands dropped because the style was unavailable.
	Discarded int
	// Faults counts surfaces whose Frame.Surface call panicked.
	Faults int
}

// Renderer drains a Queue once per frame and turns text commands into
// surfaces. RenderFrame must be called from one goroutine at a time.
type Renderer struct {
	q    *Queue
	opts rendererOptions

	// offset is the pending one-shot offset. Consumer-local.
	offset Vec2
}

// NewRenderer creates a renderer draining q.
func NewRenderer(q *Queue, opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{q: q, opts: o}
}

// anchorSurface is emitted first every frame so that the overlay never
// presents an empty frame.
func anchorSurface() Surface {
	return Surface{
		ID:        SurfaceID(0, 0, 0, 0, AnchorName),
		Name:      AnchorName,
		Size:      Size{W: 1, H: 1},
		Text:      ".",
		Color:     White,
		FontScale: 1,
		Flags:     AnchorFlags,
	}
}

// RenderFrame emits the anchor surface, then drains the commands queued
// before the call and emits one surface per visible text command.
// Commands pushed while the drain runs are left for the next frame.
// A pending offset does not survive the end of the drain.
func (r *Renderer) RenderFrame(f Frame) FrameStats {
	var stats FrameStats
	if !r.emit(f, anchorSurface()) {
		stats.Faults++
	}

	style, ok := r.style()
	if !ok {
		stats.Discarded = r.discard()
		stats.Drained = stats.Discarded
		r.offset = Vec2{}
		if stats.Discarded > 0 {
			Logger().Debug("overlay: style unavailable, discarded commands", "count", stats.Discarded)
		}
		return stats
	}
	win := r.window()

	for backlog := r.q.Len(); backlog > 0; backlog-- {
		cmd, ok := r.q.TryPop()
		if !ok {
			break
		}
		stats.Drained++
		switch c := cmd.(type) {
		case OffsetCommand:
			r.offset = Vec2{X: c.DX, Y: c.DY}
		case TextCommand:
			r.drawText(f, c, win, style, &stats)
		}
	}
	r.offset = Vec2{}
	return stats
}

func (r *Renderer) drawText(f Frame, c TextCommand, win WindowState, style TextStyle, stats *FrameStats) {
	off := r.offset
	r.offset = Vec2{}

	var cam *CameraState
	if c.Mode == CoordWorldProjected || c.Mode == CoordWorldProjectedAlt {
		cam = r.camera()
	}
	p, ok := Transform(c.X, c.Y, c.Z, c.Mode, cam, win)
	if ok {
		p = p.Add(off)
		ok = p.IsFinite()
	}
	if !ok {
		stats.Skipped++
		Logger().Debug("overlay: skipping text", "mode", c.Mode, "x", c.X, "y", c.Y, "z", c.Z, "text", c.Text)
		return
	}

	s := Surface{
		ID:        SurfaceID(c.X, c.Y, p.X, p.Y, c.Text),
		Name:      SurfaceName(c.X, c.Y),
		Pos:       p,
		Size:      win.Physical,
		Text:      c.Text,
		Color:     style.Color,
		FontScale: style.FontSize / r.opts.baseFontSize,
		Flags:     TextFlags,
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("overlay: rendering text", "text", c.Text, "x", p.X, "y", p.Y, "id", s.ID)
	}
	if !r.emit(f, s) {
		stats.Faults++
		return
	}
	stats.Drawn++
}

// emit hands s to f, recovering from a panicking frame sink.
func (r *Renderer) emit(f Frame, s Surface) (ok bool) {
	defer func() {
		if v := recover(); v != nil {
			Logger().Warn("overlay: frame sink panicked", "surface", s.Name, "panic", v)
			ok = false
		}
	}()
	f.Surface(s)
	return true
}

// discard drops the commands queued before the call.
func (r *Renderer) discard() int {
	n := 0
	for backlog := r.q.Len(); backlog > 0; backlog-- {
		if _, ok := r.q.TryPop(); !ok {
			break
		}
		n++
	}
	return n
}

func (r *Renderer) style() (TextStyle, bool) {
	if r.opts.style == nil {
		return TextStyle{Color: White, FontSize: r.opts.baseFontSize}, true
	}
	return r.opts.style.Style()
}

func (r *Renderer) window() WindowState {
	if r.opts.window != nil {
		if w, ok := r.opts.window.Window(); ok && w.Valid() {
			return w
		}
	}
	return r.opts.fallback
}

// camera reads a fresh camera snapshot. It returns nil when no camera is
// available.
func (r *Renderer) camera() *CameraState {
	if r.opts.camera == nil {
		return nil
	}
	c, ok := r.opts.camera.Camera()
	if !ok {
		return nil
	}
	return &c
}
