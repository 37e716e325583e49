// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package replay

import (
	"context"
	"fmt"
	"unicode/utf16"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/overlay"
)

// Target receives rendered frames. *layer.Layer implements it.
type Target interface {
	overlay.Frame
	Begin(width, height int) error
}

// Result summarizes a replay.
type Result struct {
	Frames []overlay.FrameStats
	Queue  overlay.QueueStats
}

// Drawn returns the number of text surfaces drawn over all frames.
func (r Result) Drawn() int {
	n := 0
	for _, f := range r.Frames {
		n += f.Drawn
	}
	return n
}

// Option configures a Player.
type Option func(*playerOptions)

type playerOptions struct {
	producers int
	capacity  int
}

// WithProducers sets how many goroutines issue the calls of a frame.
// Calls are dealt to producers round-robin. Values below 1 are ignored.
func WithProducers(n int) Option {
	return func(o *playerOptions) {
		if n >= 1 {
			o.producers = n
		}
	}
}

// WithQueueCapacity sets the capacity of the player's command queue.
// Values below 1 are ignored.
func WithQueueCapacity(n int) Option {
	return func(o *playerOptions) {
		if n >= 1 {
			o.capacity = n
		}
	}
}

// Player replays a scene through an interceptor, queue and renderer.
type Player struct {
	scene *Scene
	opts  playerOptions

	q        *overlay.Queue
	ic       *overlay.Interceptor
	renderer *overlay.Renderer

	physical overlay.Size
	camera   overlay.Latest[overlay.CameraState]
	style    overlay.Latest[overlay.TextStyle]
}

// NewPlayer prepares s for replay.
func NewPlayer(s *Scene, opts ...Option) (*Player, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	o := playerOptions{producers: 1, capacity: overlay.QueueCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	win, err := s.WindowState()
	if err != nil {
		return nil, err
	}
	p := &Player{
		scene:    s,
		opts:     o,
		q:        overlay.NewQueue(o.capacity),
		physical: win.Physical,
	}
	p.ic = overlay.NewInterceptor(p.q)

	var window overlay.Latest[overlay.WindowState]
	window.Store(win)
	ropts := []overlay.RendererOption{
		overlay.WithWindow(overlay.WindowFrom(&window)),
		overlay.WithCamera(overlay.CameraFrom(&p.camera)),
	}
	if s.Style != nil {
		ropts = append(ropts, overlay.WithStyle(overlay.StyleFrom(&p.style)))
	}
	p.renderer = overlay.NewRenderer(p.q, ropts...)
	return p, nil
}

// Queue returns the player's command queue.
func (p *Player) Queue() *overlay.Queue { return p.q }

// Run replays every frame into t: the frame's calls are issued from the
// producers, then t.Begin is called with the physical window size and the
// queued commands are rendered into t.
func (p *Player) Run(ctx context.Context, t Target) (Result, error) {
	var res Result
	w, h := int(p.physical.W), int(p.physical.H)
	for i, f := range p.scene.Frames {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		p.publish(f)
		if err := p.issue(ctx, f.Calls); err != nil {
			return res, fmt.Errorf("replay: frame %d: %w", i, err)
		}
		if err := t.Begin(w, h); err != nil {
			return res, fmt.Errorf("replay: frame %d: %w", i, err)
		}
		stats := p.renderer.RenderFrame(t)
		overlay.Logger().Debug("replay: frame rendered", "frame", i,
			"drained", stats.Drained, "drawn", stats.Drawn, "skipped", stats.Skipped)
		res.Frames = append(res.Frames, stats)
	}
	res.Queue = p.q.Stats()
	return res, nil
}

// publish updates the host snapshots for frame f.
func (p *Player) publish(f Frame) {
	if p.scene.Camera == nil || f.NoCamera {
		p.camera.Clear()
	} else {
		cam, _ := p.scene.Camera.State()
		p.camera.Store(cam)
	}
	if p.scene.Style == nil {
		return
	}
	if f.NoStyle {
		p.style.Clear()
	} else {
		p.style.Store(p.scene.Style.TextStyle())
	}
}

// issue calls the interceptors for calls from the configured number of
// producers and waits for all of them.
func (p *Player) issue(ctx context.Context, calls []Call) error {
	g, ctx := errgroup.WithContext(ctx)
	for n := range min(p.opts.producers, len(calls)) {
		g.Go(func() error {
			for i := n; i < len(calls); i += p.opts.producers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := p.call(calls[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// call issues c with its text in a NUL-terminated UTF-16 buffer, the way
// the host passes it.
func (p *Player) call(c Call) error {
	mode, err := c.validate()
	if err != nil {
		return err
	}
	pos := overlay.Vec4{X: c.Pos[0], Y: c.Pos[1], Z: c.Pos[2], W: c.Pos[3]}
	buf := append(utf16.Encode([]rune(c.Text)), 0)
	if c.Offset == nil {
		p.ic.OnDrawText(mode, pos, &buf[0])
		return nil
	}
	p.ic.OnDrawTextWithOffset(mode, pos, &overlay.Vec2{X: c.Offset[0], Y: c.Offset[1]}, &buf[0])
	return nil
}
