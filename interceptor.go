package overlay

import (
	"context"
	"log/slog"
)

// Pusher accepts commands without blocking. *Queue implements it.
type Pusher interface {
	TryPush(Command)
}

// Interceptor converts intercepted text draw calls into commands. Its
// methods may be called concurrently from any number of host threads.
// The original draw routine is never chained to.
type Interceptor struct {
	q        Pusher
	maxUnits int
}

// InterceptorOption configures an Interceptor.
type InterceptorOption func(*Interceptor)

// WithMaxWideLen bounds the terminator search for host strings, in UTF-16
// code units. Non-positive values keep the default MaxWideLen.
func WithMaxWideLen(n int) InterceptorOption {
	return func(ic *Interceptor) {
		if n > 0 {
			ic.maxUnits = n
		}
	}
}

// NewInterceptor creates an interceptor feeding q.
func NewInterceptor(q Pusher, opts ...InterceptorOption) *Interceptor {
	ic := &Interceptor{q: q, maxUnits: MaxWideLen}
	for _, opt := range opts {
		opt(ic)
	}
	return ic
}

// OnDrawText handles the plain text routine: it decodes text and enqueues
// a TextCommand at pos in the given mode.
func (ic *Interceptor) OnDrawText(mode CoordMode, pos Vec4, text *uint16) {
	ic.pushText(mode, pos, ic.decode(text))
}

// OnDrawTextWithOffset handles the offset text routine: it enqueues an
// OffsetCommand immediately followed by the TextCommand. A nil offset is
// treated as (0, 0).
func (ic *Interceptor) OnDrawTextWithOffset(mode CoordMode, pos Vec4, offset *Vec2, text *uint16) {
	s := ic.decode(text)
	var off Vec2
	if offset != nil {
		off = *offset
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("overlay: draw text offset", "dx", off.X, "dy", off.Y)
	}
	ic.q.TryPush(OffsetCommand{DX: off.X, DY: off.Y})
	ic.pushText(mode, pos, s)
}

func (ic *Interceptor) pushText(mode CoordMode, pos Vec4, s string) {
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("overlay: draw text", "mode", mode, "x", pos.X, "y", pos.Y, "z", pos.Z, "text", s)
	}
	ic.q.TryPush(TextCommand{Text: s, X: pos.X, Y: pos.Y, Z: pos.Z, Mode: mode})
}

func (ic *Interceptor) decode(text *uint16) string {
	s, err := DecodeWideN(text, ic.maxUnits)
	if err != nil {
		Logger().Debug("overlay: undecodable text", "error", err)
		return EncodingErrorPlaceholder
	}
	return s
}
