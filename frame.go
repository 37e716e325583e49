package overlay

// SurfaceFlags describe how a surface behaves on the overlay.
type SurfaceFlags uint16

const (
	SurfaceNoDecoration  SurfaceFlags = 1 << iota // No title bar, border or scrollbar
	SurfaceNoBackground                           // Transparent background
	SurfaceNoInputs                               // Mouse and keyboard pass through
	SurfaceNoFocus                                // Never takes focus, even on appearing
	SurfaceFixed                                  // Not movable, resizable or collapsible
	SurfaceFirstUseLayout                         // Position and size apply on first use only
)

// Has reports whether all bits of g are set in f.
func (f SurfaceFlags) Has(g SurfaceFlags) bool {
	return f&g == g
}

// Flag sets used by the renderer.
const (
	// AnchorFlags is the flag set of the anchor surface.
	AnchorFlags = SurfaceNoDecoration | SurfaceNoBackground | SurfaceNoInputs | SurfaceFixed | SurfaceFirstUseLayout

	// TextFlags is the flag set of every text surface.
	TextFlags = SurfaceNoDecoration | SurfaceNoBackground | SurfaceNoInputs | SurfaceNoFocus | SurfaceFixed
)

// Surface is one overlay draw item: a window-like region at Pos with the
// given Size whose content is Text, drawn in Color at FontScale times the
// base font size. The text's top-left corner is at Pos.
type Surface struct {
	ID        uint64
	Name      string
	Pos       Point
	Size      Size
	Text      string
	Color     RGBA
	FontScale float32
	Flags     SurfaceFlags
}

// Frame receives the surfaces of one presented frame. Implementations are
// called from the render goroutine only.
type Frame interface {
	Surface(s Surface)
}

// FrameFunc adapts a function to Frame.
type FrameFunc func(s Surface)

// Surface implements Frame.
func (f FrameFunc) Surface(s Surface) { f(s) }
