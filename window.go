package overlay

// WindowState is a snapshot of the host window. Physical is the size of
// the render target; Logical is the configured resolution of the active
// display mode.
type WindowState struct {
	Physical Size
	Logical  Size
}

// DefaultWindowState returns the 1920x1080 state used whenever the host
// window is unavailable.
func DefaultWindowState() WindowState {
	s := Size{W: Reference1080pWidth, H: Reference1080pHeight}
	return WindowState{Physical: s, Logical: s}
}

// Valid reports whether both sizes are finite and positive.
func (w WindowState) Valid() bool {
	return w.Physical.Valid() && w.Logical.Valid()
}

// DisplayMode is the host's window presentation mode.
type DisplayMode uint8

const (
	DisplayWindowed DisplayMode = iota
	DisplayFullscreen
	DisplayBorderless
)

var displayModeNames = [...]string{
	DisplayWindowed:   "windowed",
	DisplayFullscreen: "fullscreen",
	DisplayBorderless: "borderless",
}

// String returns the string representation of a DisplayMode.
func (m DisplayMode) String() string {
	if int(m) < len(displayModeNames) {
		return displayModeNames[m]
	}
	return "unknown"
}

// WindowConfig mirrors the host's display settings: one configured
// resolution per display mode.
type WindowConfig struct {
	Mode       DisplayMode
	Windowed   Size
	Fullscreen Size
	Borderless Size
}

// Resolution returns the logical resolution of the active display mode.
// Unknown modes fall back to the windowed resolution.
func (c WindowConfig) Resolution() Size {
	switch c.Mode {
	case DisplayFullscreen:
		return c.Fullscreen
	case DisplayBorderless:
		return c.Borderless
	default:
		return c.Windowed
	}
}

// State builds a WindowState for a render target of the given physical
// size.
func (c WindowConfig) State(physical Size) WindowState {
	return WindowState{Physical: physical, Logical: c.Resolution()}
}
