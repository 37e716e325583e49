package overlay

import "fmt"

// CoordMode identifies the coordinate convention of a text position.
// The host supplies it per call from its render state.
type CoordMode uint8

const (
	CoordWorldProjected    CoordMode = iota // World space, projected through the camera
	CoordWorldProjectedAlt                  // Same as CoordWorldProjected
	CoordNativeScreen                       // Logical-resolution pixels
	CoordNativeScreenAlt                    // Same as CoordNativeScreen
	CoordNormalized4K                       // 3840x2160 reference space
	CoordNormalized1080p                    // 1920x1080 reference space

	coordModeCount
)

var coordModeNames = [...]string{
	CoordWorldProjected:    "WorldProjected",
	CoordWorldProjectedAlt: "WorldProjectedAlt",
	CoordNativeScreen:      "NativeScreen",
	CoordNativeScreenAlt:   "NativeScreenAlt",
	CoordNormalized4K:      "Normalized4K",
	CoordNormalized1080p:   "Normalized1080p",
}

// String returns the string representation of a CoordMode.
func (m CoordMode) String() string {
	if m < coordModeCount {
		return coordModeNames[m]
	}
	return fmt.Sprintf("CoordMode(%d)", uint8(m))
}

// Valid reports whether m is one of the known coordinate modes.
func (m CoordMode) Valid() bool {
	return m < coordModeCount
}

// ParseCoordMode returns the mode whose String form is name.
func ParseCoordMode(name string) (CoordMode, error) {
	for m, n := range coordModeNames {
		if n == name {
			return CoordMode(m), nil
		}
	}
	return 0, fmt.Errorf("overlay: unknown coordinate mode %q", name)
}

// CommandType identifies the kind of a queued command.
type CommandType uint8

const (
	CmdText      CommandType = iota // Draw text
	CmdSetOffset                    // One-shot offset for the next text
)

var commandTypeNames = [...]string{
	CmdText:      "Text",
	CmdSetOffset: "SetOffset",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a unit of work passed from the interceptors to the renderer.
// The set of commands is closed: only TextCommand and OffsetCommand
// implement it.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	command()
}

// TextCommand asks for Text to be drawn at (X, Y, Z) interpreted in Mode.
// Z is only meaningful for world-space modes.
type TextCommand struct {
	Text    string
	X, Y, Z float32
	Mode    CoordMode
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
func (TextCommand) command()          {}

// OffsetCommand shifts the next TextCommand by (DX, DY) pixels. It applies
// to exactly one subsequent TextCommand.
type OffsetCommand struct {
	DX, DY float32
}

// Type implements Command.
func (OffsetCommand) Type() CommandType { return CmdSetOffset }
func (OffsetCommand) command()          {}
