// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package replay plays recorded host draw calls through the overlay
// pipeline. A scene file describes the host state (window, camera, text
// style) and a list of frames, each holding the draw calls issued during
// that frame.
package replay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/overlay"
)

// Sentinel errors for scene loading.
var (
	ErrUnknownKey   = errors.New("replay: unknown key in scene")
	ErrInvalidScene = errors.New("replay: invalid scene")
)

// Scene is the decoded form of a scene file.
//
// Example:
//
//	[window]
//	physical = [2560, 1440]
//	display = "fullscreen"
//	fullscreen = [1920, 1080]
//
//	[style]
//	color = "#ffcc00"
//	size = 24
//
//	[[frame]]
//	[[frame.call]]
//	mode = "Normalized4K"
//	pos = [1920, 1080, 0, 1]
//	text = "こんにちは"
type Scene struct {
	Window Window  `toml:"window"`
	Camera *Camera `toml:"camera"`
	Style  *Style  `toml:"style"`
	Frames []Frame `toml:"frame"`
}

// Window describes the host window. Physical is the render target size.
// The logical resolution is the one configured for Display; when it is
// not set, the physical size is used.
type Window struct {
	Physical   []float32 `toml:"physical"`
	Display    string    `toml:"display"`
	Windowed   []float32 `toml:"windowed"`
	Fullscreen []float32 `toml:"fullscreen"`
	Borderless []float32 `toml:"borderless"`
}

// Camera describes the host camera. FOV is the vertical field of view in
// degrees.
type Camera struct {
	Position []float32 `toml:"position"`
	Right    []float32 `toml:"right"`
	Up       []float32 `toml:"up"`
	Forward  []float32 `toml:"forward"`
	FOV      float32   `toml:"fov"`
	Aspect   float32   `toml:"aspect"`
}

// Style is the host text style. Color is a hex string.
type Style struct {
	Color string  `toml:"color"`
	Size  float32 `toml:"size"`
}

// Frame is the set of draw calls issued during one host frame.
// NoCamera simulates a frame without a camera (a loading screen);
// NoStyle one without a text style.
type Frame struct {
	NoCamera bool   `toml:"no_camera"`
	NoStyle  bool   `toml:"no_style"`
	Calls    []Call `toml:"call"`
}

// Call is one intercepted draw call. A call with an offset goes through
// the offset routine.
type Call struct {
	Mode   string    `toml:"mode"`
	Pos    []float32 `toml:"pos"`
	Offset []float32 `toml:"offset"`
	Text   string    `toml:"text"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	var s Scene
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("replay: decode %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Parse decodes and validates a scene from TOML text.
func Parse(data string) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(data, &s)
	if err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// Validate checks that every value of the scene can be replayed.
func (s *Scene) Validate() error {
	if _, err := s.WindowConfig(); err != nil {
		return err
	}
	if _, err := s.WindowState(); err != nil {
		return err
	}
	if s.Camera != nil {
		cam, err := s.Camera.State()
		if err != nil {
			return err
		}
		if !cam.Valid() {
			return fmt.Errorf("%w: camera cannot project", ErrInvalidScene)
		}
	}
	if s.Style != nil {
		if s.Style.Size <= 0 {
			return fmt.Errorf("%w: style size %v", ErrInvalidScene, s.Style.Size)
		}
	}
	for i, f := range s.Frames {
		for j, c := range f.Calls {
			if _, err := c.validate(); err != nil {
				return fmt.Errorf("frame %d call %d: %w", i, j, err)
			}
		}
	}
	return nil
}

// WindowConfig returns the display settings of the scene.
func (s *Scene) WindowConfig() (overlay.WindowConfig, error) {
	mode, err := parseDisplay(s.Window.Display)
	if err != nil {
		return overlay.WindowConfig{}, err
	}
	physical, err := size("window.physical", s.Window.Physical)
	if err != nil {
		return overlay.WindowConfig{}, err
	}
	cfg := overlay.WindowConfig{Mode: mode}
	for _, r := range []struct {
		name string
		v    []float32
		dst  *overlay.Size
	}{
		{"window.windowed", s.Window.Windowed, &cfg.Windowed},
		{"window.fullscreen", s.Window.Fullscreen, &cfg.Fullscreen},
		{"window.borderless", s.Window.Borderless, &cfg.Borderless},
	} {
		if r.v == nil {
			*r.dst = physical
			continue
		}
		if *r.dst, err = size(r.name, r.v); err != nil {
			return overlay.WindowConfig{}, err
		}
	}
	return cfg, nil
}

// WindowState returns the window snapshot the scene is replayed with.
func (s *Scene) WindowState() (overlay.WindowState, error) {
	cfg, err := s.WindowConfig()
	if err != nil {
		return overlay.WindowState{}, err
	}
	physical, _ := size("window.physical", s.Window.Physical)
	w := cfg.State(physical)
	if !w.Valid() {
		return overlay.WindowState{}, fmt.Errorf("%w: window %+v", ErrInvalidScene, w)
	}
	return w, nil
}

// State converts the camera description into a CameraState.
func (c *Camera) State() (overlay.CameraState, error) {
	var st overlay.CameraState
	for _, v := range []struct {
		name string
		src  []float32
		dst  *mgl32.Vec3
	}{
		{"camera.position", c.Position, &st.Position},
		{"camera.right", c.Right, &st.Right},
		{"camera.up", c.Up, &st.Up},
		{"camera.forward", c.Forward, &st.Forward},
	} {
		if len(v.src) != 3 {
			return st, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidScene, v.name, len(v.src))
		}
		*v.dst = mgl32.Vec3{v.src[0], v.src[1], v.src[2]}
	}
	st.FOV = mgl32.DegToRad(c.FOV)
	st.AspectRatio = c.Aspect
	return st, nil
}

// TextStyle converts the style description.
func (s *Style) TextStyle() overlay.TextStyle {
	return overlay.TextStyle{Color: overlay.Hex(s.Color), FontSize: s.Size}
}

// validate parses the call's mode and checks its vector lengths.
func (c Call) validate() (overlay.CoordMode, error) {
	mode, err := overlay.ParseCoordMode(c.Mode)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if len(c.Pos) != 4 {
		return 0, fmt.Errorf("%w: pos needs 4 components, got %d", ErrInvalidScene, len(c.Pos))
	}
	if c.Offset != nil && len(c.Offset) != 2 {
		return 0, fmt.Errorf("%w: offset needs 2 components, got %d", ErrInvalidScene, len(c.Offset))
	}
	return mode, nil
}

func parseDisplay(name string) (overlay.DisplayMode, error) {
	switch strings.ToLower(name) {
	case "", "windowed":
		return overlay.DisplayWindowed, nil
	case "fullscreen":
		return overlay.DisplayFullscreen, nil
	case "borderless":
		return overlay.DisplayBorderless, nil
	}
	return 0, fmt.Errorf("%w: unknown display mode %q", ErrInvalidScene, name)
}

func size(name string, v []float32) (overlay.Size, error) {
	if len(v) != 2 {
		return overlay.Size{}, fmt.Errorf("%w: %s needs 2 components, got %d", ErrInvalidScene, name, len(v))
	}
	s := overlay.Size{W: v[0], H: v[1]}
	if !s.Valid() {
		return overlay.Size{}, fmt.Errorf("%w: %s = %v", ErrInvalidScene, name, v)
	}
	return s, nil
}
