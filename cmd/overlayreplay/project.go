package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/internal/replay"
)

type projectFlags struct {
	mode     string
	pos      []float32
	physical string
	logical  string
	scene    string
}

func newProjectCommand() *cobra.Command {
	var f projectFlags
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Map one position to physical screen pixels",
		Long: `Map one position to physical screen pixels.

World-space modes need a camera, read from the [camera] table of --scene.
The window is taken from --scene too unless --physical is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return project(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.mode, "mode", "m", overlay.CoordNativeScreen.String(), "coordinate mode")
	cmd.Flags().Float32SliceVar(&f.pos, "pos", nil, "position x,y[,z]")
	cmd.Flags().StringVar(&f.physical, "physical", "", "render target size WxH")
	cmd.Flags().StringVar(&f.logical, "logical", "", "logical resolution WxH (default: physical)")
	cmd.Flags().StringVar(&f.scene, "scene", "", "scene file providing camera and window")
	_ = cmd.MarkFlagRequired("pos")
	return cmd
}

func project(cmd *cobra.Command, f projectFlags) error {
	mode, err := overlay.ParseCoordMode(f.mode)
	if err != nil {
		return err
	}
	if len(f.pos) < 2 || len(f.pos) > 3 {
		return fmt.Errorf("--pos needs 2 or 3 components, got %d", len(f.pos))
	}
	var z float32
	if len(f.pos) == 3 {
		z = f.pos[2]
	}

	win := overlay.DefaultWindowState()
	var cam *overlay.CameraState
	if f.scene != "" {
		s, err := replay.Load(f.scene)
		if err != nil {
			return err
		}
		if win, err = s.WindowState(); err != nil {
			return err
		}
		if s.Camera != nil {
			c, err := s.Camera.State()
			if err != nil {
				return err
			}
			cam = &c
		}
	}
	if f.physical != "" {
		if win.Physical, err = parseSize(f.physical); err != nil {
			return err
		}
		win.Logical = win.Physical
	}
	if f.logical != "" {
		if win.Logical, err = parseSize(f.logical); err != nil {
			return err
		}
	}

	p, ok := overlay.Transform(f.pos[0], f.pos[1], z, mode, cam, win)
	out := cmd.OutOrStdout()
	if !ok {
		_, err := fmt.Fprintln(out, "not visible")
		return err
	}
	_, err = fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
	return err
}

// parseSize parses "WxH".
func parseSize(s string) (overlay.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return overlay.Size{}, fmt.Errorf("size %q: want WxH", s)
	}
	w, errW := strconv.ParseFloat(ws, 32)
	h, errH := strconv.ParseFloat(hs, 32)
	if err := errors.Join(errW, errH); err != nil {
		return overlay.Size{}, fmt.Errorf("size %q: %w", s, err)
	}
	size := overlay.Size{W: float32(w), H: float32(h)}
	if !size.Valid() {
		return overlay.Size{}, fmt.Errorf("size %q: must be positive", s)
	}
	return size, nil
}
