// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package replay

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/layer"
	"github.com/gogpu/overlay/text"
)

const testScene = `
[window]
physical = [2560, 1440]
display = "fullscreen"
windowed = [1280, 720]
fullscreen = [1920, 1080]

[camera]
position = [0, 0, 0]
right = [1, 0, 0]
up = [0, 1, 0]
forward = [0, 0, 1]
fov = 90
aspect = 1.7777778

[style]
color = "#ff0000"
size = 36

[[frame]]
[[frame.call]]
mode = "Normalized4K"
pos = [1920, 1080, 0, 1]
text = "center"

[[frame.call]]
mode = "NativeScreen"
pos = [100, 100, 0, 1]
offset = [10, -10]
text = "ほげ"

[[frame]]
no_camera = true
[[frame.call]]
mode = "WorldProjected"
pos = [0, 0, 10, 1]
text = "hidden"

[[frame]]
no_style = true
[[frame.call]]
mode = "Normalized1080p"
pos = [0, 0, 0, 1]
text = "discarded"
`

// recordTarget records the frames it receives.
type recordTarget struct {
	begins   [][2]int
	surfaces []overlay.Surface
	failOn   int
}

func (r *recordTarget) Begin(width, height int) error {
	r.begins = append(r.begins, [2]int{width, height})
	if r.failOn > 0 && len(r.begins) == r.failOn {
		return errors.New("device lost")
	}
	return nil
}

func (r *recordTarget) Surface(s overlay.Surface) {
	if s.Name == overlay.AnchorName {
		return
	}
	r.surfaces = append(r.surfaces, s)
}

func mustParse(t *testing.T, data string) *Scene {
	t.Helper()
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return s
}

func TestParseScene(t *testing.T) {
	s := mustParse(t, testScene)
	if len(s.Frames) != 3 {
		t.Fatalf("len(Frames) = %d, want 3", len(s.Frames))
	}
	if got := len(s.Frames[0].Calls); got != 2 {
		t.Errorf("frame 0 has %d calls, want 2", got)
	}

	cfg, err := s.WindowConfig()
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Resolution(); got != (overlay.Size{W: 1920, H: 1080}) {
		t.Errorf("Resolution() = %v, want 1920x1080", got)
	}
	if cfg.Borderless != (overlay.Size{W: 2560, H: 1440}) {
		t.Errorf("unset borderless resolution = %v, want physical size", cfg.Borderless)
	}

	cam, err := s.Camera.State()
	if err != nil {
		t.Fatal(err)
	}
	if d := cam.FOV - 1.5707964; d > 1e-5 || d < -1e-5 {
		t.Errorf("FOV = %v, want pi/2", cam.FOV)
	}
	if st := s.Style.TextStyle(); st.Color != overlay.RGBA255(255, 0, 0, 255) || st.FontSize != 36 {
		t.Errorf("TextStyle() = %+v", st)
	}
}

func TestParseErrors(t *testing.T) {
	const window = "[window]\nphysical = [800, 600]\n"
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown key", window + "colour = 1\n", ErrUnknownKey},
		{"missing window", "", ErrInvalidScene},
		{"bad display", "[window]\nphysical = [800, 600]\ndisplay = \"tiled\"\n", ErrInvalidScene},
		{"zero size", "[window]\nphysical = [0, 600]\n", ErrInvalidScene},
		{"bad mode", window + "[[frame]]\n[[frame.call]]\nmode = \"Polar\"\npos = [0, 0, 0, 1]\n", ErrInvalidScene},
		{"short pos", window + "[[frame]]\n[[frame.call]]\nmode = \"NativeScreen\"\npos = [0, 0]\n", ErrInvalidScene},
		{"bad offset", window + "[[frame]]\n[[frame.call]]\nmode = \"NativeScreen\"\npos = [0, 0, 0, 1]\noffset = [1]\n", ErrInvalidScene},
		{"bad style", window + "[style]\nsize = 0\n", ErrInvalidScene},
		{"flat camera", window + "[camera]\nposition = [0, 0, 0]\nright = [1, 0, 0]\nup = [0, 1, 0]\nforward = [0, 0, 1]\nfov = 0\naspect = 1\n", ErrInvalidScene},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(testScene), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Frames) != 3 {
		t.Errorf("len(Frames) = %d, want 3", len(s.Frames))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() of missing file succeeded")
	}
}

func TestPlayerRun(t *testing.T) {
	p, err := NewPlayer(mustParse(t, testScene))
	if err != nil {
		t.Fatal(err)
	}
	var target recordTarget
	res, err := p.Run(context.Background(), &target)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(target.begins) != 3 || target.begins[0] != [2]int{2560, 1440} {
		t.Errorf("Begin calls = %v", target.begins)
	}
	if len(res.Frames) != 3 {
		t.Fatalf("len(Frames) = %d, want 3", len(res.Frames))
	}
	if got := res.Drawn(); got != 2 {
		t.Errorf("Drawn() = %d, want 2", got)
	}
	if f := res.Frames[1]; f.Skipped != 1 {
		t.Errorf("frame without camera: %+v, want one skipped", f)
	}
	if f := res.Frames[2]; f.Discarded != 1 {
		t.Errorf("frame without style: %+v, want one discarded", f)
	}
	if res.Queue.Pushed != 5 || res.Queue.Evicted != 0 {
		t.Errorf("queue stats = %+v", res.Queue)
	}

	// Normalized modes map into the 1920x1080 logical resolution; native
	// screen coordinates are scaled up to the 2560x1440 target.
	center := target.surfaces[0]
	if center.Text != "center" || center.Pos != (overlay.Point{X: 960, Y: 540}) {
		t.Errorf("surface 0 = %q at %v, want center at (960,540)", center.Text, center.Pos)
	}
	if center.FontScale != 1.5 {
		t.Errorf("FontScale = %v, want 1.5", center.FontScale)
	}
	kana := target.surfaces[1]
	want := overlay.Point{X: 100*2560/1920.0 + 10, Y: 100*1440/1080.0 - 10}
	if kana.Text != "ほげ" || absDiff(kana.Pos.X, want.X) > 1e-3 || absDiff(kana.Pos.Y, want.Y) > 1e-3 {
		t.Errorf("surface 1 = %q at %v, want ほげ at %v", kana.Text, kana.Pos, want)
	}
}

func TestPlayerManyProducers(t *testing.T) {
	s := &Scene{Window: Window{Physical: []float32{1920, 1080}}}
	var calls []Call
	for range 500 {
		calls = append(calls, Call{Mode: "Normalized1080p", Pos: []float32{10, 10, 0, 1}, Text: "x"})
	}
	s.Frames = []Frame{{Calls: calls}, {Calls: calls[:7]}}

	p, err := NewPlayer(s, WithProducers(8))
	if err != nil {
		t.Fatal(err)
	}
	var target recordTarget
	res, err := p.Run(context.Background(), &target)
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames[0].Drawn != 500 || res.Frames[1].Drawn != 7 {
		t.Errorf("drawn = %d, %d, want 500, 7", res.Frames[0].Drawn, res.Frames[1].Drawn)
	}
}

func TestPlayerSmallQueueEvicts(t *testing.T) {
	s := &Scene{Window: Window{Physical: []float32{1920, 1080}}}
	var calls []Call
	for range 10 {
		calls = append(calls, Call{Mode: "NativeScreen", Pos: []float32{1, 1, 0, 1}, Text: "x"})
	}
	s.Frames = []Frame{{Calls: calls}}

	p, err := NewPlayer(s, WithQueueCapacity(4))
	if err != nil {
		t.Fatal(err)
	}
	res, err := p.Run(context.Background(), &recordTarget{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Queue.Evicted != 6 || res.Frames[0].Drawn != 4 {
		t.Errorf("evicted %d, drawn %d, want 6, 4", res.Queue.Evicted, res.Frames[0].Drawn)
	}
}

func TestPlayerErrors(t *testing.T) {
	p, err := NewPlayer(mustParse(t, testScene))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Run(context.Background(), &recordTarget{failOn: 2}); err == nil {
		t.Error("Run() ignored a Begin failure")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Run(ctx, &recordTarget{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}

	if _, err := NewPlayer(&Scene{}); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("NewPlayer() error = %v, want ErrInvalidScene", err)
	}
}

func TestPlayerIntoLayer(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	l, err := layer.New(src)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	s := &Scene{
		Window: Window{Physical: []float32{320, 180}},
		Frames: []Frame{{Calls: []Call{
			{Mode: "NativeScreen", Pos: []float32{20, 20, 0, 1}, Text: "Hello"},
		}}},
	}
	p, err := NewPlayer(s)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Run(context.Background(), l); err != nil {
		t.Fatal(err)
	}

	img := l.Image()
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 180 {
		t.Fatalf("image bounds = %v, want 320x180", b)
	}
	ink := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			ink++
		}
	}
	if ink == 0 {
		t.Error("layer is empty after replay")
	}
}

func absDiff(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}
