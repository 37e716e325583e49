package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/overlay"
)

const scene = `
[window]
physical = [640, 360]

[camera]
position = [0, 0, 0]
right = [1, 0, 0]
up = [0, 1, 0]
forward = [0, 0, 1]
fov = 90
aspect = 1

[[frame]]
[[frame.call]]
mode = "Normalized1080p"
pos = [960, 540, 0, 1]
text = "Hello"
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { overlay.SetLogger(nil) })
	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(scene), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	stdout, err := execute(t, "run", writeScene(t), "--out", out, "--producers", "3")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if !strings.Contains(stdout, "1 surfaces drawn") {
		t.Errorf("stdout = %q", stdout)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 640 || cfg.Height != 360 {
		t.Errorf("PNG is %dx%d, want 640x360", cfg.Width, cfg.Height)
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := execute(t, "run"); err == nil {
		t.Error("run without scene succeeded")
	}
	if _, err := execute(t, "run", filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Error("run with missing scene succeeded")
	}
	if _, err := execute(t, "run", writeScene(t), "--font", filepath.Join(t.TempDir(), "none.ttf")); err == nil {
		t.Error("run with missing font succeeded")
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"native", []string{"--mode", "NativeScreen", "--pos", "960,540", "--physical", "3840x2160", "--logical", "1920x1080"}, "1920 1080"},
		{"4k", []string{"--mode", "Normalized4K", "--pos", "3840,2160", "--physical", "1280x720"}, "1280 720"},
		{"default window", []string{"--mode", "Normalized1080p", "--pos", "960,540"}, "960 540"},
		{"world without camera", []string{"--mode", "WorldProjected", "--pos", "0,0,10"}, "not visible"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"project"}, tt.args...)...)
			if err != nil {
				t.Fatalf("project error = %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("project = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProjectWithSceneCamera(t *testing.T) {
	out, err := execute(t, "project", "--scene", writeScene(t), "--mode", "WorldProjected", "--pos", "0,0,10", "-v")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "320 180" {
		t.Errorf("project = %q, want %q", got, "320 180")
	}
}

func TestProjectErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--mode", "Polar", "--pos", "1,2"},
		{"--pos", "1"},
		{"--pos", "1,2", "--physical", "wide"},
		{"--pos", "1,2", "--logical", "0x10"},
		{"--mode", "NativeScreen"},
	} {
		if _, err := execute(t, append([]string{"project"}, args...)...); err == nil {
			t.Errorf("project %v succeeded", args)
		}
	}
}
