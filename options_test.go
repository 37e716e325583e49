package overlay

import (
	"math"
	"testing"
)

func TestDefaultRendererOptions(t *testing.T) {
	o := defaultRendererOptions()
	if o.baseFontSize != BaseFontSize {
		t.Errorf("baseFontSize = %v, want %v", o.baseFontSize, BaseFontSize)
	}
	if o.fallback != DefaultWindowState() {
		t.Errorf("fallback = %v, want DefaultWindowState()", o.fallback)
	}
	if o.camera != nil || o.window != nil || o.style != nil {
		t.Error("sources set by default")
	}
}

func TestWithBaseFontSize(t *testing.T) {
	tests := []struct {
		name string
		px   float32
		want float32
	}{
		{"positive", 32, 32},
		{"zero ignored", 0, BaseFontSize},
		{"negative ignored", -8, BaseFontSize},
		{"infinite ignored", float32(math.Inf(1)), BaseFontSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultRendererOptions()
			WithBaseFontSize(tt.px)(&o)
			if o.baseFontSize != tt.want {
				t.Errorf("baseFontSize = %v, want %v", o.baseFontSize, tt.want)
			}
		})
	}
}

func TestWithFallbackWindow(t *testing.T) {
	o := defaultRendererOptions()
	w := WindowState{Physical: Size{W: 800, H: 600}, Logical: Size{W: 1024, H: 768}}
	WithFallbackWindow(w)(&o)
	if o.fallback != w {
		t.Errorf("fallback = %v, want %v", o.fallback, w)
	}

	WithFallbackWindow(WindowState{})(&o)
	if o.fallback != w {
		t.Errorf("invalid fallback replaced %v with %v", w, o.fallback)
	}
}

func TestWithSources(t *testing.T) {
	var cam Latest[CameraState]
	var win Latest[WindowState]
	var style Latest[TextStyle]
	r := NewRenderer(NewQueue(1),
		WithCamera(CameraFrom(&cam)),
		WithWindow(WindowFrom(&win)),
		WithStyle(StyleFrom(&style)),
	)
	if r.opts.camera == nil || r.opts.window == nil || r.opts.style == nil {
		t.Fatalf("sources not applied: %+v", r.opts)
	}
	if _, ok := r.style(); ok {
		t.Error("style() ok before a style was stored")
	}
	style.Store(TextStyle{Color: Black, FontSize: 12})
	if s, ok := r.style(); !ok || s.FontSize != 12 {
		t.Errorf("style() = (%+v, %v)", s, ok)
	}
}
