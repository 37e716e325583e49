package overlay

import "sync/atomic"

// TextStyle is the host's current text style.
type TextStyle struct {
	Color    RGBA
	FontSize float32
}

// CameraSource reads the host camera. It reports false when no camera is
// available (for example during loading screens).
type CameraSource interface {
	Camera() (CameraState, bool)
}

// WindowSource reads the host window state. It reports false when the
// window is unavailable.
type WindowSource interface {
	Window() (WindowState, bool)
}

// StyleSource reads the host text style. It reports false when the style
// is unavailable.
type StyleSource interface {
	Style() (TextStyle, bool)
}

// CameraFunc adapts a function to CameraSource.
type CameraFunc func() (CameraState, bool)

// Camera implements CameraSource.
func (f CameraFunc) Camera() (CameraState, bool) { return f() }

// WindowFunc adapts a function to WindowSource.
type WindowFunc func() (WindowState, bool)

// Window implements WindowSource.
func (f WindowFunc) Window() (WindowState, bool) { return f() }

// StyleFunc adapts a function to StyleSource.
type StyleFunc func() (TextStyle, bool)

// Style implements StyleSource.
func (f StyleFunc) Style() (TextStyle, bool) { return f() }

// Latest holds the most recently published snapshot of a host value.
// Store and Load are safe for concurrent use; every Load returns a copy.
// The zero value holds nothing.
type Latest[T any] struct {
	latest atomic.Pointer[T]
}

// Store publishes v.
func (l *Latest[T]) Store(v T) {
	l.latest.Store(&v)
}

// Clear marks the value as unavailable.
func (l *Latest[T]) Clear() {
	l.latest.Store(nil)
}

// Load returns a copy of the latest value, or false if none was published.
func (l *Latest[T]) Load() (T, bool) {
	p := l.latest.Load()
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// CameraFrom returns a CameraSource reading from l.
func CameraFrom(l *Latest[CameraState]) CameraSource { return CameraFunc(l.Load) }

// WindowFrom returns a WindowSource reading from l.
func WindowFrom(l *Latest[WindowState]) WindowSource { return WindowFunc(l.Load) }

// StyleFrom returns a StyleSource reading from l.
func StyleFrom(l *Latest[TextStyle]) StyleSource { return StyleFunc(l.Load) }
