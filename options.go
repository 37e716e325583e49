package overlay

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r := overlay.NewRenderer(overlay.DefaultQueue(),
//	    overlay.WithCamera(cameraSource),
//	    overlay.WithBaseFontSize(32),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	camera       CameraSource
	window       WindowSource
	style        StyleSource
	baseFontSize float32
	fallback     WindowState
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		baseFontSize: BaseFontSize,
		fallback:     DefaultWindowState(),
	}
}

// WithCamera sets the camera source used for world-space commands.
// Without one, world-space commands are never drawn.
func WithCamera(src CameraSource) RendererOption {
	return func(o *rendererOptions) {
		o.camera = src
	}
}

// WithWindow sets the window source. Without one, or while it reports the
// window unavailable, the fallback window state is used.
func WithWindow(src WindowSource) RendererOption {
	return func(o *rendererOptions) {
		o.window = src
	}
}

// WithStyle sets the text style source. Without one, text is drawn white
// at the base font size. While a configured source reports the style
// unavailable, queued commands are discarded.
func WithStyle(src StyleSource) RendererOption {
	return func(o *rendererOptions) {
		o.style = src
	}
}

// WithBaseFontSize sets the pixel size the overlay font was loaded at.
// Surface font scales are computed relative to it. Non-positive values
// are ignored.
func WithBaseFontSize(px float32) RendererOption {
	return func(o *rendererOptions) {
		if px > 0 && finite(px) {
			o.baseFontSize = px
		}
	}
}

// WithFallbackWindow sets the window state used when the host window is
// unavailable. Invalid states are ignored.
func WithFallbackWindow(w WindowState) RendererOption {
	return func(o *rendererOptions) {
		if w.Valid() {
			o.fallback = w
		}
	}
}
