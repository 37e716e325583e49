// Package overlay re-renders a host application's text draw calls on an
// independent overlay.
//
// # Overview
//
// The host calls two text routines (plain and with a pixel offset). The
// [Interceptor] decodes their arguments into [Command] values and pushes
// them into a bounded, non-blocking [Queue]. Once per presented frame the
// [Renderer] drains the queue, maps every command through [Transform] and
// emits one [Surface] per visible item into a [Frame].
//
// # Quick Start
//
//	ic := overlay.NewInterceptor(overlay.DefaultQueue())
//	r := overlay.NewRenderer(overlay.DefaultQueue(),
//	    overlay.WithCamera(overlay.CameraFunc(readCamera)),
//	    overlay.WithWindow(overlay.WindowFunc(readWindow)),
//	    overlay.WithStyle(overlay.StyleFunc(readStyle)),
//	)
//
//	// host thread
//	ic.OnDrawText(overlay.CoordNormalized1080p, pos, text)
//
//	// render thread, once per frame
//	stats := r.RenderFrame(frame)
//
// # Coordinate Modes
//
// Four coordinate conventions are supported:
//   - World space, projected through the current camera onto the physical
//     render target.
//   - Native screen space, authored against the logical resolution and
//     scaled to the physical size.
//   - 3840x2160 normalized space, scaled to the logical resolution.
//   - 1920x1080 normalized space, scaled to the logical resolution.
//
// Overlay coordinates have the origin at the top-left, X increasing right
// and Y increasing down.
//
// # Concurrency
//
// Any number of goroutines (or host threads entering through package hook)
// may push commands concurrently. Exactly one goroutine drains the queue
// through [Renderer.RenderFrame]. Producers never block: on saturation the
// oldest command is evicted.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive debug
// traces for every intercepted call and rendered surface.
package overlay
