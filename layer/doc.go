// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layer is a software overlay.Frame: it rasterizes surfaces into an
// RGBA buffer and presents the buffer through gpucontext.
//
// A Layer owns one texture. The texture is created on the first Present,
// recreated after a resize and otherwise updated in place, uploading only
// the region that changed when the texture supports region updates.
//
// Usage:
//
//	l, err := layer.New(fontSource)
//	if err != nil {
//	    return err
//	}
//	defer l.Close()
//
//	// once per frame, on the render thread
//	l.Begin(width, height)
//	renderer.RenderFrame(l)
//	if err := l.Present(dc); err != nil {
//	    return err
//	}
package layer
