// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/overlay"
)

// ErrNoTextureCreator is returned when the draw context cannot create
// textures.
var ErrNoTextureCreator = errors.New("layer: draw context has no texture creator")

// textureDestroyer is the interface for destroying textures.
type textureDestroyer interface {
	Destroy()
}

// texture tracks the GPU copy of the frame buffer.
type texture struct {
	cur gpucontext.Texture
	// old is kept alive until the replacement has been created: the GPU
	// may still sample it from in-flight command buffers.
	old         gpucontext.Texture
	sizeChanged bool
}

func (t *texture) resize() {
	t.sizeChanged = true
}

func (t *texture) release() {
	destroy(t.old)
	destroy(t.cur)
	t.old, t.cur = nil, nil
}

func destroy(tex gpucontext.Texture) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

// Present uploads the frame buffer and draws it at (0, 0) on dc.
//
// The texture is created on first use and after a resize; otherwise only
// the changed region is uploaded (the whole buffer when the texture does
// not support region updates). Nothing is uploaded when the frame did not
// change.
func (l *Layer) Present(dc gpucontext.TextureDrawer) error {
	if l.closed {
		return ErrClosed
	}
	if dc == nil {
		return ErrNoTextureCreator
	}
	if l.img.Bounds().Empty() {
		return fmt.Errorf("%w: Begin was not called", ErrInvalidDimensions)
	}

	t := &l.tex
	if t.sizeChanged && t.cur != nil {
		destroy(t.old)
		t.old, t.cur = t.cur, nil
	}
	t.sizeChanged = false

	if t.cur == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		b := l.img.Bounds()
		tex, err := creator.NewTextureFromRGBA(b.Dx(), b.Dy(), l.img.Pix)
		if err != nil {
			return fmt.Errorf("layer: NewTextureFromRGBA failed: %w", err)
		}
		// image.RGBA is premultiplied.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		t.cur = tex
		destroy(t.old)
		t.old = nil
		l.dirty = image.Rectangle{}
		overlay.Logger().Debug("layer: texture created", "width", b.Dx(), "height", b.Dy())
	} else if !l.dirty.Empty() {
		if err := l.upload(t.cur); err != nil {
			return err
		}
		l.dirty = image.Rectangle{}
	}

	return dc.DrawTexture(t.cur, 0, 0)
}

// upload copies the dirty region into tex.
func (l *Layer) upload(tex gpucontext.Texture) error {
	r := l.dirty.Intersect(l.img.Bounds())
	if r.Empty() {
		return nil
	}
	if ru, ok := tex.(gpucontext.TextureRegionUpdater); ok && r != l.img.Bounds() {
		if err := ru.UpdateRegion(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), packRegion(l.img, r)); err != nil {
			return fmt.Errorf("layer: texture region update failed: %w", err)
		}
		return nil
	}
	if u, ok := tex.(gpucontext.TextureUpdater); ok {
		if err := u.UpdateData(l.img.Pix); err != nil {
			return fmt.Errorf("layer: texture update failed: %w", err)
		}
	}
	return nil
}

// packRegion returns the pixels of r as tightly packed RGBA rows.
func packRegion(img *image.RGBA, r image.Rectangle) []byte {
	rowLen := r.Dx() * 4
	out := make([]byte, 0, rowLen*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := img.PixOffset(r.Min.X, y)
		out = append(out, img.Pix[off:off+rowLen]...)
	}
	return out
}
