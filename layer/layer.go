// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/text"
)

// Common errors returned by Layer operations.
var (
	// ErrClosed is returned when operations are attempted on a closed layer.
	ErrClosed = errors.New("layer: layer is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("layer: invalid dimensions")

	// ErrNilSource is returned when a nil font source is passed.
	ErrNilSource = errors.New("layer: nil font source")
)

// Layer rasterizes overlay surfaces into an RGBA buffer.
//
// Layer is NOT safe for concurrent use. Call Begin, RenderFrame (through
// Surface) and Present from the render goroutine.
type Layer struct {
	src  *text.FontSource
	opts options

	img *image.RGBA

	faces     map[float64]*text.Face
	faceOrder []float64

	// drawn is the region written since the last Begin.
	drawn image.Rectangle
	// dirty is the region changed since the last Present.
	dirty image.Rectangle

	tex    texture
	closed bool
}

// New creates a Layer drawing with fonts from src.
func New(src *text.FontSource, opts ...Option) (*Layer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Layer{
		src:   src,
		opts:  o,
		img:   image.NewRGBA(image.Rectangle{}),
		faces: make(map[float64]*text.Face),
	}, nil
}

// Begin starts a frame of the given size. The buffer is resized when the
// size changed and otherwise cleared where the previous frame drew.
func (l *Layer) Begin(width, height int) error {
	if l.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	if b := l.img.Bounds(); b.Dx() != width || b.Dy() != height {
		l.img = image.NewRGBA(image.Rect(0, 0, width, height))
		l.tex.resize()
		l.dirty = l.img.Bounds()
		l.drawn = image.Rectangle{}
		overlay.Logger().Debug("layer: resized", "width", width, "height", height)
		return nil
	}

	if !l.drawn.Empty() {
		draw.Draw(l.img, l.drawn, image.Transparent, image.Point{}, draw.Src)
		l.dirty = l.dirty.Union(l.drawn)
		l.drawn = image.Rectangle{}
	}
	return nil
}

// Surface draws s. It implements overlay.Frame. The surface content is
// clipped to the surface rectangle and to the buffer; the first baseline
// sits one ascent below the surface top.
func (l *Layer) Surface(s overlay.Surface) {
	if l.closed {
		return
	}
	clip := surfaceRect(s).Intersect(l.img.Bounds())
	if clip.Empty() {
		return
	}

	if !s.Flags.Has(overlay.SurfaceNoBackground) {
		draw.Draw(l.img, clip, image.NewUniform(l.opts.background), image.Point{}, draw.Over)
		l.mark(clip)
	}
	if s.Text == "" {
		return
	}

	// Sizes are quantized to quarter pixels to bound the face cache.
	size := math.Round(float64(s.FontScale)*l.opts.baseSize*4) / 4
	face, err := l.face(size)
	if err != nil {
		overlay.Logger().Debug("layer: no face for surface", "surface", s.Name, "scale", s.FontScale, "error", err)
		return
	}

	x, y := float64(s.Pos.X), float64(s.Pos.Y)
	w, h := text.Measure(face, s.Text)
	textRect := image.Rect(
		int(math.Floor(x))-1, int(math.Floor(y))-1,
		int(math.Ceil(x+w))+1, int(math.Ceil(y+h))+1,
	).Intersect(clip)
	if textRect.Empty() {
		return
	}

	dst := l.img.SubImage(clip).(*image.RGBA)
	text.Draw(dst, face, s.Text, x, y+face.Metrics().Ascent, s.Color.Color())
	l.mark(textRect)
}

// mark records r as written this frame.
func (l *Layer) mark(r image.Rectangle) {
	l.drawn = l.drawn.Union(r)
	l.dirty = l.dirty.Union(r)
}

// face returns a cached face of the given pixel size.
func (l *Layer) face(size float64) (*text.Face, error) {
	if f, ok := l.faces[size]; ok {
		return f, nil
	}
	f, err := l.src.Face(size, text.WithHinting(l.opts.hinting))
	if err != nil {
		return nil, err
	}
	if len(l.faceOrder) >= l.opts.maxFaces {
		oldest := l.faceOrder[0]
		l.faceOrder = l.faceOrder[1:]
		_ = l.faces[oldest].Close()
		delete(l.faces, oldest)
	}
	l.faces[size] = f
	l.faceOrder = append(l.faceOrder, size)
	return f, nil
}

// Image returns the frame buffer. The image is reused across frames.
func (l *Layer) Image() *image.RGBA {
	return l.img
}

// SavePNG writes the frame buffer to path as PNG.
func (l *Layer) SavePNG(path string) error {
	if l.closed {
		return ErrClosed
	}
	// #nosec G304 -- Output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("layer: create %s: %w", path, err)
	}
	if err := png.Encode(f, l.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("layer: encode png: %w", err)
	}
	return f.Close()
}

// Close releases the faces and the texture.
// Close is idempotent.
func (l *Layer) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	for _, f := range l.faces {
		_ = f.Close()
	}
	l.faces = nil
	l.faceOrder = nil
	l.tex.release()
	return nil
}

// surfaceRect returns the integer rectangle covered by s.
func surfaceRect(s overlay.Surface) image.Rectangle {
	if !s.Pos.IsFinite() || !s.Size.Valid() {
		return image.Rectangle{}
	}
	x0 := math.Floor(float64(s.Pos.X))
	y0 := math.Floor(float64(s.Pos.Y))
	x1 := math.Ceil(float64(s.Pos.X + s.Size.W))
	y1 := math.Ceil(float64(s.Pos.Y + s.Size.H))
	return image.Rect(clampInt(x0), clampInt(y0), clampInt(x1), clampInt(y1))
}

func clampInt(v float64) int {
	const limit = 1 << 30
	return int(max(-limit, min(limit, v)))
}
