// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"image/color"

	"github.com/gogpu/overlay/text"
)

// Option configures a Layer.
type Option func(*options)

type options struct {
	baseSize   float64
	hinting    text.Hinting
	maxFaces   int
	background color.Color
}

func defaultOptions() options {
	return options{
		baseSize:   text.BaseSize,
		hinting:    text.HintingFull,
		maxFaces:   8,
		background: color.NRGBA{R: 15, G: 15, B: 15, A: 240},
	}
}

// WithBaseSize sets the pixel size a font scale of 1 maps to.
// Non-positive values are ignored.
func WithBaseSize(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.baseSize = px
		}
	}
}

// WithHinting sets the hinting of rasterized faces.
func WithHinting(h text.Hinting) Option {
	return func(o *options) {
		o.hinting = h
	}
}

// WithFaceCacheSize bounds the number of distinct face sizes kept open.
// Values below 1 are ignored.
func WithFaceCacheSize(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxFaces = n
		}
	}
}

// WithBackground sets the fill of surfaces that request a background.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}
