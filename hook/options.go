// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hook

// Option configures Install.
type Option func(*options)

type options struct {
	drawTextRVA           uintptr
	drawTextWithOffsetRVA uintptr
	reader                TargetReader
	entryPoints           func() (entryPoints, error)
}

func defaultOptions() options {
	return options{
		drawTextRVA:           DrawTextRVA,
		drawTextWithOffsetRVA: DrawTextWithOffsetRVA,
		entryPoints:           defaultEntryPoints,
	}
}

// WithRVAs overrides the offsets of the plain and offset text routines,
// for host builds other than the default one.
func WithRVAs(drawText, drawTextWithOffset uintptr) Option {
	return func(o *options) {
		o.drawTextRVA = drawText
		o.drawTextWithOffsetRVA = drawTextWithOffset
	}
}

// WithTargetReader sets how the coordinate mode of a call is read from the
// host draw context. Required.
func WithTargetReader(r TargetReader) Option {
	return func(o *options) {
		o.reader = r
	}
}
