// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hook

import (
	"unsafe"

	"github.com/gogpu/overlay"
)

// TargetReader reads the active coordinate mode from the host draw context
// passed as the first argument of both routines. It reports false when the
// mode cannot be read; the call is then dropped.
type TargetReader interface {
	CoordMode(target unsafe.Pointer) (overlay.CoordMode, bool)
}

// TargetReaderFunc adapts a function to TargetReader.
type TargetReaderFunc func(target unsafe.Pointer) (overlay.CoordMode, bool)

// CoordMode implements TargetReader.
func (f TargetReaderFunc) CoordMode(target unsafe.Pointer) (overlay.CoordMode, bool) {
	return f(target)
}

// FixedMode is a TargetReader that reports the same mode for every call.
type FixedMode overlay.CoordMode

// CoordMode implements TargetReader.
func (m FixedMode) CoordMode(unsafe.Pointer) (overlay.CoordMode, bool) {
	return overlay.CoordMode(m), true
}

// PointerChain reads a 32-bit mode value by following pointers from the
// draw context: every offset but the last is added to the current address
// and dereferenced as a pointer; the last offset locates the int32 value.
// Modes maps the host's raw values to coordinate modes; values missing
// from it drop the call.
type PointerChain struct {
	Offsets []uintptr
	Modes   map[int32]overlay.CoordMode
}

// CoordMode implements TargetReader.
func (c PointerChain) CoordMode(target unsafe.Pointer) (overlay.CoordMode, bool) {
	if target == nil || len(c.Offsets) == 0 {
		return 0, false
	}
	p := target
	for _, off := range c.Offsets[:len(c.Offsets)-1] {
		p = *(*unsafe.Pointer)(unsafe.Add(p, off))
		if p == nil {
			return 0, false
		}
	}
	raw := *(*int32)(unsafe.Add(p, c.Offsets[len(c.Offsets)-1]))
	m, ok := c.Modes[raw]
	return m, ok
}

// readPos copies the float4 position argument.
func readPos(p unsafe.Pointer) (overlay.Vec4, bool) {
	if p == nil {
		return overlay.Vec4{}, false
	}
	return *(*overlay.Vec4)(p), true
}

// readOffset copies the float2 offset argument. A nil argument stays nil.
func readOffset(p unsafe.Pointer) *overlay.Vec2 {
	if p == nil {
		return nil
	}
	v := *(*overlay.Vec2)(p)
	return &v
}
