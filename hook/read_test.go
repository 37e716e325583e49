// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hook

import (
	"testing"
	"unsafe"

	"github.com/gogpu/overlay"
)

type testState struct {
	_    [12]byte
	mode int32
}

type testBuffer struct {
	_     [8]byte
	state *testState
}

type testDrawContext struct {
	_      [24]byte
	buffer *testBuffer
}

func TestPointerChain(t *testing.T) {
	ctx := &testDrawContext{buffer: &testBuffer{state: &testState{mode: 7}}}
	chain := PointerChain{
		Offsets: []uintptr{
			unsafe.Offsetof(ctx.buffer),
			unsafe.Offsetof(ctx.buffer.state),
			unsafe.Offsetof(ctx.buffer.state.mode),
		},
		Modes: map[int32]overlay.CoordMode{
			7: overlay.CoordNormalized1080p,
		},
	}

	got, ok := chain.CoordMode(unsafe.Pointer(ctx))
	if !ok || got != overlay.CoordNormalized1080p {
		t.Errorf("CoordMode() = (%v, %v), want Normalized1080p", got, ok)
	}

	ctx.buffer.state.mode = 99
	if _, ok := chain.CoordMode(unsafe.Pointer(ctx)); ok {
		t.Error("unmapped raw value reported ok")
	}

	ctx.buffer.state = nil
	if _, ok := chain.CoordMode(unsafe.Pointer(ctx)); ok {
		t.Error("nil link reported ok")
	}
	if _, ok := chain.CoordMode(nil); ok {
		t.Error("nil target reported ok")
	}
	if _, ok := (PointerChain{}).CoordMode(unsafe.Pointer(ctx)); ok {
		t.Error("empty chain reported ok")
	}
}

func TestFixedMode(t *testing.T) {
	m, ok := FixedMode(overlay.CoordWorldProjected).CoordMode(nil)
	if !ok || m != overlay.CoordWorldProjected {
		t.Errorf("FixedMode.CoordMode() = (%v, %v)", m, ok)
	}
}

func TestReadArgs(t *testing.T) {
	if _, ok := readPos(nil); ok {
		t.Error("readPos(nil) ok")
	}
	pos := overlay.Vec4{X: 1, Y: 2, Z: 3, W: 4}
	if got, ok := readPos(unsafe.Pointer(&pos)); !ok || got != pos {
		t.Errorf("readPos() = (%v, %v)", got, ok)
	}

	if readOffset(nil) != nil {
		t.Error("readOffset(nil) != nil")
	}
	off := overlay.Vec2{X: -1, Y: 5}
	got := readOffset(unsafe.Pointer(&off))
	off.X = 100
	if got == nil || *got != (overlay.Vec2{X: -1, Y: 5}) {
		t.Errorf("readOffset() = %v, want a copy of (-1, 5)", got)
	}
}
