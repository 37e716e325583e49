// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hook

import (
	"sync"
	"unsafe"

	"github.com/gogpu/overlay"
)

// entryPoints holds the C function pointers of the two entry points.
type entryPoints struct {
	drawText           uintptr
	drawTextWithOffset uintptr
}

// defaultEntryPoints creates the process-wide entry points once. C
// callbacks are never released, so they are shared by every Install.
var defaultEntryPoints = sync.OnceValues(newEntryPoints)

// drawTextEntry is the C entry point of the plain text routine:
// void(void *target, float4 *pos, const wchar16 *text).
func drawTextEntry(target, pos, text unsafe.Pointer) uintptr {
	if h := active.Load(); h != nil {
		h.drawText(target, pos, text)
	}
	return 0
}

// drawTextWithOffsetEntry is the C entry point of the offset text routine:
// void(void *target, float4 *pos, float2 *offset, const wchar16 *text).
func drawTextWithOffsetEntry(target, pos, offset, text unsafe.Pointer) uintptr {
	if h := active.Load(); h != nil {
		h.drawTextWithOffset(target, pos, offset, text)
	}
	return 0
}

func (h *Hooks) drawText(target, pos, text unsafe.Pointer) {
	defer recoverCall("DrawText")
	mode, p, ok := h.args(target, pos)
	if !ok {
		return
	}
	h.ic.OnDrawText(mode, p, (*uint16)(text))
}

func (h *Hooks) drawTextWithOffset(target, pos, offset, text unsafe.Pointer) {
	defer recoverCall("DrawTextWithOffset")
	mode, p, ok := h.args(target, pos)
	if !ok {
		return
	}
	h.ic.OnDrawTextWithOffset(mode, p, readOffset(offset), (*uint16)(text))
}

// args reads the mode and position shared by both routines.
func (h *Hooks) args(target, pos unsafe.Pointer) (overlay.CoordMode, overlay.Vec4, bool) {
	p, ok := readPos(pos)
	if !ok {
		overlay.Logger().Debug("hook: call without position")
		return 0, overlay.Vec4{}, false
	}
	mode, ok := h.reader.CoordMode(target)
	if !ok {
		overlay.Logger().Debug("hook: coordinate mode unavailable", "x", p.X, "y", p.Y)
		return 0, overlay.Vec4{}, false
	}
	return mode, p, true
}

// recoverCall keeps a panic from unwinding into host code.
func recoverCall(name string) {
	if v := recover(); v != nil {
		overlay.Logger().Warn("hook: recovered panic in entry point", "routine", name, "panic", v)
	}
}
