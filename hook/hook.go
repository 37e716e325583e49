// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hook

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/overlay"
)

// Default offsets of the host's text routines from the module base.
const (
	DrawTextRVA           uintptr = 0x264efc0
	DrawTextWithOffsetRVA uintptr = 0x264ef20
)

// Sentinel errors for hook package.
var (
	ErrNilResolver         = errors.New("hook: nil resolver")
	ErrNilDetour           = errors.New("hook: nil detour")
	ErrNilInterceptor      = errors.New("hook: nil interceptor")
	ErrNoTargetReader      = errors.New("hook: no target reader configured")
	ErrUnsupportedPlatform = errors.New("hook: C callbacks are not supported on this platform")
)

// Resolver maps a routine's offset from the host module base to its
// address in the running process.
type Resolver interface {
	Resolve(rva uintptr) (uintptr, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(rva uintptr) (uintptr, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(rva uintptr) (uintptr, error) { return f(rva) }

// Detour redirects calls of the routine at target to the C function at
// entry. The original routine is never called afterwards.
type Detour interface {
	Attach(target, entry uintptr) error
}

// Detacher is implemented by detours that can undo Attach.
type Detacher interface {
	Detach(target uintptr) error
}

// routine describes one intercepted host routine.
type routine struct {
	name  string
	rva   uintptr
	entry uintptr
}

// Hooks is the set of installed entry points. Calls arriving through the
// entry points are dispatched to the Hooks most recently installed.
type Hooks struct {
	ic     *overlay.Interceptor
	reader TargetReader

	det      Detour
	attached []uintptr
}

// active receives calls from the entry points.
var active atomic.Pointer[Hooks]

// Install creates the entry points, resolves both host routines and
// attaches the entry points to them. The first failure aborts the
// installation and is returned; routines attached before the failure are
// detached when det implements Detacher.
func Install(res Resolver, det Detour, ic *overlay.Interceptor, opts ...Option) (*Hooks, error) {
	switch {
	case res == nil:
		return nil, ErrNilResolver
	case det == nil:
		return nil, ErrNilDetour
	case ic == nil:
		return nil, ErrNilInterceptor
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.reader == nil {
		return nil, ErrNoTargetReader
	}

	eps, err := o.entryPoints()
	if err != nil {
		return nil, err
	}

	h := &Hooks{ic: ic, reader: o.reader, det: det}
	// Calls may arrive as soon as the first routine is attached.
	prev := active.Swap(h)

	log := overlay.Logger()
	for _, r := range []routine{
		{name: "DrawText", rva: o.drawTextRVA, entry: eps.drawText},
		{name: "DrawTextWithOffset", rva: o.drawTextWithOffsetRVA, entry: eps.drawTextWithOffset},
	} {
		va, err := res.Resolve(r.rva)
		if err != nil {
			h.rollback(prev)
			return nil, fmt.Errorf("hook: resolve %s (rva %#x): %w", r.name, r.rva, err)
		}
		if err := det.Attach(va, r.entry); err != nil {
			h.rollback(prev)
			return nil, fmt.Errorf("hook: attach %s at %#x: %w", r.name, va, err)
		}
		h.attached = append(h.attached, va)
		log.Info("hook: attached", "routine", r.name, "rva", fmt.Sprintf("%#x", r.rva), "va", fmt.Sprintf("%#x", va))
	}
	return h, nil
}

// rollback undoes a partial installation.
func (h *Hooks) rollback(prev *Hooks) {
	h.detach()
	active.CompareAndSwap(h, prev)
}

func (h *Hooks) detach() error {
	d, ok := h.det.(Detacher)
	if !ok {
		h.attached = nil
		return nil
	}
	var errs []error
	for _, va := range h.attached {
		if err := d.Detach(va); err != nil {
			errs = append(errs, fmt.Errorf("hook: detach %#x: %w", va, err))
		}
	}
	h.attached = nil
	return errors.Join(errs...)
}

// Close stops dispatching calls to h and detaches its routines when the
// detour supports it. Close is idempotent.
func (h *Hooks) Close() error {
	active.CompareAndSwap(h, nil)
	return h.detach()
}
