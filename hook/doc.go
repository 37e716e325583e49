// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package hook exposes the overlay interceptors as C-ABI entry points and
// installs them over the host's two text routines.
//
// Symbol resolution and trampoline installation are supplied by the
// embedder through Resolver and Detour; the active coordinate mode of a
// call is read from the host draw context through a TargetReader.
//
//	h, err := hook.Install(resolver, detour, overlay.NewInterceptor(overlay.DefaultQueue()),
//	    hook.WithTargetReader(reader),
//	)
//	if err != nil {
//	    log.Fatal(err) // the overlay cannot run without its hooks
//	}
//	defer h.Close()
//
// Entry points are built with github.com/ebitengine/purego and are only
// available on platforms it supports callbacks for.
package hook
