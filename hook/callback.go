// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows || darwin || freebsd || netbsd || (linux && (amd64 || arm64 || loong64))

package hook

import "github.com/ebitengine/purego"

func newEntryPoints() (entryPoints, error) {
	return entryPoints{
		drawText:           purego.NewCallback(drawTextEntry),
		drawTextWithOffset: purego.NewCallback(drawTextWithOffsetEntry),
	}, nil
}
