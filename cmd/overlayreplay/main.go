// Command overlayreplay replays recorded host draw calls through the
// overlay pipeline and writes the rendered overlay as a PNG.
//
// Usage:
//
//	overlayreplay run scene.toml --out frame.png --producers 4
//	overlayreplay project --mode Normalized4K --pos 1920,1080,0 --physical 2560x1440
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
