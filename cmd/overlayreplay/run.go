package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/internal/replay"
	"github.com/gogpu/overlay/layer"
	"github.com/gogpu/overlay/text"
)

type runFlags struct {
	out       string
	producers int
	font      string
	index     int
}

func newRunCommand() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run <scene.toml>",
		Short: "Replay a scene and write the last frame as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.out, "out", "o", "frame.png", "output PNG file")
	cmd.Flags().IntVarP(&f.producers, "producers", "p", 1, "goroutines issuing draw calls")
	cmd.Flags().StringVar(&f.font, "font", "", "TTF/TTC font file (default: Go Regular)")
	cmd.Flags().IntVar(&f.index, "font-index", 0, "font index inside a TTC collection")
	return cmd
}

func runScene(cmd *cobra.Command, path string, f runFlags) error {
	scene, err := replay.Load(path)
	if err != nil {
		return err
	}

	src, err := loadFont(f.font, f.index)
	if err != nil {
		return err
	}
	defer src.Close()

	l, err := layer.New(src)
	if err != nil {
		return err
	}
	defer l.Close()

	p, err := replay.NewPlayer(scene, replay.WithProducers(f.producers))
	if err != nil {
		return err
	}
	res, err := p.Run(cmd.Context(), l)
	if err != nil {
		return err
	}
	if err := l.SavePNG(f.out); err != nil {
		return err
	}

	overlay.Logger().Info("replay finished",
		"frames", len(res.Frames), "drawn", res.Drawn(),
		"pushed", res.Queue.Pushed, "evicted", res.Queue.Evicted, "out", f.out)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d frames, %d surfaces drawn -> %s\n", len(res.Frames), res.Drawn(), f.out)
	return err
}

func loadFont(path string, index int) (*text.FontSource, error) {
	if path == "" {
		return text.NewFontSource(goregular.TTF)
	}
	return text.LoadOverlayFont(path, text.WithCollectionIndex(index))
}
