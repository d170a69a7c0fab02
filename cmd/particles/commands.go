package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/particles/internal/config"
	"github.com/san-kum/particles/internal/export"
	"github.com/san-kum/particles/internal/metrics"
	"github.com/san-kum/particles/internal/render"
	"github.com/san-kum/particles/internal/sim"
	"github.com/san-kum/particles/internal/tui"
	"github.com/san-kum/particles/internal/window"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, err := sim.New(cfg)
	if err != nil {
		return err
	}

	w, err := window.Open(window.Options{Width: cfg.Window.Width, Height: cfg.Window.Height, ShowFPS: showFPS})
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, cancel := signalContext(cmd)
	defer cancel()
	return s.Run(ctx, w)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, err := sim.New(cfg)
	if err != nil {
		return err
	}
	rec := metrics.NewRecorder(0)
	s.AddObserver(rec)

	ctx, cancel := signalContext(cmd)
	defer cancel()
	return tui.Run(ctx, s, rec, tui.Options{Theme: theme, FPS: tuiFPS})
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderFrames < 1 {
		return fmt.Errorf("frames must be positive, got %d", renderFrames)
	}
	ext := strings.ToLower(filepath.Ext(out))
	switch ext {
	case ".gif", ".png", ".svg":
	default:
		return fmt.Errorf("unsupported output format %q (want .gif, .png or .svg)", ext)
	}
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if ext == ".gif" {
		if limit := min(cfg.Window.Width, cfg.Window.Height); scale < 1 || scale > limit {
			return fmt.Errorf("scale must be between 1 and %d for a %dx%d window, got %d",
				limit, cfg.Window.Width, cfg.Window.Height, scale)
		}
	}
	s, err := sim.New(cfg)
	if err != nil {
		return err
	}
	s.SetFrameDelay(0)

	ctx, cancel := signalContext(cmd)
	defer cancel()

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".gif":
		g := export.NewGIF(export.GIFOptions{Frames: renderFrames, Every: every, Scale: scale, FPS: cfg.FPS})
		if err := s.Run(ctx, g); err != nil {
			return err
		}
		if err := g.Close(f); err != nil {
			return err
		}
	case ".png":
		if err := s.Headless(ctx, renderFrames); err != nil {
			return err
		}
		if err := export.WritePNG(f, s.Canvas().Image()); err != nil {
			return err
		}
	case ".svg":
		if err := s.Headless(ctx, renderFrames); err != nil {
			return err
		}
		svg := export.NewSVG(cfg.Window.Width, cfg.Window.Height)
		// frame 0 always clears, so the document holds exactly the final state
		render.NewRenderer(cfg).Render(svg, s.Store(), 0)
		if _, err := svg.WriteTo(f); err != nil {
			return err
		}
	}

	logrus.Infof("wrote %s (%d frames)", out, s.FrameIndex())
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsFrames < 1 || runs < 1 {
		return fmt.Errorf("frames and runs must be positive")
	}
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	recs := make([]*metrics.Recorder, runs)
	seeds := make([]int64, runs)
	err = sim.NewBatch(cfg, runs).Run(ctx, statsFrames, func(run int, seed int64) sim.Observer {
		recs[run] = metrics.NewRecorder(statsFrames)
		seeds[run] = seed
		return recs[run]
	})
	if err != nil {
		return err
	}

	o := cmd.OutOrStdout()
	fmt.Fprintf(o, "particles: %d  frames: %d  runs: %d\n\n", cfg.Particles, statsFrames, runs)
	if h := recs[0].History("mean_speed"); len(h) > 1 {
		fmt.Fprintln(o, asciigraph.Plot(h,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("mean speed (seed %d)", seeds[0])),
		))
		fmt.Fprintln(o)
		if period, ok := metrics.DominantPeriod(h); ok {
			fmt.Fprintf(o, "dominant period: %.1f frames\n\n", period)
		}
	}

	names := recs[0].Names()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SEED\t%s\n", strings.ToUpper(strings.Join(names, "\t")))
	for i, rec := range recs {
		sum := rec.Summary()
		row := make([]string, len(names))
		for j, n := range names {
			row[j] = fmt.Sprintf("%.2f", sum[n])
		}
		fmt.Fprintf(w, "%d\t%s\n", seeds[i], strings.Join(row, "\t"))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPARTICLES\tTRAIL\tDEPTH\tSPRITE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\n", name, p.Particles, p.Trail.Type, p.Trail.Depth, p.Sprite.Size)
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			return err
		}
		logrus.Infof("saved config to %s", savePath)
	}
	return config.Encode(cmd.OutOrStdout(), cfg)
}
