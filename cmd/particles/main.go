package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/san-kum/particles/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configFile string
	preset     string

	// overrides, applied only when set on the command line
	particles  int
	fps        int
	seed       int64
	steps      int
	trailDepth int
	scheme     string
	friction   string
	width      int
	height     int
	cursor     bool

	// window
	showFPS bool
	// tui
	theme  string
	tuiFPS int
	// render
	renderFrames int
	out          string
	every        int
	scale        int
	// stats
	statsFrames int
	runs        int
	// config
	savePath string
)

// main registers commands and flags and runs the window when no subcommand
// is given. It exits with status 1 on error.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "particles",
		Short: "random-walk particle animation",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logrus.SetLevel(level)
			return nil
		},
		RunE:         runWindow,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&particles, "particles", config.DefaultParticles, "number of particles")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.IntVar(&steps, "steps", config.DefaultStepsPerFrame, "physics steps per frame")
	pf.IntVar(&trailDepth, "trail-depth", config.DefaultTrailDepth, "positions kept per trail")
	pf.StringVar(&scheme, "scheme", string(config.SchemePlain), "trail colour scheme")
	pf.StringVar(&friction, "friction", "none", "friction model (none, linear, quadratic)")
	pf.IntVar(&width, "width", config.DefaultWidth, "window width")
	pf.IntVar(&height, "height", config.DefaultHeight, "window height")
	pf.BoolVar(&cursor, "cursor", false, "show the keyboard-driven cursor")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run in a native window",
		RunE:  runWindow,
	}
	rootCmd.Flags().BoolVar(&showFPS, "show-fps", false, "draw the frame counter")
	windowCmd.Flags().BoolVar(&showFPS, "show-fps", false, "draw the frame counter")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "sidebar theme")
	tuiCmd.Flags().IntVar(&tuiFPS, "tui-fps", 30, "terminal refresh rate")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render frames to a gif, png or svg file",
		RunE:  runRender,
	}
	renderCmd.Flags().IntVar(&renderFrames, "frames", 300, "frames to render")
	renderCmd.Flags().StringVarP(&out, "out", "o", "particles.gif", "output file (.gif, .png, .svg)")
	renderCmd.Flags().IntVar(&every, "every", 2, "keep one gif frame out of every")
	renderCmd.Flags().IntVar(&scale, "scale", 2, "gif downscale factor")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run headless and print speed and bounce statistics",
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&statsFrames, "frames", 1000, "frames per run")
	statsCmd.Flags().IntVar(&runs, "runs", 1, "runs with consecutive seeds")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  printConfig,
	}
	configCmd.Flags().StringVar(&savePath, "save", "", "also write it to this file")

	rootCmd.AddCommand(windowCmd, tuiCmd, renderCmd, statsCmd, presetsCmd, configCmd)
	return rootCmd
}

// buildConfig resolves the configuration: preset, then config file, then
// flags changed on the command line.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.Preset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("particles") {
		cfg.Particles = particles
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("steps") {
		cfg.StepsPerFrame = steps
	}
	if flags.Changed("trail-depth") {
		cfg.Trail.Depth = trailDepth
	}
	if flags.Changed("scheme") {
		cfg.Color.Scheme = config.ColorScheme(scheme)
	}
	if flags.Changed("friction") {
		if friction == "none" {
			cfg.Engine.Friction.Enabled = false
		} else {
			cfg.Engine.Friction.Enabled = true
			cfg.Engine.Friction.Type = config.FrictionType(friction)
		}
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("cursor") {
		cfg.Cursor.Enabled = cursor
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logrus.Debugf("using seed %d", cfg.Seed)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
