package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/samples"
	"github.com/gogpu/samples/config"
	"github.com/gogpu/samples/platform/glfw"
)

var (
	flagWidth        int
	flagHeight       int
	flagPresentModes []string
)

var runCmd = &cobra.Command{
	Use:   "run <sample>",
	Short: "Run a sample",
	Long: `Open a window and render the named sample until the window is closed.

Camera controls (flycam):
  Left mouse   - Hold to look around
  W/A/S/D      - Move

Present modes are tried in order and fall back to fifo:
  fifo, fifo_relaxed, mailbox, immediate

Examples:
  samples run triangle
  samples run flycam --present-mode mailbox --present-mode fifo
  samples run texture --config ./my-samples.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	runCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels (0 = half of the monitor)")
	runCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels (0 = half of the monitor)")
	runCmd.Flags().StringSliceVar(&flagPresentModes, "present-mode", nil, "Preferred present mode; repeat for fallbacks")
}

func runSample(cmd *cobra.Command, args []string) error {
	def, err := samples.Lookup(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'samples list')", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}
	samples.SetLogger(logger)

	opts, err := appOptions(&cfg)
	if err != nil {
		return err
	}

	platform, err := glfw.New()
	if err != nil {
		return err
	}
	return samples.NewApp(platform, def, opts...).Run()
}

// applyFlags overrides config values with flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Window.Height = flagHeight
	}
	if flags.Changed("present-mode") {
		cfg.Surface.PresentModes = flagPresentModes
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
}

func appOptions(cfg *config.Config) ([]samples.AppOption, error) {
	modes, err := cfg.PresentModes()
	if err != nil {
		return nil, err
	}
	clearColor, err := cfg.ClearColor()
	if err != nil {
		return nil, err
	}
	opts := []samples.AppOption{
		samples.WithPresentModes(modes...),
		samples.WithFrameLatency(uint32(cfg.Surface.FrameLatency)),
		samples.WithSettings(samples.Settings{
			ClearColor:        clearColor,
			CameraSensitivity: cfg.Camera.Sensitivity,
			CameraMoveSpeed:   cfg.Camera.MoveSpeed,
		}),
	}
	if cfg.Window.Width > 0 && cfg.Window.Height > 0 {
		opts = append(opts, samples.WithWindowSize(cfg.Window.Width, cfg.Window.Height))
	}
	if cfg.Window.Title != "" {
		opts = append(opts, samples.WithTitle(cfg.Window.Title))
	}
	return opts, nil
}
