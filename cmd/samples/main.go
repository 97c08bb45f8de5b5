// samples runs the bundled GPU samples.
//
// Usage:
//
//	samples list             - List available samples
//	samples run <sample>     - Run a sample in a window
//	samples check [sample..] - Validate sample shaders
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.gogpu-samples/config.yaml,
//	                      then ./configs/samples.yaml, then built-in defaults)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register GPU backends.
	_ "github.com/gogpu/wgpu/hal/allbackends"

	// Register samples.
	_ "github.com/gogpu/samples/demos/flycam"
	_ "github.com/gogpu/samples/demos/texture"
	_ "github.com/gogpu/samples/demos/triangle"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "samples",
	Short: "Run GPU samples built on gogpu/wgpu",
	Long: `samples opens a window and renders one of the bundled GPU samples.

Examples:
  samples list
  samples run triangle
  samples run flycam --present-mode mailbox
  samples run texture --width 800 --height 600
  samples check`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
}
