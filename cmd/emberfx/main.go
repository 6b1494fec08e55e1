// emberfx is a preview tool for ember particle presets.
//
// Usage:
//
//	emberfx list                 - List available presets
//	emberfx play <preset>        - Open a window and play a preset
//
// Global flags:
//
//	--presets <path>  - Load extra presets from a YAML file
//	--verbose         - Enable debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/emberkit/ember"
)

var (
	flagPresetFile string
	flagVerbose    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "emberfx",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "emberfx",
	Short: "Preview ember particle presets",
	Long: `emberfx opens a window and plays particle presets, either the
built-in ones or presets loaded from a YAML pack.

Examples:
  emberfx list
  emberfx play explosion
  emberfx play fire --scale 2
  emberfx play explosion --color '#33ccff' --color '#d0f8ff'
  emberfx play embers --presets ./effects.yaml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
			ember.SetDebug(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPresetFile, "presets", "", "Path to a YAML preset pack")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}

// newSystem builds a System with the preset pack from --presets applied.
func newSystem() (*ember.System, error) {
	system := ember.NewSystem()
	if flagPresetFile != "" {
		if err := system.LoadPresetFile(flagPresetFile); err != nil {
			return nil, err
		}
		logger.Debug("loaded preset pack", "path", flagPresetFile)
	}
	return system, nil
}
