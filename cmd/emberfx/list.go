package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available presets",
	Long:  `Shows the built-in presets plus any loaded with --presets.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	system, err := newSystem()
	if err != nil {
		return err
	}
	defer system.Destroy()

	fmt.Println("Available presets:")
	for _, name := range system.PresetNames() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Run 'emberfx play <preset>' to preview one.")
	return nil
}
