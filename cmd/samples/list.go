package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/samples"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available samples",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	defs := samples.Definitions()
	out := cmd.OutOrStdout()

	if len(defs) == 0 {
		fmt.Fprintln(out, "No samples available.")
		return
	}

	width := len("NAME")
	for _, d := range defs {
		width = max(width, len(d.Name))
	}

	fmt.Fprintf(out, "%-*s  %s\n", width, "NAME", "DESCRIPTION")
	for _, d := range defs {
		fmt.Fprintf(out, "%-*s  %s\n", width, d.Name, d.Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'samples run <name>' to open a sample.")
}
