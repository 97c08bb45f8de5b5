package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gogpu/samples"
	"github.com/gogpu/samples/internal/shader"
)

var checkCmd = &cobra.Command{
	Use:   "check [sample...]",
	Short: "Validate sample shaders without opening a window",
	Long: `Validate the WGSL shaders of the named samples, or of every sample when
none is given, and compile each one to SPIR-V. No window or GPU is needed.

Examples:
  samples check
  samples check flycam texture`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	defs, err := selectDefinitions(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, d := range defs {
		for _, name := range slices.Sorted(maps.Keys(d.Shaders)) {
			words, err := checkShader(d.Shaders[name])
			if err != nil {
				failed++
				fmt.Fprintf(out, "FAIL  %s/%s: %v\n", d.Name, name, err)
				continue
			}
			fmt.Fprintf(out, "ok    %s/%s (%d SPIR-V words)\n", d.Name, name, words)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d shader(s) failed", failed)
	}
	return nil
}

func selectDefinitions(names []string) ([]samples.Definition, error) {
	if len(names) == 0 {
		return samples.Definitions(), nil
	}
	defs := make([]samples.Definition, 0, len(names))
	for _, n := range names {
		d, err := samples.Lookup(n)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// checkShader validates src and returns the size of its SPIR-V in words.
func checkShader(src string) (int, error) {
	if _, err := shader.Check(src); err != nil {
		return 0, err
	}
	words, err := shader.CompileSPIRV(src)
	if err != nil {
		return 0, err
	}
	return len(words), nil
}
