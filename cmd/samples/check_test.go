package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/samples"
	"github.com/gogpu/samples/internal/shader"
)

func TestCheckRegisteredSamples(t *testing.T) {
	var buf bytes.Buffer
	checkCmd.SetOut(&buf)
	defer checkCmd.SetOut(nil)

	if err := runCheck(checkCmd, nil); err != nil {
		t.Fatalf("runCheck() error = %v\n%s", err, buf.String())
	}

	out := buf.String()
	for _, want := range []string{"ok    triangle/triangle.wgsl", "ok    flycam/flycam.wgsl", "ok    texture/texture.wgsl"} {
		if !strings.Contains(out, want) {
			t.Errorf("check output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckUnknownSample(t *testing.T) {
	err := runCheck(checkCmd, []string{"no-such-sample"})
	if !errors.Is(err, samples.ErrUnknownSample) {
		t.Errorf("runCheck() error = %v, want ErrUnknownSample", err)
	}
}

func TestCheckShader(t *testing.T) {
	d, err := samples.Lookup("triangle")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	words, err := checkShader(d.Shaders["triangle.wgsl"])
	if err != nil {
		t.Fatalf("checkShader() error = %v", err)
	}
	if words < 5 {
		t.Errorf("checkShader() = %d words, want at least the SPIR-V header", words)
	}

	_, err = checkShader(`fn f() { let x = missing; }`)
	if !errors.Is(err, shader.ErrInvalid) {
		t.Errorf("checkShader(unresolved) error = %v, want ErrInvalid", err)
	}
}
