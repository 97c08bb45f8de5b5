package shader

import (
	"errors"
	"testing"

	"github.com/gogpu/naga/ir"
)

const fillWGSL = `
@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    let x = f32(idx) * 0.5 - 0.5;
    return vec4<f32>(x, 0.0, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

func TestCheck(t *testing.T) {
	info, err := Check(fillWGSL)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	want := map[string]ir.ShaderStage{
		"vs_main": ir.StageVertex,
		"fs_main": ir.StageFragment,
	}
	if len(info.EntryPoints) != len(want) {
		t.Fatalf("got %d entry points, want %d", len(info.EntryPoints), len(want))
	}
	for _, ep := range info.EntryPoints {
		if stage, ok := want[ep.Name]; !ok || stage != ep.Stage {
			t.Errorf("entry point %q stage %v unexpected", ep.Name, ep.Stage)
		}
	}
	if info.Has("main") {
		t.Error("Has(main) = true, want false")
	}

	again, err := Check(fillWGSL)
	if err != nil {
		t.Fatalf("second Check() error = %v", err)
	}
	if again != info {
		t.Error("second Check() did not return the cached result")
	}
}

func TestCheckParseError(t *testing.T) {
	_, err := Check("fn main( {")
	if !errors.Is(err, ErrParse) {
		t.Errorf("Check() error = %v, want ErrParse", err)
	}
}

func TestCheckInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "unresolved identifier",
			src: `
@vertex
fn vs_main() -> @builtin(position) vec4<f32> {
    return vec4<f32>(offset, 0.0, 0.0, 1.0);
}
`,
		},
		{
			name: "unknown type",
			src: `
@vertex
fn vs_main(@location(0) pos: Position) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Check(tt.src)
			if err == nil {
				t.Fatal("Check() error = nil, want an error")
			}
			if !errors.Is(err, ErrInvalid) && !errors.Is(err, ErrParse) {
				t.Errorf("Check() error = %v, want ErrInvalid or ErrParse", err)
			}
		})
	}
}

func TestCheckErrorsNotCached(t *testing.T) {
	src := `fn f() { let x = missing; }`
	for range 2 {
		if _, err := Check(src); err == nil {
			t.Fatal("Check() error = nil, want an error")
		}
	}
}

func TestCompileSPIRV(t *testing.T) {
	words, err := CompileSPIRV(fillWGSL)
	if err != nil {
		t.Fatalf("CompileSPIRV() error = %v", err)
	}
	if len(words) < 5 {
		t.Fatalf("got %d words, want at least the 5-word header", len(words))
	}
	if words[0] != 0x07230203 {
		t.Errorf("magic = 0x%08x, want 0x07230203", words[0])
	}
}

func TestNewModuleMissingEntryPoint(t *testing.T) {
	_, err := NewModule(nil, "fill", fillWGSL, "vs_main", "cs_main")
	if !errors.Is(err, ErrMissingEntryPoint) {
		t.Errorf("NewModule() error = %v, want ErrMissingEntryPoint", err)
	}
}
