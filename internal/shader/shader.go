// Package shader checks WGSL sources with naga before they reach the GPU.
//
// A source passes Check when it parses and lowers to naga IR with every
// identifier and type resolved, and the IR passes naga's validator. The
// validator does not enforce every WGSL typing rule; a constructor with too
// few components, for one, is accepted.
package shader

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/samples/internal/cache"
	"github.com/gogpu/wgpu"
)

var (
	// ErrParse is returned when a WGSL source does not parse.
	ErrParse = errors.New("shader: parse failed")

	// ErrInvalid is returned when a parsed source fails lowering or validation.
	ErrInvalid = errors.New("shader: invalid module")

	// ErrMissingEntryPoint is returned by NewModule when a required entry
	// point is not declared by the source.
	ErrMissingEntryPoint = errors.New("shader: missing entry point")
)

// checked holds validated modules by source digest.
var checked = cache.New[[sha256.Size]byte, *Info](64)

// EntryPoint is a shader entry point declared by a module.
type EntryPoint struct {
	Name  string
	Stage ir.ShaderStage
}

// Info describes a validated module.
type Info struct {
	EntryPoints []EntryPoint
}

// Has reports whether the module declares an entry point named name.
func (i *Info) Has(name string) bool {
	return slices.ContainsFunc(i.EntryPoints, func(ep EntryPoint) bool {
		return ep.Name == name
	})
}

// Check parses, lowers and validates src. Results for successful checks are
// cached, so checking the same source twice is cheap.
func Check(src string) (*Info, error) {
	return checked.GetOrCreate(sha256.Sum256([]byte(src)), func() (*Info, error) {
		return check(src)
	})
}

func check(src string) (*Info, error) {
	ast, err := naga.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i := range verrs {
			errs[i] = verrs[i]
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	info := &Info{EntryPoints: make([]EntryPoint, 0, len(module.EntryPoints))}
	for _, ep := range module.EntryPoints {
		info.EntryPoints = append(info.EntryPoints, EntryPoint{Name: ep.Name, Stage: ep.Stage})
	}
	return info, nil
}

// CompileSPIRV compiles WGSL source to SPIR-V words. naga validates the
// module as part of compilation.
func CompileSPIRV(src string) ([]uint32, error) {
	b, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words, nil
}

// NewModule validates src, checks that it declares every name in
// entryPoints and creates a shader module from it on device.
func NewModule(device *wgpu.Device, label, src string, entryPoints ...string) (*wgpu.ShaderModule, error) {
	info, err := Check(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	for _, name := range entryPoints {
		if !info.Has(name) {
			return nil, fmt.Errorf("%s: %w: %q", label, ErrMissingEntryPoint, name)
		}
	}
	return device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: label,
		WGSL:  src,
	})
}
