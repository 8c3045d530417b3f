// Package wgsl runs WGSL compute shaders on raylib's OpenGL 4.3 backend.
//
// Translate turns WGSL into GLSL 4.30 with naga and records where each
// resource binding ended up. Load compiles the result through rlgl:
//
//	prog, err := wgsl.Translate(src)
//	if err != nil { ... }
//	cs, err := prog.Load()
//	if err != nil { ... }
//	defer cs.Unload()
//	_ = cs.Bind(ssbo, wgsl.Binding{Group: 0, Binding: 0})
//	cs.Dispatch(n/64, 1, 1)
//
// WGSL addresses resources by (group, binding) while GL has one flat list
// of binding points, so each pair is flattened to group*16 + binding
// unless WithBinding says otherwise.
package wgsl

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"

	rl "github.com/gogpu/raylib"
)

// BindingsPerGroup is the stride between groups in the flattened GL
// binding space.
const BindingsPerGroup = 16

var (
	// ErrNoComputeEntry is returned when the module has no compute entry
	// point, or none with the requested name.
	ErrNoComputeEntry = errors.New("wgsl: no compute entry point")

	// ErrBindingRange is returned when a flattened binding exceeds 255.
	ErrBindingRange = errors.New("wgsl: binding out of range")

	// ErrCompile is returned by Load when the GL compiler rejects the
	// generated GLSL.
	ErrCompile = errors.New("wgsl: compute shader compilation failed")

	// ErrLink is returned by Load when the program fails to link.
	ErrLink = errors.New("wgsl: compute program link failed")

	// ErrUnsupported is returned by Load when the GL context is older than
	// 4.3.
	ErrUnsupported = errors.New("wgsl: compute shaders need OpenGL 4.3")

	// ErrUnknownBinding is returned by Bind for a binding the shader does
	// not declare.
	ErrUnknownBinding = errors.New("wgsl: unknown binding")
)

// Binding is a WGSL @group/@binding pair.
type Binding struct {
	Group   uint32
	Binding uint32
}

func (b Binding) String() string {
	return fmt.Sprintf("@group(%d) @binding(%d)", b.Group, b.Binding)
}

// Program is a translated compute shader.
type Program struct {
	// GLSL is the generated GLSL 4.30 source.
	GLSL string

	// EntryPoint is the WGSL name of the compiled entry point.
	EntryPoint string

	// Workgroup is the @workgroup_size of the entry point.
	Workgroup [3]uint32

	// Bindings maps every resource binding of the module to its GL
	// binding point.
	Bindings map[Binding]uint32
}

// Option configures Translate.
type Option func(*options)

type options struct {
	entryPoint string
	overrides  map[Binding]uint8
}

// WithEntryPoint selects the compute entry point by name. By default the
// first compute entry point is used.
func WithEntryPoint(name string) Option {
	return func(o *options) { o.entryPoint = name }
}

// WithBinding places b at GL binding point glBinding instead of the
// flattened default.
func WithBinding(b Binding, glBinding uint8) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[Binding]uint8)
		}
		o.overrides[b] = glBinding
	}
}

// Translate parses, lowers and validates src, then emits GLSL 4.30 for its
// compute entry point.
func Translate(src string, opts ...Option) (*Program, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ast, err := naga.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("wgsl: %w", err)
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, fmt.Errorf("wgsl: lower: %w", err)
	}
	if err := validate(module); err != nil {
		return nil, err
	}

	entry, err := computeEntry(module, o.entryPoint)
	if err != nil {
		return nil, err
	}

	bindings, bindingMap, err := flattenBindings(module, o.overrides)
	if err != nil {
		return nil, err
	}

	code, _, err := glsl.Compile(module, glsl.Options{
		LangVersion: glsl.Version430,
		EntryPoint:  entry.Name,
		BindingMap:  bindingMap,
	})
	if err != nil {
		return nil, fmt.Errorf("wgsl: glsl: %w", err)
	}

	rl.Logger().Debug("wgsl: translated compute shader",
		"entry", entry.Name,
		"workgroup", entry.Workgroup,
		"bindings", len(bindings))

	return &Program{
		GLSL:       code,
		EntryPoint: entry.Name,
		Workgroup:  entry.Workgroup,
		Bindings:   bindings,
	}, nil
}

func validate(module *ir.Module) error {
	verrs, err := naga.Validate(module)
	if err != nil {
		return fmt.Errorf("wgsl: validate: %w", err)
	}
	if len(verrs) == 0 {
		return nil
	}
	errs := make([]error, len(verrs))
	for i, ve := range verrs {
		errs[i] = ve
	}
	return fmt.Errorf("wgsl: validate: %w", errors.Join(errs...))
}

func computeEntry(module *ir.Module, name string) (*ir.EntryPoint, error) {
	for i := range module.EntryPoints {
		ep := &module.EntryPoints[i]
		if ep.Stage != ir.StageCompute {
			continue
		}
		if name == "" || ep.Name == name {
			return ep, nil
		}
	}
	if name != "" {
		return nil, fmt.Errorf("%w named %q", ErrNoComputeEntry, name)
	}
	return nil, ErrNoComputeEntry
}

func flattenBindings(module *ir.Module, overrides map[Binding]uint8) (map[Binding]uint32, map[glsl.BindingMapKey]uint8, error) {
	bindings := make(map[Binding]uint32)
	bindingMap := make(map[glsl.BindingMapKey]uint8)
	for _, gv := range module.GlobalVariables {
		if gv.Binding == nil {
			continue
		}
		b := Binding{Group: gv.Binding.Group, Binding: gv.Binding.Binding}
		slot, ok := overrides[b]
		if !ok {
			flat := b.Group*BindingsPerGroup + b.Binding
			if b.Binding >= BindingsPerGroup || flat > 255 {
				return nil, nil, fmt.Errorf("%w: %s (%s)", ErrBindingRange, b, gv.Name)
			}
			slot = uint8(flat)
		}
		bindings[b] = uint32(slot)
		bindingMap[glsl.BindingMapKey{Group: b.Group, Binding: b.Binding}] = slot
	}
	return bindings, bindingMap, nil
}
