package wgsl

import (
	"errors"
	"strings"
	"testing"
)

const doubleShader = `
struct Values {
    data: array<f32>,
};

@group(0) @binding(0) var<storage, read> input: Values;
@group(0) @binding(1) var<storage, read_write> output: Values;
@group(1) @binding(2) var<storage, read_write> scratch: Values;

@compute @workgroup_size(64, 2, 1)
fn double_it(@builtin(global_invocation_id) id: vec3<u32>) {
    output.data[id.x] = input.data[id.x] * 2.0;
    scratch.data[id.x] = 1.0;
}
`

func TestTranslate(t *testing.T) {
	p, err := Translate(doubleShader)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if p.EntryPoint != "double_it" {
		t.Errorf("EntryPoint = %q", p.EntryPoint)
	}
	if p.Workgroup != [3]uint32{64, 2, 1} {
		t.Errorf("Workgroup = %v", p.Workgroup)
	}

	want := map[Binding]uint32{
		{0, 0}: 0,
		{0, 1}: 1,
		{1, 2}: 18,
	}
	if len(p.Bindings) != len(want) {
		t.Errorf("Bindings = %v", p.Bindings)
	}
	for b, slot := range want {
		if got, ok := p.Bindings[b]; !ok || got != slot {
			t.Errorf("Bindings[%s] = %d, %v; want %d", b, got, ok, slot)
		}
	}

	for _, s := range []string{
		"#version 430",
		"local_size_x = 64, local_size_y = 2, local_size_z = 1",
		"binding = 0",
		"binding = 1",
		"binding = 18",
		"void main()",
	} {
		if !strings.Contains(p.GLSL, s) {
			t.Errorf("GLSL lacks %q:\n%s", s, p.GLSL)
		}
	}
}

func TestTranslateWithBinding(t *testing.T) {
	p, err := Translate(doubleShader, WithBinding(Binding{Group: 1, Binding: 2}, 5))
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if p.Bindings[Binding{1, 2}] != 5 {
		t.Errorf("override ignored: %v", p.Bindings)
	}
	if !strings.Contains(p.GLSL, "binding = 5") || strings.Contains(p.GLSL, "binding = 18") {
		t.Errorf("GLSL does not use the override:\n%s", p.GLSL)
	}
}

func TestTranslateErrors(t *testing.T) {
	const fragment = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`
	const farBinding = `
struct Values {
    data: array<f32>,
};

@group(15) @binding(16) var<storage, read_write> v: Values;

@compute @workgroup_size(1)
fn cs_main() {
    v.data[0] = 1.0;
}
`
	tests := []struct {
		name string
		src  string
		opts []Option
		want error
	}{
		{"no compute entry", fragment, nil, ErrNoComputeEntry},
		{"unknown entry", doubleShader, []Option{WithEntryPoint("triple_it")}, ErrNoComputeEntry},
		{"binding out of range", farBinding, nil, ErrBindingRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Translate(tt.src, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	_, err := Translate("fn broken( {")
	if err == nil || !strings.HasPrefix(err.Error(), "wgsl:") {
		t.Errorf("syntax error = %v", err)
	}
}

func TestComputeShaderBindUnknown(t *testing.T) {
	var cs ComputeShader
	if err := cs.Bind(1, Binding{Group: 2}); !errors.Is(err, ErrUnknownBinding) {
		t.Errorf("Bind = %v, want ErrUnknownBinding", err)
	}
	// Unloading the zero shader must not reach the library.
	cs.Unload()
}
