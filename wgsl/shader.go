package wgsl

import (
	"fmt"

	rl "github.com/gogpu/raylib"
	"github.com/gogpu/raylib/rlgl"
)

// ComputeShader is a linked compute program.
type ComputeShader struct {
	ID        uint32
	Workgroup [3]uint32

	bindings map[Binding]uint32
}

// Load compiles and links p on the current GL context. It must run on the
// thread that owns the context, after InitWindow.
func (p *Program) Load() (ComputeShader, error) {
	if v := rlgl.GetVersion(); !v.SupportsCompute() {
		return ComputeShader{}, fmt.Errorf("%w (context is %s)", ErrUnsupported, v)
	}
	shaderID := rlgl.CompileShader(p.GLSL, rlgl.ComputeShader)
	if shaderID == 0 {
		return ComputeShader{}, fmt.Errorf("%w: entry point %s", ErrCompile, p.EntryPoint)
	}
	id := rlgl.LoadComputeShaderProgram(shaderID)
	if id == 0 {
		return ComputeShader{}, fmt.Errorf("%w: entry point %s", ErrLink, p.EntryPoint)
	}
	rl.Logger().Info("wgsl: compute shader loaded", "entry", p.EntryPoint, "id", id)
	return ComputeShader{ID: id, Workgroup: p.Workgroup, bindings: p.Bindings}, nil
}

// Bind attaches storage buffer buffer to binding b.
func (s ComputeShader) Bind(buffer uint32, b Binding) error {
	slot, ok := s.bindings[b]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBinding, b)
	}
	rlgl.BindShaderBuffer(buffer, slot)
	return nil
}

// Dispatch runs x*y*z workgroups.
func (s ComputeShader) Dispatch(x, y, z uint32) {
	rlgl.EnableShader(s.ID)
	rlgl.ComputeShaderDispatch(x, y, z)
	rlgl.DisableShader()
}

// Unload deletes the program.
func (s ComputeShader) Unload() {
	if s.ID != 0 {
		rlgl.UnloadShaderProgram(s.ID)
	}
}
