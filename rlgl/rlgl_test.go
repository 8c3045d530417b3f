package rlgl

import (
	"errors"
	"testing"
	"unsafe"

	rl "github.com/gogpu/raylib"
	"github.com/gogpu/raylib/internal/bind"
)

func TestLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("descriptors assume 64-bit pointers")
	}
	tests := []struct {
		name  string
		desc  *bind.Type
		goSz  uintptr
		cSize uintptr
	}{
		{"Matrix", cMatrix, unsafe.Sizeof(rl.Matrix{}), 64},
		{"VertexBuffer", cVertexBuffer, unsafe.Sizeof(VertexBuffer{}), 64},
		{"DrawCall", cDrawCall, unsafe.Sizeof(DrawCall{}), 16},
		{"RenderBatch", cRenderBatch, unsafe.Sizeof(RenderBatch{}), 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.desc.Size != tt.cSize {
				t.Errorf("descriptor size = %d, want %d", tt.desc.Size, tt.cSize)
			}
			if tt.goSz != tt.cSize {
				t.Errorf("Go size = %d, want %d", tt.goSz, tt.cSize)
			}
		})
	}
}

func TestGlVersion(t *testing.T) {
	tests := []struct {
		v       GlVersion
		name    string
		compute bool
	}{
		{OpenGL11, "OpenGL 1.1", false},
		{OpenGL33, "OpenGL 3.3", false},
		{OpenGL43, "OpenGL 4.3", true},
		{OpenGLES30, "OpenGL ES 3.0", false},
		{0, "unknown", false},
		{42, "unknown", false},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.name {
			t.Errorf("GlVersion(%d).String() = %q, want %q", int32(tt.v), got, tt.name)
		}
		if got := tt.v.SupportsCompute(); got != tt.compute {
			t.Errorf("GlVersion(%d).SupportsCompute() = %v", int32(tt.v), got)
		}
	}
}

func TestRenderBatchViews(t *testing.T) {
	buffers := [2]VertexBuffer{{ElementCount: 8}, {ElementCount: 16}}
	draws := [4]DrawCall{{Mode: Quads, VertexCount: 4}, {Mode: Triangles, VertexCount: 3, TextureID: 9}}
	b := RenderBatch{BufferCount: 2, VertexBuffer: &buffers[0], Draws: &draws[0], DrawCounter: 2}

	vb := b.VertexBuffers()
	if len(vb) != 2 || vb[1].ElementCount != 16 {
		t.Errorf("VertexBuffers() = %+v", vb)
	}
	dc := b.DrawCalls()
	if len(dc) != 2 || dc[1].TextureID != 9 || dc[0].Mode != Quads {
		t.Errorf("DrawCalls() = %+v", dc)
	}

	var empty RenderBatch
	if empty.VertexBuffers() != nil || empty.DrawCalls() != nil {
		t.Errorf("zero batch has views")
	}
}

func TestData(t *testing.T) {
	p, n := data([]float32{1, 2, 3})
	if p == nil || n != 12 {
		t.Errorf("data(3 floats) = %v, %d", p, n)
	}
	p, n = data([]rl.Vector3{{}, {}})
	if p == nil || n != 24 {
		t.Errorf("data(2 Vector3) = %v, %d", p, n)
	}
	if p, n := data[uint16](nil); p != nil || n != 0 {
		t.Errorf("data(nil) = %v, %d", p, n)
	}
}

func TestCallBeforeLoad(t *testing.T) {
	if rl.IsLoaded() {
		t.Skip("library loaded")
	}
	defer func() {
		err, ok := recover().(error)
		if !ok {
			t.Fatal("PushMatrix did not panic with an error")
		}
		var ce *rl.CallError
		if !errors.As(err, &ce) || ce.Proc != "rlPushMatrix" || !errors.Is(err, rl.ErrNotLoaded) {
			t.Errorf("panic = %v, want ErrNotLoaded for rlPushMatrix", err)
		}
	}()
	PushMatrix()
}

func TestEmptyUploadsSkipNative(t *testing.T) {
	if rl.IsLoaded() {
		t.Skip("library loaded")
	}
	// None of these reach a proc, so they must not panic before Load.
	SetUniform[float32](0, nil)
	UpdateShaderBuffer[uint32](1, nil, 0)
	ReadShaderBuffer[uint32](1, nil, 0)
	UpdateVertexBuffer[float32](1, nil, 0)
	UpdateVertexBufferElements[uint16](1, nil, 0)
	SetVertexAttributeDefault(0, nil, rl.ShaderAttribFloat)
}
