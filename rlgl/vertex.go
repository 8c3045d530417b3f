package rlgl

import (
	"unsafe"

	rl "github.com/gogpu/raylib"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procBegin                      = bind.New("rlBegin", bind.Void, bind.Int)
	procEnd                        = bind.New("rlEnd", bind.Void)
	procVertex2i                   = bind.New("rlVertex2i", bind.Void, bind.Int, bind.Int)
	procVertex2f                   = bind.New("rlVertex2f", bind.Void, bind.Float, bind.Float)
	procVertex3f                   = bind.New("rlVertex3f", bind.Void, bind.Float, bind.Float, bind.Float)
	procTexCoord2f                 = bind.New("rlTexCoord2f", bind.Void, bind.Float, bind.Float)
	procNormal3f                   = bind.New("rlNormal3f", bind.Void, bind.Float, bind.Float, bind.Float)
	procColor4ub                   = bind.New("rlColor4ub", bind.Void, bind.UChar, bind.UChar, bind.UChar, bind.UChar)
	procColor3f                    = bind.New("rlColor3f", bind.Void, bind.Float, bind.Float, bind.Float)
	procColor4f                    = bind.New("rlColor4f", bind.Void, bind.Float, bind.Float, bind.Float, bind.Float)
	procEnableVertexArray          = bind.New("rlEnableVertexArray", bind.Bool, bind.UInt)
	procDisableVertexArray         = bind.New("rlDisableVertexArray", bind.Void)
	procEnableVertexBuffer         = bind.New("rlEnableVertexBuffer", bind.Void, bind.UInt)
	procDisableVertexBuffer        = bind.New("rlDisableVertexBuffer", bind.Void)
	procEnableVertexBufferElement  = bind.New("rlEnableVertexBufferElement", bind.Void, bind.UInt)
	procDisableVertexBufferElement = bind.New("rlDisableVertexBufferElement", bind.Void)
	procEnableVertexAttribute      = bind.New("rlEnableVertexAttribute", bind.Void, bind.UInt)
	procDisableVertexAttribute     = bind.New("rlDisableVertexAttribute", bind.Void, bind.UInt)
	procEnableStatePointer         = bind.Optional("rlEnableStatePointer", bind.Void, bind.Int, bind.Ptr)
	procDisableStatePointer        = bind.Optional("rlDisableStatePointer", bind.Void, bind.Int)
	procLoadVertexArray            = bind.New("rlLoadVertexArray", bind.UInt)
	procUnloadVertexArray          = bind.New("rlUnloadVertexArray", bind.Void, bind.UInt)
	procUnloadVertexBuffer         = bind.New("rlUnloadVertexBuffer", bind.Void, bind.UInt)
	procSetVertexAttributeDivisor  = bind.New("rlSetVertexAttributeDivisor", bind.Void, bind.UInt, bind.Int)
	procDrawVertexArray            = bind.New("rlDrawVertexArray", bind.Void, bind.Int, bind.Int)
	procDrawVertexArrayInstanced   = bind.New("rlDrawVertexArrayInstanced", bind.Void, bind.Int, bind.Int, bind.Int)
)

// Begin starts a primitive of the given mode.
func Begin(mode DrawMode) {
	procBegin.Call(nil, unsafe.Pointer(&mode))
}

// End finishes the current primitive.
func End() {
	procEnd.Call(nil)
}

// Vertex2i submits a 2D vertex with integer coordinates.
func Vertex2i(x, y int32) {
	procVertex2i.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y))
}

// Vertex2f submits a 2D vertex.
func Vertex2f(x, y float32) {
	procVertex2f.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y))
}

// Vertex3f submits a 3D vertex.
func Vertex3f(x, y, z float32) {
	procVertex3f.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z))
}

// TexCoord2f sets the texture coordinate of the next vertex.
func TexCoord2f(x, y float32) {
	procTexCoord2f.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y))
}

// Normal3f sets the normal of the next vertex.
func Normal3f(x, y, z float32) {
	procNormal3f.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z))
}

// Color4ub sets the color of the next vertex.
func Color4ub(r, g, b, a uint8) {
	procColor4ub.Call(nil, unsafe.Pointer(&r), unsafe.Pointer(&g), unsafe.Pointer(&b), unsafe.Pointer(&a))
}

// Color3f sets the color of the next vertex from normalized floats.
func Color3f(x, y, z float32) {
	procColor3f.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z))
}

// Color4f sets the color and alpha of the next vertex from normalized floats.
func Color4f(x, y, z, w float32) {
	procColor4f.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z), unsafe.Pointer(&w))
}

// EnableVertexArray binds a vertex array object. It reports false when VAOs are unsupported.
func EnableVertexArray(vaoID uint32) bool {
	var r bool
	procEnableVertexArray.Call(unsafe.Pointer(&r), unsafe.Pointer(&vaoID))
	return r
}

// DisableVertexArray unbinds the vertex array object.
func DisableVertexArray() {
	procDisableVertexArray.Call(nil)
}

// EnableVertexBuffer binds a vertex buffer.
func EnableVertexBuffer(id uint32) {
	procEnableVertexBuffer.Call(nil, unsafe.Pointer(&id))
}

// DisableVertexBuffer unbinds the vertex buffer.
func DisableVertexBuffer() {
	procDisableVertexBuffer.Call(nil)
}

// EnableVertexBufferElement binds an element buffer.
func EnableVertexBufferElement(id uint32) {
	procEnableVertexBufferElement.Call(nil, unsafe.Pointer(&id))
}

// DisableVertexBufferElement unbinds the element buffer.
func DisableVertexBufferElement() {
	procDisableVertexBufferElement.Call(nil)
}

// EnableVertexAttribute enables a vertex attribute.
func EnableVertexAttribute(index uint32) {
	procEnableVertexAttribute.Call(nil, unsafe.Pointer(&index))
}

// DisableVertexAttribute disables a vertex attribute.
func DisableVertexAttribute(index uint32) {
	procDisableVertexAttribute.Call(nil, unsafe.Pointer(&index))
}

// EnableStatePointer enables a client state pointer. Only OpenGL 1.1 builds export it.
func EnableStatePointer(vertexAttribType int32, buffer unsafe.Pointer) {
	procEnableStatePointer.Call(nil, unsafe.Pointer(&vertexAttribType), unsafe.Pointer(&buffer))
}

// DisableStatePointer disables a client state pointer. Only OpenGL 1.1 builds export it.
func DisableStatePointer(vertexAttribType int32) {
	procDisableStatePointer.Call(nil, unsafe.Pointer(&vertexAttribType))
}

// LoadVertexArray creates a vertex array object.
func LoadVertexArray() uint32 {
	var r uint32
	procLoadVertexArray.Call(unsafe.Pointer(&r))
	return r
}

// UnloadVertexArray deletes a vertex array object.
func UnloadVertexArray(vaoID uint32) {
	procUnloadVertexArray.Call(nil, unsafe.Pointer(&vaoID))
}

// UnloadVertexBuffer deletes a vertex buffer.
func UnloadVertexBuffer(vboID uint32) {
	procUnloadVertexBuffer.Call(nil, unsafe.Pointer(&vboID))
}

// SetVertexAttributeDivisor sets the instancing divisor of an attribute.
func SetVertexAttributeDivisor(index uint32, divisor int32) {
	procSetVertexAttributeDivisor.Call(nil, unsafe.Pointer(&index), unsafe.Pointer(&divisor))
}

// DrawVertexArray draws count vertices of the bound array.
func DrawVertexArray(offset, count int32) {
	procDrawVertexArray.Call(nil, unsafe.Pointer(&offset), unsafe.Pointer(&count))
}

// DrawVertexArrayInstanced draws count vertices instanced.
func DrawVertexArrayInstanced(offset, count, instances int32) {
	procDrawVertexArrayInstanced.Call(nil, unsafe.Pointer(&offset), unsafe.Pointer(&count), unsafe.Pointer(&instances))
}

var (
	procLoadVertexBuffer                 = bind.New("rlLoadVertexBuffer", bind.UInt, bind.Ptr, bind.Int, bind.Bool)
	procLoadVertexBufferElement          = bind.New("rlLoadVertexBufferElement", bind.UInt, bind.Ptr, bind.Int, bind.Bool)
	procUpdateVertexBuffer               = bind.New("rlUpdateVertexBuffer", bind.Void, bind.UInt, bind.Ptr, bind.Int, bind.Int)
	procUpdateVertexBufferElements       = bind.New("rlUpdateVertexBufferElements", bind.Void, bind.UInt, bind.Ptr, bind.Int, bind.Int)
	procSetVertexAttribute               = bind.New("rlSetVertexAttribute", bind.Void, bind.UInt, bind.Int, bind.Int, bind.Bool, bind.Int, bind.Ptr)
	procSetVertexAttributeDefault        = bind.New("rlSetVertexAttributeDefault", bind.Void, bind.Int, bind.Ptr, bind.Int, bind.Int)
	procDrawVertexArrayElements          = bind.New("rlDrawVertexArrayElements", bind.Void, bind.Int, bind.Int, bind.Ptr)
	procDrawVertexArrayElementsInstanced = bind.New("rlDrawVertexArrayElementsInstanced", bind.Void, bind.Int, bind.Int, bind.Ptr, bind.Int)
)

// LoadVertexBuffer uploads vertices to a new vertex buffer.
func LoadVertexBuffer[T any](vertices []T, dynamic bool) uint32 {
	p, size := data(vertices)
	var id uint32
	procLoadVertexBuffer.Call(unsafe.Pointer(&id), unsafe.Pointer(&p), unsafe.Pointer(&size), unsafe.Pointer(&dynamic))
	return id
}

// LoadVertexBufferElement uploads indices to a new element buffer.
func LoadVertexBufferElement[T uint16 | uint32](indices []T, dynamic bool) uint32 {
	p, size := data(indices)
	var id uint32
	procLoadVertexBufferElement.Call(unsafe.Pointer(&id), unsafe.Pointer(&p), unsafe.Pointer(&size), unsafe.Pointer(&dynamic))
	return id
}

// UpdateVertexBuffer overwrites part of a vertex buffer starting offset
// bytes in.
func UpdateVertexBuffer[T any](bufferID uint32, vertices []T, offset int32) {
	p, size := data(vertices)
	if size == 0 {
		return
	}
	procUpdateVertexBuffer.Call(nil, unsafe.Pointer(&bufferID), unsafe.Pointer(&p), unsafe.Pointer(&size), unsafe.Pointer(&offset))
}

// UpdateVertexBufferElements overwrites part of an element buffer starting
// offset bytes in.
func UpdateVertexBufferElements[T uint16 | uint32](id uint32, indices []T, offset int32) {
	p, size := data(indices)
	if size == 0 {
		return
	}
	procUpdateVertexBufferElements.Call(nil, unsafe.Pointer(&id), unsafe.Pointer(&p), unsafe.Pointer(&size), unsafe.Pointer(&offset))
}

// SetVertexAttribute describes attribute index of the bound vertex
// buffer. offset is the byte offset of the first component.
func SetVertexAttribute(index uint32, compSize, kind int32, normalized bool, stride int32, offset uintptr) {
	procSetVertexAttribute.Call(nil, unsafe.Pointer(&index), unsafe.Pointer(&compSize), unsafe.Pointer(&kind),
		unsafe.Pointer(&normalized), unsafe.Pointer(&stride), unsafe.Pointer(&offset))
}

// SetVertexAttributeDefault sets the value an attribute takes when no
// buffer feeds it.
func SetVertexAttributeDefault(locIndex int32, value []float32, attribType rl.ShaderAttributeDataType) {
	if len(value) == 0 {
		return
	}
	p := &value[0]
	count := int32(len(value))
	procSetVertexAttributeDefault.Call(nil, unsafe.Pointer(&locIndex), unsafe.Pointer(&p), unsafe.Pointer(&attribType), unsafe.Pointer(&count))
}

// DrawVertexArrayElements draws count indices of the bound element buffer,
// starting offset indices in.
func DrawVertexArrayElements(offset, count int32) {
	var buffer unsafe.Pointer
	procDrawVertexArrayElements.Call(nil, unsafe.Pointer(&offset), unsafe.Pointer(&count), unsafe.Pointer(&buffer))
}

// DrawVertexArrayElementsInstanced is DrawVertexArrayElements drawn
// instances times.
func DrawVertexArrayElementsInstanced(offset, count, instances int32) {
	var buffer unsafe.Pointer
	procDrawVertexArrayElementsInstanced.Call(nil, unsafe.Pointer(&offset), unsafe.Pointer(&count), unsafe.Pointer(&buffer), unsafe.Pointer(&instances))
}
