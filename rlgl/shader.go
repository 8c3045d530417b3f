package rlgl

import (
	"unsafe"

	rl "github.com/gogpu/raylib"
	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procLoadShaderCode           = bind.New("rlLoadShaderCode", bind.UInt, bind.Ptr, bind.Ptr)
	procCompileShader            = bind.New("rlCompileShader", bind.UInt, bind.Ptr, bind.Int)
	procLoadShaderProgram        = bind.New("rlLoadShaderProgram", bind.UInt, bind.UInt, bind.UInt)
	procUnloadShaderProgram      = bind.New("rlUnloadShaderProgram", bind.Void, bind.UInt)
	procGetLocationUniform       = bind.New("rlGetLocationUniform", bind.Int, bind.UInt, bind.Ptr)
	procGetLocationAttrib        = bind.New("rlGetLocationAttrib", bind.Int, bind.UInt, bind.Ptr)
	procSetUniformMatrix         = bind.New("rlSetUniformMatrix", bind.Void, bind.Int, cMatrix)
	procSetUniformSampler        = bind.New("rlSetUniformSampler", bind.Void, bind.Int, bind.UInt)
	procLoadComputeShaderProgram = bind.New("rlLoadComputeShaderProgram", bind.UInt, bind.UInt)
	procComputeShaderDispatch    = bind.New("rlComputeShaderDispatch", bind.Void, bind.UInt, bind.UInt, bind.UInt)
	procUnloadShaderBuffer       = bind.New("rlUnloadShaderBuffer", bind.Void, bind.UInt)
	procBindShaderBuffer         = bind.New("rlBindShaderBuffer", bind.Void, bind.UInt, bind.UInt)
	procCopyShaderBuffer         = bind.New("rlCopyShaderBuffer", bind.Void, bind.UInt, bind.UInt, bind.UInt, bind.UInt, bind.UInt)
	procGetShaderBufferSize      = bind.New("rlGetShaderBufferSize", bind.UInt, bind.UInt)
)

// LoadShaderCode compiles and links a program from vertex and fragment sources. An empty source uses the default shader stage.
func LoadShaderCode(vsCode, fsCode string) uint32 {
	cVsCode := bind.CStringOrNil(vsCode)
	cFsCode := bind.CStringOrNil(fsCode)
	var r uint32
	procLoadShaderCode.Call(unsafe.Pointer(&r), unsafe.Pointer(&cVsCode), unsafe.Pointer(&cFsCode))
	return r
}

// CompileShader compiles a single shader stage.
func CompileShader(shaderCode string, kind ShaderType) uint32 {
	cShaderCode := bind.CString(shaderCode)
	var r uint32
	procCompileShader.Call(unsafe.Pointer(&r), unsafe.Pointer(&cShaderCode), unsafe.Pointer(&kind))
	return r
}

// LoadShaderProgram links a program from compiled stages.
func LoadShaderProgram(vShaderID, fShaderID uint32) uint32 {
	var r uint32
	procLoadShaderProgram.Call(unsafe.Pointer(&r), unsafe.Pointer(&vShaderID), unsafe.Pointer(&fShaderID))
	return r
}

// UnloadShaderProgram deletes a shader program.
func UnloadShaderProgram(id uint32) {
	procUnloadShaderProgram.Call(nil, unsafe.Pointer(&id))
}

// GetLocationUniform returns the location of a uniform.
func GetLocationUniform(shaderID uint32, uniformName string) int32 {
	cUniformName := bind.CString(uniformName)
	var r int32
	procGetLocationUniform.Call(unsafe.Pointer(&r), unsafe.Pointer(&shaderID), unsafe.Pointer(&cUniformName))
	return r
}

// GetLocationAttrib returns the location of a vertex attribute.
func GetLocationAttrib(shaderID uint32, attribName string) int32 {
	cAttribName := bind.CString(attribName)
	var r int32
	procGetLocationAttrib.Call(unsafe.Pointer(&r), unsafe.Pointer(&shaderID), unsafe.Pointer(&cAttribName))
	return r
}

// SetUniformMatrix sets a matrix uniform.
func SetUniformMatrix(locIndex int32, mat rl.Matrix) {
	procSetUniformMatrix.Call(nil, unsafe.Pointer(&locIndex), unsafe.Pointer(&mat))
}

// SetUniformSampler binds a texture to a sampler uniform.
func SetUniformSampler(locIndex int32, textureID uint32) {
	procSetUniformSampler.Call(nil, unsafe.Pointer(&locIndex), unsafe.Pointer(&textureID))
}

// LoadComputeShaderProgram links a program from a compiled compute stage.
func LoadComputeShaderProgram(shaderID uint32) uint32 {
	var r uint32
	procLoadComputeShaderProgram.Call(unsafe.Pointer(&r), unsafe.Pointer(&shaderID))
	return r
}

// ComputeShaderDispatch runs the bound compute program.
func ComputeShaderDispatch(groupX, groupY, groupZ uint32) {
	procComputeShaderDispatch.Call(nil, unsafe.Pointer(&groupX), unsafe.Pointer(&groupY), unsafe.Pointer(&groupZ))
}

// UnloadShaderBuffer deletes a shader storage buffer.
func UnloadShaderBuffer(ssboID uint32) {
	procUnloadShaderBuffer.Call(nil, unsafe.Pointer(&ssboID))
}

// BindShaderBuffer binds a storage buffer to a binding point.
func BindShaderBuffer(id, index uint32) {
	procBindShaderBuffer.Call(nil, unsafe.Pointer(&id), unsafe.Pointer(&index))
}

// CopyShaderBuffer copies count bytes between storage buffers.
func CopyShaderBuffer(destID, srcID, destOffset, srcOffset, count uint32) {
	procCopyShaderBuffer.Call(nil, unsafe.Pointer(&destID), unsafe.Pointer(&srcID), unsafe.Pointer(&destOffset), unsafe.Pointer(&srcOffset), unsafe.Pointer(&count))
}

// GetShaderBufferSize returns the size of a storage buffer in bytes.
func GetShaderBufferSize(id uint32) uint32 {
	var r uint32
	procGetShaderBufferSize.Call(unsafe.Pointer(&r), unsafe.Pointer(&id))
	return r
}

var (
	procSetUniform           = bind.New("rlSetUniform", bind.Void, bind.Int, bind.Ptr, bind.Int, bind.Int)
	procSetShader            = bind.New("rlSetShader", bind.Void, bind.UInt, bind.Ptr)
	procGetShaderLocsDefault = bind.New("rlGetShaderLocsDefault", bind.Ptr)
	procLoadShaderBuffer     = bind.New("rlLoadShaderBuffer", bind.UInt, bind.UInt, bind.Ptr, bind.Int)
	procUpdateShaderBuffer   = bind.New("rlUpdateShaderBuffer", bind.Void, bind.UInt, bind.Ptr, bind.UInt, bind.UInt)
	procReadShaderBuffer     = bind.New("rlReadShaderBuffer", bind.Void, bind.UInt, bind.Ptr, bind.UInt, bind.UInt)
)

// SetUniform sets a uniform array on the active shader. The GLSL type
// follows T.
func SetUniform[T rl.UniformValue](locIndex int32, values []T) {
	if len(values) == 0 {
		return
	}
	p := unsafe.Pointer(unsafe.SliceData(values))
	kind := rl.UniformType[T]()
	count := int32(len(values))
	procSetUniform.Call(nil, unsafe.Pointer(&locIndex), unsafe.Pointer(&p), unsafe.Pointer(&kind), unsafe.Pointer(&count))
}

// SetShader makes program id active with the given location table. The
// table must have MaxShaderLocations entries and stay alive while the
// shader is active; GetShaderLocsDefault returns one that does.
func SetShader(id uint32, locs []int32) {
	p, _ := data(locs)
	procSetShader.Call(nil, unsafe.Pointer(&id), unsafe.Pointer(&p))
}

// GetShaderLocsDefault views the location table of the default shader.
func GetShaderLocsDefault() []int32 {
	var p unsafe.Pointer
	procGetShaderLocsDefault.Call(unsafe.Pointer(&p))
	return cmem.Slice[int32](p, MaxShaderLocations)
}

// LoadShaderBuffer creates a storage buffer holding contents.
func LoadShaderBuffer[T any](contents []T, usage BufferUsage) uint32 {
	p, size := data(contents)
	return loadShaderBuffer(uint32(size), p, usage)
}

// AllocShaderBuffer creates a zeroed storage buffer of size bytes.
func AllocShaderBuffer(size uint32, usage BufferUsage) uint32 {
	return loadShaderBuffer(size, nil, usage)
}

func loadShaderBuffer(size uint32, p unsafe.Pointer, usage BufferUsage) uint32 {
	var id uint32
	procLoadShaderBuffer.Call(unsafe.Pointer(&id), unsafe.Pointer(&size), unsafe.Pointer(&p), unsafe.Pointer(&usage))
	return id
}

// UpdateShaderBuffer writes contents into storage buffer id, offset bytes
// in.
func UpdateShaderBuffer[T any](id uint32, contents []T, offset uint32) {
	p, size := data(contents)
	if size == 0 {
		return
	}
	n := uint32(size)
	procUpdateShaderBuffer.Call(nil, unsafe.Pointer(&id), unsafe.Pointer(&p), unsafe.Pointer(&n), unsafe.Pointer(&offset))
}

// ReadShaderBuffer fills dest from storage buffer id, offset bytes in.
func ReadShaderBuffer[T any](id uint32, dest []T, offset uint32) {
	p, size := data(dest)
	if size == 0 {
		return
	}
	n := uint32(size)
	procReadShaderBuffer.Call(nil, unsafe.Pointer(&id), unsafe.Pointer(&p), unsafe.Pointer(&n), unsafe.Pointer(&offset))
}
