package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procLoadShader              = bind.New("LoadShader", cShader, bind.Ptr, bind.Ptr)
	procLoadShaderFromMemory    = bind.New("LoadShaderFromMemory", cShader, bind.Ptr, bind.Ptr)
	procIsShaderReady           = bind.New("IsShaderReady", bind.Bool, cShader)
	procGetShaderLocation       = bind.New("GetShaderLocation", bind.Int, cShader, bind.Ptr)
	procGetShaderLocationAttrib = bind.New("GetShaderLocationAttrib", bind.Int, cShader, bind.Ptr)
	procSetShaderValue          = bind.New("SetShaderValue", bind.Void, cShader, bind.Int, bind.Ptr, bind.Int)
	procSetShaderValueV         = bind.New("SetShaderValueV", bind.Void, cShader, bind.Int, bind.Ptr, bind.Int, bind.Int)
	procSetShaderValueMatrix    = bind.New("SetShaderValueMatrix", bind.Void, cShader, bind.Int, cMatrix)
	procSetShaderValueTexture   = bind.New("SetShaderValueTexture", bind.Void, cShader, bind.Int, cTexture)
	procUnloadShader            = bind.New("UnloadShader", bind.Void, cShader)
)

// LoadShader loads a shader from files. An empty name uses the default stage.
func LoadShader(vsFileName, fsFileName string) Shader {
	cVsFileName := bind.CStringOrNil(vsFileName)
	cFsFileName := bind.CStringOrNil(fsFileName)
	var r Shader
	procLoadShader.Call(unsafe.Pointer(&r), unsafe.Pointer(&cVsFileName), unsafe.Pointer(&cFsFileName))
	return r
}

// LoadShaderFromMemory compiles a shader from source. An empty source uses the default stage.
func LoadShaderFromMemory(vsCode, fsCode string) Shader {
	cVsCode := bind.CStringOrNil(vsCode)
	cFsCode := bind.CStringOrNil(fsCode)
	var r Shader
	procLoadShaderFromMemory.Call(unsafe.Pointer(&r), unsafe.Pointer(&cVsCode), unsafe.Pointer(&cFsCode))
	return r
}

// IsShaderReady reports whether a shader is loaded.
func IsShaderReady(shader Shader) bool {
	var r bool
	procIsShaderReady.Call(unsafe.Pointer(&r), unsafe.Pointer(&shader))
	return r
}

// GetShaderLocation returns the location of a uniform, or -1.
func GetShaderLocation(shader Shader, uniformName string) int32 {
	cUniformName := bind.CString(uniformName)
	var r int32
	procGetShaderLocation.Call(unsafe.Pointer(&r), unsafe.Pointer(&shader), unsafe.Pointer(&cUniformName))
	return r
}

// GetShaderLocationAttrib returns the location of a vertex attribute, or -1.
func GetShaderLocationAttrib(shader Shader, attribName string) int32 {
	cAttribName := bind.CString(attribName)
	var r int32
	procGetShaderLocationAttrib.Call(unsafe.Pointer(&r), unsafe.Pointer(&shader), unsafe.Pointer(&cAttribName))
	return r
}

// SetShaderValue sets a uniform from raw memory.
func SetShaderValue(shader Shader, locIndex int32, value unsafe.Pointer, uniformType ShaderUniformDataType) {
	procSetShaderValue.Call(nil, unsafe.Pointer(&shader), unsafe.Pointer(&locIndex), unsafe.Pointer(&value), unsafe.Pointer(&uniformType))
}

// SetShaderValueV sets a uniform array from raw memory.
func SetShaderValueV(shader Shader, locIndex int32, value unsafe.Pointer, uniformType ShaderUniformDataType, count int32) {
	procSetShaderValueV.Call(nil, unsafe.Pointer(&shader), unsafe.Pointer(&locIndex), unsafe.Pointer(&value), unsafe.Pointer(&uniformType), unsafe.Pointer(&count))
}

// SetShaderValueMatrix sets a matrix uniform.
func SetShaderValueMatrix(shader Shader, locIndex int32, mat Matrix) {
	procSetShaderValueMatrix.Call(nil, unsafe.Pointer(&shader), unsafe.Pointer(&locIndex), unsafe.Pointer(&mat))
}

// SetShaderValueTexture sets a sampler2D uniform.
func SetShaderValueTexture(shader Shader, locIndex int32, texture Texture2D) {
	procSetShaderValueTexture.Call(nil, unsafe.Pointer(&shader), unsafe.Pointer(&locIndex), unsafe.Pointer(&texture))
}

// UnloadShader unloads a shader from the GPU.
func UnloadShader(shader Shader) {
	procUnloadShader.Call(nil, unsafe.Pointer(&shader))
}

// UniformValue is a Go type with a matching GLSL uniform type.
type UniformValue interface {
	float32 | Vector2 | Vector3 | Vector4 | int32 | [2]int32 | [3]int32 | [4]int32
}

// UniformType returns the GLSL uniform type matching T.
func UniformType[T UniformValue]() ShaderUniformDataType {
	var v T
	switch any(v).(type) {
	case float32:
		return ShaderUniformFloat
	case Vector2:
		return ShaderUniformVec2
	case Vector3:
		return ShaderUniformVec3
	case Vector4:
		return ShaderUniformVec4
	case int32:
		return ShaderUniformInt
	case [2]int32:
		return ShaderUniformIVec2
	case [3]int32:
		return ShaderUniformIVec3
	}
	return ShaderUniformIVec4
}

// SetShaderUniform sets a uniform, deriving the GLSL type from T.
func SetShaderUniform[T UniformValue](shader Shader, locIndex int32, value T) {
	SetShaderValue(shader, locIndex, unsafe.Pointer(&value), UniformType[T]())
}

// SetShaderUniforms sets a uniform array.
func SetShaderUniforms[T UniformValue](shader Shader, locIndex int32, values []T) {
	if len(values) == 0 {
		return
	}
	SetShaderValueV(shader, locIndex, sliceData(values), UniformType[T](), int32(len(values)))
}

// SetShaderFloat sets a float uniform.
func SetShaderFloat(shader Shader, locIndex int32, v float32) {
	SetShaderUniform(shader, locIndex, v)
}

// SetShaderVec2 sets a vec2 uniform.
func SetShaderVec2(shader Shader, locIndex int32, v Vector2) {
	SetShaderUniform(shader, locIndex, v)
}

// SetShaderVec3 sets a vec3 uniform.
func SetShaderVec3(shader Shader, locIndex int32, v Vector3) {
	SetShaderUniform(shader, locIndex, v)
}

// SetShaderVec4 sets a vec4 uniform.
func SetShaderVec4(shader Shader, locIndex int32, v Vector4) {
	SetShaderUniform(shader, locIndex, v)
}

// SetShaderInt sets an int uniform.
func SetShaderInt(shader Shader, locIndex int32, v int32) {
	SetShaderUniform(shader, locIndex, v)
}

// Locations returns a view of the shader's location table. It is nil for
// a shader that failed to load.
func (s Shader) Locations() []int32 {
	if s.Locs == nil {
		return nil
	}
	return unsafe.Slice(s.Locs, int(MaxShaderLocations))
}
