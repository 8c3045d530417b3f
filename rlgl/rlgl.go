// Package rlgl binds rlgl, the OpenGL abstraction layer inside raylib.
//
// The functions drop the rl prefix: rlPushMatrix is PushMatrix. They are
// resolved by raylib.Load together with the rest of the library, so
// importing this package is enough to make them callable once Load has
// run. Like the rest of raylib they must be called from the thread that
// owns the GL context.
package rlgl

import (
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

// Batch and stack limits of the default build.
const (
	DefaultBatchBufferElements  = 8192
	DefaultBatchBuffers         = 1
	DefaultBatchDrawcalls       = 256
	DefaultBatchMaxTextureUnits = 4
	MaxMatrixStackSize          = 32
	MaxShaderLocations          = 32

	CullDistanceNear = 0.01
	CullDistanceFar  = 1000.0
)

// Texture parameters, as taken by TextureParameters.
const (
	TextureWrapS                  int32 = 0x2802
	TextureWrapT                  int32 = 0x2803
	TextureMagFilter              int32 = 0x2800
	TextureMinFilter              int32 = 0x2801
	TextureFilterNearest          int32 = 0x2600
	TextureFilterLinear           int32 = 0x2601
	TextureFilterMipNearest       int32 = 0x2700
	TextureFilterNearestMipLinear int32 = 0x2702
	TextureFilterLinearMipNearest int32 = 0x2701
	TextureFilterMipLinear        int32 = 0x2703
	TextureFilterAnisotropic      int32 = 0x3000
	TextureMipmapBiasRatio        int32 = 0x4000
	TextureWrapRepeat             int32 = 0x2901
	TextureWrapClamp              int32 = 0x812F
	TextureWrapMirrorRepeat       int32 = 0x8370
	TextureWrapMirrorClamp        int32 = 0x8742
)

// GL data types.
const (
	UnsignedByte int32 = 0x1401
	Float        int32 = 0x1406
)

// GL blending factors.
const (
	Zero                  int32 = 0
	One                   int32 = 1
	SrcColor              int32 = 0x0300
	OneMinusSrcColor      int32 = 0x0301
	SrcAlpha              int32 = 0x0302
	OneMinusSrcAlpha      int32 = 0x0303
	DstAlpha              int32 = 0x0304
	OneMinusDstAlpha      int32 = 0x0305
	DstColor              int32 = 0x0306
	OneMinusDstColor      int32 = 0x0307
	SrcAlphaSaturate      int32 = 0x0308
	ConstantColor         int32 = 0x8001
	OneMinusConstantColor int32 = 0x8002
	ConstantAlpha         int32 = 0x8003
	OneMinusConstantAlpha int32 = 0x8004
)

// GL blending equations.
const (
	FuncAdd             int32 = 0x8006
	FuncMin             int32 = 0x8007
	FuncMax             int32 = 0x8008
	FuncSubtract        int32 = 0x800A
	FuncReverseSubtract int32 = 0x800B
	BlendEquation       int32 = 0x8009
	BlendEquationRGB    int32 = 0x8009
	BlendEquationAlpha  int32 = 0x883D
	BlendDstRGB         int32 = 0x80C8
	BlendSrcRGB         int32 = 0x80C9
	BlendDstAlpha       int32 = 0x80CA
	BlendSrcAlpha       int32 = 0x80CB
	BlendColor          int32 = 0x8005
)

// Framebuffer masks for BlitFramebuffer.
const (
	ColorBufferBit   int32 = 0x00004000
	DepthBufferBit   int32 = 0x00000100
	StencilBufferBit int32 = 0x00000400
)

// BufferUsage is a GL buffer usage hint.
type BufferUsage int32

// Buffer usage hints.
const (
	StreamDraw  BufferUsage = 0x88E0
	StreamRead  BufferUsage = 0x88E1
	StreamCopy  BufferUsage = 0x88E2
	StaticDraw  BufferUsage = 0x88E4
	StaticRead  BufferUsage = 0x88E5
	StaticCopy  BufferUsage = 0x88E6
	DynamicDraw BufferUsage = 0x88E8
	DynamicRead BufferUsage = 0x88E9
	DynamicCopy BufferUsage = 0x88EA
)

// ShaderType is a shader stage.
type ShaderType int32

// Shader stages.
const (
	FragmentShader ShaderType = 0x8B30
	VertexShader   ShaderType = 0x8B31
	ComputeShader  ShaderType = 0x91B9
)

// DrawMode is a primitive type for Begin.
type DrawMode int32

// Primitive types.
const (
	Lines     DrawMode = 0x0001
	Triangles DrawMode = 0x0004
	Quads     DrawMode = 0x0007
)

// MatrixStack selects the matrix MatrixMode operates on.
type MatrixStack int32

// Matrix stacks.
const (
	Modelview  MatrixStack = 0x1700
	Projection MatrixStack = 0x1701
	Texture    MatrixStack = 0x1702
)

// GlVersion is the OpenGL flavour raylib was built for.
type GlVersion int32

// OpenGL versions.
const (
	OpenGL11 GlVersion = iota + 1
	OpenGL21
	OpenGL33
	OpenGL43
	OpenGLES20
	OpenGLES30
)

var glVersionNames = [...]string{"", "OpenGL 1.1", "OpenGL 2.1", "OpenGL 3.3", "OpenGL 4.3", "OpenGL ES 2.0", "OpenGL ES 3.0"}

func (v GlVersion) String() string {
	if v > 0 && int(v) < len(glVersionNames) {
		return glVersionNames[v]
	}
	return "unknown"
}

// SupportsCompute reports whether compute shaders and storage buffers are
// available, which needs OpenGL 4.3.
func (v GlVersion) SupportsCompute() bool { return v == OpenGL43 }

// FramebufferAttachType is a framebuffer attachment point.
type FramebufferAttachType int32

// Attachment points.
const (
	AttachmentColorChannel0 FramebufferAttachType = iota
	AttachmentColorChannel1
	AttachmentColorChannel2
	AttachmentColorChannel3
	AttachmentColorChannel4
	AttachmentColorChannel5
	AttachmentColorChannel6
	AttachmentColorChannel7
	AttachmentDepth   FramebufferAttachType = 100
	AttachmentStencil FramebufferAttachType = 200
)

// FramebufferAttachTextureType is the kind of texture attached.
type FramebufferAttachTextureType int32

// Attachment texture kinds.
const (
	AttachmentCubemapPositiveX FramebufferAttachTextureType = iota
	AttachmentCubemapNegativeX
	AttachmentCubemapPositiveY
	AttachmentCubemapNegativeY
	AttachmentCubemapPositiveZ
	AttachmentCubemapNegativeZ
	AttachmentTexture2D    FramebufferAttachTextureType = 100
	AttachmentRenderbuffer FramebufferAttachTextureType = 200
)

// CullMode selects the faces SetCullFace culls.
type CullMode int32

// Cull modes.
const (
	CullFaceFront CullMode = iota
	CullFaceBack
)

// VertexBuffer is one set of batch vertex arrays. Every pointer is owned
// by the native allocator.
type VertexBuffer struct {
	ElementCount int32

	Vertices  *float32
	Texcoords *float32
	Colors    *uint8
	Indices   *uint32

	VaoID uint32
	VboID [4]uint32
}

// DrawCall is one draw of a render batch.
type DrawCall struct {
	Mode            DrawMode
	VertexCount     int32
	VertexAlignment int32
	TextureID       uint32
}

// RenderBatch collects immediate mode vertices and draws them in as few
// calls as possible.
type RenderBatch struct {
	BufferCount   int32
	CurrentBuffer int32
	VertexBuffer  *VertexBuffer
	Draws         *DrawCall
	DrawCounter   int32
	CurrentDepth  float32
}

// VertexBuffers views the vertex buffers of b.
func (b *RenderBatch) VertexBuffers() []VertexBuffer {
	return cmem.Slice[VertexBuffer](unsafe.Pointer(b.VertexBuffer), int(b.BufferCount))
}

// DrawCalls views the draws queued in b.
func (b *RenderBatch) DrawCalls() []DrawCall {
	return cmem.Slice[DrawCall](unsafe.Pointer(b.Draws), int(b.DrawCounter))
}

// C layout descriptors.
var (
	cMatrix      = bind.Struct(bind.Array(bind.Float, 16)...)
	cDrawCall    = bind.Struct(bind.Int, bind.Int, bind.Int, bind.UInt)
	cRenderBatch = bind.Struct(bind.Int, bind.Int, bind.Ptr, bind.Ptr, bind.Int, bind.Float)

	cVertexBuffer = bind.Struct(bind.Fields(
		[]*bind.Type{bind.Int, bind.Ptr, bind.Ptr, bind.Ptr, bind.Ptr, bind.UInt},
		bind.Array(bind.UInt, 4),
	)...)
)
