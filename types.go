package raylib

import (
	"unsafe"
)

// Vector2 is a two-component vector.
type Vector2 struct {
	X, Y float32
}

// Vector3 is a three-component vector.
type Vector3 struct {
	X, Y, Z float32
}

// Vector4 is a four-component vector.
type Vector4 struct {
	X, Y, Z, W float32
}

// Quaternion is a rotation stored as a Vector4.
type Quaternion = Vector4

// Matrix is a 4x4 OpenGL-style matrix. Fields are in memory order, which is
// column-major: M0 M4 M8 M12 is the first row.
type Matrix struct {
	M0, M4, M8, M12  float32
	M1, M5, M9, M13  float32
	M2, M6, M10, M14 float32
	M3, M7, M11, M15 float32
}

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	X, Y, Width, Height float32
}

// Image is pixel data in CPU memory. Data is owned by the native
// allocator.
type Image struct {
	Data    unsafe.Pointer
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

// Texture is pixel data in GPU memory.
type Texture struct {
	ID      uint32
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

// Texture2D is a Texture.
type Texture2D = Texture

// TextureCubemap is a Texture.
type TextureCubemap = Texture

// RenderTexture is a framebuffer object with color and depth attachments.
type RenderTexture struct {
	ID      uint32
	Texture Texture
	Depth   Texture
}

// RenderTexture2D is a RenderTexture.
type RenderTexture2D = RenderTexture

// NPatchInfo describes a nine-slice or three-slice image.
type NPatchInfo struct {
	Source Rectangle
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
	Layout NPatchLayout
}

// GlyphInfo describes one font character.
type GlyphInfo struct {
	Value    rune
	OffsetX  int32
	OffsetY  int32
	AdvanceX int32
	Image    Image
}

// Camera3D defines a camera position and projection in 3D space.
type Camera3D struct {
	Position   Vector3
	Target     Vector3
	Up         Vector3
	Fovy       float32
	Projection CameraProjection
}

// Camera is a Camera3D.
type Camera = Camera3D

// Camera2D defines a 2D camera.
type Camera2D struct {
	Offset   Vector2
	Target   Vector2
	Rotation float32
	Zoom     float32
}

// Mesh is vertex data and its GPU buffers. Every pointer is owned by the
// native allocator.
type Mesh struct {
	VertexCount   int32
	TriangleCount int32

	Vertices   *float32
	Texcoords  *float32
	Texcoords2 *float32
	Normals    *float32
	Tangents   *float32
	Colors     *uint8
	Indices    *uint16

	AnimVertices *float32
	AnimNormals  *float32
	BoneIDs      *uint8
	BoneWeights  *float32

	VaoID uint32
	VboID *uint32
}

// Shader is a GPU program and its uniform locations.
type Shader struct {
	ID   uint32
	Locs *int32
}

// MaterialMap is one texture slot of a material.
type MaterialMap struct {
	Texture Texture2D
	Color   Color
	Value   float32
}

// Material is a shader and its maps.
type Material struct {
	Shader Shader
	Maps   *MaterialMap
	Params [4]float32
}

// Transform is a vertex transformation.
type Transform struct {
	Translation Vector3
	Rotation    Quaternion
	Scale       Vector3
}

// BoneInfo is a skeleton bone.
type BoneInfo struct {
	Name   [32]byte
	Parent int32
}

// Model is meshes, materials and animation data.
type Model struct {
	Transform Matrix

	MeshCount     int32
	MaterialCount int32
	Meshes        *Mesh
	Materials     *Material
	MeshMaterial  *int32

	BoneCount int32
	Bones     *BoneInfo
	BindPose  *Transform
}

// ModelAnimation is one skeletal animation.
type ModelAnimation struct {
	BoneCount  int32
	FrameCount int32
	Bones      *BoneInfo
	FramePoses **Transform
	Name       [32]byte
}

// Ray is a position and a direction.
type Ray struct {
	Position  Vector3
	Direction Vector3
}

// RayCollision is the result of a ray hit test.
type RayCollision struct {
	Hit      bool
	Distance float32
	Point    Vector3
	Normal   Vector3
}

// BoundingBox is an axis-aligned box.
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// Wave is audio samples in CPU memory.
type Wave struct {
	FrameCount uint32
	SampleRate uint32
	SampleSize uint32
	Channels   uint32
	Data       unsafe.Pointer
}

// AudioStream is a custom audio stream.
type AudioStream struct {
	Buffer    unsafe.Pointer
	Processor unsafe.Pointer

	SampleRate uint32
	SampleSize uint32
	Channels   uint32
}

// Sound is a loaded sound effect.
type Sound struct {
	Stream     AudioStream
	FrameCount uint32
}

// Music is a streamed audio file.
type Music struct {
	Stream     AudioStream
	FrameCount uint32
	Looping    bool

	CtxType int32
	CtxData unsafe.Pointer
}

// VrDeviceInfo describes a head-mounted display.
type VrDeviceInfo struct {
	HResolution            int32
	VResolution            int32
	HScreenSize            float32
	VScreenSize            float32
	EyeToScreenDistance    float32
	LensSeparationDistance float32
	InterpupillaryDistance float32
	LensDistortionValues   [4]float32
	ChromaAbCorrection     [4]float32
}

// VrStereoConfig holds the per-eye parameters for stereo rendering.
type VrStereoConfig struct {
	Projection        [2]Matrix
	ViewOffset        [2]Matrix
	LeftLensCenter    [2]float32
	RightLensCenter   [2]float32
	LeftScreenCenter  [2]float32
	RightScreenCenter [2]float32
	Scale             [2]float32
	ScaleIn           [2]float32
}

// FilePathList is a list of paths owned by the native library.
type FilePathList struct {
	Capacity uint32
	Count    uint32
	Paths    **byte
}
