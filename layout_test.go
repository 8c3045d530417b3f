package raylib

import (
	"testing"
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

func TestMirrorLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("descriptors assume 64-bit pointers")
	}
	tests := []struct {
		name  string
		desc  *bind.Type
		goSz  uintptr
		cSize uintptr
	}{
		{"Vector2", cVector2, unsafe.Sizeof(Vector2{}), 8},
		{"Vector3", cVector3, unsafe.Sizeof(Vector3{}), 12},
		{"Vector4", cVector4, unsafe.Sizeof(Vector4{}), 16},
		{"Matrix", cMatrix, unsafe.Sizeof(Matrix{}), 64},
		{"Color", cColor, unsafe.Sizeof(Color{}), 4},
		{"Rectangle", cRectangle, unsafe.Sizeof(Rectangle{}), 16},
		{"Image", cImage, unsafe.Sizeof(Image{}), 24},
		{"Texture", cTexture, unsafe.Sizeof(Texture{}), 20},
		{"RenderTexture", cRenderTexture, unsafe.Sizeof(RenderTexture{}), 44},
		{"NPatchInfo", cNPatchInfo, unsafe.Sizeof(NPatchInfo{}), 36},
		{"GlyphInfo", cGlyphInfo, unsafe.Sizeof(GlyphInfo{}), 40},
		{"Font", cFont, unsafe.Sizeof(NativeFont{}), 48},
		{"Camera3D", cCamera3D, unsafe.Sizeof(Camera3D{}), 44},
		{"Camera2D", cCamera2D, unsafe.Sizeof(Camera2D{}), 24},
		{"Mesh", cMesh, unsafe.Sizeof(Mesh{}), 112},
		{"Shader", cShader, unsafe.Sizeof(Shader{}), 16},
		{"MaterialMap", cMaterialMap, unsafe.Sizeof(MaterialMap{}), 28},
		{"Material", cMaterial, unsafe.Sizeof(Material{}), 40},
		{"Transform", cTransform, unsafe.Sizeof(Transform{}), 40},
		{"BoneInfo", cBoneInfo, unsafe.Sizeof(BoneInfo{}), 36},
		{"Model", cModel, unsafe.Sizeof(Model{}), 120},
		{"ModelAnimation", cModelAnimation, unsafe.Sizeof(ModelAnimation{}), 56},
		{"Ray", cRay, unsafe.Sizeof(Ray{}), 24},
		{"RayCollision", cRayCollision, unsafe.Sizeof(RayCollision{}), 32},
		{"BoundingBox", cBoundingBox, unsafe.Sizeof(BoundingBox{}), 24},
		{"Wave", cWave, unsafe.Sizeof(Wave{}), 24},
		{"AudioStream", cAudioStream, unsafe.Sizeof(AudioStream{}), 32},
		{"Sound", cSound, unsafe.Sizeof(Sound{}), 40},
		{"Music", cMusic, unsafe.Sizeof(Music{}), 56},
		{"VrDeviceInfo", cVrDeviceInfo, unsafe.Sizeof(VrDeviceInfo{}), 60},
		{"VrStereoConfig", cVrStereoConfig, unsafe.Sizeof(VrStereoConfig{}), 304},
		{"FilePathList", cFilePathList, unsafe.Sizeof(FilePathList{}), 16},
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

func TestNativeFontOffsets(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("descriptors assume 64-bit pointers")
	}
	var nf NativeFont
	got := []uintptr{
		unsafe.Offsetof(nf.BaseSize),
		unsafe.Offsetof(nf.GlyphCount),
		unsafe.Offsetof(nf.GlyphPadding),
		unsafe.Offsetof(nf.Texture),
		unsafe.Offsetof(nf.Recs),
		unsafe.Offsetof(nf.Glyphs),
	}
	want := bind.Offsets(cFont)
	if len(got) != len(want) {
		t.Fatalf("%d fields, descriptor has %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d at offset %d, descriptor says %d", i, got[i], want[i])
		}
	}
}
