package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procLoadMaterialDefault  = bind.New("LoadMaterialDefault", cMaterial)
	procIsMaterialReady      = bind.New("IsMaterialReady", bind.Bool, cMaterial)
	procUnloadMaterial       = bind.New("UnloadMaterial", bind.Void, cMaterial)
	procSetMaterialTexture   = bind.New("SetMaterialTexture", bind.Void, bind.Ptr, bind.Int, cTexture)
	procSetModelMeshMaterial = bind.New("SetModelMeshMaterial", bind.Void, bind.Ptr, bind.Int, bind.Int)
)

// LoadMaterialDefault returns the default material: default shader and a white diffuse map.
func LoadMaterialDefault() Material {
	var r Material
	procLoadMaterialDefault.Call(unsafe.Pointer(&r))
	return r
}

// IsMaterialReady reports whether a material has a shader and maps.
func IsMaterialReady(material Material) bool {
	var r bool
	procIsMaterialReady.Call(unsafe.Pointer(&r), unsafe.Pointer(&material))
	return r
}

// UnloadMaterial releases a material's shader and textures.
func UnloadMaterial(material Material) {
	procUnloadMaterial.Call(nil, unsafe.Pointer(&material))
}

// SetMaterialTexture sets the texture of one material map.
func SetMaterialTexture(material *Material, mapType MaterialMapIndex, texture Texture2D) {
	procSetMaterialTexture.Call(nil, unsafe.Pointer(&material), unsafe.Pointer(&mapType), unsafe.Pointer(&texture))
}

// SetModelMeshMaterial assigns a material to a mesh of a model.
func SetModelMeshMaterial(model *Model, meshID, materialID int32) {
	procSetModelMeshMaterial.Call(nil, unsafe.Pointer(&model), unsafe.Pointer(&meshID), unsafe.Pointer(&materialID))
}

var procLoadMaterials = bind.New("LoadMaterials", bind.Ptr, bind.Ptr, bind.Ptr)

// LoadMaterials loads the materials of a model file (MTL). Each material
// must be released with UnloadMaterial.
func LoadMaterials(fileName string) []Material {
	cName := bind.CString(fileName)
	var count int32
	pCount := &count
	var p unsafe.Pointer
	procLoadMaterials.Call(unsafe.Pointer(&p), unsafe.Pointer(&cName), unsafe.Pointer(&pCount))
	if p == nil {
		return nil
	}
	out := cmem.CopyFromNative[Material](p, int(count))
	MemFree(p)
	return out
}

// MapList views the maps of a material.
func (m Material) MapList() []MaterialMap {
	return cmem.Slice[MaterialMap](unsafe.Pointer(m.Maps), MaxMaterialMaps)
}

// MeshList views the meshes of a model.
func (m Model) MeshList() []Mesh {
	return cmem.Slice[Mesh](unsafe.Pointer(m.Meshes), int(m.MeshCount))
}

// MaterialList views the materials of a model.
func (m Model) MaterialList() []Material {
	return cmem.Slice[Material](unsafe.Pointer(m.Materials), int(m.MaterialCount))
}

// SetModelMaterialTexture sets one map texture of a model material.
func SetModelMaterialTexture(model *Model, materialID int32, mapType MaterialMapIndex, texture Texture2D) {
	mats := model.MaterialList()
	if materialID < 0 || int(materialID) >= len(mats) {
		return
	}
	SetMaterialTexture(&mats[materialID], mapType, texture)
}

// SetModelMaterialShader sets the shader of a model material.
func SetModelMaterialShader(model *Model, materialID int32, shader Shader) {
	mats := model.MaterialList()
	if materialID < 0 || int(materialID) >= len(mats) {
		return
	}
	mats[materialID].Shader = shader
}
