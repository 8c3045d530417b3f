package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procLoadModel           = bind.New("LoadModel", cModel, bind.Ptr)
	procLoadModelFromMesh   = bind.New("LoadModelFromMesh", cModel, cMesh)
	procIsModelReady        = bind.New("IsModelReady", bind.Bool, cModel)
	procUnloadModel         = bind.New("UnloadModel", bind.Void, cModel)
	procGetModelBoundingBox = bind.New("GetModelBoundingBox", cBoundingBox, cModel)
	procDrawModel           = bind.New("DrawModel", bind.Void, cModel, cVector3, bind.Float, cColor)
	procDrawModelEx         = bind.New("DrawModelEx", bind.Void, cModel, cVector3, cVector3, bind.Float, cVector3, cColor)
	procDrawModelWires      = bind.New("DrawModelWires", bind.Void, cModel, cVector3, bind.Float, cColor)
	procDrawModelWiresEx    = bind.New("DrawModelWiresEx", bind.Void, cModel, cVector3, cVector3, bind.Float, cVector3, cColor)
	procDrawBoundingBox     = bind.New("DrawBoundingBox", bind.Void, cBoundingBox, cColor)
	procDrawBillboard       = bind.New("DrawBillboard", bind.Void, cCamera3D, cTexture, cVector3, bind.Float, cColor)
	procDrawBillboardRec    = bind.New("DrawBillboardRec", bind.Void, cCamera3D, cTexture, cRectangle, cVector3, cVector2, cColor)
	procDrawBillboardPro    = bind.New("DrawBillboardPro", bind.Void, cCamera3D, cTexture, cRectangle, cVector3, cVector3, cVector2, cVector2, bind.Float, cColor)
)

// LoadModel loads a model (OBJ, IQM, GLTF, VOX or M3D).
func LoadModel(fileName string) Model {
	cFileName := bind.CString(fileName)
	var r Model
	procLoadModel.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName))
	return r
}

// LoadModelFromMesh creates a model from a mesh with a default material.
func LoadModelFromMesh(mesh Mesh) Model {
	var r Model
	procLoadModelFromMesh.Call(unsafe.Pointer(&r), unsafe.Pointer(&mesh))
	return r
}

// IsModelReady reports whether a model is loaded.
func IsModelReady(model Model) bool {
	var r bool
	procIsModelReady.Call(unsafe.Pointer(&r), unsafe.Pointer(&model))
	return r
}

// UnloadModel releases a model, its meshes and materials.
func UnloadModel(model Model) {
	procUnloadModel.Call(nil, unsafe.Pointer(&model))
}

// GetModelBoundingBox returns the bounds of all model meshes.
func GetModelBoundingBox(model Model) BoundingBox {
	var r BoundingBox
	procGetModelBoundingBox.Call(unsafe.Pointer(&r), unsafe.Pointer(&model))
	return r
}

// DrawModel draws a model.
func DrawModel(model Model, position Vector3, scale float32, tint Color) {
	procDrawModel.Call(nil, unsafe.Pointer(&model), unsafe.Pointer(&position), unsafe.Pointer(&scale), unsafe.Pointer(&tint))
}

// DrawModelEx draws a model with rotation and scale.
func DrawModelEx(model Model, position, rotationAxis Vector3, rotationAngle float32, scale Vector3, tint Color) {
	procDrawModelEx.Call(nil, unsafe.Pointer(&model), unsafe.Pointer(&position), unsafe.Pointer(&rotationAxis), unsafe.Pointer(&rotationAngle), unsafe.Pointer(&scale), unsafe.Pointer(&tint))
}

// DrawModelWires draws a model wireframe.
func DrawModelWires(model Model, position Vector3, scale float32, tint Color) {
	procDrawModelWires.Call(nil, unsafe.Pointer(&model), unsafe.Pointer(&position), unsafe.Pointer(&scale), unsafe.Pointer(&tint))
}

// DrawModelWiresEx draws a model wireframe with rotation and scale.
func DrawModelWiresEx(model Model, position, rotationAxis Vector3, rotationAngle float32, scale Vector3, tint Color) {
	procDrawModelWiresEx.Call(nil, unsafe.Pointer(&model), unsafe.Pointer(&position), unsafe.Pointer(&rotationAxis), unsafe.Pointer(&rotationAngle), unsafe.Pointer(&scale), unsafe.Pointer(&tint))
}

// DrawBoundingBox draws a bounding box wireframe.
func DrawBoundingBox(box BoundingBox, color Color) {
	procDrawBoundingBox.Call(nil, unsafe.Pointer(&box), unsafe.Pointer(&color))
}

// DrawBillboard draws a texture facing the camera.
func DrawBillboard(camera Camera, texture Texture2D, position Vector3, size float32, tint Color) {
	procDrawBillboard.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&texture), unsafe.Pointer(&position), unsafe.Pointer(&size), unsafe.Pointer(&tint))
}

// DrawBillboardRec draws part of a texture facing the camera.
func DrawBillboardRec(camera Camera, texture Texture2D, source Rectangle, position Vector3, size Vector2, tint Color) {
	procDrawBillboardRec.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&texture), unsafe.Pointer(&source), unsafe.Pointer(&position), unsafe.Pointer(&size), unsafe.Pointer(&tint))
}

// DrawBillboardPro draws part of a texture facing the camera, rotated around origin.
func DrawBillboardPro(camera Camera, texture Texture2D, source Rectangle, position, up Vector3, size, origin Vector2, rotation float32, tint Color) {
	procDrawBillboardPro.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&texture), unsafe.Pointer(&source), unsafe.Pointer(&position), unsafe.Pointer(&up), unsafe.Pointer(&size), unsafe.Pointer(&origin), unsafe.Pointer(&rotation), unsafe.Pointer(&tint))
}
