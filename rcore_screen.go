package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procGetMouseRay        = bind.New("GetMouseRay", cRay, cVector2, cCamera3D)
	procGetCameraMatrix    = bind.New("GetCameraMatrix", cMatrix, cCamera3D)
	procGetCameraMatrix2D  = bind.New("GetCameraMatrix2D", cMatrix, cCamera2D)
	procGetWorldToScreen   = bind.New("GetWorldToScreen", cVector2, cVector3, cCamera3D)
	procGetWorldToScreenEx = bind.New("GetWorldToScreenEx", cVector2, cVector3, cCamera3D, bind.Int, bind.Int)
	procGetWorldToScreen2D = bind.New("GetWorldToScreen2D", cVector2, cVector2, cCamera2D)
	procGetScreenToWorld2D = bind.New("GetScreenToWorld2D", cVector2, cVector2, cCamera2D)
)

// GetMouseRay returns a ray trace from the mouse position.
func GetMouseRay(mousePosition Vector2, camera Camera) Ray {
	var r Ray
	procGetMouseRay.Call(unsafe.Pointer(&r), unsafe.Pointer(&mousePosition), unsafe.Pointer(&camera))
	return r
}

// GetCameraMatrix returns the camera transform matrix (view matrix).
func GetCameraMatrix(camera Camera) Matrix {
	var r Matrix
	procGetCameraMatrix.Call(unsafe.Pointer(&r), unsafe.Pointer(&camera))
	return r
}

// GetCameraMatrix2D returns the 2D camera transform matrix.
func GetCameraMatrix2D(camera Camera2D) Matrix {
	var r Matrix
	procGetCameraMatrix2D.Call(unsafe.Pointer(&r), unsafe.Pointer(&camera))
	return r
}

// GetWorldToScreen returns the screen space position of a 3D world position.
func GetWorldToScreen(position Vector3, camera Camera) Vector2 {
	var r Vector2
	procGetWorldToScreen.Call(unsafe.Pointer(&r), unsafe.Pointer(&position), unsafe.Pointer(&camera))
	return r
}

// GetWorldToScreenEx returns the position of a 3D world position in a viewport of the given size.
func GetWorldToScreenEx(position Vector3, camera Camera, width, height int32) Vector2 {
	var r Vector2
	procGetWorldToScreenEx.Call(unsafe.Pointer(&r), unsafe.Pointer(&position), unsafe.Pointer(&camera), unsafe.Pointer(&width), unsafe.Pointer(&height))
	return r
}

// GetWorldToScreen2D returns the screen space position of a 2D camera world position.
func GetWorldToScreen2D(position Vector2, camera Camera2D) Vector2 {
	var r Vector2
	procGetWorldToScreen2D.Call(unsafe.Pointer(&r), unsafe.Pointer(&position), unsafe.Pointer(&camera))
	return r
}

// GetScreenToWorld2D returns the world space position of a 2D camera screen position.
func GetScreenToWorld2D(position Vector2, camera Camera2D) Vector2 {
	var r Vector2
	procGetScreenToWorld2D.Call(unsafe.Pointer(&r), unsafe.Pointer(&position), unsafe.Pointer(&camera))
	return r
}
