package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procUpdateCamera              = bind.New("UpdateCamera", bind.Void, bind.Ptr, bind.Int)
	procUpdateCameraPro           = bind.New("UpdateCameraPro", bind.Void, bind.Ptr, cVector3, cVector3, bind.Float)
	procGetCameraForward          = bind.Optional("GetCameraForward", cVector3, bind.Ptr)
	procGetCameraUp               = bind.Optional("GetCameraUp", cVector3, bind.Ptr)
	procGetCameraRight            = bind.Optional("GetCameraRight", cVector3, bind.Ptr)
	procCameraMoveForward         = bind.Optional("CameraMoveForward", bind.Void, bind.Ptr, bind.Float, bind.Bool)
	procCameraMoveUp              = bind.Optional("CameraMoveUp", bind.Void, bind.Ptr, bind.Float)
	procCameraMoveRight           = bind.Optional("CameraMoveRight", bind.Void, bind.Ptr, bind.Float, bind.Bool)
	procCameraMoveToTarget        = bind.Optional("CameraMoveToTarget", bind.Void, bind.Ptr, bind.Float)
	procCameraYaw                 = bind.Optional("CameraYaw", bind.Void, bind.Ptr, bind.Float, bind.Bool)
	procCameraPitch               = bind.Optional("CameraPitch", bind.Void, bind.Ptr, bind.Float, bind.Bool, bind.Bool, bind.Bool)
	procCameraRoll                = bind.Optional("CameraRoll", bind.Void, bind.Ptr, bind.Float)
	procGetCameraViewMatrix       = bind.Optional("GetCameraViewMatrix", cMatrix, bind.Ptr)
	procGetCameraProjectionMatrix = bind.Optional("GetCameraProjectionMatrix", cMatrix, bind.Ptr, bind.Float)
)

// UpdateCamera updates camera position for the selected mode.
func UpdateCamera(camera *Camera, mode CameraMode) {
	procUpdateCamera.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&mode))
}

// UpdateCameraPro updates camera movement and rotation.
func UpdateCameraPro(camera *Camera, movement, rotation Vector3, zoom float32) {
	procUpdateCameraPro.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&movement), unsafe.Pointer(&rotation), unsafe.Pointer(&zoom))
}

// GetCameraForward returns the camera forward vector (normalized).
func GetCameraForward(camera *Camera) Vector3 {
	var r Vector3
	procGetCameraForward.Call(unsafe.Pointer(&r), unsafe.Pointer(&camera))
	return r
}

// GetCameraUp returns the camera up vector (normalized).
func GetCameraUp(camera *Camera) Vector3 {
	var r Vector3
	procGetCameraUp.Call(unsafe.Pointer(&r), unsafe.Pointer(&camera))
	return r
}

// GetCameraRight returns the camera right vector (normalized).
func GetCameraRight(camera *Camera) Vector3 {
	var r Vector3
	procGetCameraRight.Call(unsafe.Pointer(&r), unsafe.Pointer(&camera))
	return r
}

// CameraMoveForward moves the camera in its forward direction.
func CameraMoveForward(camera *Camera, distance float32, moveInWorldPlane bool) {
	procCameraMoveForward.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&distance), unsafe.Pointer(&moveInWorldPlane))
}

// CameraMoveUp moves the camera in its up direction.
func CameraMoveUp(camera *Camera, distance float32) {
	procCameraMoveUp.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&distance))
}

// CameraMoveRight moves the camera target in its current right direction.
func CameraMoveRight(camera *Camera, distance float32, moveInWorldPlane bool) {
	procCameraMoveRight.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&distance), unsafe.Pointer(&moveInWorldPlane))
}

// CameraMoveToTarget moves the camera position closer to or farther from the target.
func CameraMoveToTarget(camera *Camera, delta float32) {
	procCameraMoveToTarget.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&delta))
}

// CameraYaw rotates the camera around its up vector. Angle is in radians.
func CameraYaw(camera *Camera, angle float32, rotateAroundTarget bool) {
	procCameraYaw.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&angle), unsafe.Pointer(&rotateAroundTarget))
}

// CameraPitch rotates the camera around its right vector. Angle is in radians.
func CameraPitch(camera *Camera, angle float32, lockView, rotateAroundTarget, rotateUp bool) {
	procCameraPitch.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&angle), unsafe.Pointer(&lockView), unsafe.Pointer(&rotateAroundTarget), unsafe.Pointer(&rotateUp))
}

// CameraRoll rotates the camera around its forward vector. Angle is in radians.
func CameraRoll(camera *Camera, angle float32) {
	procCameraRoll.Call(nil, unsafe.Pointer(&camera), unsafe.Pointer(&angle))
}

// GetCameraViewMatrix returns the camera view matrix.
func GetCameraViewMatrix(camera *Camera) Matrix {
	var r Matrix
	procGetCameraViewMatrix.Call(unsafe.Pointer(&r), unsafe.Pointer(&camera))
	return r
}

// GetCameraProjectionMatrix returns the camera projection matrix.
func GetCameraProjectionMatrix(camera *Camera, aspect float32) Matrix {
	var r Matrix
	procGetCameraProjectionMatrix.Call(unsafe.Pointer(&r), unsafe.Pointer(&camera), unsafe.Pointer(&aspect))
	return r
}
