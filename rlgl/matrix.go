package rlgl

import (
	"unsafe"

	rl "github.com/gogpu/raylib"
	"github.com/gogpu/raylib/internal/bind"
	"github.com/gogpu/raylib/raymath"
)

var (
	procMatrixMode                = bind.New("rlMatrixMode", bind.Void, bind.Int)
	procPushMatrix                = bind.New("rlPushMatrix", bind.Void)
	procPopMatrix                 = bind.New("rlPopMatrix", bind.Void)
	procLoadIdentity              = bind.New("rlLoadIdentity", bind.Void)
	procTranslatef                = bind.New("rlTranslatef", bind.Void, bind.Float, bind.Float, bind.Float)
	procRotatef                   = bind.New("rlRotatef", bind.Void, bind.Float, bind.Float, bind.Float, bind.Float)
	procScalef                    = bind.New("rlScalef", bind.Void, bind.Float, bind.Float, bind.Float)
	procFrustum                   = bind.New("rlFrustum", bind.Void, bind.Double, bind.Double, bind.Double, bind.Double, bind.Double, bind.Double)
	procOrtho                     = bind.New("rlOrtho", bind.Void, bind.Double, bind.Double, bind.Double, bind.Double, bind.Double, bind.Double)
	procViewport                  = bind.New("rlViewport", bind.Void, bind.Int, bind.Int, bind.Int, bind.Int)
	procGetMatrixModelview        = bind.New("rlGetMatrixModelview", cMatrix)
	procGetMatrixProjection       = bind.New("rlGetMatrixProjection", cMatrix)
	procGetMatrixTransform        = bind.New("rlGetMatrixTransform", cMatrix)
	procGetMatrixProjectionStereo = bind.New("rlGetMatrixProjectionStereo", cMatrix, bind.Int)
	procGetMatrixViewOffsetStereo = bind.New("rlGetMatrixViewOffsetStereo", cMatrix, bind.Int)
	procSetMatrixProjection       = bind.New("rlSetMatrixProjection", bind.Void, cMatrix)
	procSetMatrixModelview        = bind.New("rlSetMatrixModelview", bind.Void, cMatrix)
	procSetMatrixProjectionStereo = bind.New("rlSetMatrixProjectionStereo", bind.Void, cMatrix, cMatrix)
	procSetMatrixViewOffsetStereo = bind.New("rlSetMatrixViewOffsetStereo", bind.Void, cMatrix, cMatrix)
)

// MatrixMode selects the matrix stack later operations apply to.
func MatrixMode(mode MatrixStack) {
	procMatrixMode.Call(nil, unsafe.Pointer(&mode))
}

// PushMatrix pushes a copy of the current matrix.
func PushMatrix() {
	procPushMatrix.Call(nil)
}

// PopMatrix pops the current matrix.
func PopMatrix() {
	procPopMatrix.Call(nil)
}

// LoadIdentity resets the current matrix to identity.
func LoadIdentity() {
	procLoadIdentity.Call(nil)
}

// Translatef multiplies the current matrix by a translation.
func Translatef(x, y, z float32) {
	procTranslatef.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z))
}

// Rotatef multiplies the current matrix by a rotation of angle degrees around an axis.
func Rotatef(angle, x, y, z float32) {
	procRotatef.Call(nil, unsafe.Pointer(&angle), unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z))
}

// Scalef multiplies the current matrix by a scale.
func Scalef(x, y, z float32) {
	procScalef.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z))
}

// Frustum multiplies the current matrix by a perspective projection.
func Frustum(left, right, bottom, top, znear, zfar float64) {
	procFrustum.Call(nil, unsafe.Pointer(&left), unsafe.Pointer(&right), unsafe.Pointer(&bottom), unsafe.Pointer(&top), unsafe.Pointer(&znear), unsafe.Pointer(&zfar))
}

// Ortho multiplies the current matrix by an orthographic projection.
func Ortho(left, right, bottom, top, znear, zfar float64) {
	procOrtho.Call(nil, unsafe.Pointer(&left), unsafe.Pointer(&right), unsafe.Pointer(&bottom), unsafe.Pointer(&top), unsafe.Pointer(&znear), unsafe.Pointer(&zfar))
}

// Viewport sets the viewport area.
func Viewport(x, y, width, height int32) {
	procViewport.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height))
}

// GetMatrixModelview returns the internal modelview matrix.
func GetMatrixModelview() rl.Matrix {
	var r rl.Matrix
	procGetMatrixModelview.Call(unsafe.Pointer(&r))
	return r
}

// GetMatrixProjection returns the internal projection matrix.
func GetMatrixProjection() rl.Matrix {
	var r rl.Matrix
	procGetMatrixProjection.Call(unsafe.Pointer(&r))
	return r
}

// GetMatrixTransform returns the internal accumulated transform matrix.
func GetMatrixTransform() rl.Matrix {
	var r rl.Matrix
	procGetMatrixTransform.Call(unsafe.Pointer(&r))
	return r
}

// GetMatrixProjectionStereo returns the projection matrix of one stereo eye.
func GetMatrixProjectionStereo(eye int32) rl.Matrix {
	var r rl.Matrix
	procGetMatrixProjectionStereo.Call(unsafe.Pointer(&r), unsafe.Pointer(&eye))
	return r
}

// GetMatrixViewOffsetStereo returns the view offset matrix of one stereo eye.
func GetMatrixViewOffsetStereo(eye int32) rl.Matrix {
	var r rl.Matrix
	procGetMatrixViewOffsetStereo.Call(unsafe.Pointer(&r), unsafe.Pointer(&eye))
	return r
}

// SetMatrixProjection replaces the projection matrix.
func SetMatrixProjection(proj rl.Matrix) {
	procSetMatrixProjection.Call(nil, unsafe.Pointer(&proj))
}

// SetMatrixModelview replaces the modelview matrix.
func SetMatrixModelview(view rl.Matrix) {
	procSetMatrixModelview.Call(nil, unsafe.Pointer(&view))
}

// SetMatrixProjectionStereo sets the projection matrices for stereo rendering.
func SetMatrixProjectionStereo(right, left rl.Matrix) {
	procSetMatrixProjectionStereo.Call(nil, unsafe.Pointer(&right), unsafe.Pointer(&left))
}

// SetMatrixViewOffsetStereo sets the view offset matrices for stereo rendering.
func SetMatrixViewOffsetStereo(right, left rl.Matrix) {
	procSetMatrixViewOffsetStereo.Call(nil, unsafe.Pointer(&right), unsafe.Pointer(&left))
}

var procMultMatrixf = bind.New("rlMultMatrixf", bind.Void, bind.Ptr)

// MultMatrixf multiplies the current matrix by m.
func MultMatrixf(m rl.Matrix) {
	f := raymath.MatrixToFloatV(m)
	p := &f[0]
	procMultMatrixf.Call(nil, unsafe.Pointer(&p))
}
