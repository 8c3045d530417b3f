package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procSetGesturesEnabled     = bind.New("SetGesturesEnabled", bind.Void, bind.UInt)
	procIsGestureDetected      = bind.New("IsGestureDetected", bind.Bool, bind.UInt)
	procGetGestureDetected     = bind.New("GetGestureDetected", bind.UInt)
	procGetGestureHoldDuration = bind.New("GetGestureHoldDuration", bind.Float)
	procGetGestureDragVector   = bind.New("GetGestureDragVector", cVector2)
	procGetGestureDragAngle    = bind.New("GetGestureDragAngle", bind.Float)
	procGetGesturePinchVector  = bind.New("GetGesturePinchVector", cVector2)
	procGetGesturePinchAngle   = bind.New("GetGesturePinchAngle", bind.Float)
)

// SetGesturesEnabled enables a set of gestures.
func SetGesturesEnabled(flags Gesture) {
	procSetGesturesEnabled.Call(nil, unsafe.Pointer(&flags))
}

// IsGestureDetected reports whether a gesture was detected.
func IsGestureDetected(gesture Gesture) bool {
	var r bool
	procIsGestureDetected.Call(unsafe.Pointer(&r), unsafe.Pointer(&gesture))
	return r
}

// GetGestureDetected returns the latest detected gesture.
func GetGestureDetected() Gesture {
	var r Gesture
	procGetGestureDetected.Call(unsafe.Pointer(&r))
	return r
}

// GetGestureHoldDuration returns the hold time in milliseconds.
func GetGestureHoldDuration() float32 {
	var r float32
	procGetGestureHoldDuration.Call(unsafe.Pointer(&r))
	return r
}

// GetGestureDragVector returns the drag vector.
func GetGestureDragVector() Vector2 {
	var r Vector2
	procGetGestureDragVector.Call(unsafe.Pointer(&r))
	return r
}

// GetGestureDragAngle returns the drag angle.
func GetGestureDragAngle() float32 {
	var r float32
	procGetGestureDragAngle.Call(unsafe.Pointer(&r))
	return r
}

// GetGesturePinchVector returns the pinch delta.
func GetGesturePinchVector() Vector2 {
	var r Vector2
	procGetGesturePinchVector.Call(unsafe.Pointer(&r))
	return r
}

// GetGesturePinchAngle returns the pinch angle.
func GetGesturePinchAngle() float32 {
	var r float32
	procGetGesturePinchAngle.Call(unsafe.Pointer(&r))
	return r
}
