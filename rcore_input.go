package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procIsKeyPressed            = bind.New("IsKeyPressed", bind.Bool, bind.Int)
	procIsKeyPressedRepeat      = bind.Optional("IsKeyPressedRepeat", bind.Bool, bind.Int)
	procIsKeyDown               = bind.New("IsKeyDown", bind.Bool, bind.Int)
	procIsKeyReleased           = bind.New("IsKeyReleased", bind.Bool, bind.Int)
	procIsKeyUp                 = bind.New("IsKeyUp", bind.Bool, bind.Int)
	procSetExitKey              = bind.New("SetExitKey", bind.Void, bind.Int)
	procGetKeyPressed           = bind.New("GetKeyPressed", bind.Int)
	procGetCharPressed          = bind.New("GetCharPressed", bind.Int)
	procIsGamepadAvailable      = bind.New("IsGamepadAvailable", bind.Bool, bind.Int)
	procGetGamepadName          = bind.New("GetGamepadName", bind.Ptr, bind.Int)
	procIsGamepadButtonPressed  = bind.New("IsGamepadButtonPressed", bind.Bool, bind.Int, bind.Int)
	procIsGamepadButtonDown     = bind.New("IsGamepadButtonDown", bind.Bool, bind.Int, bind.Int)
	procIsGamepadButtonReleased = bind.New("IsGamepadButtonReleased", bind.Bool, bind.Int, bind.Int)
	procIsGamepadButtonUp       = bind.New("IsGamepadButtonUp", bind.Bool, bind.Int, bind.Int)
	procGetGamepadButtonPressed = bind.New("GetGamepadButtonPressed", bind.Int)
	procGetGamepadAxisCount     = bind.New("GetGamepadAxisCount", bind.Int, bind.Int)
	procGetGamepadAxisMovement  = bind.New("GetGamepadAxisMovement", bind.Float, bind.Int, bind.Int)
	procSetGamepadMappings      = bind.New("SetGamepadMappings", bind.Int, bind.Ptr)
	procIsMouseButtonPressed    = bind.New("IsMouseButtonPressed", bind.Bool, bind.Int)
	procIsMouseButtonDown       = bind.New("IsMouseButtonDown", bind.Bool, bind.Int)
	procIsMouseButtonReleased   = bind.New("IsMouseButtonReleased", bind.Bool, bind.Int)
	procIsMouseButtonUp         = bind.New("IsMouseButtonUp", bind.Bool, bind.Int)
	procGetMouseX               = bind.New("GetMouseX", bind.Int)
	procGetMouseY               = bind.New("GetMouseY", bind.Int)
	procGetMousePosition        = bind.New("GetMousePosition", cVector2)
	procGetMouseDelta           = bind.New("GetMouseDelta", cVector2)
	procSetMousePosition        = bind.New("SetMousePosition", bind.Void, bind.Int, bind.Int)
	procSetMouseOffset          = bind.New("SetMouseOffset", bind.Void, bind.Int, bind.Int)
	procSetMouseScale           = bind.New("SetMouseScale", bind.Void, bind.Float, bind.Float)
	procGetMouseWheelMove       = bind.New("GetMouseWheelMove", bind.Float)
	procGetMouseWheelMoveV      = bind.New("GetMouseWheelMoveV", cVector2)
	procSetMouseCursor          = bind.New("SetMouseCursor", bind.Void, bind.Int)
	procGetTouchX               = bind.New("GetTouchX", bind.Int)
	procGetTouchY               = bind.New("GetTouchY", bind.Int)
	procGetTouchPosition        = bind.New("GetTouchPosition", cVector2, bind.Int)
	procGetTouchPointId         = bind.New("GetTouchPointId", bind.Int, bind.Int)
	procGetTouchPointCount      = bind.New("GetTouchPointCount", bind.Int)
)

// IsKeyPressed reports whether a key was pressed once.
func IsKeyPressed(key KeyboardKey) bool {
	var r bool
	procIsKeyPressed.Call(unsafe.Pointer(&r), unsafe.Pointer(&key))
	return r
}

// IsKeyPressedRepeat reports whether a key was pressed again through key repeat.
func IsKeyPressedRepeat(key KeyboardKey) bool {
	var r bool
	procIsKeyPressedRepeat.Call(unsafe.Pointer(&r), unsafe.Pointer(&key))
	return r
}

// IsKeyDown reports whether a key is being held down.
func IsKeyDown(key KeyboardKey) bool {
	var r bool
	procIsKeyDown.Call(unsafe.Pointer(&r), unsafe.Pointer(&key))
	return r
}

// IsKeyReleased reports whether a key was released once.
func IsKeyReleased(key KeyboardKey) bool {
	var r bool
	procIsKeyReleased.Call(unsafe.Pointer(&r), unsafe.Pointer(&key))
	return r
}

// IsKeyUp reports whether a key is not being pressed.
func IsKeyUp(key KeyboardKey) bool {
	var r bool
	procIsKeyUp.Call(unsafe.Pointer(&r), unsafe.Pointer(&key))
	return r
}

// SetExitKey sets the key that closes the window. KeyNull disables it.
func SetExitKey(key KeyboardKey) {
	procSetExitKey.Call(nil, unsafe.Pointer(&key))
}

// GetKeyPressed returns the next queued key pressed, or KeyNull when the queue is empty.
func GetKeyPressed() KeyboardKey {
	var r KeyboardKey
	procGetKeyPressed.Call(unsafe.Pointer(&r))
	return r
}

// GetCharPressed returns the next queued character pressed, or 0 when the queue is empty.
func GetCharPressed() rune {
	var r rune
	procGetCharPressed.Call(unsafe.Pointer(&r))
	return r
}

// IsGamepadAvailable reports whether a gamepad is connected.
func IsGamepadAvailable(gamepad int32) bool {
	var r bool
	procIsGamepadAvailable.Call(unsafe.Pointer(&r), unsafe.Pointer(&gamepad))
	return r
}

// GetGamepadName returns the internal name of a gamepad.
func GetGamepadName(gamepad int32) string {
	var r *byte
	procGetGamepadName.Call(unsafe.Pointer(&r), unsafe.Pointer(&gamepad))
	return bind.GoString(r)
}

// IsGamepadButtonPressed reports whether a gamepad button was pressed once.
func IsGamepadButtonPressed(gamepad int32, button GamepadButton) bool {
	var r bool
	procIsGamepadButtonPressed.Call(unsafe.Pointer(&r), unsafe.Pointer(&gamepad), unsafe.Pointer(&button))
	return r
}

// IsGamepadButtonDown reports whether a gamepad button is being held down.
func IsGamepadButtonDown(gamepad int32, button GamepadButton) bool {
	var r bool
	procIsGamepadButtonDown.Call(unsafe.Pointer(&r), unsafe.Pointer(&gamepad), unsafe.Pointer(&button))
	return r
}

// IsGamepadButtonReleased reports whether a gamepad button was released once.
func IsGamepadButtonReleased(gamepad int32, button GamepadButton) bool {
	var r bool
	procIsGamepadButtonReleased.Call(unsafe.Pointer(&r), unsafe.Pointer(&gamepad), unsafe.Pointer(&button))
	return r
}

// IsGamepadButtonUp reports whether a gamepad button is not being pressed.
func IsGamepadButtonUp(gamepad int32, button GamepadButton) bool {
	var r bool
	procIsGamepadButtonUp.Call(unsafe.Pointer(&r), unsafe.Pointer(&gamepad), unsafe.Pointer(&button))
	return r
}

// GetGamepadButtonPressed returns the last gamepad button pressed.
func GetGamepadButtonPressed() GamepadButton {
	var r GamepadButton
	procGetGamepadButtonPressed.Call(unsafe.Pointer(&r))
	return r
}

// GetGamepadAxisCount returns the number of axes of a gamepad.
func GetGamepadAxisCount(gamepad int32) int32 {
	var r int32
	procGetGamepadAxisCount.Call(unsafe.Pointer(&r), unsafe.Pointer(&gamepad))
	return r
}

// GetGamepadAxisMovement returns the movement of a gamepad axis.
func GetGamepadAxisMovement(gamepad int32, axis GamepadAxis) float32 {
	var r float32
	procGetGamepadAxisMovement.Call(unsafe.Pointer(&r), unsafe.Pointer(&gamepad), unsafe.Pointer(&axis))
	return r
}

// SetGamepadMappings sets SDL_GameControllerDB mappings.
func SetGamepadMappings(mappings string) int32 {
	cMappings := bind.CString(mappings)
	var r int32
	procSetGamepadMappings.Call(unsafe.Pointer(&r), unsafe.Pointer(&cMappings))
	return r
}

// IsMouseButtonPressed reports whether a mouse button was pressed once.
func IsMouseButtonPressed(button MouseButton) bool {
	var r bool
	procIsMouseButtonPressed.Call(unsafe.Pointer(&r), unsafe.Pointer(&button))
	return r
}

// IsMouseButtonDown reports whether a mouse button is being held down.
func IsMouseButtonDown(button MouseButton) bool {
	var r bool
	procIsMouseButtonDown.Call(unsafe.Pointer(&r), unsafe.Pointer(&button))
	return r
}

// IsMouseButtonReleased reports whether a mouse button was released once.
func IsMouseButtonReleased(button MouseButton) bool {
	var r bool
	procIsMouseButtonReleased.Call(unsafe.Pointer(&r), unsafe.Pointer(&button))
	return r
}

// IsMouseButtonUp reports whether a mouse button is not being pressed.
func IsMouseButtonUp(button MouseButton) bool {
	var r bool
	procIsMouseButtonUp.Call(unsafe.Pointer(&r), unsafe.Pointer(&button))
	return r
}

// GetMouseX returns the mouse X position.
func GetMouseX() int32 {
	var r int32
	procGetMouseX.Call(unsafe.Pointer(&r))
	return r
}

// GetMouseY returns the mouse Y position.
func GetMouseY() int32 {
	var r int32
	procGetMouseY.Call(unsafe.Pointer(&r))
	return r
}

// GetMousePosition returns the mouse position.
func GetMousePosition() Vector2 {
	var r Vector2
	procGetMousePosition.Call(unsafe.Pointer(&r))
	return r
}

// GetMouseDelta returns the mouse movement since the last frame.
func GetMouseDelta() Vector2 {
	var r Vector2
	procGetMouseDelta.Call(unsafe.Pointer(&r))
	return r
}

// SetMousePosition sets the mouse position.
func SetMousePosition(x, y int32) {
	procSetMousePosition.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y))
}

// SetMouseOffset sets the mouse offset.
func SetMouseOffset(offsetX, offsetY int32) {
	procSetMouseOffset.Call(nil, unsafe.Pointer(&offsetX), unsafe.Pointer(&offsetY))
}

// SetMouseScale sets the mouse scaling.
func SetMouseScale(scaleX, scaleY float32) {
	procSetMouseScale.Call(nil, unsafe.Pointer(&scaleX), unsafe.Pointer(&scaleY))
}

// GetMouseWheelMove returns the mouse wheel movement along whichever axis moved more.
func GetMouseWheelMove() float32 {
	var r float32
	procGetMouseWheelMove.Call(unsafe.Pointer(&r))
	return r
}

// GetMouseWheelMoveV returns the mouse wheel movement on both axes.
func GetMouseWheelMoveV() Vector2 {
	var r Vector2
	procGetMouseWheelMoveV.Call(unsafe.Pointer(&r))
	return r
}

// SetMouseCursor sets the mouse cursor shape.
func SetMouseCursor(cursor MouseCursor) {
	procSetMouseCursor.Call(nil, unsafe.Pointer(&cursor))
}

// GetTouchX returns the touch X position of the first touch point.
func GetTouchX() int32 {
	var r int32
	procGetTouchX.Call(unsafe.Pointer(&r))
	return r
}

// GetTouchY returns the touch Y position of the first touch point.
func GetTouchY() int32 {
	var r int32
	procGetTouchY.Call(unsafe.Pointer(&r))
	return r
}

// GetTouchPosition returns the position of a touch point.
func GetTouchPosition(index int32) Vector2 {
	var r Vector2
	procGetTouchPosition.Call(unsafe.Pointer(&r), unsafe.Pointer(&index))
	return r
}

// GetTouchPointId returns the identifier of a touch point.
func GetTouchPointId(index int32) int32 {
	var r int32
	procGetTouchPointId.Call(unsafe.Pointer(&r), unsafe.Pointer(&index))
	return r
}

// GetTouchPointCount returns the number of touch points.
func GetTouchPointCount() int32 {
	var r int32
	procGetTouchPointCount.Call(unsafe.Pointer(&r))
	return r
}
