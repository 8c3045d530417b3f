package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procInitWindow               = bind.New("InitWindow", bind.Void, bind.Int, bind.Int, bind.Ptr)
	procWindowShouldClose        = bind.New("WindowShouldClose", bind.Bool)
	procCloseWindow              = bind.New("CloseWindow", bind.Void)
	procIsWindowReady            = bind.New("IsWindowReady", bind.Bool)
	procIsWindowFullscreen       = bind.New("IsWindowFullscreen", bind.Bool)
	procIsWindowHidden           = bind.New("IsWindowHidden", bind.Bool)
	procIsWindowMinimized        = bind.New("IsWindowMinimized", bind.Bool)
	procIsWindowMaximized        = bind.New("IsWindowMaximized", bind.Bool)
	procIsWindowFocused          = bind.New("IsWindowFocused", bind.Bool)
	procIsWindowResized          = bind.New("IsWindowResized", bind.Bool)
	procIsWindowState            = bind.New("IsWindowState", bind.Bool, bind.UInt)
	procSetWindowState           = bind.New("SetWindowState", bind.Void, bind.UInt)
	procClearWindowState         = bind.New("ClearWindowState", bind.Void, bind.UInt)
	procToggleFullscreen         = bind.New("ToggleFullscreen", bind.Void)
	procToggleBorderlessWindowed = bind.Optional("ToggleBorderlessWindowed", bind.Void)
	procMaximizeWindow           = bind.New("MaximizeWindow", bind.Void)
	procMinimizeWindow           = bind.New("MinimizeWindow", bind.Void)
	procRestoreWindow            = bind.New("RestoreWindow", bind.Void)
	procSetWindowIcon            = bind.New("SetWindowIcon", bind.Void, cImage)
	procSetWindowIcons           = bind.New("SetWindowIcons", bind.Void, bind.Ptr, bind.Int)
	procSetWindowTitle           = bind.New("SetWindowTitle", bind.Void, bind.Ptr)
	procSetWindowPosition        = bind.New("SetWindowPosition", bind.Void, bind.Int, bind.Int)
	procSetWindowMonitor         = bind.New("SetWindowMonitor", bind.Void, bind.Int)
	procSetWindowMinSize         = bind.New("SetWindowMinSize", bind.Void, bind.Int, bind.Int)
	procSetWindowMaxSize         = bind.New("SetWindowMaxSize", bind.Void, bind.Int, bind.Int)
	procSetWindowSize            = bind.New("SetWindowSize", bind.Void, bind.Int, bind.Int)
	procSetWindowOpacity         = bind.New("SetWindowOpacity", bind.Void, bind.Float)
	procSetWindowFocused         = bind.Optional("SetWindowFocused", bind.Void)
	procGetWindowHandle          = bind.New("GetWindowHandle", bind.Ptr)
	procGetScreenWidth           = bind.New("GetScreenWidth", bind.Int)
	procGetScreenHeight          = bind.New("GetScreenHeight", bind.Int)
	procGetRenderWidth           = bind.New("GetRenderWidth", bind.Int)
	procGetRenderHeight          = bind.New("GetRenderHeight", bind.Int)
	procGetMonitorCount          = bind.New("GetMonitorCount", bind.Int)
	procGetCurrentMonitor        = bind.New("GetCurrentMonitor", bind.Int)
	procGetMonitorPosition       = bind.New("GetMonitorPosition", cVector2, bind.Int)
	procGetMonitorWidth          = bind.New("GetMonitorWidth", bind.Int, bind.Int)
	procGetMonitorHeight         = bind.New("GetMonitorHeight", bind.Int, bind.Int)
	procGetMonitorPhysicalWidth  = bind.New("GetMonitorPhysicalWidth", bind.Int, bind.Int)
	procGetMonitorPhysicalHeight = bind.New("GetMonitorPhysicalHeight", bind.Int, bind.Int)
	procGetMonitorRefreshRate    = bind.New("GetMonitorRefreshRate", bind.Int, bind.Int)
	procGetWindowPosition        = bind.New("GetWindowPosition", cVector2)
	procGetWindowScaleDPI        = bind.New("GetWindowScaleDPI", cVector2)
	procGetMonitorName           = bind.New("GetMonitorName", bind.Ptr, bind.Int)
	procSetClipboardText         = bind.New("SetClipboardText", bind.Void, bind.Ptr)
	procGetClipboardText         = bind.New("GetClipboardText", bind.Ptr)
	procEnableEventWaiting       = bind.New("EnableEventWaiting", bind.Void)
	procDisableEventWaiting      = bind.New("DisableEventWaiting", bind.Void)
	procSwapScreenBuffer         = bind.New("SwapScreenBuffer", bind.Void)
	procPollInputEvents          = bind.New("PollInputEvents", bind.Void)
	procWaitTime                 = bind.New("WaitTime", bind.Void, bind.Double)
	procShowCursor               = bind.New("ShowCursor", bind.Void)
	procHideCursor               = bind.New("HideCursor", bind.Void)
	procIsCursorHidden           = bind.New("IsCursorHidden", bind.Bool)
	procEnableCursor             = bind.New("EnableCursor", bind.Void)
	procDisableCursor            = bind.New("DisableCursor", bind.Void)
	procIsCursorOnScreen         = bind.New("IsCursorOnScreen", bind.Bool)
)

// InitWindow initializes the window and the OpenGL context.
func InitWindow(width, height int32, title string) {
	cTitle := bind.CString(title)
	procInitWindow.Call(nil, unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&cTitle))
}

// WindowShouldClose reports whether the application should close (escape key or the window close button).
func WindowShouldClose() bool {
	var r bool
	procWindowShouldClose.Call(unsafe.Pointer(&r))
	return r
}

// CloseWindow closes the window and unloads the OpenGL context.
func CloseWindow() {
	procCloseWindow.Call(nil)
}

// IsWindowReady reports whether the window has been initialized successfully.
func IsWindowReady() bool {
	var r bool
	procIsWindowReady.Call(unsafe.Pointer(&r))
	return r
}

// IsWindowFullscreen reports whether the window is in fullscreen mode.
func IsWindowFullscreen() bool {
	var r bool
	procIsWindowFullscreen.Call(unsafe.Pointer(&r))
	return r
}

// IsWindowHidden reports whether the window is hidden.
func IsWindowHidden() bool {
	var r bool
	procIsWindowHidden.Call(unsafe.Pointer(&r))
	return r
}

// IsWindowMinimized reports whether the window is minimized.
func IsWindowMinimized() bool {
	var r bool
	procIsWindowMinimized.Call(unsafe.Pointer(&r))
	return r
}

// IsWindowMaximized reports whether the window is maximized.
func IsWindowMaximized() bool {
	var r bool
	procIsWindowMaximized.Call(unsafe.Pointer(&r))
	return r
}

// IsWindowFocused reports whether the window has input focus.
func IsWindowFocused() bool {
	var r bool
	procIsWindowFocused.Call(unsafe.Pointer(&r))
	return r
}

// IsWindowResized reports whether the window was resized in the last frame.
func IsWindowResized() bool {
	var r bool
	procIsWindowResized.Call(unsafe.Pointer(&r))
	return r
}

// IsWindowState reports whether every window flag in flag is set.
func IsWindowState(flag ConfigFlags) bool {
	var r bool
	procIsWindowState.Call(unsafe.Pointer(&r), unsafe.Pointer(&flag))
	return r
}

// SetWindowState sets window configuration state.
func SetWindowState(flags ConfigFlags) {
	procSetWindowState.Call(nil, unsafe.Pointer(&flags))
}

// ClearWindowState clears window configuration state.
func ClearWindowState(flags ConfigFlags) {
	procClearWindowState.Call(nil, unsafe.Pointer(&flags))
}

// ToggleFullscreen toggles between windowed and fullscreen mode.
func ToggleFullscreen() {
	procToggleFullscreen.Call(nil)
}

// ToggleBorderlessWindowed toggles between windowed and borderless windowed mode.
func ToggleBorderlessWindowed() {
	procToggleBorderlessWindowed.Call(nil)
}

// MaximizeWindow makes the window as large as possible if it is resizable.
func MaximizeWindow() {
	procMaximizeWindow.Call(nil)
}

// MinimizeWindow iconifies the window if it is resizable.
func MinimizeWindow() {
	procMinimizeWindow.Call(nil)
}

// RestoreWindow restores a minimized or maximized window.
func RestoreWindow() {
	procRestoreWindow.Call(nil)
}

// SetWindowIcon sets the window icon from a single R8G8B8A8 image.
func SetWindowIcon(image Image) {
	procSetWindowIcon.Call(nil, unsafe.Pointer(&image))
}

// SetWindowIcons sets the window icon from several R8G8B8A8 images.
func SetWindowIcons(images []Image) {
	pImages := sliceData(images)
	nImages := int32(len(images))
	procSetWindowIcons.Call(nil, unsafe.Pointer(&pImages), unsafe.Pointer(&nImages))
}

// SetWindowTitle sets the window title.
func SetWindowTitle(title string) {
	cTitle := bind.CString(title)
	procSetWindowTitle.Call(nil, unsafe.Pointer(&cTitle))
}

// SetWindowPosition moves the window on screen.
func SetWindowPosition(x, y int32) {
	procSetWindowPosition.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y))
}

// SetWindowMonitor moves the window to a monitor.
func SetWindowMonitor(monitor int32) {
	procSetWindowMonitor.Call(nil, unsafe.Pointer(&monitor))
}

// SetWindowMinSize sets the minimum size of a resizable window.
func SetWindowMinSize(width, height int32) {
	procSetWindowMinSize.Call(nil, unsafe.Pointer(&width), unsafe.Pointer(&height))
}

// SetWindowMaxSize sets the maximum size of a resizable window.
func SetWindowMaxSize(width, height int32) {
	procSetWindowMaxSize.Call(nil, unsafe.Pointer(&width), unsafe.Pointer(&height))
}

// SetWindowSize sets the window dimensions.
func SetWindowSize(width, height int32) {
	procSetWindowSize.Call(nil, unsafe.Pointer(&width), unsafe.Pointer(&height))
}

// SetWindowOpacity sets the window opacity in [0, 1].
func SetWindowOpacity(opacity float32) {
	procSetWindowOpacity.Call(nil, unsafe.Pointer(&opacity))
}

// SetWindowFocused focuses the window.
func SetWindowFocused() {
	procSetWindowFocused.Call(nil)
}

// GetWindowHandle returns the native window handle.
func GetWindowHandle() unsafe.Pointer {
	var r unsafe.Pointer
	procGetWindowHandle.Call(unsafe.Pointer(&r))
	return r
}

// GetScreenWidth returns the current screen width.
func GetScreenWidth() int32 {
	var r int32
	procGetScreenWidth.Call(unsafe.Pointer(&r))
	return r
}

// GetScreenHeight returns the current screen height.
func GetScreenHeight() int32 {
	var r int32
	procGetScreenHeight.Call(unsafe.Pointer(&r))
	return r
}

// GetRenderWidth returns the current render width, which accounts for HiDPI.
func GetRenderWidth() int32 {
	var r int32
	procGetRenderWidth.Call(unsafe.Pointer(&r))
	return r
}

// GetRenderHeight returns the current render height, which accounts for HiDPI.
func GetRenderHeight() int32 {
	var r int32
	procGetRenderHeight.Call(unsafe.Pointer(&r))
	return r
}

// GetMonitorCount returns the number of connected monitors.
func GetMonitorCount() int32 {
	var r int32
	procGetMonitorCount.Call(unsafe.Pointer(&r))
	return r
}

// GetCurrentMonitor returns the monitor the window is on.
func GetCurrentMonitor() int32 {
	var r int32
	procGetCurrentMonitor.Call(unsafe.Pointer(&r))
	return r
}

// GetMonitorPosition returns the position of a monitor.
func GetMonitorPosition(monitor int32) Vector2 {
	var r Vector2
	procGetMonitorPosition.Call(unsafe.Pointer(&r), unsafe.Pointer(&monitor))
	return r
}

// GetMonitorWidth returns the current video mode width of a monitor.
func GetMonitorWidth(monitor int32) int32 {
	var r int32
	procGetMonitorWidth.Call(unsafe.Pointer(&r), unsafe.Pointer(&monitor))
	return r
}

// GetMonitorHeight returns the current video mode height of a monitor.
func GetMonitorHeight(monitor int32) int32 {
	var r int32
	procGetMonitorHeight.Call(unsafe.Pointer(&r), unsafe.Pointer(&monitor))
	return r
}

// GetMonitorPhysicalWidth returns the physical width of a monitor in millimetres.
func GetMonitorPhysicalWidth(monitor int32) int32 {
	var r int32
	procGetMonitorPhysicalWidth.Call(unsafe.Pointer(&r), unsafe.Pointer(&monitor))
	return r
}

// GetMonitorPhysicalHeight returns the physical height of a monitor in millimetres.
func GetMonitorPhysicalHeight(monitor int32) int32 {
	var r int32
	procGetMonitorPhysicalHeight.Call(unsafe.Pointer(&r), unsafe.Pointer(&monitor))
	return r
}

// GetMonitorRefreshRate returns the refresh rate of a monitor.
func GetMonitorRefreshRate(monitor int32) int32 {
	var r int32
	procGetMonitorRefreshRate.Call(unsafe.Pointer(&r), unsafe.Pointer(&monitor))
	return r
}

// GetWindowPosition returns the window position.
func GetWindowPosition() Vector2 {
	var r Vector2
	procGetWindowPosition.Call(unsafe.Pointer(&r))
	return r
}

// GetWindowScaleDPI returns the window scale DPI factor.
func GetWindowScaleDPI() Vector2 {
	var r Vector2
	procGetWindowScaleDPI.Call(unsafe.Pointer(&r))
	return r
}

// GetMonitorName returns the human-readable name of a monitor.
func GetMonitorName(monitor int32) string {
	var r *byte
	procGetMonitorName.Call(unsafe.Pointer(&r), unsafe.Pointer(&monitor))
	return bind.GoString(r)
}

// SetClipboardText sets the clipboard text.
func SetClipboardText(text string) {
	cText := bind.CString(text)
	procSetClipboardText.Call(nil, unsafe.Pointer(&cText))
}

// GetClipboardText returns the clipboard text.
func GetClipboardText() string {
	var r *byte
	procGetClipboardText.Call(unsafe.Pointer(&r))
	return bind.GoString(r)
}

// EnableEventWaiting makes EndDrawing wait for input events instead of polling.
func EnableEventWaiting() {
	procEnableEventWaiting.Call(nil)
}

// DisableEventWaiting restores event polling in EndDrawing.
func DisableEventWaiting() {
	procDisableEventWaiting.Call(nil)
}

// SwapScreenBuffer swaps the back buffer with the front buffer.
func SwapScreenBuffer() {
	procSwapScreenBuffer.Call(nil)
}

// PollInputEvents registers all input events.
func PollInputEvents() {
	procPollInputEvents.Call(nil)
}

// WaitTime sleeps for the given number of seconds.
func WaitTime(seconds float64) {
	procWaitTime.Call(nil, unsafe.Pointer(&seconds))
}

// ShowCursor shows the cursor.
func ShowCursor() {
	procShowCursor.Call(nil)
}

// HideCursor hides the cursor.
func HideCursor() {
	procHideCursor.Call(nil)
}

// IsCursorHidden reports whether the cursor is hidden.
func IsCursorHidden() bool {
	var r bool
	procIsCursorHidden.Call(unsafe.Pointer(&r))
	return r
}

// EnableCursor unlocks the cursor.
func EnableCursor() {
	procEnableCursor.Call(nil)
}

// DisableCursor locks the cursor to the window.
func DisableCursor() {
	procDisableCursor.Call(nil)
}

// IsCursorOnScreen reports whether the cursor is within the window.
func IsCursorOnScreen() bool {
	var r bool
	procIsCursorOnScreen.Call(unsafe.Pointer(&r))
	return r
}
