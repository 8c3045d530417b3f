package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procInitAudioDevice    = bind.New("InitAudioDevice", bind.Void)
	procCloseAudioDevice   = bind.New("CloseAudioDevice", bind.Void)
	procIsAudioDeviceReady = bind.New("IsAudioDeviceReady", bind.Bool)
	procSetMasterVolume    = bind.New("SetMasterVolume", bind.Void, bind.Float)
	procGetMasterVolume    = bind.New("GetMasterVolume", bind.Float)
)

// InitAudioDevice initializes the audio device and context.
func InitAudioDevice() {
	procInitAudioDevice.Call(nil)
}

// CloseAudioDevice closes the audio device and context.
func CloseAudioDevice() {
	procCloseAudioDevice.Call(nil)
}

// IsAudioDeviceReady reports whether the audio device is initialized.
func IsAudioDeviceReady() bool {
	var r bool
	procIsAudioDeviceReady.Call(unsafe.Pointer(&r))
	return r
}

// SetMasterVolume sets the master volume, 1.0 being the maximum.
func SetMasterVolume(volume float32) {
	procSetMasterVolume.Call(nil, unsafe.Pointer(&volume))
}

// GetMasterVolume returns the master volume.
func GetMasterVolume() float32 {
	var r float32
	procGetMasterVolume.Call(unsafe.Pointer(&r))
	return r
}
