package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procLoadMusicStream      = bind.New("LoadMusicStream", cMusic, bind.Ptr)
	procIsMusicReady         = bind.New("IsMusicReady", bind.Bool, cMusic)
	procUnloadMusicStream    = bind.New("UnloadMusicStream", bind.Void, cMusic)
	procPlayMusicStream      = bind.New("PlayMusicStream", bind.Void, cMusic)
	procIsMusicStreamPlaying = bind.New("IsMusicStreamPlaying", bind.Bool, cMusic)
	procUpdateMusicStream    = bind.New("UpdateMusicStream", bind.Void, cMusic)
	procStopMusicStream      = bind.New("StopMusicStream", bind.Void, cMusic)
	procPauseMusicStream     = bind.New("PauseMusicStream", bind.Void, cMusic)
	procResumeMusicStream    = bind.New("ResumeMusicStream", bind.Void, cMusic)
	procSeekMusicStream      = bind.New("SeekMusicStream", bind.Void, cMusic, bind.Float)
	procSetMusicVolume       = bind.New("SetMusicVolume", bind.Void, cMusic, bind.Float)
	procSetMusicPitch        = bind.New("SetMusicPitch", bind.Void, cMusic, bind.Float)
	procSetMusicPan          = bind.New("SetMusicPan", bind.Void, cMusic, bind.Float)
	procGetMusicTimeLength   = bind.New("GetMusicTimeLength", bind.Float, cMusic)
	procGetMusicTimePlayed   = bind.New("GetMusicTimePlayed", bind.Float, cMusic)
)

// LoadMusicStream opens a music file for streaming.
func LoadMusicStream(fileName string) Music {
	cFileName := bind.CString(fileName)
	var r Music
	procLoadMusicStream.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName))
	return r
}

// IsMusicReady reports whether a music stream is loaded.
func IsMusicReady(music Music) bool {
	var r bool
	procIsMusicReady.Call(unsafe.Pointer(&r), unsafe.Pointer(&music))
	return r
}

// UnloadMusicStream closes a music stream.
func UnloadMusicStream(music Music) {
	procUnloadMusicStream.Call(nil, unsafe.Pointer(&music))
}

// PlayMusicStream starts playing a music stream.
func PlayMusicStream(music Music) {
	procPlayMusicStream.Call(nil, unsafe.Pointer(&music))
}

// IsMusicStreamPlaying reports whether music is playing.
func IsMusicStreamPlaying(music Music) bool {
	var r bool
	procIsMusicStreamPlaying.Call(unsafe.Pointer(&r), unsafe.Pointer(&music))
	return r
}

// UpdateMusicStream refills the music stream buffers. Call it every frame.
func UpdateMusicStream(music Music) {
	procUpdateMusicStream.Call(nil, unsafe.Pointer(&music))
}

// StopMusicStream stops music playing.
func StopMusicStream(music Music) {
	procStopMusicStream.Call(nil, unsafe.Pointer(&music))
}

// PauseMusicStream pauses music playing.
func PauseMusicStream(music Music) {
	procPauseMusicStream.Call(nil, unsafe.Pointer(&music))
}

// ResumeMusicStream resumes paused music.
func ResumeMusicStream(music Music) {
	procResumeMusicStream.Call(nil, unsafe.Pointer(&music))
}

// SeekMusicStream moves the play position, in seconds.
func SeekMusicStream(music Music, position float32) {
	procSeekMusicStream.Call(nil, unsafe.Pointer(&music), unsafe.Pointer(&position))
}

// SetMusicVolume sets the volume of music, 1.0 being the maximum.
func SetMusicVolume(music Music, volume float32) {
	procSetMusicVolume.Call(nil, unsafe.Pointer(&music), unsafe.Pointer(&volume))
}

// SetMusicPitch sets the pitch of music, 1.0 being the base level.
func SetMusicPitch(music Music, pitch float32) {
	procSetMusicPitch.Call(nil, unsafe.Pointer(&music), unsafe.Pointer(&pitch))
}

// SetMusicPan sets the pan of music, 0.5 being the center.
func SetMusicPan(music Music, pan float32) {
	procSetMusicPan.Call(nil, unsafe.Pointer(&music), unsafe.Pointer(&pan))
}

// GetMusicTimeLength returns the music length in seconds.
func GetMusicTimeLength(music Music) float32 {
	var r float32
	procGetMusicTimeLength.Call(unsafe.Pointer(&r), unsafe.Pointer(&music))
	return r
}

// GetMusicTimePlayed returns the current play position in seconds.
func GetMusicTimePlayed(music Music) float32 {
	var r float32
	procGetMusicTimePlayed.Call(unsafe.Pointer(&r), unsafe.Pointer(&music))
	return r
}

var procLoadMusicStreamFromMemory = bind.New("LoadMusicStreamFromMemory", cMusic, bind.Ptr, bind.Ptr, bind.Int)

// LoadMusicStreamFromMemory opens music held in memory for streaming.
// data must stay reachable until UnloadMusicStream.
func LoadMusicStreamFromMemory(fileType string, data []byte) Music {
	cType := bind.CString(fileType)
	pData := sliceData(data)
	n := int32(len(data))
	var r Music
	procLoadMusicStreamFromMemory.Call(unsafe.Pointer(&r), unsafe.Pointer(&cType), unsafe.Pointer(&pData), unsafe.Pointer(&n))
	return r
}
