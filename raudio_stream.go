package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procLoadAudioStream                 = bind.New("LoadAudioStream", cAudioStream, bind.UInt, bind.UInt, bind.UInt)
	procIsAudioStreamReady              = bind.New("IsAudioStreamReady", bind.Bool, cAudioStream)
	procUnloadAudioStream               = bind.New("UnloadAudioStream", bind.Void, cAudioStream)
	procIsAudioStreamProcessed          = bind.New("IsAudioStreamProcessed", bind.Bool, cAudioStream)
	procPlayAudioStream                 = bind.New("PlayAudioStream", bind.Void, cAudioStream)
	procPauseAudioStream                = bind.New("PauseAudioStream", bind.Void, cAudioStream)
	procResumeAudioStream               = bind.New("ResumeAudioStream", bind.Void, cAudioStream)
	procIsAudioStreamPlaying            = bind.New("IsAudioStreamPlaying", bind.Bool, cAudioStream)
	procStopAudioStream                 = bind.New("StopAudioStream", bind.Void, cAudioStream)
	procSetAudioStreamVolume            = bind.New("SetAudioStreamVolume", bind.Void, cAudioStream, bind.Float)
	procSetAudioStreamPitch             = bind.New("SetAudioStreamPitch", bind.Void, cAudioStream, bind.Float)
	procSetAudioStreamPan               = bind.New("SetAudioStreamPan", bind.Void, cAudioStream, bind.Float)
	procSetAudioStreamBufferSizeDefault = bind.New("SetAudioStreamBufferSizeDefault", bind.Void, bind.Int)
)

// LoadAudioStream creates a raw audio stream. sampleSize is 8, 16 or 32 bits.
func LoadAudioStream(sampleRate, sampleSize, channels uint32) AudioStream {
	var r AudioStream
	procLoadAudioStream.Call(unsafe.Pointer(&r), unsafe.Pointer(&sampleRate), unsafe.Pointer(&sampleSize), unsafe.Pointer(&channels))
	return r
}

// IsAudioStreamReady reports whether a stream is loaded.
func IsAudioStreamReady(stream AudioStream) bool {
	var r bool
	procIsAudioStreamReady.Call(unsafe.Pointer(&r), unsafe.Pointer(&stream))
	return r
}

// UnloadAudioStream releases a stream.
func UnloadAudioStream(stream AudioStream) {
	procUnloadAudioStream.Call(nil, unsafe.Pointer(&stream))
}

// IsAudioStreamProcessed reports whether a stream buffer needs refilling.
func IsAudioStreamProcessed(stream AudioStream) bool {
	var r bool
	procIsAudioStreamProcessed.Call(unsafe.Pointer(&r), unsafe.Pointer(&stream))
	return r
}

// PlayAudioStream plays a stream.
func PlayAudioStream(stream AudioStream) {
	procPlayAudioStream.Call(nil, unsafe.Pointer(&stream))
}

// PauseAudioStream pauses a stream.
func PauseAudioStream(stream AudioStream) {
	procPauseAudioStream.Call(nil, unsafe.Pointer(&stream))
}

// ResumeAudioStream resumes a stream.
func ResumeAudioStream(stream AudioStream) {
	procResumeAudioStream.Call(nil, unsafe.Pointer(&stream))
}

// IsAudioStreamPlaying reports whether a stream is playing.
func IsAudioStreamPlaying(stream AudioStream) bool {
	var r bool
	procIsAudioStreamPlaying.Call(unsafe.Pointer(&r), unsafe.Pointer(&stream))
	return r
}

// StopAudioStream stops a stream.
func StopAudioStream(stream AudioStream) {
	procStopAudioStream.Call(nil, unsafe.Pointer(&stream))
}

// SetAudioStreamVolume sets the volume of a stream, 1.0 being the maximum.
func SetAudioStreamVolume(stream AudioStream, volume float32) {
	procSetAudioStreamVolume.Call(nil, unsafe.Pointer(&stream), unsafe.Pointer(&volume))
}

// SetAudioStreamPitch sets the pitch of a stream, 1.0 being the base level.
func SetAudioStreamPitch(stream AudioStream, pitch float32) {
	procSetAudioStreamPitch.Call(nil, unsafe.Pointer(&stream), unsafe.Pointer(&pitch))
}

// SetAudioStreamPan sets the pan of a stream, 0.5 being the center.
func SetAudioStreamPan(stream AudioStream, pan float32) {
	procSetAudioStreamPan.Call(nil, unsafe.Pointer(&stream), unsafe.Pointer(&pan))
}

// SetAudioStreamBufferSizeDefault sets the default buffer size, in frames, of new streams.
func SetAudioStreamBufferSizeDefault(size int32) {
	procSetAudioStreamBufferSizeDefault.Call(nil, unsafe.Pointer(&size))
}

var procUpdateAudioStream = bind.New("UpdateAudioStream", bind.Void, cAudioStream, bind.Ptr, bind.Int)

// UpdateAudioStream queues interleaved samples on a stream. The sample
// type must match the stream's sample size.
func UpdateAudioStream[T Sample](stream AudioStream, data []T) {
	frames := frameCount(len(data), stream.Channels)
	if frames == 0 {
		return
	}
	pData := sliceData(data)
	procUpdateAudioStream.Call(nil, unsafe.Pointer(&stream), unsafe.Pointer(&pData), unsafe.Pointer(&frames))
}
