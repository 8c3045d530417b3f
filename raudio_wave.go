package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procLoadWave          = bind.New("LoadWave", cWave, bind.Ptr)
	procIsWaveReady       = bind.New("IsWaveReady", bind.Bool, cWave)
	procLoadSound         = bind.New("LoadSound", cSound, bind.Ptr)
	procLoadSoundFromWave = bind.New("LoadSoundFromWave", cSound, cWave)
	procLoadSoundAlias    = bind.Optional("LoadSoundAlias", cSound, cSound)
	procIsSoundReady      = bind.New("IsSoundReady", bind.Bool, cSound)
	procUnloadWave        = bind.New("UnloadWave", bind.Void, cWave)
	procUnloadSound       = bind.New("UnloadSound", bind.Void, cSound)
	procUnloadSoundAlias  = bind.Optional("UnloadSoundAlias", bind.Void, cSound)
	procExportWave        = bind.New("ExportWave", bind.Bool, cWave, bind.Ptr)
	procExportWaveAsCode  = bind.New("ExportWaveAsCode", bind.Bool, cWave, bind.Ptr)
	procPlaySound         = bind.New("PlaySound", bind.Void, cSound)
	procStopSound         = bind.New("StopSound", bind.Void, cSound)
	procPauseSound        = bind.New("PauseSound", bind.Void, cSound)
	procResumeSound       = bind.New("ResumeSound", bind.Void, cSound)
	procGetSoundsPlaying  = bind.Optional("GetSoundsPlaying", bind.Int)
	procIsSoundPlaying    = bind.New("IsSoundPlaying", bind.Bool, cSound)
	procSetSoundVolume    = bind.New("SetSoundVolume", bind.Void, cSound, bind.Float)
	procSetSoundPitch     = bind.New("SetSoundPitch", bind.Void, cSound, bind.Float)
	procSetSoundPan       = bind.New("SetSoundPan", bind.Void, cSound, bind.Float)
	procWaveCopy          = bind.New("WaveCopy", cWave, cWave)
	procWaveCrop          = bind.New("WaveCrop", bind.Void, bind.Ptr, bind.Int, bind.Int)
	procWaveFormat        = bind.New("WaveFormat", bind.Void, bind.Ptr, bind.Int, bind.Int, bind.Int)
)

// LoadWave loads a wave file (WAV, OGG, MP3, FLAC, QOA, XM or MOD).
func LoadWave(fileName string) Wave {
	cFileName := bind.CString(fileName)
	var r Wave
	procLoadWave.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName))
	return r
}

// IsWaveReady reports whether a wave holds data.
func IsWaveReady(wave Wave) bool {
	var r bool
	procIsWaveReady.Call(unsafe.Pointer(&r), unsafe.Pointer(&wave))
	return r
}

// LoadSound loads a sound file.
func LoadSound(fileName string) Sound {
	cFileName := bind.CString(fileName)
	var r Sound
	procLoadSound.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName))
	return r
}

// LoadSoundFromWave creates a sound from wave data.
func LoadSoundFromWave(wave Wave) Sound {
	var r Sound
	procLoadSoundFromWave.Call(unsafe.Pointer(&r), unsafe.Pointer(&wave))
	return r
}

// LoadSoundAlias creates a sound sharing the sample data of source. It must be released with UnloadSoundAlias.
func LoadSoundAlias(source Sound) Sound {
	var r Sound
	procLoadSoundAlias.Call(unsafe.Pointer(&r), unsafe.Pointer(&source))
	return r
}

// IsSoundReady reports whether a sound is loaded.
func IsSoundReady(sound Sound) bool {
	var r bool
	procIsSoundReady.Call(unsafe.Pointer(&r), unsafe.Pointer(&sound))
	return r
}

// UnloadWave releases wave data.
func UnloadWave(wave Wave) {
	procUnloadWave.Call(nil, unsafe.Pointer(&wave))
}

// UnloadSound releases a sound.
func UnloadSound(sound Sound) {
	procUnloadSound.Call(nil, unsafe.Pointer(&sound))
}

// UnloadSoundAlias releases a sound alias without its shared data.
func UnloadSoundAlias(alias Sound) {
	procUnloadSoundAlias.Call(nil, unsafe.Pointer(&alias))
}

// ExportWave saves a wave to a file.
func ExportWave(wave Wave, fileName string) bool {
	cFileName := bind.CString(fileName)
	var r bool
	procExportWave.Call(unsafe.Pointer(&r), unsafe.Pointer(&wave), unsafe.Pointer(&cFileName))
	return r
}

// ExportWaveAsCode saves wave samples as C code.
func ExportWaveAsCode(wave Wave, fileName string) bool {
	cFileName := bind.CString(fileName)
	var r bool
	procExportWaveAsCode.Call(unsafe.Pointer(&r), unsafe.Pointer(&wave), unsafe.Pointer(&cFileName))
	return r
}

// PlaySound plays a sound.
func PlaySound(sound Sound) {
	procPlaySound.Call(nil, unsafe.Pointer(&sound))
}

// StopSound stops a sound.
func StopSound(sound Sound) {
	procStopSound.Call(nil, unsafe.Pointer(&sound))
}

// PauseSound pauses a sound.
func PauseSound(sound Sound) {
	procPauseSound.Call(nil, unsafe.Pointer(&sound))
}

// ResumeSound resumes a paused sound.
func ResumeSound(sound Sound) {
	procResumeSound.Call(nil, unsafe.Pointer(&sound))
}

// GetSoundsPlaying returns the number of sounds playing in the multichannel pool. raylib 4.5 removed it.
func GetSoundsPlaying() int32 {
	var r int32
	procGetSoundsPlaying.Call(unsafe.Pointer(&r))
	return r
}

// IsSoundPlaying reports whether a sound is playing.
func IsSoundPlaying(sound Sound) bool {
	var r bool
	procIsSoundPlaying.Call(unsafe.Pointer(&r), unsafe.Pointer(&sound))
	return r
}

// SetSoundVolume sets the volume of a sound, 1.0 being the maximum.
func SetSoundVolume(sound Sound, volume float32) {
	procSetSoundVolume.Call(nil, unsafe.Pointer(&sound), unsafe.Pointer(&volume))
}

// SetSoundPitch sets the pitch of a sound, 1.0 being the base level.
func SetSoundPitch(sound Sound, pitch float32) {
	procSetSoundPitch.Call(nil, unsafe.Pointer(&sound), unsafe.Pointer(&pitch))
}

// SetSoundPan sets the pan of a sound, 0.5 being the center.
func SetSoundPan(sound Sound, pan float32) {
	procSetSoundPan.Call(nil, unsafe.Pointer(&sound), unsafe.Pointer(&pan))
}

// WaveCopy duplicates a wave.
func WaveCopy(wave Wave) Wave {
	var r Wave
	procWaveCopy.Call(unsafe.Pointer(&r), unsafe.Pointer(&wave))
	return r
}

// WaveCrop crops a wave to a sample range.
func WaveCrop(wave *Wave, initSample, finalSample int32) {
	procWaveCrop.Call(nil, unsafe.Pointer(&wave), unsafe.Pointer(&initSample), unsafe.Pointer(&finalSample))
}

// WaveFormat converts wave data to another format.
func WaveFormat(wave *Wave, sampleRate, sampleSize, channels int32) {
	procWaveFormat.Call(nil, unsafe.Pointer(&wave), unsafe.Pointer(&sampleRate), unsafe.Pointer(&sampleSize), unsafe.Pointer(&channels))
}

var (
	procLoadWaveFromMemory = bind.New("LoadWaveFromMemory", cWave, bind.Ptr, bind.Ptr, bind.Int)
	procUpdateSound        = bind.New("UpdateSound", bind.Void, cSound, bind.Ptr, bind.Int)
	procLoadWaveSamples    = bind.New("LoadWaveSamples", bind.Ptr, cWave)
	procUnloadWaveSamples  = bind.New("UnloadWaveSamples", bind.Void, bind.Ptr)
)

// Sample is an audio sample type matching a stream sample size.
type Sample interface {
	uint8 | int16 | float32
}

// LoadWaveFromMemory decodes a wave file held in memory. fileType is the
// extension including the dot, such as ".wav".
func LoadWaveFromMemory(fileType string, fileData []byte) Wave {
	cType := bind.CString(fileType)
	pData := sliceData(fileData)
	n := int32(len(fileData))
	var r Wave
	procLoadWaveFromMemory.Call(unsafe.Pointer(&r), unsafe.Pointer(&cType), unsafe.Pointer(&pData), unsafe.Pointer(&n))
	return r
}

// UpdateSound replaces the samples of a sound. data is interleaved and
// its type must match the sound's sample size.
func UpdateSound[T Sample](sound Sound, data []T) {
	frames := frameCount(len(data), sound.Stream.Channels)
	if frames == 0 {
		return
	}
	pData := sliceData(data)
	procUpdateSound.Call(nil, unsafe.Pointer(&sound), unsafe.Pointer(&pData), unsafe.Pointer(&frames))
}

// LoadWaveSamples returns the samples of a wave as interleaved floats in
// [-1, 1].
func LoadWaveSamples(wave Wave) []float32 {
	var p unsafe.Pointer
	procLoadWaveSamples.Call(unsafe.Pointer(&p), unsafe.Pointer(&wave))
	if p == nil {
		return nil
	}
	out := cmem.CopyFromNative[float32](p, int(wave.FrameCount)*int(wave.Channels))
	procUnloadWaveSamples.Call(nil, unsafe.Pointer(&p))
	return out
}

func frameCount(samples int, channels uint32) int32 {
	if channels == 0 {
		channels = 1
	}
	return int32(samples / int(channels))
}
