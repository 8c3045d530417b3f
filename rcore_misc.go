package raylib

import (
	"strings"
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procSetTargetFPS     = bind.New("SetTargetFPS", bind.Void, bind.Int)
	procGetFrameTime     = bind.New("GetFrameTime", bind.Float)
	procGetTime          = bind.New("GetTime", bind.Double)
	procGetFPS           = bind.New("GetFPS", bind.Int)
	procSetRandomSeed    = bind.New("SetRandomSeed", bind.Void, bind.UInt)
	procGetRandomValue   = bind.New("GetRandomValue", bind.Int, bind.Int, bind.Int)
	procTakeScreenshot   = bind.New("TakeScreenshot", bind.Void, bind.Ptr)
	procSetConfigFlags   = bind.New("SetConfigFlags", bind.Void, bind.UInt)
	procSetTraceLogLevel = bind.New("SetTraceLogLevel", bind.Void, bind.Int)
	procOpenURL          = bind.New("OpenURL", bind.Void, bind.Ptr)
)

// SetTargetFPS sets the target frames per second.
func SetTargetFPS(fps int32) {
	procSetTargetFPS.Call(nil, unsafe.Pointer(&fps))
}

// GetFrameTime returns the duration of the last frame in seconds.
func GetFrameTime() float32 {
	var r float32
	procGetFrameTime.Call(unsafe.Pointer(&r))
	return r
}

// GetTime returns the time elapsed since InitWindow in seconds.
func GetTime() float64 {
	var r float64
	procGetTime.Call(unsafe.Pointer(&r))
	return r
}

// GetFPS returns the current frames per second.
func GetFPS() int32 {
	var r int32
	procGetFPS.Call(unsafe.Pointer(&r))
	return r
}

// SetRandomSeed seeds the random number generator.
func SetRandomSeed(seed uint32) {
	procSetRandomSeed.Call(nil, unsafe.Pointer(&seed))
}

// GetRandomValue returns a random value between min and max, both included.
func GetRandomValue(min, max int32) int32 {
	var r int32
	procGetRandomValue.Call(unsafe.Pointer(&r), unsafe.Pointer(&min), unsafe.Pointer(&max))
	return r
}

// TakeScreenshot saves a screenshot of the current screen as PNG.
func TakeScreenshot(fileName string) {
	cFileName := bind.CString(fileName)
	procTakeScreenshot.Call(nil, unsafe.Pointer(&cFileName))
}

// SetConfigFlags sets init configuration flags. It must be called before InitWindow.
func SetConfigFlags(flags ConfigFlags) {
	procSetConfigFlags.Call(nil, unsafe.Pointer(&flags))
}

// SetTraceLogLevel sets the minimum level of messages the native logger emits.
func SetTraceLogLevel(logLevel TraceLogLevel) {
	procSetTraceLogLevel.Call(nil, unsafe.Pointer(&logLevel))
}

// OpenURL opens a URL with the default system browser.
func OpenURL(url string) {
	cURL := bind.CString(url)
	procOpenURL.Call(nil, unsafe.Pointer(&cURL))
}

var (
	procTraceLog             = bind.New("TraceLog", bind.Void, bind.Int, bind.Ptr)
	procLoadRandomSequence   = bind.Optional("LoadRandomSequence", bind.Ptr, bind.UInt, bind.Int, bind.Int)
	procUnloadRandomSequence = bind.Optional("UnloadRandomSequence", bind.Void, bind.Ptr)
)

// TraceLog writes msg to the native log. msg is not a format string.
func TraceLog(logLevel TraceLogLevel, msg string) {
	cText := bind.CString(strings.ReplaceAll(msg, "%", "%%"))
	procTraceLog.Call(nil, unsafe.Pointer(&logLevel), unsafe.Pointer(&cText))
}

// LoadRandomSequence returns count random values between min and max,
// without repetition when the range allows it.
func LoadRandomSequence(count uint32, min, max int32) []int32 {
	var p unsafe.Pointer
	procLoadRandomSequence.Call(unsafe.Pointer(&p), unsafe.Pointer(&count), unsafe.Pointer(&min), unsafe.Pointer(&max))
	if p == nil {
		return nil
	}
	seq := cmem.CopyFromNative[int32](p, int(count))
	procUnloadRandomSequence.Call(nil, unsafe.Pointer(&p))
	return seq
}
