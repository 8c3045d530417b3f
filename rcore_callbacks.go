package raylib

import (
	"sync"
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

// TraceLogFunc receives native log messages, already formatted.
type TraceLogFunc func(level TraceLogLevel, msg string)

// LoadFileDataFunc replaces the native file reader. It reports false when
// the file cannot be read.
type LoadFileDataFunc func(fileName string) ([]byte, bool)

// SaveFileDataFunc replaces the native file writer.
type SaveFileDataFunc func(fileName string, data []byte) bool

// LoadFileTextFunc replaces the native text file reader.
type LoadFileTextFunc func(fileName string) (string, bool)

// SaveFileTextFunc replaces the native text file writer.
type SaveFileTextFunc func(fileName, text string) bool

var (
	procSetTraceLogCallback     = bind.New("SetTraceLogCallback", bind.Void, bind.Ptr)
	procSetLoadFileDataCallback = bind.New("SetLoadFileDataCallback", bind.Void, bind.Ptr)
	procSetSaveFileDataCallback = bind.New("SetSaveFileDataCallback", bind.Void, bind.Ptr)
	procSetLoadFileTextCallback = bind.New("SetLoadFileTextCallback", bind.Void, bind.Ptr)
	procSetSaveFileTextCallback = bind.New("SetSaveFileTextCallback", bind.Void, bind.Ptr)
)

// Go functions behind the native callbacks. The native side may call them
// from any thread.
var hooks struct {
	mu           sync.RWMutex
	traceLog     TraceLogFunc
	loadFileData LoadFileDataFunc
	saveFileData SaveFileDataFunc
	loadFileText LoadFileTextFunc
	saveFileText SaveFileTextFunc
}

// One native trampoline per callback kind, created on first use.
var (
	traceLogThunk = sync.OnceValue(func() uintptr {
		return bind.NewCallback(func(level int32, text *byte, args unsafe.Pointer) {
			hooks.mu.RLock()
			fn := hooks.traceLog
			hooks.mu.RUnlock()
			if fn != nil {
				fn(TraceLogLevel(level), formatTrace(text, args))
			}
		})
	})
	loadFileDataThunk = sync.OnceValue(func() uintptr {
		return bind.NewCallback(func(fileName *byte, dataSize *int32) unsafe.Pointer {
			hooks.mu.RLock()
			fn := hooks.loadFileData
			hooks.mu.RUnlock()
			*dataSize = 0
			if fn == nil {
				return nil
			}
			data, ok := fn(bind.GoString(fileName))
			if !ok {
				return nil
			}
			p := nativeCopy(data)
			if p != nil || len(data) == 0 {
				*dataSize = int32(len(data))
			}
			return p
		})
	})
	saveFileDataThunk = sync.OnceValue(func() uintptr {
		return bind.NewCallback(func(fileName *byte, data unsafe.Pointer, dataSize int32) bool {
			hooks.mu.RLock()
			fn := hooks.saveFileData
			hooks.mu.RUnlock()
			if fn == nil {
				return false
			}
			var b []byte
			if data != nil && dataSize > 0 {
				b = unsafe.Slice((*byte)(data), dataSize)
			}
			return fn(bind.GoString(fileName), b)
		})
	})
	loadFileTextThunk = sync.OnceValue(func() uintptr {
		return bind.NewCallback(func(fileName *byte) unsafe.Pointer {
			hooks.mu.RLock()
			fn := hooks.loadFileText
			hooks.mu.RUnlock()
			if fn == nil {
				return nil
			}
			text, ok := fn(bind.GoString(fileName))
			if !ok {
				return nil
			}
			return nativeCopy(append([]byte(text), 0))
		})
	})
	saveFileTextThunk = sync.OnceValue(func() uintptr {
		return bind.NewCallback(func(fileName, text *byte) bool {
			hooks.mu.RLock()
			fn := hooks.saveFileText
			hooks.mu.RUnlock()
			if fn == nil {
				return false
			}
			return fn(bind.GoString(fileName), bind.GoString(text))
		})
	})
)

func init() {
	onUnload(func() {
		hooks.mu.Lock()
		hooks.traceLog = nil
		hooks.loadFileData = nil
		hooks.saveFileData = nil
		hooks.loadFileText = nil
		hooks.saveFileText = nil
		hooks.mu.Unlock()
	})
}

// nativeCopy copies b into MemAlloc memory, which raylib releases with
// its own unload functions.
func nativeCopy(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	p := MemAlloc(uint32(len(b)))
	if p != nil {
		copy(unsafe.Slice((*byte)(p), len(b)), b)
	}
	return p
}

// installHook stores fn under mu and points the native callback at thunk,
// or back at the native default when isNil.
func installHook(proc *bind.Proc, thunk func() uintptr, isNil bool, store func()) {
	hooks.mu.Lock()
	store()
	hooks.mu.Unlock()
	var cb uintptr
	if !isNil {
		cb = thunk()
	}
	proc.Call(nil, unsafe.Pointer(&cb))
}

// SetTraceLogCallback sends native log output to fn instead of stdout.
// nil restores the native logger.
func SetTraceLogCallback(fn TraceLogFunc) {
	installHook(procSetTraceLogCallback, traceLogThunk, fn == nil, func() { hooks.traceLog = fn })
}

// SetLoadFileDataCallback replaces the file reader used by every native
// loader. nil restores the native reader.
func SetLoadFileDataCallback(fn LoadFileDataFunc) {
	installHook(procSetLoadFileDataCallback, loadFileDataThunk, fn == nil, func() { hooks.loadFileData = fn })
}

// SetSaveFileDataCallback replaces the native file writer. nil restores it.
func SetSaveFileDataCallback(fn SaveFileDataFunc) {
	installHook(procSetSaveFileDataCallback, saveFileDataThunk, fn == nil, func() { hooks.saveFileData = fn })
}

// SetLoadFileTextCallback replaces the native text file reader. nil
// restores it.
func SetLoadFileTextCallback(fn LoadFileTextFunc) {
	installHook(procSetLoadFileTextCallback, loadFileTextThunk, fn == nil, func() { hooks.loadFileText = fn })
}

// SetSaveFileTextCallback replaces the native text file writer. nil
// restores it.
func SetSaveFileTextCallback(fn SaveFileTextFunc) {
	installHook(procSetSaveFileTextCallback, saveFileTextThunk, fn == nil, func() { hooks.saveFileText = fn })
}
