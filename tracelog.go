package raylib

import (
	"context"
	"runtime"
	"sync"
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

// traceBufSize bounds one formatted native log line.
const traceBufSize = 1024

// libc formats native log lines. Its va_list arrives as a pointer on every
// supported platform and is forwarded untouched.
var libc = struct {
	table     *bind.Table
	vsnprintf *bind.Proc

	once sync.Once
	lib  *bind.Library
	err  error
}{table: bind.NewTable()}

func init() {
	libc.vsnprintf = libc.table.New(vsnprintfSymbol(runtime.GOOS), bind.Int, bind.Ptr, bind.UInt64, bind.Ptr, bind.Ptr)
}

func vsnprintfSymbol(goos string) string {
	if goos == "windows" {
		return "_vsnprintf"
	}
	return "vsnprintf"
}

func libcNames(goos string) []string {
	switch goos {
	case "windows":
		return []string{"msvcrt.dll"}
	case "darwin":
		return []string{"/usr/lib/libSystem.B.dylib"}
	case "freebsd":
		return []string{"libc.so.7"}
	}
	return []string{"libc.so.6", "libc.so"}
}

func openLibc() error {
	libc.once.Do(func() {
		l, err := bind.Open(libcNames(runtime.GOOS), nil)
		if err != nil {
			libc.err = err
			return
		}
		if _, err := libc.table.Resolve(l); err != nil {
			l.Close()
			libc.err = err
			return
		}
		libc.lib = l
	})
	return libc.err
}

// formatTrace expands a printf format and its va_list. Without libc the
// format string itself is returned.
func formatTrace(format *byte, args unsafe.Pointer) string {
	if !libc.vsnprintf.Available() || format == nil {
		return bind.GoString(format)
	}
	var buf [traceBufSize]byte
	pBuf := &buf[0]
	size := uint64(len(buf))
	var n int32
	libc.vsnprintf.Call(unsafe.Pointer(&n), unsafe.Pointer(&pBuf), unsafe.Pointer(&size), unsafe.Pointer(&format), unsafe.Pointer(&args))
	if n < 0 {
		return bind.GoString(format)
	}
	return bind.GoStringN(pBuf, min(int(n), len(buf)-1))
}

// RouteTraceLog forwards native log output to Logger, mapping trace
// levels onto slog levels. It needs the C runtime to format messages and
// returns an error when it cannot be opened.
func RouteTraceLog() error {
	if err := openLibc(); err != nil {
		return err
	}
	SetTraceLogCallback(func(level TraceLogLevel, msg string) {
		Logger().Log(context.Background(), slogLevel(level), msg, "source", "raylib", "level", level.String())
	})
	return nil
}
