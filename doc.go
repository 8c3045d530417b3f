// Package raylib binds the raylib 5.0 shared library to Go without cgo.
//
// # Overview
//
// The native library is opened at run time and every raylib function is
// called through a foreign-function layer. Structs crossing the boundary
// are Go mirrors with the exact C layout (Vector2, Texture, Mesh, ...), so
// most functions pass their arguments straight through. The exceptions
// convert at the boundary: strings, slices, buffers raylib allocates, and
// Font, whose glyph columns are kept in a GlyphTable on the Go side.
//
// # Quick Start
//
//	import rl "github.com/gogpu/raylib"
//
//	func main() {
//	    runtime.LockOSThread()
//	    rl.MustLoad()
//	    defer rl.Unload()
//
//	    rl.InitWindow(800, 450, "hello")
//	    defer rl.CloseWindow()
//	    rl.SetTargetFPS(60)
//	    for !rl.WindowShouldClose() {
//	        rl.BeginDrawing()
//	        rl.ClearBackground(rl.RayWhite)
//	        rl.DrawText("Hello from Go", 190, 200, 20, rl.LightGray)
//	        rl.EndDrawing()
//	    }
//	}
//
// # Loading
//
// Load looks for libraylib in the directories given by WithSearchPaths or
// RAYLIB_SEARCH_PATH and then through the system loader. Calling any
// binding before Load panics with a *CallError wrapping ErrNotLoaded.
// Functions added after raylib 5.0 or removed before it are optional:
// calling one the library lacks panics the same way.
//
// # Threads
//
// raylib keeps its window and GL context on the thread that created them.
// Lock the main goroutine to its thread before InitWindow and make every
// drawing call from it. Trace log and audio callbacks may run on native
// threads.
//
// # Memory
//
// Values raylib allocates are copied into Go memory and released right
// away where the API allows it (LoadFileData, LoadImageColors,
// LoadCodepoints, ...). Resources with a paired Unload function (Image,
// Texture, Mesh, Model, Wave, Sound, Music) keep native memory until you
// call it. FontMarshaller moves fonts built in Go to native memory and
// back; the tests in cmem show how to check it for leaks.
//
// # Sub-packages
//
//   - rlgl: the low-level rl* GPU state API
//   - raymath: vector and matrix helpers on the struct mirrors
//   - charset: codepoint sets for LoadFontEx
//   - wgsl: WGSL compute shaders loaded through rlgl
package raylib

// Version information
const (
	// Version is the version of this binding.
	Version = "0.1.0"

	// RaylibVersion is the native API version bound.
	RaylibVersion = "5.0"
)
