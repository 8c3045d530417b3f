// Package cmem moves values between Go memory and memory handed to native
// code.
//
// An Allocator hands out blocks that native functions may read and write.
// The raylib allocator (MemAlloc/MemFree) lives in the root package; this
// package provides the typed copy helpers and Tracking, a Go-memory
// allocator that records every block so tests can assert that nothing
// leaked and nothing was freed twice.
package cmem
