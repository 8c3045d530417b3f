// Package bind is the foreign-function engine behind the raylib bindings.
//
// It opens shared libraries, resolves symbols into [Proc] values and calls
// them with C argument and return types described by goffi type
// descriptors. Packages declare their entry points once as package-level
// procs; [Default] collects them so a single Resolve binds everything.
//
// # Calling conventions
//
// goffi passes scalar arguments correctly everywhere, but C structs passed
// by value need platform lowering:
//
//   - System V amd64 (linux, darwin, freebsd): each argument is classified
//     into INTEGER and SSE eightbytes or MEMORY, assigned to registers or
//     stack slots, and the call goes through this package's trampoline,
//     which captures RAX, RDX, XMM0 and XMM1.
//   - Win64: structs of 1, 2, 4 or 8 bytes travel as integers, larger ones
//     by pointer to a copy, and large results through a hidden pointer.
//   - AAPCS64: goffi's own struct support is used as-is.
//
// A proc whose signature cannot be realised on the running platform is
// still resolved; calling it panics with a [*CallError] wrapping [ErrABI].
//
// Builds require CGO_ENABLED=0, as goffi does.
package bind
