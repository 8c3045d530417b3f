package bind

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotLoaded is reported when a proc is called before its library was resolved.
	ErrNotLoaded = errors.New("bind: library not loaded")

	// ErrLibraryNotFound is returned when no candidate library could be opened.
	ErrLibraryNotFound = errors.New("bind: library not found")

	// ErrABI is reported for signatures the platform lowering cannot express.
	ErrABI = errors.New("bind: signature not supported on this platform")

	// ErrTooManyArgs is the ErrABI cause for calls that exceed the stack area.
	ErrTooManyArgs = fmt.Errorf("%w: too many argument slots", ErrABI)
)

// CallError is the panic value raised by calling an unusable proc.
type CallError struct {
	Proc string
	Err  error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("bind: call %s: %v", e.Proc, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// SymbolError lists required symbols a library did not export.
type SymbolError struct {
	Library string
	Missing []string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("bind: %s: %d missing symbols: %s",
		e.Library, len(e.Missing), strings.Join(e.Missing, ", "))
}

// OpenError records every failed attempt made by Open.
type OpenError struct {
	Tried []string
	Errs  []error
}

func (e *OpenError) Error() string {
	var b strings.Builder
	b.WriteString("bind: library not found, tried ")
	b.WriteString(strings.Join(e.Tried, ", "))
	if len(e.Errs) > 0 {
		b.WriteString(": ")
		b.WriteString(e.Errs[len(e.Errs)-1].Error())
	}
	return b.String()
}

func (e *OpenError) Unwrap() error { return ErrLibraryNotFound }
