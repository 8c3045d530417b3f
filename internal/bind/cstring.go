package bind

import (
	"strings"
	"unsafe"
)

// CString returns a NUL-terminated copy of s in Go memory. The pointer is
// valid while the caller keeps the result reachable, which a call through
// Proc.Call does for its arguments.
func CString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// CStringOrNil is CString, except the empty string maps to NULL.
func CStringOrNil(s string) *byte {
	if s == "" {
		return nil
	}
	return CString(s)
}

// GoString copies a NUL-terminated C string.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// GoStringN copies at most n bytes of a C string, stopping early at NUL.
func GoStringN(p *byte, n int) string {
	if p == nil || n <= 0 {
		return ""
	}
	b := unsafe.Slice(p, n)
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// CStrings is a NULL-terminated array of C strings, as taken by
// functions expecting const char **.
type CStrings struct {
	ptrs []*byte
}

// NewCStrings copies ss.
func NewCStrings(ss []string) *CStrings {
	c := &CStrings{ptrs: make([]*byte, len(ss)+1)}
	for i, s := range ss {
		c.ptrs[i] = CString(s)
	}
	return c
}

// Ptr returns the address of the first element.
func (c *CStrings) Ptr() unsafe.Pointer {
	return unsafe.Pointer(&c.ptrs[0])
}

// Len is the number of strings, excluding the terminator.
func (c *CStrings) Len() int { return len(c.ptrs) - 1 }
