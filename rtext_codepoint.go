package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procGetCodepointCount = bind.New("GetCodepointCount", bind.Int, bind.Ptr)
	procTextIsEqual       = bind.New("TextIsEqual", bind.Bool, bind.Ptr, bind.Ptr)
	procTextLength        = bind.New("TextLength", bind.UInt, bind.Ptr)
	procTextSubtext       = bind.New("TextSubtext", bind.Ptr, bind.Ptr, bind.Int, bind.Int)
	procTextFindIndex     = bind.New("TextFindIndex", bind.Int, bind.Ptr, bind.Ptr)
	procTextToUpper       = bind.New("TextToUpper", bind.Ptr, bind.Ptr)
	procTextToLower       = bind.New("TextToLower", bind.Ptr, bind.Ptr)
	procTextToPascal      = bind.New("TextToPascal", bind.Ptr, bind.Ptr)
	procTextToInteger     = bind.New("TextToInteger", bind.Int, bind.Ptr)
)

// GetCodepointCount returns the number of codepoints in UTF-8 text.
func GetCodepointCount(text string) int32 {
	cText := bind.CString(text)
	var r int32
	procGetCodepointCount.Call(unsafe.Pointer(&r), unsafe.Pointer(&cText))
	return r
}

// TextIsEqual reports whether two strings are equal.
func TextIsEqual(text1, text2 string) bool {
	cText1 := bind.CString(text1)
	cText2 := bind.CString(text2)
	var r bool
	procTextIsEqual.Call(unsafe.Pointer(&r), unsafe.Pointer(&cText1), unsafe.Pointer(&cText2))
	return r
}

// TextLength returns the byte length of text up to its first NUL.
func TextLength(text string) uint32 {
	cText := bind.CString(text)
	var r uint32
	procTextLength.Call(unsafe.Pointer(&r), unsafe.Pointer(&cText))
	return r
}

// TextSubtext returns a byte range of text.
func TextSubtext(text string, position, length int32) string {
	cText := bind.CString(text)
	var r *byte
	procTextSubtext.Call(unsafe.Pointer(&r), unsafe.Pointer(&cText), unsafe.Pointer(&position), unsafe.Pointer(&length))
	return bind.GoString(r)
}

// TextFindIndex returns the byte index of find in text, or -1.
func TextFindIndex(text, find string) int32 {
	cText := bind.CString(text)
	cFind := bind.CString(find)
	var r int32
	procTextFindIndex.Call(unsafe.Pointer(&r), unsafe.Pointer(&cText), unsafe.Pointer(&cFind))
	return r
}

// TextToUpper returns text in upper case.
func TextToUpper(text string) string {
	cText := bind.CString(text)
	var r *byte
	procTextToUpper.Call(unsafe.Pointer(&r), unsafe.Pointer(&cText))
	return bind.GoString(r)
}

// TextToLower returns text in lower case.
func TextToLower(text string) string {
	cText := bind.CString(text)
	var r *byte
	procTextToLower.Call(unsafe.Pointer(&r), unsafe.Pointer(&cText))
	return bind.GoString(r)
}

// TextToPascal returns text in PascalCase.
func TextToPascal(text string) string {
	cText := bind.CString(text)
	var r *byte
	procTextToPascal.Call(unsafe.Pointer(&r), unsafe.Pointer(&cText))
	return bind.GoString(r)
}

// TextToInteger parses a decimal integer, with an optional leading minus.
func TextToInteger(text string) int32 {
	cText := bind.CString(text)
	var r int32
	procTextToInteger.Call(unsafe.Pointer(&r), unsafe.Pointer(&cText))
	return r
}

var (
	procLoadUTF8             = bind.New("LoadUTF8", bind.Ptr, bind.Ptr, bind.Int)
	procUnloadUTF8           = bind.New("UnloadUTF8", bind.Void, bind.Ptr)
	procLoadCodepoints       = bind.New("LoadCodepoints", bind.Ptr, bind.Ptr, bind.Ptr)
	procUnloadCodepoints     = bind.New("UnloadCodepoints", bind.Void, bind.Ptr)
	procGetCodepoint         = bind.New("GetCodepoint", bind.Int, bind.Ptr, bind.Ptr)
	procGetCodepointNext     = bind.New("GetCodepointNext", bind.Int, bind.Ptr, bind.Ptr)
	procGetCodepointPrevious = bind.New("GetCodepointPrevious", bind.Int, bind.Ptr, bind.Ptr)
	procCodepointToUTF8      = bind.New("CodepointToUTF8", bind.Ptr, bind.Int, bind.Ptr)
	procTextReplace          = bind.New("TextReplace", bind.Ptr, bind.Ptr, bind.Ptr, bind.Ptr)
	procTextInsert           = bind.New("TextInsert", bind.Ptr, bind.Ptr, bind.Ptr, bind.Int)
	procTextJoin             = bind.New("TextJoin", bind.Ptr, bind.Ptr, bind.Int, bind.Ptr)
	procTextSplit            = bind.New("TextSplit", bind.Ptr, bind.Ptr, bind.Char, bind.Ptr)
)

// LoadUTF8 encodes codepoints as UTF-8.
func LoadUTF8(codepoints []rune) string {
	pCodepoints := sliceData(codepoints)
	n := int32(len(codepoints))
	var p *byte
	procLoadUTF8.Call(unsafe.Pointer(&p), unsafe.Pointer(&pCodepoints), unsafe.Pointer(&n))
	if p == nil {
		return ""
	}
	s := bind.GoString(p)
	procUnloadUTF8.Call(nil, unsafe.Pointer(&p))
	return s
}

// LoadCodepoints decodes UTF-8 text into codepoints.
func LoadCodepoints(text string) []rune {
	cText := bind.CString(text)
	var count int32
	pCount := &count
	var p unsafe.Pointer
	procLoadCodepoints.Call(unsafe.Pointer(&p), unsafe.Pointer(&cText), unsafe.Pointer(&pCount))
	if p == nil {
		return nil
	}
	out := cmem.CopyFromNative[rune](p, int(count))
	procUnloadCodepoints.Call(nil, unsafe.Pointer(&p))
	return out
}

func codepointAt(proc *bind.Proc, text *byte) (rune, int32) {
	var size int32
	pSize := &size
	var r rune
	proc.Call(unsafe.Pointer(&r), unsafe.Pointer(&text), unsafe.Pointer(&pSize))
	return r, size
}

// GetCodepoint decodes the first codepoint of text and returns it with its
// byte size. Invalid UTF-8 gives '?' (0x3f).
func GetCodepoint(text string) (rune, int32) {
	return codepointAt(procGetCodepoint, bind.CString(text))
}

// GetCodepointNext is GetCodepoint with stricter UTF-8 validation.
func GetCodepointNext(text string) (rune, int32) {
	return codepointAt(procGetCodepointNext, bind.CString(text))
}

// GetCodepointPrevious decodes the codepoint ending just before byte
// offset of text.
func GetCodepointPrevious(text string, offset int) (rune, int32) {
	if offset <= 0 || offset > len(text) {
		return '?', 1
	}
	c := bind.CString(text)
	return codepointAt(procGetCodepointPrevious, (*byte)(unsafe.Add(unsafe.Pointer(c), offset)))
}

// CodepointToUTF8 encodes one codepoint.
func CodepointToUTF8(codepoint rune) string {
	var size int32
	pSize := &size
	var p *byte
	procCodepointToUTF8.Call(unsafe.Pointer(&p), unsafe.Pointer(&codepoint), unsafe.Pointer(&pSize))
	return bind.GoStringN(p, int(size))
}

// TextReplace replaces every occurrence of replace in text by by.
func TextReplace(text, replace, by string) string {
	cText := bind.CString(text)
	cReplace := bind.CString(replace)
	cBy := bind.CString(by)
	var p *byte
	procTextReplace.Call(unsafe.Pointer(&p), unsafe.Pointer(&cText), unsafe.Pointer(&cReplace), unsafe.Pointer(&cBy))
	if p == nil {
		return text
	}
	s := bind.GoString(p)
	MemFree(unsafe.Pointer(p))
	return s
}

// TextInsert inserts insert into text at byte position.
func TextInsert(text, insert string, position int32) string {
	cText := bind.CString(text)
	cInsert := bind.CString(insert)
	var p *byte
	procTextInsert.Call(unsafe.Pointer(&p), unsafe.Pointer(&cText), unsafe.Pointer(&cInsert), unsafe.Pointer(&position))
	if p == nil {
		return text
	}
	s := bind.GoString(p)
	MemFree(unsafe.Pointer(p))
	return s
}

// TextJoin joins texts with delimiter. The native buffer caps the result
// at 1023 bytes.
func TextJoin(texts []string, delimiter string) string {
	list := bind.NewCStrings(texts)
	pList := list.Ptr()
	n := int32(list.Len())
	cDelim := bind.CString(delimiter)
	var p *byte
	procTextJoin.Call(unsafe.Pointer(&p), unsafe.Pointer(&pList), unsafe.Pointer(&n), unsafe.Pointer(&cDelim))
	return bind.GoString(p)
}

// TextSplit splits text at every delimiter byte. The native side keeps
// at most 128 substrings.
func TextSplit(text string, delimiter byte) []string {
	cText := bind.CString(text)
	var count int32
	pCount := &count
	var p unsafe.Pointer
	procTextSplit.Call(unsafe.Pointer(&p), unsafe.Pointer(&cText), unsafe.Pointer(&delimiter), unsafe.Pointer(&pCount))
	if p == nil || count <= 0 {
		return nil
	}
	out := make([]string, count)
	for i, s := range unsafe.Slice((**byte)(p), count) {
		out[i] = bind.GoString(s)
	}
	return out
}
