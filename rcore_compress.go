package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procCompressData     = bind.New("CompressData", bind.Ptr, bind.Ptr, bind.Int, bind.Ptr)
	procDecompressData   = bind.New("DecompressData", bind.Ptr, bind.Ptr, bind.Int, bind.Ptr)
	procEncodeDataBase64 = bind.New("EncodeDataBase64", bind.Ptr, bind.Ptr, bind.Int, bind.Ptr)
	procDecodeDataBase64 = bind.New("DecodeDataBase64", bind.Ptr, bind.Ptr, bind.Ptr)
)

// transform runs a native buffer-to-buffer function and copies its result
// into Go memory.
func transform(proc *bind.Proc, data []byte) []byte {
	pData := sliceData(data)
	n := int32(len(data))
	var size int32
	pSize := &size
	var p unsafe.Pointer
	proc.Call(unsafe.Pointer(&p), unsafe.Pointer(&pData), unsafe.Pointer(&n), unsafe.Pointer(&pSize))
	if p == nil {
		return nil
	}
	out := cmem.CopyFromNative[byte](p, int(size))
	MemFree(p)
	return out
}

// CompressData deflates data.
func CompressData(data []byte) []byte {
	return transform(procCompressData, data)
}

// DecompressData inflates data produced by CompressData. It returns nil
// on malformed input.
func DecompressData(compData []byte) []byte {
	return transform(procDecompressData, compData)
}

// EncodeDataBase64 returns the base64 encoding of data.
func EncodeDataBase64(data []byte) string {
	return string(transform(procEncodeDataBase64, data))
}

// DecodeDataBase64 decodes base64 text.
func DecodeDataBase64(text string) []byte {
	cText := bind.CString(text)
	var size int32
	pSize := &size
	var p unsafe.Pointer
	procDecodeDataBase64.Call(unsafe.Pointer(&p), unsafe.Pointer(&cText), unsafe.Pointer(&pSize))
	if p == nil {
		return nil
	}
	out := cmem.CopyFromNative[byte](p, int(size))
	MemFree(p)
	return out
}
