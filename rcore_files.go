package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procFileExists              = bind.New("FileExists", bind.Bool, bind.Ptr)
	procDirectoryExists         = bind.New("DirectoryExists", bind.Bool, bind.Ptr)
	procIsFileExtension         = bind.New("IsFileExtension", bind.Bool, bind.Ptr, bind.Ptr)
	procGetFileLength           = bind.New("GetFileLength", bind.Int, bind.Ptr)
	procGetFileExtension        = bind.New("GetFileExtension", bind.Ptr, bind.Ptr)
	procGetFileName             = bind.New("GetFileName", bind.Ptr, bind.Ptr)
	procGetFileNameWithoutExt   = bind.New("GetFileNameWithoutExt", bind.Ptr, bind.Ptr)
	procGetDirectoryPath        = bind.New("GetDirectoryPath", bind.Ptr, bind.Ptr)
	procGetPrevDirectoryPath    = bind.New("GetPrevDirectoryPath", bind.Ptr, bind.Ptr)
	procGetWorkingDirectory     = bind.New("GetWorkingDirectory", bind.Ptr)
	procGetApplicationDirectory = bind.New("GetApplicationDirectory", bind.Ptr)
	procChangeDirectory         = bind.New("ChangeDirectory", bind.Bool, bind.Ptr)
	procIsPathFile              = bind.New("IsPathFile", bind.Bool, bind.Ptr)
	procLoadDirectoryFiles      = bind.New("LoadDirectoryFiles", cFilePathList, bind.Ptr)
	procLoadDirectoryFilesEx    = bind.New("LoadDirectoryFilesEx", cFilePathList, bind.Ptr, bind.Ptr, bind.Bool)
	procUnloadDirectoryFiles    = bind.New("UnloadDirectoryFiles", bind.Void, cFilePathList)
	procIsFileDropped           = bind.New("IsFileDropped", bind.Bool)
	procLoadDroppedFiles        = bind.New("LoadDroppedFiles", cFilePathList)
	procUnloadDroppedFiles      = bind.New("UnloadDroppedFiles", bind.Void, cFilePathList)
	procGetFileModTime          = bind.New("GetFileModTime", bind.Long, bind.Ptr)
)

// FileExists reports whether a file exists.
func FileExists(fileName string) bool {
	cFileName := bind.CString(fileName)
	var r bool
	procFileExists.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName))
	return r
}

// DirectoryExists reports whether a directory exists.
func DirectoryExists(dirPath string) bool {
	cDirPath := bind.CString(dirPath)
	var r bool
	procDirectoryExists.Call(unsafe.Pointer(&r), unsafe.Pointer(&cDirPath))
	return r
}

// IsFileExtension reports whether fileName has extension ext, which includes the dot. Several extensions may be separated by semicolons.
func IsFileExtension(fileName, ext string) bool {
	cFileName := bind.CString(fileName)
	cExt := bind.CString(ext)
	var r bool
	procIsFileExtension.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName), unsafe.Pointer(&cExt))
	return r
}

// GetFileLength returns the file length in bytes.
func GetFileLength(fileName string) int32 {
	cFileName := bind.CString(fileName)
	var r int32
	procGetFileLength.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName))
	return r
}

// GetFileExtension returns the extension of fileName including the dot.
func GetFileExtension(fileName string) string {
	cFileName := bind.CString(fileName)
	var r *byte
	procGetFileExtension.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName))
	return bind.GoString(r)
}

// GetFileName returns the file name of a path.
func GetFileName(filePath string) string {
	cFilePath := bind.CString(filePath)
	var r *byte
	procGetFileName.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFilePath))
	return bind.GoString(r)
}

// GetFileNameWithoutExt returns the file name of a path without its extension.
func GetFileNameWithoutExt(filePath string) string {
	cFilePath := bind.CString(filePath)
	var r *byte
	procGetFileNameWithoutExt.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFilePath))
	return bind.GoString(r)
}

// GetDirectoryPath returns the directory part of a path.
func GetDirectoryPath(filePath string) string {
	cFilePath := bind.CString(filePath)
	var r *byte
	procGetDirectoryPath.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFilePath))
	return bind.GoString(r)
}

// GetPrevDirectoryPath returns the parent directory of a path.
func GetPrevDirectoryPath(dirPath string) string {
	cDirPath := bind.CString(dirPath)
	var r *byte
	procGetPrevDirectoryPath.Call(unsafe.Pointer(&r), unsafe.Pointer(&cDirPath))
	return bind.GoString(r)
}

// GetWorkingDirectory returns the current working directory.
func GetWorkingDirectory() string {
	var r *byte
	procGetWorkingDirectory.Call(unsafe.Pointer(&r))
	return bind.GoString(r)
}

// GetApplicationDirectory returns the directory of the running executable.
func GetApplicationDirectory() string {
	var r *byte
	procGetApplicationDirectory.Call(unsafe.Pointer(&r))
	return bind.GoString(r)
}

// ChangeDirectory changes the working directory.
func ChangeDirectory(dir string) bool {
	cDir := bind.CString(dir)
	var r bool
	procChangeDirectory.Call(unsafe.Pointer(&r), unsafe.Pointer(&cDir))
	return r
}

// IsPathFile reports whether path is a file rather than a directory.
func IsPathFile(path string) bool {
	cPath := bind.CString(path)
	var r bool
	procIsPathFile.Call(unsafe.Pointer(&r), unsafe.Pointer(&cPath))
	return r
}

// LoadDirectoryFiles lists the entries of a directory. Release the list with UnloadDirectoryFiles.
func LoadDirectoryFiles(dirPath string) FilePathList {
	cDirPath := bind.CString(dirPath)
	var r FilePathList
	procLoadDirectoryFiles.Call(unsafe.Pointer(&r), unsafe.Pointer(&cDirPath))
	return r
}

// LoadDirectoryFilesEx lists the entries of a directory matching an extension filter such as ".png;.jpg", or "DIR" for directories.
func LoadDirectoryFilesEx(basePath, filter string, scanSubdirs bool) FilePathList {
	cBasePath := bind.CString(basePath)
	cFilter := bind.CStringOrNil(filter)
	var r FilePathList
	procLoadDirectoryFilesEx.Call(unsafe.Pointer(&r), unsafe.Pointer(&cBasePath), unsafe.Pointer(&cFilter), unsafe.Pointer(&scanSubdirs))
	return r
}

// UnloadDirectoryFiles releases a list returned by LoadDirectoryFiles or LoadDirectoryFilesEx.
func UnloadDirectoryFiles(files FilePathList) {
	procUnloadDirectoryFiles.Call(nil, unsafe.Pointer(&files))
}

// IsFileDropped reports whether files were dropped on the window.
func IsFileDropped() bool {
	var r bool
	procIsFileDropped.Call(unsafe.Pointer(&r))
	return r
}

// LoadDroppedFiles returns the dropped file paths. Release the list with UnloadDroppedFiles.
func LoadDroppedFiles() FilePathList {
	var r FilePathList
	procLoadDroppedFiles.Call(unsafe.Pointer(&r))
	return r
}

// UnloadDroppedFiles releases a list returned by LoadDroppedFiles.
func UnloadDroppedFiles(files FilePathList) {
	procUnloadDroppedFiles.Call(nil, unsafe.Pointer(&files))
}

// GetFileModTime returns the modification time of a file as a Unix timestamp.
func GetFileModTime(fileName string) int64 {
	cFileName := bind.CString(fileName)
	var r int64
	procGetFileModTime.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName))
	return r
}

var (
	procLoadFileData     = bind.New("LoadFileData", bind.Ptr, bind.Ptr, bind.Ptr)
	procUnloadFileData   = bind.New("UnloadFileData", bind.Void, bind.Ptr)
	procSaveFileData     = bind.New("SaveFileData", bind.Bool, bind.Ptr, bind.Ptr, bind.Int)
	procExportDataAsCode = bind.New("ExportDataAsCode", bind.Bool, bind.Ptr, bind.Int, bind.Ptr)
	procLoadFileText     = bind.New("LoadFileText", bind.Ptr, bind.Ptr)
	procUnloadFileText   = bind.New("UnloadFileText", bind.Void, bind.Ptr)
	procSaveFileText     = bind.New("SaveFileText", bind.Bool, bind.Ptr, bind.Ptr)
)

// LoadFileData reads a whole file. It returns nil when the file cannot
// be read.
func LoadFileData(fileName string) []byte {
	cName := bind.CString(fileName)
	var size int32
	pSize := &size
	var p unsafe.Pointer
	procLoadFileData.Call(unsafe.Pointer(&p), unsafe.Pointer(&cName), unsafe.Pointer(&pSize))
	if p == nil {
		return nil
	}
	data := cmem.CopyFromNative[byte](p, int(size))
	procUnloadFileData.Call(nil, unsafe.Pointer(&p))
	return data
}

// SaveFileData writes data to a file.
func SaveFileData(fileName string, data []byte) bool {
	cName := bind.CString(fileName)
	pData := sliceData(data)
	n := int32(len(data))
	var r bool
	procSaveFileData.Call(unsafe.Pointer(&r), unsafe.Pointer(&cName), unsafe.Pointer(&pData), unsafe.Pointer(&n))
	return r
}

// ExportDataAsCode writes data as a C byte array to a header file.
func ExportDataAsCode(data []byte, fileName string) bool {
	pData := sliceData(data)
	n := int32(len(data))
	cName := bind.CString(fileName)
	var r bool
	procExportDataAsCode.Call(unsafe.Pointer(&r), unsafe.Pointer(&pData), unsafe.Pointer(&n), unsafe.Pointer(&cName))
	return r
}

// LoadFileText reads a text file. The second result is false when the
// file cannot be read.
func LoadFileText(fileName string) (string, bool) {
	cName := bind.CString(fileName)
	var p *byte
	procLoadFileText.Call(unsafe.Pointer(&p), unsafe.Pointer(&cName))
	if p == nil {
		return "", false
	}
	s := bind.GoString(p)
	procUnloadFileText.Call(nil, unsafe.Pointer(&p))
	return s, true
}

// SaveFileText writes text to a file.
func SaveFileText(fileName, text string) bool {
	cName := bind.CString(fileName)
	cText := bind.CString(text)
	var r bool
	procSaveFileText.Call(unsafe.Pointer(&r), unsafe.Pointer(&cName), unsafe.Pointer(&cText))
	return r
}

// Strings copies the paths of the list.
func (l FilePathList) Strings() []string {
	if l.Paths == nil || l.Count == 0 {
		return nil
	}
	out := make([]string, l.Count)
	for i, p := range unsafe.Slice(l.Paths, l.Count) {
		out[i] = bind.GoString(p)
	}
	return out
}

// DroppedFiles returns the paths dropped on the window since the last
// call and releases the native list.
func DroppedFiles() []string {
	if !IsFileDropped() {
		return nil
	}
	l := LoadDroppedFiles()
	defer UnloadDroppedFiles(l)
	return l.Strings()
}

// DirectoryFiles lists a directory. filter is an extension list such as
// ".png;.jpg" and may be empty; recursive descends into subdirectories.
func DirectoryFiles(path, filter string, recursive bool) []string {
	var l FilePathList
	if filter == "" && !recursive {
		l = LoadDirectoryFiles(path)
	} else {
		l = LoadDirectoryFilesEx(path, filter, recursive)
	}
	defer UnloadDirectoryFiles(l)
	return l.Strings()
}
