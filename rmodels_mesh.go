package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procUploadMesh         = bind.New("UploadMesh", bind.Void, bind.Ptr, bind.Bool)
	procUnloadMesh         = bind.New("UnloadMesh", bind.Void, cMesh)
	procDrawMesh           = bind.New("DrawMesh", bind.Void, cMesh, cMaterial, cMatrix)
	procDrawMeshInstanced  = bind.New("DrawMeshInstanced", bind.Void, cMesh, cMaterial, bind.Ptr, bind.Int)
	procExportMesh         = bind.New("ExportMesh", bind.Bool, cMesh, bind.Ptr)
	procGetMeshBoundingBox = bind.New("GetMeshBoundingBox", cBoundingBox, cMesh)
	procGenMeshTangents    = bind.New("GenMeshTangents", bind.Void, bind.Ptr)
	procGenMeshPoly        = bind.New("GenMeshPoly", cMesh, bind.Int, bind.Float)
	procGenMeshPlane       = bind.New("GenMeshPlane", cMesh, bind.Float, bind.Float, bind.Int, bind.Int)
	procGenMeshCube        = bind.New("GenMeshCube", cMesh, bind.Float, bind.Float, bind.Float)
	procGenMeshSphere      = bind.New("GenMeshSphere", cMesh, bind.Float, bind.Int, bind.Int)
	procGenMeshHemiSphere  = bind.New("GenMeshHemiSphere", cMesh, bind.Float, bind.Int, bind.Int)
	procGenMeshCylinder    = bind.New("GenMeshCylinder", cMesh, bind.Float, bind.Float, bind.Int)
	procGenMeshCone        = bind.New("GenMeshCone", cMesh, bind.Float, bind.Float, bind.Int)
	procGenMeshTorus       = bind.New("GenMeshTorus", cMesh, bind.Float, bind.Float, bind.Int, bind.Int)
	procGenMeshKnot        = bind.New("GenMeshKnot", cMesh, bind.Float, bind.Float, bind.Int, bind.Int)
	procGenMeshHeightmap   = bind.New("GenMeshHeightmap", cMesh, cImage, cVector3)
	procGenMeshCubicmap    = bind.New("GenMeshCubicmap", cMesh, cImage, cVector3)
)

// UploadMesh uploads mesh data to the GPU and sets its buffer IDs.
func UploadMesh(mesh *Mesh, dynamic bool) {
	procUploadMesh.Call(nil, unsafe.Pointer(&mesh), unsafe.Pointer(&dynamic))
}

// UnloadMesh releases mesh data from CPU and GPU memory.
func UnloadMesh(mesh Mesh) {
	procUnloadMesh.Call(nil, unsafe.Pointer(&mesh))
}

// DrawMesh draws a mesh with a material.
func DrawMesh(mesh Mesh, material Material, transform Matrix) {
	procDrawMesh.Call(nil, unsafe.Pointer(&mesh), unsafe.Pointer(&material), unsafe.Pointer(&transform))
}

// DrawMeshInstanced draws one instance of a mesh per transform.
func DrawMeshInstanced(mesh Mesh, material Material, transforms []Matrix) {
	pTransforms := sliceData(transforms)
	nTransforms := int32(len(transforms))
	procDrawMeshInstanced.Call(nil, unsafe.Pointer(&mesh), unsafe.Pointer(&material), unsafe.Pointer(&pTransforms), unsafe.Pointer(&nTransforms))
}

// ExportMesh saves a mesh as OBJ.
func ExportMesh(mesh Mesh, fileName string) bool {
	cFileName := bind.CString(fileName)
	var r bool
	procExportMesh.Call(unsafe.Pointer(&r), unsafe.Pointer(&mesh), unsafe.Pointer(&cFileName))
	return r
}

// GetMeshBoundingBox returns the bounds of a mesh.
func GetMeshBoundingBox(mesh Mesh) BoundingBox {
	var r BoundingBox
	procGetMeshBoundingBox.Call(unsafe.Pointer(&r), unsafe.Pointer(&mesh))
	return r
}

// GenMeshTangents computes the tangents of a mesh.
func GenMeshTangents(mesh *Mesh) {
	procGenMeshTangents.Call(nil, unsafe.Pointer(&mesh))
}

// GenMeshPoly generates a regular polygon.
func GenMeshPoly(sides int32, radius float32) Mesh {
	var r Mesh
	procGenMeshPoly.Call(unsafe.Pointer(&r), unsafe.Pointer(&sides), unsafe.Pointer(&radius))
	return r
}

// GenMeshPlane generates a subdivided plane.
func GenMeshPlane(width, length float32, resX, resZ int32) Mesh {
	var r Mesh
	procGenMeshPlane.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&length), unsafe.Pointer(&resX), unsafe.Pointer(&resZ))
	return r
}

// GenMeshCube generates a cuboid.
func GenMeshCube(width, height, length float32) Mesh {
	var r Mesh
	procGenMeshCube.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&length))
	return r
}

// GenMeshSphere generates a UV sphere.
func GenMeshSphere(radius float32, rings, slices int32) Mesh {
	var r Mesh
	procGenMeshSphere.Call(unsafe.Pointer(&r), unsafe.Pointer(&radius), unsafe.Pointer(&rings), unsafe.Pointer(&slices))
	return r
}

// GenMeshHemiSphere generates a half sphere without its base.
func GenMeshHemiSphere(radius float32, rings, slices int32) Mesh {
	var r Mesh
	procGenMeshHemiSphere.Call(unsafe.Pointer(&r), unsafe.Pointer(&radius), unsafe.Pointer(&rings), unsafe.Pointer(&slices))
	return r
}

// GenMeshCylinder generates a cylinder.
func GenMeshCylinder(radius, height float32, slices int32) Mesh {
	var r Mesh
	procGenMeshCylinder.Call(unsafe.Pointer(&r), unsafe.Pointer(&radius), unsafe.Pointer(&height), unsafe.Pointer(&slices))
	return r
}

// GenMeshCone generates a cone.
func GenMeshCone(radius, height float32, slices int32) Mesh {
	var r Mesh
	procGenMeshCone.Call(unsafe.Pointer(&r), unsafe.Pointer(&radius), unsafe.Pointer(&height), unsafe.Pointer(&slices))
	return r
}

// GenMeshTorus generates a torus.
func GenMeshTorus(radius, size float32, radSeg, sides int32) Mesh {
	var r Mesh
	procGenMeshTorus.Call(unsafe.Pointer(&r), unsafe.Pointer(&radius), unsafe.Pointer(&size), unsafe.Pointer(&radSeg), unsafe.Pointer(&sides))
	return r
}

// GenMeshKnot generates a trefoil knot.
func GenMeshKnot(radius, size float32, radSeg, sides int32) Mesh {
	var r Mesh
	procGenMeshKnot.Call(unsafe.Pointer(&r), unsafe.Pointer(&radius), unsafe.Pointer(&size), unsafe.Pointer(&radSeg), unsafe.Pointer(&sides))
	return r
}

// GenMeshHeightmap generates terrain from a heightmap image.
func GenMeshHeightmap(heightmap Image, size Vector3) Mesh {
	var r Mesh
	procGenMeshHeightmap.Call(unsafe.Pointer(&r), unsafe.Pointer(&heightmap), unsafe.Pointer(&size))
	return r
}

// GenMeshCubicmap generates voxel geometry from a cubicmap image.
func GenMeshCubicmap(cubicmap Image, cubeSize Vector3) Mesh {
	var r Mesh
	procGenMeshCubicmap.Call(unsafe.Pointer(&r), unsafe.Pointer(&cubicmap), unsafe.Pointer(&cubeSize))
	return r
}

var procUpdateMeshBuffer = bind.New("UpdateMeshBuffer", bind.Void, cMesh, bind.Int, bind.Ptr, bind.Int, bind.Int)

// MeshBuffer indexes the GPU buffers of a mesh as used by
// UpdateMeshBuffer.
type MeshBuffer int32

// Mesh vertex buffers.
const (
	MeshBufferVertices MeshBuffer = iota
	MeshBufferTexcoords
	MeshBufferNormals
	MeshBufferColors
	MeshBufferTangents
	MeshBufferTexcoords2
	MeshBufferIndices
)

// MeshData is an element type of a mesh vertex buffer.
type MeshData interface {
	float32 | uint8 | uint16 | Vector2 | Vector3 | Vector4 | Color
}

// UpdateMeshBuffer uploads data into one GPU buffer of an uploaded mesh,
// starting offset bytes in.
func UpdateMeshBuffer[T MeshData](mesh Mesh, index MeshBuffer, data []T, offset int32) {
	if len(data) == 0 {
		return
	}
	var zero T
	pData := sliceData(data)
	size := int32(len(data) * int(unsafe.Sizeof(zero)))
	procUpdateMeshBuffer.Call(nil, unsafe.Pointer(&mesh), unsafe.Pointer(&index), unsafe.Pointer(&pData),
		unsafe.Pointer(&size), unsafe.Pointer(&offset))
}

// VertexSlice views the vertex positions of a mesh, three floats per
// vertex.
func (m Mesh) VertexSlice() []float32 {
	return cmem.Slice[float32](unsafe.Pointer(m.Vertices), int(m.VertexCount)*3)
}

// IndexSlice views the triangle indices of a mesh. It is nil for meshes
// drawn without indices.
func (m Mesh) IndexSlice() []uint16 {
	return cmem.Slice[uint16](unsafe.Pointer(m.Indices), int(m.TriangleCount)*3)
}
