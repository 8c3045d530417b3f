package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procDrawLine3D          = bind.New("DrawLine3D", bind.Void, cVector3, cVector3, cColor)
	procDrawPoint3D         = bind.New("DrawPoint3D", bind.Void, cVector3, cColor)
	procDrawCircle3D        = bind.New("DrawCircle3D", bind.Void, cVector3, bind.Float, cVector3, bind.Float, cColor)
	procDrawTriangle3D      = bind.New("DrawTriangle3D", bind.Void, cVector3, cVector3, cVector3, cColor)
	procDrawTriangleStrip3D = bind.New("DrawTriangleStrip3D", bind.Void, bind.Ptr, bind.Int, cColor)
	procDrawCube            = bind.New("DrawCube", bind.Void, cVector3, bind.Float, bind.Float, bind.Float, cColor)
	procDrawCubeV           = bind.New("DrawCubeV", bind.Void, cVector3, cVector3, cColor)
	procDrawCubeWires       = bind.New("DrawCubeWires", bind.Void, cVector3, bind.Float, bind.Float, bind.Float, cColor)
	procDrawCubeWiresV      = bind.New("DrawCubeWiresV", bind.Void, cVector3, cVector3, cColor)
	procDrawSphere          = bind.New("DrawSphere", bind.Void, cVector3, bind.Float, cColor)
	procDrawSphereEx        = bind.New("DrawSphereEx", bind.Void, cVector3, bind.Float, bind.Int, bind.Int, cColor)
	procDrawSphereWires     = bind.New("DrawSphereWires", bind.Void, cVector3, bind.Float, bind.Int, bind.Int, cColor)
	procDrawCylinder        = bind.New("DrawCylinder", bind.Void, cVector3, bind.Float, bind.Float, bind.Float, bind.Int, cColor)
	procDrawCylinderEx      = bind.New("DrawCylinderEx", bind.Void, cVector3, cVector3, bind.Float, bind.Float, bind.Int, cColor)
	procDrawCylinderWires   = bind.New("DrawCylinderWires", bind.Void, cVector3, bind.Float, bind.Float, bind.Float, bind.Int, cColor)
	procDrawCylinderWiresEx = bind.New("DrawCylinderWiresEx", bind.Void, cVector3, cVector3, bind.Float, bind.Float, bind.Int, cColor)
	procDrawCapsule         = bind.New("DrawCapsule", bind.Void, cVector3, cVector3, bind.Float, bind.Int, bind.Int, cColor)
	procDrawCapsuleWires    = bind.New("DrawCapsuleWires", bind.Void, cVector3, cVector3, bind.Float, bind.Int, bind.Int, cColor)
	procDrawPlane           = bind.New("DrawPlane", bind.Void, cVector3, cVector2, cColor)
	procDrawRay             = bind.New("DrawRay", bind.Void, cRay, cColor)
	procDrawGrid            = bind.New("DrawGrid", bind.Void, bind.Int, bind.Float)
)

// DrawLine3D draws a line in 3D space.
func DrawLine3D(startPos, endPos Vector3, color Color) {
	procDrawLine3D.Call(nil, unsafe.Pointer(&startPos), unsafe.Pointer(&endPos), unsafe.Pointer(&color))
}

// DrawPoint3D draws a point in 3D space.
func DrawPoint3D(position Vector3, color Color) {
	procDrawPoint3D.Call(nil, unsafe.Pointer(&position), unsafe.Pointer(&color))
}

// DrawCircle3D draws a circle in 3D space.
func DrawCircle3D(center Vector3, radius float32, rotationAxis Vector3, rotationAngle float32, color Color) {
	procDrawCircle3D.Call(nil, unsafe.Pointer(&center), unsafe.Pointer(&radius), unsafe.Pointer(&rotationAxis), unsafe.Pointer(&rotationAngle), unsafe.Pointer(&color))
}

// DrawTriangle3D draws a filled triangle. Vertices are in counter-clockwise order.
func DrawTriangle3D(v1, v2, v3 Vector3, color Color) {
	procDrawTriangle3D.Call(nil, unsafe.Pointer(&v1), unsafe.Pointer(&v2), unsafe.Pointer(&v3), unsafe.Pointer(&color))
}

// DrawTriangleStrip3D draws a triangle strip.
func DrawTriangleStrip3D(points []Vector3, color Color) {
	pPoints := sliceData(points)
	nPoints := int32(len(points))
	procDrawTriangleStrip3D.Call(nil, unsafe.Pointer(&pPoints), unsafe.Pointer(&nPoints), unsafe.Pointer(&color))
}

// DrawCube draws a cube.
func DrawCube(position Vector3, width, height, length float32, color Color) {
	procDrawCube.Call(nil, unsafe.Pointer(&position), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&length), unsafe.Pointer(&color))
}

// DrawCubeV draws a cube.
func DrawCubeV(position, size Vector3, color Color) {
	procDrawCubeV.Call(nil, unsafe.Pointer(&position), unsafe.Pointer(&size), unsafe.Pointer(&color))
}

// DrawCubeWires draws a cube wireframe.
func DrawCubeWires(position Vector3, width, height, length float32, color Color) {
	procDrawCubeWires.Call(nil, unsafe.Pointer(&position), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&length), unsafe.Pointer(&color))
}

// DrawCubeWiresV draws a cube wireframe.
func DrawCubeWiresV(position, size Vector3, color Color) {
	procDrawCubeWiresV.Call(nil, unsafe.Pointer(&position), unsafe.Pointer(&size), unsafe.Pointer(&color))
}

// DrawSphere draws a sphere.
func DrawSphere(centerPos Vector3, radius float32, color Color) {
	procDrawSphere.Call(nil, unsafe.Pointer(&centerPos), unsafe.Pointer(&radius), unsafe.Pointer(&color))
}

// DrawSphereEx draws a sphere with the given tessellation.
func DrawSphereEx(centerPos Vector3, radius float32, rings, slices int32, color Color) {
	procDrawSphereEx.Call(nil, unsafe.Pointer(&centerPos), unsafe.Pointer(&radius), unsafe.Pointer(&rings), unsafe.Pointer(&slices), unsafe.Pointer(&color))
}

// DrawSphereWires draws a sphere wireframe.
func DrawSphereWires(centerPos Vector3, radius float32, rings, slices int32, color Color) {
	procDrawSphereWires.Call(nil, unsafe.Pointer(&centerPos), unsafe.Pointer(&radius), unsafe.Pointer(&rings), unsafe.Pointer(&slices), unsafe.Pointer(&color))
}

// DrawCylinder draws a cylinder or cone.
func DrawCylinder(position Vector3, radiusTop, radiusBottom, height float32, slices int32, color Color) {
	procDrawCylinder.Call(nil, unsafe.Pointer(&position), unsafe.Pointer(&radiusTop), unsafe.Pointer(&radiusBottom), unsafe.Pointer(&height), unsafe.Pointer(&slices), unsafe.Pointer(&color))
}

// DrawCylinderEx draws a cylinder or cone between two points.
func DrawCylinderEx(startPos, endPos Vector3, startRadius, endRadius float32, sides int32, color Color) {
	procDrawCylinderEx.Call(nil, unsafe.Pointer(&startPos), unsafe.Pointer(&endPos), unsafe.Pointer(&startRadius), unsafe.Pointer(&endRadius), unsafe.Pointer(&sides), unsafe.Pointer(&color))
}

// DrawCylinderWires draws a cylinder or cone wireframe.
func DrawCylinderWires(position Vector3, radiusTop, radiusBottom, height float32, slices int32, color Color) {
	procDrawCylinderWires.Call(nil, unsafe.Pointer(&position), unsafe.Pointer(&radiusTop), unsafe.Pointer(&radiusBottom), unsafe.Pointer(&height), unsafe.Pointer(&slices), unsafe.Pointer(&color))
}

// DrawCylinderWiresEx draws a cylinder or cone wireframe between two points.
func DrawCylinderWiresEx(startPos, endPos Vector3, startRadius, endRadius float32, sides int32, color Color) {
	procDrawCylinderWiresEx.Call(nil, unsafe.Pointer(&startPos), unsafe.Pointer(&endPos), unsafe.Pointer(&startRadius), unsafe.Pointer(&endRadius), unsafe.Pointer(&sides), unsafe.Pointer(&color))
}

// DrawCapsule draws a capsule.
func DrawCapsule(startPos, endPos Vector3, radius float32, slices, rings int32, color Color) {
	procDrawCapsule.Call(nil, unsafe.Pointer(&startPos), unsafe.Pointer(&endPos), unsafe.Pointer(&radius), unsafe.Pointer(&slices), unsafe.Pointer(&rings), unsafe.Pointer(&color))
}

// DrawCapsuleWires draws a capsule wireframe.
func DrawCapsuleWires(startPos, endPos Vector3, radius float32, slices, rings int32, color Color) {
	procDrawCapsuleWires.Call(nil, unsafe.Pointer(&startPos), unsafe.Pointer(&endPos), unsafe.Pointer(&radius), unsafe.Pointer(&slices), unsafe.Pointer(&rings), unsafe.Pointer(&color))
}

// DrawPlane draws a plane on the XZ axis.
func DrawPlane(centerPos Vector3, size Vector2, color Color) {
	procDrawPlane.Call(nil, unsafe.Pointer(&centerPos), unsafe.Pointer(&size), unsafe.Pointer(&color))
}

// DrawRay draws a ray.
func DrawRay(ray Ray, color Color) {
	procDrawRay.Call(nil, unsafe.Pointer(&ray), unsafe.Pointer(&color))
}

// DrawGrid draws a grid centered at the origin.
func DrawGrid(slices int32, spacing float32) {
	procDrawGrid.Call(nil, unsafe.Pointer(&slices), unsafe.Pointer(&spacing))
}
