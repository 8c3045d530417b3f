package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procCheckCollisionSpheres   = bind.New("CheckCollisionSpheres", bind.Bool, cVector3, bind.Float, cVector3, bind.Float)
	procCheckCollisionBoxes     = bind.New("CheckCollisionBoxes", bind.Bool, cBoundingBox, cBoundingBox)
	procCheckCollisionBoxSphere = bind.New("CheckCollisionBoxSphere", bind.Bool, cBoundingBox, cVector3, bind.Float)
	procGetRayCollisionSphere   = bind.New("GetRayCollisionSphere", cRayCollision, cRay, cVector3, bind.Float)
	procGetRayCollisionBox      = bind.New("GetRayCollisionBox", cRayCollision, cRay, cBoundingBox)
	procGetRayCollisionMesh     = bind.New("GetRayCollisionMesh", cRayCollision, cRay, cMesh, cMatrix)
	procGetRayCollisionTriangle = bind.New("GetRayCollisionTriangle", cRayCollision, cRay, cVector3, cVector3, cVector3)
	procGetRayCollisionQuad     = bind.New("GetRayCollisionQuad", cRayCollision, cRay, cVector3, cVector3, cVector3, cVector3)
)

// CheckCollisionSpheres reports whether two spheres overlap.
func CheckCollisionSpheres(center1 Vector3, radius1 float32, center2 Vector3, radius2 float32) bool {
	var r bool
	procCheckCollisionSpheres.Call(unsafe.Pointer(&r), unsafe.Pointer(&center1), unsafe.Pointer(&radius1), unsafe.Pointer(&center2), unsafe.Pointer(&radius2))
	return r
}

// CheckCollisionBoxes reports whether two boxes overlap.
func CheckCollisionBoxes(box1, box2 BoundingBox) bool {
	var r bool
	procCheckCollisionBoxes.Call(unsafe.Pointer(&r), unsafe.Pointer(&box1), unsafe.Pointer(&box2))
	return r
}

// CheckCollisionBoxSphere reports whether a box and a sphere overlap.
func CheckCollisionBoxSphere(box BoundingBox, center Vector3, radius float32) bool {
	var r bool
	procCheckCollisionBoxSphere.Call(unsafe.Pointer(&r), unsafe.Pointer(&box), unsafe.Pointer(&center), unsafe.Pointer(&radius))
	return r
}

// GetRayCollisionSphere tests a ray against a sphere.
func GetRayCollisionSphere(ray Ray, center Vector3, radius float32) RayCollision {
	var r RayCollision
	procGetRayCollisionSphere.Call(unsafe.Pointer(&r), unsafe.Pointer(&ray), unsafe.Pointer(&center), unsafe.Pointer(&radius))
	return r
}

// GetRayCollisionBox tests a ray against a box.
func GetRayCollisionBox(ray Ray, box BoundingBox) RayCollision {
	var r RayCollision
	procGetRayCollisionBox.Call(unsafe.Pointer(&r), unsafe.Pointer(&ray), unsafe.Pointer(&box))
	return r
}

// GetRayCollisionMesh tests a ray against a transformed mesh.
func GetRayCollisionMesh(ray Ray, mesh Mesh, transform Matrix) RayCollision {
	var r RayCollision
	procGetRayCollisionMesh.Call(unsafe.Pointer(&r), unsafe.Pointer(&ray), unsafe.Pointer(&mesh), unsafe.Pointer(&transform))
	return r
}

// GetRayCollisionTriangle tests a ray against a triangle.
func GetRayCollisionTriangle(ray Ray, p1, p2, p3 Vector3) RayCollision {
	var r RayCollision
	procGetRayCollisionTriangle.Call(unsafe.Pointer(&r), unsafe.Pointer(&ray), unsafe.Pointer(&p1), unsafe.Pointer(&p2), unsafe.Pointer(&p3))
	return r
}

// GetRayCollisionQuad tests a ray against a quad.
func GetRayCollisionQuad(ray Ray, p1, p2, p3, p4 Vector3) RayCollision {
	var r RayCollision
	procGetRayCollisionQuad.Call(unsafe.Pointer(&r), unsafe.Pointer(&ray), unsafe.Pointer(&p1), unsafe.Pointer(&p2), unsafe.Pointer(&p3), unsafe.Pointer(&p4))
	return r
}
