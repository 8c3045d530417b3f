package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procCheckCollisionRecs          = bind.New("CheckCollisionRecs", bind.Bool, cRectangle, cRectangle)
	procCheckCollisionCircles       = bind.New("CheckCollisionCircles", bind.Bool, cVector2, bind.Float, cVector2, bind.Float)
	procCheckCollisionCircleRec     = bind.New("CheckCollisionCircleRec", bind.Bool, cVector2, bind.Float, cRectangle)
	procCheckCollisionPointRec      = bind.New("CheckCollisionPointRec", bind.Bool, cVector2, cRectangle)
	procCheckCollisionPointCircle   = bind.New("CheckCollisionPointCircle", bind.Bool, cVector2, cVector2, bind.Float)
	procCheckCollisionPointTriangle = bind.New("CheckCollisionPointTriangle", bind.Bool, cVector2, cVector2, cVector2, cVector2)
	procCheckCollisionPointPoly     = bind.New("CheckCollisionPointPoly", bind.Bool, cVector2, bind.Ptr, bind.Int)
	procCheckCollisionPointLine     = bind.New("CheckCollisionPointLine", bind.Bool, cVector2, cVector2, cVector2, bind.Int)
	procGetCollisionRec             = bind.New("GetCollisionRec", cRectangle, cRectangle, cRectangle)
)

// CheckCollisionRecs reports whether two rectangles overlap.
func CheckCollisionRecs(rec1, rec2 Rectangle) bool {
	var r bool
	procCheckCollisionRecs.Call(unsafe.Pointer(&r), unsafe.Pointer(&rec1), unsafe.Pointer(&rec2))
	return r
}

// CheckCollisionCircles reports whether two circles overlap.
func CheckCollisionCircles(center1 Vector2, radius1 float32, center2 Vector2, radius2 float32) bool {
	var r bool
	procCheckCollisionCircles.Call(unsafe.Pointer(&r), unsafe.Pointer(&center1), unsafe.Pointer(&radius1), unsafe.Pointer(&center2), unsafe.Pointer(&radius2))
	return r
}

// CheckCollisionCircleRec reports whether a circle and a rectangle overlap.
func CheckCollisionCircleRec(center Vector2, radius float32, rec Rectangle) bool {
	var r bool
	procCheckCollisionCircleRec.Call(unsafe.Pointer(&r), unsafe.Pointer(&center), unsafe.Pointer(&radius), unsafe.Pointer(&rec))
	return r
}

// CheckCollisionPointRec reports whether a point lies inside a rectangle.
func CheckCollisionPointRec(point Vector2, rec Rectangle) bool {
	var r bool
	procCheckCollisionPointRec.Call(unsafe.Pointer(&r), unsafe.Pointer(&point), unsafe.Pointer(&rec))
	return r
}

// CheckCollisionPointCircle reports whether a point lies inside a circle.
func CheckCollisionPointCircle(point, center Vector2, radius float32) bool {
	var r bool
	procCheckCollisionPointCircle.Call(unsafe.Pointer(&r), unsafe.Pointer(&point), unsafe.Pointer(&center), unsafe.Pointer(&radius))
	return r
}

// CheckCollisionPointTriangle reports whether a point lies inside a triangle.
func CheckCollisionPointTriangle(point, p1, p2, p3 Vector2) bool {
	var r bool
	procCheckCollisionPointTriangle.Call(unsafe.Pointer(&r), unsafe.Pointer(&point), unsafe.Pointer(&p1), unsafe.Pointer(&p2), unsafe.Pointer(&p3))
	return r
}

// CheckCollisionPointPoly reports whether a point lies inside a polygon.
func CheckCollisionPointPoly(point Vector2, points []Vector2) bool {
	pPoints := sliceData(points)
	nPoints := int32(len(points))
	var r bool
	procCheckCollisionPointPoly.Call(unsafe.Pointer(&r), unsafe.Pointer(&point), unsafe.Pointer(&pPoints), unsafe.Pointer(&nPoints))
	return r
}

// CheckCollisionPointLine reports whether a point lies on a line within threshold pixels.
func CheckCollisionPointLine(point, p1, p2 Vector2, threshold int32) bool {
	var r bool
	procCheckCollisionPointLine.Call(unsafe.Pointer(&r), unsafe.Pointer(&point), unsafe.Pointer(&p1), unsafe.Pointer(&p2), unsafe.Pointer(&threshold))
	return r
}

// GetCollisionRec returns the overlap of two rectangles.
func GetCollisionRec(rec1, rec2 Rectangle) Rectangle {
	var r Rectangle
	procGetCollisionRec.Call(unsafe.Pointer(&r), unsafe.Pointer(&rec1), unsafe.Pointer(&rec2))
	return r
}

var procCheckCollisionLines = bind.New("CheckCollisionLines", bind.Bool, cVector2, cVector2, cVector2, cVector2, bind.Ptr)

// CheckCollisionLines reports whether two segments intersect, and where.
func CheckCollisionLines(startPos1, endPos1, startPos2, endPos2 Vector2) (Vector2, bool) {
	var point Vector2
	pPoint := &point
	var r bool
	procCheckCollisionLines.Call(unsafe.Pointer(&r), unsafe.Pointer(&startPos1), unsafe.Pointer(&endPos1),
		unsafe.Pointer(&startPos2), unsafe.Pointer(&endPos2), unsafe.Pointer(&pPoint))
	return point, r
}
