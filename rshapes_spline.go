package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procDrawSplineLinear                 = bind.Optional("DrawSplineLinear", bind.Void, bind.Ptr, bind.Int, bind.Float, cColor)
	procDrawSplineBasis                  = bind.Optional("DrawSplineBasis", bind.Void, bind.Ptr, bind.Int, bind.Float, cColor)
	procDrawSplineCatmullRom             = bind.Optional("DrawSplineCatmullRom", bind.Void, bind.Ptr, bind.Int, bind.Float, cColor)
	procDrawSplineBezierQuadratic        = bind.Optional("DrawSplineBezierQuadratic", bind.Void, bind.Ptr, bind.Int, bind.Float, cColor)
	procDrawSplineBezierCubic            = bind.Optional("DrawSplineBezierCubic", bind.Void, bind.Ptr, bind.Int, bind.Float, cColor)
	procDrawSplineSegmentLinear          = bind.Optional("DrawSplineSegmentLinear", bind.Void, cVector2, cVector2, bind.Float, cColor)
	procDrawSplineSegmentBasis           = bind.Optional("DrawSplineSegmentBasis", bind.Void, cVector2, cVector2, cVector2, cVector2, bind.Float, cColor)
	procDrawSplineSegmentCatmullRom      = bind.Optional("DrawSplineSegmentCatmullRom", bind.Void, cVector2, cVector2, cVector2, cVector2, bind.Float, cColor)
	procDrawSplineSegmentBezierQuadratic = bind.Optional("DrawSplineSegmentBezierQuadratic", bind.Void, cVector2, cVector2, cVector2, bind.Float, cColor)
	procDrawSplineSegmentBezierCubic     = bind.Optional("DrawSplineSegmentBezierCubic", bind.Void, cVector2, cVector2, cVector2, cVector2, bind.Float, cColor)
	procGetSplinePointLinear             = bind.Optional("GetSplinePointLinear", cVector2, cVector2, cVector2, bind.Float)
	procGetSplinePointBasis              = bind.Optional("GetSplinePointBasis", cVector2, cVector2, cVector2, cVector2, cVector2, bind.Float)
	procGetSplinePointCatmullRom         = bind.Optional("GetSplinePointCatmullRom", cVector2, cVector2, cVector2, cVector2, cVector2, bind.Float)
	procGetSplinePointBezierQuad         = bind.Optional("GetSplinePointBezierQuad", cVector2, cVector2, cVector2, cVector2, bind.Float)
	procGetSplinePointBezierCubic        = bind.Optional("GetSplinePointBezierCubic", cVector2, cVector2, cVector2, cVector2, cVector2, bind.Float)
)

// DrawSplineLinear draws a linear spline through at least 2 points.
func DrawSplineLinear(points []Vector2, thick float32, color Color) {
	pPoints := sliceData(points)
	nPoints := int32(len(points))
	procDrawSplineLinear.Call(nil, unsafe.Pointer(&pPoints), unsafe.Pointer(&nPoints), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// DrawSplineBasis draws a B-spline through at least 4 points.
func DrawSplineBasis(points []Vector2, thick float32, color Color) {
	pPoints := sliceData(points)
	nPoints := int32(len(points))
	procDrawSplineBasis.Call(nil, unsafe.Pointer(&pPoints), unsafe.Pointer(&nPoints), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// DrawSplineCatmullRom draws a Catmull-Rom spline through at least 4 points.
func DrawSplineCatmullRom(points []Vector2, thick float32, color Color) {
	pPoints := sliceData(points)
	nPoints := int32(len(points))
	procDrawSplineCatmullRom.Call(nil, unsafe.Pointer(&pPoints), unsafe.Pointer(&nPoints), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// DrawSplineBezierQuadratic draws a quadratic Bezier spline from points laid out as [p1, c2, p3, c4, ...].
func DrawSplineBezierQuadratic(points []Vector2, thick float32, color Color) {
	pPoints := sliceData(points)
	nPoints := int32(len(points))
	procDrawSplineBezierQuadratic.Call(nil, unsafe.Pointer(&pPoints), unsafe.Pointer(&nPoints), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// DrawSplineBezierCubic draws a cubic Bezier spline from points laid out as [p1, c2, c3, p4, c5, c6, ...].
func DrawSplineBezierCubic(points []Vector2, thick float32, color Color) {
	pPoints := sliceData(points)
	nPoints := int32(len(points))
	procDrawSplineBezierCubic.Call(nil, unsafe.Pointer(&pPoints), unsafe.Pointer(&nPoints), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// DrawSplineSegmentLinear draws one linear spline segment.
func DrawSplineSegmentLinear(p1, p2 Vector2, thick float32, color Color) {
	procDrawSplineSegmentLinear.Call(nil, unsafe.Pointer(&p1), unsafe.Pointer(&p2), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// DrawSplineSegmentBasis draws one B-spline segment.
func DrawSplineSegmentBasis(p1, p2, p3, p4 Vector2, thick float32, color Color) {
	procDrawSplineSegmentBasis.Call(nil, unsafe.Pointer(&p1), unsafe.Pointer(&p2), unsafe.Pointer(&p3), unsafe.Pointer(&p4), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// DrawSplineSegmentCatmullRom draws one Catmull-Rom segment.
func DrawSplineSegmentCatmullRom(p1, p2, p3, p4 Vector2, thick float32, color Color) {
	procDrawSplineSegmentCatmullRom.Call(nil, unsafe.Pointer(&p1), unsafe.Pointer(&p2), unsafe.Pointer(&p3), unsafe.Pointer(&p4), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// DrawSplineSegmentBezierQuadratic draws one quadratic Bezier segment.
func DrawSplineSegmentBezierQuadratic(p1, c2, p3 Vector2, thick float32, color Color) {
	procDrawSplineSegmentBezierQuadratic.Call(nil, unsafe.Pointer(&p1), unsafe.Pointer(&c2), unsafe.Pointer(&p3), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// DrawSplineSegmentBezierCubic draws one cubic Bezier segment.
func DrawSplineSegmentBezierCubic(p1, c2, c3, p4 Vector2, thick float32, color Color) {
	procDrawSplineSegmentBezierCubic.Call(nil, unsafe.Pointer(&p1), unsafe.Pointer(&c2), unsafe.Pointer(&c3), unsafe.Pointer(&p4), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// GetSplinePointLinear returns the point at t in [0, 1] on a linear segment.
func GetSplinePointLinear(startPos, endPos Vector2, t float32) Vector2 {
	var r Vector2
	procGetSplinePointLinear.Call(unsafe.Pointer(&r), unsafe.Pointer(&startPos), unsafe.Pointer(&endPos), unsafe.Pointer(&t))
	return r
}

// GetSplinePointBasis returns the point at t on a B-spline segment.
func GetSplinePointBasis(p1, p2, p3, p4 Vector2, t float32) Vector2 {
	var r Vector2
	procGetSplinePointBasis.Call(unsafe.Pointer(&r), unsafe.Pointer(&p1), unsafe.Pointer(&p2), unsafe.Pointer(&p3), unsafe.Pointer(&p4), unsafe.Pointer(&t))
	return r
}

// GetSplinePointCatmullRom returns the point at t on a Catmull-Rom segment.
func GetSplinePointCatmullRom(p1, p2, p3, p4 Vector2, t float32) Vector2 {
	var r Vector2
	procGetSplinePointCatmullRom.Call(unsafe.Pointer(&r), unsafe.Pointer(&p1), unsafe.Pointer(&p2), unsafe.Pointer(&p3), unsafe.Pointer(&p4), unsafe.Pointer(&t))
	return r
}

// GetSplinePointBezierQuad returns the point at t on a quadratic Bezier segment.
func GetSplinePointBezierQuad(p1, c2, p3 Vector2, t float32) Vector2 {
	var r Vector2
	procGetSplinePointBezierQuad.Call(unsafe.Pointer(&r), unsafe.Pointer(&p1), unsafe.Pointer(&c2), unsafe.Pointer(&p3), unsafe.Pointer(&t))
	return r
}

// GetSplinePointBezierCubic returns the point at t on a cubic Bezier segment.
func GetSplinePointBezierCubic(p1, c2, c3, p4 Vector2, t float32) Vector2 {
	var r Vector2
	procGetSplinePointBezierCubic.Call(unsafe.Pointer(&r), unsafe.Pointer(&p1), unsafe.Pointer(&c2), unsafe.Pointer(&c3), unsafe.Pointer(&p4), unsafe.Pointer(&t))
	return r
}
