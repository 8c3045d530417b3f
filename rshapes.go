package raylib

import (
	"sync"
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procDrawPixel                 = bind.New("DrawPixel", bind.Void, bind.Int, bind.Int, cColor)
	procDrawPixelV                = bind.New("DrawPixelV", bind.Void, cVector2, cColor)
	procDrawLine                  = bind.New("DrawLine", bind.Void, bind.Int, bind.Int, bind.Int, bind.Int, cColor)
	procDrawLineV                 = bind.New("DrawLineV", bind.Void, cVector2, cVector2, cColor)
	procDrawLineEx                = bind.New("DrawLineEx", bind.Void, cVector2, cVector2, bind.Float, cColor)
	procDrawLineStrip             = bind.New("DrawLineStrip", bind.Void, bind.Ptr, bind.Int, cColor)
	procDrawLineBezier            = bind.New("DrawLineBezier", bind.Void, cVector2, cVector2, bind.Float, cColor)
	procDrawCircle                = bind.New("DrawCircle", bind.Void, bind.Int, bind.Int, bind.Float, cColor)
	procDrawCircleSector          = bind.New("DrawCircleSector", bind.Void, cVector2, bind.Float, bind.Float, bind.Float, bind.Int, cColor)
	procDrawCircleSectorLines     = bind.New("DrawCircleSectorLines", bind.Void, cVector2, bind.Float, bind.Float, bind.Float, bind.Int, cColor)
	procDrawCircleGradient        = bind.New("DrawCircleGradient", bind.Void, bind.Int, bind.Int, bind.Float, cColor, cColor)
	procDrawCircleV               = bind.New("DrawCircleV", bind.Void, cVector2, bind.Float, cColor)
	procDrawCircleLines           = bind.New("DrawCircleLines", bind.Void, bind.Int, bind.Int, bind.Float, cColor)
	procDrawCircleLinesV          = bind.New("DrawCircleLinesV", bind.Void, cVector2, bind.Float, cColor)
	procDrawEllipse               = bind.New("DrawEllipse", bind.Void, bind.Int, bind.Int, bind.Float, bind.Float, cColor)
	procDrawEllipseLines          = bind.New("DrawEllipseLines", bind.Void, bind.Int, bind.Int, bind.Float, bind.Float, cColor)
	procDrawRing                  = bind.New("DrawRing", bind.Void, cVector2, bind.Float, bind.Float, bind.Float, bind.Float, bind.Int, cColor)
	procDrawRingLines             = bind.New("DrawRingLines", bind.Void, cVector2, bind.Float, bind.Float, bind.Float, bind.Float, bind.Int, cColor)
	procDrawRectangle             = bind.New("DrawRectangle", bind.Void, bind.Int, bind.Int, bind.Int, bind.Int, cColor)
	procDrawRectangleV            = bind.New("DrawRectangleV", bind.Void, cVector2, cVector2, cColor)
	procDrawRectangleRec          = bind.New("DrawRectangleRec", bind.Void, cRectangle, cColor)
	procDrawRectanglePro          = bind.New("DrawRectanglePro", bind.Void, cRectangle, cVector2, bind.Float, cColor)
	procDrawRectangleGradientV    = bind.New("DrawRectangleGradientV", bind.Void, bind.Int, bind.Int, bind.Int, bind.Int, cColor, cColor)
	procDrawRectangleGradientH    = bind.New("DrawRectangleGradientH", bind.Void, bind.Int, bind.Int, bind.Int, bind.Int, cColor, cColor)
	procDrawRectangleGradientEx   = bind.New("DrawRectangleGradientEx", bind.Void, cRectangle, cColor, cColor, cColor, cColor)
	procDrawRectangleLines        = bind.New("DrawRectangleLines", bind.Void, bind.Int, bind.Int, bind.Int, bind.Int, cColor)
	procDrawRectangleLinesEx      = bind.New("DrawRectangleLinesEx", bind.Void, cRectangle, bind.Float, cColor)
	procDrawRectangleRounded      = bind.New("DrawRectangleRounded", bind.Void, cRectangle, bind.Float, bind.Int, cColor)
	procDrawRectangleRoundedLines = bind.New("DrawRectangleRoundedLines", bind.Void, cRectangle, bind.Float, bind.Int, bind.Float, cColor)
	procDrawTriangle              = bind.New("DrawTriangle", bind.Void, cVector2, cVector2, cVector2, cColor)
	procDrawTriangleLines         = bind.New("DrawTriangleLines", bind.Void, cVector2, cVector2, cVector2, cColor)
	procDrawTriangleFan           = bind.New("DrawTriangleFan", bind.Void, bind.Ptr, bind.Int, cColor)
	procDrawTriangleStrip         = bind.New("DrawTriangleStrip", bind.Void, bind.Ptr, bind.Int, cColor)
	procDrawPoly                  = bind.New("DrawPoly", bind.Void, cVector2, bind.Int, bind.Float, bind.Float, cColor)
	procDrawPolyLines             = bind.New("DrawPolyLines", bind.Void, cVector2, bind.Int, bind.Float, bind.Float, cColor)
	procDrawPolyLinesEx           = bind.New("DrawPolyLinesEx", bind.Void, cVector2, bind.Int, bind.Float, bind.Float, bind.Float, cColor)
)

// DrawPixel draws a pixel.
func DrawPixel(posX, posY int32, color Color) {
	procDrawPixel.Call(nil, unsafe.Pointer(&posX), unsafe.Pointer(&posY), unsafe.Pointer(&color))
}

// DrawPixelV draws a pixel.
func DrawPixelV(position Vector2, color Color) {
	procDrawPixelV.Call(nil, unsafe.Pointer(&position), unsafe.Pointer(&color))
}

// DrawLine draws a line.
func DrawLine(startPosX, startPosY, endPosX, endPosY int32, color Color) {
	procDrawLine.Call(nil, unsafe.Pointer(&startPosX), unsafe.Pointer(&startPosY), unsafe.Pointer(&endPosX), unsafe.Pointer(&endPosY), unsafe.Pointer(&color))
}

// DrawLineV draws a line using OpenGL lines.
func DrawLineV(startPos, endPos Vector2, color Color) {
	procDrawLineV.Call(nil, unsafe.Pointer(&startPos), unsafe.Pointer(&endPos), unsafe.Pointer(&color))
}

// DrawLineEx draws a line using triangles.
func DrawLineEx(startPos, endPos Vector2, thick float32, color Color) {
	procDrawLineEx.Call(nil, unsafe.Pointer(&startPos), unsafe.Pointer(&endPos), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// DrawLineStrip draws a sequence of connected lines.
func DrawLineStrip(points []Vector2, color Color) {
	pPoints := sliceData(points)
	nPoints := int32(len(points))
	procDrawLineStrip.Call(nil, unsafe.Pointer(&pPoints), unsafe.Pointer(&nPoints), unsafe.Pointer(&color))
}

// DrawLineBezier draws a line segment with cubic-bezier in-out easing.
func DrawLineBezier(startPos, endPos Vector2, thick float32, color Color) {
	procDrawLineBezier.Call(nil, unsafe.Pointer(&startPos), unsafe.Pointer(&endPos), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// DrawCircle draws a filled circle.
func DrawCircle(centerX, centerY int32, radius float32, color Color) {
	procDrawCircle.Call(nil, unsafe.Pointer(&centerX), unsafe.Pointer(&centerY), unsafe.Pointer(&radius), unsafe.Pointer(&color))
}

// DrawCircleSector draws a piece of a circle.
func DrawCircleSector(center Vector2, radius, startAngle, endAngle float32, segments int32, color Color) {
	procDrawCircleSector.Call(nil, unsafe.Pointer(&center), unsafe.Pointer(&radius), unsafe.Pointer(&startAngle), unsafe.Pointer(&endAngle), unsafe.Pointer(&segments), unsafe.Pointer(&color))
}

// DrawCircleSectorLines draws the outline of a piece of a circle.
func DrawCircleSectorLines(center Vector2, radius, startAngle, endAngle float32, segments int32, color Color) {
	procDrawCircleSectorLines.Call(nil, unsafe.Pointer(&center), unsafe.Pointer(&radius), unsafe.Pointer(&startAngle), unsafe.Pointer(&endAngle), unsafe.Pointer(&segments), unsafe.Pointer(&color))
}

// DrawCircleGradient draws a gradient-filled circle.
func DrawCircleGradient(centerX, centerY int32, radius float32, color1, color2 Color) {
	procDrawCircleGradient.Call(nil, unsafe.Pointer(&centerX), unsafe.Pointer(&centerY), unsafe.Pointer(&radius), unsafe.Pointer(&color1), unsafe.Pointer(&color2))
}

// DrawCircleV draws a filled circle.
func DrawCircleV(center Vector2, radius float32, color Color) {
	procDrawCircleV.Call(nil, unsafe.Pointer(&center), unsafe.Pointer(&radius), unsafe.Pointer(&color))
}

// DrawCircleLines draws a circle outline.
func DrawCircleLines(centerX, centerY int32, radius float32, color Color) {
	procDrawCircleLines.Call(nil, unsafe.Pointer(&centerX), unsafe.Pointer(&centerY), unsafe.Pointer(&radius), unsafe.Pointer(&color))
}

// DrawCircleLinesV draws a circle outline.
func DrawCircleLinesV(center Vector2, radius float32, color Color) {
	procDrawCircleLinesV.Call(nil, unsafe.Pointer(&center), unsafe.Pointer(&radius), unsafe.Pointer(&color))
}

// DrawEllipse draws a filled ellipse.
func DrawEllipse(centerX, centerY int32, radiusH, radiusV float32, color Color) {
	procDrawEllipse.Call(nil, unsafe.Pointer(&centerX), unsafe.Pointer(&centerY), unsafe.Pointer(&radiusH), unsafe.Pointer(&radiusV), unsafe.Pointer(&color))
}

// DrawEllipseLines draws an ellipse outline.
func DrawEllipseLines(centerX, centerY int32, radiusH, radiusV float32, color Color) {
	procDrawEllipseLines.Call(nil, unsafe.Pointer(&centerX), unsafe.Pointer(&centerY), unsafe.Pointer(&radiusH), unsafe.Pointer(&radiusV), unsafe.Pointer(&color))
}

// DrawRing draws a ring.
func DrawRing(center Vector2, innerRadius, outerRadius, startAngle, endAngle float32, segments int32, color Color) {
	procDrawRing.Call(nil, unsafe.Pointer(&center), unsafe.Pointer(&innerRadius), unsafe.Pointer(&outerRadius), unsafe.Pointer(&startAngle), unsafe.Pointer(&endAngle), unsafe.Pointer(&segments), unsafe.Pointer(&color))
}

// DrawRingLines draws a ring outline.
func DrawRingLines(center Vector2, innerRadius, outerRadius, startAngle, endAngle float32, segments int32, color Color) {
	procDrawRingLines.Call(nil, unsafe.Pointer(&center), unsafe.Pointer(&innerRadius), unsafe.Pointer(&outerRadius), unsafe.Pointer(&startAngle), unsafe.Pointer(&endAngle), unsafe.Pointer(&segments), unsafe.Pointer(&color))
}

// DrawRectangle draws a filled rectangle.
func DrawRectangle(posX, posY, width, height int32, color Color) {
	procDrawRectangle.Call(nil, unsafe.Pointer(&posX), unsafe.Pointer(&posY), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&color))
}

// DrawRectangleV draws a filled rectangle.
func DrawRectangleV(position, size Vector2, color Color) {
	procDrawRectangleV.Call(nil, unsafe.Pointer(&position), unsafe.Pointer(&size), unsafe.Pointer(&color))
}

// DrawRectangleRec draws a filled rectangle.
func DrawRectangleRec(rec Rectangle, color Color) {
	procDrawRectangleRec.Call(nil, unsafe.Pointer(&rec), unsafe.Pointer(&color))
}

// DrawRectanglePro draws a rectangle rotated around origin.
func DrawRectanglePro(rec Rectangle, origin Vector2, rotation float32, color Color) {
	procDrawRectanglePro.Call(nil, unsafe.Pointer(&rec), unsafe.Pointer(&origin), unsafe.Pointer(&rotation), unsafe.Pointer(&color))
}

// DrawRectangleGradientV draws a vertical-gradient rectangle.
func DrawRectangleGradientV(posX, posY, width, height int32, color1, color2 Color) {
	procDrawRectangleGradientV.Call(nil, unsafe.Pointer(&posX), unsafe.Pointer(&posY), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&color1), unsafe.Pointer(&color2))
}

// DrawRectangleGradientH draws a horizontal-gradient rectangle.
func DrawRectangleGradientH(posX, posY, width, height int32, color1, color2 Color) {
	procDrawRectangleGradientH.Call(nil, unsafe.Pointer(&posX), unsafe.Pointer(&posY), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&color1), unsafe.Pointer(&color2))
}

// DrawRectangleGradientEx draws a rectangle with a color per corner, counter-clockwise from the top left.
func DrawRectangleGradientEx(rec Rectangle, col1, col2, col3, col4 Color) {
	procDrawRectangleGradientEx.Call(nil, unsafe.Pointer(&rec), unsafe.Pointer(&col1), unsafe.Pointer(&col2), unsafe.Pointer(&col3), unsafe.Pointer(&col4))
}

// DrawRectangleLines draws a rectangle outline.
func DrawRectangleLines(posX, posY, width, height int32, color Color) {
	procDrawRectangleLines.Call(nil, unsafe.Pointer(&posX), unsafe.Pointer(&posY), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&color))
}

// DrawRectangleLinesEx draws a rectangle outline of the given thickness.
func DrawRectangleLinesEx(rec Rectangle, lineThick float32, color Color) {
	procDrawRectangleLinesEx.Call(nil, unsafe.Pointer(&rec), unsafe.Pointer(&lineThick), unsafe.Pointer(&color))
}

// DrawRectangleRounded draws a rectangle with rounded corners.
func DrawRectangleRounded(rec Rectangle, roundness float32, segments int32, color Color) {
	procDrawRectangleRounded.Call(nil, unsafe.Pointer(&rec), unsafe.Pointer(&roundness), unsafe.Pointer(&segments), unsafe.Pointer(&color))
}

// DrawRectangleRoundedLines draws the outline of a rectangle with rounded corners.
func DrawRectangleRoundedLines(rec Rectangle, roundness float32, segments int32, lineThick float32, color Color) {
	procDrawRectangleRoundedLines.Call(nil, unsafe.Pointer(&rec), unsafe.Pointer(&roundness), unsafe.Pointer(&segments), unsafe.Pointer(&lineThick), unsafe.Pointer(&color))
}

// DrawTriangle draws a filled triangle. Vertices are in counter-clockwise order.
func DrawTriangle(v1, v2, v3 Vector2, color Color) {
	procDrawTriangle.Call(nil, unsafe.Pointer(&v1), unsafe.Pointer(&v2), unsafe.Pointer(&v3), unsafe.Pointer(&color))
}

// DrawTriangleLines draws a triangle outline. Vertices are in counter-clockwise order.
func DrawTriangleLines(v1, v2, v3 Vector2, color Color) {
	procDrawTriangleLines.Call(nil, unsafe.Pointer(&v1), unsafe.Pointer(&v2), unsafe.Pointer(&v3), unsafe.Pointer(&color))
}

// DrawTriangleFan draws a triangle fan. The first point is the center.
func DrawTriangleFan(points []Vector2, color Color) {
	pPoints := sliceData(points)
	nPoints := int32(len(points))
	procDrawTriangleFan.Call(nil, unsafe.Pointer(&pPoints), unsafe.Pointer(&nPoints), unsafe.Pointer(&color))
}

// DrawTriangleStrip draws a triangle strip.
func DrawTriangleStrip(points []Vector2, color Color) {
	pPoints := sliceData(points)
	nPoints := int32(len(points))
	procDrawTriangleStrip.Call(nil, unsafe.Pointer(&pPoints), unsafe.Pointer(&nPoints), unsafe.Pointer(&color))
}

// DrawPoly draws a regular polygon.
func DrawPoly(center Vector2, sides int32, radius, rotation float32, color Color) {
	procDrawPoly.Call(nil, unsafe.Pointer(&center), unsafe.Pointer(&sides), unsafe.Pointer(&radius), unsafe.Pointer(&rotation), unsafe.Pointer(&color))
}

// DrawPolyLines draws a regular polygon outline.
func DrawPolyLines(center Vector2, sides int32, radius, rotation float32, color Color) {
	procDrawPolyLines.Call(nil, unsafe.Pointer(&center), unsafe.Pointer(&sides), unsafe.Pointer(&radius), unsafe.Pointer(&rotation), unsafe.Pointer(&color))
}

// DrawPolyLinesEx draws a regular polygon outline of the given thickness.
func DrawPolyLinesEx(center Vector2, sides int32, radius, rotation, lineThick float32, color Color) {
	procDrawPolyLinesEx.Call(nil, unsafe.Pointer(&center), unsafe.Pointer(&sides), unsafe.Pointer(&radius), unsafe.Pointer(&rotation), unsafe.Pointer(&lineThick), unsafe.Pointer(&color))
}

var procSetShapesTexture = bind.New("SetShapesTexture", bind.Void, cTexture, cRectangle)

var shapesTexture struct {
	mu     sync.Mutex
	set    bool
	tex    Texture2D
	source Rectangle
}

func init() {
	onUnload(func() {
		shapesTexture.mu.Lock()
		shapesTexture.set = false
		shapesTexture.tex = Texture2D{}
		shapesTexture.mu.Unlock()
	})
}

// SetShapesTexture sets the texture and source rectangle shapes are
// drawn with. Using a font atlas white pixel lets shapes and text share
// one draw call.
func SetShapesTexture(texture Texture2D, source Rectangle) {
	procSetShapesTexture.Call(nil, unsafe.Pointer(&texture), unsafe.Pointer(&source))
	shapesTexture.mu.Lock()
	shapesTexture.set = true
	shapesTexture.tex, shapesTexture.source = texture, source
	shapesTexture.mu.Unlock()
}

// GetShapesTexture returns the texture last passed to SetShapesTexture.
// It is the zero Texture when the default white texture is in use.
func GetShapesTexture() Texture2D {
	shapesTexture.mu.Lock()
	defer shapesTexture.mu.Unlock()
	return shapesTexture.tex
}

// GetShapesTextureRectangle returns the source rectangle last passed to
// SetShapesTexture. Before any call it is the 1x1 rectangle of the
// default white texture.
func GetShapesTextureRectangle() Rectangle {
	shapesTexture.mu.Lock()
	defer shapesTexture.mu.Unlock()
	if !shapesTexture.set {
		return Rectangle{Width: 1, Height: 1}
	}
	return shapesTexture.source
}
