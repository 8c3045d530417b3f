package raymath

import (
	"math"
	"testing"

	rl "github.com/gogpu/raylib"
)

const tol = 1e-5

func near(a, b float32) bool { return math.Abs(float64(a-b)) < tol }

func near3(a, b rl.Vector3) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func nearQ(a, b rl.Quaternion) bool {
	same := near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) && near(a.W, b.W)
	return same || (near(a.X, -b.X) && near(a.Y, -b.Y) && near(a.Z, -b.Z) && near(a.W, -b.W))
}

func nearMatrix(a, b rl.Matrix) bool {
	fa, fb := MatrixToFloatV(a), MatrixToFloatV(b)
	for i := range fa {
		if !near(fa[i], fb[i]) {
			return false
		}
	}
	return true
}

func TestScalars(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"Clamp above", Clamp(5, 0, 1), 1},
		{"Clamp below", Clamp(-1, 0, 1), 0},
		{"Clamp inside", Clamp(0.25, 0, 1), 0.25},
		{"Lerp", Lerp(0, 10, 0.25), 2.5},
		{"Normalize", Normalize(5, 0, 10), 0.5},
		{"Remap", Remap(5, 0, 10, 100, 200), 150},
		{"Wrap above", Wrap(370, 0, 360), 10},
		{"Wrap below", Wrap(-10, 0, 360), 350},
	}
	for _, tt := range tests {
		if !near(tt.got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestFloatEquals(t *testing.T) {
	tests := []struct {
		x, y float32
		want bool
	}{
		{1, 1, true},
		{1, 1 + 1e-7, true},
		{1, 1.001, false},
		{1e6, 1e6 + 0.5, true},
		{0, 1e-7, true},
		{0, 1e-5, false},
	}
	for _, tt := range tests {
		if got := FloatEquals(tt.x, tt.y); got != tt.want {
			t.Errorf("FloatEquals(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestVector2(t *testing.T) {
	if a := Vector2Angle(rl.Vector2{X: 1}, rl.Vector2{Y: 1}); !near(a, math.Pi/2) {
		t.Errorf("Vector2Angle = %v, want pi/2", a)
	}
	if a := Vector2LineAngle(rl.Vector2{}, rl.Vector2{X: 1, Y: 1}); !near(a, -math.Pi/4) {
		t.Errorf("Vector2LineAngle = %v, want -pi/4", a)
	}
	if r := Vector2Rotate(rl.Vector2{X: 1}, math.Pi/2); !near(r.X, 0) || !near(r.Y, 1) {
		t.Errorf("Vector2Rotate = %v", r)
	}
	if n := Vector2Normalize(rl.Vector2{}); n != (rl.Vector2{}) {
		t.Errorf("Vector2Normalize(0) = %v", n)
	}
	if n := Vector2Normalize(rl.Vector2{X: 3, Y: 4}); !near(n.X, 0.6) || !near(n.Y, 0.8) {
		t.Errorf("Vector2Normalize = %v", n)
	}
	if m := Vector2MoveTowards(rl.Vector2{}, rl.Vector2{X: 10}, 3); m != (rl.Vector2{X: 3}) {
		t.Errorf("Vector2MoveTowards = %v", m)
	}
	if m := Vector2MoveTowards(rl.Vector2{}, rl.Vector2{X: 2}, 3); m != (rl.Vector2{X: 2}) {
		t.Errorf("Vector2MoveTowards past target = %v", m)
	}
	if c := Vector2ClampValue(rl.Vector2{X: 3, Y: 4}, 0, 2.5); !near(c.X, 1.5) || !near(c.Y, 2) {
		t.Errorf("Vector2ClampValue = %v", c)
	}
	if r := Vector2Reflect(rl.Vector2{X: 1, Y: -1}, rl.Vector2{Y: 1}); r != (rl.Vector2{X: 1, Y: 1}) {
		t.Errorf("Vector2Reflect = %v", r)
	}
	tr := Vector2Transform(rl.Vector2{X: 1, Y: 2}, MatrixTranslate(10, 20, 30))
	if tr != (rl.Vector2{X: 11, Y: 22}) {
		t.Errorf("Vector2Transform = %v", tr)
	}
}

func TestVector3(t *testing.T) {
	x, y, z := rl.Vector3{X: 1}, rl.Vector3{Y: 1}, rl.Vector3{Z: 1}

	if c := Vector3CrossProduct(x, y); c != z {
		t.Errorf("X cross Y = %v", c)
	}
	if p := Vector3Perpendicular(x); p != z {
		t.Errorf("Vector3Perpendicular(X) = %v", p)
	}
	if a := Vector3Angle(x, y); !near(a, math.Pi/2) {
		t.Errorf("Vector3Angle = %v", a)
	}

	v1, v2 := rl.Vector3{X: 2}, rl.Vector3{X: 1, Y: 1}
	Vector3OrthoNormalize(&v1, &v2)
	if !near3(v1, x) || !near3(v2, y) {
		t.Errorf("Vector3OrthoNormalize = %v, %v", v1, v2)
	}

	if r := Vector3RotateByAxisAngle(x, z, math.Pi/2); !near3(r, y) {
		t.Errorf("Vector3RotateByAxisAngle = %v", r)
	}
	v := rl.Vector3{X: 1, Y: 2, Z: 3}
	axis := rl.Vector3{X: 1, Y: 1}
	q := QuaternionFromAxisAngle(axis, 0.7)
	if a, b := Vector3RotateByQuaternion(v, q), Vector3RotateByAxisAngle(v, axis, 0.7); !near3(a, b) {
		t.Errorf("quaternion rotation %v, axis-angle rotation %v", a, b)
	}

	a, b, c := rl.Vector3{}, rl.Vector3{X: 4}, rl.Vector3{Y: 4}
	if bc := Vector3Barycenter(a, a, b, c); !near3(bc, x) {
		t.Errorf("Vector3Barycenter(a) = %v", bc)
	}
	if bc := Vector3Barycenter(b, a, b, c); !near3(bc, y) {
		t.Errorf("Vector3Barycenter(b) = %v", bc)
	}

	down := rl.Vector3{Y: -1}
	if r := Vector3Refract(down, y, 1); !near3(r, down) {
		t.Errorf("Vector3Refract straight = %v", r)
	}
	if r := Vector3Refract(x, y, 1.5); r != (rl.Vector3{}) {
		t.Errorf("Vector3Refract total internal reflection = %v", r)
	}

	if u := Vector3Unproject(v, MatrixIdentity(), MatrixIdentity()); !near3(u, v) {
		t.Errorf("Vector3Unproject = %v", u)
	}
	if p := Vector3Project(v, x); p != (rl.Vector3{X: 1}) {
		t.Errorf("Vector3Project = %v", p)
	}
	if r := Vector3Reject(v, x); r != (rl.Vector3{Y: 2, Z: 3}) {
		t.Errorf("Vector3Reject = %v", r)
	}
	if n := Vector3Normalize(rl.Vector3{}); n != (rl.Vector3{}) {
		t.Errorf("Vector3Normalize(0) = %v", n)
	}
}

func TestMatrix(t *testing.T) {
	m := MatrixMultiply(MatrixRotateY(0.3), MatrixTranslate(1, 2, 3))
	if got := MatrixMultiply(MatrixIdentity(), m); got != m {
		t.Errorf("I * m = %v", got)
	}
	if got := MatrixInvert(MatrixTranslate(1, 2, 3)); !nearMatrix(got, MatrixTranslate(-1, -2, -3)) {
		t.Errorf("MatrixInvert(translate) = %v", got)
	}
	if got := MatrixMultiply(m, MatrixInvert(m)); !nearMatrix(got, MatrixIdentity()) {
		t.Errorf("m * inverse(m) = %v", got)
	}
	if d := MatrixDeterminant(MatrixScale(2, 3, 4)); d != 24 {
		t.Errorf("MatrixDeterminant = %v", d)
	}
	if tr := MatrixTrace(MatrixIdentity()); tr != 4 {
		t.Errorf("MatrixTrace = %v", tr)
	}
	if got := MatrixTranspose(MatrixTranspose(m)); got != m {
		t.Errorf("transpose twice = %v", got)
	}

	f := MatrixToFloatV(MatrixTranslate(1, 2, 3))
	if f[12] != 1 || f[13] != 2 || f[14] != 3 || f[15] != 1 {
		t.Errorf("MatrixToFloatV = %v", f)
	}
	if MatrixFromFloatV(MatrixToFloatV(m)) != m {
		t.Errorf("float array round trip changed the matrix")
	}

	// The left operand applies first.
	p := Vector3Transform(rl.Vector3{X: 1}, MatrixMultiply(MatrixScale(2, 2, 2), MatrixTranslate(1, 0, 0)))
	if p != (rl.Vector3{X: 3}) {
		t.Errorf("scale then translate = %v", p)
	}
	if r := Vector3Transform(rl.Vector3{X: 1}, MatrixRotateZ(math.Pi/2)); !near3(r, rl.Vector3{Y: 1}) {
		t.Errorf("MatrixRotateZ = %v", r)
	}
	if a, b := MatrixRotate(rl.Vector3{Z: 2}, math.Pi/2), MatrixRotateZ(math.Pi/2); !nearMatrix(a, b) {
		t.Errorf("MatrixRotate(Z) = %v, want %v", a, b)
	}
	if a, b := MatrixRotateXYZ(rl.Vector3{X: 0.4}), MatrixRotateX(0.4); !nearMatrix(a, b) {
		t.Errorf("MatrixRotateXYZ(X) = %v, want %v", a, b)
	}
	if a, b := MatrixRotateZYX(rl.Vector3{Y: 0.4}), MatrixRotateY(0.4); !nearMatrix(a, b) {
		t.Errorf("MatrixRotateZYX(Y) = %v, want %v", a, b)
	}
}

func TestProjection(t *testing.T) {
	eye := rl.Vector3{Z: 5}
	view := MatrixLookAt(eye, rl.Vector3{}, rl.Vector3{Y: 1})
	if p := Vector3Transform(eye, view); !near3(p, rl.Vector3{}) {
		t.Errorf("eye in view space = %v", p)
	}
	if p := Vector3Transform(rl.Vector3{}, view); !near3(p, rl.Vector3{Z: -5}) {
		t.Errorf("target in view space = %v", p)
	}

	o := MatrixOrtho(-1, 1, -1, 1, 0, 10)
	if !near(o.M0, 1) || !near(o.M5, 1) || !near(o.M10, -0.2) || !near(o.M14, -1) || o.M15 != 1 {
		t.Errorf("MatrixOrtho = %+v", o)
	}

	p := MatrixPerspective(math.Pi/2, 1, 1, 100)
	if !near(p.M0, 1) || !near(p.M5, 1) || p.M11 != -1 || p.M15 != 0 {
		t.Errorf("MatrixPerspective = %+v", p)
	}
	// A point on the near plane lands at NDC depth -1.
	q := QuaternionTransform(rl.Quaternion{Z: -1, W: 1}, p)
	if !near(q.Z/q.W, -1) {
		t.Errorf("near plane depth = %v", q.Z/q.W)
	}
}

func TestQuaternion(t *testing.T) {
	z := rl.Vector3{Z: 1}
	q90 := QuaternionFromAxisAngle(z, math.Pi/2)

	if a, b := QuaternionToMatrix(q90), MatrixRotateZ(math.Pi/2); !nearMatrix(a, b) {
		t.Errorf("QuaternionToMatrix = %v, want %v", a, b)
	}
	if back := QuaternionFromMatrix(QuaternionToMatrix(q90)); !nearQ(back, q90) {
		t.Errorf("QuaternionFromMatrix = %v, want %v", back, q90)
	}

	axis, angle := QuaternionToAxisAngle(QuaternionFromAxisAngle(rl.Vector3{Y: 3}, 1))
	if !near3(axis, rl.Vector3{Y: 1}) || !near(angle, 1) {
		t.Errorf("QuaternionToAxisAngle = %v, %v", axis, angle)
	}
	if axis, _ := QuaternionToAxisAngle(QuaternionIdentity()); axis != (rl.Vector3{X: 1}) {
		t.Errorf("identity axis = %v", axis)
	}
	if q := QuaternionFromAxisAngle(rl.Vector3{}, 1); q != QuaternionIdentity() {
		t.Errorf("zero axis = %v", q)
	}

	e := QuaternionToEuler(QuaternionFromEuler(0.1, 0.2, 0.3))
	if !near3(e, rl.Vector3{X: 0.1, Y: 0.2, Z: 0.3}) {
		t.Errorf("Euler round trip = %v", e)
	}

	half := QuaternionSlerp(QuaternionIdentity(), q90, 0.5)
	if want := QuaternionFromAxisAngle(z, math.Pi/4); !nearQ(half, want) {
		t.Errorf("QuaternionSlerp = %v, want %v", half, want)
	}
	if s := QuaternionSlerp(q90, q90, 0.3); !nearQ(s, q90) {
		t.Errorf("slerp of equal quaternions = %v", s)
	}

	if id := QuaternionMultiply(q90, QuaternionInvert(q90)); !nearQ(id, QuaternionIdentity()) {
		t.Errorf("q * inverse(q) = %v", id)
	}
	if inv := QuaternionInvert(rl.Quaternion{}); inv != (rl.Quaternion{}) {
		t.Errorf("QuaternionInvert(0) = %v", inv)
	}
	if !QuaternionEquals(q90, Vector4Negate(q90)) {
		t.Errorf("q and -q differ")
	}
	if r := QuaternionFromVector3ToVector3(rl.Vector3{X: 1}, rl.Vector3{Y: 1}); !nearQ(r, q90) {
		t.Errorf("QuaternionFromVector3ToVector3 = %v, want %v", r, q90)
	}
}
