package raymath

import rl "github.com/gogpu/raylib"

func Vector3Zero() rl.Vector3 { return rl.Vector3{} }

func Vector3One() rl.Vector3 { return rl.Vector3{X: 1, Y: 1, Z: 1} }

func Vector3Add(v1, v2 rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v1.X + v2.X, Y: v1.Y + v2.Y, Z: v1.Z + v2.Z}
}

func Vector3AddValue(v rl.Vector3, add float32) rl.Vector3 {
	return rl.Vector3{X: v.X + add, Y: v.Y + add, Z: v.Z + add}
}

func Vector3Subtract(v1, v2 rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v1.X - v2.X, Y: v1.Y - v2.Y, Z: v1.Z - v2.Z}
}

func Vector3SubtractValue(v rl.Vector3, sub float32) rl.Vector3 {
	return rl.Vector3{X: v.X - sub, Y: v.Y - sub, Z: v.Z - sub}
}

func Vector3Scale(v rl.Vector3, scalar float32) rl.Vector3 {
	return rl.Vector3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

func Vector3Multiply(v1, v2 rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v1.X * v2.X, Y: v1.Y * v2.Y, Z: v1.Z * v2.Z}
}

func Vector3CrossProduct(v1, v2 rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: v1.Y*v2.Z - v1.Z*v2.Y,
		Y: v1.Z*v2.X - v1.X*v2.Z,
		Z: v1.X*v2.Y - v1.Y*v2.X,
	}
}

// Vector3Perpendicular returns a vector perpendicular to v, built from the
// cardinal axis v is least aligned with.
func Vector3Perpendicular(v rl.Vector3) rl.Vector3 {
	min := absf(v.X)
	axis := rl.Vector3{X: 1}
	if absf(v.Y) < min {
		min = absf(v.Y)
		axis = rl.Vector3{Y: 1}
	}
	if absf(v.Z) < min {
		axis = rl.Vector3{Z: 1}
	}
	return Vector3CrossProduct(v, axis)
}

func Vector3Length(v rl.Vector3) float32 { return sqrtf(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

func Vector3LengthSqr(v rl.Vector3) float32 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

func Vector3DotProduct(v1, v2 rl.Vector3) float32 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}

func Vector3Distance(v1, v2 rl.Vector3) float32 {
	return sqrtf(Vector3DistanceSqr(v1, v2))
}

func Vector3DistanceSqr(v1, v2 rl.Vector3) float32 {
	dx, dy, dz := v2.X-v1.X, v2.Y-v1.Y, v2.Z-v1.Z
	return dx*dx + dy*dy + dz*dz
}

// Vector3Angle returns the unsigned angle between v1 and v2.
func Vector3Angle(v1, v2 rl.Vector3) float32 {
	cross := Vector3CrossProduct(v1, v2)
	return atan2f(Vector3Length(cross), Vector3DotProduct(v1, v2))
}

func Vector3Negate(v rl.Vector3) rl.Vector3 { return rl.Vector3{X: -v.X, Y: -v.Y, Z: -v.Z} }

func Vector3Divide(v1, v2 rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v1.X / v2.X, Y: v1.Y / v2.Y, Z: v1.Z / v2.Z}
}

// Vector3Normalize returns v scaled to unit length. A zero vector stays
// zero.
func Vector3Normalize(v rl.Vector3) rl.Vector3 {
	length := Vector3Length(v)
	if length == 0 {
		return v
	}
	return Vector3Scale(v, 1/length)
}

// Vector3Project returns the projection of v1 onto v2.
func Vector3Project(v1, v2 rl.Vector3) rl.Vector3 {
	mag := Vector3DotProduct(v1, v2) / Vector3DotProduct(v2, v2)
	return Vector3Scale(v2, mag)
}

// Vector3Reject returns the component of v1 perpendicular to v2.
func Vector3Reject(v1, v2 rl.Vector3) rl.Vector3 {
	mag := Vector3DotProduct(v1, v2) / Vector3DotProduct(v2, v2)
	return rl.Vector3{X: v1.X - v2.X*mag, Y: v1.Y - v2.Y*mag, Z: v1.Z - v2.Z*mag}
}

// normalizeOrSelf is Vector3Normalize with zero length treated as one.
func normalizeOrSelf(v rl.Vector3) rl.Vector3 {
	length := Vector3Length(v)
	if length == 0 {
		length = 1
	}
	return Vector3Scale(v, 1/length)
}

// Vector3OrthoNormalize makes v1 unit length and v2 a unit vector
// orthogonal to it (Gram-Schmidt).
func Vector3OrthoNormalize(v1, v2 *rl.Vector3) {
	*v1 = normalizeOrSelf(*v1)
	vn1 := normalizeOrSelf(Vector3CrossProduct(*v1, *v2))
	*v2 = Vector3CrossProduct(vn1, *v1)
}

// Vector3Transform applies mat to v as a point.
func Vector3Transform(v rl.Vector3, mat rl.Matrix) rl.Vector3 {
	return rl.Vector3{
		X: mat.M0*v.X + mat.M4*v.Y + mat.M8*v.Z + mat.M12,
		Y: mat.M1*v.X + mat.M5*v.Y + mat.M9*v.Z + mat.M13,
		Z: mat.M2*v.X + mat.M6*v.Y + mat.M10*v.Z + mat.M14,
	}
}

// Vector3RotateByQuaternion rotates v by q.
func Vector3RotateByQuaternion(v rl.Vector3, q rl.Quaternion) rl.Vector3 {
	return rl.Vector3{
		X: v.X*(q.X*q.X+q.W*q.W-q.Y*q.Y-q.Z*q.Z) + v.Y*(2*q.X*q.Y-2*q.W*q.Z) + v.Z*(2*q.X*q.Z+2*q.W*q.Y),
		Y: v.X*(2*q.W*q.Z+2*q.X*q.Y) + v.Y*(q.W*q.W-q.X*q.X+q.Y*q.Y-q.Z*q.Z) + v.Z*(-2*q.W*q.X+2*q.Y*q.Z),
		Z: v.X*(-2*q.W*q.Y+2*q.X*q.Z) + v.Y*(2*q.W*q.X+2*q.Y*q.Z) + v.Z*(q.W*q.W-q.X*q.X-q.Y*q.Y+q.Z*q.Z),
	}
}

// Vector3RotateByAxisAngle rotates v around axis by angle, using the
// Euler-Rodrigues formula.
func Vector3RotateByAxisAngle(v, axis rl.Vector3, angle float32) rl.Vector3 {
	axis = normalizeOrSelf(axis)
	angle /= 2
	a := sinf(angle)
	w := rl.Vector3{X: axis.X * a, Y: axis.Y * a, Z: axis.Z * a}
	a = cosf(angle)

	wv := Vector3CrossProduct(w, v)
	wwv := Vector3CrossProduct(w, wv)
	wv = Vector3Scale(wv, 2*a)
	wwv = Vector3Scale(wwv, 2)
	return Vector3Add(Vector3Add(v, wv), wwv)
}

func Vector3Lerp(v1, v2 rl.Vector3, amount float32) rl.Vector3 {
	return rl.Vector3{
		X: v1.X + amount*(v2.X-v1.X),
		Y: v1.Y + amount*(v2.Y-v1.Y),
		Z: v1.Z + amount*(v2.Z-v1.Z),
	}
}

// Vector3Reflect reflects v off a surface with the given normal.
func Vector3Reflect(v, normal rl.Vector3) rl.Vector3 {
	dot := Vector3DotProduct(v, normal)
	return rl.Vector3{
		X: v.X - 2*normal.X*dot,
		Y: v.Y - 2*normal.Y*dot,
		Z: v.Z - 2*normal.Z*dot,
	}
}

func Vector3Min(v1, v2 rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: minf(v1.X, v2.X), Y: minf(v1.Y, v2.Y), Z: minf(v1.Z, v2.Z)}
}

func Vector3Max(v1, v2 rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: maxf(v1.X, v2.X), Y: maxf(v1.Y, v2.Y), Z: maxf(v1.Z, v2.Z)}
}

// Vector3Barycenter returns the barycentric coordinates (u, v, w) of p in
// the triangle a, b, c. p is assumed to lie in the triangle's plane.
func Vector3Barycenter(p, a, b, c rl.Vector3) rl.Vector3 {
	v0 := Vector3Subtract(b, a)
	v1 := Vector3Subtract(c, a)
	v2 := Vector3Subtract(p, a)
	d00 := Vector3DotProduct(v0, v0)
	d01 := Vector3DotProduct(v0, v1)
	d11 := Vector3DotProduct(v1, v1)
	d20 := Vector3DotProduct(v2, v0)
	d21 := Vector3DotProduct(v2, v1)

	denom := d00*d11 - d01*d01
	y := (d11*d20 - d01*d21) / denom
	z := (d00*d21 - d01*d20) / denom
	return rl.Vector3{X: 1 - (z + y), Y: y, Z: z}
}

// Vector3Unproject maps source from normalized device coordinates back to
// world space.
func Vector3Unproject(source rl.Vector3, projection, view rl.Matrix) rl.Vector3 {
	inv := MatrixInvert(MatrixMultiply(view, projection))
	q := QuaternionTransform(rl.Quaternion{X: source.X, Y: source.Y, Z: source.Z, W: 1}, inv)
	return rl.Vector3{X: q.X / q.W, Y: q.Y / q.W, Z: q.Z / q.W}
}

func Vector3ToFloatV(v rl.Vector3) [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

func Vector3Invert(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: 1 / v.X, Y: 1 / v.Y, Z: 1 / v.Z}
}

// Vector3Clamp clamps each component of v to [min, max].
func Vector3Clamp(v, min, max rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: minf(max.X, maxf(min.X, v.X)),
		Y: minf(max.Y, maxf(min.Y, v.Y)),
		Z: minf(max.Z, maxf(min.Z, v.Z)),
	}
}

// Vector3ClampValue clamps the length of v to [min, max].
func Vector3ClampValue(v rl.Vector3, min, max float32) rl.Vector3 {
	length := Vector3LengthSqr(v)
	if length <= 0 {
		return v
	}
	length = sqrtf(length)
	scale := float32(1)
	if length < min {
		scale = min / length
	} else if length > max {
		scale = max / length
	}
	return Vector3Scale(v, scale)
}

func Vector3Equals(p, q rl.Vector3) bool {
	return FloatEquals(p.X, q.X) && FloatEquals(p.Y, q.Y) && FloatEquals(p.Z, q.Z)
}

// Vector3Refract refracts v through a surface with normal n, where r is
// the ratio of the refractive indices. Total internal reflection yields
// the zero vector. v and n must be normalized.
func Vector3Refract(v, n rl.Vector3, r float32) rl.Vector3 {
	dot := Vector3DotProduct(v, n)
	d := 1 - r*r*(1-dot*dot)
	if d < 0 {
		return rl.Vector3{}
	}
	d = sqrtf(d)
	k := r*dot + d
	return rl.Vector3{X: r*v.X - k*n.X, Y: r*v.Y - k*n.Y, Z: r*v.Z - k*n.Z}
}
