package raymath

import rl "github.com/gogpu/raylib"

func QuaternionAdd(q1, q2 rl.Quaternion) rl.Quaternion { return Vector4Add(q1, q2) }

func QuaternionAddValue(q rl.Quaternion, add float32) rl.Quaternion {
	return Vector4AddValue(q, add)
}

func QuaternionSubtract(q1, q2 rl.Quaternion) rl.Quaternion { return Vector4Subtract(q1, q2) }

func QuaternionSubtractValue(q rl.Quaternion, sub float32) rl.Quaternion {
	return Vector4SubtractValue(q, sub)
}

// QuaternionIdentity returns the rotation that does nothing.
func QuaternionIdentity() rl.Quaternion { return rl.Quaternion{W: 1} }

func QuaternionLength(q rl.Quaternion) float32 { return Vector4Length(q) }

// QuaternionNormalize returns q scaled to unit length.
func QuaternionNormalize(q rl.Quaternion) rl.Quaternion {
	length := Vector4Length(q)
	if length == 0 {
		length = 1
	}
	return Vector4Scale(q, 1/length)
}

// QuaternionInvert returns the inverse rotation. A zero quaternion is
// returned unchanged.
func QuaternionInvert(q rl.Quaternion) rl.Quaternion {
	ls := Vector4LengthSqr(q)
	if ls == 0 {
		return q
	}
	inv := 1 / ls
	return rl.Quaternion{X: -q.X * inv, Y: -q.Y * inv, Z: -q.Z * inv, W: q.W * inv}
}

// QuaternionMultiply returns the Hamilton product q1 * q2.
func QuaternionMultiply(q1, q2 rl.Quaternion) rl.Quaternion {
	ax, ay, az, aw := q1.X, q1.Y, q1.Z, q1.W
	bx, by, bz, bw := q2.X, q2.Y, q2.Z, q2.W
	return rl.Quaternion{
		X: ax*bw + aw*bx + ay*bz - az*by,
		Y: ay*bw + aw*by + az*bx - ax*bz,
		Z: az*bw + aw*bz + ax*by - ay*bx,
		W: aw*bw - ax*bx - ay*by - az*bz,
	}
}

func QuaternionScale(q rl.Quaternion, mul float32) rl.Quaternion { return Vector4Scale(q, mul) }

func QuaternionDivide(q1, q2 rl.Quaternion) rl.Quaternion { return Vector4Divide(q1, q2) }

func QuaternionLerp(q1, q2 rl.Quaternion, amount float32) rl.Quaternion {
	return Vector4Lerp(q1, q2, amount)
}

// QuaternionNlerp is QuaternionLerp followed by normalization.
func QuaternionNlerp(q1, q2 rl.Quaternion, amount float32) rl.Quaternion {
	return QuaternionNormalize(Vector4Lerp(q1, q2, amount))
}

// QuaternionSlerp interpolates spherically between q1 and q2 along the
// shorter arc.
func QuaternionSlerp(q1, q2 rl.Quaternion, amount float32) rl.Quaternion {
	cosHalf := Vector4DotProduct(q1, q2)
	if cosHalf < 0 {
		q2 = Vector4Negate(q2)
		cosHalf = -cosHalf
	}

	switch {
	case absf(cosHalf) >= 1:
		return q1
	case cosHalf > 0.95:
		return QuaternionNlerp(q1, q2, amount)
	}

	half := acosf(cosHalf)
	sinHalf := sqrtf(1 - cosHalf*cosHalf)
	if absf(sinHalf) < Epsilon {
		return Vector4Add(Vector4Scale(q1, 0.5), Vector4Scale(q2, 0.5))
	}
	ra := sinf((1-amount)*half) / sinHalf
	rb := sinf(amount*half) / sinHalf
	return Vector4Add(Vector4Scale(q1, ra), Vector4Scale(q2, rb))
}

// QuaternionFromVector3ToVector3 returns the rotation taking from to to.
func QuaternionFromVector3ToVector3(from, to rl.Vector3) rl.Quaternion {
	cos2 := Vector3DotProduct(from, to)
	cross := Vector3CrossProduct(from, to)
	return QuaternionNormalize(rl.Quaternion{X: cross.X, Y: cross.Y, Z: cross.Z, W: 1 + cos2})
}

// QuaternionFromMatrix extracts the rotation of mat.
func QuaternionFromMatrix(mat rl.Matrix) rl.Quaternion {
	fourW := mat.M0 + mat.M5 + mat.M10
	fourX := mat.M0 - mat.M5 - mat.M10
	fourY := mat.M5 - mat.M0 - mat.M10
	fourZ := mat.M10 - mat.M0 - mat.M5

	biggest, idx := fourW, 0
	if fourX > biggest {
		biggest, idx = fourX, 1
	}
	if fourY > biggest {
		biggest, idx = fourY, 2
	}
	if fourZ > biggest {
		biggest, idx = fourZ, 3
	}

	val := sqrtf(biggest+1) * 0.5
	mult := 0.25 / val

	switch idx {
	case 0:
		return rl.Quaternion{W: val, X: (mat.M6 - mat.M9) * mult, Y: (mat.M8 - mat.M2) * mult, Z: (mat.M1 - mat.M4) * mult}
	case 1:
		return rl.Quaternion{X: val, W: (mat.M6 - mat.M9) * mult, Y: (mat.M1 + mat.M4) * mult, Z: (mat.M8 + mat.M2) * mult}
	case 2:
		return rl.Quaternion{Y: val, W: (mat.M8 - mat.M2) * mult, X: (mat.M1 + mat.M4) * mult, Z: (mat.M6 + mat.M9) * mult}
	default:
		return rl.Quaternion{Z: val, W: (mat.M1 - mat.M4) * mult, X: (mat.M8 + mat.M2) * mult, Y: (mat.M6 + mat.M9) * mult}
	}
}

// QuaternionToMatrix returns the rotation matrix of q.
func QuaternionToMatrix(q rl.Quaternion) rl.Matrix {
	a2, b2, c2 := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	ac, ab, bc := q.X*q.Z, q.X*q.Y, q.Y*q.Z
	ad, bd, cd := q.W*q.X, q.W*q.Y, q.W*q.Z

	m := MatrixIdentity()
	m.M0 = 1 - 2*(b2+c2)
	m.M1 = 2 * (ab + cd)
	m.M2 = 2 * (ac - bd)

	m.M4 = 2 * (ab - cd)
	m.M5 = 1 - 2*(a2+c2)
	m.M6 = 2 * (bc + ad)

	m.M8 = 2 * (ac + bd)
	m.M9 = 2 * (bc - ad)
	m.M10 = 1 - 2*(a2+b2)
	return m
}

// QuaternionFromAxisAngle returns the rotation of angle around axis. A zero
// axis gives the identity.
func QuaternionFromAxisAngle(axis rl.Vector3, angle float32) rl.Quaternion {
	if Vector3Length(axis) == 0 {
		return QuaternionIdentity()
	}
	angle *= 0.5
	axis = normalizeOrSelf(axis)
	s, c := sinf(angle), cosf(angle)
	return QuaternionNormalize(rl.Quaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c})
}

// QuaternionToAxisAngle returns the axis and angle of q. For a rotation
// close to zero the axis is +X.
func QuaternionToAxisAngle(q rl.Quaternion) (axis rl.Vector3, angle float32) {
	if absf(q.W) > 1 {
		q = QuaternionNormalize(q)
	}
	angle = 2 * acosf(q.W)
	den := sqrtf(1 - q.W*q.W)
	if den > Epsilon {
		return rl.Vector3{X: q.X / den, Y: q.Y / den, Z: q.Z / den}, angle
	}
	return rl.Vector3{X: 1}, angle
}

// QuaternionFromEuler builds a rotation from pitch (X), yaw (Y) and roll
// (Z) angles.
func QuaternionFromEuler(pitch, yaw, roll float32) rl.Quaternion {
	x0, x1 := cosf(pitch*0.5), sinf(pitch*0.5)
	y0, y1 := cosf(yaw*0.5), sinf(yaw*0.5)
	z0, z1 := cosf(roll*0.5), sinf(roll*0.5)

	return rl.Quaternion{
		X: x1*y0*z0 - x0*y1*z1,
		Y: x0*y1*z0 + x1*y0*z1,
		Z: x0*y0*z1 - x1*y1*z0,
		W: x0*y0*z0 + x1*y1*z1,
	}
}

// QuaternionToEuler returns the pitch, yaw and roll of q as X, Y and Z.
func QuaternionToEuler(q rl.Quaternion) rl.Vector3 {
	x0 := 2 * (q.W*q.X + q.Y*q.Z)
	x1 := 1 - 2*(q.X*q.X+q.Y*q.Y)

	y0 := Clamp(2*(q.W*q.Y-q.Z*q.X), -1, 1)

	z0 := 2 * (q.W*q.Z + q.X*q.Y)
	z1 := 1 - 2*(q.Y*q.Y+q.Z*q.Z)

	return rl.Vector3{X: atan2f(x0, x1), Y: asinf(y0), Z: atan2f(z0, z1)}
}

// QuaternionTransform multiplies q, taken as a column vector, by mat.
func QuaternionTransform(q rl.Quaternion, mat rl.Matrix) rl.Quaternion {
	return rl.Quaternion{
		X: mat.M0*q.X + mat.M4*q.Y + mat.M8*q.Z + mat.M12*q.W,
		Y: mat.M1*q.X + mat.M5*q.Y + mat.M9*q.Z + mat.M13*q.W,
		Z: mat.M2*q.X + mat.M6*q.Y + mat.M10*q.Z + mat.M14*q.W,
		W: mat.M3*q.X + mat.M7*q.Y + mat.M11*q.Z + mat.M15*q.W,
	}
}

// QuaternionEquals reports whether p and q are the same rotation; q and
// -q compare equal.
func QuaternionEquals(p, q rl.Quaternion) bool {
	return Vector4Equals(p, q) || Vector4Equals(p, Vector4Negate(q))
}
