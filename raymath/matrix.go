package raymath

import (
	"math"

	rl "github.com/gogpu/raylib"
)

// MatrixToFloatV returns the elements of mat in m0..m15 order, the layout
// OpenGL expects.
func MatrixToFloatV(mat rl.Matrix) [16]float32 {
	return [16]float32{
		mat.M0, mat.M1, mat.M2, mat.M3,
		mat.M4, mat.M5, mat.M6, mat.M7,
		mat.M8, mat.M9, mat.M10, mat.M11,
		mat.M12, mat.M13, mat.M14, mat.M15,
	}
}

// MatrixFromFloatV is the inverse of MatrixToFloatV.
func MatrixFromFloatV(m [16]float32) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// MatrixDeterminant returns the determinant of mat.
func MatrixDeterminant(mat rl.Matrix) float32 {
	a00, a01, a02, a03 := mat.M0, mat.M1, mat.M2, mat.M3
	a10, a11, a12, a13 := mat.M4, mat.M5, mat.M6, mat.M7
	a20, a21, a22, a23 := mat.M8, mat.M9, mat.M10, mat.M11
	a30, a31, a32, a33 := mat.M12, mat.M13, mat.M14, mat.M15

	return a30*a21*a12*a03 - a20*a31*a12*a03 - a30*a11*a22*a03 + a10*a31*a22*a03 +
		a20*a11*a32*a03 - a10*a21*a32*a03 - a30*a21*a02*a13 + a20*a31*a02*a13 +
		a30*a01*a22*a13 - a00*a31*a22*a13 - a20*a01*a32*a13 + a00*a21*a32*a13 +
		a30*a11*a02*a23 - a10*a31*a02*a23 - a30*a01*a12*a23 + a00*a31*a12*a23 +
		a10*a01*a32*a23 - a00*a11*a32*a23 - a20*a11*a02*a33 + a10*a21*a02*a33 +
		a20*a01*a12*a33 - a00*a21*a12*a33 - a10*a01*a22*a33 + a00*a11*a22*a33
}

// MatrixTrace returns the sum of the diagonal.
func MatrixTrace(mat rl.Matrix) float32 {
	return mat.M0 + mat.M5 + mat.M10 + mat.M15
}

func MatrixTranspose(mat rl.Matrix) rl.Matrix {
	m := MatrixToFloatV(mat)
	var r [16]float32
	for i := range 4 {
		for j := range 4 {
			r[4*i+j] = m[4*j+i]
		}
	}
	return MatrixFromFloatV(r)
}

// MatrixInvert returns the inverse of mat. A singular matrix yields
// infinities, as in C.
func MatrixInvert(mat rl.Matrix) rl.Matrix {
	a00, a01, a02, a03 := mat.M0, mat.M1, mat.M2, mat.M3
	a10, a11, a12, a13 := mat.M4, mat.M5, mat.M6, mat.M7
	a20, a21, a22, a23 := mat.M8, mat.M9, mat.M10, mat.M11
	a30, a31, a32, a33 := mat.M12, mat.M13, mat.M14, mat.M15

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	inv := 1 / (b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06)

	return rl.Matrix{
		M0:  (a11*b11 - a12*b10 + a13*b09) * inv,
		M1:  (-a01*b11 + a02*b10 - a03*b09) * inv,
		M2:  (a31*b05 - a32*b04 + a33*b03) * inv,
		M3:  (-a21*b05 + a22*b04 - a23*b03) * inv,
		M4:  (-a10*b11 + a12*b08 - a13*b07) * inv,
		M5:  (a00*b11 - a02*b08 + a03*b07) * inv,
		M6:  (-a30*b05 + a32*b02 - a33*b01) * inv,
		M7:  (a20*b05 - a22*b02 + a23*b01) * inv,
		M8:  (a10*b10 - a11*b08 + a13*b06) * inv,
		M9:  (-a00*b10 + a01*b08 - a03*b06) * inv,
		M10: (a30*b04 - a31*b02 + a33*b00) * inv,
		M11: (-a20*b04 + a21*b02 - a23*b00) * inv,
		M12: (-a10*b09 + a11*b07 - a12*b06) * inv,
		M13: (a00*b09 - a01*b07 + a02*b06) * inv,
		M14: (-a30*b03 + a31*b01 - a32*b00) * inv,
		M15: (a20*b03 - a21*b01 + a22*b00) * inv,
	}
}

// MatrixIdentity returns the identity matrix.
func MatrixIdentity() rl.Matrix {
	return rl.Matrix{M0: 1, M5: 1, M10: 1, M15: 1}
}

func MatrixAdd(left, right rl.Matrix) rl.Matrix {
	l, r := MatrixToFloatV(left), MatrixToFloatV(right)
	for i := range l {
		l[i] += r[i]
	}
	return MatrixFromFloatV(l)
}

func MatrixSubtract(left, right rl.Matrix) rl.Matrix {
	l, r := MatrixToFloatV(left), MatrixToFloatV(right)
	for i := range l {
		l[i] -= r[i]
	}
	return MatrixFromFloatV(l)
}

// MatrixMultiply returns left * right in raymath's convention: the result
// applies left first, then right.
func MatrixMultiply(left, right rl.Matrix) rl.Matrix {
	l, r := MatrixToFloatV(left), MatrixToFloatV(right)
	var out [16]float32
	for i := range 4 {
		for j := range 4 {
			out[4*i+j] = l[4*i]*r[j] + l[4*i+1]*r[4+j] + l[4*i+2]*r[8+j] + l[4*i+3]*r[12+j]
		}
	}
	return MatrixFromFloatV(out)
}

func MatrixTranslate(x, y, z float32) rl.Matrix {
	m := MatrixIdentity()
	m.M12, m.M13, m.M14 = x, y, z
	return m
}

// MatrixRotate returns a rotation of angle around axis.
func MatrixRotate(axis rl.Vector3, angle float32) rl.Matrix {
	x, y, z := axis.X, axis.Y, axis.Z
	if ls := x*x + y*y + z*z; ls != 1 && ls != 0 {
		il := 1 / sqrtf(ls)
		x, y, z = x*il, y*il, z*il
	}
	s, c := sinf(angle), cosf(angle)
	t := 1 - c

	return rl.Matrix{
		M0: x*x*t + c, M1: y*x*t + z*s, M2: z*x*t - y*s,
		M4: x*y*t - z*s, M5: y*y*t + c, M6: z*y*t + x*s,
		M8: x*z*t + y*s, M9: y*z*t - x*s, M10: z*z*t + c,
		M15: 1,
	}
}

func MatrixRotateX(angle float32) rl.Matrix {
	m := MatrixIdentity()
	c, s := cosf(angle), sinf(angle)
	m.M5, m.M6, m.M9, m.M10 = c, s, -s, c
	return m
}

func MatrixRotateY(angle float32) rl.Matrix {
	m := MatrixIdentity()
	c, s := cosf(angle), sinf(angle)
	m.M0, m.M2, m.M8, m.M10 = c, -s, s, c
	return m
}

func MatrixRotateZ(angle float32) rl.Matrix {
	m := MatrixIdentity()
	c, s := cosf(angle), sinf(angle)
	m.M0, m.M1, m.M4, m.M5 = c, s, -s, c
	return m
}

// MatrixRotateXYZ returns the rotation by angle.X, then angle.Y, then
// angle.Z.
func MatrixRotateXYZ(angle rl.Vector3) rl.Matrix {
	cz, sz := cosf(-angle.Z), sinf(-angle.Z)
	cy, sy := cosf(-angle.Y), sinf(-angle.Y)
	cx, sx := cosf(-angle.X), sinf(-angle.X)

	m := MatrixIdentity()
	m.M0 = cz * cy
	m.M1 = cz*sy*sx - sz*cx
	m.M2 = cz*sy*cx + sz*sx
	m.M4 = sz * cy
	m.M5 = sz*sy*sx + cz*cx
	m.M6 = sz*sy*cx - cz*sx
	m.M8 = -sy
	m.M9 = cy * sx
	m.M10 = cy * cx
	return m
}

// MatrixRotateZYX returns the rotation by angle.Z, then angle.Y, then
// angle.X.
func MatrixRotateZYX(angle rl.Vector3) rl.Matrix {
	cz, sz := cosf(angle.Z), sinf(angle.Z)
	cy, sy := cosf(angle.Y), sinf(angle.Y)
	cx, sx := cosf(angle.X), sinf(angle.X)

	return rl.Matrix{
		M0: cz * cy, M4: cz*sy*sx - cx*sz, M8: sz*sx + cz*cx*sy,
		M1: cy * sz, M5: cz*cx + sz*sy*sx, M9: cx*sz*sy - cz*sx,
		M2: -sy, M6: cy * sx, M10: cy * cx,
		M15: 1,
	}
}

func MatrixScale(x, y, z float32) rl.Matrix {
	return rl.Matrix{M0: x, M5: y, M10: z, M15: 1}
}

// MatrixFrustum returns a perspective projection for the given frustum.
func MatrixFrustum(left, right, bottom, top, nearPlane, farPlane float64) rl.Matrix {
	rlw := float32(right - left)
	tb := float32(top - bottom)
	fn := float32(farPlane - nearPlane)
	n := float32(nearPlane)

	return rl.Matrix{
		M0:  n * 2 / rlw,
		M5:  n * 2 / tb,
		M8:  float32(right+left) / rlw,
		M9:  float32(top+bottom) / tb,
		M10: -float32(farPlane+nearPlane) / fn,
		M11: -1,
		M14: -float32(farPlane*nearPlane*2) / fn,
	}
}

// MatrixPerspective returns a perspective projection. fovY is in radians.
func MatrixPerspective(fovY, aspect, nearPlane, farPlane float64) rl.Matrix {
	top := nearPlane * math.Tan(fovY*0.5)
	right := top * aspect
	return MatrixFrustum(-right, right, -top, top, nearPlane, farPlane)
}

// MatrixOrtho returns an orthographic projection.
func MatrixOrtho(left, right, bottom, top, nearPlane, farPlane float64) rl.Matrix {
	rlw := float32(right - left)
	tb := float32(top - bottom)
	fn := float32(farPlane - nearPlane)

	return rl.Matrix{
		M0:  2 / rlw,
		M5:  2 / tb,
		M10: -2 / fn,
		M12: -float32(left+right) / rlw,
		M13: -float32(top+bottom) / tb,
		M14: -float32(farPlane+nearPlane) / fn,
		M15: 1,
	}
}

// MatrixLookAt returns a view matrix looking from eye at target.
func MatrixLookAt(eye, target, up rl.Vector3) rl.Matrix {
	vz := normalizeOrSelf(Vector3Subtract(eye, target))
	vx := normalizeOrSelf(Vector3CrossProduct(up, vz))
	vy := Vector3CrossProduct(vz, vx)

	return rl.Matrix{
		M0: vx.X, M1: vy.X, M2: vz.X,
		M4: vx.Y, M5: vy.Y, M6: vz.Y,
		M8: vx.Z, M9: vy.Z, M10: vz.Z,
		M12: -Vector3DotProduct(vx, eye),
		M13: -Vector3DotProduct(vy, eye),
		M14: -Vector3DotProduct(vz, eye),
		M15: 1,
	}
}
