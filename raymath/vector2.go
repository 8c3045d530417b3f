package raymath

import rl "github.com/gogpu/raylib"

// Vector2Zero returns (0, 0).
func Vector2Zero() rl.Vector2 { return rl.Vector2{} }

// Vector2One returns (1, 1).
func Vector2One() rl.Vector2 { return rl.Vector2{X: 1, Y: 1} }

// Vector2Add adds two vectors.
func Vector2Add(v1, v2 rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: v1.X + v2.X, Y: v1.Y + v2.Y}
}

// Vector2AddValue adds add to both components.
func Vector2AddValue(v rl.Vector2, add float32) rl.Vector2 {
	return rl.Vector2{X: v.X + add, Y: v.Y + add}
}

// Vector2Subtract subtracts v2 from v1.
func Vector2Subtract(v1, v2 rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: v1.X - v2.X, Y: v1.Y - v2.Y}
}

// Vector2SubtractValue subtracts sub from both components.
func Vector2SubtractValue(v rl.Vector2, sub float32) rl.Vector2 {
	return rl.Vector2{X: v.X - sub, Y: v.Y - sub}
}

func Vector2Length(v rl.Vector2) float32 { return sqrtf(v.X*v.X + v.Y*v.Y) }

func Vector2LengthSqr(v rl.Vector2) float32 { return v.X*v.X + v.Y*v.Y }

func Vector2DotProduct(v1, v2 rl.Vector2) float32 { return v1.X*v2.X + v1.Y*v2.Y }

func Vector2Distance(v1, v2 rl.Vector2) float32 {
	return sqrtf((v1.X-v2.X)*(v1.X-v2.X) + (v1.Y-v2.Y)*(v1.Y-v2.Y))
}

func Vector2DistanceSqr(v1, v2 rl.Vector2) float32 {
	return (v1.X-v2.X)*(v1.X-v2.X) + (v1.Y-v2.Y)*(v1.Y-v2.Y)
}

// Vector2Angle returns the signed angle from v1 to v2.
func Vector2Angle(v1, v2 rl.Vector2) float32 {
	dot := v1.X*v2.X + v1.Y*v2.Y
	det := v1.X*v2.Y - v1.Y*v2.X
	return atan2f(det, dot)
}

// Vector2LineAngle returns the angle of the line from start to end, with Y
// pointing down.
func Vector2LineAngle(start, end rl.Vector2) float32 {
	return -atan2f(end.Y-start.Y, end.X-start.X)
}

func Vector2Scale(v rl.Vector2, scale float32) rl.Vector2 {
	return rl.Vector2{X: v.X * scale, Y: v.Y * scale}
}

func Vector2Multiply(v1, v2 rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: v1.X * v2.X, Y: v1.Y * v2.Y}
}

func Vector2Negate(v rl.Vector2) rl.Vector2 { return rl.Vector2{X: -v.X, Y: -v.Y} }

func Vector2Divide(v1, v2 rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: v1.X / v2.X, Y: v1.Y / v2.Y}
}

// Vector2Normalize returns v scaled to unit length. A zero vector stays
// zero.
func Vector2Normalize(v rl.Vector2) rl.Vector2 {
	length := sqrtf(v.X*v.X + v.Y*v.Y)
	if length > 0 {
		il := 1 / length
		return rl.Vector2{X: v.X * il, Y: v.Y * il}
	}
	return rl.Vector2{}
}

// Vector2Transform applies mat to v as a point with z = 0.
func Vector2Transform(v rl.Vector2, mat rl.Matrix) rl.Vector2 {
	return rl.Vector2{
		X: mat.M0*v.X + mat.M4*v.Y + mat.M12,
		Y: mat.M1*v.X + mat.M5*v.Y + mat.M13,
	}
}

func Vector2Lerp(v1, v2 rl.Vector2, amount float32) rl.Vector2 {
	return rl.Vector2{X: v1.X + amount*(v2.X-v1.X), Y: v1.Y + amount*(v2.Y-v1.Y)}
}

// Vector2Reflect reflects v off a surface with the given normal.
func Vector2Reflect(v, normal rl.Vector2) rl.Vector2 {
	dot := v.X*normal.X + v.Y*normal.Y
	return rl.Vector2{X: v.X - 2*normal.X*dot, Y: v.Y - 2*normal.Y*dot}
}

// Vector2Rotate rotates v counter-clockwise by angle.
func Vector2Rotate(v rl.Vector2, angle float32) rl.Vector2 {
	c, s := cosf(angle), sinf(angle)
	return rl.Vector2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Vector2MoveTowards moves v towards target by at most maxDistance.
func Vector2MoveTowards(v, target rl.Vector2, maxDistance float32) rl.Vector2 {
	dx, dy := target.X-v.X, target.Y-v.Y
	value := dx*dx + dy*dy
	if value == 0 || (maxDistance >= 0 && value <= maxDistance*maxDistance) {
		return target
	}
	dist := sqrtf(value)
	return rl.Vector2{X: v.X + dx/dist*maxDistance, Y: v.Y + dy/dist*maxDistance}
}

func Vector2Invert(v rl.Vector2) rl.Vector2 { return rl.Vector2{X: 1 / v.X, Y: 1 / v.Y} }

// Vector2Clamp clamps each component of v to [min, max].
func Vector2Clamp(v, min, max rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: minf(max.X, maxf(min.X, v.X)), Y: minf(max.Y, maxf(min.Y, v.Y))}
}

// Vector2ClampValue clamps the length of v to [min, max].
func Vector2ClampValue(v rl.Vector2, min, max float32) rl.Vector2 {
	length := v.X*v.X + v.Y*v.Y
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
	return rl.Vector2{X: v.X * scale, Y: v.Y * scale}
}

func Vector2Equals(p, q rl.Vector2) bool {
	return FloatEquals(p.X, q.X) && FloatEquals(p.Y, q.Y)
}
