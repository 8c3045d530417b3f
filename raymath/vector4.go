package raymath

import rl "github.com/gogpu/raylib"

func Vector4Zero() rl.Vector4 { return rl.Vector4{} }

func Vector4One() rl.Vector4 { return rl.Vector4{X: 1, Y: 1, Z: 1, W: 1} }

func Vector4Add(v1, v2 rl.Vector4) rl.Vector4 {
	return rl.Vector4{X: v1.X + v2.X, Y: v1.Y + v2.Y, Z: v1.Z + v2.Z, W: v1.W + v2.W}
}

func Vector4AddValue(v rl.Vector4, add float32) rl.Vector4 {
	return rl.Vector4{X: v.X + add, Y: v.Y + add, Z: v.Z + add, W: v.W + add}
}

func Vector4Subtract(v1, v2 rl.Vector4) rl.Vector4 {
	return rl.Vector4{X: v1.X - v2.X, Y: v1.Y - v2.Y, Z: v1.Z - v2.Z, W: v1.W - v2.W}
}

func Vector4SubtractValue(v rl.Vector4, sub float32) rl.Vector4 {
	return rl.Vector4{X: v.X - sub, Y: v.Y - sub, Z: v.Z - sub, W: v.W - sub}
}

func Vector4Scale(v rl.Vector4, scale float32) rl.Vector4 {
	return rl.Vector4{X: v.X * scale, Y: v.Y * scale, Z: v.Z * scale, W: v.W * scale}
}

func Vector4Multiply(v1, v2 rl.Vector4) rl.Vector4 {
	return rl.Vector4{X: v1.X * v2.X, Y: v1.Y * v2.Y, Z: v1.Z * v2.Z, W: v1.W * v2.W}
}

func Vector4Divide(v1, v2 rl.Vector4) rl.Vector4 {
	return rl.Vector4{X: v1.X / v2.X, Y: v1.Y / v2.Y, Z: v1.Z / v2.Z, W: v1.W / v2.W}
}

func Vector4Negate(v rl.Vector4) rl.Vector4 {
	return rl.Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

func Vector4Length(v rl.Vector4) float32 { return sqrtf(Vector4LengthSqr(v)) }

func Vector4LengthSqr(v rl.Vector4) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func Vector4DotProduct(v1, v2 rl.Vector4) float32 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z + v1.W*v2.W
}

func Vector4Distance(v1, v2 rl.Vector4) float32 {
	return sqrtf(Vector4DistanceSqr(v1, v2))
}

func Vector4DistanceSqr(v1, v2 rl.Vector4) float32 {
	return Vector4LengthSqr(Vector4Subtract(v1, v2))
}

// Vector4Normalize returns v scaled to unit length. A zero vector stays
// zero.
func Vector4Normalize(v rl.Vector4) rl.Vector4 {
	length := Vector4Length(v)
	if length > 0 {
		return Vector4Scale(v, 1/length)
	}
	return rl.Vector4{}
}

func Vector4Min(v1, v2 rl.Vector4) rl.Vector4 {
	return rl.Vector4{X: minf(v1.X, v2.X), Y: minf(v1.Y, v2.Y), Z: minf(v1.Z, v2.Z), W: minf(v1.W, v2.W)}
}

func Vector4Max(v1, v2 rl.Vector4) rl.Vector4 {
	return rl.Vector4{X: maxf(v1.X, v2.X), Y: maxf(v1.Y, v2.Y), Z: maxf(v1.Z, v2.Z), W: maxf(v1.W, v2.W)}
}

func Vector4Lerp(v1, v2 rl.Vector4, amount float32) rl.Vector4 {
	return rl.Vector4{
		X: v1.X + amount*(v2.X-v1.X),
		Y: v1.Y + amount*(v2.Y-v1.Y),
		Z: v1.Z + amount*(v2.Z-v1.Z),
		W: v1.W + amount*(v2.W-v1.W),
	}
}

// Vector4MoveTowards moves v towards target by at most maxDistance.
func Vector4MoveTowards(v, target rl.Vector4, maxDistance float32) rl.Vector4 {
	d := Vector4Subtract(target, v)
	value := Vector4LengthSqr(d)
	if value == 0 || (maxDistance >= 0 && value <= maxDistance*maxDistance) {
		return target
	}
	return Vector4Add(v, Vector4Scale(d, maxDistance/sqrtf(value)))
}

func Vector4Invert(v rl.Vector4) rl.Vector4 {
	return rl.Vector4{X: 1 / v.X, Y: 1 / v.Y, Z: 1 / v.Z, W: 1 / v.W}
}

func Vector4Equals(p, q rl.Vector4) bool {
	return FloatEquals(p.X, q.X) && FloatEquals(p.Y, q.Y) &&
		FloatEquals(p.Z, q.Z) && FloatEquals(p.W, q.W)
}
