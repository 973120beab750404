package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Clamp32 clamps the given value to the given range.
func Clamp32(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Lerp32 linearly interpolates between a and b by t.
func Lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates between two vectors by t.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Sign32 returns -1, 0, or 1 depending on the sign of v.
func Sign32(v float32) float32 {
	if v < 0 {
		return -1
	} else if v > 0 {
		return 1
	}
	return 0
}

// Float32ApproxEq determines whether two floating point numbers are close enough
// to each other by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// SafeNormalize normalizes the given vector, returning the zero vector
// unchanged instead of producing NaN components.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	lenSqr := v.LenSqr()
	if lenSqr < 1e-12 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / math32.Sqrt(lenSqr))
}

// ClampMagnitude returns v shortened to the given maximum length. Vectors
// already within the limit are returned unchanged.
func ClampMagnitude(v mgl32.Vec3, max float32) mgl32.Vec3 {
	lenSqr := v.LenSqr()
	if lenSqr <= max*max {
		return v
	}
	return v.Mul(max / math32.Sqrt(lenSqr))
}

// MoveTowardVec3 moves v toward target by at most step, never overshooting.
func MoveTowardVec3(v, target mgl32.Vec3, step float32) mgl32.Vec3 {
	delta := target.Sub(v)
	distSqr := delta.LenSqr()
	if distSqr <= step*step {
		return target
	}
	return v.Add(delta.Mul(step / math32.Sqrt(distSqr)))
}

// OrientationFromBasis builds an orientation quaternion from an orthonormal
// right/up/forward basis.
func OrientationFromBasis(right, up, forward mgl32.Vec3) mgl32.Quat {
	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, up, forward).Mat4()).Normalize()
}

// QuatAngle returns the angular difference between two unit quaternions in
// radians.
func QuatAngle(a, b mgl32.Quat) float32 {
	d := math32.Abs(a.Dot(b))
	if d > 1 {
		d = 1
	}
	return 2 * math32.Acos(d)
}
