package entity

import "math"

// Vec3 is a world-space position.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Quat is a rotation quaternion.
type Quat struct {
	W, X, Y, Z float64
}

// IdentityQuat is the no-rotation quaternion.
var IdentityQuat = Quat{W: 1}

// AxisZ is the world up axis.
var AxisZ = Vec3{Z: 1}

// QuatFromAxisAngle builds a rotation of degrees around a unit axis.
func QuatFromAxisAngle(axis Vec3, degrees float64) Quat {
	half := degrees * math.Pi / 360
	s := math.Sin(half)
	return Quat{W: math.Cos(half), X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s}
}
