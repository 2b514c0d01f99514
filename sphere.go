package globe

import "math"

// Vec3 represents a 3D point or vector in sphere space.
// Sphere space is right-handed with +Y up.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns the vector scaled by a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the distance between two points.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself; no NaN is produced.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Quaternion represents a rotation in sphere space.
// The identity rotation is (0, 0, 0, 1).
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion returns the identity rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// Mul returns the composed rotation q then p (p * q in quaternion algebra).
func (p Quaternion) Mul(q Quaternion) Quaternion {
	return Quaternion{
		X: p.W*q.X + p.X*q.W + p.Y*q.Z - p.Z*q.Y,
		Y: p.W*q.Y - p.X*q.Z + p.Y*q.W + p.Z*q.X,
		Z: p.W*q.Z + p.X*q.Y - p.Y*q.X + p.Z*q.W,
		W: p.W*q.W - p.X*q.X - p.Y*q.Y - p.Z*q.Z,
	}
}

// Invert returns the inverse rotation. For the unit quaternions produced
// by this package the inverse is the conjugate.
func (p Quaternion) Invert() Quaternion {
	return Quaternion{X: -p.X, Y: -p.Y, Z: -p.Z, W: p.W}
}

// Normalize returns a unit quaternion. A zero quaternion normalizes to
// the identity.
func (p Quaternion) Normalize() Quaternion {
	length := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z + p.W*p.W)
	if length == 0 {
		return IdentityQuaternion()
	}
	return Quaternion{X: p.X / length, Y: p.Y / length, Z: p.Z / length, W: p.W / length}
}

// Rotate applies the rotation to a vector.
func (p Quaternion) Rotate(v Vec3) Vec3 {
	// v' = v + 2q × (q × v + w·v) with q the vector part.
	qv := Vec3{X: p.X, Y: p.Y, Z: p.Z}
	t := qv.Cross(v).Scale(2)
	return v.Add(t.Scale(p.W)).Add(qv.Cross(t))
}

// QuaternionFromBasis builds the rotation whose columns are the given
// orthonormal basis vectors: the rotation maps the unit X, Y and Z axes
// onto x, y and z respectively. The basis must be right-handed.
func QuaternionFromBasis(x, y, z Vec3) Quaternion {
	m00, m01, m02 := x.X, y.X, z.X
	m10, m11, m12 := x.Y, y.Y, z.Y
	m20, m21, m22 := x.Z, y.Z, z.Z

	trace := m00 + m11 + m22
	var q Quaternion
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = Quaternion{
			X: (m21 - m12) * s,
			Y: (m02 - m20) * s,
			Z: (m10 - m01) * s,
			W: 0.25 / s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = Quaternion{
			X: 0.25 * s,
			Y: (m01 + m10) / s,
			Z: (m02 + m20) / s,
			W: (m21 - m12) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = Quaternion{
			X: (m01 + m10) / s,
			Y: 0.25 * s,
			Z: (m12 + m21) / s,
			W: (m02 - m20) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = Quaternion{
			X: (m02 + m20) / s,
			Y: (m12 + m21) / s,
			Z: 0.25 * s,
			W: (m10 - m01) / s,
		}
	}
	return q.Normalize()
}
