package vecmath

import "fmt"

// Vec2 is a two component vector.
type Vec2[T Float] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// Vec3 is a three component vector.
type Vec3[T Float] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
}

// Vec4 is a four component vector. Planes use it as (nx, ny, nz, offset).
type Vec4[T Float] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
	W T `json:"w"`
}

// V2 builds a Vec2.
func V2[T Float](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

// V3 builds a Vec3.
func V3[T Float](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

// V4 builds a Vec4.
func V4[T Float](x, y, z, w T) Vec4[T] { return Vec4[T]{X: x, Y: y, Z: z, W: w} }

// ----------------------------------------------------------------------------
// Vec3

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3[T]) Scale(s T) Vec3[T]     { return Vec3[T]{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3[T]) Neg() Vec3[T]          { return Vec3[T]{-a.X, -a.Y, -a.Z} }
func (a Vec3[T]) Dot(b Vec3[T]) T       { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Mul is the component-wise product.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }

// Cross returns a x b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// LengthSquared returns the squared Euclidean magnitude.
func (a Vec3[T]) LengthSquared() T { return a.Dot(a) }

// Length returns the Euclidean magnitude.
func (a Vec3[T]) Length() T { return Sqrt(a.Dot(a)) }

// Normalize returns a unit vector in the direction of a. The zero vector is
// returned unchanged.
func (a Vec3[T]) Normalize() Vec3[T] {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// Lerp interpolates from a to b by t.
func (a Vec3[T]) Lerp(b Vec3[T], t T) Vec3[T] {
	return a.Add(b.Sub(a).Scale(t))
}

// Distance returns |a - b|.
func (a Vec3[T]) Distance(b Vec3[T]) T { return a.Sub(b).Length() }

// Array returns the components as an array.
func (a Vec3[T]) Array() [3]T { return [3]T{a.X, a.Y, a.Z} }

func (a Vec3[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", float64(a.X), float64(a.Y), float64(a.Z))
}

// ----------------------------------------------------------------------------
// Vec2

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X + b.X, a.Y + b.Y} }
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X - b.X, a.Y - b.Y} }
func (a Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{a.X * s, a.Y * s} }
func (a Vec2[T]) Dot(b Vec2[T]) T       { return a.X*b.X + a.Y*b.Y }

// Cross returns the z component of the 3D cross product of a and b.
func (a Vec2[T]) Cross(b Vec2[T]) T { return a.X*b.Y - a.Y*b.X }

// Length returns the Euclidean magnitude.
func (a Vec2[T]) Length() T { return Sqrt(a.Dot(a)) }

func (a Vec2[T]) String() string {
	return fmt.Sprintf("(%g, %g)", float64(a.X), float64(a.Y))
}

// ----------------------------------------------------------------------------
// Vec4

// XYZ drops the fourth component.
func (a Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{a.X, a.Y, a.Z} }

func (a Vec4[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", float64(a.X), float64(a.Y), float64(a.Z), float64(a.W))
}

// ----------------------------------------------------------------------------
// Conversion

// Convert3 changes the scalar type of a Vec3.
func Convert3[U, T Float](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v.X), U(v.Y), U(v.Z)}
}

// Convert2 changes the scalar type of a Vec2.
func Convert2[U, T Float](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v.X), U(v.Y)}
}
