// Package mgl implements kernel.Backend for go-gl/mathgl vectors, with
// mgl32 at single precision and mgl64 at double precision.
package mgl

import (
	"github.com/chazu/geomkit/pkg/kernel"
	"github.com/chazu/geomkit/pkg/vecmath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	_ kernel.Backend[float32, mgl32.Vec3] = Backend32{}
	_ kernel.Backend[float64, mgl64.Vec3] = Backend64{}
)

// Name is the backend name used in configuration.
const Name = "mgl"

// Backend32 converts between mgl32.Vec3 and vecmath.Vec3[float32].
type Backend32 struct{}

func (Backend32) Name() string { return Name }

func (Backend32) FromVec(v mgl32.Vec3) vecmath.Vec3[float32] {
	return vecmath.Vec3[float32]{X: v[0], Y: v[1], Z: v[2]}
}

func (Backend32) ToVec(v vecmath.Vec3[float32]) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Backend64 converts between mgl64.Vec3 and vecmath.Vec3[float64].
type Backend64 struct{}

func (Backend64) Name() string { return Name }

func (Backend64) FromVec(v mgl64.Vec3) vecmath.Vec3[float64] {
	return vecmath.Vec3[float64]{X: v[0], Y: v[1], Z: v[2]}
}

func (Backend64) ToVec(v vecmath.Vec3[float64]) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// New32 returns a single precision kernel over mgl32 vectors.
func New32() *kernel.Kernel[float32, mgl32.Vec3] {
	return kernel.New[float32, mgl32.Vec3](Backend32{})
}

// New64 returns a double precision kernel over mgl64 vectors.
func New64() *kernel.Kernel[float64, mgl64.Vec3] {
	return kernel.New[float64, mgl64.Vec3](Backend64{})
}
