package kernel

import "github.com/chazu/geomkit/pkg/vecmath"

var (
	_ Backend[float32, vecmath.Vec3[float32]] = Native[float32]{}
	_ Backend[float64, vecmath.Vec3[float64]] = Native[float64]{}
)

// NativeName is the name of the Native backend.
const NativeName = "native"

// Native is the identity backend over vecmath.Vec3.
type Native[T vecmath.Float] struct{}

func (Native[T]) Name() string                               { return NativeName }
func (Native[T]) FromVec(v vecmath.Vec3[T]) vecmath.Vec3[T] { return v }
func (Native[T]) ToVec(v vecmath.Vec3[T]) vecmath.Vec3[T]   { return v }
