package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/geomkit/pkg/kernel"
	"github.com/chazu/geomkit/pkg/kernel/gonum"
	"github.com/chazu/geomkit/pkg/kernel/mgl"
	"github.com/chazu/geomkit/pkg/kernel/sdfx"
	"github.com/chazu/geomkit/pkg/vecmath"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Precision selects the scalar type queries are computed in.
type Precision int

const (
	Float64 Precision = iota
	Float32
)

func (p Precision) String() string {
	switch p {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Precision) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePrecision accepts "float32"/"single"/"32" and "float64"/"double"/"64".
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float32", "single", "32":
		return Float32, nil
	case "float64", "double", "64", "":
		return Float64, nil
	}
	return Float64, fmt.Errorf("unknown precision %q, expected float32 or float64", s)
}

// Backends lists the vector backends available at each precision.
func Backends(p Precision) []string {
	if p == Float32 {
		return []string{kernel.NativeName, mgl.Name}
	}
	return []string{kernel.NativeName, sdfx.Name, gonum.Name, mgl.Name}
}

// newRunner returns the query runner for a precision and backend name.
func newRunner(p Precision, backend string) (queryRunner, error) {
	if backend == "" {
		backend = kernel.NativeName
	}
	switch p {
	case Float32:
		switch backend {
		case kernel.NativeName:
			return runner[float32, vecmath.Vec3[float32]]{k: kernel.New[float32, vecmath.Vec3[float32]](kernel.Native[float32]{})}, nil
		case mgl.Name:
			return runner[float32, mgl32.Vec3]{k: mgl.New32()}, nil
		}
	case Float64:
		switch backend {
		case kernel.NativeName:
			return runner[float64, vecmath.Vec3[float64]]{k: kernel.New[float64, vecmath.Vec3[float64]](kernel.Native[float64]{})}, nil
		case sdfx.Name:
			return runner[float64, v3.Vec]{k: sdfx.New()}, nil
		case gonum.Name:
			return runner[float64, r3.Vec]{k: gonum.New()}, nil
		case mgl.Name:
			return runner[float64, mgl64.Vec3]{k: mgl.New64()}, nil
		}
	default:
		return nil, fmt.Errorf("unknown precision %s", p)
	}
	return nil, fmt.Errorf("backend %q is not available at %s (have %s)", backend, p, strings.Join(Backends(p), ", "))
}
