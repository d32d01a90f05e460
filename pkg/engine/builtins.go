package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource rewrites geomkit script source into something zygomys
// accepts. It performs three transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: closest-point-line -> closest_point_line
//     zygomys reads a hyphen inside an identifier as subtraction, so
//     kebab-case identifiers are rewritten outside of strings and comments.
//
//  3. Line comments: ; and ;; become //.
//
// String literals are copied through untouched.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}


// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a scene coordinate.
type sexpVec3 struct {
	vec scene.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpNodeRef is what primitive constructors return. Queries resolve it
// against the scene to get the primitive's payload.
type sexpNodeRef struct {
	id   scene.NodeID
	kind scene.NodeKind
	name string
}

func (n *sexpNodeRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s %q)", n.kind, n.name)
}
func (n *sexpNodeRef) Type() *zygo.RegisteredType { return nil }

// sexpResult wraps a query result so scripts can inspect it.
type sexpResult struct {
	res Result
}

func (r *sexpResult) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(result %s %s)", r.res.Query, r.res.Code)
}
func (r *sexpResult) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 accepts a vec3 or a reference to a point primitive. The second
// return value labels the argument in query results.
func (ss *session) toVec3(s zygo.Sexp) (scene.Vec3, string, error) {
	switch v := s.(type) {
	case *sexpVec3:
		return v.vec, v.vec.String(), nil
	case *sexpNodeRef:
		p, err := resolve[scene.PointData](ss.scene, v)
		if err != nil {
			return scene.Vec3{}, "", err
		}
		return p.Position, v.name, nil
	}
	return scene.Vec3{}, "", fmt.Errorf("expected vec3 or point, got %T (%s)", s, s.SexpString(nil))
}

// toNodeRef extracts a primitive reference, checking its kind.
func toNodeRef(s zygo.Sexp, kind scene.NodeKind) (*sexpNodeRef, error) {
	ref, ok := s.(*sexpNodeRef)
	if !ok {
		return nil, fmt.Errorf("expected %s, got %T (%s)", kind, s, s.SexpString(nil))
	}
	if ref.kind != kind {
		return nil, fmt.Errorf("expected %s, got %s %q", kind, ref.kind, ref.name)
	}
	return ref, nil
}

// resolve looks up the payload behind ref.
func resolve[D scene.NodeData](sc *scene.Scene, ref *sexpNodeRef) (D, error) {
	var zero D
	n := sc.Get(ref.id)
	if n == nil {
		return zero, fmt.Errorf("no primitive named %q", ref.name)
	}
	d, ok := n.Data.(D)
	if !ok {
		return zero, fmt.Errorf("%q is a %s, expected %s", ref.name, n.Kind, zero.Kind())
	}
	return d, nil
}

// primArg resolves a positional argument that must reference a primitive
// of the payload's kind.
func primArg[D scene.NodeData](ss *session, s zygo.Sexp) (D, string, error) {
	var zero D
	ref, err := toNodeRef(s, zero.Kind())
	if err != nil {
		return zero, "", err
	}
	d, err := resolve[D](ss.scene, ref)
	return d, ref.name, err
}

// ---------------------------------------------------------------------------
// Evaluation session
// ---------------------------------------------------------------------------

// session is the state builtins share during one evaluation.
type session struct {
	scene  *scene.Scene
	run    queryRunner
	report *Report
}

func newSession(run queryRunner, p Precision) *session {
	sc := scene.New()
	return &session{
		scene: sc,
		run:   run,
		report: &Report{
			Precision: p,
			Backend:   run.backend(),
			Scene:     sc,
			Results:   []Result{},
		},
	}
}

// add stores a primitive and returns a reference to it.
func (ss *session) add(fn, name string, data scene.NodeData) (zygo.Sexp, error) {
	n, err := ss.scene.Add(name, data)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
	}
	return &sexpNodeRef{id: n.ID, kind: n.Kind, name: n.Name}, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the primitive constructors and the query
// functions into a zygomys environment.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, ss *session) {
	registerPrimitives(env, ss)
	registerQueries(env, ss)
}

func registerPrimitives(env *zygo.Zlisp, ss *session) {

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var c [3]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %c: %w", "xyz"[i], err)
			}
			c[i] = f
		}
		return &sexpVec3{vec: scene.Vec3{X: c[0], Y: c[1], Z: c[2]}}, nil
	})

	// -----------------------------------------------------------------------
	// (point "p" (vec3 1 2 3))
	// -----------------------------------------------------------------------
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("point requires a name and a position")
		}
		pname, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: name: %w", err)
		}
		pos, _, err := ss.toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: position: %w", err)
		}
		return ss.add("point", pname, scene.PointData{Position: pos})
	})

	// -----------------------------------------------------------------------
	// (line "l" :origin (vec3 0 0 0) :direction (vec3 1 0 0))
	// (line "l" :origin (vec3 0 0 0) :through (vec3 5 5 0))
	// -----------------------------------------------------------------------
	env.AddFunction("line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("line requires a name")
		}
		lname, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("line: name: %w", err)
		}

		ld := scene.LineData{}
		v, ok := pa.kw["origin"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("line: :origin is required")
		}
		if ld.Origin, _, err = ss.toVec3(v); err != nil {
			return zygo.SexpNull, fmt.Errorf("line: origin: %w", err)
		}

		dir, hasDir := pa.kw["direction"]
		through, hasThrough := pa.kw["through"]
		switch {
		case hasDir && hasThrough:
			return zygo.SexpNull, fmt.Errorf("line: :direction and :through are exclusive")
		case hasDir:
			if ld.Direction, _, err = ss.toVec3(dir); err != nil {
				return zygo.SexpNull, fmt.Errorf("line: direction: %w", err)
			}
		case hasThrough:
			p, _, err := ss.toVec3(through)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("line: through: %w", err)
			}
			ld.Direction = p.Sub(ld.Origin).Normalize()
		default:
			return zygo.SexpNull, fmt.Errorf("line: one of :direction or :through is required")
		}
		return ss.add("line", lname, ld)
	})

	// -----------------------------------------------------------------------
	// (segment "s" (vec3 0 0 0) (vec3 1 0 0))
	// -----------------------------------------------------------------------
	env.AddFunction("segment", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("segment requires a name and two end points")
		}
		sname, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("segment: name: %w", err)
		}
		pts, err := ss.points("segment", args[1:])
		if err != nil {
			return zygo.SexpNull, err
		}
		return ss.add("segment", sname, scene.SegmentData{Start: pts[0], End: pts[1]})
	})

	// -----------------------------------------------------------------------
	// (triangle "t" (vec3 0 0 0) (vec3 1 0 0) (vec3 0 1 0))
	// -----------------------------------------------------------------------
	env.AddFunction("triangle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("triangle requires a name and three vertices")
		}
		tname, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("triangle: name: %w", err)
		}
		pts, err := ss.points("triangle", args[1:])
		if err != nil {
			return zygo.SexpNull, err
		}
		return ss.add("triangle", tname, scene.TriangleData{V0: pts[0], V1: pts[1], V2: pts[2]})
	})

	// -----------------------------------------------------------------------
	// (plane "p" (vec3 0 0 0) (vec3 1 0 0) (vec3 0 1 0))
	// (plane "p" :point (vec3 0 0 1) :normal (vec3 0 0 1))
	// -----------------------------------------------------------------------
	env.AddFunction("plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("plane requires a name")
		}
		pname, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: name: %w", err)
		}

		if len(pa.positional) == 4 {
			pts, err := ss.points("plane", pa.positional[1:])
			if err != nil {
				return zygo.SexpNull, err
			}
			pd, code := ss.run.createPlane(pts[0], pts[1], pts[2])
			if code != geom.Success {
				return zygo.SexpNull, fmt.Errorf("plane: %q: points are coincident or collinear", pname)
			}
			return ss.add("plane", pname, pd)
		}

		pv, okP := pa.kw["point"]
		nv, okN := pa.kw["normal"]
		if len(pa.positional) != 1 || !okP || !okN {
			return zygo.SexpNull, fmt.Errorf("plane requires three points or :point and :normal")
		}
		point, _, err := ss.toVec3(pv)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: point: %w", err)
		}
		normal, _, err := ss.toVec3(nv)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: normal: %w", err)
		}
		return ss.add("plane", pname, scene.PlaneData{Normal: normal, Offset: -point.Dot(normal)})
	})

	// -----------------------------------------------------------------------
	// (prim "name")
	// -----------------------------------------------------------------------
	env.AddFunction("prim", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("prim requires a name argument")
		}
		pname, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("prim: name: %w", err)
		}
		n := ss.scene.Lookup(pname)
		if n == nil {
			return zygo.SexpNull, fmt.Errorf("prim: no primitive named %q", pname)
		}
		return &sexpNodeRef{id: n.ID, kind: n.Kind, name: n.Name}, nil
	})
}

// points converts positional arguments to coordinates.
func (ss *session) points(fn string, args []zygo.Sexp) ([]scene.Vec3, error) {
	pts := make([]scene.Vec3, len(args))
	for i, a := range args {
		p, _, err := ss.toVec3(a)
		if err != nil {
			return nil, fmt.Errorf("%s: point %d: %w", fn, i, err)
		}
		pts[i] = p
	}
	return pts, nil
}
