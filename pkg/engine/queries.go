package engine

import (
	"fmt"

	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
	"k8s.io/klog/v2"
)

// queryFunc computes one result from already-checked arguments.
type queryFunc func(args []zygo.Sexp) (Result, error)

// record appends res to the report and hands it back to the script.
func (ss *session) record(res Result) zygo.Sexp {
	ss.report.Results = append(ss.report.Results, res)
	klog.V(3).Infof("query %s(%v) -> %s", res.Query, res.Args, res.Code)
	return &sexpResult{res: res}
}

// addQuery registers a query builtin taking exactly arity arguments. Script
// names are kebab-case; zygomys sees the underscore form.
func addQuery(env *zygo.Zlisp, ss *session, query string, arity int, fn queryFunc) {
	env.AddFunction(kebabToSnake(query), func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != arity {
			return zygo.SexpNull, fmt.Errorf("%s requires %d arguments, got %d", query, arity, len(args))
		}
		res, err := fn(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", query, err)
		}
		res.Query = query
		return ss.record(res), nil
	})
}

func kebabToSnake(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '-' {
			b[i] = '_'
		}
	}
	return string(b)
}

func value(f float64) *float64 { return &f }

// registerQueries installs the geometry queries. Every query appends a
// Result to the report, including Fail results.
func registerQueries(env *zygo.Zlisp, ss *session) {

	// (closest-point-line line point)
	addQuery(env, ss, "closest-point-line", 2, func(args []zygo.Sexp) (Result, error) {
		l, lname, err := primArg[scene.LineData](ss, args[0])
		if err != nil {
			return Result{}, err
		}
		p, pname, err := ss.toVec3(args[1])
		if err != nil {
			return Result{}, err
		}
		cp, u, code := ss.run.closestPointOnLine(l, p)
		return Result{Args: []string{lname, pname}, Code: code, Points: []scene.Vec3{cp}, Params: []float64{u}}, nil
	})

	// (closest-point-segment segment point)
	addQuery(env, ss, "closest-point-segment", 2, func(args []zygo.Sexp) (Result, error) {
		s, sname, err := primArg[scene.SegmentData](ss, args[0])
		if err != nil {
			return Result{}, err
		}
		p, pname, err := ss.toVec3(args[1])
		if err != nil {
			return Result{}, err
		}
		cp, u, code := ss.run.closestPointOnSegment(s, p)
		return Result{Args: []string{sname, pname}, Code: code, Points: []scene.Vec3{cp}, Params: []float64{u}}, nil
	})

	// (closest-points-segments segment-a segment-b)
	addQuery(env, ss, "closest-points-segments", 2, func(args []zygo.Sexp) (Result, error) {
		a, aname, err := primArg[scene.SegmentData](ss, args[0])
		if err != nil {
			return Result{}, err
		}
		b, bname, err := primArg[scene.SegmentData](ss, args[1])
		if err != nil {
			return Result{}, err
		}
		pa, pb, ua, ub, code := ss.run.closestPointsSegments(a, b)
		return Result{
			Args:   []string{aname, bname},
			Code:   code,
			Points: []scene.Vec3{pa, pb},
			Params: []float64{ua, ub},
			Value:  value(pa.Distance(pb)),
		}, nil
	})

	// (closest-point-plane plane point)
	addQuery(env, ss, "closest-point-plane", 2, func(args []zygo.Sexp) (Result, error) {
		pl, plname, err := primArg[scene.PlaneData](ss, args[0])
		if err != nil {
			return Result{}, err
		}
		p, pname, err := ss.toVec3(args[1])
		if err != nil {
			return Result{}, err
		}
		cp, code := ss.run.closestPointOnPlane(pl, p)
		return Result{Args: []string{plname, pname}, Code: code, Points: []scene.Vec3{cp}}, nil
	})

	// (signed-distance plane point)
	addQuery(env, ss, "signed-distance", 2, func(args []zygo.Sexp) (Result, error) {
		pl, plname, err := primArg[scene.PlaneData](ss, args[0])
		if err != nil {
			return Result{}, err
		}
		p, pname, err := ss.toVec3(args[1])
		if err != nil {
			return Result{}, err
		}
		d := ss.run.signedDistance(pl, p)
		return Result{Args: []string{plname, pname}, Code: geom.Success, Value: value(d)}, nil
	})

	// (closest-point-triangle triangle point)
	addQuery(env, ss, "closest-point-triangle", 2, func(args []zygo.Sexp) (Result, error) {
		t, tname, err := primArg[scene.TriangleData](ss, args[0])
		if err != nil {
			return Result{}, err
		}
		p, pname, err := ss.toVec3(args[1])
		if err != nil {
			return Result{}, err
		}
		cp, code := ss.run.closestPointOnTriangle(t, p)
		return Result{Args: []string{tname, pname}, Code: code, Points: []scene.Vec3{cp}}, nil
	})

	// (barycentric triangle point)
	addQuery(env, ss, "barycentric", 2, func(args []zygo.Sexp) (Result, error) {
		t, tname, err := primArg[scene.TriangleData](ss, args[0])
		if err != nil {
			return Result{}, err
		}
		p, pname, err := ss.toVec3(args[1])
		if err != nil {
			return Result{}, err
		}
		u, v, w, code := ss.run.barycentric(t, p)
		res := Result{Args: []string{tname, pname}, Code: code}
		if code.OK() {
			res.Params = []float64{u, v, w}
		}
		return res, nil
	})

	// (intersect-segment-triangle segment triangle)
	addQuery(env, ss, "intersect-segment-triangle", 2, func(args []zygo.Sexp) (Result, error) {
		s, sname, err := primArg[scene.SegmentData](ss, args[0])
		if err != nil {
			return Result{}, err
		}
		t, tname, err := primArg[scene.TriangleData](ss, args[1])
		if err != nil {
			return Result{}, err
		}
		p, code := ss.run.intersectSegmentTriangle(s, t)
		res := Result{Args: []string{sname, tname}, Code: code}
		if code == geom.Intersecting {
			res.Points = []scene.Vec3{p}
		}
		return res, nil
	})

	// (intersect-coplanar segment triangle)
	addQuery(env, ss, "intersect-coplanar", 2, func(args []zygo.Sexp) (Result, error) {
		s, sname, err := primArg[scene.SegmentData](ss, args[0])
		if err != nil {
			return Result{}, err
		}
		t, tname, err := primArg[scene.TriangleData](ss, args[1])
		if err != nil {
			return Result{}, err
		}
		p0, p1, code := ss.run.intersectCoplanar(s, t)
		res := Result{Args: []string{sname, tname}, Code: code}
		if code == geom.Intersecting || code == geom.CompletelyInside {
			res.Points = []scene.Vec3{p0, p1}
		}
		return res, nil
	})

	// (triangle-area triangle)
	addQuery(env, ss, "triangle-area", 1, func(args []zygo.Sexp) (Result, error) {
		t, tname, err := primArg[scene.TriangleData](ss, args[0])
		if err != nil {
			return Result{}, err
		}
		return Result{Args: []string{tname}, Code: geom.Success, Value: value(ss.run.triangleArea(t))}, nil
	})

	registerAccessors(env)
}

// ---------------------------------------------------------------------------
// Result accessors
// ---------------------------------------------------------------------------

func toResult(s zygo.Sexp) (Result, error) {
	if r, ok := s.(*sexpResult); ok {
		return r.res, nil
	}
	return Result{}, fmt.Errorf("expected query result, got %T (%s)", s, s.SexpString(nil))
}

func registerAccessors(env *zygo.Zlisp) {

	// (result-code r) -> "success"
	env.AddFunction("result_code", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("result-code requires a result")
		}
		res, err := toResult(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("result-code: %w", err)
		}
		return &zygo.SexpStr{S: res.Code.String()}, nil
	})

	// (result-point r 0) -> vec3
	env.AddFunction("result_point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("result-point requires a result and an index")
		}
		res, err := toResult(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("result-point: %w", err)
		}
		i, err := toInt(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("result-point: index: %w", err)
		}
		if i < 0 || i >= len(res.Points) {
			return zygo.SexpNull, fmt.Errorf("result-point: %s has %d points, index %d", res.Query, len(res.Points), i)
		}
		return &sexpVec3{vec: res.Points[i]}, nil
	})

	// (result-param r 0) -> float
	env.AddFunction("result_param", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("result-param requires a result and an index")
		}
		res, err := toResult(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("result-param: %w", err)
		}
		i, err := toInt(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("result-param: index: %w", err)
		}
		if i < 0 || i >= len(res.Params) {
			return zygo.SexpNull, fmt.Errorf("result-param: %s has %d params, index %d", res.Query, len(res.Params), i)
		}
		return &zygo.SexpFloat{Val: res.Params[i]}, nil
	})

	// (result-value r) -> float
	env.AddFunction("result_value", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("result-value requires a result")
		}
		res, err := toResult(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("result-value: %w", err)
		}
		if res.Value == nil {
			return zygo.SexpNull, fmt.Errorf("result-value: %s has no value", res.Query)
		}
		return &zygo.SexpFloat{Val: *res.Value}, nil
	})
}
