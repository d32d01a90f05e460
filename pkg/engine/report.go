package engine

import (
	"github.com/chazu/geomkit/pkg/geom"
	"github.com/chazu/geomkit/pkg/scene"
	"github.com/samber/lo"
)

// Result is the outcome of one query call in a script.
//
// Points and Params depend on the query: closest-point queries give the
// closest point and, for lines and segments, its parameter; segment pairs
// give both points, both parameters and the distance in Value; barycentric
// gives (u, v, w) in Params.
type Result struct {
	Query  string       `json:"query"`
	Args   []string     `json:"args"`
	Code   geom.Code    `json:"code"`
	Points []scene.Vec3 `json:"points,omitempty"`
	Params []float64    `json:"params,omitempty"`
	Value  *float64     `json:"value,omitempty"`
}

// Report is everything an evaluation produced.
type Report struct {
	Precision  Precision              `json:"precision"`
	Backend    string                 `json:"backend"`
	Scene      *scene.Scene           `json:"scene"`
	Results    []Result               `json:"results"`
	Validation scene.ValidationResult `json:"validation"`
}

// Failed returns the results whose code is Fail.
func (r *Report) Failed() []Result {
	return lo.Filter(r.Results, func(res Result, _ int) bool {
		return !res.Code.OK()
	})
}

// CodeCounts tallies results by code.
func (r *Report) CodeCounts() map[geom.Code]int {
	return lo.MapValues(lo.GroupBy(r.Results, func(res Result) geom.Code {
		return res.Code
	}), func(group []Result, _ geom.Code) int {
		return len(group)
	})
}
