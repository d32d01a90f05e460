package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"sigs.k8s.io/yaml"

	"github.com/chazu/geomkit/pkg/engine"
	"github.com/chazu/geomkit/pkg/geom"
)

// render writes result in the named format.
func render(w io.Writer, result EvalResult, format string, color bool) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "yaml":
		b, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "text", "":
		renderText(w, result, aurora.NewAurora(color))
		return nil
	}
	return fmt.Errorf("unknown output format %q, expected text, json or yaml", format)
}

func renderText(w io.Writer, result EvalResult, au aurora.Aurora) {
	if rep := result.Report; rep != nil {
		fmt.Fprintf(w, "%s %s, %d primitives\n", rep.Precision, rep.Backend, rep.Scene.NodeCount())
		for _, res := range rep.Results {
			fmt.Fprintf(w, "  %s(%s) %s%s\n",
				res.Query, strings.Join(res.Args, ", "), colorCode(au, res.Code), resultDetail(res))
		}
	}
	for _, e := range result.Errors {
		fmt.Fprintf(w, "%s %s\n", au.Red("error"), describe(e))
	}
	for _, wn := range result.Warnings {
		fmt.Fprintf(w, "%s %s\n", au.Yellow("warning"), describe(wn))
	}
}

func colorCode(au aurora.Aurora, c geom.Code) aurora.Value {
	switch c {
	case geom.Success, geom.Intersecting, geom.CompletelyInside:
		return au.Green(c)
	case geom.Fail:
		return au.Red(c)
	default:
		return au.Yellow(c)
	}
}

func resultDetail(res engine.Result) string {
	var b strings.Builder
	if len(res.Points) > 0 {
		pts := make([]string, len(res.Points))
		for i, p := range res.Points {
			pts[i] = p.String()
		}
		fmt.Fprintf(&b, " points=%s", strings.Join(pts, " "))
	}
	if len(res.Params) > 0 {
		fmt.Fprintf(&b, " params=%v", res.Params)
	}
	if res.Value != nil {
		fmt.Fprintf(&b, " value=%g", *res.Value)
	}
	return b.String()
}

func describe(e ErrorData) string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	case e.Name != "":
		return fmt.Sprintf("%s: %s", e.Name, e.Message)
	}
	return e.Message
}
