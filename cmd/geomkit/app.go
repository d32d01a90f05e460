package main

import (
	"github.com/chazu/geomkit/pkg/engine"
	"k8s.io/klog/v2"
)

// App runs scripts through an engine and shapes the outcome for output.
type App struct {
	engine *engine.Engine
}

// ErrorData is a serializable evaluation or validation finding.
type ErrorData struct {
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// EvalResult is everything the eval command prints.
type EvalResult struct {
	Report   *engine.Report `json:"report,omitempty"`
	Errors   []ErrorData    `json:"errors"`
	Warnings []ErrorData    `json:"warnings"`
}

// OK reports whether the script ran and its scene validated.
func (r EvalResult) OK() bool {
	return len(r.Errors) == 0
}

// NewApp creates an App with an engine for opts.
func NewApp(opts engine.Options) (*App, error) {
	eng, err := engine.New(opts)
	if err != nil {
		return nil, err
	}
	return &App{engine: eng}, nil
}

// Evaluate runs source and collects the report and any findings.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Errors:   []ErrorData{},
		Warnings: []ErrorData{},
	}

	// Step 1: run the script.
	rep, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		klog.Errorf("evaluate: %v", err)
		result.Errors = append(result.Errors, ErrorData{Message: err.Error()})
		return result
	}

	// Step 2: script errors stop here.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, ErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
		}
		return result
	}

	// Step 3: validation findings travel with the report.
	result.Report = rep
	for _, e := range rep.Validation.Errors {
		result.Errors = append(result.Errors, ErrorData{Name: e.Name, Message: e.Message})
	}
	for _, w := range rep.Validation.Warnings {
		result.Warnings = append(result.Warnings, ErrorData{Name: w.Name, Message: w.Message})
	}
	if n := len(rep.Failed()); n > 0 {
		klog.V(1).Infof("%d of %d queries returned fail", n, len(rep.Results))
	}
	return result
}
