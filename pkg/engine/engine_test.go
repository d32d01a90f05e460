package engine

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	eng, err := New(opts)
	if err != nil {
		t.Fatalf("New(%+v): %v", opts, err)
	}
	return eng
}

func TestNewDefaults(t *testing.T) {
	eng := newTestEngine(t, Options{})
	opts := eng.Options()
	if opts.Precision != Float64 {
		t.Errorf("precision = %s, want float64", opts.Precision)
	}
	if opts.Backend != "native" {
		t.Errorf("backend = %q, want native", opts.Backend)
	}
	if opts.Timeout != EvalTimeout {
		t.Errorf("timeout = %s, want %s", opts.Timeout, EvalTimeout)
	}
}

func TestNewRejectsUnavailableBackend(t *testing.T) {
	tests := []Options{
		{Precision: Float32, Backend: "sdfx"},
		{Precision: Float32, Backend: "gonum"},
		{Precision: Float64, Backend: "nope"},
	}
	for _, opts := range tests {
		if _, err := New(opts); err == nil {
			t.Errorf("New(%+v): expected error", opts)
		}
	}
}

func TestEvaluateEmptyString(t *testing.T) {
	eng := newTestEngine(t, Options{})

	for _, src := range []string{"", "   \n\t  \n  "} {
		rep, evalErrs, err := eng.Evaluate(src)
		if err != nil {
			t.Fatalf("unexpected fatal error: %v", err)
		}
		if len(evalErrs) > 0 {
			t.Fatalf("unexpected eval errors: %v", evalErrs)
		}
		if rep == nil {
			t.Fatal("expected non-nil report")
		}
		if rep.Scene.NodeCount() != 0 || len(rep.Results) != 0 {
			t.Errorf("expected empty report, got %d nodes %d results", rep.Scene.NodeCount(), len(rep.Results))
		}
		if !rep.Validation.OK() {
			t.Errorf("empty scene should validate, got %v", rep.Validation.Errors)
		}
	}
}

func TestEvaluatePlainLisp(t *testing.T) {
	eng := newTestEngine(t, Options{})

	source := `
(def x 10)
(def y 20)
(+ x y)
`
	rep, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if rep == nil {
		t.Fatal("expected non-nil report")
	}
	if len(rep.Results) != 0 {
		t.Errorf("expected no results, got %d", len(rep.Results))
	}
}

func TestEvaluateSyntaxError(t *testing.T) {
	eng := newTestEngine(t, Options{})

	rep, evalErrs, err := eng.Evaluate("(+ 1 2")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if rep != nil {
		t.Fatal("expected nil report on syntax error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error for syntax error")
	}
	if evalErrs[0].Message == "" {
		t.Error("eval error message should not be empty")
	}
}

func TestEvaluateUndefinedSymbol(t *testing.T) {
	eng := newTestEngine(t, Options{})

	rep, evalErrs, err := eng.Evaluate("(+ 1 undefined-symbol)")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if rep != nil {
		t.Fatal("expected nil report on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error for undefined symbol")
	}
}

func TestEvalErrorImplementsError(t *testing.T) {
	e := EvalError{Line: 5, Message: "something went wrong"}
	s := e.Error()
	if !strings.Contains(s, "line 5") {
		t.Errorf("Error() should contain line info, got: %s", s)
	}
	if !strings.Contains(s, "something went wrong") {
		t.Errorf("Error() should contain message, got: %s", s)
	}

	e2 := EvalError{Message: "no location"}
	if strings.Contains(e2.Error(), "line") {
		t.Errorf("Error() with no line should not contain 'line', got: %s", e2.Error())
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	eng := newTestEngine(t, Options{})
	source := `
(triangle "t" (vec3 0 0 0) (vec3 1 0 0) (vec3 0 1 0))
(closest-point-triangle (prim "t") (vec3 2 2 1))
`
	var first *Report
	for i := 0; i < 5; i++ {
		rep, evalErrs, err := eng.Evaluate(source)
		if err != nil {
			t.Fatalf("iteration %d: unexpected fatal error: %v", i, err)
		}
		if len(evalErrs) > 0 {
			t.Fatalf("iteration %d: unexpected eval errors: %v", i, evalErrs)
		}
		if first == nil {
			first = rep
			continue
		}
		if rep.Scene.Lookup("t").ID != first.Scene.Lookup("t").ID {
			t.Errorf("iteration %d: node IDs differ between runs", i)
		}
		if rep.Results[0].Points[0] != first.Results[0].Points[0] {
			t.Errorf("iteration %d: result %v differs from %v", i, rep.Results[0].Points[0], first.Results[0].Points[0])
		}
	}
}

func TestEvaluateRapidSequential(t *testing.T) {
	// zygomys keeps global state that is not safe for concurrent sandbox
	// creation, so calls are sequential.
	eng := newTestEngine(t, Options{})
	sources := []string{
		`(segment "s" (vec3 0 0 0) (vec3 1 0 0))`,
		`(+ 1 2`,
		``,
		`(triangle "t" (vec3 0 0 0) (vec3 1 0 0) (vec3 0 1 0)) (triangle-area (prim "t"))`,
		`(prim "missing")`,
	}
	for i, src := range sources {
		rep, evalErrs, err := eng.Evaluate(src)
		if err != nil {
			t.Fatalf("iteration %d: unexpected fatal error: %v", i, err)
		}
		if (rep == nil) == (len(evalErrs) == 0) {
			t.Errorf("iteration %d: want exactly one of report or eval errors, got %v and %v", i, rep, evalErrs)
		}
	}
}

func TestEvaluateTimeout(t *testing.T) {
	var mu sync.Mutex
	var gen uint64 = 1
	ch := make(chan evalResult) // Never sends

	done := make(chan struct{})
	var resultErr error
	go func() {
		defer close(done)
		_, _, resultErr = waitWithTimeout(ch, 50*time.Millisecond, 1, &mu, &gen)
	}()

	select {
	case <-done:
		if resultErr == nil {
			t.Fatal("expected timeout error, got nil")
		}
		if !strings.Contains(resultErr.Error(), "timed out") {
			t.Errorf("expected timeout error message, got: %v", resultErr)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("test itself timed out waiting for evaluation timeout")
	}
}

func TestEvaluateGenerationDiscardsStale(t *testing.T) {
	var mu sync.Mutex
	gen := uint64(2)

	ch := make(chan evalResult, 1)
	ch <- evalResult{}

	_, _, err := waitWithTimeout(ch, time.Second, 1, &mu, &gen)
	if err == nil {
		t.Fatal("expected error for stale generation")
	}
	if !strings.Contains(err.Error(), "superseded") {
		t.Errorf("expected superseded error, got: %v", err)
	}
}

func TestParseZygomysError(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "error on line format",
			msg:      "Error on line 5: unexpected token\n",
			wantLine: 5,
			wantMsg:  "unexpected token",
		},
		{
			name:     "no line info",
			msg:      "some generic error",
			wantLine: 0,
			wantMsg:  "some generic error",
		},
		{
			name:     "line format lowercase",
			msg:      "error on line 12: missing paren",
			wantLine: 12,
			wantMsg:  "missing paren",
		},
		{
			name:     "short line format",
			msg:      "line 3: closest-point-line: expected line",
			wantLine: 3,
			wantMsg:  "expected line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := parseZygomysError(errString(tt.msg))
			if len(errs) == 0 {
				t.Fatal("expected at least one error")
			}
			e := errs[0]
			if e.Line != tt.wantLine {
				t.Errorf("line = %d, want %d", e.Line, tt.wantLine)
			}
			if !strings.Contains(e.Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", e.Message, tt.wantMsg)
			}
		})
	}
}

// errString is a simple error type for testing.
type errString string

func (e errString) Error() string { return string(e) }
