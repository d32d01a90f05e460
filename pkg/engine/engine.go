// Package engine evaluates geomkit scripts. A script declares primitives
// (points, lines, segments, triangles, planes) and runs closest-point and
// intersection queries on them; the engine collects every query result
// into a Report.
//
// Scripts run in a sandboxed zygomys interpreter, one fresh environment per
// evaluation. Queries execute at the configured precision on the configured
// kernel backend.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"
	"k8s.io/klog/v2"

	"github.com/chazu/geomkit/pkg/scene"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
	Message string `json:"message"`
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Options configures an Engine. The zero value evaluates in float64 on the
// native backend with EvalTimeout.
type Options struct {
	Precision Precision
	Backend   string
	Timeout   time.Duration
}

// Engine wraps the zygomys interpreter. It is safe for concurrent use; each
// call to Evaluate creates a fresh sandboxed environment.
type Engine struct {
	opts Options
	run  queryRunner

	mu         sync.Mutex
	generation uint64
}

// New creates an Engine. It fails if the backend is not available at the
// requested precision.
func New(opts Options) (*Engine, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = EvalTimeout
	}
	run, err := newRunner(opts.Precision, opts.Backend)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	opts.Backend = run.backend()
	return &Engine{opts: opts, run: run}, nil
}

// Options returns the effective options, with defaults filled in.
func (e *Engine) Options() Options {
	return e.opts
}

// Evaluate runs a script and returns its report.
//
// Return semantics:
//   - On success: returns report + nil errors + nil error
//   - On parse/eval failure: returns nil report + eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
//
// Validation findings do not fail the evaluation; they are in
// Report.Validation.
func (e *Engine) Evaluate(source string) (*Report, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		rep, evalErrs, err := e.evaluate(source)
		ch <- evalResult{report: rep, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, e.opts.Timeout, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*Report, []EvalError, error) {
	ss := newSession(e.run, e.opts.Precision)

	// Empty source is a valid program with an empty report.
	if strings.TrimSpace(source) == "" {
		ss.report.Validation = scene.ValidateAll(ss.scene)
		return ss.report, nil, nil
	}

	// Sandbox mode keeps scripts away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, ss)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		evalErrs := parseZygomysError(err)
		klog.V(2).Infof("script failed to load: %v", evalErrs)
		return nil, evalErrs, nil
	}

	if _, err := env.Run(); err != nil {
		evalErrs := parseZygomysError(err)
		klog.V(2).Infof("script failed: %v", evalErrs)
		return nil, evalErrs, nil
	}

	ss.report.Validation = scene.ValidateAll(ss.scene)
	klog.V(2).Infof("evaluated %d primitives, %d queries (%s/%s), %d validation errors",
		ss.scene.NodeCount(), len(ss.report.Results), e.opts.Precision, e.opts.Backend,
		len(ss.report.Validation.Errors))
	return ss.report, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
