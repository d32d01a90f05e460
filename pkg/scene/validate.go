package scene

import (
	"fmt"
	"sort"
)

// ValidationSeverity indicates whether a validation finding blocks evaluation
// or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks evaluation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ValidationSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	NodeID   NodeID             `json:"node_id"`
	Name     string             `json:"name,omitempty"`
	Message  string             `json:"message"`
	Severity ValidationSeverity `json:"severity"`
}

func (e ValidationError) Error() string {
	if e.NodeID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] %s %s: %s", e.Severity, e.Name, e.NodeID.Short(), e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	NodeID  NodeID `json:"node_id"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

func (w ValidationWarning) String() string {
	return fmt.Sprintf("[warning] %s: %s", w.Name, w.Message)
}

// ValidationResult bundles errors (blocking) and warnings (advisory)
// from all validation tiers.
type ValidationResult struct {
	Errors   []ValidationError   `json:"errors"`
	Warnings []ValidationWarning `json:"warnings"`
}

// OK reports whether there are no blocking errors.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs the structural checks and returns the findings. An empty
// slice means the scene is consistent. It never mutates the scene.
func Validate(s *Scene) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateNames(s)...)
	errs = append(errs, validateOrder(s)...)
	errs = append(errs, validatePayloads(s)...)
	return errs
}

// ValidateAll runs the structural and geometric tiers and returns a
// ValidationResult with separated errors and warnings. Slices are never nil.
func ValidateAll(s *Scene) ValidationResult {
	result := ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationWarning{},
	}
	for _, e := range Validate(s) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{NodeID: e.NodeID, Name: e.Name, Message: e.Message})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}

	geomErrs, geomWarnings := validateGeometry(s)
	result.Errors = append(result.Errors, geomErrs...)
	result.Warnings = append(result.Warnings, geomWarnings...)
	return result
}

// validateNames checks that every NameIndex entry references an existing
// node carrying that name.
func validateNames(s *Scene) []ValidationError {
	var errs []ValidationError

	names := make([]string, 0, len(s.NameIndex))
	for name := range s.NameIndex {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		id := s.NameIndex[name]
		n, ok := s.Nodes[id]
		switch {
		case !ok:
			errs = append(errs, ValidationError{
				Name:     name,
				Message:  fmt.Sprintf("name index entry %q references non-existent node %s", name, id.Short()),
				Severity: SeverityError,
			})
		case n.Name != name:
			errs = append(errs, ValidationError{
				NodeID:   id,
				Name:     n.Name,
				Message:  fmt.Sprintf("name index entry %q points at node named %q", name, n.Name),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateOrder checks that Order lists every node exactly once.
func validateOrder(s *Scene) []ValidationError {
	var errs []ValidationError
	seen := make(map[NodeID]bool, len(s.Order))
	for _, id := range s.Order {
		if seen[id] {
			errs = append(errs, ValidationError{
				NodeID:   id,
				Message:  "node listed twice in scene order",
				Severity: SeverityError,
			})
			continue
		}
		seen[id] = true
		if _, ok := s.Nodes[id]; !ok {
			errs = append(errs, ValidationError{
				NodeID:   id,
				Message:  "scene order references non-existent node",
				Severity: SeverityError,
			})
		}
	}
	if len(seen) < len(s.Nodes) {
		for id, n := range s.Nodes {
			if !seen[id] {
				errs = append(errs, ValidationError{
					NodeID:   id,
					Name:     n.Name,
					Message:  "node missing from scene order",
					Severity: SeverityWarning,
				})
			}
		}
	}
	return errs
}

// validatePayloads checks that each node's data matches its kind.
func validatePayloads(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, id := range s.Order {
		n := s.Nodes[id]
		if n == nil {
			continue
		}
		switch {
		case n.Data == nil:
			errs = append(errs, ValidationError{
				NodeID:   id,
				Name:     n.Name,
				Message:  "node has no data",
				Severity: SeverityError,
			})
		case n.Data.Kind() != n.Kind:
			errs = append(errs, ValidationError{
				NodeID:   id,
				Name:     n.Name,
				Message:  fmt.Sprintf("node kind %s carries %s data", n.Kind, n.Data.Kind()),
				Severity: SeverityError,
			})
		}
	}
	return errs
}
