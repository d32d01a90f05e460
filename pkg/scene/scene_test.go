package scene

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/chazu/geomkit/pkg/vecmath"
)

func v(x, y, z float64) Vec3 { return vecmath.V3(x, y, z) }

func TestNodeIDDeterministic(t *testing.T) {
	a := NewNodeID(KindPoint, "p")
	b := NewNodeID(KindPoint, "p")
	if a != b {
		t.Errorf("same kind and name gave %s and %s", a, b)
	}
	if a == NewNodeID(KindSegment, "p") {
		t.Error("kind does not contribute to the ID")
	}
	if a.IsZero() {
		t.Error("derived ID is zero")
	}
	if !(NodeID{}).IsZero() {
		t.Error("zero ID not reported as zero")
	}
	if got := a.Short(); len(got) != 8 || !strings.HasPrefix(a.String(), got) {
		t.Errorf("Short() = %q for %s", got, a)
	}
}

func TestAddAndLookup(t *testing.T) {
	s := New()
	p, err := s.Add("origin", PointData{Position: v(0, 0, 0)})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if p.Kind != KindPoint {
		t.Errorf("Kind = %v, want point", p.Kind)
	}
	if _, err := s.Add("edge", SegmentData{Start: v(0, 0, 0), End: v(1, 0, 0)}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := s.Lookup("origin"); got != p {
		t.Errorf("Lookup(origin) = %v", got)
	}
	if got := s.Get(p.ID); got != p {
		t.Errorf("Get(%s) = %v", p.ID.Short(), got)
	}
	if s.Lookup("missing") != nil {
		t.Error("Lookup(missing) should be nil")
	}
	if want := []string{"edge", "origin"}; !reflect.DeepEqual(s.Names(), want) {
		t.Errorf("Names() = %v, want %v", s.Names(), want)
	}
	if segs := s.ByKind(KindSegment); len(segs) != 1 || segs[0].Name != "edge" {
		t.Errorf("ByKind(segment) = %v", segs)
	}
	if s.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", s.NodeCount())
	}
}

func TestAddRejectsDuplicatesAndEmptyNames(t *testing.T) {
	s := New()
	if _, err := s.Add("a", PointData{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add("a", SegmentData{}); err == nil {
		t.Error("duplicate name across kinds accepted")
	}
	if _, err := s.Add("", PointData{}); err == nil {
		t.Error("empty name accepted")
	}
}

func TestSceneJSON(t *testing.T) {
	s := New()
	if _, err := s.Add("tri", TriangleData{V0: v(0, 0, 0), V1: v(1, 0, 0), V2: v(0, 1, 0)}); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, want := range []string{`"kind":"triangle"`, `"name":"tri"`, `"v1":{"x":1,"y":0,"z":0}`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("JSON missing %s: %s", want, out)
		}
	}
}
