// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMakeEdge(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want Edge
	}{
		{"ordered", 1, 5, Edge{Lo: 1, Hi: 5}},
		{"reversed", 5, 1, Edge{Lo: 1, Hi: 5}},
		{"zero low", 3, 0, Edge{Lo: 0, Hi: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeEdge(tt.a, tt.b); got != tt.want {
				t.Errorf("MakeEdge(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNewEdgeMap_SingleTriangle(t *testing.T) {
	em := NewEdgeMap([][3]int{{0, 1, 2}})

	if got := em.NumEdges(); got != 3 {
		t.Fatalf("em.NumEdges() = %v, want 3", got)
	}
	// Ordinals follow first-seen order around the face winding.
	wantEdges := []Edge{MakeEdge(0, 1), MakeEdge(1, 2), MakeEdge(2, 0)}
	for i, want := range wantEdges {
		if got := em.Edge(i); got != want {
			t.Errorf("em.Edge(%d) = %v, want %v", i, got, want)
		}
		if got := em.Class(i); got != Boundary {
			t.Errorf("em.Class(%d) = %v, want %v", i, got, Boundary)
		}
	}
}

func TestNewEdgeMap_SharedEdge(t *testing.T) {
	// Two triangles sharing the edge (0, 1).
	em := NewEdgeMap([][3]int{{0, 1, 2}, {1, 0, 3}})

	if got := em.NumEdges(); got != 5 {
		t.Fatalf("em.NumEdges() = %v, want 5", got)
	}

	i, ok := em.Ordinal(MakeEdge(0, 1))
	if !ok {
		t.Fatalf("em.Ordinal(%v) ok = false, want true", MakeEdge(0, 1))
	}
	if got := em.Class(i); got != Interior {
		t.Errorf("em.Class(%d) = %v, want %v", i, got, Interior)
	}
	if diff := cmp.Diff([]int{0, 1}, em.Faces(i)); diff != "" {
		t.Errorf("em.Faces(%d) mismatch (-want +got):\n%v", i, diff)
	}

	if diff := cmp.Diff([]int{0}, em.InteriorEdges()); diff != "" {
		t.Errorf("em.InteriorEdges() mismatch (-want +got):\n%v", diff)
	}
	if got := len(em.BoundaryEdges()); got != 4 {
		t.Errorf("em.BoundaryEdges() count = %v, want 4", got)
	}
}

func TestNewEdgeMap_NonManifold(t *testing.T) {
	// Three triangles fanned around the edge (0, 1).
	em := NewEdgeMap([][3]int{{0, 1, 2}, {0, 1, 3}, {0, 1, 4}})

	i, ok := em.Ordinal(MakeEdge(0, 1))
	if !ok {
		t.Fatalf("em.Ordinal(%v) ok = false, want true", MakeEdge(0, 1))
	}
	if got := em.Class(i); got != NonManifold {
		t.Errorf("em.Class(%d) = %v, want %v", i, got, NonManifold)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, em.Faces(i)); diff != "" {
		t.Errorf("em.Faces(%d) mismatch (-want +got):\n%v", i, diff)
	}
	if diff := cmp.Diff([]int{0}, em.NonManifoldEdges()); diff != "" {
		t.Errorf("em.NonManifoldEdges() mismatch (-want +got):\n%v", diff)
	}
	if got := len(em.InteriorEdges()); got != 0 {
		t.Errorf("em.InteriorEdges() count = %v, want 0", got)
	}
}

func TestNewEdgeMap_Deterministic(t *testing.T) {
	faces := [][3]int{{0, 1, 2}, {1, 0, 3}, {1, 3, 4}, {0, 2, 5}}

	a := NewEdgeMap(faces)
	b := NewEdgeMap(faces)

	if a.NumEdges() != b.NumEdges() {
		t.Fatalf("NumEdges mismatch: %v vs %v", a.NumEdges(), b.NumEdges())
	}
	for i := range a.NumEdges() {
		if a.Edge(i) != b.Edge(i) {
			t.Errorf("Edge(%d) mismatch: %v vs %v", i, a.Edge(i), b.Edge(i))
		}
		if diff := cmp.Diff(a.Faces(i), b.Faces(i)); diff != "" {
			t.Errorf("Faces(%d) mismatch (-a +b):\n%v", i, diff)
		}
	}
}

func TestNewEdgeMap_FaceCountsTotal(t *testing.T) {
	faces := [][3]int{{0, 1, 2}, {1, 0, 3}, {1, 3, 4}, {0, 2, 5}, {0, 1, 5}}
	em := NewEdgeMap(faces)

	total := 0
	for i := range em.NumEdges() {
		total += len(em.Faces(i))
	}
	if want := 3 * len(faces); total != want {
		t.Errorf("total incident faces = %v, want %v", total, want)
	}
}

func TestEdgeClass_String(t *testing.T) {
	tests := []struct {
		class EdgeClass
		want  string
	}{
		{Boundary, "boundary"},
		{Interior, "interior"},
		{NonManifold, "non-manifold"},
		{EdgeClass(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("EdgeClass(%d).String() = %q, want %q", int(tt.class), got, tt.want)
		}
	}
}
