// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestNewMesh(t *testing.T) {
	vertices := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	tests := []struct {
		name    string
		faces   [][3]int
		wantErr bool
	}{
		{"empty", nil, false},
		{"single face", [][3]int{{0, 1, 2}}, false},
		{"two faces", [][3]int{{0, 1, 2}, {0, 3, 1}}, false},
		{"index out of range", [][3]int{{0, 1, 4}}, true},
		{"negative index", [][3]int{{0, -1, 2}}, true},
		{"repeated vertex", [][3]int{{0, 1, 1}}, true},
		{"all same vertex", [][3]int{{2, 2, 2}}, true},
		{"bad face after good ones", [][3]int{{0, 1, 2}, {1, 2, 3}, {3, 3, 0}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMesh(vertices, tt.faces)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewMesh(...) error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMesh_FaceNormal(t *testing.T) {
	vertices := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 2, Y: 0, Z: 0}, // collinear with 0 and 1
	}
	tests := []struct {
		name string
		face [3]int
		want r3.Vector
	}{
		{"ccw in xy plane", [3]int{0, 1, 2}, r3.Vector{Z: 1}},
		{"cw in xy plane", [3]int{0, 2, 1}, r3.Vector{Z: -1}},
		{"degenerate collinear", [3]int{0, 1, 3}, r3.Vector{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustNewMesh(t, vertices, [][3]int{tt.face})
			if got := m.FaceNormal(0); got != tt.want {
				t.Errorf("m.FaceNormal(0) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMesh_FaceNormals_UnitLength(t *testing.T) {
	vertices := []r3.Vector{
		{X: 0.3, Y: -1.2, Z: 7},
		{X: 4, Y: 0.5, Z: -2},
		{X: -3, Y: 2, Z: 0.25},
		{X: 1, Y: 1, Z: 1},
	}
	faces := [][3]int{{0, 1, 2}, {0, 1, 3}, {1, 2, 3}, {0, 2, 3}}
	m := mustNewMesh(t, vertices, faces)

	normals := m.FaceNormals()
	if len(normals) != len(faces) {
		t.Fatalf("m.FaceNormals() count = %v, want %v", len(normals), len(faces))
	}
	for i, n := range normals {
		if math.Abs(n.Norm()-1.0) > 1e-12 {
			t.Errorf("m.FaceNormals()[%d] norm = %v, want ~1.0", i, n.Norm())
		}
	}
}

// Helpers

func mustNewMesh(t *testing.T, vertices []r3.Vector, faces [][3]int) *Mesh {
	t.Helper()
	m, err := NewMesh(vertices, faces)
	if err != nil {
		t.Fatalf("NewMesh(...) error = %v, want nil", err)
	}
	return m
}
