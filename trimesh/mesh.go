// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package trimesh provides the triangle-mesh container and its edge-to-face
// connectivity used by the crease analysis in the parent package.

package trimesh

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Mesh is an indexed triangle mesh. Vertices are identified by their position
// in Vertices and faces by their position in Faces for the lifetime of an
// analysis. Faces carry a consistent winding order; the winding orients the
// face normals.
type Mesh struct {
	Vertices []r3.Vector
	Faces    [][3]int
}

// NewMesh validates vertices and faces and wraps them in a Mesh. Every face
// must reference three distinct in-range vertex indices; the first offending
// face is reported. The slices are not copied.
func NewMesh(vertices []r3.Vector, faces [][3]int) (*Mesh, error) {
	m := &Mesh{Vertices: vertices, Faces: faces}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that every face references three distinct in-range vertex
// indices and reports the first offending face.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= len(m.Vertices) {
				return fmt.Errorf("trimesh: face %d references vertex %d, valid range [0 %d)",
					i, v, len(m.Vertices))
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return fmt.Errorf("trimesh: face %d has repeated vertices %v", i, f)
		}
	}
	return nil
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int {
	return len(m.Vertices)
}

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int {
	return len(m.Faces)
}

// FaceNormal returns the unit normal of face i, oriented by the right-hand
// rule over the face's winding order: (v1-v0) x (v2-v0), normalized. For a
// degenerate (zero-area) face the cross product has no direction and the
// zero vector is returned instead.
func (m *Mesh) FaceNormal(i int) r3.Vector {
	if i < 0 || i >= len(m.Faces) {
		panic("FaceNormal: face index out of range")
	}
	f := m.Faces[i]
	v0 := m.Vertices[f[0]]
	cross := m.Vertices[f[1]].Sub(v0).Cross(m.Vertices[f[2]].Sub(v0))
	if cross.Norm2() == 0 {
		return r3.Vector{}
	}
	return cross.Normalize()
}

// FaceNormals returns one unit normal per face, in face order. Degenerate
// faces yield the zero vector, see FaceNormal.
func (m *Mesh) FaceNormals() []r3.Vector {
	normals := make([]r3.Vector, len(m.Faces))
	for i := range m.Faces {
		normals[i] = m.FaceNormal(i)
	}
	return normals
}
