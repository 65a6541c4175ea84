// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides deterministic mesh generators for crease-analysis
// tests, benchmarks and examples.

package utils

import (
	"errors"
	"math"
	"math/rand"

	"github.com/2dChan/meshcrease/trimesh"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"
)

// GenerateRandomPoints generates a vector of random points on the unit
// sphere. The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r3.Vector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r3.Vector, cnt)

	for i := range cnt {
		points[i] = s2.PointFromLatLng(s2.LatLng{
			Lat: s1.Angle((random.Float64() - 0.5) * math.Pi),
			Lng: s1.Angle((random.Float64()*2 - 1) * math.Pi),
		}).Vector
	}

	return points
}

// Cube returns the unit cube as a closed mesh of 8 vertices and 12
// triangles, wound so that all face normals point outward. Its 12 true cube
// edges fold at 90 degrees and the 6 quad-splitting diagonals are coplanar.
func Cube() *trimesh.Mesh {
	vertices := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 0, Y: 1, Z: 1},
	}
	faces := [][3]int{
		{0, 2, 1}, {0, 3, 2}, // bottom, -z
		{4, 5, 6}, {4, 6, 7}, // top, +z
		{0, 1, 5}, {0, 5, 4}, // front, -y
		{2, 3, 7}, {2, 7, 6}, // back, +y
		{0, 4, 7}, {0, 7, 3}, // left, -x
		{1, 2, 6}, {1, 6, 5}, // right, +x
	}
	return &trimesh.Mesh{Vertices: vertices, Faces: faces}
}

// Grid returns a flat triangulated grid of nx by ny unit cells in the z=0
// plane, wound so that all face normals point to +z. Every interior edge is
// coplanar and the outer edges are boundary edges.
func Grid(nx, ny int) *trimesh.Mesh {
	if nx < 1 || ny < 1 {
		panic("Grid: nx and ny must be positive")
	}
	vertex := func(i, j int) int {
		return i*(ny+1) + j
	}

	vertices := make([]r3.Vector, (nx+1)*(ny+1))
	for i := range nx + 1 {
		for j := range ny + 1 {
			vertices[vertex(i, j)] = r3.Vector{X: float64(i), Y: float64(j)}
		}
	}

	faces := make([][3]int, 0, 2*nx*ny)
	for i := range nx {
		for j := range ny {
			v00 := vertex(i, j)
			v10 := vertex(i+1, j)
			v11 := vertex(i+1, j+1)
			v01 := vertex(i, j+1)
			faces = append(faces, [3]int{v00, v10, v11}, [3]int{v00, v11, v01})
		}
	}
	return &trimesh.Mesh{Vertices: vertices, Faces: faces}
}

// RandomConvexMesh returns the convex hull of cnt seeded random unit-sphere
// points as a closed manifold triangle mesh with outward winding. At least
// four points are required.
func RandomConvexMesh(cnt int, seed int64) (*trimesh.Mesh, error) {
	if cnt < 4 {
		return nil, errors.New("utils: insufficient points for a convex mesh (minimum 4 required)")
	}
	points := GenerateRandomPoints(cnt, seed)

	const hullEps = 1e-12
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(points, true, true, hullEps)
	if len(ch.Indices)%3 != 0 || len(ch.Indices) < 12 {
		return nil, errors.New("utils: inconsistent number of indices returned from QuickHull")
	}

	faces := make([][3]int, len(ch.Indices)/3)
	for i := range faces {
		base := i * 3
		faces[i] = [3]int{ch.Indices[base], ch.Indices[base+1], ch.Indices[base+2]}
		orientOutward(&faces[i], points)
	}
	return &trimesh.Mesh{Vertices: points, Faces: faces}, nil
}

// orientOutward flips the triangle's winding if its normal points toward the
// origin. The hull encloses the origin, so the test is against a vertex
// position.
func orientOutward(t *[3]int, v []r3.Vector) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	norm := p1.Sub(p0).Cross(p2.Sub(p0))
	if norm.Dot(p0) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}
