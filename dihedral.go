// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshcrease

import (
	"errors"
	"math"
	"sync"

	"github.com/2dChan/meshcrease/trimesh"
	"github.com/golang/geo/r3"
)

// DihedralAngles computes the dihedral angle in degrees for every interior
// edge of m. The result is indexed by edge ordinal; non-interior edges and
// interior edges incident to a degenerate-normal face hold NaN, which lets
// callers tell "undefined" apart from "flat".
//
// Sign convention: for an interior edge take the first incident face in
// visit order as the reference face A and the second as B. Let e be the unit
// edge direction as the edge appears in A's winding order, and nA, nB the
// face normals. The dihedral is the angle swept from nA to nB about e by the
// right-hand rule, folded into [0, 360): 0 is coplanar, convex folds grow
// from 0 and concave folds fall from 360. With consistent winding the value
// does not depend on which incident face plays the reference role.
func DihedralAngles(m *trimesh.Mesh, normals []r3.Vector, em *trimesh.EdgeMap, setters ...Option) ([]float64, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	if m == nil || em == nil {
		return nil, errors.New("meshcrease: nil mesh or edge map")
	}
	if len(normals) != m.NumFaces() {
		return nil, errors.New("meshcrease: normals count does not match face count")
	}

	angles := make([]float64, em.NumEdges())
	parallelFor(em.NumEdges(), opts.Parallelism, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			angles[i] = dihedralAngle(m, normals, em, i, opts.Eps)
		}
	})
	return angles, nil
}

// dihedralAngle computes the angle for a single edge ordinal, NaN when
// undefined.
func dihedralAngle(m *trimesh.Mesh, normals []r3.Vector, em *trimesh.EdgeMap, i int, eps float64) float64 {
	if em.Class(i) != trimesh.Interior {
		return math.NaN()
	}
	faces := em.Faces(i)
	nA, nB := normals[faces[0]], normals[faces[1]]
	if nA.Norm2() == 0 || nB.Norm2() == 0 {
		// Degenerate face, no meaningful plane to measure against.
		return math.NaN()
	}

	e := windingDirection(m, faces[0], em.Edge(i))
	signed := math.Atan2(nA.Cross(nB).Dot(e), clampDot(nA.Dot(nB)))
	if math.Abs(signed) < eps {
		return 0
	}
	if signed < 0 {
		signed += 2 * math.Pi
	}
	return signed * 180 / math.Pi
}

// windingDirection returns the unit direction of edge e as it is traversed
// by face f's winding order.
func windingDirection(m *trimesh.Mesh, f int, e trimesh.Edge) r3.Vector {
	face := m.Faces[f]
	u, v := int(e.Lo), int(e.Hi)
	for j := range 3 {
		a, b := face[j], face[(j+1)%3]
		if a == v && b == u {
			u, v = v, u
		}
		if a == u && b == v {
			return m.Vertices[v].Sub(m.Vertices[u]).Normalize()
		}
	}
	panic("windingDirection: edge not in face")
}

// clampDot guards acos/atan2 inputs against floating-point overshoot of
// unit-vector dot products.
func clampDot(d float64) float64 {
	return math.Min(1, math.Max(-1, d))
}

// parallelFor splits [0, n) into contiguous chunks and runs fn on each,
// using up to workers goroutines. With workers <= 1 it degenerates to a
// plain call on the full range.
func parallelFor(n, workers int, fn func(lo, hi int)) {
	if workers <= 1 || n < 2 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(lo, hi)
		}()
	}
	wg.Wait()
}
