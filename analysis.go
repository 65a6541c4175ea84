// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package meshcrease locates crease features on triangle meshes. It computes
// face normals and edge-to-face adjacency, measures the dihedral angle of
// every interior edge, classifies edges as sharp against a caller-supplied
// threshold and partitions the faces into maximal regions connected through
// smooth edges.

package meshcrease

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/meshcrease/trimesh"
	"github.com/golang/geo/r3"
)

// Analysis holds the outputs of one crease analysis of a mesh at a
// threshold. All fields are derived from (mesh, threshold) alone and must be
// treated as read-only.
type Analysis struct {
	Mesh  *trimesh.Mesh
	Edges *trimesh.EdgeMap

	// Normals holds one unit normal per face; zero vector for degenerate
	// faces.
	Normals []r3.Vector
	// Angles holds the dihedral angle in degrees per edge ordinal, NaN for
	// non-interior edges and for edges with an undefined angle. See
	// DihedralAngles for the sign convention.
	Angles []float64

	// FaceRegions maps each face index to its region index.
	FaceRegions []int
	// RegionFaces and RegionOffsets pack the regions: region i owns
	// RegionFaces[RegionOffsets[i]:RegionOffsets[i+1]], ascending.
	RegionFaces   []int
	RegionOffsets []int

	sharp        *SharpSet
	thresholdDeg float64
}

// Analyze runs the full pipeline on m: normals, edge adjacency, dihedral
// angles, sharp classification at thresholdDeg (inclusive, in degrees) and
// smooth-region segmentation. The threshold must be finite; there is no
// default.
func Analyze(m *trimesh.Mesh, thresholdDeg float64, setters ...Option) (*Analysis, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("meshcrease: nil mesh")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(thresholdDeg) || math.IsInf(thresholdDeg, 0) {
		return nil, fmt.Errorf("meshcrease: threshold %v is not finite", thresholdDeg)
	}

	a := &Analysis{
		Mesh:    m,
		Edges:   trimesh.NewEdgeMap(m.Faces),
		Normals: make([]r3.Vector, m.NumFaces()),
	}
	parallelFor(m.NumFaces(), opts.Parallelism, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			a.Normals[i] = m.FaceNormal(i)
		}
	})

	a.Angles = make([]float64, a.Edges.NumEdges())
	parallelFor(a.Edges.NumEdges(), opts.Parallelism, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			a.Angles[i] = dihedralAngle(m, a.Normals, a.Edges, i, opts.Eps)
		}
	})

	if err := a.Rethreshold(thresholdDeg); err != nil {
		return nil, err
	}
	return a, nil
}

// Rethreshold reclassifies the sharp edges at a new threshold in degrees and
// resegments the regions, reusing the cached angles. Angles are a function
// of the mesh alone, so the result matches a fresh Analyze at the same
// threshold.
func (a *Analysis) Rethreshold(thresholdDeg float64) error {
	sharp, err := NewSharpSet(a.Angles, thresholdDeg)
	if err != nil {
		return err
	}
	a.sharp = sharp
	a.thresholdDeg = thresholdDeg
	a.FaceRegions, a.RegionFaces, a.RegionOffsets = segmentRegions(a.Mesh.NumFaces(), a.Edges, a.sharp)
	return nil
}

// Threshold returns the threshold in degrees the sharp set was built with.
func (a *Analysis) Threshold() float64 {
	return a.thresholdDeg
}

// DihedralAngle returns the dihedral angle in degrees of e. ok is false when
// e is not an interior edge of the mesh or its angle is undefined because an
// incident face is degenerate.
func (a *Analysis) DihedralAngle(e trimesh.Edge) (deg float64, ok bool) {
	i, exists := a.Edges.Ordinal(e)
	if !exists || math.IsNaN(a.Angles[i]) {
		return 0, false
	}
	return a.Angles[i], true
}

// IsSharp reports whether e is in the sharp set. Unknown edges and edges
// with undefined angles are not sharp.
func (a *Analysis) IsSharp(e trimesh.Edge) bool {
	i, exists := a.Edges.Ordinal(e)
	return exists && a.sharp.Contains(i)
}

// SharpEdges returns the sharp edges in edge-ordinal order.
func (a *Analysis) SharpEdges() []trimesh.Edge {
	edges := make([]trimesh.Edge, 0, a.sharp.Count())
	for i := range a.Edges.NumEdges() {
		if a.sharp.Contains(i) {
			edges = append(edges, a.Edges.Edge(i))
		}
	}
	return edges
}

// NumRegions returns the number of smooth regions.
func (a *Analysis) NumRegions() int {
	return len(a.RegionOffsets) - 1
}

// Region returns the region with the specified index.
// It returns an error if the index is out of range.
func (a *Analysis) Region(i int) (Region, error) {
	if i < 0 || i >= a.NumRegions() {
		return Region{}, fmt.Errorf("Region: index %d out of range [0 %d)", i, a.NumRegions())
	}
	return Region{idx: i, a: a}, nil
}

// RegionOf returns the index of the region containing the face.
// It returns an error if the face index is out of range.
func (a *Analysis) RegionOf(face int) (int, error) {
	if face < 0 || face >= len(a.FaceRegions) {
		return 0, fmt.Errorf("RegionOf: face %d out of range [0 %d)", face, len(a.FaceRegions))
	}
	return a.FaceRegions[face], nil
}
