// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshcrease

import (
	"math"
	"slices"

	"github.com/2dChan/meshcrease/trimesh"
)

// Stats summarizes one analysis as plain data, ready for JSON export or
// reporting by a caller.
type Stats struct {
	ThresholdDeg float64 `json:"threshold_deg"`

	NumVertices         int `json:"num_vertices"`
	NumFaces            int `json:"num_faces"`
	NumEdges            int `json:"num_edges"`
	NumInteriorEdges    int `json:"num_interior_edges"`
	NumBoundaryEdges    int `json:"num_boundary_edges"`
	NumNonManifoldEdges int `json:"num_non_manifold_edges"`
	NumUndefinedEdges   int `json:"num_undefined_edges"`
	NumSharpEdges       int `json:"num_sharp_edges"`

	NumRegions  int   `json:"num_regions"`
	RegionSizes []int `json:"region_sizes"`

	// Angle statistics cover the defined dihedral angles only, in degrees.
	// All zero when the mesh has no interior edges with a defined angle.
	AngleMin    float64 `json:"dihedral_angle_min"`
	AngleMax    float64 `json:"dihedral_angle_max"`
	AngleMean   float64 `json:"dihedral_angle_mean"`
	AngleMedian float64 `json:"dihedral_angle_median"`
	AngleStd    float64 `json:"dihedral_angle_std"`

	SharpPercent float64 `json:"sharp_edge_percentage"`
}

// Stats computes summary statistics for the analysis.
func (a *Analysis) Stats() Stats {
	s := Stats{
		ThresholdDeg:  a.thresholdDeg,
		NumVertices:   a.Mesh.NumVertices(),
		NumFaces:      a.Mesh.NumFaces(),
		NumEdges:      a.Edges.NumEdges(),
		NumSharpEdges: a.sharp.Count(),
		NumRegions:    a.NumRegions(),
		RegionSizes:   make([]int, a.NumRegions()),
	}
	for i := range s.RegionSizes {
		s.RegionSizes[i] = a.RegionOffsets[i+1] - a.RegionOffsets[i]
	}

	defined := make([]float64, 0, a.Edges.NumEdges())
	for i := range a.Edges.NumEdges() {
		switch a.Edges.Class(i) {
		case trimesh.Boundary:
			s.NumBoundaryEdges++
		case trimesh.Interior:
			s.NumInteriorEdges++
			if math.IsNaN(a.Angles[i]) {
				s.NumUndefinedEdges++
			} else {
				defined = append(defined, a.Angles[i])
			}
		default:
			s.NumNonManifoldEdges++
		}
	}

	if s.NumInteriorEdges > 0 {
		s.SharpPercent = 100 * float64(s.NumSharpEdges) / float64(s.NumInteriorEdges)
	}
	if len(defined) == 0 {
		return s
	}

	slices.Sort(defined)
	s.AngleMin = defined[0]
	s.AngleMax = defined[len(defined)-1]
	mid := len(defined) / 2
	if len(defined)%2 == 1 {
		s.AngleMedian = defined[mid]
	} else {
		s.AngleMedian = (defined[mid-1] + defined[mid]) / 2
	}

	var sum float64
	for _, v := range defined {
		sum += v
	}
	s.AngleMean = sum / float64(len(defined))
	var sq float64
	for _, v := range defined {
		d := v - s.AngleMean
		sq += d * d
	}
	s.AngleStd = math.Sqrt(sq / float64(len(defined)))

	return s
}
