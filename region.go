// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshcrease

// Region represents one smooth region. It is a view structure for accessing
// a region of an Analysis; the regions of an Analysis partition its face
// set.
type Region struct {
	idx int
	a   *Analysis
}

// Index returns the region's index in the Analysis.
func (r Region) Index() int {
	return r.idx
}

// Size returns the number of faces in the region.
func (r Region) Size() int {
	return r.a.RegionOffsets[r.idx+1] - r.a.RegionOffsets[r.idx]
}

// Faces returns the indices of the faces in the region, ascending. The
// returned slice is a view; callers must not modify it.
func (r Region) Faces() []int {
	return r.a.RegionFaces[r.a.RegionOffsets[r.idx]:r.a.RegionOffsets[r.idx+1]]
}
