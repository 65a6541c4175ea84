// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshcrease

import (
	"github.com/2dChan/meshcrease/trimesh"
)

// SegmentRegions partitions the faces 0..numFaces-1 into maximal smooth
// regions: connected components of the graph whose nodes are faces and whose
// links are interior edges not in sharp. Boundary, non-manifold and sharp
// edges never connect faces. Components are discovered by BFS from each
// unvisited face in increasing face-index order, so region labels and the
// region sequence are reproducible. Each region's face list is ascending and
// every face appears in exactly one region.
func SegmentRegions(numFaces int, em *trimesh.EdgeMap, sharp *SharpSet) [][]int {
	_, regionFaces, regionOffsets := segmentRegions(numFaces, em, sharp)
	regions := make([][]int, len(regionOffsets)-1)
	for i := range regions {
		regions[i] = regionFaces[regionOffsets[i]:regionOffsets[i+1]]
	}
	return regions
}

// segmentRegions labels every face with a region index and packs the regions
// into a CSR pair (regionFaces, regionOffsets).
func segmentRegions(numFaces int, em *trimesh.EdgeMap, sharp *SharpSet) (faceRegions, regionFaces, regionOffsets []int) {
	neighborIndices, neighborOffsets := smoothNeighbors(numFaces, em, sharp)

	faceRegions = make([]int, numFaces)
	for i := range faceRegions {
		faceRegions[i] = -1
	}

	numRegions := 0
	queue := make([]int, 0, numFaces)
	for start := range numFaces {
		if faceRegions[start] >= 0 {
			continue
		}
		faceRegions[start] = numRegions
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			for _, nb := range neighborIndices[neighborOffsets[f]:neighborOffsets[f+1]] {
				if faceRegions[nb] < 0 {
					faceRegions[nb] = numRegions
					queue = append(queue, nb)
				}
			}
		}
		numRegions++
	}

	// Pack regions in CSR form. Filling in increasing face order keeps every
	// region's face list ascending.
	regionOffsets = make([]int, numRegions+1)
	for _, r := range faceRegions {
		regionOffsets[r+1]++
	}
	for i := range numRegions {
		regionOffsets[i+1] += regionOffsets[i]
	}
	regionFaces = make([]int, numFaces)
	nxt := make([]int, numRegions)
	copy(nxt, regionOffsets[:numRegions])
	for f, r := range faceRegions {
		regionFaces[nxt[r]] = f
		nxt[r]++
	}
	return faceRegions, regionFaces, regionOffsets
}

// smoothNeighbors builds the explicit face-adjacency list through non-sharp
// interior edges, in CSR form. Building it once avoids repeated edge-map
// lookups during the traversal.
func smoothNeighbors(numFaces int, em *trimesh.EdgeMap, sharp *SharpSet) (neighborIndices, neighborOffsets []int) {
	neighborOffsets = make([]int, numFaces+1)
	for i := range em.NumEdges() {
		if em.Class(i) != trimesh.Interior || sharp.Contains(i) {
			continue
		}
		faces := em.Faces(i)
		neighborOffsets[faces[0]+1]++
		neighborOffsets[faces[1]+1]++
	}
	for i := range numFaces {
		neighborOffsets[i+1] += neighborOffsets[i]
	}

	neighborIndices = make([]int, neighborOffsets[numFaces])
	nxt := make([]int, numFaces)
	copy(nxt, neighborOffsets[:numFaces])
	for i := range em.NumEdges() {
		if em.Class(i) != trimesh.Interior || sharp.Contains(i) {
			continue
		}
		faces := em.Faces(i)
		neighborIndices[nxt[faces[0]]] = faces[1]
		nxt[faces[0]]++
		neighborIndices[nxt[faces[1]]] = faces[0]
		nxt[faces[1]]++
	}
	return neighborIndices, neighborOffsets
}
