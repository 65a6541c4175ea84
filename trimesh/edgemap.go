// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

// Edge is an undirected edge, canonicalized so that Lo < Hi. The two 32-bit
// indices make Edge a compact comparable map key with a single representation
// per vertex pair regardless of which face or winding produced it.
type Edge struct {
	Lo, Hi int32
}

// MakeEdge returns the canonical Edge for the vertex pair (a, b).
func MakeEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{Lo: int32(a), Hi: int32(b)}
}

// EdgeClass partitions edges by the number of incident faces.
type EdgeClass int

const (
	// Boundary edges belong to exactly one face; the mesh is open there.
	Boundary EdgeClass = iota
	// Interior edges are shared by exactly two faces.
	Interior
	// NonManifold edges are shared by more than two faces. They are surfaced
	// as their own class because dihedral angles assume exactly two faces.
	NonManifold
)

func (c EdgeClass) String() string {
	switch c {
	case Boundary:
		return "boundary"
	case Interior:
		return "interior"
	case NonManifold:
		return "non-manifold"
	}
	return "unknown"
}

// EdgeMap maps every undirected edge of a face set to the faces containing
// it. Edges are assigned dense ordinals in first-seen order and the incident
// faces of each edge are kept in face-visit order, so the whole structure is
// a pure, reproducible function of the face sequence.
type EdgeMap struct {
	edges    []Edge
	ordinals map[Edge]int

	// Incident faces per edge ordinal, CSR layout.
	faceIndices []int
	faceOffsets []int
}

// NewEdgeMap builds the edge-to-face map for faces. Boundary and non-manifold
// edges are legitimate classifications, not errors; see EdgeClass.
func NewEdgeMap(faces [][3]int) *EdgeMap {
	em := &EdgeMap{
		ordinals: make(map[Edge]int, len(faces)*3/2),
	}

	counts := make([]int, 0, len(faces)*3/2)
	for _, f := range faces {
		for j := range 3 {
			e := MakeEdge(f[j], f[(j+1)%3])
			idx, ok := em.ordinals[e]
			if !ok {
				idx = len(em.edges)
				em.ordinals[e] = idx
				em.edges = append(em.edges, e)
				counts = append(counts, 0)
			}
			counts[idx]++
		}
	}

	em.faceOffsets = make([]int, len(em.edges)+1)
	for i, c := range counts {
		em.faceOffsets[i+1] = em.faceOffsets[i] + c
	}

	em.faceIndices = make([]int, em.faceOffsets[len(em.edges)])
	nxt := make([]int, len(em.edges))
	copy(nxt, em.faceOffsets[:len(em.edges)])
	for i, f := range faces {
		for j := range 3 {
			idx := em.ordinals[MakeEdge(f[j], f[(j+1)%3])]
			em.faceIndices[nxt[idx]] = i
			nxt[idx]++
		}
	}

	return em
}

// NumEdges returns the number of distinct undirected edges.
func (em *EdgeMap) NumEdges() int {
	return len(em.edges)
}

// Edge returns the edge with ordinal i.
func (em *EdgeMap) Edge(i int) Edge {
	if i < 0 || i >= len(em.edges) {
		panic("Edge: ordinal out of range")
	}
	return em.edges[i]
}

// Ordinal returns the dense ordinal assigned to e, and whether e exists.
func (em *EdgeMap) Ordinal(e Edge) (int, bool) {
	idx, ok := em.ordinals[e]
	return idx, ok
}

// Faces returns the indices of the faces containing edge ordinal i, in the
// order the faces were visited during construction. The returned slice is a
// view; callers must not modify it.
func (em *EdgeMap) Faces(i int) []int {
	if i < 0 || i >= len(em.edges) {
		panic("Faces: ordinal out of range")
	}
	return em.faceIndices[em.faceOffsets[i]:em.faceOffsets[i+1]]
}

// Class returns the classification of edge ordinal i.
func (em *EdgeMap) Class(i int) EdgeClass {
	if i < 0 || i >= len(em.edges) {
		panic("Class: ordinal out of range")
	}
	switch em.faceOffsets[i+1] - em.faceOffsets[i] {
	case 1:
		return Boundary
	case 2:
		return Interior
	default:
		return NonManifold
	}
}

// InteriorEdges returns the ordinals of all interior edges, ascending.
func (em *EdgeMap) InteriorEdges() []int {
	return em.edgesOfClass(Interior)
}

// BoundaryEdges returns the ordinals of all boundary edges, ascending.
func (em *EdgeMap) BoundaryEdges() []int {
	return em.edgesOfClass(Boundary)
}

// NonManifoldEdges returns the ordinals of all non-manifold edges, ascending.
func (em *EdgeMap) NonManifoldEdges() []int {
	return em.edgesOfClass(NonManifold)
}

func (em *EdgeMap) edgesOfClass(c EdgeClass) []int {
	ordinals := make([]int, 0, len(em.edges))
	for i := range em.edges {
		if em.Class(i) == c {
			ordinals = append(ordinals, i)
		}
	}
	return ordinals
}
