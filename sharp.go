// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshcrease

import (
	"fmt"
	"math"
)

// SharpSet is the set of edges classified sharp at some threshold, stored as
// a bitset over edge ordinals. It is derived from the angles and threshold
// alone and is rebuilt, never mutated, when the threshold changes.
type SharpSet struct {
	bits []uint64
	n    int
}

// NewSharpSet classifies every edge with a defined dihedral angle as sharp
// when its angle in degrees is greater than or equal to thresholdDeg; the
// threshold is inclusive. Undefined angles (NaN) are never sharp. The
// threshold must be finite; there is no default.
func NewSharpSet(angles []float64, thresholdDeg float64) (*SharpSet, error) {
	if math.IsNaN(thresholdDeg) || math.IsInf(thresholdDeg, 0) {
		return nil, fmt.Errorf("meshcrease: threshold %v is not finite", thresholdDeg)
	}
	s := &SharpSet{
		bits: make([]uint64, (len(angles)+63)/64),
	}
	for i, a := range angles {
		if !math.IsNaN(a) && a >= thresholdDeg {
			s.bits[i/64] |= 1 << (i % 64)
			s.n++
		}
	}
	return s, nil
}

// Contains reports whether edge ordinal i is sharp.
func (s *SharpSet) Contains(i int) bool {
	if i < 0 || i/64 >= len(s.bits) {
		return false
	}
	return s.bits[i/64]&(1<<(i%64)) != 0
}

// Count returns the number of sharp edges.
func (s *SharpSet) Count() int {
	return s.n
}
