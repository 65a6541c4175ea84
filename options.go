// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshcrease

import "fmt"

const (
	// defaultEps is the coplanarity tolerance in radians. Signed fold angles
	// whose magnitude is below it collapse to exactly zero so that numeric
	// noise on coplanar faces cannot wrap to just under 360 degrees.
	defaultEps = 1e-9

	maxEps = 1e-3
)

// Options holds tunables shared by DihedralAngles and Analyze.
type Options struct {
	Eps         float64
	Parallelism int
}

// Option mutates Options and reports invalid settings.
type Option func(*Options) error

// WithEps sets the coplanarity tolerance in radians. It must lie in
// (0, 1e-3). The default is 1e-9.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 || eps >= maxEps {
			return fmt.Errorf("meshcrease: eps %v out of range (0 %v)", eps, maxEps)
		}
		o.Eps = eps
		return nil
	}
}

// WithParallelism sets the number of worker goroutines used for the
// per-face and per-edge passes (normals, dihedral angles). Workers write
// disjoint index ranges of preallocated output, so results are identical to
// a sequential run. The default is 1.
func WithParallelism(n int) Option {
	return func(o *Options) error {
		if n < 1 {
			return fmt.Errorf("meshcrease: parallelism %d, want >= 1", n)
		}
		o.Parallelism = n
		return nil
	}
}

func newOptions(setters []Option) (Options, error) {
	opts := Options{
		Eps:         defaultEps,
		Parallelism: 1,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}
