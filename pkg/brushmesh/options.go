package brushmesh

import "runtime"

const (
	// DefaultTolerance is the distance in world units within which a point
	// counts as lying on a plane, and within which two vertices are merged.
	DefaultTolerance = 0.01
	// DefaultParallelEpsilon is the smallest |dot(Ni, cross(Nj, Nk))| for which
	// three planes are considered to meet in a single point.
	DefaultParallelEpsilon = 1e-4
)

// Options configures reconstruction and assembly.
// Zero numeric fields fall back to the defaults; the zero Winding is Clockwise.
type Options struct {
	Tolerance       float64
	ParallelEpsilon float64
	Winding         Winding
	Workers         int // BuildAll only
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Tolerance:       DefaultTolerance,
		ParallelEpsilon: DefaultParallelEpsilon,
		Winding:         Clockwise,
		Workers:         runtime.GOMAXPROCS(0),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()

	if o.Tolerance <= 0 {
		o.Tolerance = def.Tolerance
	}
	if o.ParallelEpsilon <= 0 {
		o.ParallelEpsilon = def.ParallelEpsilon
	}
	if o.Workers <= 0 {
		o.Workers = def.Workers
	}

	return o
}
