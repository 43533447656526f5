package motion

import (
	"fmt"
	"strings"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-motion/internal/grid"
)

// equalTol is the element-wise tolerance used by Equal.
const equalTol = 1e-8

// Motion holds the estimated displacement of a recording over time,
// sampled on a regular grid of temporal and spatial bin centers. Each
// recording segment carries its own displacement matrix of shape
// (temporal bins, spatial bins); the spatial bin centers are shared by
// all segments. A Motion with a single spatial bin is rigid: the whole
// probe moves as one.
//
// Displacement values are in micrometers, times in seconds. Queries
// interpolate between bin centers and clamp outside the sampled
// range, so the boundary estimate extends to infinity rather than
// extrapolating.
//
// A Motion must not be copied by value once created; use Copy.
type Motion struct {
	displacement []*mat.Dense
	temporalBins [][]float64
	spatialBins  []float64
	direction    Direction
	method       InterpMethod

	initOnce sync.Once
	interps  []*grid.Interpolator
	initErr  error
}

// New creates a single-segment Motion. The displacement matrix has one
// row per temporal bin and one column per spatial bin; both bin axes
// must be strictly increasing. The matrices are copied.
func New(displacement *mat.Dense, temporalBins, spatialBins []float64, opts ...Option) (*Motion, error) {
	return NewMultiSegment([]*mat.Dense{displacement}, [][]float64{temporalBins}, spatialBins, opts...)
}

// NewMultiSegment creates a Motion spanning several recording
// segments. Each segment pairs one displacement matrix with its own
// temporal bin centers; the spatial bin centers are shared.
func NewMultiSegment(displacement []*mat.Dense, temporalBins [][]float64, spatialBins []float64, opts ...Option) (*Motion, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.direction.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(cfg.direction))
	}
	if !cfg.method.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownInterpolation, int(cfg.method))
	}
	if len(displacement) == 0 {
		return nil, ErrNoSegments
	}
	if len(displacement) != len(temporalBins) {
		return nil, fmt.Errorf("%w: %d displacement matrices, %d temporal axes",
			ErrSegmentMismatch, len(displacement), len(temporalBins))
	}
	if err := checkAxis(spatialBins, "spatial bins"); err != nil {
		return nil, err
	}

	m := &Motion{
		displacement: make([]*mat.Dense, len(displacement)),
		temporalBins: make([][]float64, len(temporalBins)),
		spatialBins:  append([]float64(nil), spatialBins...),
		direction:    cfg.direction,
		method:       cfg.method,
	}
	for i, d := range displacement {
		if d == nil {
			return nil, fmt.Errorf("%w: segment %d has no displacement", ErrShapeMismatch, i)
		}
		if err := checkAxis(temporalBins[i], fmt.Sprintf("segment %d temporal bins", i)); err != nil {
			return nil, err
		}
		r, c := d.Dims()
		if r != len(temporalBins[i]) || c != len(spatialBins) {
			return nil, fmt.Errorf("%w: segment %d displacement is %dx%d, want %dx%d",
				ErrShapeMismatch, i, r, c, len(temporalBins[i]), len(spatialBins))
		}
		m.displacement[i] = mat.DenseCopyOf(d)
		m.temporalBins[i] = append([]float64(nil), temporalBins[i]...)
	}
	return m, nil
}

func checkAxis(axis []float64, name string) error {
	if len(axis) == 0 {
		return fmt.Errorf("%w: empty %s", ErrShapeMismatch, name)
	}
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			return fmt.Errorf("%w: %s", ErrBinsNotSorted, name)
		}
	}
	return nil
}

// NumSegments returns the number of recording segments.
func (m *Motion) NumSegments() int {
	return len(m.displacement)
}

// Rigid reports whether the Motion has a single spatial bin, meaning
// the whole probe is assumed to move as one.
func (m *Motion) Rigid() bool {
	return len(m.spatialBins) == 1
}

// Direction returns the spatial axis the displacement refers to.
func (m *Motion) Direction() Direction {
	return m.direction
}

// Interpolation returns the interpolation method used by queries.
func (m *Motion) Interpolation() InterpMethod {
	return m.method
}

// SpatialBins returns a copy of the spatial bin centers in um.
func (m *Motion) SpatialBins() []float64 {
	return append([]float64(nil), m.spatialBins...)
}

// TemporalBins returns a copy of the temporal bin centers in seconds
// for one segment.
func (m *Motion) TemporalBins(segment int) ([]float64, error) {
	if segment < 0 || segment >= len(m.temporalBins) {
		return nil, fmt.Errorf("%w: %d of %d", ErrSegmentRange, segment, len(m.temporalBins))
	}
	return append([]float64(nil), m.temporalBins[segment]...), nil
}

// Displacement returns a copy of one segment's displacement matrix.
func (m *Motion) Displacement(segment int) (*mat.Dense, error) {
	if segment < 0 || segment >= len(m.displacement) {
		return nil, fmt.Errorf("%w: %d of %d", ErrSegmentRange, segment, len(m.displacement))
	}
	return mat.DenseCopyOf(m.displacement[segment]), nil
}

// String summarizes the Motion in one line.
func (m *Motion) String() string {
	var b strings.Builder
	b.WriteString("Motion ")
	if m.Rigid() {
		b.WriteString("rigid")
	} else {
		fmt.Fprintf(&b, "non-rigid - %d spatial bins", len(m.spatialBins))
	}
	interval := 0.0
	if t := m.temporalBins[0]; len(t) > 1 {
		interval = t[1] - t[0]
	}
	fmt.Fprintf(&b, " - interval %gs - %d segments", interval, len(m.displacement))
	return b.String()
}

// Equal reports whether two Motions describe numerically the same
// displacement. Bin centers and displacement values are compared with
// tolerance; direction and interpolation method are deliberately not
// compared, so estimates that agree numerically compare equal even if
// queried differently.
func (m *Motion) Equal(other *Motion) bool {
	if other == nil {
		return false
	}
	if len(m.displacement) != len(other.displacement) {
		return false
	}
	if !floats.EqualApprox(m.spatialBins, other.spatialBins, equalTol) {
		return false
	}
	for i := range m.displacement {
		if !floats.EqualApprox(m.temporalBins[i], other.temporalBins[i], equalTol) {
			return false
		}
		if !mat.EqualApprox(m.displacement[i], other.displacement[i], equalTol) {
			return false
		}
	}
	return true
}

// Copy returns an independent Motion with the same displacement, bin
// centers, direction and interpolation method. Mutating one has no
// effect on the other.
func (m *Motion) Copy() *Motion {
	out := &Motion{
		displacement: make([]*mat.Dense, len(m.displacement)),
		temporalBins: make([][]float64, len(m.temporalBins)),
		spatialBins:  append([]float64(nil), m.spatialBins...),
		direction:    m.direction,
		method:       m.method,
	}
	for i := range m.displacement {
		out.displacement[i] = mat.DenseCopyOf(m.displacement[i])
		out.temporalBins[i] = append([]float64(nil), m.temporalBins[i]...)
	}
	return out
}
