package motion

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-motion/internal/grid"
)

// ensureInterpolators builds one regular-grid interpolator per segment
// the first time a query runs. Construction already validated the
// axes, so this only fails if the backing grid package rejects them.
func (m *Motion) ensureInterpolators() error {
	m.initOnce.Do(func() {
		interps := make([]*grid.Interpolator, len(m.displacement))
		for i := range m.displacement {
			g, err := grid.New(m.temporalBins[i], m.spatialBins, m.displacement[i], m.method.gridMethod())
			if err != nil {
				m.initErr = fmt.Errorf("motion: segment %d interpolator: %w", i, err)
				return
			}
			interps[i] = g
		}
		m.interps = interps
	})
	return m.initErr
}

func (m *Motion) resolveSegment(opts []QueryOption) (int, error) {
	var cfg queryConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSegment {
		if len(m.displacement) > 1 {
			return 0, fmt.Errorf("%w: have %d", ErrSegmentRequired, len(m.displacement))
		}
		return 0, nil
	}
	if cfg.segment < 0 || cfg.segment >= len(m.displacement) {
		return 0, fmt.Errorf("%w: %d of %d", ErrSegmentRange, cfg.segment, len(m.displacement))
	}
	return cfg.segment, nil
}

// DisplacementAt evaluates the displacement at paired (time, location)
// points. times and locations must have the same length; element i of
// the result is the displacement in um at times[i] seconds and
// locations[i] um along the motion direction. Queries outside the
// sampled bins are clamped to the nearest edge.
func (m *Motion) DisplacementAt(times, locations []float64, opts ...QueryOption) ([]float64, error) {
	if len(times) != len(locations) {
		return nil, fmt.Errorf("%w: %d times, %d locations", ErrShapeMismatch, len(times), len(locations))
	}
	seg, err := m.resolveSegment(opts)
	if err != nil {
		return nil, err
	}
	if err := m.ensureInterpolators(); err != nil {
		return nil, err
	}
	g := m.interps[seg]
	out := make([]float64, len(times))
	for i := range times {
		out[i] = g.At(times[i], locations[i])
	}
	return out, nil
}

// DisplacementAtPositions evaluates the displacement at paired times
// and probe positions. positions has one row per query and one
// coordinate column per axis; the column matching the motion direction
// is used, the others are ignored.
func (m *Motion) DisplacementAtPositions(times []float64, positions mat.Matrix, opts ...QueryOption) ([]float64, error) {
	r, c := positions.Dims()
	dim := int(m.direction)
	if dim >= c {
		return nil, fmt.Errorf("%w: direction %s needs coordinate column %d, positions have %d",
			ErrShapeMismatch, m.direction, dim, c)
	}
	locations := make([]float64, r)
	for i := range locations {
		locations[i] = positions.At(i, dim)
	}
	return m.DisplacementAt(times, locations, opts...)
}

// DisplacementGrid evaluates the displacement on the cross product of
// times and locations. The result has one row per location and one
// column per time, so element (i, j) is the displacement at
// locations[i] um and times[j] seconds.
func (m *Motion) DisplacementGrid(times, locations []float64, opts ...QueryOption) (*mat.Dense, error) {
	if len(times) == 0 || len(locations) == 0 {
		return nil, fmt.Errorf("%w: empty times or locations", ErrShapeMismatch)
	}
	seg, err := m.resolveSegment(opts)
	if err != nil {
		return nil, err
	}
	if err := m.ensureInterpolators(); err != nil {
		return nil, err
	}
	g := m.interps[seg]
	out := mat.NewDense(len(locations), len(times), nil)
	row := make([]float64, len(times))
	for i, loc := range locations {
		g.Column(row, times, loc)
		out.SetRow(i, row)
	}
	return out, nil
}
