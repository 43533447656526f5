// Package grid provides interpolation on 2-D regular grids.
//
// A grid is defined by strictly increasing row and column coordinates and a
// dense value matrix with one entry per coordinate pair. Evaluation between
// nodes follows the selected method along both axes. Axes with a single
// coordinate are treated as constant.
package grid

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by grid construction.
var (
	ErrEmptyAxis     = errors.New("grid: axis must have at least one coordinate")
	ErrAxisNotSorted = errors.New("grid: axis coordinates must be strictly increasing")
	ErrShapeMismatch = errors.New("grid: value shape does not match axis lengths")
	ErrUnknownMethod = errors.New("grid: unknown interpolation method")
)

// Method selects how values between grid nodes are computed.
type Method int

const (
	// Linear interpolates piecewise-linearly along both axes.
	Linear Method = iota

	// Nearest snaps to the closest grid node along both axes.
	Nearest

	// Cubic fits Akima splines along both axes.
	Cubic
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Nearest:
		return "nearest"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod converts a method name to a Method value.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "nearest":
		return Nearest, nil
	case "cubic":
		return Cubic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Interpolator evaluates a function sampled on a regular 2-D grid.
//
// Rows index the first coordinate axis, columns the second. The value at
// (rows[i], cols[j]) is values.At(i, j). Evaluation does not extrapolate:
// queries outside the coordinate range are clamped to the nearest edge.
type Interpolator struct {
	rows   []float64
	cols   []float64
	values *mat.Dense
	method Method

	// One predictor per row, fitted along the column axis. Nil when the
	// column axis is singleton or the method is Nearest.
	rowPredictors []interp.Predictor
}

// New builds an interpolator over the given axes and values.
// rows and cols must be strictly increasing, values must be
// len(rows) x len(cols).
func New(rows, cols []float64, values *mat.Dense, method Method) (*Interpolator, error) {
	if err := validateAxis(rows); err != nil {
		return nil, err
	}
	if err := validateAxis(cols); err != nil {
		return nil, err
	}

	r, c := values.Dims()
	if r != len(rows) || c != len(cols) {
		return nil, fmt.Errorf("%w: values %dx%d, axes %dx%d", ErrShapeMismatch, r, c, len(rows), len(cols))
	}

	switch method {
	case Linear, Nearest, Cubic:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}

	g := &Interpolator{
		rows:   append([]float64(nil), rows...),
		cols:   append([]float64(nil), cols...),
		values: mat.DenseCopyOf(values),
		method: method,
	}

	if method != Nearest && len(cols) > 1 {
		preds, err := fitRowPredictors(g.cols, g.values, method)
		if err != nil {
			return nil, err
		}
		g.rowPredictors = preds
	}

	return g, nil
}

// Method returns the interpolation method.
func (g *Interpolator) Method() Method {
	return g.method
}

// At evaluates the grid at row coordinate r and column coordinate c.
// Coordinates outside the grid are clamped to the boundary.
func (g *Interpolator) At(r, c float64) float64 {
	r = clampTo(r, g.rows)
	c = clampTo(c, g.cols)

	if g.method == Nearest {
		ri := nearestIndex(g.rows, r)
		ci := nearestIndex(g.cols, c)
		return g.values.At(ri, ci)
	}

	if len(g.rows) == 1 {
		return g.evalRow(0, c)
	}

	switch g.method {
	case Cubic:
		return g.cubicAcrossRows(r, c)
	default:
		i := segmentIndex(g.rows, r)
		lo := g.evalRow(i, c)
		hi := g.evalRow(i+1, c)
		w := (r - g.rows[i]) / (g.rows[i+1] - g.rows[i])
		return lo + w*(hi-lo)
	}
}

// Column evaluates the grid at a fixed column coordinate for every row
// coordinate in rs, writing the results into dst. dst must have length
// len(rs). This amortizes the per-column work shared by all rows.
func (g *Interpolator) Column(dst []float64, rs []float64, c float64) {
	c = clampTo(c, g.cols)

	if g.method == Nearest {
		ci := nearestIndex(g.cols, c)
		for k, r := range rs {
			ri := nearestIndex(g.rows, clampTo(r, g.rows))
			dst[k] = g.values.At(ri, ci)
		}
		return
	}

	// Evaluate the column profile once per row.
	profile := make([]float64, len(g.rows))
	for i := range g.rows {
		profile[i] = g.evalRow(i, c)
	}

	if len(g.rows) == 1 {
		for k := range rs {
			dst[k] = profile[0]
		}
		return
	}

	switch g.method {
	case Cubic:
		var spline interp.AkimaSpline
		if err := spline.Fit(g.rows, profile); err != nil {
			// Axes were validated at construction; Fit cannot fail here.
			panic(err)
		}
		for k, r := range rs {
			dst[k] = spline.Predict(clampTo(r, g.rows))
		}
	default:
		for k, r := range rs {
			r = clampTo(r, g.rows)
			i := segmentIndex(g.rows, r)
			w := (r - g.rows[i]) / (g.rows[i+1] - g.rows[i])
			dst[k] = profile[i] + w*(profile[i+1]-profile[i])
		}
	}
}

// evalRow evaluates row i at column coordinate c (already clamped).
func (g *Interpolator) evalRow(i int, c float64) float64 {
	if len(g.cols) == 1 {
		return g.values.At(i, 0)
	}
	return g.rowPredictors[i].Predict(c)
}

// cubicAcrossRows evaluates the column profile at c for all rows and fits
// an Akima spline across the row axis.
func (g *Interpolator) cubicAcrossRows(r, c float64) float64 {
	profile := make([]float64, len(g.rows))
	for i := range g.rows {
		profile[i] = g.evalRow(i, c)
	}

	var spline interp.AkimaSpline
	if err := spline.Fit(g.rows, profile); err != nil {
		panic(err)
	}
	return spline.Predict(r)
}

func fitRowPredictors(cols []float64, values *mat.Dense, method Method) ([]interp.Predictor, error) {
	r, _ := values.Dims()
	preds := make([]interp.Predictor, r)

	for i := 0; i < r; i++ {
		row := values.RawRowView(i)

		var p interp.FittablePredictor
		switch method {
		case Cubic:
			p = &interp.AkimaSpline{}
		default:
			p = &interp.PiecewiseLinear{}
		}

		if err := p.Fit(cols, row); err != nil {
			return nil, fmt.Errorf("grid: fitting row %d: %w", i, err)
		}
		preds[i] = p
	}

	return preds, nil
}

func validateAxis(axis []float64) error {
	if len(axis) == 0 {
		return ErrEmptyAxis
	}
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			return fmt.Errorf("%w: axis[%d]=%v, axis[%d]=%v", ErrAxisNotSorted, i-1, axis[i-1], i, axis[i])
		}
	}
	return nil
}

// clampTo limits x to the coordinate range of axis.
func clampTo(x float64, axis []float64) float64 {
	if x < axis[0] {
		return axis[0]
	}
	if last := axis[len(axis)-1]; x > last {
		return last
	}
	return x
}

// segmentIndex returns i such that axis[i] <= x <= axis[i+1].
// x must already be clamped and len(axis) >= 2.
func segmentIndex(axis []float64, x float64) int {
	i := sort.SearchFloat64s(axis, x)
	if i > 0 && (i == len(axis) || axis[i] != x) {
		i--
	}
	if i == len(axis)-1 {
		i--
	}
	return i
}

// nearestIndex returns the index of the axis coordinate closest to x.
// Ties round toward the lower coordinate. x must already be clamped.
func nearestIndex(axis []float64, x float64) int {
	i := sort.SearchFloat64s(axis, x)
	if i == 0 {
		return 0
	}
	if i == len(axis) {
		return len(axis) - 1
	}
	if axis[i] == x {
		return i
	}
	if x-axis[i-1] <= axis[i]-x {
		return i - 1
	}
	return i
}
