// Package window builds spatial weighting windows that partition a probe
// axis into overlapping regions for non-rigid motion estimation.
package window

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Shape identifies a window taper function.
type Shape int

const (
	// ShapeGaussian is an unnormalized Gaussian bump (1 at the center).
	ShapeGaussian Shape = iota

	// ShapeRect is 1 within half a sigma of the center, 0 outside.
	ShapeRect

	// ShapeTriangle falls off linearly from the center within half a sigma.
	ShapeTriangle
)

// String returns the lower-case shape name.
func (s Shape) String() string {
	switch s {
	case ShapeGaussian:
		return "gaussian"
	case ShapeRect:
		return "rect"
	case ShapeTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape converts a shape name to a Shape value.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "gaussian":
		return ShapeGaussian, nil
	case "rect":
		return ShapeRect, nil
	case "triangle":
		return ShapeTriangle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

// Option configures window construction.
type Option func(*config)

type config struct {
	shape     Shape
	step      float64
	sigma     float64
	margin    float64
	rigid     bool
	threshold float64
	useThresh bool
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		shape: ShapeGaussian,
		step:  50,
		sigma: 150,
	}
}

// WithShape selects the taper function. Default is gaussian.
func WithShape(s Shape) Option {
	return func(c *config) {
		c.shape = s
	}
}

// WithStep sets the spacing between window centers in micrometers.
func WithStep(um float64) Option {
	return func(c *config) {
		c.step = um
	}
}

// WithSigma sets the window width parameter in micrometers: the Gaussian
// sigma, or the full support width of rect and triangle windows.
func WithSigma(um float64) Option {
	return func(c *config) {
		c.sigma = um
	}
}

// WithMargin extends (positive) or shrinks (negative) the contact span used
// to place window centers, in micrometers.
func WithMargin(um float64) Option {
	return func(c *config) {
		c.margin = um
	}
}

// WithRigid builds a single all-ones window covering every spatial bin,
// ignoring shape, step, sigma, margin and the contact positions.
func WithRigid() Option {
	return func(c *config) {
		c.rigid = true
	}
}

// WithZeroThreshold zeroes weights below threshold and renormalizes every
// window to sum to 1.
func WithZeroThreshold(threshold float64) Option {
	return func(c *config) {
		c.threshold = threshold
		c.useThresh = true
	}
}

// WithLogger sets the logger used for non-fatal diagnostics.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Set holds the constructed windows: one row of Weights per window, one
// weight per spatial bin, and the center coordinate of each window.
type Set struct {
	// Weights has shape (num windows, num spatial bins).
	Weights *mat.Dense

	// Centers holds one center coordinate per window, in micrometers.
	Centers []float64
}

// Build constructs spatial windows over the bins defined by binEdges.
//
// Spatial bin centers are the midpoints of adjacent edges. In the default
// non-rigid form, window centers are spread at the configured step across
// [min(contactPos)-margin, max(contactPos)+margin] with the leftover span
// split evenly on both ends; the number of windows is floor(span/step)+1.
// Each window weights every bin center by the configured shape.
//
// With WithRigid a single all-ones window centered on the edge-span midpoint
// is returned and contactPos may be empty.
func Build(contactPos, binEdges []float64, opts ...Option) (*Set, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(binEdges) < 2 {
		return nil, ErrTooFewEdges
	}

	binCenters := make([]float64, len(binEdges)-1)
	for i := range binCenters {
		binCenters[i] = 0.5 * (binEdges[i] + binEdges[i+1])
	}

	var set *Set
	if cfg.rigid {
		set = rigidSet(binEdges, len(binCenters))
	} else {
		var err error
		set, err = taperedSet(contactPos, binCenters, cfg)
		if err != nil {
			return nil, err
		}
	}

	if cfg.useThresh {
		if err := thresholdAndNormalize(set.Weights, cfg.threshold); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// rigidSet covers the whole probe with one flat window.
func rigidSet(binEdges []float64, numBins int) *Set {
	weights := mat.NewDense(1, numBins, nil)
	for j := 0; j < numBins; j++ {
		weights.Set(0, j, 1)
	}

	middle := (binEdges[0] + binEdges[len(binEdges)-1]) / 2

	return &Set{Weights: weights, Centers: []float64{middle}}
}

func taperedSet(contactPos, binCenters []float64, cfg config) (*Set, error) {
	if len(contactPos) == 0 {
		return nil, ErrNoContacts
	}
	if cfg.step <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadStep, cfg.step)
	}
	if cfg.sigma <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadSigma, cfg.sigma)
	}

	if cfg.sigma <= cfg.step/5 {
		logger := cfg.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("spatial windows are probably not overlapping",
			"sigma_um", cfg.sigma, "step_um", cfg.step)
	}

	minPos, maxPos := contactPos[0], contactPos[0]
	for _, p := range contactPos[1:] {
		if p < minPos {
			minPos = p
		}
		if p > maxPos {
			maxPos = p
		}
	}

	lo := minPos - cfg.margin
	hi := maxPos + cfg.margin

	span := hi - lo
	if span < 0 {
		return nil, fmt.Errorf("%w: span %v after margin %v", ErrEmptySpan, span, cfg.margin)
	}

	numWindows := int(math.Floor(span/cfg.step)) + 1
	border := math.Mod(span, cfg.step) / 2

	centers := make([]float64, numWindows)
	for k := range centers {
		centers[k] = float64(k)*cfg.step + lo + border
	}

	weights := mat.NewDense(numWindows, len(binCenters), nil)
	for k, center := range centers {
		if err := fillWindow(weights.RawRowView(k), binCenters, center, cfg.shape, cfg.sigma); err != nil {
			return nil, fmt.Errorf("window %d at %v um: %w", k, center, err)
		}
	}

	return &Set{Weights: weights, Centers: centers}, nil
}

// fillWindow writes one window's weight per bin center into dst.
func fillWindow(dst, binCenters []float64, center float64, shape Shape, sigma float64) error {
	switch shape {
	case ShapeGaussian:
		for j, bc := range binCenters {
			d := bc - center
			dst[j] = math.Exp(-(d * d) / (2 * sigma * sigma))
		}
		return nil

	case ShapeRect:
		for j, bc := range binCenters {
			if math.Abs(bc-center) < sigma/2 {
				dst[j] = 1
			} else {
				dst[j] = 0
			}
		}
		return nil

	case ShapeTriangle:
		return fillTriangle(dst, binCenters, center, sigma)

	default:
		return fmt.Errorf("%w: %d", ErrUnknownShape, int(shape))
	}
}

// fillTriangle scales distances within the support linearly so the closest
// bin gets weight 1 and the farthest in-support bin gets 0.
func fillTriangle(dst, binCenters []float64, center, sigma float64) error {
	minDist := math.Inf(1)
	maxDist := math.Inf(-1)
	inSupport := 0

	for _, bc := range binCenters {
		d := math.Abs(bc - center)
		if d > sigma/2 {
			continue
		}
		inSupport++
		if d < minDist {
			minDist = d
		}
		if d > maxDist {
			maxDist = d
		}
	}

	if inSupport == 0 {
		return ErrEmptySupport
	}
	if maxDist == minDist {
		return fmt.Errorf("%w: all %d in-support bins are equidistant", ErrDegenerateWindow, inSupport)
	}

	scale := maxDist - minDist
	for j, bc := range binCenters {
		d := math.Abs(bc - center)
		if d <= sigma/2 {
			dst[j] = (maxDist - d) / scale
		} else {
			dst[j] = 0
		}
	}

	return nil
}

// thresholdAndNormalize zeroes weights below threshold and rescales every
// window to sum to 1. A window left without mass is an error.
func thresholdAndNormalize(weights *mat.Dense, threshold float64) error {
	rows, cols := weights.Dims()

	for i := 0; i < rows; i++ {
		row := weights.RawRowView(i)

		sum := 0.0
		for j := 0; j < cols; j++ {
			if row[j] < threshold {
				row[j] = 0
			}
			sum += row[j]
		}

		if sum == 0 {
			return fmt.Errorf("%w: window %d", ErrZeroedWindow, i)
		}

		for j := 0; j < cols; j++ {
			row[j] /= sum
		}
	}

	return nil
}

// Len returns the number of windows in the set.
func (s *Set) Len() int {
	if s.Weights == nil {
		return 0
	}
	rows, _ := s.Weights.Dims()
	return rows
}

// Apply returns values weighted by window i as a new slice.
// values must have one entry per spatial bin.
func (s *Set) Apply(i int, values []float64) ([]float64, error) {
	row, err := s.windowRow(i, len(values))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	vecmath.MulBlock(out, values, row)

	return out, nil
}

// ApplyInPlace multiplies values by window i in place.
func (s *Set) ApplyInPlace(i int, values []float64) error {
	row, err := s.windowRow(i, len(values))
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(values, row)

	return nil
}

func (s *Set) windowRow(i, numValues int) ([]float64, error) {
	rows, cols := s.Weights.Dims()
	if i < 0 || i >= rows {
		return nil, fmt.Errorf("%w: %d of %d", ErrWindowIndex, i, rows)
	}
	if numValues != cols {
		return nil, fmt.Errorf("%w: %d values for %d bins", ErrMismatchedLength, numValues, cols)
	}
	return s.Weights.RawRowView(i), nil
}
