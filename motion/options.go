package motion

import (
	"fmt"

	"github.com/cwbudde/algo-motion/internal/grid"
)

// Direction selects the spatial axis along which displacement is
// estimated. Its numeric value is the coordinate column used when
// projecting multi-dimensional positions.
type Direction int

const (
	DirectionX Direction = iota
	DirectionY
	DirectionZ
)

// String returns the axis name ("x", "y" or "z").
func (d Direction) String() string {
	switch d {
	case DirectionX:
		return "x"
	case DirectionY:
		return "y"
	case DirectionZ:
		return "z"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts an axis name into a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "x":
		return DirectionX, nil
	case "y":
		return DirectionY, nil
	case "z":
		return DirectionZ, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
	}
}

func (d Direction) valid() bool {
	return d >= DirectionX && d <= DirectionZ
}

// InterpMethod selects how displacement is interpolated between bin
// centers.
type InterpMethod int

const (
	InterpLinear InterpMethod = iota
	InterpNearest
	InterpCubic
)

// String returns the method name ("linear", "nearest" or "cubic").
func (m InterpMethod) String() string {
	switch m {
	case InterpLinear:
		return "linear"
	case InterpNearest:
		return "nearest"
	case InterpCubic:
		return "cubic"
	default:
		return fmt.Sprintf("InterpMethod(%d)", int(m))
	}
}

// ParseInterpMethod converts a method name into an InterpMethod.
func ParseInterpMethod(name string) (InterpMethod, error) {
	switch name {
	case "linear":
		return InterpLinear, nil
	case "nearest":
		return InterpNearest, nil
	case "cubic":
		return InterpCubic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownInterpolation, name)
	}
}

func (m InterpMethod) valid() bool {
	return m >= InterpLinear && m <= InterpCubic
}

func (m InterpMethod) gridMethod() grid.Method {
	switch m {
	case InterpNearest:
		return grid.Nearest
	case InterpCubic:
		return grid.Cubic
	default:
		return grid.Linear
	}
}

// Option configures a Motion during construction.
type Option func(*config)

type config struct {
	direction Direction
	method    InterpMethod
}

func defaultConfig() config {
	return config{
		direction: DirectionY,
		method:    InterpLinear,
	}
}

// WithDirection sets the spatial axis the displacement refers to.
// The default is DirectionY.
func WithDirection(d Direction) Option {
	return func(c *config) {
		c.direction = d
	}
}

// WithInterpolation sets the interpolation method used by queries.
// The default is InterpLinear.
func WithInterpolation(m InterpMethod) Option {
	return func(c *config) {
		c.method = m
	}
}

// QueryOption configures a displacement query.
type QueryOption func(*queryConfig)

type queryConfig struct {
	segment    int
	hasSegment bool
}

// InSegment selects the recording segment a query refers to. Queries
// on a single-segment Motion may omit it; with several segments it is
// mandatory.
func InSegment(index int) QueryOption {
	return func(c *queryConfig) {
		c.segment = index
		c.hasSegment = true
	}
}
