package conv

import "fmt"

// Padding selects how a batched correlation pads its inputs.
// Use PadSame, PadValid or PadBy; the zero value is invalid.
type Padding struct {
	kind padKind
	n    int
}

type padKind int

const (
	padUnset padKind = iota
	padSame
	padValid
	padExplicit
)

// PadSame zero-pads symmetrically so the output length equals the input length.
var PadSame = Padding{kind: padSame}

// PadValid applies no padding; only fully overlapping positions are kept.
// The kernel length must be odd, giving an output of length
// len(input) - (kernel length - 1).
var PadValid = Padding{kind: padValid}

// PadBy pads both ends with n zeros before a valid-mode correlation,
// giving an output of length len(input) - kernel length + 1 + 2*n.
// n must not be negative.
func PadBy(n int) Padding {
	return Padding{kind: padExplicit, n: n}
}

// String returns a readable form of the padding for error messages.
func (p Padding) String() string {
	switch p.kind {
	case padSame:
		return "same"
	case padValid:
		return "valid"
	case padExplicit:
		return fmt.Sprintf("pad(%d)", p.n)
	default:
		return "unset"
	}
}

// CorrelateBatch correlates every input signal with every kernel.
//
// inputs holds batch signals of one shared length, kernels holds filter
// taps of one shared length. The result is indexed [input][kernel] and each
// row has the output length implied by the padding. This mirrors a grouped
// 1-D convolution layer with a single input channel per signal.
func CorrelateBatch(inputs, kernels [][]float64, pad Padding) ([][][]float64, error) {
	if len(inputs) == 0 || len(inputs[0]) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernels) == 0 || len(kernels[0]) == 0 {
		return nil, ErrEmptyKernel
	}

	length := len(inputs[0])
	for _, in := range inputs[1:] {
		if len(in) != length {
			return nil, fmt.Errorf("%w: inputs %d and %d", ErrRaggedBatch, length, len(in))
		}
	}

	kernelSize := len(kernels[0])
	for _, k := range kernels[1:] {
		if len(k) != kernelSize {
			return nil, fmt.Errorf("%w: kernels %d and %d", ErrRaggedBatch, kernelSize, len(k))
		}
	}

	correlateRow, err := resolvePadding(pad, length, kernelSize)
	if err != nil {
		return nil, err
	}

	out := make([][][]float64, len(inputs))
	for b, in := range inputs {
		out[b] = make([][]float64, len(kernels))
		for f, k := range kernels {
			row, err := correlateRow(in, k)
			if err != nil {
				return nil, err
			}
			out[b][f] = row
		}
	}

	return out, nil
}

// resolvePadding validates pad against the batch geometry and returns the
// per-row correlation to apply.
func resolvePadding(pad Padding, length, kernelSize int) (func(in, k []float64) ([]float64, error), error) {
	switch pad.kind {
	case padSame:
		return func(in, k []float64) ([]float64, error) {
			return CorrelateMode(in, k, ModeSame)
		}, nil

	case padValid:
		if kernelSize%2 == 0 {
			return nil, fmt.Errorf("%w: %d", ErrEvenKernel, kernelSize)
		}
		if kernelSize > length {
			return nil, fmt.Errorf("%w: kernel %d, input %d", ErrKernelTooLong, kernelSize, length)
		}
		return func(in, k []float64) ([]float64, error) {
			return CorrelateMode(in, k, ModeValid)
		}, nil

	case padExplicit:
		if pad.n < 0 {
			return nil, fmt.Errorf("conv: negative padding %d", pad.n)
		}
		if kernelSize > length+2*pad.n {
			return nil, fmt.Errorf("%w: kernel %d, padded input %d", ErrKernelTooLong, kernelSize, length+2*pad.n)
		}
		return func(in, k []float64) ([]float64, error) {
			padded := make([]float64, len(in)+2*pad.n)
			copy(padded[pad.n:], in)
			return CorrelateMode(padded, k, ModeValid)
		}, nil

	default:
		return nil, fmt.Errorf("conv: unknown padding %s", pad)
	}
}
