// Package conv provides 1-D convolution and correlation routines for
// motion-estimation workloads.
//
// The package offers two convolution strategies:
//
//   - Direct convolution: Simple O(N*M) time-domain convolution, best for very short kernels (< 64 samples)
//   - FFT convolution: Frequency-domain convolution, efficient for long activity histograms
//
// The package also provides correlation functions for matching activity
// profiles across time or depth, and a batched correlation wrapper used to
// apply spatial-window kernels over many histograms at once.
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)  // Auto-selects best algorithm
//	result, err := conv.Direct(signal, kernel)    // Force direct convolution
//	result, err := conv.Correlate(a, b)           // Cross-correlation
//
// # Algorithm Selection
//
// The [Convolve] function automatically selects the best algorithm based on
// kernel size:
//   - Kernel length < 64: Direct convolution
//   - Kernel length >= 64: FFT convolution
//
// # Correlation
//
// Cross-correlation computes how similar two signals are as a function of
// displacement. Motion estimators use it to find the shift that best aligns
// two activity histograms:
//
//	corr, err := conv.Correlate(histogram, reference)
//	peakIdx, peakVal := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(peakIdx, len(reference))
//
// # Batched correlation
//
// [CorrelateBatch] applies a bank of kernels to a batch of equally sized
// signals with configurable padding, mirroring a grouped 1-D convolution
// layer with a single input channel:
//
//	out, err := conv.CorrelateBatch(histograms, kernels, conv.PadSame)
package conv
