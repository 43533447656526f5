// Command motioninfo summarizes saved motion estimates.
//
// Usage:
//
//	motioninfo [flags] folder [folder ...]
//
// Each folder must contain a Motion saved by this module or a
// compatible tool. With -plot, the displacement traces of the first
// folder are written as a PNG line chart, one line per spatial bin.
//
// Examples:
//
//	motioninfo ./motion
//	motioninfo run1/motion run2/motion
//	motioninfo -plot drift.png -segment 1 ./motion
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-motion/motion"
)

type loadedMotion struct {
	folder string
	m      *motion.Motion
}

func main() {
	plotFile := flag.String("plot", "", "write displacement traces of the first folder to this PNG file")
	segment := flag.Int("segment", 0, "segment to plot")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: motioninfo [flags] folder [folder ...]\n\n")
		fmt.Fprintf(os.Stderr, "Summarizes motion estimates saved as folders of .npy arrays.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  motioninfo ./motion\n")
		fmt.Fprintf(os.Stderr, "  motioninfo -plot drift.png -segment 1 ./motion\n")
	}
	flag.Parse()

	folders := flag.Args()
	if len(folders) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var rows []loadedMotion
	for _, folder := range folders {
		m, err := motion.Load(folder)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		rows = append(rows, loadedMotion{folder, m})
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "error: no motion folders loaded\n")
		os.Exit(1)
	}

	printSummary(rows)

	if *plotFile != "" {
		if err := plotDisplacement(rows[0].m, *segment, *plotFile); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *plotFile)
	}
}

func printSummary(rows []loadedMotion) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Folder\tKind\tSegments\tSpatial bins\tDirection\tMethod\tSpan [s]\tDrift [um]\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t--------\t------------\t---------\t------\t--------\t----------\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, row := range rows {
		kind := "non-rigid"
		if row.m.Rigid() {
			kind = "rigid"
		}
		span, lo, hi := motionStats(row.m)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%.2f\t%.1f..%.1f\n",
			row.folder,
			kind,
			row.m.NumSegments(),
			len(row.m.SpatialBins()),
			row.m.Direction(),
			row.m.Interpolation(),
			span,
			lo, hi,
		); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// motionStats returns the total recorded time span and the global
// displacement range across all segments.
func motionStats(m *motion.Motion) (span, lo, hi float64) {
	for seg := 0; seg < m.NumSegments(); seg++ {
		bins, err := m.TemporalBins(seg)
		if err != nil {
			continue
		}
		span += bins[len(bins)-1] - bins[0]

		disp, err := m.Displacement(seg)
		if err != nil {
			continue
		}
		dLo, dHi := mat.Min(disp), mat.Max(disp)
		if seg == 0 || dLo < lo {
			lo = dLo
		}
		if seg == 0 || dHi > hi {
			hi = dHi
		}
	}
	return span, lo, hi
}

func plotDisplacement(m *motion.Motion, segment int, path string) error {
	times, err := m.TemporalBins(segment)
	if err != nil {
		return err
	}
	disp, err := m.Displacement(segment)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Estimated motion, segment %d", segment)
	p.X.Label.Text = "Time [s]"
	p.Y.Label.Text = "Displacement [um]"

	for s, depth := range m.SpatialBins() {
		pts := make(plotter.XYs, len(times))
		for j := range times {
			pts[j] = plotter.XY{X: times[j], Y: disp.At(j, s)}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(s)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%.0f um", depth), line)
	}
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}
