package bench

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

var separator = strings.Repeat("-", 50)

// WriteSummary prints the geometric mean and percentage decrease tables.
func WriteSummary(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Geometric Mean Sizes:")
	fmt.Fprintln(bw, separator)
	for _, st := range s.GeoMeans {
		fmt.Fprintf(bw, "%-15s %.2f\n", st.Opt, st.Value)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Percentage Decrease from Baseline (averaged per-entry):")
	fmt.Fprintln(bw, separator)
	for _, st := range s.AvgPctDecreases {
		fmt.Fprintf(bw, "%-15s %+.2f%%\n", st.Opt, st.Value)
	}
	return bw.Flush()
}

// Delta compares the geometric mean size of an optimization in two reports.
type Delta struct {
	Opt   string
	A, B  float64
	OnlyA bool
	OnlyB bool
}

// Change returns the relative change from A to B in percent.
func (d Delta) Change() float64 {
	return (d.B - d.A) / d.A * 100
}

// Compare matches the geometric means of a and b by optimization name.
func Compare(a, b Summary) []Delta {
	var deltas []Delta
	for _, st := range a.GeoMeans {
		d := Delta{Opt: st.Opt, A: st.Value}
		if v, ok := Lookup(b.GeoMeans, st.Opt); ok {
			d.B = v
		} else {
			d.OnlyA = true
		}
		deltas = append(deltas, d)
	}
	for _, st := range b.GeoMeans {
		if _, ok := Lookup(a.GeoMeans, st.Opt); !ok {
			deltas = append(deltas, Delta{Opt: st.Opt, B: st.Value, OnlyB: true})
		}
	}
	sort.Slice(deltas, func(i, j int) bool { return deltas[i].Opt < deltas[j].Opt })
	return deltas
}

// WriteDeltas prints the comparison of reports a and b.
func WriteDeltas(w io.Writer, a, b string, deltas []Delta) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "A: %s B: %s\n", a, b)
	fmt.Fprintln(bw, separator)
	for _, d := range deltas {
		switch {
		case d.OnlyA:
			fmt.Fprintf(bw, "%-15s %12.2f %12s  only in A\n", d.Opt, d.A, "")
		case d.OnlyB:
			fmt.Fprintf(bw, "%-15s %12s %12.2f  only in B\n", d.Opt, "", d.B)
		default:
			fmt.Fprintf(bw, "%-15s %12.2f %12.2f  %+.2f%%\n", d.Opt, d.A, d.B, d.Change())
		}
	}
	return bw.Flush()
}
