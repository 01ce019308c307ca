package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	bench "github.com/anghabench/sizebench"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func main() {
	var (
		width    = flag.Int("width", 15, "with of plot in cm")
		height   = flag.Int("height", 10, "height of plot in cm")
		plotType = flag.String("plot", "geomean", "type of plot (geomean, pct)")
		format   = flag.String("format", "png", "image format (png, svg, pdf)")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("need exactly one results file")
	}
	elapsed := bench.Stopwatch()
	t := bench.MustReadResults(flag.Arg(0))
	plt, err := plot.New()
	if err != nil {
		log.Fatal(err)
	}
	switch *plotType {
	case "geomean":
		plotGeoMeans(plt, t)
	case "pct":
		plotPctDecreases(plt, t)
	default:
		log.Fatalf("unknown plot type %q", *plotType)
	}
	wt, err := plt.WriterTo(vg.Length(*width)*vg.Centimeter, vg.Length(*height)*vg.Centimeter, *format)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := wt.WriteTo(os.Stdout); err != nil {
		log.Fatal(err)
	}
	log.Printf("rendered %s plot in %v", *plotType, elapsed())
}

// plotGeoMeans adds one bar per optimization showing its geometric mean size.
func plotGeoMeans(plt *plot.Plot, t *bench.Table) {
	plt.Title.Text = "geometric mean size"
	plt.Y.Label.Text = "size"
	addBars(plt, t.GeoMeans(), 0)
}

// plotPctDecreases adds one bar per optimization showing the average decrease
// from the baseline.
func plotPctDecreases(plt *plot.Plot, t *bench.Table) {
	plt.Title.Text = "decrease from baseline"
	plt.Y.Label.Text = "decrease"
	plt.Y.Tick.Marker = percentTicks{}
	addBars(plt, t.AvgPctDecreases(), 1)
}

func addBars(plt *plot.Plot, stats []bench.Stat, colorIndex int) {
	vals, names := barValues(stats)
	if len(vals) == 0 {
		log.Printf("Warning: nothing to plot")
		return
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		log.Fatal(err)
	}
	bars.Color = plotutil.Color(colorIndex)
	plt.Add(bars)
	plt.NominalX(names...)
}

// barValues drops values that cannot be drawn as a bar.
func barValues(stats []bench.Stat) (plotter.Values, []string) {
	var (
		vals  plotter.Values
		names []string
	)
	for _, st := range stats {
		if math.IsNaN(st.Value) || math.IsInf(st.Value, 0) {
			log.Printf("Warning: skipping %s, value is %v", st.Opt, st.Value)
			continue
		}
		vals = append(vals, st.Value)
		names = append(names, st.Opt)
	}
	return vals, names
}

// percentTicks labels the default ticks as percentages.
type percentTicks struct{}

func (percentTicks) Ticks(min, max float64) []plot.Tick {
	t := plot.DefaultTicks{}.Ticks(min, max)
	for i := range t {
		if t[i].Label != "" {
			t[i].Label = fmt.Sprintf("%g%%", t[i].Value)
		}
	}
	return t
}
