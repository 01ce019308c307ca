package bench

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stat is an aggregate value for one optimization.
type Stat struct {
	Opt   string
	Value float64
}

// Groups collects the sizes of each optimization across all files.
func (t *Table) Groups() map[string][]float64 {
	groups := make(map[string][]float64)
	for _, file := range t.Files {
		for opt, size := range t.Sizes[file] {
			groups[opt] = append(groups[opt], size)
		}
	}
	return groups
}

// PctDecreases collects, for every file with a baseline size, the percentage
// by which each other optimization shrinks the file relative to the baseline.
// Files without a baseline are skipped.
func (t *Table) PctDecreases() map[string][]float64 {
	groups := make(map[string][]float64)
	for _, file := range t.Files {
		opts := t.Sizes[file]
		base, ok := opts[Baseline]
		if !ok {
			continue
		}
		for opt, size := range opts {
			if opt == Baseline {
				continue
			}
			groups[opt] = append(groups[opt], PctDecrease(base, size))
		}
	}
	return groups
}

// PctDecrease returns the decrease from base to size in percent.
// A zero base yields an infinite or NaN result.
func PctDecrease(base, size float64) float64 {
	return (base - size) / base * 100
}

// GeoMeans returns the geometric mean size of each optimization, sorted by name.
// Zero sizes produce 0 and negative sizes produce NaN.
func (t *Table) GeoMeans() []Stat {
	return summarize(t.Groups(), func(x []float64) float64 {
		return stat.GeometricMean(x, nil)
	})
}

// AvgPctDecreases returns the mean percentage decrease from the baseline
// for each optimization, sorted by name.
func (t *Table) AvgPctDecreases() []Stat {
	return summarize(t.PctDecreases(), func(x []float64) float64 {
		return stat.Mean(x, nil)
	})
}

func summarize(groups map[string][]float64, fn func([]float64) float64) []Stat {
	stats := make([]Stat, 0, len(groups))
	for opt, values := range groups {
		stats = append(stats, Stat{Opt: opt, Value: fn(values)})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Opt < stats[j].Opt })
	return stats
}

// Summary holds both result tables of a results file.
type Summary struct {
	GeoMeans        []Stat
	AvgPctDecreases []Stat
}

func Summarize(t *Table) Summary {
	return Summary{GeoMeans: t.GeoMeans(), AvgPctDecreases: t.AvgPctDecreases()}
}

// Lookup returns the value recorded for opt.
func Lookup(stats []Stat, opt string) (float64, bool) {
	i := sort.Search(len(stats), func(i int) bool { return stats[i].Opt >= opt })
	if i < len(stats) && stats[i].Opt == opt {
		return stats[i].Value, true
	}
	return 0, false
}
