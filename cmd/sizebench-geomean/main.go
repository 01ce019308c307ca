// Command sizebench-geomean summarizes results.csv in the current directory.
// It prints the geometric mean size of every optimization and the average
// percentage decrease of each optimization relative to the baseline.
package main

import (
	"io"
	"log"
	"os"

	bench "github.com/anghabench/sizebench"
)

const resultsFile = "results.csv"

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer) error {
	t, err := bench.ReadResultsFile(resultsFile)
	if err != nil {
		return err
	}
	return bench.WriteSummary(w, bench.Summarize(t))
}
