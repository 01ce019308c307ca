package main

import (
	"fmt"
	"log"
	"os"

	bench "github.com/anghabench/sizebench"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "<results A> <results B>")
		os.Exit(1)
	}

	elapsed := bench.Stopwatch()
	reports := bench.MustReadReports(os.Args[1:3])
	log.Printf("loaded %d reports in %v", len(reports), elapsed())

	a, b := reports[0], reports[1]
	deltas := bench.Compare(bench.Summarize(a.Table), bench.Summarize(b.Table))
	if err := bench.WriteDeltas(os.Stdout, a.Name, b.Name, deltas); err != nil {
		log.Fatal(err)
	}
}
