package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aristanetworks/goarista/monotime"
	"golang.org/x/sync/errgroup"
)

// Baseline is the optimization name that percentage decreases are measured against.
const Baseline = "baseline"

// Record is a single row of a results file.
type Record struct {
	File string  // path of the benchmarked source file
	Opt  string  // optimization name
	Size float64 // output size
}

// Table holds the sizes reported for each file and optimization.
// A later record for the same file and optimization replaces the earlier one.
type Table struct {
	Files []string // file paths in order of first appearance
	Sizes map[string]map[string]float64
}

func NewTable() *Table {
	return &Table{Sizes: make(map[string]map[string]float64)}
}

// Add stores r in the table.
func (t *Table) Add(r Record) {
	opts := t.Sizes[r.File]
	if opts == nil {
		opts = make(map[string]float64)
		t.Sizes[r.File] = opts
		t.Files = append(t.Files, r.File)
	}
	opts[r.Opt] = r.Size
}

// ReadResults reads comma-separated records from r. The first three columns
// of each row are the file path, optimization name and size. There is no header.
func ReadResults(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	t := NewTable()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return t, nil
		} else if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if len(row) < 3 {
			return nil, fmt.Errorf("line %d: want 3 columns, have %d", line, len(row))
		}
		size, err := ParseSize(row[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		t.Add(Record{File: row[0], Opt: row[1], Size: size})
	}
}

// ReadResultsFile reads the results table in file.
func ReadResultsFile(file string) (*Table, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	t, err := ReadResults(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return t, nil
}

// MustReadResults is like ReadResultsFile but exits the process on error.
func MustReadResults(file string) *Table {
	t, err := ReadResultsFile(file)
	if err != nil {
		log.Fatal(err)
	}
	return t
}

type Report struct {
	Name  string
	Table *Table
}

// ReadReports reads all given results files concurrently.
// Reports are returned in argument order.
func ReadReports(ctx context.Context, files []string) ([]Report, error) {
	reports := make([]Report, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := ReadResultsFile(file)
			if err != nil {
				return err
			}
			reports[i] = Report{
				Table: t,
				Name:  strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// MustReadReports reads all given results files.
func MustReadReports(files []string) []Report {
	reports, err := ReadReports(context.Background(), files)
	if err != nil {
		log.Fatal(err)
	}
	return reports
}

// Stopwatch returns a function reporting the time elapsed since Stopwatch was called.
func Stopwatch() func() time.Duration {
	start := mononow()
	return func() time.Duration { return mononow() - start }
}

func mononow() time.Duration {
	return time.Duration(monotime.Now())
}
