package bench

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadResults(t *testing.T) {
	tab, err := ReadResultsFile(filepath.Join("testdata", "mixed.csv"))
	if err != nil {
		t.Fatal(err)
	}
	wantFiles := []string{"src/a.c", "src/b.c", "src/c.c"}
	if !reflect.DeepEqual(tab.Files, wantFiles) {
		t.Errorf("files: got %q, want %q", tab.Files, wantFiles)
	}
	want := map[string]map[string]float64{
		"src/a.c": {"baseline": 400, "inline": 300, "hbf": 100},
		"src/b.c": {"inline": 50, "hbf": 80},
		"src/c.c": {"baseline": 100, "hbf": 90},
	}
	if !reflect.DeepEqual(tab.Sizes, want) {
		t.Errorf("sizes: got %v, want %v", tab.Sizes, want)
	}
}

func TestReadResultsLastWins(t *testing.T) {
	tab, err := ReadResults(strings.NewReader("f,o,1\nf,o,2\nf,o,3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.Sizes["f"]["o"]; got != 3 {
		t.Errorf("got %v, want 3", got)
	}
	if len(tab.Files) != 1 {
		t.Errorf("got %d files, want 1", len(tab.Files))
	}
}

func TestReadResultsErrors(t *testing.T) {
	tests := []struct {
		in  string
		err string
	}{
		{"f,o\n", "line 1: want 3 columns, have 2"},
		{"f,o,1\nf\n", "line 2: want 3 columns, have 1"},
		{"f,o,1\nf,o,big\n", `line 2: invalid size "big"`},
		{"f,o,\n", `line 1: invalid size ""`},
	}
	for _, test := range tests {
		_, err := ReadResults(strings.NewReader(test.in))
		if err == nil {
			t.Errorf("%q: expected error", test.in)
			continue
		}
		if err.Error() != test.err {
			t.Errorf("%q: got error %q, want %q", test.in, err, test.err)
		}
	}
}

func TestReadResultsFileMissing(t *testing.T) {
	_, err := ReadResultsFile(filepath.Join("testdata", "does-not-exist.csv"))
	if !os.IsNotExist(err) {
		t.Errorf("got %v, want not-exist error", err)
	}
}

func TestReadReports(t *testing.T) {
	files := []string{
		filepath.Join("testdata", "results.csv"),
		filepath.Join("testdata", "mixed.csv"),
	}
	reports, err := ReadReports(context.Background(), files)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if reports[0].Name != "results" || reports[1].Name != "mixed" {
		t.Errorf("wrong report names %q, %q", reports[0].Name, reports[1].Name)
	}
	if len(reports[1].Table.Files) != 3 {
		t.Errorf("mixed: got %d files, want 3", len(reports[1].Table.Files))
	}
}

func TestReadReportsError(t *testing.T) {
	files := []string{
		filepath.Join("testdata", "results.csv"),
		filepath.Join("testdata", "does-not-exist.csv"),
	}
	if _, err := ReadReports(context.Background(), files); err == nil {
		t.Fatal("expected error")
	}
}
