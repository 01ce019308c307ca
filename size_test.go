package bench

import (
	"math"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in string
		v  float64
	}{
		{"82", 82},
		{"82.5", 82.5},
		{" 82 ", 82},
		{"1e3", 1000},
		{"0", 0},
		{"-4", -4},
	}
	for _, test := range tests {
		s, err := ParseSize(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if s != test.v {
			t.Errorf("%q: got %v, want %v", test.in, s, test.v)
		}
	}
}

func TestParseSizeInf(t *testing.T) {
	s, err := ParseSize("inf")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(s, 1) {
		t.Errorf("got %v, want +Inf", s)
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "82kb", "1,5"} {
		if _, err := ParseSize(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}
