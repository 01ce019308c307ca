package bench

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSize parses the size column of a results row.
// Surrounding whitespace is ignored.
func ParseSize(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return v, nil
}
