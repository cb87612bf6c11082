package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimes parses CLI time arguments into a flat slice. Each argument
// is either a single number or an inclusive range "start..end:step"
// (":step" optional, default 1). Empty arguments are skipped.
func ParseTimes(args []string) ([]float64, error) {
	var out []float64
	for _, a := range args {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if !strings.Contains(a, "..") {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid time %q", a)
			}
			out = append(out, v)
			continue
		}
		rng, stepStr, hasStep := strings.Cut(a, ":")
		startStr, endStr, _ := strings.Cut(rng, "..")
		start, err := strconv.ParseFloat(startStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range start in %q", a)
		}
		end, err := strconv.ParseFloat(endStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range end in %q", a)
		}
		step := 1.0
		if hasStep {
			step, err = strconv.ParseFloat(stepStr, 64)
			if err != nil || step <= 0 {
				return nil, fmt.Errorf("invalid range step in %q", a)
			}
		}
		if end < start {
			return nil, fmt.Errorf("invalid range %q: end before start", a)
		}
		// generate by index so step round-off cannot drift the count
		n := int((end-start)/step+1e-9) + 1
		for i := 0; i < n; i++ {
			out = append(out, start+float64(i)*step)
		}
	}
	return out, nil
}

// FmtFloat formats v compactly for CSV-like output.
func FmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
