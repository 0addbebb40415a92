package layout

import (
	"strconv"
	"strings"
)

// Unit helpers. Layout runs entirely in PDF points; the canvas backend
// converts to millimeters at its boundary, and ledger config may write
// sizes with an explicit unit suffix.

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// ParseSize parses a config size string into points. Accepted forms:
// bare numbers (already pt), "<n>pt", "<n>mm", "<n>cm", "<n>in".
// The second return value is false for anything unparsable; the caller
// keeps its default in that case.
func ParseSize(value string) (float64, bool) {
	v := strings.TrimSpace(strings.ToLower(value))
	if v == "" {
		return 0, false
	}
	factor := 1.0
	switch {
	case strings.HasSuffix(v, "pt"):
		v = strings.TrimSuffix(v, "pt")
	case strings.HasSuffix(v, "mm"):
		v = strings.TrimSuffix(v, "mm")
		factor = MmToPt
	case strings.HasSuffix(v, "cm"):
		v = strings.TrimSuffix(v, "cm")
		factor = 10 * MmToPt
	case strings.HasSuffix(v, "in"):
		v = strings.TrimSuffix(v, "in")
		factor = 72
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f * factor, true
}
