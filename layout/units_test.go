package layout

import "testing"

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{"12pt", 12, true},
		{"10mm", 10 * MmToPt, true},
		{"2cm", 20 * MmToPt, true},
		{"1in", 72, true},
		{" 8.5 pt ", 8.5, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-3", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseSize(c.in)
		if ok != c.ok || !almost(got, c.want) {
			t.Errorf("ParseSize(%q) = %g,%v，期望 %g,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}
