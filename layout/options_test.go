package layout

import "testing"

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#8b0000", Color{139, 0, 0}, true},
		{"#fff", Color{255, 255, 255}, true},
		{"#8b0000ff", Color{139, 0, 0}, true},
		{" #1e1e1e ", Color{30, 30, 30}, true},
		{"red", Color{}, false},
		{"", Color{}, false},
		{"#12", Color{}, false},
		{"#gggggg", Color{}, false},
	}
	for _, c := range cases {
		got, ok := ParseColor(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseColor(%q) = %v,%v，期望 %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestRegionColorFallsBack(t *testing.T) {
	o := Options{Colors: map[string]string{
		ColorName:   "#8b0000",
		ColorAmount: "not-a-color",
	}}
	if got := o.regionColor(ColorName); got != (Color{139, 0, 0}) {
		t.Errorf("覆盖色未生效: %v", got)
	}
	// 解析失败与缺键都静默退回默认墨色。
	if got := o.regionColor(ColorAmount); got != defaultInk {
		t.Errorf("坏颜色串应退回默认墨色: %v", got)
	}
	if got := o.regionColor(ColorLabel); got != defaultInk {
		t.Errorf("缺键应退回默认墨色: %v", got)
	}
}

func TestOptionsNormalizeDefaults(t *testing.T) {
	o := Options{}
	o.Normalize()
	if o.ItemsPerPage != 12 {
		t.Errorf("每页格数默认 12，得到 %d", o.ItemsPerPage)
	}
	if o.CellLabel != "礼金" || o.Font != "Main" {
		t.Errorf("题词/字体默认值异常: %q %q", o.CellLabel, o.Font)
	}
	if o.InitialFontSize != 22 || o.MinFontSize != 8 || o.LetterSpacing != 2 {
		t.Errorf("字号默认值异常: %g %g %g", o.InitialFontSize, o.MinFontSize, o.LetterSpacing)
	}
	if o.FooterTemplate == "" || o.Now.IsZero() {
		t.Errorf("页脚模板与时间戳应有默认")
	}
}
