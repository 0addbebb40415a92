package ledger

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{200, "¥200"},
		{12000, "¥12,000"},
		{66.6, "¥66.60"},
		{0, "¥0"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.in); got != c.want {
			t.Errorf("FormatAmount(%v) = %q，期望 %q", c.in, got, c.want)
		}
	}
}

func TestCapitalAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{200, "金贰佰元整"},
		{1200, "金壹仟贰佰元整"},
		{10005, "金壹万零伍元整"},
		{1005000, "金壹佰万零伍仟元整"},
		{100000000, "金壹亿元整"},
		{66.6, "金陆拾陆元陆角"},
		{88.88, "金捌拾捌元捌角捌分"},
		// 角位缺空时补零。
		{0.05, "金零元零伍分"},
		{0, "金零元整"},
		{-120, "负金壹佰贰拾元整"},
	}
	for _, c := range cases {
		if got := CapitalAmount(c.in); got != c.want {
			t.Errorf("CapitalAmount(%v) = %q，期望 %q", c.in, got, c.want)
		}
	}
}

func TestDisplayAmountText(t *testing.T) {
	r := Record{Amount: 500, AmountText: "伍佰元整"}
	if got := r.DisplayAmountText(); got != "伍佰元整" {
		t.Errorf("自带文字应优先: %q", got)
	}
	r.AmountText = ""
	if got := r.DisplayAmountText(); got != "金伍佰元整" {
		t.Errorf("缺失时按数额生成: %q", got)
	}
}
