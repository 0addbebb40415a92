package layout

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"hello world", []string{"hello", "world"}},
		{"ab_1 cd2", []string{"ab_1", "cd2"}},
		// 汉字与标点各自成词。
		{"恭贺新禧", []string{"恭", "贺", "新", "禧"}},
		{"a,b", []string{"a", ",", "b"}},
		// 全角空格同样是分隔。
		{"张三　李四", []string{"张", "三", "李", "四"}},
		{"  ", nil},
	}
	for _, c := range cases {
		if got := tokenize(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("tokenize(%q) = %v，期望 %v", c.in, got, c.want)
		}
	}
}

func TestWrapTextGreedy(t *testing.T) {
	// 字号 10 时每字宽 5pt："aaaa bbbb" 恰好 45pt 装得下，
	// 再加 "cccc" 超宽换行。
	w := wrapText(stubMeasurer{}, "aaaa bbbb cccc", "Main", 10, 45)
	want := []string{"aaaa bbbb", "cccc"}
	if !reflect.DeepEqual(w.Lines, want) {
		t.Fatalf("折行结果 %v，期望 %v", w.Lines, want)
	}
	if !almost(w.Height, 28) {
		t.Errorf("块高期望 28，得到 %g", w.Height)
	}
}

func TestWrapTextExplicitNewlines(t *testing.T) {
	// CRLF 归一，空段保留为空行。
	w := wrapText(stubMeasurer{}, "a\r\n\nb", "Main", 10, 100)
	want := []string{"a", "", "b"}
	if !reflect.DeepEqual(w.Lines, want) {
		t.Fatalf("折行结果 %v，期望 %v", w.Lines, want)
	}
	if !almost(w.Height, 42) {
		t.Errorf("块高期望 42，得到 %g", w.Height)
	}
}

func TestWrapTextOverlongWordTolerated(t *testing.T) {
	// 单词本身超宽时照常落行，不强拆。
	w := wrapText(stubMeasurer{}, "abcdefghijkl", "Main", 10, 20)
	if len(w.Lines) != 1 || w.Lines[0] != "abcdefghijkl" {
		t.Fatalf("超宽单词应整词落行，得到 %v", w.Lines)
	}
}

func TestWrapTextIdempotent(t *testing.T) {
	// 对已折好的行以空格重连再折一次，结果不变：
	// 词序列与宽度判定都与首次相同。
	inputs := []string{
		"aaaa bbbb cccc",
		"恭贺新禧 best wishes 2026",
		"代全家致贺 贺新居落成 阖家安康",
	}
	for _, in := range inputs {
		first := wrapText(stubMeasurer{}, in, "Main", 10, 45)
		again := wrapText(stubMeasurer{}, strings.Join(first.Lines, " "), "Main", 10, 45)
		if !reflect.DeepEqual(first.Lines, again.Lines) {
			t.Errorf("重折 %q 不稳定: %v → %v", in, first.Lines, again.Lines)
		}
	}
}

func TestWrapTextEmpty(t *testing.T) {
	w := wrapText(stubMeasurer{}, "", "Main", 10, 100)
	if len(w.Lines) != 1 || w.Lines[0] != "" {
		t.Fatalf("空文本应得一空行，得到 %v", w.Lines)
	}
}
