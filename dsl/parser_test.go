package dsl

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ByLCY/lijinbu/ledger"
)

const sampleLedger = `
// 乔迁宴台账
ledger "乔迁志喜" v1 {
  meta {
    subtitle: "丙午年三月"
    recorder: "王管事"
  }
  options {
    items-per-page: 12
    show-cover: true
    color-name: #8b0000
    initial-font-size: "22pt"
  }
  resources {
    font Main { src: "fonts/NotoSerifSC-Regular.ttf" }
    image cover { src: "assets/cover.png" }
  }
  entries {
    entry "张伟" 200 type "同事" { "代全家致贺" }
    entry "李娜" 500 text "伍佰元整"
    entry "王强" 100 abolished
  }
}
`

func TestParseSample(t *testing.T) {
	f, err := ParseString(sampleLedger)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if string(f.Title) != "乔迁志喜" || f.Version != "v1" {
		t.Errorf("标题/版本不符: %q %q", f.Title, f.Version)
	}

	want := []ledger.Record{
		{Name: "张伟", Amount: 200, Type: "同事", Remark: "代全家致贺"},
		{Name: "李娜", Amount: 500, AmountText: "伍佰元整"},
		{Name: "王强", Amount: 100, Abolished: true},
	}
	if diff := cmp.Diff(want, f.Records()); diff != "" {
		t.Errorf("条目转换不符（-want +got）:\n%s", diff)
	}
}

func TestParseKVs(t *testing.T) {
	f, err := ParseString(sampleLedger)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	kvs := f.KVs()

	if got := kvs["subtitle"].Text(); got != "丙午年三月" {
		t.Errorf("subtitle = %q", got)
	}
	if n, ok := kvs["items-per-page"].Float(); !ok || n != 12 {
		t.Errorf("items-per-page = %v,%v", n, ok)
	}
	if b, ok := kvs["show-cover"].Bool(); !ok || !b {
		t.Errorf("show-cover = %v,%v", b, ok)
	}
	if got := kvs["color-name"].Text(); got != "#8b0000" {
		t.Errorf("color-name = %q", got)
	}
	if got := kvs["initial-font-size"].Text(); got != "22pt" {
		t.Errorf("initial-font-size = %q", got)
	}
	// recorder 不是布尔标识。
	if _, ok := kvs["recorder"].Bool(); ok {
		t.Errorf("字符串值不应读出布尔")
	}
}

func TestParseResources(t *testing.T) {
	f, err := ParseString(sampleLedger)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	fonts := f.FontSources()
	if fonts["Main"] != "fonts/NotoSerifSC-Regular.ttf" {
		t.Errorf("字体资源不符: %v", fonts)
	}
	images := f.ImageSources()
	if images["cover"] != "assets/cover.png" {
		t.Errorf("图片资源不符: %v", images)
	}
}

// 六位与八位色值必须整体成一个词元，不得被数字规则截断。
func TestParseColorLiterals(t *testing.T) {
	f, err := ParseString(`ledger "色" v1 { options {
	  color-name: #8b0000
	  color-amount: #1e1e1eff
	  color-label: #fff
	} }`)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	kvs := f.KVs()
	for key, want := range map[string]string{
		"color-name":   "#8b0000",
		"color-amount": "#1e1e1eff",
		"color-label":  "#fff",
	} {
		if got := kvs[key].Text(); got != want {
			t.Errorf("%s = %q，期望 %q", key, got, want)
		}
	}
}

func TestParseReader(t *testing.T) {
	if _, err := Parse(strings.NewReader(sampleLedger)); err != nil {
		t.Fatalf("Reader 入口解析失败: %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := ParseString("account {}"); err == nil {
		t.Errorf("非台账文本应报错")
	}
	if _, err := ParseString(`ledger "x" v1 { entries { entry 100 } }`); err == nil {
		t.Errorf("缺姓名的条目应报错")
	}
}
