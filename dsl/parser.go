// Package dsl 解析礼金簿台账文件，基于 participle。
//
// 台账文件示例：
//
//	ledger "乔迁志喜" v1 {
//	  meta { subtitle: "丙午年三月" recorder: "王管事" }
//	  options { items-per-page: 12 show-cover: true color-name: #8b0000 }
//	  resources {
//	    font Main { src: "fonts/NotoSerifSC-Regular.ttf" }
//	    image cover { src: "assets/cover.png" }
//	  }
//	  entries {
//	    entry "张伟" 200 type "同事" { "代全家致贺" }
//	    entry "李娜" 500 text "伍佰元整"
//	    entry "王强" 100 abolished
//	  }
//	}
package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/lijinbu/ledger"
)

var (
	ledgerLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		// 分支从长到短排：Go 正则取首个命中的分支，
		// 短在前会把 #8b0000 切成 #8b0 加一个数字。
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}:]`},
	})

	ledgerParser = participle.MustBuild[File](
		participle.Lexer(ledgerLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// File 是台账文件的根节点。
type File struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Title    StringLiteral  `parser:"'ledger' @String"`
	Version  string         `parser:"@Ident"`
	Sections []*Section     `parser:"'{' @@* '}'"`
}

// Section 台账文件的顶层段落。
type Section struct {
	Meta      *KVBlock      `parser:"  'meta' @@"`
	Options   *KVBlock      `parser:"| 'options' @@"`
	Resources *ResourceList `parser:"| 'resources' @@"`
	Entries   *EntryList    `parser:"| 'entries' @@"`
}

// KVBlock 键值段（meta/options 共用）。
type KVBlock struct {
	Entries []*KV `parser:"'{' @@* '}'"`
}

// KV 一条键值赋写。
type KV struct {
	Key   string `parser:"@Ident ':'"`
	Value Value  `parser:"@@"`
}

// Value 键值段可取的值形态。
type Value struct {
	Str   *StringLiteral `parser:"  @String"`
	Num   *float64       `parser:"| @Number"`
	Color *string        `parser:"| @Color"`
	Ident *string        `parser:"| @Ident"`
}

// Text 把值还原为字符串，供配置装配统一处理。
func (v Value) Text() string {
	switch {
	case v.Str != nil:
		return string(*v.Str)
	case v.Num != nil:
		return strconv.FormatFloat(*v.Num, 'f', -1, 64)
	case v.Color != nil:
		return *v.Color
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// Float 把值读作数字；非数字返回 false。
func (v Value) Float() (float64, bool) {
	if v.Num != nil {
		return *v.Num, true
	}
	return 0, false
}

// Bool 把 true/false 标识读作布尔；其余返回 false。
func (v Value) Bool() (bool, bool) {
	if v.Ident == nil {
		return false, false
	}
	switch *v.Ident {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// ResourceList 字体与图片资源声明。
type ResourceList struct {
	Resources []*Resource `parser:"'{' @@* '}'"`
}

// Resource 单个资源：kind 为 font 或 image，src 为定位串
// （文件路径、http(s) 地址或 data: URI）。
type Resource struct {
	Kind string        `parser:"@('font'|'image')"`
	Name string        `parser:"@Ident"`
	Src  StringLiteral `parser:"'{' 'src' ':' @String '}'"`
}

// EntryList 礼金条目段。
type EntryList struct {
	Entries []*Entry `parser:"'{' @@* '}'"`
}

// Entry 一条礼金登记。花括号里的字符串是备注。
type Entry struct {
	Name      StringLiteral  `parser:"'entry' @String"`
	Amount    float64        `parser:"@Number"`
	Text      *StringLiteral `parser:"('text' @String)?"`
	Type      *StringLiteral `parser:"('type' @String)?"`
	Abolished bool           `parser:"@'abolished'?"`
	Remark    *StringLiteral `parser:"('{' @String '}')?"`
}

// StringLiteral 捕获时按 Go 字符串语法去引号。
type StringLiteral string

// Capture 实现 participle.Capture。
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse 从 io.Reader 解析台账文件。
func Parse(r io.Reader) (*File, error) {
	return ledgerParser.Parse("", r)
}

// ParseString 从字符串解析台账文件。
func ParseString(input string) (*File, error) {
	return ledgerParser.ParseString("", input)
}

// Records 把条目段转换为记账记录，保持书写顺序。
func (f *File) Records() []ledger.Record {
	var out []ledger.Record
	for _, sec := range f.Sections {
		if sec.Entries == nil {
			continue
		}
		for _, e := range sec.Entries.Entries {
			r := ledger.Record{
				Name:      string(e.Name),
				Amount:    e.Amount,
				Abolished: e.Abolished,
			}
			if e.Text != nil {
				r.AmountText = string(*e.Text)
			}
			if e.Type != nil {
				r.Type = string(*e.Type)
			}
			if e.Remark != nil {
				r.Remark = string(*e.Remark)
			}
			out = append(out, r)
		}
	}
	return out
}

// KVs 汇总 meta 与 options 段的键值（后写的覆盖先写的）。
func (f *File) KVs() map[string]Value {
	out := map[string]Value{}
	for _, sec := range f.Sections {
		var block *KVBlock
		switch {
		case sec.Meta != nil:
			block = sec.Meta
		case sec.Options != nil:
			block = sec.Options
		default:
			continue
		}
		for _, kv := range block.Entries {
			out[kv.Key] = kv.Value
		}
	}
	return out
}

// FontSources 与 ImageSources 返回资源名到定位串的映射。
func (f *File) FontSources() map[string]string  { return f.sources("font") }
func (f *File) ImageSources() map[string]string { return f.sources("image") }

func (f *File) sources(kind string) map[string]string {
	out := map[string]string{}
	for _, sec := range f.Sections {
		if sec.Resources == nil {
			continue
		}
		for _, res := range sec.Resources.Resources {
			if res.Kind == kind {
				out[res.Name] = string(res.Src)
			}
		}
	}
	return out
}
