package layout

import (
	"strconv"
	"strings"
	"time"
)

// Measurer 是注入布局阶段的字形度量后端：
// 布局只通过它询问文本宽度与行高，不接触任何真实文档对象。
type Measurer interface {
	// TextWidth 返回 text 以 size（pt）排印时的宽度（pt）。
	TextWidth(text, font string, size float64) float64
	// LineHeight 返回字体在 size（pt）下的行高（pt）。
	LineHeight(font string, size float64) float64
}

// ColumnOrder 竖排文本块的分栏阅读方向。
type ColumnOrder int

const (
	// ColumnsLeftToRight 自左向右分栏（默认，与既有版面保持一致）。
	ColumnsLeftToRight ColumnOrder = iota
	// ColumnsRightToLeft 自右向左分栏（传统竖排读序）。
	ColumnsRightToLeft
)

// 颜色语义键，配置里用这些键逐区覆盖用色。
const (
	ColorName     = "name"
	ColorLabel    = "label"
	ColorAmount   = "amount"
	ColorCover    = "cover"
	ColorPageInfo = "pageinfo"
)

// Options 配置一次礼金簿排版。零值字段由 normalize 补默认。
type Options struct {
	Measurer Measurer

	ItemsPerPage int

	Title    string
	Subtitle string
	Recorder string
	// CellLabel 每格中栏的固定题词。
	CellLabel string

	// Font 正文字体资源名；CoverImage 封面底图资源名，空则不画底图。
	Font       string
	CoverImage string

	// Colors 语义键 → 颜色串（如 "#8b0000"）。解析失败时静默退回默认墨色。
	Colors map[string]string

	ShowCover    bool
	ShowAppendix bool
	ShowSummary  bool
	ShowTrailing bool

	// 多册装订：Part 为本册序号（1 起），PartCount 为总册数，
	// PartGrandTotal 为各册累计总额（>0 时在汇总附表中加一行）。
	Part           int
	PartCount      int
	PartGrandTotal float64

	InitialFontSize float64
	MinFontSize     float64
	LetterSpacing   float64
	ColumnOrder     ColumnOrder

	// FooterTemplate 附表页脚模板，可引用 ${page} ${pages} ${part}。
	FooterTemplate string

	// Now 生成时间戳；零值时取 time.Now()。
	Now time.Time
}

// Normalize 给零值字段补默认。Build 内部总会调用；
// 需要在进入布局前读取缺省值（如每页格数）的调用方也可先行调用，
// 重复调用无副作用。
func (o *Options) Normalize() {
	if o.ItemsPerPage <= 0 {
		o.ItemsPerPage = 12
	}
	if o.CellLabel == "" {
		o.CellLabel = "礼金"
	}
	if o.Font == "" {
		o.Font = "Main"
	}
	if o.InitialFontSize <= 0 {
		o.InitialFontSize = 22
	}
	if o.MinFontSize <= 0 {
		o.MinFontSize = 8
	}
	if o.LetterSpacing < 0 {
		o.LetterSpacing = 0
	}
	if o.LetterSpacing == 0 {
		o.LetterSpacing = 2
	}
	if o.FooterTemplate == "" {
		o.FooterTemplate = "附页 第 ${page} 页 / 共 ${pages} 页"
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
}

// defaultInk 是所有区域的兜底墨色。
var defaultInk = Color{R: 30, G: 30, B: 30}

// regionColor 取语义键对应的覆盖色；缺失或解析失败时退回默认墨色。
// 退回在调用侧发生，解析本身只报告成败（见 ParseColor）。
func (o *Options) regionColor(key string) Color {
	if c, ok := ParseColor(o.Colors[key]); ok {
		return c
	}
	return defaultInk
}

// ParseColor 解析 #RGB/#RRGGBB/#RRGGBBAA 形式的颜色串。
// 第二个返回值为 false 表示无法解析，调用方自行决定替代色；
// 解析失败从不视为错误。
func ParseColor(value string) (Color, bool) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return Color{}, false
	}
	value = strings.TrimPrefix(value, "#")
	switch len(value) {
	case 3:
		r, ok1 := hexByte(strings.Repeat(string(value[0]), 2))
		g, ok2 := hexByte(strings.Repeat(string(value[1]), 2))
		b, ok3 := hexByte(strings.Repeat(string(value[2]), 2))
		if ok1 && ok2 && ok3 {
			return Color{R: r, G: g, B: b}, true
		}
	case 6, 8:
		r, ok1 := hexByte(value[0:2])
		g, ok2 := hexByte(value[2:4])
		b, ok3 := hexByte(value[4:6])
		if ok1 && ok2 && ok3 {
			return Color{R: r, G: g, B: b}, true
		}
	}
	return Color{}, false
}

func hexByte(s string) (int, bool) {
	v, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
