package layout

import (
	"fmt"
	"strconv"

	"github.com/ByLCY/lijinbu/ledger"
)

// A4 竖版页面尺寸（pt）。
const (
	defaultPageW = 595.28
	defaultPageH = 841.89
)

// builder 在一次 Build 内累积页面。页面指针在追加期间保持稳定，
// 附表收尾回填框线时会回写先前的页。
type builder struct {
	opts  *Options
	m     Measurer
	pageW float64
	pageH float64
	pages []*Page
}

// Build 根据整理后的记账数据生成整本簿册的绘制程序：
// 封面（可选）→ 正簿网格页 → 备注附录 → 类目汇总 → 尾页。
// 布局只度量、不绘制；全部绘制指令交由渲染器照画。
func Build(prep *ledger.Prepared, opts Options) (*Result, error) {
	if prep == nil || len(prep.Records) == 0 {
		return nil, fmt.Errorf("layout: 没有可排版的礼金记录")
	}
	if opts.Measurer == nil {
		return nil, fmt.Errorf("layout: 缺少字形度量后端 Measurer")
	}
	opts.Normalize()

	b := &builder{
		opts:  &opts,
		m:     opts.Measurer,
		pageW: defaultPageW,
		pageH: defaultPageH,
	}

	if opts.ShowCover {
		b.buildCover()
	}
	for i, slice := range prep.Pages {
		b.buildGridPage(i, prep.PageCount(), slice)
	}
	if opts.ShowAppendix && len(prep.Remarks) > 0 {
		b.buildRemarkAppendix(prep)
	}
	if opts.ShowSummary {
		b.buildSummaryAppendix(prep)
	}
	if opts.ShowTrailing {
		b.buildTrailingPage()
	}

	title := opts.Title
	if title == "" {
		title = "礼金簿"
	}
	pages := make([]Page, len(b.pages))
	for i, p := range b.pages {
		pages[i] = *p
	}
	return &Result{
		Pages: pages,
		Meta:  Meta{Title: title, Creator: "lijinbu"},
	}, nil
}

func (b *builder) newPage() *Page {
	p := &Page{Width: b.pageW, Height: b.pageH}
	b.pages = append(b.pages, p)
	return p
}

// placeVertical 竖排一串字符并落成文本指令。
func (b *builder) placeVertical(page *Page, chars []rune, cell Cell, col Color, initial, min float64) {
	for _, g := range layoutVertical(b.m, chars, b.opts.Font, cell, initial, min, b.opts.LetterSpacing, b.opts.ColumnOrder) {
		page.text(TextOp{Text: g.Char, X: g.X, Y: g.Y, Font: b.opts.Font, Size: g.FontSize, Color: col})
	}
}

// buildCover 封面：底图铺满，书名大字竖排居中，副题右侧竖排，
// 记账人与册序落于左下。
func (b *builder) buildCover() {
	page := b.newPage()
	opts := b.opts
	if opts.CoverImage != "" {
		page.image(ImageOp{Name: opts.CoverImage, X: 0, Y: 0, W: b.pageW, H: b.pageH})
	}
	ink := opts.regionColor(ColorCover)

	title := opts.Title
	if title == "" {
		title = "礼金簿"
	}
	titleCell := Cell{X: b.pageW/2 - 60, Y: b.pageH * 0.30, W: 120, H: b.pageH * 0.45}
	for _, g := range layoutVertical(b.m, []rune(title), opts.Font, titleCell, 48, 24, opts.LetterSpacing*2, opts.ColumnOrder) {
		page.text(TextOp{Text: g.Char, X: g.X, Y: g.Y, Font: opts.Font, Size: g.FontSize, Color: ink})
	}

	if opts.Subtitle != "" {
		subCell := Cell{X: b.pageW - 150, Y: b.pageH * 0.38, W: 60, H: b.pageH * 0.32}
		b.placeVertical(page, []rune(opts.Subtitle), subCell, ink, 20, 10)
	}

	y := 90.0
	if opts.Recorder != "" {
		page.text(TextOp{Text: "经手 " + opts.Recorder, X: 72, Y: y, Font: opts.Font, Size: 12, Color: ink})
		y -= 20
	}
	if opts.PartCount > 0 {
		page.text(TextOp{Text: fmt.Sprintf("第 %d 册 / 共 %d 册", opts.Part, opts.PartCount), X: 72, Y: y, Font: opts.Font, Size: 12, Color: ink})
	}
}

// buildRemarkAppendix 备注附录：姓名 / 位次 / 备注（备注列折行）。
func (b *builder) buildRemarkAppendix(prep *ledger.Prepared) {
	t := flowTable{
		title: "备注附录",
		columns: []flowColumn{
			{label: "姓名", frac: 0.20},
			{label: "位次", frac: 0.26},
			{label: "备注", frac: 0.54, wrap: true},
		},
	}
	for _, r := range prep.Remarks {
		t.rows = append(t.rows, []string{r.Name, r.Position, r.Remark})
	}
	b.renderFlowTable(t)
}

// buildSummaryAppendix 类目汇总：逐类目一行，末尾合计，
// 多册装订时再加各册累计一行。
func (b *builder) buildSummaryAppendix(prep *ledger.Prepared) {
	t := flowTable{
		title: "类目汇总",
		columns: []flowColumn{
			{label: "类目", frac: 0.40},
			{label: "笔数", frac: 0.20},
			{label: "金额", frac: 0.40},
		},
	}
	count := 0
	for _, g := range prep.Groups {
		name := g.Type
		if name == "" {
			name = "未注明"
		}
		count += g.Count
		t.rows = append(t.rows, []string{name, strconv.Itoa(g.Count), ledger.FormatAmount(g.Total)})
	}
	t.rows = append(t.rows, []string{"合计", strconv.Itoa(count), ledger.FormatAmount(prep.GrandTotal)})
	if b.opts.PartGrandTotal > 0 {
		t.rows = append(t.rows, []string{"各册累计", "", ledger.FormatAmount(b.opts.PartGrandTotal)})
	}
	b.renderFlowTable(t)
}

// buildTrailingPage 尾页：经手人签押线与日期。
func (b *builder) buildTrailingPage() {
	page := b.newPage()
	opts := b.opts
	ink := opts.regionColor(ColorPageInfo)

	y := 140.0
	label := "经手人"
	if opts.Recorder != "" {
		label = "经手人　" + opts.Recorder
	}
	page.text(TextOp{Text: label, X: b.pageW - 280, Y: y + 8, Font: opts.Font, Size: 12, Color: ink})
	page.line(LineOp{X1: b.pageW - 280, Y1: y, X2: b.pageW - 90, Y2: y, Width: 0.6, Color: ink})
	page.text(TextOp{Text: opts.Now.Format("2006年01月02日"), X: b.pageW - 280, Y: y - 26, Font: opts.Font, Size: 10, Color: ink})
}
