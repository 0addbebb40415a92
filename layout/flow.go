package layout

import (
	"fmt"

	"github.com/ByLCY/lijinbu/binding"
)

// 附表跨页续排控制器：备注附录与类目汇总都用它排成
// 带框、带表头、可跨页的表格。

const (
	flowMarginX      = 60.0
	flowTopMargin    = 70.0
	flowBottomMargin = 60.0

	flowTitleSize  = 18.0
	flowHeaderSize = 12.0
	flowBodySize   = 10.5
	flowFooterSize = 9.0

	flowTitleBlockH = 32.0
	flowHeaderH     = 24.0

	flowMinRowHeight = 30.0
	flowRowPadding   = 10.0
	flowCellInset    = 6.0

	flowBorderWidth = 0.9
	flowRuleWidth   = 0.4

	flowFooterY = 36.0
)

type flowColumn struct {
	label string
	frac  float64 // 占表宽的比例
	wrap  bool    // 该列内容是否折行
}

type flowTable struct {
	title   string
	columns []flowColumn
	rows    [][]string
}

// pageCursor 是一张附表续排期间的全部游标状态：当前页、纵向写入位置
// 以及逐页记下的表框上下边界。它只在 renderFlowTable 内部存活，
// 排完即弃，绝不跨附表共享。
type pageCursor struct {
	first   int // 本附表首页在全文档页序中的下标
	page    int // 当前页下标（全文档计）
	y       float64
	tops    map[int]float64
	bottoms map[int]float64
	// rowsPerPage 每页实际落下的行数，供收尾校验与测试观察。
	rowsPerPage map[int]int
}

// renderFlowTable 逐行排入 t 的内容：行高按折行结果定，装不下整行时
// 换页并重画表头；行为原子单位，绝不跨页拆开。收尾时按每页记录的
// 上下边界补画框线、栏线与页脚。
func (b *builder) renderFlowTable(t flowTable) *pageCursor {
	pageTop := b.pageH - flowTopMargin
	tableW := b.pageW - 2*flowMarginX
	ink := defaultInk

	cur := &pageCursor{
		tops:        map[int]float64{},
		bottoms:     map[int]float64{},
		rowsPerPage: map[int]int{},
	}

	// 首页：标题压顶，表框上边界让出标题高度。
	page := b.newPage()
	cur.first = len(b.pages) - 1
	cur.page = cur.first

	titleCell := Cell{X: flowMarginX, Y: pageTop - flowTitleBlockH, W: tableW, H: flowTitleBlockH}
	fit := fitHorizontal(b.m, t.title, b.opts.Font, titleCell, flowTitleSize, flowBodySize)
	page.text(TextOp{Text: t.title, X: fit.X, Y: fit.Y, Font: b.opts.Font, Size: fit.FontSize, Color: ink})

	top := pageTop - flowTitleBlockH
	cur.tops[cur.page] = top
	b.drawFlowHeader(page, t, top)
	cur.y = top - flowHeaderH

	for _, row := range t.rows {
		rowH, wrapped := b.flowRowHeight(t, row)
		if cur.y-rowH < flowBottomMargin {
			// 本页装不下整行：记下底界，开新页重画表头后再落行。
			cur.bottoms[cur.page] = cur.y
			page = b.newPage()
			cur.page = len(b.pages) - 1
			cur.tops[cur.page] = pageTop
			b.drawFlowHeader(page, t, pageTop)
			cur.y = pageTop - flowHeaderH
		}
		b.drawFlowRow(page, t, row, wrapped, cur.y)
		cur.y -= rowH
		cur.rowsPerPage[cur.page]++
	}
	cur.bottoms[cur.page] = cur.y

	b.finalizeFlowTable(t, cur)
	return cur
}

// flowRowHeight 算出一行的高度：折行列取折行块高，行高下限 30，
// 上下各留 5 的内衬。
func (b *builder) flowRowHeight(t flowTable, row []string) (float64, map[int]Wrapped) {
	tableW := b.pageW - 2*flowMarginX
	wrapped := map[int]Wrapped{}
	maxH := 0.0
	for i, col := range t.columns {
		if !col.wrap || i >= len(row) {
			continue
		}
		w := wrapText(b.m, row[i], b.opts.Font, flowBodySize, col.frac*tableW-2*flowCellInset)
		wrapped[i] = w
		if w.Height > maxH {
			maxH = w.Height
		}
	}
	rowH := maxH + flowRowPadding
	if rowH < flowMinRowHeight {
		rowH = flowMinRowHeight
	}
	return rowH, wrapped
}

// drawFlowHeader 在 top 之下画一条表头带：各列题字居中，底部压一道细线。
// 每一页的表头完全一致。
func (b *builder) drawFlowHeader(page *Page, t flowTable, top float64) {
	tableW := b.pageW - 2*flowMarginX
	ink := defaultInk
	x := flowMarginX
	y := top - (flowHeaderH+flowHeaderSize)/2
	for _, col := range t.columns {
		colW := col.frac * tableW
		w := b.m.TextWidth(col.label, b.opts.Font, flowHeaderSize)
		page.text(TextOp{Text: col.label, X: x + (colW-w)/2, Y: y, Font: b.opts.Font, Size: flowHeaderSize, Color: ink})
		x += colW
	}
	page.line(LineOp{
		X1: flowMarginX, Y1: top - flowHeaderH,
		X2: flowMarginX + tableW, Y2: top - flowHeaderH,
		Width: flowRuleWidth, Color: ink,
	})
}

// drawFlowRow 自 rowTop 向下落一行：折行列逐行誊写，普通列单行齐顶。
func (b *builder) drawFlowRow(page *Page, t flowTable, row []string, wrapped map[int]Wrapped, rowTop float64) {
	tableW := b.pageW - 2*flowMarginX
	ink := defaultInk
	x := flowMarginX
	firstLineY := rowTop - flowRowPadding/2 - flowBodySize
	for i, col := range t.columns {
		if i >= len(row) {
			break
		}
		colX := x + flowCellInset
		if w, ok := wrapped[i]; ok {
			y := firstLineY
			for _, line := range w.Lines {
				page.text(TextOp{Text: line, X: colX, Y: y, Font: b.opts.Font, Size: flowBodySize, Color: ink})
				y -= flowBodySize + wrapLineGap
			}
		} else {
			page.text(TextOp{Text: row[i], X: colX, Y: firstLineY, Font: b.opts.Font, Size: flowBodySize, Color: ink})
		}
		x += col.frac * tableW
	}
}

// finalizeFlowTable 收尾：对每一页按记录的上下边界补画四条框线与
// 栏间竖线，并在页脚写时间戳、附页页码与册序。
func (b *builder) finalizeFlowTable(t flowTable, cur *pageCursor) {
	tableW := b.pageW - 2*flowMarginX
	ink := defaultInk
	total := len(b.pages) - cur.first

	for p := cur.first; p < len(b.pages); p++ {
		page := b.pages[p]
		top, bottom := cur.tops[p], cur.bottoms[p]
		x0, x1 := flowMarginX, b.pageW-flowMarginX

		page.line(LineOp{X1: x0, Y1: top, X2: x1, Y2: top, Width: flowBorderWidth, Color: ink})
		page.line(LineOp{X1: x0, Y1: bottom, X2: x1, Y2: bottom, Width: flowBorderWidth, Color: ink})
		page.line(LineOp{X1: x0, Y1: top, X2: x0, Y2: bottom, Width: flowBorderWidth, Color: ink})
		page.line(LineOp{X1: x1, Y1: top, X2: x1, Y2: bottom, Width: flowBorderWidth, Color: ink})

		x := x0
		for _, col := range t.columns[:len(t.columns)-1] {
			x += col.frac * tableW
			page.line(LineOp{X1: x, Y1: top, X2: x, Y2: bottom, Width: flowRuleWidth, Color: ink})
		}

		b.drawFlowFooter(page, p-cur.first+1, total)
	}
}

func (b *builder) drawFlowFooter(page *Page, pageNo, total int) {
	info := b.opts.regionColor(ColorPageInfo)
	font := b.opts.Font

	stamp := b.opts.Now.Format("2006年01月02日 15:04")
	page.text(TextOp{Text: stamp, X: flowMarginX, Y: flowFooterY, Font: font, Size: flowFooterSize, Color: info})

	vars := map[string]string{
		"page":  fmt.Sprintf("%d", pageNo),
		"pages": fmt.Sprintf("%d", total),
		"part":  fmt.Sprintf("%d", b.opts.Part),
	}
	center := binding.Interpolate(b.opts.FooterTemplate, vars)
	w := b.m.TextWidth(center, font, flowFooterSize)
	page.text(TextOp{Text: center, X: (b.pageW - w) / 2, Y: flowFooterY, Font: font, Size: flowFooterSize, Color: info})

	if b.opts.PartCount > 0 {
		part := fmt.Sprintf("第 %d 册 / 共 %d 册", b.opts.Part, b.opts.PartCount)
		pw := b.m.TextWidth(part, font, flowFooterSize)
		page.text(TextOp{Text: part, X: b.pageW - flowMarginX - pw, Y: flowFooterY, Font: font, Size: flowFooterSize, Color: info})
	}
}
