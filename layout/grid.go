package layout

import (
	"fmt"

	"github.com/ByLCY/lijinbu/ledger"
)

// 正簿网格页：每页固定格数，一格一条记录，
// 格内自上而下分姓名、题词、金额三栏。

const (
	gridMarginX = 48.0
	gridTopY    = 760.0 // 网格上边缘
	gridBottomY = 96.0  // 网格下边缘

	nameBandFrac  = 0.42
	labelBandFrac = 0.16
	// amountStripH 金额栏底部留给阿拉伯数字小字的横排条。
	amountStripH = 24.0

	gridBorderWidth = 1.2
	gridRuleWidth   = 0.5

	gridTitleSize  = 16.0
	gridFooterSize = 9.0
	gridFooterY    = 48.0

	// 数字金额条的缩字区间。
	numInitialSize = 12.0
	numMinSize     = 6.0
)

func (b *builder) buildGridPage(pageIdx, pageCount int, slice []ledger.Record) {
	page := b.newPage()
	opts := b.opts
	ink := defaultInk

	gridW := b.pageW - 2*gridMarginX
	gridH := gridTopY - gridBottomY
	colW := gridW / float64(opts.ItemsPerPage)
	nameH := nameBandFrac * gridH
	labelH := labelBandFrac * gridH
	amountH := gridH - nameH - labelH
	y1 := gridTopY - nameH // 姓名/题词分界
	y2 := y1 - labelH      // 题词/金额分界

	// 页首标题横排缩字居中。
	if opts.Title != "" {
		titleCell := Cell{X: gridMarginX, Y: gridTopY + 12, W: gridW, H: b.pageH - gridTopY - 42}
		fit := fitHorizontal(b.m, opts.Title, opts.Font, titleCell, gridTitleSize, flowBodySize)
		page.text(TextOp{Text: opts.Title, X: fit.X, Y: fit.Y, Font: opts.Font, Size: fit.FontSize, Color: ink})
	}

	// 框线：一框、两横、itemsPerPage-1 竖。
	page.rect(RectOp{X: gridMarginX, Y: gridBottomY, W: gridW, H: gridH, StrokeWidth: gridBorderWidth, Color: ink})
	page.line(LineOp{X1: gridMarginX, Y1: y1, X2: gridMarginX + gridW, Y2: y1, Width: gridRuleWidth, Color: ink})
	page.line(LineOp{X1: gridMarginX, Y1: y2, X2: gridMarginX + gridW, Y2: y2, Width: gridRuleWidth, Color: ink})
	for i := 1; i < opts.ItemsPerPage; i++ {
		x := gridMarginX + float64(i)*colW
		page.line(LineOp{X1: x, Y1: gridBottomY, X2: x, Y2: gridTopY, Width: gridRuleWidth, Color: ink})
	}

	nameColor := opts.regionColor(ColorName)
	labelColor := opts.regionColor(ColorLabel)
	amountColor := opts.regionColor(ColorAmount)

	for slot, rec := range slice {
		x := gridMarginX + float64(slot)*colW
		nameCell := Cell{X: x, Y: y1, W: colW, H: nameH}
		labelCell := Cell{X: x, Y: y2, W: colW, H: labelH}
		textCell := Cell{X: x, Y: gridBottomY + amountStripH, W: colW, H: amountH - amountStripH}
		numCell := Cell{X: x, Y: gridBottomY, W: colW, H: amountStripH}

		b.placeVertical(page, displayName(rec.Name), nameCell, nameColor, opts.InitialFontSize, opts.MinFontSize)
		b.placeVertical(page, []rune(opts.CellLabel), labelCell, labelColor, opts.InitialFontSize*0.7, opts.MinFontSize)
		b.placeVertical(page, []rune(rec.DisplayAmountText()), textCell, amountColor, opts.InitialFontSize*0.8, opts.MinFontSize)

		num := ledger.FormatAmount(rec.Amount)
		fit := fitHorizontal(b.m, num, opts.Font, numCell, numInitialSize, numMinSize)
		page.text(TextOp{Text: num, X: fit.X, Y: fit.Y, Font: opts.Font, Size: fit.FontSize, Color: amountColor})

		if rec.Abolished {
			// 作废记录仍占格位，压一道斜线示销。
			page.line(LineOp{X1: x + 2, Y1: gridBottomY + 2, X2: x + colW - 2, Y2: gridTopY - 2, Width: gridRuleWidth, Color: ink})
		}
	}

	b.drawGridFooter(page, pageIdx+1, pageCount, ledger.PageSubtotal(slice))
}

func (b *builder) drawGridFooter(page *Page, pageNo, pageCount int, subtotal float64) {
	info := b.opts.regionColor(ColorPageInfo)
	font := b.opts.Font

	left := "本页小计 " + ledger.FormatAmount(subtotal)
	page.text(TextOp{Text: left, X: gridMarginX, Y: gridFooterY, Font: font, Size: gridFooterSize, Color: info})

	center := fmt.Sprintf("第 %d 页 / 共 %d 页", pageNo, pageCount)
	w := b.m.TextWidth(center, font, gridFooterSize)
	page.text(TextOp{Text: center, X: (b.pageW - w) / 2, Y: gridFooterY, Font: font, Size: gridFooterSize, Color: info})

	stamp := b.opts.Now.Format("2006年01月02日 15:04")
	sw := b.m.TextWidth(stamp, font, gridFooterSize)
	page.text(TextOp{Text: stamp, X: b.pageW - gridMarginX - sw, Y: gridFooterY, Font: font, Size: gridFooterSize, Color: info})
}

// displayName 两字姓名在两字之间插入全角空格，使名柱与三字名对齐。
func displayName(name string) []rune {
	rs := []rune(name)
	if len(rs) == 2 {
		return []rune{rs[0], '　', rs[1]}
	}
	return rs
}
