package layout

// 竖排分栏：把一串字符按 1–3 栏自上而下码进格子，
// 栏数与字号按固定策略决定。

// calcHeight 计算 n 个字竖排的总高：字间留 spacing，末字之后不留。
func calcHeight(n int, fontSize, spacing float64) float64 {
	return float64(n)*(fontSize+spacing) - spacing
}

// calcWidth 计算 cols 栏并排的总宽：栏宽即字号，栏间留 spacing。
func calcWidth(cols int, fontSize, spacing float64) float64 {
	return float64(cols)*fontSize + float64(cols-1)*spacing
}

// shrinkToFit 自 initial 向下按 0.5 步长找出首个满足 fits 的字号；
// 搜索必然有界，穷尽后接受 min（残余溢出是容忍的视觉退化）。
func shrinkToFit(initial, min float64, fits func(size float64) bool) float64 {
	for size := initial; size >= min; size -= fitStep {
		if fits(size) {
			return size
		}
	}
	return min
}

// layoutVertical 为 chars 选定栏数与字号并逐字定位。
// 栏数与容量的决策在 verticalPlan，这里只补字号并落点。
//
// 每栏容量按【初始】字号一次算定，之后即使字号缩小也沿用不变——
// 这是既有版面的行为，改为逐步重算会改变所有密排页的输出，
// 取舍记录在 DESIGN.md。
func layoutVertical(m Measurer, chars []rune, font string, cell Cell, initial, min, spacing float64, order ColumnOrder) []GlyphPlacement {
	if len(chars) == 0 {
		return nil
	}
	usableH := usableRatio * cell.H
	usableW := usableRatio * cell.W

	cols, capacity := verticalPlan(chars, cell, initial, min, spacing)

	var size float64
	switch cols {
	case 1:
		size = shrinkToFit(initial, min, func(s float64) bool {
			return calcHeight(len(chars), s, spacing) <= usableH &&
				calcWidth(1, s, spacing) <= usableW
		})
	case 2:
		// 两栏只在初始字号下排，不缩字（verticalPlan 已验证放得下）。
		size = initial
	default:
		size = shrinkToFit(initial, min, func(s float64) bool {
			return calcHeight(capacity, s, spacing) <= usableH &&
				calcWidth(3, s, spacing) <= usableW
		})
	}

	// 首栏字数作为整块的基准高度（末栏可短）。
	firstCol := len(chars)
	if firstCol > capacity {
		firstCol = capacity
	}
	blockW := calcWidth(cols, size, spacing)
	blockH := calcHeight(firstCol, size, spacing)
	left := cell.X + (cell.W-blockW)/2
	top := cell.Y + (cell.H+blockH)/2

	placements := make([]GlyphPlacement, 0, len(chars))
	for i, ch := range chars {
		col := i / capacity
		row := i % capacity
		colIdx := col
		if order == ColumnsRightToLeft {
			// 超出栏数的溢出栏同样镜像（落到块左侧），
			// 保证溢出方向与读序一致。
			colIdx = cols - 1 - col
		}
		colX := left + float64(colIdx)*(size+spacing)
		glyphW := m.TextWidth(string(ch), font, size)
		placements = append(placements, GlyphPlacement{
			Char:     string(ch),
			X:        colX + (size-glyphW)/2,
			Y:        top - float64(row+1)*size - float64(row)*spacing,
			FontSize: size,
		})
	}
	return placements
}

// verticalPlan 决定竖排的栏数与每栏容量，是唯一的分栏决策点；
// layoutVertical 据此补字号并落点，测试也直接复核它。
func verticalPlan(chars []rune, cell Cell, initial, min, spacing float64) (cols int, capacity int) {
	usableH := usableRatio * cell.H
	usableW := usableRatio * cell.W
	capacity = int((usableH + spacing) / (initial + spacing))
	if capacity < 1 {
		capacity = 1
	}
	needed := (len(chars) + capacity - 1) / capacity
	switch {
	case needed <= 1:
		cols = 1
	case needed == 2 &&
		calcHeight(capacity, initial, spacing) <= usableH &&
		calcWidth(2, initial, spacing) <= usableW:
		cols = 2
	default:
		cols = 3
	}
	return cols, capacity
}
