package layout

// 横排缩字：把一行文字缩到能放进格子为止。

const (
	// fitStep 字号搜索的固定步长。
	fitStep = 0.5
	// usableRatio 格子名义宽高中真正可用的比例，四周各留 5% 呼吸。
	usableRatio = 0.9
)

// fitHorizontal 自 initial 起以 0.5 步长向下搜索字号，直到测得宽度
// 不超过格宽的 90%，或触底 min 为止（触底后允许溢出，不视为错误）。
// 只按宽度缩字，高度不参与搜索。
func fitHorizontal(m Measurer, text, font string, cell Cell, initial, min float64) HorizontalFit {
	size := initial
	for size > min && m.TextWidth(text, font, size) > usableRatio*cell.W {
		size -= fitStep
	}
	if size < min {
		size = min
	}

	w := m.TextWidth(text, font, size)
	h := m.LineHeight(font, size)
	// h/10 是基线修正：字面上沿并不恰好落在名义高度一半处。
	// 改动它会破坏与既有版面的视觉一致。
	return HorizontalFit{
		FontSize: size,
		X:        cell.X + (cell.W-w)/2,
		Y:        cell.Y + (cell.H-h)/2 + h/10,
	}
}
