package layout

// 该文件定义布局结果的绘制指令模型：布局阶段只产出指令，
// 渲染器逐条照画，坐标一律为 pt、原点在页面左下角。

// Cell 表示页面上分配给单块内容的矩形区域。
type Cell struct {
	X, Y float64 // 左下角
	W, H float64
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// TextOp 在 (X, Y) 处以指定字体字号绘制一段文本，Y 为文字底边。
type TextOp struct {
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Font  string  `json:"font"`
	Size  float64 `json:"size"`
	Color Color   `json:"color"`
}

// LineOp 绘制一条线段。
type LineOp struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Color  Color
}

// RectOp 绘制一个描边矩形。
type RectOp struct {
	X, Y        float64
	W, H        float64
	StrokeWidth float64
	Color       Color
}

// ImageOp 按资源名绘制一幅图片，铺满给定区域。
type ImageOp struct {
	Name       string
	X, Y, W, H float64
}

// Page 记录页面尺寸与该页的全部绘制指令。
// 渲染顺序固定：图片（背景）→ 矩形 → 线 → 文本。
type Page struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Images []ImageOp `json:"images,omitempty"`
	Rects  []RectOp  `json:"rects,omitempty"`
	Lines  []LineOp  `json:"lines,omitempty"`
	Texts  []TextOp  `json:"texts,omitempty"`
}

func (p *Page) text(op TextOp)   { p.Texts = append(p.Texts, op) }
func (p *Page) line(op LineOp)   { p.Lines = append(p.Lines, op) }
func (p *Page) rect(op RectOp)   { p.Rects = append(p.Rects, op) }
func (p *Page) image(op ImageOp) { p.Images = append(p.Images, op) }

// Meta 保存 PDF 元信息。
type Meta struct {
	Title   string `json:"title"`
	Creator string `json:"creator"`
}

// Result 保存布局后的页面序列与元信息。
type Result struct {
	Pages []Page `json:"pages"`
	Meta  Meta   `json:"meta"`
}

// GlyphPlacement 竖排布局为单个字符算出的落点。
type GlyphPlacement struct {
	Char     string
	X, Y     float64
	FontSize float64
}

// HorizontalFit 横排缩字的结果。
type HorizontalFit struct {
	FontSize float64
	X, Y     float64
}

// Wrapped 贪心折行的结果：行序列与整块高度。
type Wrapped struct {
	Lines  []string
	Height float64
}
