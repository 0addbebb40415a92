// Package canvasrenderer 基于 github.com/tdewolff/canvas 将布局结果画成 PDF，
// 同时充当布局所需的字形度量后端。
//
// 单位约定：布局坐标与字号均为 pt；canvas 页面以 mm 建立，
// 绘制时在边界做一次 pt→mm 换算。canvas 的字体面以 pt 字号创建，
// 量出的宽度与行高是 mm，向布局返回前换算回 pt。
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/lijinbu/layout"
	"github.com/ByLCY/lijinbu/renderer"
	"github.com/ByLCY/lijinbu/resource"
)

// Renderer 持有取齐的字体与图片资源。字体族在 New 时一次性装载，
// 之后的度量调用不再失败。
type Renderer struct {
	images map[string][]byte

	fontMu   sync.Mutex
	families map[string]*canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// New 装载资源集中的全部字体并返回渲染器。
// 字体解析失败即报错，不带着坏字体进排版。
func New(set *resource.Set) (*Renderer, error) {
	if set == nil || len(set.Fonts) == 0 {
		return nil, fmt.Errorf("canvasrenderer: 至少需要装载一种字体")
	}
	r := &Renderer{
		images:   map[string][]byte{},
		families: map[string]*canvas.FontFamily{},
	}
	for name, data := range set.Fonts {
		family := canvas.NewFontFamily(name)
		if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("canvasrenderer: 装载字体 %s 失败: %w", name, err)
		}
		r.families[name] = family
	}
	for name, data := range set.Images {
		r.images[name] = data
	}
	return r, nil
}

// TextWidth 实现 layout.Measurer，返回整串文字的排印宽度（pt）。
func (r *Renderer) TextWidth(text, font string, size float64) float64 {
	face := r.fontFace(font, size, layout.Color{})
	return face.TextWidth(text) * layout.MmToPt
}

// LineHeight 实现 layout.Measurer，返回单行行高（pt）。
func (r *Renderer) LineHeight(font string, size float64) float64 {
	face := r.fontFace(font, size, layout.Color{})
	return face.Metrics().LineHeight * layout.MmToPt
}

// Render 将布局结果逐页画进一个 PDF 字节切片。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil || len(result.Pages) == 0 {
		return nil, fmt.Errorf("canvasrenderer: 缺少可渲染的页面")
	}

	var buf bytes.Buffer
	first := result.Pages[0]
	writer := pdf.New(&buf, toMm(first.Width), toMm(first.Height), nil)
	writer.SetInfo(result.Meta.Title, "", "", "", result.Meta.Creator)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(toMm(page.Width), toMm(page.Height))
		}
		c := canvas.New(toMm(page.Width), toMm(page.Height))
		ctx := canvas.NewContext(c)
		// canvas 默认左下角为原点，与布局坐标一致，无需换系。
		r.drawPage(ctx, page)
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("canvasrenderer: 写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// drawPage 按图片、矩形、线、文字的顺序落墨，文字压在最上层。
func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) {
	for _, img := range page.Images {
		r.drawImage(ctx, img)
	}
	for _, rc := range page.Rects {
		r.drawRect(ctx, rc)
	}
	for _, ln := range page.Lines {
		r.drawLine(ctx, ln)
	}
	for _, t := range page.Texts {
		face := r.fontFace(t.Font, t.Size, t.Color)
		line := canvas.NewTextLine(face, t.Text, canvas.Left)
		ctx.DrawText(toMm(t.X), toMm(t.Y), line)
	}
}

// drawImage 解码失败只记日志并跳过，不让一张坏图毁掉整本簿册。
func (r *Renderer) drawImage(ctx *canvas.Context, op layout.ImageOp) {
	blob, ok := r.images[op.Name]
	if !ok {
		log.Printf("canvasrenderer: 找不到图片资源 %s，跳过", op.Name)
		return
	}
	img, _, err := image.Decode(bytes.NewReader(blob))
	if err != nil {
		log.Printf("canvasrenderer: 解码图片 %s 失败: %v，跳过", op.Name, err)
		return
	}
	wMm := toMm(op.W)
	if wMm <= 0 || img.Bounds().Dx() == 0 {
		return
	}
	dpmm := float64(img.Bounds().Dx()) / wMm
	ctx.DrawImage(toMm(op.X), toMm(op.Y), img, canvas.DPMM(dpmm))
}

func (r *Renderer) drawLine(ctx *canvas.Context, ln layout.LineOp) {
	ctx.SetStrokeColor(colorFromLayout(ln.Color))
	ctx.SetStrokeWidth(toMm(ln.Width))
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(toMm(ln.X2-ln.X1), toMm(ln.Y2-ln.Y1))
	ctx.DrawPath(toMm(ln.X1), toMm(ln.Y1), p)
}

func (r *Renderer) drawRect(ctx *canvas.Context, rc layout.RectOp) {
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeColor(colorFromLayout(rc.Color))
	ctx.SetStrokeWidth(toMm(rc.StrokeWidth))
	ctx.DrawPath(toMm(rc.X), toMm(rc.Y), canvas.Rectangle(toMm(rc.W), toMm(rc.H)))
}

// fontFace 取字体面。族名查不到时退到 Main，再退到任意一族；
// New 保证至少有一族，故总能取到。
func (r *Renderer) fontFace(font string, size float64, col layout.Color) *canvas.FontFace {
	r.fontMu.Lock()
	family, ok := r.families[font]
	if !ok {
		family, ok = r.families["Main"]
	}
	if !ok {
		for _, f := range r.families {
			family = f
			break
		}
	}
	r.fontMu.Unlock()
	return family.Face(size, colorFromLayout(col), canvas.FontRegular, canvas.FontNormal)
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }
