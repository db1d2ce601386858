package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/rectangles/fonts"
	"github.com/ByLCY/rectangles/layout"
	"github.com/ByLCY/rectangles/renderer"
)

// 支持的输出格式
const (
	FormatPDF = "pdf"
	FormatSVG = "svg"
	FormatPNG = "png"
)

const (
	defaultStrokeWidth = 0.2
	defaultDPMM        = 8.0
)

// Renderer draws layout results via github.com/tdewolff/canvas.
type Renderer struct {
	format string
	dpmm   float64

	fontMu       sync.Mutex
	fontFamilies map[bool]*canvas.FontFamily // keyed by bold
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	Format string  // pdf（默认）/svg/png
	DPMM   float64 // 仅 png 使用，每毫米像素数
}

// NewRenderer creates a renderer for the given format.
func NewRenderer(opts Options) (*Renderer, error) {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = FormatPDF
	}
	switch format {
	case FormatPDF, FormatSVG, FormatPNG:
	default:
		return nil, fmt.Errorf("unsupported output format %q", opts.Format)
	}
	dpmm := opts.DPMM
	if dpmm <= 0 {
		dpmm = defaultDPMM
	}
	return &Renderer{
		format:       format,
		dpmm:         dpmm,
		fontFamilies: map[bool]*canvas.FontFamily{},
	}, nil
}

// FormatFromPath 根据文件扩展名推断输出格式。
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case FormatPDF, FormatSVG, FormatPNG:
		return ext, nil
	case "":
		return "", fmt.Errorf("cannot infer output format from %q", path)
	default:
		return "", fmt.Errorf("unsupported output format %q", ext)
	}
}

// Format returns the output format of the renderer.
func (r *Renderer) Format() string { return r.format }

// Render renders the first page of the result. PDF output keeps every page.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("nothing to render")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("layout has no pages")
	}
	if r.format == FormatPDF {
		return r.renderPDF(result)
	}

	c, err := r.drawCanvas(result.Pages[0])
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	switch r.format {
	case FormatSVG:
		page := result.Pages[0]
		writer := svg.New(&buf, page.Width, page.Height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("write svg: %w", err)
		}
	case FormatPNG:
		img := rasterizer.Draw(c, canvas.DPMM(r.dpmm), canvas.DefaultColorSpace)
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("write png: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderPDF(result *layout.Result) ([]byte, error) {
	var buf bytes.Buffer
	writer := pdf.New(&buf, result.Pages[0].Width, result.Pages[0].Height, nil)
	meta := result.Meta
	writer.SetInfo(meta.Title, meta.Subject, strings.Join(meta.Keywords, ", "), meta.Author, meta.Creator)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(page.Width, page.Height)
		}
		c, err := r.drawCanvas(page)
		if err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawCanvas(page layout.Page) (*canvas.Canvas, error) {
	c := canvas.New(page.Width, page.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	// 背景白色，避免 PNG 透明
	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	ctx.DrawPath(0, 0, canvas.Rectangle(page.Width, page.Height))

	drawRects(ctx, page.Rects)
	drawLines(ctx, page.Lines)
	for _, tb := range page.Texts {
		if err := r.drawTextBox(ctx, tb); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// drawTextBox 在文本框内水平按 Align 对齐、垂直居中绘制单行文本。
func (r *Renderer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	if tb.Content == "" {
		return nil
	}
	// 字号为 mm；创建字体面需要 pt。
	face, err := r.fontFace(tb.Bold, toPt(tb.FontSize), tb.Color)
	if err != nil {
		return err
	}

	var textAlign canvas.TextAlign
	var anchorX float64
	switch strings.ToLower(tb.Align) {
	case "center":
		textAlign = canvas.Center
		anchorX = tb.X + tb.Width/2
	case "right", "end":
		textAlign = canvas.Right
		anchorX = tb.X + tb.Width
	default:
		textAlign = canvas.Left
		anchorX = tb.X
	}

	metrics := face.Metrics()
	capHeight := metrics.CapHeight
	if capHeight <= 0 {
		capHeight = metrics.Ascent
	}
	baseline := tb.Y + (tb.Height+capHeight)/2
	ctx.DrawText(anchorX, baseline, canvas.NewTextLine(face, tb.Content, textAlign))
	return nil
}

// drawLines 绘制直线列表（毫米单位）
func drawLines(ctx *canvas.Context, lines []layout.Line) {
	for _, ln := range lines {
		w := ln.Width
		if w <= 0 {
			w = defaultStrokeWidth
		}
		ctx.SetStrokeColor(colorFromLayout(ln.Color))
		ctx.SetStrokeWidth(w)
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(ln.X2-ln.X1, ln.Y2-ln.Y1)
		ctx.DrawPath(ln.X1, ln.Y1, p)
	}
}

// drawRects 绘制矩形
func drawRects(ctx *canvas.Context, rects []layout.Rect) {
	for _, rc := range rects {
		w := rc.StrokeWidth
		if w <= 0 {
			w = defaultStrokeWidth
		}
		if rc.FillColor != nil {
			ctx.SetFillColor(colorFromLayout(*rc.FillColor))
		} else {
			ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
		}
		ctx.SetStrokeColor(colorFromLayout(rc.StrokeColor))
		ctx.SetStrokeWidth(w)
		ctx.DrawPath(rc.X, rc.Y, canvas.Rectangle(rc.Width, rc.Height))
	}
}

func (r *Renderer) fontFace(bold bool, size float64, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily(bold)
	if err != nil {
		return nil, err
	}
	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	return family.Face(size, colorFromLayout(col), style, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(bold bool) (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.fontFamilies[bold]; ok {
		return family, nil
	}
	name, style := fonts.Regular, canvas.FontRegular
	if bold {
		name, style = fonts.Bold, canvas.FontBold
	}
	data, err := fonts.Load(name)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("rectangles-" + name)
	if err := family.LoadFont(data, 0, style); err != nil {
		return nil, fmt.Errorf("load font %s: %w", name, err)
	}
	r.fontFamilies[bold] = family
	return family, nil
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return layout.Length{Value: mm, Unit: layout.UnitMM}.ToPT() }
