package layout

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ByLCY/rectangles/grid"
)

const (
	gridLineWidth = 0.2
	borderWidth   = 0.6
	glyphScale    = 0.6 // 字号相对单元格边长的比例
)

var (
	inkColor   = Color{R: 30, G: 30, B: 30}
	lineColor  = Color{R: 190, G: 190, B: 190}
	emptyColor = Color{R: 160, G: 160, B: 160}

	// palette 按字形顺序循环取色
	palette = []Color{
		{R: 255, G: 179, B: 186},
		{R: 255, G: 223, B: 186},
		{R: 255, G: 255, B: 186},
		{R: 186, G: 255, B: 201},
		{R: 186, G: 225, B: 255},
		{R: 218, G: 196, B: 247},
		{R: 244, G: 194, B: 194},
		{R: 200, G: 230, B: 201},
		{R: 179, G: 229, B: 252},
		{R: 255, G: 236, B: 179},
	}
)

// Build 根据网格生成单页布局：每个矩形一个填充块，外加网格线与每个单元格的字形。
// 字形与 grid.Render 的文本输出一致。
func Build(g *grid.Grid, opts BuildOptions) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("layout: nil grid")
	}
	glyphs, err := g.Glyphs()
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	cell := opts.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	margin := opts.Margin
	if margin <= 0 {
		margin = DefaultMargin
	}
	dims := g.Dimensions()
	page := Page{
		Width:  2*margin + float64(dims.Length)*cell,
		Height: 2*margin + float64(dims.Height)*cell,
		Margin: Margin{Top: margin, Right: margin, Bottom: margin, Left: margin},
	}
	origin := func(x, y int) (float64, float64) {
		return margin + float64(x)*cell, margin + float64(y)*cell
	}

	rects := g.List()
	page.Rects = make([]Rect, 0, len(rects))
	for _, r := range rects {
		fill := palette[int(glyphs[r.ID]-grid.FirstGlyph)%len(palette)]
		x, y := origin(r.TopLeft.X, r.TopLeft.Y)
		page.Rects = append(page.Rects, Rect{
			X:           x,
			Y:           y,
			Width:       float64(r.Length) * cell,
			Height:      float64(r.Height) * cell,
			StrokeColor: inkColor,
			StrokeWidth: borderWidth,
			FillColor:   &fill,
			Label:       r.ID.String(),
		})
	}

	page.Lines = gridLines(dims, cell, margin)

	page.Texts = make([]TextBox, 0, dims.Length*dims.Height)
	for y := 0; y < dims.Height; y++ {
		for x := 0; x < dims.Length; x++ {
			id, err := g.OccupancyAt(x, y)
			if err != nil {
				return nil, err
			}
			content, col, bold := string(rune(grid.EmptyGlyph)), emptyColor, false
			if id != uuid.Nil {
				content, col, bold = string(glyphs[id]), inkColor, true
			}
			cx, cy := origin(x, y)
			page.Texts = append(page.Texts, TextBox{
				Content:  content,
				X:        cx,
				Y:        cy,
				Width:    cell,
				Height:   cell,
				FontSize: cell * glyphScale,
				Bold:     bold,
				Color:    col,
				Align:    "center",
			})
		}
	}

	return &Result{
		Pages: []Page{page},
		Meta: DocumentMeta{
			Title:    "Rectangles",
			Subject:  fmt.Sprintf("%dx%d grid with %d rectangles", dims.Length, dims.Height, len(rects)),
			Creator:  "rectangles",
			Keywords: []string{"grid", "rectangles"},
		},
	}, nil
}

// gridLines 生成内部网格线；外框使用较粗的线宽。
func gridLines(dims grid.Dimensions, cell, margin float64) []Line {
	right := margin + float64(dims.Length)*cell
	bottom := margin + float64(dims.Height)*cell
	lines := make([]Line, 0, dims.Length+dims.Height+2)
	for x := 0; x <= dims.Length; x++ {
		w := gridLineWidth
		if x == 0 || x == dims.Length {
			w = borderWidth
		}
		px := margin + float64(x)*cell
		lines = append(lines, Line{X1: px, Y1: margin, X2: px, Y2: bottom, Color: lineColor, Width: w})
	}
	for y := 0; y <= dims.Height; y++ {
		w := gridLineWidth
		if y == 0 || y == dims.Height {
			w = borderWidth
		}
		py := margin + float64(y)*cell
		lines = append(lines, Line{X1: margin, Y1: py, X2: right, Y2: py, Color: lineColor, Width: w})
	}
	return lines
}
