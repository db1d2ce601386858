package renderer

import "github.com/ByLCY/rectangles/layout"

// Renderer 将网格布局输出为最终文件，例如 PDF、SVG 或 PNG。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
