package layout

// BuildOptions 配置网格布局，例如单元格边长。
type BuildOptions struct {
	CellSize float64 // 单元格边长（mm），<=0 时使用 DefaultCellSize
	Margin   float64 // 页边距（mm），<=0 时使用 DefaultMargin
}

const (
	DefaultCellSize = 10.0
	DefaultMargin   = 10.0
)
