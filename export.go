package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ByLCY/rectangles/grid"
	"github.com/ByLCY/rectangles/layout"
	"github.com/ByLCY/rectangles/renderer"
)

// fileExporter lays out the grid, renders it and writes the result to disk.
type fileExporter struct {
	outPath   string
	debugPath string
	opts      layout.BuildOptions
	renderer  renderer.Renderer
}

// Export implements action.Exporter and returns the path written.
func (e *fileExporter) Export(g *grid.Grid) (string, error) {
	if e.renderer == nil {
		return "", fmt.Errorf("no renderer configured")
	}
	result, err := layout.Build(g, e.opts)
	if err != nil {
		return "", fmt.Errorf("build layout: %w", err)
	}

	if e.debugPath != "" {
		if err := layout.WriteDebugJSON(result, e.debugPath); err != nil {
			return "", fmt.Errorf("write debug json: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(e.outPath), 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	data, err := e.renderer.Render(result)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if err := os.WriteFile(e.outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", e.outPath, err)
	}
	return e.outPath, nil
}
