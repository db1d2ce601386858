package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteDebugJSON 将布局结果输出为 JSON，目录不存在时自动创建。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return fmt.Errorf("layout: nil result")
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("layout: encode debug json: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("layout: create debug dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
