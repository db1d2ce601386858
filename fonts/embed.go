package fonts

import (
	"fmt"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
)

const (
	Regular = "regular"
	Bold    = "bold"
)

var faces = map[string][]byte{
	Regular: lmroman10regular.TTF,
	Bold:    lmroman10bold.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "embed:regular" 或直接 "bold"。
func Load(name string) ([]byte, error) {
	key := strings.ToLower(strings.TrimPrefix(name, "embed:"))
	data, ok := faces[key]
	if !ok {
		return nil, fmt.Errorf("fonts: unknown face %q", name)
	}
	return data, nil
}
