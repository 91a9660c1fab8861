package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Read returns the raw bytes of a level file. A file on disk under levels/
// wins over the embedded copy so edits (and the hot-reload watcher) take
// effect without rebuilding.
func Read(name string) ([]byte, error) {
	clean := cleanName(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

func cleanName(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
