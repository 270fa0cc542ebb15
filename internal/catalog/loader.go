package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"blocksd/internal/common/fsutil"
	"blocksd/pkg/types"
)

// LoadDir scans a directory for *.json descriptor files and builds the
// component type list. The type name is the file name without extension
// (e.g. Button.json -> Button); the file content is the raw descriptor JSON
// handed to editors verbatim. Files that are not valid JSON fail the load so
// a broken descriptor never reaches an editor.
func LoadDir(dir string) ([]types.ComponentType, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	files, err := fsutil.ListFilesWithExt(abs, ".json")
	if err != nil {
		return nil, err
	}
	out := make([]types.ComponentType, 0, len(files))
	for _, p := range files {
		raw, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read descriptor %s: %w", p, err)
		}
		if !json.Valid(raw) {
			return nil, fmt.Errorf("descriptor %s: invalid JSON", p)
		}
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		out = append(out, types.ComponentType{
			Name:        name,
			Path:        p,
			Description: string(raw),
		})
	}
	return out, nil
}
