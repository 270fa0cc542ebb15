// Package catalog maintains the component type catalog: descriptor JSON files
// on disk, loaded into memory and kept fresh by a filesystem watcher. The
// HTTP layer resolves a type name to its descriptor here when the designer
// adds a component.
package catalog

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"blocksd/pkg/types"
)

// Catalog is a thread-safe snapshot of the descriptor directory.
type Catalog struct {
	mu     sync.RWMutex
	dir    string
	byName map[string]types.ComponentType

	log zerolog.Logger
}

// New creates an empty catalog over the given descriptor directory. Call
// Load before first use.
func New(dir string) *Catalog {
	return &Catalog{
		dir:    dir,
		byName: make(map[string]types.ComponentType),
		log:    zerolog.Nop(),
	}
}

// SetLogger installs a logger for load and watch diagnostics.
func (c *Catalog) SetLogger(l zerolog.Logger) {
	c.log = l
}

// Load re-reads the descriptor directory and atomically replaces the
// in-memory snapshot. On error the previous snapshot stays in place.
func (c *Catalog) Load() error {
	list, err := LoadDir(c.dir)
	if err != nil {
		return err
	}
	byName := make(map[string]types.ComponentType, len(list))
	for _, ct := range list {
		byName[ct.Name] = ct
	}
	c.mu.Lock()
	c.byName = byName
	c.mu.Unlock()
	c.log.Info().Int("types", len(byName)).Str("dir", c.dir).Msg("catalog loaded")
	return nil
}

// Get returns the descriptor entry for a type name.
func (c *Catalog) Get(name string) (types.ComponentType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ct, ok := c.byName[name]
	return ct, ok
}

// List returns all known component types sorted by name.
func (c *Catalog) List() []types.ComponentType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]types.ComponentType, 0, len(c.byName))
	for _, ct := range c.byName {
		out = append(out, ct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of known component types.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byName)
}
