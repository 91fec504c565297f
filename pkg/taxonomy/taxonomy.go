// Package taxonomy assigns opaque numeric ids to classification tag paths
// (e.g. {"highway", "secondary", "bridge"}). The speed model only ever sees the
// ids, never the paths, so any external classificator can be swapped in as long
// as it hands out stable ids.
package taxonomy

import (
	"strings"
	"sync"

	"github.com/lintang-b-s/speedmodel/pkg/util"
)

const pathSeparator = "|"

type Taxonomy struct {
	mu  sync.RWMutex
	ids util.IDMap
}

func New() *Taxonomy {
	return &Taxonomy{
		ids: util.NewIdMap(),
	}
}

// GetTypeID returns the id of the given tag path, assigning a fresh id on first
// use. Ids are stable for the lifetime of the process.
func (t *Taxonomy) GetTypeID(path ...string) uint32 {
	key := strings.Join(path, pathSeparator)

	t.mu.RLock()
	if id, ok := t.ids.Lookup(key); ok {
		t.mu.RUnlock()
		return id
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ids.GetID(key)
}

// PathOf returns the tag path registered under the given id, for diagnostics.
func (t *Taxonomy) PathOf(id uint32) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	key := t.ids.GetStr(id)
	if key == "" {
		return nil
	}
	return strings.Split(key, pathSeparator)
}

func (t *Taxonomy) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ids.Size()
}
