package table

import (
	lru "github.com/hashicorp/golang-lru"
)

// CellCacher memoises coercion results by raw text. Categorical and date
// columns repeat the same handful of values, so most lookups are hits.
type CellCacher interface {
	Get(raw string) (Cell, bool)
	Set(raw string, cell Cell)
}

type mapCellCache struct {
	m map[string]Cell
}

func (m mapCellCache) Get(raw string) (Cell, bool) {
	c, ok := m.m[raw]
	return c, ok
}

func (m mapCellCache) Set(raw string, cell Cell) {
	m.m[raw] = cell
}

// NewMapCellCache creates an unbounded cell cache out of a regular go map.
func NewMapCellCache() CellCacher {
	return mapCellCache{m: make(map[string]Cell)}
}

type lruCellCache struct {
	*lru.Cache
}

func (l lruCellCache) Get(raw string) (Cell, bool) {
	v, ok := l.Cache.Get(raw)
	if !ok {
		return Cell{}, false
	}
	return v.(Cell), true
}

func (l lruCellCache) Set(raw string, cell Cell) {
	l.Cache.Add(raw, cell)
}

// NewLRUCellCache creates a cell cache holding at most size entries.
func NewLRUCellCache(size int) (CellCacher, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return lruCellCache{c}, nil
}

type noCellCache struct{}

func (noCellCache) Get(string) (Cell, bool) { return Cell{}, false }
func (noCellCache) Set(string, Cell)        {}
