package quicklz

import "sync"

// matchTablePool is a pool of level 1 match tables.
var matchTablePool = sync.Pool{
	New: func() any {
		return &matchTable{}
	},
}

// acquireMatchTable acquires a match table from the pool, reset to its initial state.
func acquireMatchTable() *matchTable {
	t := matchTablePool.Get().(*matchTable)
	*t = matchTable{lastHashed: -1}
	return t
}

// releaseMatchTable releases a match table to the pool.
func releaseMatchTable(t *matchTable) {
	if t == nil {
		return
	}

	matchTablePool.Put(t)
}
