package atlas

import (
	"github.com/dolthub/swiss"
	"github.com/google/btree"
)

const defaultInitialCapacity = 16

// record is a single entry held by a generation. seq is assigned when the record enters the
// generation and orders every scan over it.
type record[H comparable] struct {
	handle H
	entry  Entry
	seq    uint64
}

func recordLess[H comparable](a, b *record[H]) bool {
	return a.seq < b.seq
}

// generation is one of a page's two entry sets (live or dead). Lookups go through the swiss map,
// while the btree keeps the same records in the order they arrived so that candidate generation
// and overlap scans visit entries in a reproducible order.
type generation[H comparable] struct {
	capacity int
	byHandle *swiss.Map[H, *record[H]]
	ordered  *btree.BTreeG[*record[H]]
}

func newGeneration[H comparable](capacity int) generation[H] {
	return generation[H]{
		capacity: capacity,
		byHandle: swiss.NewMap[H, *record[H]](uint32(capacity)),
		ordered:  btree.NewG[*record[H]](8, recordLess[H]),
	}
}

func (g *generation[H]) get(handle H) (*record[H], bool) {
	return g.byHandle.Get(handle)
}

func (g *generation[H]) has(handle H) bool {
	return g.byHandle.Has(handle)
}

func (g *generation[H]) put(rec *record[H]) {
	g.byHandle.Put(rec.handle, rec)
	g.ordered.ReplaceOrInsert(rec)
}

func (g *generation[H]) delete(handle H) (*record[H], bool) {
	rec, ok := g.byHandle.Get(handle)
	if !ok {
		return nil, false
	}

	g.byHandle.Delete(handle)
	g.ordered.Delete(rec)
	return rec, true
}

func (g *generation[H]) count() int {
	return g.byHandle.Count()
}

// ascend visits records in sequence order until visit returns false
func (g *generation[H]) ascend(visit func(rec *record[H]) bool) {
	g.ordered.Ascend(visit)
}

// clear empties the generation. The handle map is rebuilt at its original capacity.
func (g *generation[H]) clear() {
	g.byHandle = swiss.NewMap[H, *record[H]](uint32(g.capacity))
	g.ordered.Clear(false)
}
