package dstructure

import "sort"

// Item is a (vertex, key) pair as returned by Pull or accepted by
// BatchPrepend.
type Item struct {
	Vertex int
	Key    float64
}

type entry struct {
	vertex int
	key    float64
}

type block struct {
	items      []*entry
	upperBound float64
}

func (b *block) minKey() float64 {
	min := b.items[0].key
	for _, it := range b.items[1:] {
		if it.key < min {
			min = it.key
		}
	}
	return min
}

type location struct {
	blk *block
	it  *entry
}

// DataStructure is a D-structure with block target size m and upper
// bound b: INSERT rejects any key >= b. The zero value is not usable;
// construct one with New.
type DataStructure struct {
	m     int
	bound float64

	d0 []*block
	d1 []*block

	loc   map[int]*location
	count int
}

// New creates a DataStructure with target block size m and upper bound
// b. m must be at least 1.
func New(m int, b float64) *DataStructure {
	if m < 1 {
		m = 1
	}
	return &DataStructure{
		m:     m,
		bound: b,
		loc:   make(map[int]*location),
	}
}

// Len reports how many items are currently held.
func (d *DataStructure) Len() int {
	return d.count
}

// Empty reports whether the structure currently holds no items.
func (d *DataStructure) Empty() bool {
	return d.count == 0
}

// Insert places (vertex, key) into D1, superseding any existing entry
// for vertex with a strictly larger key. Keys >= the structure's bound
// are silently rejected, per spec.
func (d *DataStructure) Insert(vertex int, key float64) {
	if key >= d.bound {
		return
	}
	if loc, ok := d.loc[vertex]; ok {
		if loc.it.key <= key {
			return
		}
		d.removeLocation(loc)
	}
	d.insertIntoD1(vertex, key)
}

func (d *DataStructure) insertIntoD1(vertex int, key float64) {
	idx := sort.Search(len(d.d1), func(i int) bool {
		return d.d1[i].upperBound >= key
	})
	if idx == len(d.d1) {
		blk := &block{upperBound: d.bound}
		d.d1 = append(d.d1, blk)
		idx = len(d.d1) - 1
	}

	target := d.d1[idx]
	it := &entry{vertex: vertex, key: key}
	target.items = append(target.items, it)
	d.loc[vertex] = &location{blk: target, it: it}
	d.count++

	if len(target.items) > d.m {
		d.splitD1(idx)
	}
}

// splitD1 partitions an overflowing D1 block around its median: the
// smaller half stays in place with a tightened upper bound, the larger
// half becomes a new block immediately after it.
func (d *DataStructure) splitD1(idx int) {
	b := d.d1[idx]
	sort.Slice(b.items, func(i, j int) bool { return b.items[i].key < b.items[j].key })

	mid := len(b.items) / 2
	left := b.items[:mid]
	right := append([]*entry(nil), b.items[mid:]...)

	newBlock := &block{items: right, upperBound: b.upperBound}
	b.items = left
	b.upperBound = left[len(left)-1].key

	for _, it := range newBlock.items {
		d.loc[it.vertex].blk = newBlock
	}

	d.d1 = append(d.d1[:idx+1], append([]*block{newBlock}, d.d1[idx+1:]...)...)
}

// BatchPrepend accepts a collection of items whose keys are all known to
// be strictly below every key currently held, and prepends them to D0 as
// one or more new blocks of size at most m. Vertices already present are
// superseded, matching Insert's dedup rule (the caller's precondition
// guarantees the new key is always the smaller one).
func (d *DataStructure) BatchPrepend(items []Item) {
	if len(items) == 0 {
		return
	}

	best := make(map[int]float64, len(items))
	for _, it := range items {
		if cur, ok := best[it.Vertex]; !ok || it.Key < cur {
			best[it.Vertex] = it.Key
		}
	}

	for v := range best {
		if loc, ok := d.loc[v]; ok {
			d.removeLocation(loc)
		}
	}

	merged := make([]Item, 0, len(best))
	for v, k := range best {
		merged = append(merged, Item{Vertex: v, Key: k})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Key < merged[j].Key })

	newBlocks := make([]*block, 0, (len(merged)+d.m-1)/d.m)
	for i := 0; i < len(merged); i += d.m {
		end := i + d.m
		if end > len(merged) {
			end = len(merged)
		}
		chunk := merged[i:end]
		entries := make([]*entry, len(chunk))
		for j, c := range chunk {
			entries[j] = &entry{vertex: c.Vertex, key: c.Key}
		}
		blk := &block{items: entries, upperBound: chunk[len(chunk)-1].Key}
		for _, it := range entries {
			d.loc[it.vertex] = &location{blk: blk, it: it}
		}
		newBlocks = append(newBlocks, blk)
	}

	d.count += len(merged)
	d.d0 = append(newBlocks, d.d0...)
}

// Pull extracts the smallest m items overall (m = the structure's target
// block size) and returns them together with a separator key: the
// smallest key still remaining, or the structure's bound if it is now
// empty. Every item left behind has a key >= the returned separator.
// Calling Pull on an empty structure returns no items and the bound.
func (d *DataStructure) Pull() ([]Item, float64) {
	if d.count == 0 {
		return nil, d.bound
	}

	limit := d.m
	collected := make([]Item, 0, limit)

	activeD0 := d.d0[:0]
	for _, blk := range d.d0 {
		d.drainBlock(blk, &collected, limit)
		if len(blk.items) > 0 {
			activeD0 = append(activeD0, blk)
		}
	}
	d.d0 = activeD0

	if len(collected) < limit {
		activeD1 := d.d1[:0]
		for _, blk := range d.d1 {
			d.drainBlock(blk, &collected, limit)
			if len(blk.items) > 0 {
				activeD1 = append(activeD1, blk)
			}
		}
		d.d1 = activeD1
	}

	for _, c := range collected {
		delete(d.loc, c.Vertex)
	}
	d.count -= len(collected)

	separator := d.bound
	if d.count > 0 {
		// Skip blocks emptied by superseding entries; the first non-empty
		// block holds the smallest remaining key.
	search:
		for _, blocks := range [][]*block{d.d0, d.d1} {
			for _, blk := range blocks {
				if len(blk.items) > 0 {
					separator = blk.minKey()
					break search
				}
			}
		}
	}

	return collected, separator
}

// drainBlock moves up to (limit - len(*collected)) of b's smallest items
// into *collected, sorting b first only when a partial drain would
// otherwise return the wrong items.
func (d *DataStructure) drainBlock(b *block, collected *[]Item, limit int) {
	remaining := limit - len(*collected)
	if remaining <= 0 || len(b.items) == 0 {
		return
	}

	if len(b.items) > remaining {
		sort.Slice(b.items, func(i, j int) bool { return b.items[i].key < b.items[j].key })
		taken := b.items[:remaining]
		for _, it := range taken {
			*collected = append(*collected, Item{Vertex: it.vertex, Key: it.key})
		}
		b.items = b.items[remaining:]
		return
	}

	for _, it := range b.items {
		*collected = append(*collected, Item{Vertex: it.vertex, Key: it.key})
	}
	b.items = nil
}

func (d *DataStructure) removeLocation(loc *location) {
	items := loc.blk.items
	for i, it := range items {
		if it == loc.it {
			loc.blk.items = append(items[:i], items[i+1:]...)
			break
		}
	}
	delete(d.loc, loc.it.vertex)
	d.count--
}
