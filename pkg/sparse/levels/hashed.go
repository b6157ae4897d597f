// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package levels

import (
	"iter"
	"sync"

	"github.com/ClusterCockpit/xsparse/pkg/sparse"
)

// Hashed stores, for each parent position, an unordered coordinate-to-position
// map. It trades the ordering Dense/Compressed/Singleton provide for O(1)
// random lookup via Locate, and is the only level format in this package that
// cannot drive a co-iteration on its own: it must be paired with at least one
// ordered level.
//
// It generalizes the hierarchical children map[string]*Level tree
// cc-backend's metric store keeps per level, from a string-keyed child-level
// tree to a coordinate-keyed position map per parent, reusing the same
// lazy-create-under-write-lock discipline for concurrent inserts.
//
// Full=false, Ordered=false, Unique=true, Branchless=false, Compact.
type Hashed struct {
	size sparse.Coord
	maps []*CoordMap
	lock sync.RWMutex
}

// NewHashed returns a Hashed level of the given logical size, with no parent
// slots allocated yet; call InsertInit before the first InsertCoord.
func NewHashed(size sparse.Coord) *Hashed {
	return &Hashed{size: size}
}

func (h *Hashed) Size() sparse.Coord { return h.size }

func (h *Hashed) Properties() sparse.Properties {
	return sparse.Properties{Full: false, Ordered: false, Unique: true, Branchless: false, Compact: true}
}

// InsertInit allocates one coordinate map slot per parent position. Maps
// themselves are created lazily on first insert, the same way cc-backend's
// metric-store level tree only allocates a children map once a level
// actually gets a child.
func (h *Hashed) InsertInit(prevLevelSize sparse.Coord) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.maps = make([]*CoordMap, prevLevelSize)
}

// InsertCoord records that coordinate ik maps to position pk under parent
// position pkm1. Safe for concurrent use across distinct and identical
// parent positions alike, using the same RLock-then-Lock double-checked
// pattern the metric store's findLevelOrCreate uses to lazily create a
// child map; the map write itself is made under the write lock.
func (h *Hashed) InsertCoord(pkm1 sparse.Pos, pk sparse.Pos, ik sparse.Coord) {
	h.lock.RLock()
	m := h.maps[pkm1]
	h.lock.RUnlock()
	if m == nil {
		h.lock.Lock()
		m = h.maps[pkm1]
		if m == nil {
			m = NewCoordMap()
			h.maps[pkm1] = m
		}
		h.lock.Unlock()
	}
	h.lock.Lock()
	m.Set(ik, pk)
	h.lock.Unlock()
}

// Locate resolves coordinate ik under parent position pkm1, or reports
// ok=false if either the parent has no map yet or the coordinate was never
// inserted under it.
func (h *Hashed) Locate(pkm1 sparse.Pos, ik sparse.Coord) (sparse.Pos, bool) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	if int(pkm1) >= len(h.maps) {
		return 0, false
	}
	m := h.maps[pkm1]
	if m == nil {
		return 0, false
	}
	return m.Get(ik)
}

// IterHelper walks the parent position's map in whatever order Go's map
// iteration gives, which is why Hashed reports Ordered=false: callers must
// not rely on any particular sequence.
func (h *Hashed) IterHelper(parentCoords []sparse.Coord, pkm1 sparse.Pos) iter.Seq2[sparse.Coord, sparse.Pos] {
	return func(yield func(sparse.Coord, sparse.Pos) bool) {
		h.lock.RLock()
		var m *CoordMap
		if int(pkm1) < len(h.maps) {
			m = h.maps[pkm1]
		}
		h.lock.RUnlock()
		if m == nil {
			return
		}
		for ik, pk := range m.data {
			if !yield(ik, pk) {
				return
			}
		}
	}
}

var (
	_ sparse.Level      = (*Hashed)(nil)
	_ sparse.Locator    = (*Hashed)(nil)
	_ sparse.Insertable = (*Hashed)(nil)
)
