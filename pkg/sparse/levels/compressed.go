// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package levels

import (
	"iter"

	"github.com/ClusterCockpit/xsparse/pkg/sparse"
)

// Compressed is the classic CSR-style level: a position array pos indexed
// by parent position gives the [begin, end) range of child positions that
// parent owns, and a coordinate array crd gives the coordinate stored at
// each child position.
//
// Full=false, Ordered, Unique, Branchless=false, Compact.
type Compressed struct {
	size         sparse.Coord
	pos          []sparse.Pos
	crd          SliceVec
	capacityHint int
}

// NewCompressed returns an empty Compressed level of the given logical size,
// ready for the append build protocol.
func NewCompressed(size sparse.Coord) *Compressed {
	return &Compressed{size: size}
}

func (c *Compressed) Size() sparse.Coord { return c.size }

func (c *Compressed) Properties() sparse.Properties {
	return sparse.Properties{Full: false, Ordered: true, Unique: true, Branchless: false, Compact: true}
}

func (c *Compressed) PosBounds(pkm1 sparse.Pos) (begin, end sparse.Pos) {
	return c.pos[pkm1], c.pos[pkm1+1]
}

func (c *Compressed) PosAccess(pk sparse.Pos, parentCoords []sparse.Coord) sparse.Coord {
	return c.crd.At(int(pk))
}

func (c *Compressed) IterHelper(parentCoords []sparse.Coord, pkm1 sparse.Pos) iter.Seq2[sparse.Coord, sparse.Pos] {
	return sparse.CoordinatePositionIter(c, parentCoords, pkm1)
}

// AppendInit allocates the position array for prevLevelSize parent positions
// and resets the coordinate array. Must be called once before any
// AppendCoord/AppendEdges calls. If SetCapacityHint was called first, the
// coordinate array is pre-grown to that capacity.
func (c *Compressed) AppendInit(prevLevelSize sparse.Coord) {
	c.pos = make([]sparse.Pos, prevLevelSize+1)
	c.crd.Reset()
	if c.capacityHint > 0 {
		c.crd.Grow(c.capacityHint)
	}
}

// SetCapacityHint reserves capacity for n coordinates up front, ahead of the
// next AppendInit, so a caller that knows roughly how many coordinates it
// will append can avoid the coordinate array's incremental regrowth.
func (c *Compressed) SetCapacityHint(n int) {
	c.capacityHint = n
}

// AppendCoord appends one coordinate to the end of the coordinate array. The
// caller must follow each parent position's run of AppendCoord calls with a
// matching AppendEdges call.
func (c *Compressed) AppendCoord(ik sparse.Coord) {
	c.crd.Append(ik)
}

// AppendEdges records that parent position pkm1 owns the [begin, end) range
// of child positions just appended via AppendCoord. Ranges are recorded as
// counts here; AppendFinalize converts them into an actual prefix sum.
func (c *Compressed) AppendEdges(pkm1 sparse.Pos, begin, end sparse.Pos) {
	c.pos[pkm1+1] = sparse.Pos(int64(end) - int64(begin))
}

// AppendFinalize walks the recorded per-parent counts and turns them into
// the cumulative position offsets PosBounds expects, the same prefix-sum
// step the compressed construction algorithm in the original source
// performs at the end of a build.
func (c *Compressed) AppendFinalize(prevLevelSize sparse.Coord) {
	for i := sparse.Pos(1); i <= sparse.Pos(prevLevelSize); i++ {
		c.pos[i] += c.pos[i-1]
	}
}

var (
	_ sparse.Level           = (*Compressed)(nil)
	_ sparse.PositionBounded = (*Compressed)(nil)
	_ sparse.Appendable      = (*Compressed)(nil)
)
