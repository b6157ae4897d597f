// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package levels

import (
	"iter"

	"github.com/ClusterCockpit/xsparse/pkg/sparse"
)

// Offset stores exactly one child position per parent position, whose
// coordinate is computed by adding a per-parent-coordinate shift to the last
// parent coordinate rather than read from a coordinate array. It is the level
// format banded/diagonal tensors use, where the child coordinate along a mode
// is the parent coordinate plus a fixed, per-group displacement.
//
// Full=false, Ordered, Unique, Branchless=true, Compact.
type Offset struct {
	size   sparse.Coord
	shifts SliceVec
}

// NewOffset returns an Offset level backed by the given per-parent-coordinate
// shift table: shifts[i] is added to coordinate i to produce that parent's
// single child coordinate.
func NewOffset(size sparse.Coord, shifts []sparse.Coord) *Offset {
	o := &Offset{size: size}
	o.shifts.Grow(len(shifts))
	for _, s := range shifts {
		o.shifts.Append(s)
	}
	return o
}

func (o *Offset) Size() sparse.Coord { return o.size }

func (o *Offset) Properties() sparse.Properties {
	return sparse.Properties{Full: false, Ordered: true, Unique: true, Branchless: true, Compact: true}
}

// PosBounds always reports a single-element range, like Singleton: one
// parent position owns exactly one child position.
func (o *Offset) PosBounds(pkm1 sparse.Pos) (begin, end sparse.Pos) {
	return pkm1, pkm1 + 1
}

// PosAccess returns the last parent coordinate shifted by this level's
// per-coordinate offset table.
func (o *Offset) PosAccess(pk sparse.Pos, parentCoords []sparse.Coord) sparse.Coord {
	i0 := parentCoords[len(parentCoords)-1]
	return i0 + o.shifts.At(int(i0))
}

func (o *Offset) IterHelper(parentCoords []sparse.Coord, pkm1 sparse.Pos) iter.Seq2[sparse.Coord, sparse.Pos] {
	return sparse.CoordinatePositionIter(o, parentCoords, pkm1)
}

var (
	_ sparse.Level           = (*Offset)(nil)
	_ sparse.PositionBounded = (*Offset)(nil)
)
