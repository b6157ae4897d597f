// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package levels

import (
	"iter"

	"github.com/ClusterCockpit/xsparse/pkg/sparse"
)

// Range is Offset's coordinate-driven counterpart: it clips the legal
// coordinate range per parent coordinate against a per-parent-coordinate
// displacement table, so a banded/diagonal tensor's legal column range
// narrows near the edges of the matrix instead of producing out-of-bounds
// positions.
//
// Full=false, Ordered, Unique, Branchless=false, Compact.
type Range struct {
	size       sparse.Coord // this level's logical size (sizeN)
	parentSize sparse.Coord // the enclosing level's logical size (sizeM)
	shifts     SliceVec     // per-parent-coordinate displacement
}

// NewRange returns a Range level of the given logical size, clipped against
// parentSize (the enclosing level's size) using the given per-parent-
// coordinate displacement table.
func NewRange(size, parentSize sparse.Coord, shifts []sparse.Coord) *Range {
	r := &Range{size: size, parentSize: parentSize}
	r.shifts.Grow(len(shifts))
	for _, s := range shifts {
		r.shifts.Append(s)
	}
	return r
}

func (r *Range) Size() sparse.Coord { return r.size }

func (r *Range) Properties() sparse.Properties {
	return sparse.Properties{Full: false, Ordered: true, Unique: true, Branchless: false, Compact: true}
}

// CoordBounds clips [0, size) against the displacement recorded for the
// parent coordinate, so that CoordAccess's pkm1*size+ik formula below never
// produces a position outside the tensor's actual backing window.
func (r *Range) CoordBounds(parentCoords []sparse.Coord) (begin, end sparse.Coord) {
	i0 := parentCoords[len(parentCoords)-1]
	off := r.shifts.At(int(i0))
	begin = -off
	if begin < 0 {
		begin = 0
	}
	end = r.parentSize - off
	if end > r.size {
		end = r.size
	}
	if end < begin {
		end = begin
	}
	return begin, end
}

// CoordAccess combines parent position and coordinate into a flat child
// position; CoordBounds already guarantees ik lies inside the backing
// window for the given parent coordinate.
func (r *Range) CoordAccess(pkm1 sparse.Pos, parentCoords []sparse.Coord, ik sparse.Coord) (sparse.Pos, bool) {
	return sparse.Pos(int64(pkm1)*int64(r.size) + int64(ik)), true
}

func (r *Range) IterHelper(parentCoords []sparse.Coord, pkm1 sparse.Pos) iter.Seq2[sparse.Coord, sparse.Pos] {
	return sparse.CoordinateValueIter(r, parentCoords, pkm1)
}

var (
	_ sparse.Level             = (*Range)(nil)
	_ sparse.CoordinateBounded = (*Range)(nil)
)
