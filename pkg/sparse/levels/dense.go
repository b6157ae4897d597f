// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package levels

import (
	"iter"

	"github.com/ClusterCockpit/xsparse/pkg/sparse"
)

// Dense stores every coordinate in [0, size) for every parent position; it
// never drops or reorders a coordinate. Position and coordinate coincide
// modulo the parent stride: pos = pkm1*size + ik.
//
// Full, Ordered, Unique, Branchless=false, Compact.
type Dense struct {
	size sparse.Coord
}

// NewDense returns a Dense level of the given logical size.
func NewDense(size sparse.Coord) *Dense {
	return &Dense{size: size}
}

func (d *Dense) Size() sparse.Coord { return d.size }

func (d *Dense) Properties() sparse.Properties {
	return sparse.Properties{Full: true, Ordered: true, Unique: true, Branchless: false, Compact: true}
}

// CoordBounds always reports the full [0, size) range, regardless of parent
// coordinates: every parent position has every coordinate.
func (d *Dense) CoordBounds(parentCoords []sparse.Coord) (begin, end sparse.Coord) {
	return 0, d.size
}

// CoordAccess never fails: Dense is Full, so every coordinate in range
// resolves to a position.
func (d *Dense) CoordAccess(pkm1 sparse.Pos, parentCoords []sparse.Coord, ik sparse.Coord) (sparse.Pos, bool) {
	return sparse.Pos(int64(pkm1)*int64(d.size) + int64(ik)), true
}

func (d *Dense) IterHelper(parentCoords []sparse.Coord, pkm1 sparse.Pos) iter.Seq2[sparse.Coord, sparse.Pos] {
	return sparse.CoordinateValueIter(d, parentCoords, pkm1)
}

var (
	_ sparse.Level              = (*Dense)(nil)
	_ sparse.CoordinateBounded  = (*Dense)(nil)
)
