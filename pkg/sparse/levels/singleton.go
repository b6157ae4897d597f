// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package levels

import (
	"iter"

	"github.com/ClusterCockpit/xsparse/pkg/sparse"
)

// Singleton stores exactly one child coordinate per parent position: the
// coordinate array crd is indexed directly by parent position, with no
// separate position array. It is the level format coordinate-of-value-tuple
// (COO) tails use.
//
// Full=false, Ordered, Unique, Branchless=true, Compact.
type Singleton struct {
	size sparse.Coord
	crd  SliceVec
}

// NewSingleton returns an empty Singleton level of the given logical size.
func NewSingleton(size sparse.Coord) *Singleton {
	return &Singleton{size: size}
}

func (s *Singleton) Size() sparse.Coord { return s.size }

func (s *Singleton) Properties() sparse.Properties {
	return sparse.Properties{Full: false, Ordered: true, Unique: true, Branchless: true, Compact: true}
}

// PosBounds always reports a single-element range: one parent position owns
// exactly one child position, itself.
func (s *Singleton) PosBounds(pkm1 sparse.Pos) (begin, end sparse.Pos) {
	return pkm1, pkm1 + 1
}

func (s *Singleton) PosAccess(pk sparse.Pos, parentCoords []sparse.Coord) sparse.Coord {
	return s.crd.At(int(pk))
}

func (s *Singleton) IterHelper(parentCoords []sparse.Coord, pkm1 sparse.Pos) iter.Seq2[sparse.Coord, sparse.Pos] {
	return sparse.CoordinatePositionIter(s, parentCoords, pkm1)
}

// AppendCoord appends the single coordinate for the next parent position.
// There is no AppendInit/AppendEdges/AppendFinalize: position and parent
// position coincide, so there is nothing to size or finalize.
func (s *Singleton) AppendCoord(ik sparse.Coord) {
	s.crd.Append(ik)
}

var (
	_ sparse.Level           = (*Singleton)(nil)
	_ sparse.PositionBounded = (*Singleton)(nil)
)
