// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sparse

import "iter"

// CoordinateValueIter builds the coordinate-value iteration protocol for a
// coordinate-driven level: it walks every coordinate CoordBounds allows and
// yields only those CoordAccess actually resolves to a position.
func CoordinateValueIter(l CoordinateBounded, parentCoords []Coord, pkm1 Pos) iter.Seq2[Coord, Pos] {
	return func(yield func(Coord, Pos) bool) {
		begin, end := l.CoordBounds(parentCoords)
		for ik := begin; ik < end; ik++ {
			pos, ok := l.CoordAccess(pkm1, parentCoords, ik)
			if !ok {
				continue
			}
			if !yield(ik, pos) {
				return
			}
		}
	}
}

// CoordinatePositionIter builds the coordinate-position iteration protocol
// for a position-driven level: it walks every position PosBounds allows and
// recovers the coordinate stored there via PosAccess.
func CoordinatePositionIter(l PositionBounded, parentCoords []Coord, pkm1 Pos) iter.Seq2[Coord, Pos] {
	return func(yield func(Coord, Pos) bool) {
		begin, end := l.PosBounds(pkm1)
		for pk := begin; pk < end; pk++ {
			ik := l.PosAccess(pk, parentCoords)
			if !yield(ik, pk) {
				return
			}
		}
	}
}
