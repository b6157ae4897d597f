// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sparse

import "iter"

// Coord is the semantic index of an element along one tensor mode (e.g. a row
// number). It is always non-negative in a well-formed tensor.
type Coord int64

// Pos is an opaque handle a level hands to its lower level to disambiguate
// which sub-range of storage belongs to the current coordinate. At the root
// of a level chain it is a placeholder (NoParent).
type Pos int64

// NoParent is the parent position passed to the outermost level of a chain,
// which has no enclosing level.
const NoParent Pos = 0

// Level is the uniform contract every storage format in package levels
// implements. IterHelper returns the (coordinate, position) pairs this level
// contributes under a given parent context, in whatever order the format's
// Properties.Ordered flag promises.
type Level interface {
	// Size returns the logical extent of this level along its mode.
	Size() Coord
	// Properties returns this level format's fixed capability flags.
	Properties() Properties
	// IterHelper returns the sequence of (coordinate, position) pairs this
	// level yields under the given parent coordinates and parent position.
	IterHelper(parentCoords []Coord, pkm1 Pos) iter.Seq2[Coord, Pos]
}

// PositionBounded is implemented by position-driven level formats (e.g.
// Compressed, Singleton, Offset): they enumerate stored positions and
// recover coordinates from them.
type PositionBounded interface {
	// PosBounds returns the half-open range of positions a parent position
	// owns in this level.
	PosBounds(pkm1 Pos) (begin, end Pos)
	// PosAccess returns the coordinate stored at position pk.
	PosAccess(pk Pos, parentCoords []Coord) Coord
}

// CoordinateBounded is implemented by coordinate-driven level formats (e.g.
// Dense, Range): they enumerate coordinates directly and compute positions
// from them.
type CoordinateBounded interface {
	// CoordBounds returns the half-open range of coordinates legal under
	// the given parent coordinates.
	CoordBounds(parentCoords []Coord) (begin, end Coord)
	// CoordAccess returns the child position for coordinate ik under parent
	// position pkm1, or ok=false if that coordinate is legal but not
	// stored.
	CoordAccess(pkm1 Pos, parentCoords []Coord, ik Coord) (pos Pos, ok bool)
}

// Appendable is implemented by level formats that support the compact,
// ordered build protocol: AppendInit sizes per-parent metadata,
// AppendEdges records the child range of one parent position, AppendCoord
// appends a coordinate, and AppendFinalize converts per-parent range counts
// into a prefix sum of positions.
type Appendable interface {
	AppendInit(prevLevelSize Coord)
	AppendEdges(pkm1 Pos, begin, end Pos)
	AppendCoord(ik Coord)
	AppendFinalize(prevLevelSize Coord)
}

// Insertable is implemented by level formats that support the random-access
// build protocol (e.g. Hashed): InsertInit sizes per-parent slots and
// InsertCoord registers a (coordinate -> position) binding under a parent.
type Insertable interface {
	InsertInit(prevLevelSize Coord)
	InsertCoord(pkm1 Pos, pk Pos, ik Coord)
}
