// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sparse

import (
	"fmt"
	"iter"

	"github.com/ClusterCockpit/cc-lib/v2/schema"
)

// DType tags a Tensor's value-buffer element type, checked against the
// generic instantiation at construction so a Tensor[V] and its reported
// DType can never disagree.
type DType int

const (
	// DTypeFloat64 tags a Tensor[float64].
	DTypeFloat64 DType = iota
	// DTypeSchemaFloat tags a Tensor[schema.Float], cc-lib's NaN-as-missing
	// value convention: the same value type cc-backend's metric-store level
	// tree stores per position.
	DTypeSchemaFloat
	// DTypeInt64 tags a Tensor[int64].
	DTypeInt64
)

func (d DType) String() string {
	switch d {
	case DTypeFloat64:
		return "float64"
	case DTypeSchemaFloat:
		return "schema.Float"
	case DTypeInt64:
		return "int64"
	default:
		return "unknown"
	}
}

func dtypeOf[V any]() (DType, error) {
	var zero V
	switch any(zero).(type) {
	case float64:
		return DTypeFloat64, nil
	case schema.Float:
		return DTypeSchemaFloat, nil
	case int64:
		return DTypeInt64, nil
	default:
		return 0, fmt.Errorf("sparse: unsupported tensor value type %T", zero)
	}
}

// Tensor binds a chain of Level values, one per mode, to a flat value
// buffer. The last level in the chain produces the final position, which
// indexes directly into Data.
type Tensor[V any] struct {
	levels []Level
	data   []V
	dtype  DType
}

// NewTensor builds a Tensor over the given level chain and value buffer. It
// fails if V is not one of the supported element types (see DType).
func NewTensor[V any](levels []Level, data []V) (*Tensor[V], error) {
	dtype, err := dtypeOf[V]()
	if err != nil {
		return nil, err
	}
	return &Tensor[V]{levels: levels, data: data, dtype: dtype}, nil
}

// NDim returns the number of modes (the length of the level chain).
func (t *Tensor[V]) NDim() int { return len(t.levels) }

// Shape returns the logical size of each mode, one per level.
func (t *Tensor[V]) Shape() []Coord {
	shape := make([]Coord, len(t.levels))
	for i, l := range t.levels {
		shape[i] = l.Size()
	}
	return shape
}

// DType reports the value-buffer element type.
func (t *Tensor[V]) DType() DType { return t.dtype }

// Levels returns the tensor's level chain, one entry per mode, outermost
// first.
func (t *Tensor[V]) Levels() []Level { return t.levels }

// Data returns the tensor's flat value buffer, indexed by the position the
// last level in the chain produces.
func (t *Tensor[V]) Data() []V { return t.data }

// At resolves one full coordinate tuple (one entry per mode, outermost
// first) to a stored value. It is a derived operation, not a first-class
// iteration capability: it walks the level chain one mode at a time, using
// Locate where a level implements it, a direct CoordAccess call for
// coordinate-driven levels, and a binary search over the ordered position
// run otherwise. Absence at any level along the chain is reported as
// ok=false, never as an error or panic.
func (t *Tensor[V]) At(coords []Coord) (value V, ok bool) {
	if len(coords) != len(t.levels) {
		var zero V
		return zero, false
	}
	pkm1 := NoParent
	parentCoords := make([]Coord, 0, len(coords))
	for i, l := range t.levels {
		ik := coords[i]
		pos, found := resolve(l, pkm1, parentCoords, ik)
		if !found {
			var zero V
			return zero, false
		}
		parentCoords = append(parentCoords, ik)
		pkm1 = pos
	}
	idx := int(pkm1)
	if idx < 0 || idx >= len(t.data) {
		var zero V
		return zero, false
	}
	return t.data[idx], true
}

// resolve dispatches to whichever capability a level offers for turning one
// coordinate into a position: Locate is cheapest where available, then a
// direct coordinate-driven access, then a binary search over an ordered
// position-driven run.
func resolve(l Level, pkm1 Pos, parentCoords []Coord, ik Coord) (Pos, bool) {
	if loc, ok := l.(Locator); ok {
		return loc.Locate(pkm1, ik)
	}
	if cb, ok := l.(CoordinateBounded); ok {
		return cb.CoordAccess(pkm1, parentCoords, ik)
	}
	if pb, ok := l.(PositionBounded); ok {
		return binarySearchPos(pb, pkm1, parentCoords, ik)
	}
	return 0, false
}

// binarySearchPos finds ik among the positions PosBounds(pkm1) grants,
// relying on the level being Ordered and Unique so PosAccess is monotonic
// over that range.
func binarySearchPos(pb PositionBounded, pkm1 Pos, parentCoords []Coord, ik Coord) (Pos, bool) {
	begin, end := pb.PosBounds(pkm1)
	lo, hi := int64(begin), int64(end)
	for lo < hi {
		mid := lo + (hi-lo)/2
		c := pb.PosAccess(Pos(mid), parentCoords)
		switch {
		case c == ik:
			return Pos(mid), true
		case c < ik:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

// CoordSelectorElem is one mode's pattern within a CoordSelector: exactly
// one of Exact, Group, or Any should be set, mirroring the exact/group/
// wildcard discipline of cc-lib's util.Selector (the same three-way match
// pkg/metricstore/level.go's findBuffers uses on string paths), adapted here
// to integer coordinates since tensor modes are not string-keyed.
type CoordSelectorElem struct {
	// Exact matches exactly this coordinate, when non-nil.
	Exact *Coord
	// Group matches any coordinate in this list, when non-empty.
	Group []Coord
	// Any matches every coordinate the level has at this point.
	Any bool
}

// CoordSelector is a sequence of per-mode patterns, one per level in the
// tensor's chain.
type CoordSelector []CoordSelectorElem

// AtSelector walks the level chain applying one CoordSelectorElem per mode,
// yielding every (coordinates, value) pair that matches every mode's
// pattern. It generalizes At from a single coordinate tuple to a pattern
// that can match many.
func (t *Tensor[V]) AtSelector(sel CoordSelector) iter.Seq2[[]Coord, V] {
	return func(yield func([]Coord, V) bool) {
		if len(sel) != len(t.levels) {
			return
		}
		var walk func(depth int, pkm1 Pos, parentCoords []Coord) bool
		walk = func(depth int, pkm1 Pos, parentCoords []Coord) bool {
			if depth == len(t.levels) {
				idx := int(pkm1)
				if idx < 0 || idx >= len(t.data) {
					return true
				}
				return yield(append([]Coord(nil), parentCoords...), t.data[idx])
			}
			l := t.levels[depth]
			elem := sel[depth]
			switch {
			case elem.Exact != nil:
				pos, ok := resolve(l, pkm1, parentCoords, *elem.Exact)
				if !ok {
					return true
				}
				return walk(depth+1, pos, append(parentCoords, *elem.Exact))
			case len(elem.Group) != 0:
				for _, ik := range elem.Group {
					pos, ok := resolve(l, pkm1, parentCoords, ik)
					if !ok {
						continue
					}
					if !walk(depth+1, pos, append(parentCoords, ik)) {
						return false
					}
				}
				return true
			default: // Any
				for ik, pos := range l.IterHelper(parentCoords, pkm1) {
					if !walk(depth+1, pos, append(parentCoords, ik)) {
						return false
					}
				}
				return true
			}
		}
		walk(0, NoParent, make([]Coord, 0, len(t.levels)))
	}
}
