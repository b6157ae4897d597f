// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package levels provides the concrete sparse storage formats: Dense,
// Compressed, Singleton, Hashed, Offset, and Range. Each implements
// github.com/ClusterCockpit/xsparse/pkg/sparse.Level plus whichever of
// PositionBounded, CoordinateBounded, Appendable, Insertable, or Locator its
// storage discipline supports.
package levels

import "github.com/ClusterCockpit/xsparse/pkg/sparse"

// VecTrait abstracts the growable, index-addressed sequence a level uses to
// store per-position data (coordinates, position offsets). Compressed,
// Singleton, Offset, and Range all hold the concrete SliceVec below as a
// field; none of them accepts another VecTrait implementation, so a level's
// backing container cannot be swapped.
type VecTrait interface {
	Len() int
	At(i int) sparse.Coord
	Append(v sparse.Coord)
}

// MapTrait abstracts the coordinate-to-position map a locate-capable level
// uses. Hashed holds the concrete CoordMap below and iterates its underlying
// Go map directly; it does not accept another MapTrait implementation.
type MapTrait interface {
	Get(k sparse.Coord) (sparse.Pos, bool)
	Set(k sparse.Coord, v sparse.Pos)
	Len() int
}

// SliceVec is the default VecTrait, a thin wrapper over a Go slice.
type SliceVec struct {
	data []sparse.Coord
}

func (v *SliceVec) Len() int { return len(v.data) }

func (v *SliceVec) At(i int) sparse.Coord { return v.data[i] }

func (v *SliceVec) Append(c sparse.Coord) { v.data = append(v.data, c) }

// Slice exposes the backing slice directly for callers that need bulk read
// access.
func (v *SliceVec) Slice() []sparse.Coord { return v.data }

// Reset empties the vector, keeping its backing array.
func (v *SliceVec) Reset() { v.data = v.data[:0] }

// Grow preallocates capacity for n elements.
func (v *SliceVec) Grow(n int) {
	if cap(v.data) < n {
		grown := make([]sparse.Coord, len(v.data), n)
		copy(grown, v.data)
		v.data = grown
	}
}

// CoordMap is the default MapTrait, a thin wrapper over a Go map.
type CoordMap struct {
	data map[sparse.Coord]sparse.Pos
}

// NewCoordMap returns an empty CoordMap ready to use.
func NewCoordMap() *CoordMap {
	return &CoordMap{data: make(map[sparse.Coord]sparse.Pos)}
}

func (m *CoordMap) Get(k sparse.Coord) (sparse.Pos, bool) {
	v, ok := m.data[k]
	return v, ok
}

func (m *CoordMap) Set(k sparse.Coord, v sparse.Pos) {
	m.data[k] = v
}

func (m *CoordMap) Len() int { return len(m.data) }
