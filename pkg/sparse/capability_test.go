// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sparse

import (
	"testing"
)

// stubCoordinateBounded is a minimal CoordinateBounded fake that stores
// every other coordinate in [0, 6), used to verify CoordinateValueIter skips
// CoordAccess misses rather than yielding them.
type stubCoordinateBounded struct{}

func (stubCoordinateBounded) CoordBounds(parentCoords []Coord) (Coord, Coord) { return 0, 6 }

func (stubCoordinateBounded) CoordAccess(pkm1 Pos, parentCoords []Coord, ik Coord) (Pos, bool) {
	if ik%2 != 0 {
		return 0, false
	}
	return Pos(ik), true
}

func TestCoordinateValueIterSkipsMisses(t *testing.T) {
	var got []Coord
	for ik := range CoordinateValueIter(stubCoordinateBounded{}, nil, 0) {
		got = append(got, ik)
	}
	want := []Coord{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

type stubPositionBounded struct{ coords []Coord }

func (s stubPositionBounded) PosBounds(pkm1 Pos) (Pos, Pos) { return 0, Pos(len(s.coords)) }

func (s stubPositionBounded) PosAccess(pk Pos, parentCoords []Coord) Coord { return s.coords[pk] }

func TestCoordinatePositionIter(t *testing.T) {
	s := stubPositionBounded{coords: []Coord{5, 1, 9}}
	var got []Coord
	for ik := range CoordinatePositionIter(s, nil, 0) {
		got = append(got, ik)
	}
	want := []Coord{5, 1, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

type stubLocator struct{ have map[Coord]Pos }

func (s stubLocator) Locate(pkm1 Pos, ik Coord) (Pos, bool) {
	p, ok := s.have[ik]
	return p, ok
}

func TestLocatePositionIterFiltersCandidates(t *testing.T) {
	loc := stubLocator{have: map[Coord]Pos{2: 20, 4: 40}}
	candidates := func(yield func(Coord) bool) {
		for _, c := range []Coord{1, 2, 3, 4, 5} {
			if !yield(c) {
				return
			}
		}
	}
	var got []Coord
	for ik := range LocatePositionIter(loc, candidates, 0) {
		got = append(got, ik)
	}
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("got %v, want [2 4]", got)
	}
}

func TestHasLocate(t *testing.T) {
	if HasLocate(stubCoordinateBounded{}) {
		t.Fatalf("stubCoordinateBounded should not satisfy Locator")
	}
	if !HasLocate(stubLocator{}) {
		t.Fatalf("stubLocator should satisfy Locator")
	}
}
