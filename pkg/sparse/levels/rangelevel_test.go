// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package levels

import (
	"testing"

	"github.com/ClusterCockpit/xsparse/pkg/sparse"
)

// TestRangeCoordBoundsClipping builds a banded 5x5 matrix level (bandwidth
// window of size 10, centered via per-row shift) and checks that the legal
// column range narrows near the matrix edges.
func TestRangeCoordBoundsClipping(t *testing.T) {
	shifts := []sparse.Coord{0, -1, -2, -3, -4}
	r := NewRange(10, 5, shifts)

	begin, end := r.CoordBounds([]sparse.Coord{0})
	if begin != 0 || end != 5 {
		t.Fatalf("row 0 CoordBounds = [%d, %d), want [0, 5)", begin, end)
	}

	begin, end = r.CoordBounds([]sparse.Coord{4})
	if begin != 4 || end != 9 {
		t.Fatalf("row 4 CoordBounds = [%d, %d), want [4, 9)", begin, end)
	}
}

func TestRangeCoordAccess(t *testing.T) {
	r := NewRange(10, 5, []sparse.Coord{0})
	pos, ok := r.CoordAccess(2, []sparse.Coord{0}, 3)
	if !ok {
		t.Fatalf("CoordAccess not ok")
	}
	if want := sparse.Pos(2*10 + 3); pos != want {
		t.Fatalf("CoordAccess = %d, want %d", pos, want)
	}
}

func TestRangeProperties(t *testing.T) {
	r := NewRange(10, 5, nil)
	p := r.Properties()
	if p.Full || !p.Ordered || !p.Unique || p.Branchless || !p.Compact {
		t.Fatalf("unexpected properties: %+v", p)
	}
}
