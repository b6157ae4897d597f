// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package levels

import (
	"testing"

	"github.com/ClusterCockpit/xsparse/pkg/sparse"
)

func TestDenseProperties(t *testing.T) {
	d := NewDense(4)
	p := d.Properties()
	if !p.Full || !p.Ordered || !p.Unique || !p.Compact || p.Branchless {
		t.Fatalf("unexpected properties: %+v", p)
	}
}

func TestDenseCoordAccess(t *testing.T) {
	d := NewDense(4)
	begin, end := d.CoordBounds(nil)
	if begin != 0 || end != 4 {
		t.Fatalf("CoordBounds = [%d, %d), want [0, 4)", begin, end)
	}
	for ik := sparse.Coord(0); ik < 4; ik++ {
		pos, ok := d.CoordAccess(2, nil, ik)
		if !ok {
			t.Fatalf("CoordAccess(2, nil, %d) not ok", ik)
		}
		want := sparse.Pos(2*4 + int64(ik))
		if pos != want {
			t.Fatalf("CoordAccess(2, nil, %d) = %d, want %d", ik, pos, want)
		}
	}
}

func TestDenseIterHelper(t *testing.T) {
	d := NewDense(3)
	var coords []sparse.Coord
	for ik, pos := range d.IterHelper(nil, 1) {
		coords = append(coords, ik)
		if pos != sparse.Pos(int64(1)*3+int64(ik)) {
			t.Fatalf("unexpected position %d for coordinate %d", pos, ik)
		}
	}
	if len(coords) != 3 {
		t.Fatalf("got %d coordinates, want 3", len(coords))
	}
	for i, c := range coords {
		if c != sparse.Coord(i) {
			t.Fatalf("coords[%d] = %d, want %d (Dense must be ordered)", i, c, i)
		}
	}
}
