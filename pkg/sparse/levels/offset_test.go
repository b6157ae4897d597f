// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package levels

import (
	"testing"

	"github.com/ClusterCockpit/xsparse/pkg/sparse"
)

func TestOffsetPosAccess(t *testing.T) {
	o := NewOffset(10, []sparse.Coord{0, 1, 2, 3})

	begin, end := o.PosBounds(2)
	if begin != 2 || end != 3 {
		t.Fatalf("PosBounds(2) = [%d, %d), want [2, 3)", begin, end)
	}
	if got := o.PosAccess(2, []sparse.Coord{2}); got != 4 {
		t.Fatalf("PosAccess(2, [2]) = %d, want 4 (2 + shift[2]=2)", got)
	}
}

func TestOffsetProperties(t *testing.T) {
	o := NewOffset(10, nil)
	p := o.Properties()
	if p.Full || !p.Ordered || !p.Unique || !p.Branchless || !p.Compact {
		t.Fatalf("unexpected properties: %+v", p)
	}
}
