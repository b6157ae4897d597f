// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package levels

import (
	"sync"
	"testing"

	"github.com/ClusterCockpit/xsparse/pkg/sparse"
)

func TestHashedInsertAndLocate(t *testing.T) {
	h := NewHashed(10)
	h.InsertInit(2)
	h.InsertCoord(0, 100, 5)
	h.InsertCoord(0, 101, 7)
	h.InsertCoord(1, 200, 5)

	if pos, ok := h.Locate(0, 5); !ok || pos != 100 {
		t.Fatalf("Locate(0, 5) = (%d, %v), want (100, true)", pos, ok)
	}
	if pos, ok := h.Locate(0, 7); !ok || pos != 101 {
		t.Fatalf("Locate(0, 7) = (%d, %v), want (101, true)", pos, ok)
	}
	if _, ok := h.Locate(0, 9); ok {
		t.Fatalf("Locate(0, 9) should miss, coordinate was never inserted")
	}
	if pos, ok := h.Locate(1, 5); !ok || pos != 200 {
		t.Fatalf("Locate(1, 5) = (%d, %v), want (200, true)", pos, ok)
	}
}

func TestHashedConcurrentInsert(t *testing.T) {
	h := NewHashed(100)
	h.InsertInit(1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h.InsertCoord(0, sparse.Pos(i), sparse.Coord(i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		if pos, ok := h.Locate(0, sparse.Coord(i)); !ok || pos != sparse.Pos(i) {
			t.Fatalf("Locate(0, %d) = (%d, %v), want (%d, true)", i, pos, ok, i)
		}
	}
}

func TestHashedProperties(t *testing.T) {
	h := NewHashed(10)
	p := h.Properties()
	if p.Full || p.Ordered || !p.Unique || p.Branchless || !p.Compact {
		t.Fatalf("unexpected properties: %+v", p)
	}
}
