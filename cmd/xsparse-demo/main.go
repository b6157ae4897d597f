// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command xsparse-demo is a minimal illustrative CLI over the xsparse
// engine: it builds two small CSR-style matrices from flag-specified
// coordinates and prints their set-intersection or set-union co-iteration.
// It is not a general-purpose tool; it exists to exercise the library end to
// end the way a reader would want to see it used once.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ClusterCockpit/cc-lib/v2/ccLogger"
	"github.com/ClusterCockpit/xsparse/pkg/sparse"
	"github.com/ClusterCockpit/xsparse/pkg/sparse/coiterate"
	"github.com/ClusterCockpit/xsparse/pkg/sparse/levels"
)

func main() {
	size := flag.Int("size", 8, "logical size of the merged mode")
	aCoords := flag.String("a", "1,3,5", "comma-separated coordinates stored in the first row")
	bCoords := flag.String("b", "2,3,6", "comma-separated coordinates stored in the second row")
	op := flag.String("op", "union", "merge operation: union or intersect")
	capacityHint := flag.Int("capacity-hint", 0, "EngineConfig.AppendCapacityHint: reserve this many coordinate slots per row up front")
	deferPredicateCheck := flag.Bool("defer-predicate-check", false, "EngineConfig.DeferPredicateCheck: push the predicate-legality check to the first Iterate call")
	flag.Parse()

	cfg := sparse.EngineConfig{AppendCapacityHint: *capacityHint, DeferPredicateCheck: *deferPredicateCheck}

	a, err := parseRow(cfg, *size, *aCoords)
	if err != nil {
		ccLogger.Errorf("parsing -a: %s", err)
		os.Exit(1)
	}
	b, err := parseRow(cfg, *size, *bCoords)
	if err != nil {
		ccLogger.Errorf("parsing -b: %s", err)
		os.Exit(1)
	}

	var pred coiterate.Predicate
	switch *op {
	case "union":
		pred = coiterate.Or(coiterate.At(0), coiterate.At(1))
	case "intersect":
		pred = coiterate.And(coiterate.At(0), coiterate.At(1))
	default:
		ccLogger.Errorf("unknown -op %q, want union or intersect", *op)
		os.Exit(1)
	}

	co, err := coiterate.NewWithConfig(cfg, pred, a, b)
	if err != nil {
		ccLogger.Errorf("building coiterator: %s", err)
		os.Exit(1)
	}

	for r := range co.Iterate(nil, []sparse.Pos{0, 0}) {
		fmt.Printf("%d: present=%v\n", r.Coord, r.Present)
	}
}

func parseRow(cfg sparse.EngineConfig, size int, csv string) (*levels.Compressed, error) {
	var coords []sparse.Coord
	if strings.TrimSpace(csv) != "" {
		for _, field := range strings.Split(csv, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("invalid coordinate %q: %w", field, err)
			}
			coords = append(coords, sparse.Coord(v))
		}
	}

	c := levels.NewCompressed(sparse.Coord(size))
	cfg.ApplyCapacityHint(c)
	c.AppendInit(1)
	for _, ik := range coords {
		c.AppendCoord(ik)
	}
	c.AppendEdges(0, 0, sparse.Pos(len(coords)))
	c.AppendFinalize(1)
	return c, nil
}
