// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sparse

import "iter"

// LocatePositionIter builds the locate-position iteration protocol: given a
// sequence of candidate coordinates (typically produced by another,
// co-iterating level), it resolves each through Locate and yields only the
// coordinates l actually stores under pkm1. It follows the same rule package
// coiterate applies when it probes an unordered level through Locate: such a
// level never drives the merge, it only answers "do you have this coordinate".
func LocatePositionIter(l Locator, candidates iter.Seq[Coord], pkm1 Pos) iter.Seq2[Coord, Pos] {
	return func(yield func(Coord, Pos) bool) {
		for ik := range candidates {
			pos, ok := l.Locate(pkm1, ik)
			if !ok {
				continue
			}
			if !yield(ik, pos) {
				return
			}
		}
	}
}
