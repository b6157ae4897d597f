// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coiterate implements lock-step, synchronized iteration across
// several sparse.Level values sharing the same logical mode size, merged by
// a caller-supplied boolean predicate F.
package coiterate

import (
	"iter"
	"sync"

	"github.com/ClusterCockpit/cc-lib/v2/ccLogger"
	"github.com/ClusterCockpit/xsparse/pkg/sparse"
)

// Predicate decides, given one boolean per co-iterating level reporting
// whether that level is present at the current coordinate, whether the
// current coordinate should be yielded. Construct one directly or with
// And/Or/Not below.
type Predicate func(present []bool) bool

// Result is one step of a co-iteration: the coordinate the merge settled on,
// which of the co-iterating levels are Present at it, and (for the present
// ones) the Positions each level produced.
type Result struct {
	Coord     sparse.Coord
	Present   []bool
	Positions []sparse.Pos
}

// Coiterator drives synchronized iteration across a fixed set of levels. It
// is built once per (predicate, levels) combination and walks them under a
// given parent context with Iterate.
type Coiterator struct {
	levels    []sparse.Level
	pred      Predicate
	legalOnce sync.Once
	legalErr  error
}

// cursor tracks one level's progress through a single Iterate call: ordered
// levels are pulled step by step through next/stop (from iter.Pull2);
// unordered levels are only ever probed through locator.
type cursor struct {
	ordered bool
	next    func() (sparse.Coord, sparse.Pos, bool)
	stop    func()
	locator sparse.Locator
	cur     sparse.Coord
	pos     sparse.Pos
	has     bool
}

// New validates lvls and pred against spec well-formedness rules and returns
// a ready-to-use Coiterator. Walking the levels in turn, it checks that each
// reports the same Size() and that each level that is not Ordered implements
// sparse.Locator (an unordered level can only ever be probed at a coordinate
// an ordered level proposed, never originate one); it then checks that at
// least one level is Ordered (an ordered level is what supplies the next
// candidate coordinate: without one there is nothing to drive the merge);
// and finally that pred is legal, i.e. it cannot be satisfied by unordered
// levels alone, see checkLegal. The first failing check decides the error.
// It is equivalent to NewWithConfig with sparse.DefaultEngineConfig.
func New(pred Predicate, lvls ...sparse.Level) (*Coiterator, error) {
	return NewWithConfig(sparse.DefaultEngineConfig(), pred, lvls...)
}

// NewWithConfig is New with cfg controlling engine tunables. When
// cfg.DeferPredicateCheck is set, the predicate-legality enumeration
// (checkLegal) is skipped here and run once instead on the first call to
// Iterate, so a caller assembling many short-lived Coiterators up front can
// push that cost to where it is actually needed, or skip it entirely for
// Coiterators that are only ever discarded unused.
func NewWithConfig(cfg sparse.EngineConfig, pred Predicate, lvls ...sparse.Level) (*Coiterator, error) {
	if len(lvls) == 0 {
		return nil, sparse.ErrNoOrderedLevel
	}
	size := lvls[0].Size()
	orderedCount := 0
	for _, l := range lvls {
		if l.Size() != size {
			return nil, sparse.ErrSizeMismatch
		}
		if l.Properties().Ordered {
			orderedCount++
		} else if !sparse.HasLocate(l) {
			return nil, sparse.ErrUnorderedWithoutLocate
		}
	}
	if orderedCount == 0 {
		return nil, sparse.ErrNoOrderedLevel
	}
	c := &Coiterator{levels: lvls, pred: pred}
	if cfg.DeferPredicateCheck {
		return c, nil
	}
	if err := checkLegal(pred, lvls); err != nil {
		return nil, err
	}
	c.legalOnce.Do(func() {})
	return c, nil
}

// checkLegal enumerates every assignment of the unordered levels' present
// bits with all ordered levels' present bits forced false, and rejects pred
// if it is satisfiable under any such assignment. An ordered-bits-all-false
// state means no ordered level is proposing the current coordinate, so no
// legal predicate may accept it regardless of what the unordered (locate-
// only) levels would report: they never originate a coordinate on their
// own. This is the runtime fallback the source's validate_boolean_helper
// permits in place of compile-time enumeration.
func checkLegal(pred Predicate, lvls []sparse.Level) error {
	unordered := make([]int, 0, len(lvls))
	for i, l := range lvls {
		if !l.Properties().Ordered {
			unordered = append(unordered, i)
		}
	}
	bits := make([]bool, len(lvls))
	u := len(unordered)
	for assignment := 0; assignment < (1 << u); assignment++ {
		for i := range bits {
			bits[i] = false
		}
		for j, idx := range unordered {
			bits[idx] = assignment&(1<<j) != 0
		}
		if pred(bits) {
			ccLogger.Debugf("coiterate: predicate accepted an all-ordered-absent assignment %v", bits)
			return sparse.ErrPredicateNotLegal
		}
	}
	return nil
}

// Iterate walks the co-iteration under the given parent coordinates and
// per-level parent positions (pkm1s, aligned with the levels passed to New),
// yielding one Result per accepted coordinate in increasing order. If
// NewWithConfig deferred the predicate-legality check, the first call to
// Iterate runs it; an illegal predicate is logged and yields no results,
// since Iterate has no error return of its own to report it through.
func (c *Coiterator) Iterate(parentCoords []sparse.Coord, pkm1s []sparse.Pos) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		c.legalOnce.Do(func() {
			c.legalErr = checkLegal(c.pred, c.levels)
		})
		if c.legalErr != nil {
			ccLogger.Errorf("coiterate: deferred predicate check failed: %s", c.legalErr)
			return
		}

		n := len(c.levels)
		cursors := make([]cursor, n)
		for i, l := range c.levels {
			if l.Properties().Ordered {
				next, stop := iter.Pull2(l.IterHelper(parentCoords, pkm1s[i]))
				defer stop()
				cur, pos, has := next()
				cursors[i] = cursor{ordered: true, next: next, stop: stop, cur: cur, pos: pos, has: has}
			} else {
				cursors[i] = cursor{ordered: false, locator: l.(sparse.Locator)}
			}
		}

		present := make([]bool, n)
		positions := make([]sparse.Pos, n)

		for {
			star, any := minOrdered(cursors)
			if !any {
				return
			}

			for i := range cursors {
				if cursors[i].ordered {
					ok := cursors[i].has && cursors[i].cur == star
					present[i] = ok
					if ok {
						positions[i] = cursors[i].pos
					}
				} else {
					pos, ok := cursors[i].locator.Locate(pkm1s[i], star)
					present[i] = ok
					if ok {
						positions[i] = pos
					}
				}
			}

			if c.pred(present) {
				res := Result{Coord: star, Present: append([]bool(nil), present...), Positions: append([]sparse.Pos(nil), positions...)}
				if !yield(res) {
					return
				}
			}

			for i := range cursors {
				if cursors[i].ordered && present[i] {
					cur, pos, has := cursors[i].next()
					cursors[i].cur, cursors[i].pos, cursors[i].has = cur, pos, has
				}
			}
		}
	}
}

func minOrdered(cursors []cursor) (sparse.Coord, bool) {
	var (
		best  sparse.Coord
		found bool
	)
	for _, c := range cursors {
		if !c.ordered || !c.has {
			continue
		}
		if !found || c.cur < best {
			best = c.cur
			found = true
		}
	}
	return best, found
}
