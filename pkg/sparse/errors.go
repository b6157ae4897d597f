// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sparse

import "errors"

// Sentinel construction-time errors. These are the only errors the engine
// returns; anything that would otherwise be a programming error (indexing
// past a level's end, advancing an exhausted iterator) is left as ordinary
// Go undefined behavior, matching how pkg/metricstore/buffer.go lets its own
// chained-buffer bookkeeping panic rather than defend against misuse.
var (
	// ErrSizeMismatch is returned when the levels handed to a co-iteration
	// do not all report the same Size().
	ErrSizeMismatch = errors.New("level sizes should be same")

	// ErrNoOrderedLevel is returned when none of the co-iterating levels is
	// Ordered; the merge has no coordinate to drive it.
	ErrNoOrderedLevel = errors.New("coiteration requires at least one ordered level")

	// ErrUnorderedWithoutLocate is returned when an unordered level among
	// the co-iterating levels does not implement Locator.
	ErrUnorderedWithoutLocate = errors.New("unordered level must provide locate")

	// ErrPredicateNotLegal is returned when the merge predicate evaluates to
	// true for some assignment of the unordered levels' present bits while
	// every ordered level's bit is false, i.e. it would accept a coordinate
	// that no ordered level proposed.
	ErrPredicateNotLegal = errors.New("predicate is not valid under unordered-level assignments")
)
