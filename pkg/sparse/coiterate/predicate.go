// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coiterate

// At builds a Predicate that requires levels[i] to be present, ignoring the
// rest: the building block for composing the bitwise combinators below out
// of single-level predicates.
func At(i int) Predicate {
	return func(present []bool) bool {
		return present[i]
	}
}

// And builds a Predicate requiring every one of ps to hold. And() with no
// arguments is the always-true predicate, the identity element for And.
func And(ps ...Predicate) Predicate {
	return func(present []bool) bool {
		for _, p := range ps {
			if !p(present) {
				return false
			}
		}
		return true
	}
}

// Or builds a Predicate requiring at least one of ps to hold.
func Or(ps ...Predicate) Predicate {
	return func(present []bool) bool {
		for _, p := range ps {
			if p(present) {
				return true
			}
		}
		return false
	}
}

// Not builds a Predicate that holds exactly when p does not.
func Not(p Predicate) Predicate {
	return func(present []bool) bool {
		return !p(present)
	}
}
