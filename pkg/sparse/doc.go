// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sparse provides the core types of a sparse tensor storage and
// co-iteration engine: coordinates and positions, the level property system,
// the level capability interfaces concrete formats implement, and the Tensor
// type that binds a chain of levels to a value buffer.
//
// # Level chain
//
// A tensor's shape is represented mode by mode as a chain of Level values.
// Level k is handed the coordinates visited so far at shallower levels
// (parentCoords) and the position the parent level produced (pkm1); from
// those it produces its own (coordinate, position) pairs for the caller to
// iterate, or resolves a single coordinate to a position via Locate.
//
// Concrete level formats live in the sibling package
// github.com/ClusterCockpit/xsparse/pkg/sparse/levels. Synchronized iteration
// across several levels (co-iteration) lives in
// github.com/ClusterCockpit/xsparse/pkg/sparse/coiterate.
package sparse
