// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sparse

// engineConfigSchema is the JSON Schema an EngineConfig document must
// satisfy, written as a Go string constant the way
// pkg/metricstore/configSchema.go documents its own configuration.
const engineConfigSchema = `
{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"title": "xsparse engine configuration",
	"type": "object",
	"properties": {
		"appendCapacityHint": {
			"description": "Initial capacity reserved per Appendable level build, in elements.",
			"type": "integer",
			"minimum": 0
		},
		"deferPredicateCheck": {
			"description": "If true, a Coiterator's predicate-legality enumeration runs lazily on first Iterate instead of eagerly in New.",
			"type": "boolean"
		}
	},
	"additionalProperties": false
}
`
