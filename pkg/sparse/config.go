// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sparse

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// EngineConfig holds the small set of tunables this engine exposes. Unlike
// internal/config.Validate, ValidateEngineConfig returns an error instead of
// calling cclog.Fatal: a library must never terminate its host process on a
// bad config.
type EngineConfig struct {
	// AppendCapacityHint is the initial capacity reserved per Appendable
	// level build, in elements. Zero means "let append grow naturally".
	AppendCapacityHint int `json:"appendCapacityHint"`
	// DeferPredicateCheck, when true, defers a Coiterator's predicate-
	// legality enumeration from New to the first call to Iterate.
	DeferPredicateCheck bool `json:"deferPredicateCheck"`
}

// DefaultEngineConfig returns the zero-value configuration: no capacity
// hint, eager predicate-legality checking.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{}
}

// CapacityHinter is implemented by Appendable level formats that can reserve
// storage ahead of a build (e.g. levels.Compressed). ApplyCapacityHint uses
// it to thread AppendCapacityHint into a level without package sparse
// depending on package levels.
type CapacityHinter interface {
	SetCapacityHint(n int)
}

// ApplyCapacityHint sets lvl's capacity hint from cfg.AppendCapacityHint, if
// cfg carries one and lvl implements CapacityHinter. It is a no-op otherwise,
// so callers can apply it unconditionally to every level in a chain before
// building it.
func (cfg EngineConfig) ApplyCapacityHint(lvl any) {
	if cfg.AppendCapacityHint <= 0 {
		return
	}
	if h, ok := lvl.(CapacityHinter); ok {
		h.SetCapacityHint(cfg.AppendCapacityHint)
	}
}

// ValidateEngineConfig compiles engineConfigSchema and validates raw against
// it, the same github.com/santhosh-tekuri/jsonschema/v5 CompileString +
// Validate pattern internal/config/validate.go uses, then decodes raw into
// an EngineConfig.
func ValidateEngineConfig(raw json.RawMessage) (EngineConfig, error) {
	sch, err := jsonschema.CompileString("xsparse-engine-config.json", engineConfigSchema)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("sparse: compiling config schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return EngineConfig{}, fmt.Errorf("sparse: decoding config: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return EngineConfig{}, fmt.Errorf("sparse: invalid engine config: %w", err)
	}

	var cfg EngineConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("sparse: decoding config: %w", err)
	}
	return cfg, nil
}
