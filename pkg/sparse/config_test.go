// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of xsparse.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sparse

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEngineConfigValid(t *testing.T) {
	raw := json.RawMessage(`{"appendCapacityHint": 1024, "deferPredicateCheck": true}`)
	cfg, err := ValidateEngineConfig(raw)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.AppendCapacityHint)
	assert.True(t, cfg.DeferPredicateCheck)
}

func TestValidateEngineConfigDefaults(t *testing.T) {
	cfg, err := ValidateEngineConfig(json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultEngineConfig(), cfg)
}

func TestValidateEngineConfigRejectsUnknownField(t *testing.T) {
	_, err := ValidateEngineConfig(json.RawMessage(`{"bogus": 1}`))
	assert.Error(t, err)
}

func TestValidateEngineConfigRejectsNegativeCapacity(t *testing.T) {
	_, err := ValidateEngineConfig(json.RawMessage(`{"appendCapacityHint": -1}`))
	assert.Error(t, err)
}

type fakeCapacityHinter struct {
	hint int
}

func (f *fakeCapacityHinter) SetCapacityHint(n int) { f.hint = n }

func TestApplyCapacityHintSetsHintWhenPositive(t *testing.T) {
	cfg := EngineConfig{AppendCapacityHint: 64}
	h := &fakeCapacityHinter{}
	cfg.ApplyCapacityHint(h)
	assert.Equal(t, 64, h.hint)
}

func TestApplyCapacityHintNoopWhenZero(t *testing.T) {
	cfg := DefaultEngineConfig()
	h := &fakeCapacityHinter{}
	cfg.ApplyCapacityHint(h)
	assert.Equal(t, 0, h.hint)
}

func TestApplyCapacityHintNoopWhenNotHinter(t *testing.T) {
	cfg := EngineConfig{AppendCapacityHint: 64}
	assert.NotPanics(t, func() { cfg.ApplyCapacityHint(struct{}{}) })
}
