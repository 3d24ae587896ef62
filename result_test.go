// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathStepsToPointer(t *testing.T) {
	steps := []PathStep{keyStep("a/b"), keyStep("~weird"), indexStep(2)}
	assert.Equal(t, "/a~1b/~0weird/2", pathStepsToPointer(steps))
	assert.Equal(t, "", pathStepsToPointer(nil))
}

func TestFlattenValue_OneLevel(t *testing.T) {
	v := NewArray(
		NewArray(NewNumber(1), NewNumber(2)),
		NewArray(NewNumber(3)),
	)
	flat := flattenValue(v, 1)
	require.Len(t, flat.Arr, 3)
	assert.Equal(t, float64(1), flat.Arr[0].Num)
	assert.Equal(t, float64(3), flat.Arr[2].Num)
}

func TestFlattenValue_NonArrayUnchanged(t *testing.T) {
	v := NewNumber(5)
	assert.True(t, flattenValue(v, 2).Equal(v))
}

func TestAssembleResults_WrapDefaultTrue(t *testing.T) {
	ctxs := []Context{{Value: NewNumber(1)}}
	v, ok := assembleResults(ctxs, Value{}, DefaultOptions())
	assert.True(t, ok)
	assert.True(t, v.IsArray())
	assert.Equal(t, 1, v.Len())
}

func TestAssembleResults_UnwrapSingle(t *testing.T) {
	ctxs := []Context{{Value: NewNumber(7)}}
	v, ok := assembleResults(ctxs, Value{}, buildOptions(WithWrap(false)))
	assert.True(t, ok)
	assert.Equal(t, float64(7), v.Num)
}

func TestAssembleResults_UnwrapEmptyReturnsNotOK(t *testing.T) {
	_, ok := assembleResults(nil, Value{}, buildOptions(WithWrap(false)))
	assert.False(t, ok)
}

func TestAssembleResults_CallbackReplacesValue(t *testing.T) {
	ctxs := []Context{{Value: NewNumber(1)}}
	cb := func(v Value, payloadType string, payload any) (Value, bool) {
		return NewNumber(v.Num + 100), true
	}
	v, ok := assembleResults(ctxs, Value{}, buildOptions(WithCallback(cb)))
	assert.True(t, ok)
	assert.Equal(t, float64(101), v.Arr[0].Num)
}

func TestBuildParentChain_StopsAtMaxDepth(t *testing.T) {
	root := NewObjectBuilder().
		Set("a", NewObjectBuilder().Set("b", NewObjectBuilder().Set("c", NewNumber(1)).Build()).Build()).
		Build()
	path := []PathStep{keyStep("a"), keyStep("b"), keyStep("c")}
	chain := buildParentChain(root, path, 2)
	assert.Equal(t, 2, chain.Len())
}

func TestResultValueFor_ParentWhenAbsent(t *testing.T) {
	ctx := Context{Value: NewNumber(1)}
	v := resultValueFor(ctx, Value{}, ResultParent, DefaultOptions())
	assert.True(t, v.IsUndefined())
}
