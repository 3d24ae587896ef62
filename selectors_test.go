// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func arrOf(n int) Value {
	items := make([]Value, n)
	for i := range items {
		items[i] = NewNumber(float64(i))
	}
	return NewArray(items...)
}

func TestResolveIndex(t *testing.T) {
	tests := []struct {
		i, length int
		want      int
		ok        bool
	}{
		{0, 5, 0, true},
		{4, 5, 4, true},
		{5, 5, 0, false},
		{-1, 5, 4, true},
		{-5, 5, 0, true},
		{-6, 5, 0, false},
	}
	for _, tt := range tests {
		got, ok := resolveIndex(tt.i, tt.length)
		assert.Equal(t, tt.ok, ok, "index %d length %d", tt.i, tt.length)
		if ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestSliceBounds_PositiveStep(t *testing.T) {
	length := 10
	s, e, ok := sliceBounds(nil, nil, 1, length)
	assert.True(t, ok)
	assert.Equal(t, 0, s)
	assert.Equal(t, 10, e)

	two, eight := 2, 8
	s, e, ok = sliceBounds(&two, &eight, 1, length)
	assert.True(t, ok)
	assert.Equal(t, 2, s)
	assert.Equal(t, 8, e)

	negTwo := -2
	s, e, ok = sliceBounds(nil, &negTwo, 1, length)
	assert.True(t, ok)
	assert.Equal(t, 0, s)
	assert.Equal(t, 8, e)
}

func TestSliceBounds_NegativeStep(t *testing.T) {
	length := 10
	s, e, ok := sliceBounds(nil, nil, -1, length)
	assert.True(t, ok)
	assert.Equal(t, 9, s)
	assert.Equal(t, -1, e)

	five := 5
	s, e, ok = sliceBounds(&five, nil, -1, length)
	assert.True(t, ok)
	assert.Equal(t, 5, s)
	assert.Equal(t, -1, e)
}

func TestApplySlice_Basic(t *testing.T) {
	ctx := Context{Value: arrOf(5)}
	one, three := 1, 3
	sel := &Selector{Kind: SelSlice, Start: &one, End: &three}
	out := applySlice(ctx, sel, false)
	assert.Len(t, out, 2)
	assert.Equal(t, float64(1), out[0].Value.Num)
	assert.Equal(t, float64(2), out[1].Value.Num)
}

func TestApplySlice_NegativeStepReversesOrder(t *testing.T) {
	ctx := Context{Value: arrOf(5)}
	step := -1
	sel := &Selector{Kind: SelSlice, Step: &step}
	out := applySlice(ctx, sel, false)
	assert.Len(t, out, 5)
	assert.Equal(t, float64(4), out[0].Value.Num)
	assert.Equal(t, float64(0), out[4].Value.Num)
}

func TestApplyWildcard_ObjectPreservesInsertionOrder(t *testing.T) {
	obj := NewObjectBuilder().Set("z", NewNumber(1)).Set("a", NewNumber(2)).Build()
	out := applyWildcard(Context{Value: obj}, true)
	assert.Len(t, out, 2)
	assert.Equal(t, "z", out[0].ParentProperty.Key)
	assert.Equal(t, "a", out[1].ParentProperty.Key)
}

func TestApplySelector_UnionNeverDedups(t *testing.T) {
	arr := arrOf(3)
	sel := &Selector{Kind: SelUnion, Items: []Selector{
		{Kind: SelIndex, Index: 0},
		{Kind: SelIndex, Index: 0},
	}}
	out := applySelector(Context{Value: arr}, sel, false)
	assert.Len(t, out, 2, "union selector concatenates without deduplication")
}

func TestApplyRecursive_IncludesSelf(t *testing.T) {
	doc := NewObjectBuilder().
		Set("a", NewNumber(1)).
		Set("b", NewArray(NewNumber(2), NewNumber(3))).
		Build()
	out := applyRecursive(Context{Value: doc}, nil, false)
	assert.Len(t, out, 5, "self + a + b + b[0] + b[1]")
}

func TestMatchesType(t *testing.T) {
	assert.True(t, matchesType(Null, "null"))
	assert.True(t, matchesType(NewNumber(3), "integer"))
	assert.False(t, matchesType(NewNumber(3.5), "integer"))
	assert.True(t, matchesType(NewNumber(3.5), "number"))
	assert.True(t, matchesType(Undefined, "undefined"))
	assert.True(t, matchesType(Undefined, "scalar"))
	assert.False(t, matchesType(NewArray(), "scalar"))
	assert.False(t, matchesType(NewNumber(1), "other"))
}
