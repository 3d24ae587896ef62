// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ImplicitRootIsPrepended(t *testing.T) {
	p, err := parse("@.a")
	require.NoError(t, err)
	require.NotEmpty(t, p.Simple)
	assert.Equal(t, SegCurrent, p.Simple[0].Kind)

	p2, err := parse("a.b")
	require.NoError(t, err)
	require.NotEmpty(t, p2.Simple)
	assert.Equal(t, SegRoot, p2.Simple[0].Kind)
}

func TestParse_BasicChain(t *testing.T) {
	p, err := parse("$.store.book[0]")
	require.NoError(t, err)
	require.Len(t, p.Simple, 4)
	assert.Equal(t, SegRoot, p.Simple[0].Kind)
	assert.Equal(t, SegChild, p.Simple[1].Kind)
	assert.Equal(t, "store", p.Simple[1].Selector.Name)
	assert.Equal(t, SegChild, p.Simple[2].Kind)
	assert.Equal(t, "book", p.Simple[2].Selector.Name)
	assert.Equal(t, SegChild, p.Simple[3].Kind)
	assert.Equal(t, SelIndex, p.Simple[3].Selector.Kind)
	assert.Equal(t, 0, p.Simple[3].Selector.Index)
}

func TestParse_BracketUnionSelector(t *testing.T) {
	p, err := parse(`$[0,2,'name']`)
	require.NoError(t, err)
	sel := p.Simple[1].Selector
	require.Equal(t, SelUnion, sel.Kind)
	require.Len(t, sel.Items, 3)
	assert.Equal(t, SelIndex, sel.Items[0].Kind)
	assert.Equal(t, SelIndex, sel.Items[1].Kind)
	assert.Equal(t, SelIdentifier, sel.Items[2].Kind)
	assert.Equal(t, "name", sel.Items[2].Name)
}

func TestParse_SliceSelector(t *testing.T) {
	p, err := parse("$[1:5:2]")
	require.NoError(t, err)
	sel := p.Simple[1].Selector
	require.Equal(t, SelSlice, sel.Kind)
	require.NotNil(t, sel.Start)
	require.NotNil(t, sel.End)
	require.NotNil(t, sel.Step)
	assert.Equal(t, 1, *sel.Start)
	assert.Equal(t, 5, *sel.End)
	assert.Equal(t, 2, *sel.Step)
}

func TestParse_FilterSegment(t *testing.T) {
	p, err := parse(`$.book[?@.price<10]`)
	require.NoError(t, err)
	require.Len(t, p.Simple, 3)
	assert.Equal(t, SegFilter, p.Simple[2].Kind)
	assert.Equal(t, "@.price<10", p.Simple[2].FilterExpr)
}

func TestParse_LegacyFilterWithParens(t *testing.T) {
	p, err := parse(`$.book[?(@.price<10)]`)
	require.NoError(t, err)
	assert.Equal(t, "@.price<10", p.Simple[2].FilterExpr)
}

func TestParse_ScriptSegment(t *testing.T) {
	p, err := parse(`$.book[(@.length-1)]`)
	require.NoError(t, err)
	assert.Equal(t, SegScript, p.Simple[2].Kind)
	assert.Equal(t, "@.length-1", p.Simple[2].FilterExpr)
}

func TestParse_ParentAndPropertyNameSelectors(t *testing.T) {
	p, err := parse("$.a^.b~")
	require.NoError(t, err)
	var kinds []SegmentKind
	for _, s := range p.Simple {
		kinds = append(kinds, s.Kind)
	}
	assert.Contains(t, kinds, SegParent)
	assert.Contains(t, kinds, SegPropertyName)
}

func TestParse_TypeSelector(t *testing.T) {
	p, err := parse("$.a@string()")
	require.NoError(t, err)
	last := p.Simple[len(p.Simple)-1]
	assert.Equal(t, SegTypeSelector, last.Kind)
	assert.Equal(t, "string", last.TypeName)
}

func TestParse_RecursiveDescent(t *testing.T) {
	p, err := parse("$..author")
	require.NoError(t, err)
	require.Len(t, p.Simple, 2)
	assert.Equal(t, SegRecursive, p.Simple[1].Kind)
	assert.Equal(t, "author", p.Simple[1].Selector.Name)
}

func TestParse_EscapedBacktickIdentifier(t *testing.T) {
	p, err := parse("$.`weird name`")
	require.NoError(t, err)
	sel := p.Simple[1].Selector
	assert.Equal(t, "weird name", sel.Name)
	assert.True(t, sel.Escaped)
}

func TestParse_UnterminatedBracketIsError(t *testing.T) {
	_, err := parse("$[0")
	assert.Error(t, err)
}

func TestParse_TooManySegmentsIsError(t *testing.T) {
	var src string
	src = "$"
	for i := 0; i < MaxPathSegments+5; i++ {
		src += ".a"
	}
	_, err := parse(src)
	assert.Error(t, err)
}

func TestSplitTopLevelCommas_IgnoresCommasInsideQuotes(t *testing.T) {
	items, err := splitTopLevelCommas(`'a,b',c`)
	require.NoError(t, err)
	assert.Equal(t, []string{`'a,b'`, "c"}, items)
}

func TestParseSlice_ErrorOnTooManyParts(t *testing.T) {
	_, err := parseSlice("1:2:3:4")
	assert.Error(t, err)
}
