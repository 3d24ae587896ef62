// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIRegexpMatch_AnchoredRequiresWholeString(t *testing.T) {
	ok, err := iRegexpMatch("hello world", "hello.*", true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = iRegexpMatch("hello world", "wor", true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIRegexpMatch_UnanchoredSearchesAnywhere(t *testing.T) {
	ok, err := iRegexpMatch("hello world", "wor", false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIRegexpMatch_DotDoesNotMatchNewline(t *testing.T) {
	ok, err := iRegexpMatch("a\nb", "a.b", true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIRegexpMatch_InvalidPatternErrors(t *testing.T) {
	_, err := iRegexpMatch("x", "(unclosed", false)
	assert.Error(t, err)
}
