// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import (
	"strconv"
	"strings"
)

// MaxUnionBranches bounds how many alternative simple paths a single
// normalize() call may produce, guarding against pathological combinatorial
// expansion from nested grouping syntax.
const MaxUnionBranches = 256

// normalize expands legacy grouping (".(a,b,c)") and top-level filter
// unions into an ordered list of pure simple-path sources. A path with no
// legacy syntax normalizes to a single-element list containing itself
// unchanged.
func normalize(source string) ([]string, error) {
	grouped, err := expandGrouping(source)
	if err != nil {
		return nil, err
	}
	var result []string
	for _, alt := range grouped {
		split, err := expandFilterUnionBrackets(alt)
		if err != nil {
			return nil, err
		}
		result = append(result, split...)
		if len(result) > MaxUnionBranches {
			return nil, newParseError(0, "path expands to more than %d union branches", MaxUnionBranches)
		}
	}
	return result, nil
}

// expandGrouping finds ".(a,b,c)" or "..(a,b,c)" grouping syntax and
// expands each into its own alternative path, substituting an identifier
// alternative as ".name", a numeric alternative as "[n]", and anything else
// as "['...']".
func expandGrouping(src string) ([]string, error) {
	idx, recursive := findGroupingOpen(src)
	if idx < 0 {
		return []string{src}, nil
	}
	openParen := idx + 1
	if recursive {
		openParen = idx + 2
	}
	content, end, err := scanBalancedParen(src, openParen)
	if err != nil {
		return nil, err
	}
	items, err := splitTopLevelCommas(content)
	if err != nil {
		return nil, err
	}
	prefix := src[:idx]
	suffix := src[end:]
	var out []string
	for _, raw := range items {
		item := strings.TrimSpace(raw)
		substituted := substituteGroupingItem(item, recursive)
		combined := prefix + substituted + suffix
		expanded, err := expandGrouping(combined)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
		if len(out) > MaxUnionBranches {
			return nil, newParseError(0, "grouping expands to more than %d union branches", MaxUnionBranches)
		}
	}
	return out, nil
}

// substituteGroupingItem renders one grouping alternative as path syntax.
func substituteGroupingItem(item string, recursive bool) string {
	dotPrefix := "."
	if recursive {
		dotPrefix = ".."
	}
	if item == "" {
		return dotPrefix
	}
	if isBareIdentifier(item) {
		return dotPrefix + item
	}
	if n, ok := parseBareInt(item); ok {
		return "[" + strconv.Itoa(n) + "]"
	}
	// Anything else (already-quoted string, or a name needing quoting)
	// becomes a quoted bracket selector.
	unquoted := strings.Trim(item, `'"`)
	return "['" + strings.ReplaceAll(strings.ReplaceAll(unquoted, `\`, `\\`), "'", `\'`) + "']"
}

func isBareIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentCont(s[i]) {
			return false
		}
	}
	return true
}

func parseBareInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	start := 0
	if s[0] == '-' {
		start = 1
	}
	if start == len(s) {
		return 0, false
	}
	for i := start; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// findGroupingOpen locates the first ".(" or "..(" not inside a quoted
// string or an existing bracket, returning the index of the leading '.'
// and whether it is the recursive ("..") form.
func findGroupingOpen(src string) (int, bool) {
	depth := 0
	inStr := byte(0)
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inStr != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == inStr {
				inStr = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			inStr = c
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '.':
			if depth != 0 {
				continue
			}
			if i+1 < len(src) && src[i+1] == '(' {
				return i, false
			}
			if i+2 < len(src) && src[i+1] == '.' && src[i+2] == '(' {
				return i, true
			}
		}
	}
	return -1, false
}

// expandFilterUnionBrackets finds a top-level bracket whose comma-separated
// items include at least one filter expression alongside other items, and
// expands it into a top-level union of paths, one per item.
func expandFilterUnionBrackets(src string) ([]string, error) {
	idx, content, end, found, err := findSplittableBracket(src)
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{src}, nil
	}
	items, err := splitTopLevelCommas(content)
	if err != nil {
		return nil, err
	}
	prefix := src[:idx]
	suffix := src[end:]
	var out []string
	for _, raw := range items {
		combined := prefix + "[" + raw + "]" + suffix
		expanded, err := expandFilterUnionBrackets(combined)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
		if len(out) > MaxUnionBranches {
			return nil, newParseError(0, "filter union expands to more than %d branches", MaxUnionBranches)
		}
	}
	return out, nil
}

// findSplittableBracket returns the first top-level '[' ... ']' whose
// content contains at least one filter item (starting with '?') mixed with
// more than one item total.
func findSplittableBracket(src string) (idx int, content string, end int, found bool, err error) {
	inStr := byte(0)
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inStr != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == inStr {
				inStr = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			inStr = c
		case '[':
			body, bodyEnd, serr := scanBalancedBracketAt(src, i)
			if serr != nil {
				return 0, "", 0, false, serr
			}
			items, serr := splitTopLevelCommas(body)
			if serr != nil {
				return 0, "", 0, false, serr
			}
			if len(items) > 1 && hasFilterItem(items) {
				return i, body, bodyEnd, true, nil
			}
			i = bodyEnd - 1
		}
	}
	return 0, "", 0, false, nil
}

func hasFilterItem(items []string) bool {
	for _, it := range items {
		if strings.HasPrefix(strings.TrimSpace(it), "?") {
			return true
		}
	}
	return false
}

// scanBalancedBracketAt scans a '[' at src[i] and returns its content and
// the index just past the matching ']'.
func scanBalancedBracketAt(src string, i int) (string, int, error) {
	if src[i] != '[' {
		return "", 0, newParseError(i, "expected '['")
	}
	start := i
	contentStart := i + 1
	depth := 1
	inStr := byte(0)
	j := contentStart
	for j < len(src) {
		c := src[j]
		if inStr != 0 {
			if c == '\\' {
				j += 2
				continue
			}
			if c == inStr {
				inStr = 0
			}
			j++
			continue
		}
		switch c {
		case '\'', '"':
			inStr = c
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return src[contentStart:j], j + 1, nil
			}
		}
		j++
	}
	return "", 0, newParseError(start, "unterminated '['")
}

// scanBalancedParen scans a '(' at src[openIdx] (assumed to be '(') and
// returns its content and the index just past the matching ')'.
func scanBalancedParen(src string, openIdx int) (string, int, error) {
	if openIdx >= len(src) || src[openIdx] != '(' {
		return "", 0, newParseError(openIdx, "expected '(' for grouping syntax")
	}
	contentStart := openIdx + 1
	depth := 1
	inStr := byte(0)
	j := contentStart
	for j < len(src) {
		c := src[j]
		if inStr != 0 {
			if c == '\\' {
				j += 2
				continue
			}
			if c == inStr {
				inStr = 0
			}
			j++
			continue
		}
		switch c {
		case '\'', '"':
			inStr = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return src[contentStart:j], j + 1, nil
			}
		}
		j++
	}
	return "", 0, newParseError(openIdx, "unterminated '(' in grouping syntax")
}
