// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import "regexp"

// iRegexpMatch implements the RFC 9535 `match`/`search` functions on top of
// Go's RE2 engine (package regexp). This is a deliberate dialect choice:
// RE2 gives linear-time matching with no catastrophic backtracking, at the
// cost of no backreferences or lookaround, which I-Regexp does not require
// anyway.
// `match` anchors the pattern to the whole string; `search` leaves it
// unanchored, matching Go's un-prefixed regexp.MatchString semantics.
// `.` in RE2 does not match '\n' by default, matching I-Regexp dot
// semantics; Unicode character classes (\p{L} etc.) are supported natively.
func iRegexpMatch(s, pattern string, anchored bool) (bool, error) {
	p := pattern
	if anchored {
		p = "^(?:" + pattern + ")$"
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}
