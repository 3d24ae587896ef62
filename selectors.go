// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

// Selector kernels. Each kernel takes one Context and returns the ordered
// list of child Contexts it selects. Kernels never mutate ctx.Value or the
// document; they only read.

func applyIdentifier(ctx Context, name string, trackPath bool) []Context {
	if !ctx.Value.IsObject() {
		return nil
	}
	v, ok := ctx.Value.Member(name)
	if !ok {
		return nil
	}
	return []Context{ctx.child(v, keyStep(name), trackPath)}
}

// resolveIndex applies RFC 9535 negative-index wraparound: i<0 resolves to
// L+i. Returns ok=false if the resolved index is out of [0, L).
func resolveIndex(i, length int) (int, bool) {
	r := i
	if r < 0 {
		r += length
	}
	if r < 0 || r >= length {
		return 0, false
	}
	return r, true
}

func applyIndex(ctx Context, i int, trackPath bool) []Context {
	if !ctx.Value.IsArray() {
		return nil
	}
	arr := ctx.Value.Arr
	idx, ok := resolveIndex(i, len(arr))
	if !ok {
		return nil
	}
	return []Context{ctx.child(arr[idx], indexStep(idx), trackPath)}
}

// sliceBounds computes the concrete (start, end) visiting range for a
// slice selector. step is guaranteed non-zero by the caller.
func sliceBounds(start, end *int, step, length int) (s, e int, ok bool) {
	norm := func(x int) int {
		if x < 0 {
			return length + x
		}
		return x
	}
	clamp := func(x, lo, hi int) int {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
	if step > 0 {
		s = 0
		if start != nil {
			s = norm(*start)
		}
		e = length
		if end != nil {
			e = norm(*end)
		}
		s = clamp(s, 0, length)
		e = clamp(e, 0, length)
		return s, e, true
	}
	// step < 0
	s = length - 1
	if start != nil {
		s = norm(*start)
	}
	e = -1
	if end != nil {
		e = norm(*end)
	}
	s = clamp(s, -1, length-1)
	e = clamp(e, -1, length-1)
	if s < 0 {
		return 0, 0, false
	}
	return s, e, true
}

func applySlice(ctx Context, sel *Selector, trackPath bool) []Context {
	if !ctx.Value.IsArray() {
		return nil
	}
	arr := ctx.Value.Arr
	length := len(arr)
	step := 1
	if sel.Step != nil {
		step = *sel.Step
	}
	if step == 0 {
		return nil
	}
	start, end, ok := sliceBounds(sel.Start, sel.End, step, length)
	if !ok {
		return nil
	}
	var out []Context
	if step > 0 {
		for i := start; i < end; i += step {
			out = append(out, ctx.child(arr[i], indexStep(i), trackPath))
		}
	} else {
		for i := start; i > end; i += step {
			out = append(out, ctx.child(arr[i], indexStep(i), trackPath))
		}
	}
	return out
}

func applyWildcard(ctx Context, trackPath bool) []Context {
	switch {
	case ctx.Value.IsArray():
		out := make([]Context, 0, len(ctx.Value.Arr))
		for i, v := range ctx.Value.Arr {
			out = append(out, ctx.child(v, indexStep(i), trackPath))
		}
		return out
	case ctx.Value.IsObject():
		out := make([]Context, 0, len(ctx.Value.Keys))
		for i, k := range ctx.Value.Keys {
			out = append(out, ctx.child(ctx.Value.Vals[i], keyStep(k), trackPath))
		}
		return out
	default:
		return nil
	}
}

// applySelector dispatches to the correct kernel for a single (non-Union)
// or Union selector, never deduplicating Union output.
func applySelector(ctx Context, sel *Selector, trackPath bool) []Context {
	switch sel.Kind {
	case SelIdentifier:
		return applyIdentifier(ctx, sel.Name, trackPath)
	case SelIndex:
		return applyIndex(ctx, sel.Index, trackPath)
	case SelSlice:
		return applySlice(ctx, sel, trackPath)
	case SelWildcard:
		return applyWildcard(ctx, trackPath)
	case SelUnion:
		var out []Context
		for i := range sel.Items {
			out = append(out, applySelector(ctx, &sel.Items[i], trackPath)...)
		}
		return out
	default:
		return nil
	}
}

// applyRecursive walks ctx.Value pre-order, inclusive of ctx itself, and for
// every visited descendant either emits it (sel == nil) or applies sel to
// it as a child step.
func applyRecursive(ctx Context, sel *Selector, trackPath bool) []Context {
	var out []Context
	var walk func(c Context)
	walk = func(c Context) {
		if sel == nil {
			out = append(out, c)
		} else {
			out = append(out, applySelector(c, sel, trackPath)...)
		}
		switch {
		case c.Value.IsArray():
			for i, v := range c.Value.Arr {
				walk(c.child(v, indexStep(i), trackPath))
			}
		case c.Value.IsObject():
			for i, k := range c.Value.Keys {
				walk(c.child(c.Value.Vals[i], keyStep(k), trackPath))
			}
		}
	}
	walk(ctx)
	return out
}

// typeSelectorNames enumerates the named JSON types a TypeSelector segment
// may test against.
var typeSelectorNames = map[string]bool{
	"null": true, "boolean": true, "number": true, "string": true,
	"array": true, "object": true, "integer": true, "scalar": true,
	"undefined": true, "function": true, "nonFinite": true, "other": true,
}

// matchesType reports whether v's runtime type matches the named type
// selector. "other" never matches; "function" never matches (no
// JSON function type exists in the data model — kept for compatibility with
// callers that enumerate it).
func matchesType(v Value, name string) bool {
	switch name {
	case "null":
		return v.Kind == KindNull
	case "boolean":
		return v.Kind == KindBool
	case "number":
		return v.Kind == KindNumber && isFiniteNumber(v.Num)
	case "nonFinite":
		return v.Kind == KindNumber && !isFiniteNumber(v.Num)
	case "integer":
		return v.Kind == KindNumber && isFiniteNumber(v.Num) && v.Num == float64(int64(v.Num))
	case "string":
		return v.Kind == KindString
	case "array":
		return v.Kind == KindArray
	case "object":
		return v.Kind == KindObject
	case "undefined":
		return v.Kind == KindUndefined
	case "scalar":
		switch v.Kind {
		case KindNull, KindBool, KindNumber, KindString, KindUndefined:
			return true
		}
		return false
	case "function", "other":
		return false
	default:
		return false
	}
}
