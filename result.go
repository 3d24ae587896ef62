// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import (
	"strconv"
	"strings"
)

// assembleResults turns a final context frontier into the requested
// output shape, applying callback, flatten, and wrap post-processing in
// that order. ok is false only when wrap is disabled and the frontier
// (after flattening) is empty.
func assembleResults(ctxs []Context, root Value, opts *Options) (Value, bool) {
	if opts == nil {
		opts = DefaultOptions()
	}
	items := make([]Value, 0, len(ctxs))
	for _, ctx := range ctxs {
		v := resultValueFor(ctx, root, opts.ResultType, opts)
		if opts.Callback != nil {
			payload := resultValueFor(ctx, root, ResultAll, opts)
			if nv, replace := opts.Callback(v, ctx.PayloadType, payload); replace {
				v = nv
			}
		}
		items = append(items, v)
	}
	result := NewArray(items...)
	if depth, ok := opts.flattenDepth(); ok {
		result = flattenValue(result, depth)
	}
	if !opts.wrapEnabled() {
		switch len(result.Arr) {
		case 0:
			return Value{}, false
		case 1:
			return result.Arr[0], true
		}
	}
	return result, true
}

// resultValueFor converts one Context into the Value shape rt requests.
func resultValueFor(ctx Context, root Value, rt ResultType, opts *Options) Value {
	switch rt {
	case ResultValue:
		return ctx.Value
	case ResultPath:
		return NewString(pathStepsToString(ctx.Path))
	case ResultPointer:
		return NewString(pathStepsToPointer(ctx.Path))
	case ResultParent:
		if ctx.HasParent {
			return ctx.Parent
		}
		return Undefined
	case ResultParentProperty:
		if ctx.HasParentProperty {
			return stepToValue(ctx.ParentProperty)
		}
		return Undefined
	case ResultParentChain:
		return buildParentChain(root, ctx.Path, maxParentChainDepthOf(opts))
	case ResultAll:
		b := NewObjectBuilder()
		b.Set("value", ctx.Value)
		b.Set("path", NewString(pathStepsToString(ctx.Path)))
		b.Set("pointer", NewString(pathStepsToPointer(ctx.Path)))
		if ctx.HasParent {
			b.Set("parent", ctx.Parent)
		} else {
			b.Set("parent", Undefined)
		}
		if ctx.HasParentProperty {
			b.Set("parentProperty", stepToValue(ctx.ParentProperty))
		} else {
			b.Set("parentProperty", Undefined)
		}
		b.Set("parentChain", buildParentChain(root, ctx.Path, maxParentChainDepthOf(opts)))
		return b.Build()
	default:
		return ctx.Value
	}
}

func maxParentChainDepthOf(opts *Options) int {
	if opts == nil {
		return 0
	}
	return opts.MaxParentChainDepth
}

// pathStepsToPointer renders a tracked path as an RFC 6901 JSON Pointer:
// `/` joined, `~` escaped as `~0`, `/` escaped as `~1`; the root pointer
// is the empty string.
func pathStepsToPointer(steps []PathStep) string {
	if len(steps) == 0 {
		return ""
	}
	var buf strings.Builder
	for _, s := range steps {
		buf.WriteByte('/')
		if s.IsKey {
			buf.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.Key, "~", "~0"), "/", "~1"))
		} else {
			buf.WriteString(strconv.Itoa(s.Index))
		}
	}
	return buf.String()
}

// buildParentChain walks root along path, collecting {property, parent}
// pairs up to maxDepth entries (0 means unlimited).
func buildParentChain(root Value, path []PathStep, maxDepth int) Value {
	n := len(path)
	if maxDepth > 0 && n > maxDepth {
		n = maxDepth
	}
	items := make([]Value, 0, n)
	cur := root
	for i := 0; i < n; i++ {
		step := path[i]
		entry := NewObjectBuilder().
			Set("property", stepToValue(step)).
			Set("parent", cur).
			Build()
		items = append(items, entry)
		if step.IsKey {
			v, ok := cur.Member(step.Key)
			if !ok {
				break
			}
			cur = v
		} else {
			v, ok := cur.Element(step.Index)
			if !ok {
				break
			}
			cur = v
		}
	}
	return NewArray(items...)
}

// flattenValue flattens a nested-array Value by depth levels. Non-array
// inputs and depth<=0 are returned unchanged.
func flattenValue(v Value, depth int) Value {
	if depth <= 0 || v.Kind != KindArray {
		return v
	}
	out := make([]Value, 0, len(v.Arr))
	for _, item := range v.Arr {
		if item.Kind == KindArray {
			flattened := flattenValue(item, depth-1)
			out = append(out, flattened.Arr...)
		} else {
			out = append(out, item)
		}
	}
	return NewArray(out...)
}
