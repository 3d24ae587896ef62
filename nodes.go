// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import (
	"cmp"
	"iter"
	"slices"
)

// NormalizedPath is a sequence of tracked path steps, the Go-native
// equivalent of an RFC 9535 §2.7 normalized path.
type NormalizedPath []PathStep

// String renders p in normalized bracket notation, e.g. $['a'][0].
func (p NormalizedPath) String() string { return pathStepsToString(p) }

// Pointer renders p as an RFC 6901 JSON Pointer, e.g. /a/0.
func (p NormalizedPath) Pointer() string { return pathStepsToPointer(p) }

// Compare orders p against q the way RFC 9535 §2.7 orders normalized paths:
// indexes sort before names at any position where the two paths diverge.
func (p NormalizedPath) Compare(q NormalizedPath) int {
	n := min(len(p), len(q))
	for i := 0; i < n; i++ {
		a, b := p[i], q[i]
		switch {
		case a.IsKey && b.IsKey:
			if c := cmp.Compare(a.Key, b.Key); c != 0 {
				return c
			}
		case a.IsKey:
			return 1
		case b.IsKey:
			return -1
		default:
			if c := cmp.Compare(a.Index, b.Index); c != 0 {
				return c
			}
		}
	}
	return cmp.Compare(len(p), len(q))
}

// LocatedNode pairs a matched value with its NormalizedPath location.
type LocatedNode struct {
	Value Value
	Path  NormalizedPath
}

// NodeList is the list of values a query matched, with no location info.
type NodeList []Value

// All returns an iterator over every value in l.
func (l NodeList) All() iter.Seq[Value] { return slices.Values(l) }

// LocatedNodeList is the list of values a query matched, each paired with
// its NormalizedPath location.
type LocatedNodeList []*LocatedNode

// All returns an iterator over every located node in l.
func (l LocatedNodeList) All() iter.Seq[*LocatedNode] { return slices.Values(l) }

// Values returns an iterator over every node's value, discarding location.
func (l LocatedNodeList) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, n := range l {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Paths returns an iterator over every node's NormalizedPath.
func (l LocatedNodeList) Paths() iter.Seq[NormalizedPath] {
	return func(yield func(NormalizedPath) bool) {
		for _, n := range l {
			if !yield(n.Path) {
				return
			}
		}
	}
}

// Deduplicate removes nodes sharing a NormalizedPath, keeping the first
// occurrence, and returns the (possibly shorter) list. The core evaluator
// never dedups on its own; callers opt in explicitly by calling this.
func (l LocatedNodeList) Deduplicate() LocatedNodeList {
	if len(l) <= 1 {
		return l
	}
	seen := make(map[string]struct{}, len(l))
	uniq := l[:0]
	for _, n := range l {
		key := n.Path.String()
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			uniq = append(uniq, n)
		}
	}
	clear(l[len(uniq):])
	return slices.Clip(uniq)
}

// Sort orders l in place by NormalizedPath.Compare.
func (l LocatedNodeList) Sort() {
	slices.SortFunc(l, func(a, b *LocatedNode) int { return a.Path.Compare(b.Path) })
}

// QueryNodes evaluates source against document and returns the matched
// values as a NodeList, bypassing result-shape assembly entirely.
func QueryNodes(source string, document Value, opts ...Option) (NodeList, error) {
	compiled, err := defaultQueryCache.getOrCompile(source)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts...)
	ctxs, err := evaluateCompiled(compiled, document, o)
	if err != nil {
		return nil, err
	}
	nodes := make(NodeList, len(ctxs))
	for i, ctx := range ctxs {
		nodes[i] = ctx.Value
	}
	return nodes, nil
}

// QueryLocated evaluates source against document and returns the matched
// values paired with their NormalizedPath locations. Path tracking is
// forced on regardless of any ResultType the caller passes.
func QueryLocated(source string, document Value, opts ...Option) (LocatedNodeList, error) {
	compiled, err := defaultQueryCache.getOrCompile(source)
	if err != nil {
		return nil, err
	}
	o := buildOptions(append(append([]Option{}, opts...), WithResultType(ResultPath))...)
	ctxs, err := evaluateCompiled(compiled, document, o)
	if err != nil {
		return nil, err
	}
	out := make(LocatedNodeList, len(ctxs))
	for i, ctx := range ctxs {
		path := make(NormalizedPath, len(ctx.Path))
		copy(path, ctx.Path)
		out[i] = &LocatedNode{Value: ctx.Value, Path: path}
	}
	return out, nil
}
