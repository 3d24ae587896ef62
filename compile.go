// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import "strings"

// segmentRunner executes one compiled AST segment against the current
// frontier, producing the next frontier. root is the document the compiled
// path is being evaluated against, needed by Filter/Script runners for
// absolute ($) sub-queries and by Parent for ancestor reconstruction.
type segmentRunner func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error)

// compiledSimple is one compiled simple path branch.
type compiledSimple struct {
	segs      []Segment
	runners   []segmentRunner
	trackPath bool

	fastDotted *fastDottedPath
	fastBulk   *fastBulkExtractor
}

// CompiledPath is the executable form of a parsed Path. It is safe to
// reuse across documents and across concurrent callers; it is never
// mutated after Compile returns.
type CompiledPath struct {
	ast      Path
	branches []compiledSimple
}

// Compile lowers a parsed Path into a CompiledPath.
func Compile(p Path) *CompiledPath {
	var simples [][]Segment
	if p.IsUnion() {
		simples = p.Union
	} else {
		simples = [][]Segment{p.Simple}
	}
	branches := make([]compiledSimple, 0, len(simples))
	for _, segs := range simples {
		branches = append(branches, compileSimple(segs))
	}
	return &CompiledPath{ast: p, branches: branches}
}

func compileSimple(segs []Segment) compiledSimple {
	cs := compiledSimple{
		segs:      segs,
		runners:   make([]segmentRunner, 0, len(segs)),
		trackPath: pathRequiresTracking(segs),
	}
	for _, seg := range segs {
		cs.runners = append(cs.runners, compileSegment(seg))
	}
	cs.fastDotted = detectFastDotted(segs)
	cs.fastBulk = detectFastBulk(segs)
	return cs
}

// pathRequiresTracking reports whether the AST itself forces path tracking
// regardless of requested result type: Parent and PropertyName segments need
// ancestor reconstruction, and any Filter/Script expression that mentions
// "@path" needs the tracked path available inside the expression.
func pathRequiresTracking(segs []Segment) bool {
	for _, seg := range segs {
		switch seg.Kind {
		case SegParent, SegPropertyName:
			return true
		case SegFilter, SegScript:
			if strings.Contains(seg.FilterExpr, "@path") {
				return true
			}
		}
	}
	return false
}

func compileSegment(seg Segment) segmentRunner {
	switch seg.Kind {
	case SegRoot:
		return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
			return []Context{rootContext(root, opts)}, nil
		}
	case SegCurrent:
		return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
			return frontier, nil
		}
	case SegChild:
		sel := seg.Selector
		return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
			var out []Context
			for _, ctx := range frontier {
				out = append(out, applySelector(ctx, sel, trackPath)...)
			}
			return out, nil
		}
	case SegRecursive:
		sel := seg.Selector
		if seg.TypeName == "filter" {
			return makeRecursiveFilterRunner(seg.FilterExpr)
		}
		if seg.TypeName == "script" {
			return makeRecursiveScriptRunner(seg.FilterExpr)
		}
		return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
			var out []Context
			for _, ctx := range frontier {
				out = append(out, applyRecursive(ctx, sel, trackPath)...)
			}
			return out, nil
		}
	case SegFilter:
		return makeFilterRunner(seg.FilterExpr)
	case SegScript:
		return makeScriptRunner(seg.FilterExpr)
	case SegParent:
		return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
			var out []Context
			for _, ctx := range frontier {
				out = append(out, applyParent(ctx, root)...)
			}
			return out, nil
		}
	case SegPropertyName:
		return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
			var out []Context
			for _, ctx := range frontier {
				out = append(out, applyPropertyName(ctx)...)
			}
			return out, nil
		}
	case SegTypeSelector:
		name := seg.TypeName
		return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
			var out []Context
			for _, ctx := range frontier {
				out = append(out, applyTypeSelectorSeg(ctx, name)...)
			}
			return out, nil
		}
	default:
		return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
			return frontier, nil
		}
	}
}

// applyParent steps ctx up one level by reconstructing the ancestor from
// root along ctx.Path. Requires trackPath to have been forced on for any
// path containing a Parent segment (pathRequiresTracking).
func applyParent(ctx Context, root Value) []Context {
	if len(ctx.Path) == 0 {
		return nil
	}
	newPath := ctx.Path[:len(ctx.Path)-1]
	out := Context{
		Value:       ctx.Parent,
		Path:        newPath,
		PayloadType: "value",
	}
	if len(newPath) > 0 {
		out.Parent = walkPath(root, newPath[:len(newPath)-1])
		out.HasParent = true
		out.ParentProperty = newPath[len(newPath)-1]
		out.HasParentProperty = true
	}
	return []Context{out}
}

// walkPath walks root following path, assumed valid (derived from an actual
// prior traversal), and returns the value found there.
func walkPath(root Value, path []PathStep) Value {
	cur := root
	for _, step := range path {
		if step.IsKey {
			v, ok := cur.Member(step.Key)
			if !ok {
				return Undefined
			}
			cur = v
		} else {
			v, ok := cur.Element(step.Index)
			if !ok {
				return Undefined
			}
			cur = v
		}
	}
	return cur
}

func applyPropertyName(ctx Context) []Context {
	if !ctx.HasParentProperty {
		return nil
	}
	var pv Value
	if ctx.ParentProperty.IsKey {
		pv = NewString(ctx.ParentProperty.Key)
	} else {
		pv = NewNumber(float64(ctx.ParentProperty.Index))
	}
	out := ctx
	out.Value = pv
	out.PayloadType = "property"
	return []Context{out}
}

func applyTypeSelectorSeg(ctx Context, name string) []Context {
	if matchesType(ctx.Value, name) {
		return []Context{ctx}
	}
	return nil
}

// evaluateBranch runs one compiled simple-path branch against doc, choosing
// a fast path only when it provably matches slow-path behavior for the
// given options: the fast path must never silently diverge from what the
// general evaluator would produce.
func evaluateBranch(cs compiledSimple, doc Value, opts *Options) ([]Context, error) {
	trackPath := requiresPathTracking(opts, cs.trackPath) || cs.trackPath

	if !trackPath && isDefaultOptions(opts) && cs.fastDotted != nil {
		v, ok := cs.fastDotted.run(doc)
		if !ok {
			return nil, nil
		}
		return []Context{{Value: v, PayloadType: "value"}}, nil
	}
	if !trackPath && isDefaultOptions(opts) && cs.fastBulk != nil {
		return cs.fastBulk.run(doc), nil
	}

	frontier := []Context{rootContext(doc, opts)}
	for _, run := range cs.runners[1:] {
		if len(frontier) == 0 {
			break
		}
		var err error
		frontier, err = run(frontier, doc, opts, trackPath)
		if err != nil {
			return nil, err
		}
	}
	// runners[0] (Root, or Current for an @-relative path) is skipped: the
	// frontier is seeded by rootContext instead, which honors the parent
	// override in opts.
	return frontier, nil
}

func evaluateCompiled(c *CompiledPath, doc Value, opts *Options) ([]Context, error) {
	var all []Context
	for _, branch := range c.branches {
		ctxs, err := evaluateBranch(branch, doc, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, ctxs...)
	}
	return all, nil
}
