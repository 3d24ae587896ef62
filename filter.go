// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import "math"

// MaxFilterExpressionLength bounds the source length of a single filter or
// script expression, mirroring the DoS guard style of the legacy bracket
// filter parser this engine superseded.
const MaxFilterExpressionLength = 4096

// MaxFilterDepth bounds recursive-descent filter/script application depth
// for the `$..[?...]`/`$..[(...)]` extension, guarding against pathological
// documents the way the original depth guard did for nested elements.
const MaxFilterDepth = 256

// evalFilterPredicate evaluates expr against candidate (the already-selected
// child context) in the given non-XPath mode, returning whether the
// candidate passes.
func evalFilterPredicate(mode FilterMode, expr string, candidate Context, root Value, opts *Options) (bool, error) {
	if len(expr) > MaxFilterExpressionLength {
		return false, &FilterRuntimeError{Expr: expr, Err: ErrPathParse}
	}
	switch mode {
	case FilterJSONPath:
		v, err := evalCompatExpr(expr, candidate, root, opts)
		if err != nil {
			return false, err
		}
		return truthy(v), nil
	default: // FilterRFC
		return evalRFCFilter(expr, candidate, root)
	}
}

// evalXPathPredicate evaluates expr once against parent (not its children),
// per XPath mode semantics.
func evalXPathPredicate(expr string, parent Context, root Value, opts *Options) (bool, error) {
	if len(expr) > MaxFilterExpressionLength {
		return false, &FilterRuntimeError{Expr: expr, Err: ErrPathParse}
	}
	v, err := evalCompatExpr(expr, parent, root, opts)
	if err != nil {
		return false, err
	}
	return truthy(v), nil
}

// evalScriptSelector evaluates a script-segment expression and coerces its
// scalar result into a Selector.
func evalScriptSelector(expr string, ctx Context, root Value, opts *Options) (*Selector, error) {
	if len(expr) > MaxFilterExpressionLength {
		return nil, &FilterRuntimeError{Expr: expr, Err: ErrPathParse}
	}
	v, err := evalCompatExpr(expr, ctx, root, opts)
	if err != nil {
		return nil, err
	}
	switch v.Kind {
	case KindNumber:
		return &Selector{Kind: SelIndex, Index: int(v.Num)}, nil
	case KindString:
		return &Selector{Kind: SelIdentifier, Name: v.Str}, nil
	default:
		return nil, nil
	}
}

func ignorableErrors(opts *Options) bool {
	return opts != nil && opts.IgnoreEvalErrors
}

func makeFilterRunner(expr string) segmentRunner {
	return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
		mode := FilterRFC
		if opts != nil {
			mode = opts.FilterMode
		}
		ignore := ignorableErrors(opts)
		var out []Context
		for _, ctx := range frontier {
			if mode == FilterXPath {
				truthy, err := evalXPathPredicate(expr, ctx, root, opts)
				if err != nil {
					if ignore {
						continue
					}
					return nil, err
				}
				if truthy {
					out = append(out, ctx)
				}
				continue
			}
			for _, child := range applyWildcard(ctx, trackPath) {
				ok, err := evalFilterPredicate(mode, expr, child, root, opts)
				if err != nil {
					if ignore {
						continue
					}
					return nil, err
				}
				if ok {
					out = append(out, child)
				}
			}
		}
		return out, nil
	}
}

func makeScriptRunner(expr string) segmentRunner {
	return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
		ignore := ignorableErrors(opts)
		var out []Context
		for _, ctx := range frontier {
			sel, err := evalScriptSelector(expr, ctx, root, opts)
			if err != nil {
				if ignore {
					continue
				}
				return nil, err
			}
			if sel == nil {
				continue
			}
			out = append(out, applySelector(ctx, sel, trackPath)...)
		}
		return out, nil
	}
}

// makeRecursiveFilterRunner implements the `$..[?expr]` extension (not
// literal RFC 9535 grammar, but valid and widely implemented): the filter
// selector is applied to the children of every descendant, inclusive of the
// starting node, in pre-order.
func makeRecursiveFilterRunner(expr string) segmentRunner {
	return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
		mode := FilterRFC
		if opts != nil {
			mode = opts.FilterMode
		}
		ignore := ignorableErrors(opts)
		var out []Context
		var walkErr error
		var walk func(ctx Context, depth int)
		walk = func(ctx Context, depth int) {
			if walkErr != nil || depth > MaxFilterDepth {
				return
			}
			if mode == FilterXPath {
				ok, err := evalXPathPredicate(expr, ctx, root, opts)
				if err != nil {
					if !ignore {
						walkErr = err
						return
					}
				} else if ok {
					out = append(out, ctx)
				}
			} else {
				for _, child := range applyWildcard(ctx, trackPath) {
					ok, err := evalFilterPredicate(mode, expr, child, root, opts)
					if err != nil {
						if !ignore {
							walkErr = err
							return
						}
						continue
					}
					if ok {
						out = append(out, child)
					}
				}
			}
			for _, child := range applyWildcard(ctx, trackPath) {
				walk(child, depth+1)
			}
		}
		for _, ctx := range frontier {
			walk(ctx, 0)
			if walkErr != nil {
				return nil, walkErr
			}
		}
		return out, nil
	}
}

// makeRecursiveScriptRunner implements the `$..[(expr)]` extension
// analogously to makeRecursiveFilterRunner.
func makeRecursiveScriptRunner(expr string) segmentRunner {
	return func(frontier []Context, root Value, opts *Options, trackPath bool) ([]Context, error) {
		ignore := ignorableErrors(opts)
		var out []Context
		var walkErr error
		var walk func(ctx Context, depth int)
		walk = func(ctx Context, depth int) {
			if walkErr != nil || depth > MaxFilterDepth {
				return
			}
			sel, err := evalScriptSelector(expr, ctx, root, opts)
			if err != nil {
				if !ignore {
					walkErr = err
					return
				}
			} else if sel != nil {
				out = append(out, applySelector(ctx, sel, trackPath)...)
			}
			for _, child := range applyWildcard(ctx, trackPath) {
				walk(child, depth+1)
			}
		}
		for _, ctx := range frontier {
			walk(ctx, 0)
			if walkErr != nil {
				return nil, walkErr
			}
		}
		return out, nil
	}
}

// truthy applies JS-style truthiness to a compat-mode expression result,
// used for JSONPath/XPath mode filter predicates.
func truthy(v Value) bool {
	switch v.Kind {
	case KindUndefined, KindNull:
		return false
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Num != 0 && !math.IsNaN(v.Num)
	case KindString:
		return v.Str != ""
	case KindArray, KindObject:
		return true
	default:
		return false
	}
}
