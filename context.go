// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

// PathStep is one element of a tracked path: either a string object key or
// an integer array index.
type PathStep struct {
	Key   string
	Index int
	IsKey bool
}

func keyStep(k string) PathStep  { return PathStep{Key: k, IsKey: true} }
func indexStep(i int) PathStep   { return PathStep{Index: i, IsKey: false} }

// Context is one record on the evaluation frontier. It borrows Value and
// Parent from the document and owns its Path slice exclusively;
// Path is built by copy-on-append so sibling contexts sharing a prefix never
// alias the same backing array beyond their common ancestor.
type Context struct {
	Value    Value
	Path     []PathStep
	Parent   Value
	HasParent bool
	ParentProperty PathStep
	HasParentProperty bool

	// PayloadType is "value" unless a property-name segment set it to
	// "property", in which case Value holds the emitted property name/index
	// rather than a document node.
	PayloadType string
}

// childPath returns ctx.Path with step appended, copy-on-append: each
// sibling path is built by appending a single key to the parent's path,
// not by mutating it in place. When trackPath is false it returns nil
// without allocating.
func (ctx Context) childPath(step PathStep, trackPath bool) []PathStep {
	if !trackPath {
		return nil
	}
	out := make([]PathStep, len(ctx.Path)+1)
	copy(out, ctx.Path)
	out[len(ctx.Path)] = step
	return out
}

// child builds the Context for one step down from ctx into value, held
// under step.
func (ctx Context) child(value Value, step PathStep, trackPath bool) Context {
	return Context{
		Value:             value,
		Path:              ctx.childPath(step, trackPath),
		Parent:            ctx.Value,
		HasParent:         true,
		ParentProperty:    step,
		HasParentProperty: true,
		PayloadType:       "value",
	}
}

// rootContext is the single-element starting frontier that a Root segment
// replaces the current frontier with.
func rootContext(doc Value, opts *Options) Context {
	ctx := Context{Value: doc, PayloadType: "value"}
	if opts != nil && opts.HasParentOverride {
		ctx.Parent = opts.ParentOverride
		ctx.HasParent = true
		switch pp := opts.ParentPropertyOverride.(type) {
		case string:
			ctx.ParentProperty = keyStep(pp)
			ctx.HasParentProperty = true
		case int:
			ctx.ParentProperty = indexStep(pp)
			ctx.HasParentProperty = true
		}
	}
	return ctx
}
