// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

// fastDottedPath is fast-path #1: a chain of only
// Root/Current/Child(Identifier|Index) segments, walked directly without
// building intermediate Contexts. It returns at most one value.
type fastDottedPath struct {
	steps []dottedStep
}

type dottedStep struct {
	isIndex bool
	name    string
	index   int
}

// detectFastDotted recognizes the pure dotted/indexed chain shape. segs[0]
// is always Root by parser invariant.
func detectFastDotted(segs []Segment) *fastDottedPath {
	steps := make([]dottedStep, 0, len(segs)-1)
	for _, seg := range segs[1:] {
		switch seg.Kind {
		case SegCurrent:
			continue
		case SegChild:
			switch seg.Selector.Kind {
			case SelIdentifier:
				steps = append(steps, dottedStep{name: seg.Selector.Name})
			case SelIndex:
				steps = append(steps, dottedStep{isIndex: true, index: seg.Selector.Index})
			default:
				return nil
			}
		default:
			return nil
		}
	}
	return &fastDottedPath{steps: steps}
}

// run walks doc along the recognized chain, preserving negative-index
// semantics.
func (f *fastDottedPath) run(doc Value) (Value, bool) {
	cur := doc
	for _, step := range f.steps {
		if step.isIndex {
			if !cur.IsArray() {
				return Value{}, false
			}
			idx, ok := resolveIndex(step.index, len(cur.Arr))
			if !ok {
				return Value{}, false
			}
			cur = cur.Arr[idx]
			continue
		}
		v, ok := cur.Member(step.name)
		if !ok {
			return Value{}, false
		}
		cur = v
	}
	return cur, true
}

// fastBulkExtractor is fast-path #2: `$.collection[slice].property`
// where collection and property are plain identifiers. It writes each
// selected member's property value straight into a result buffer without
// building intermediate Contexts.
type fastBulkExtractor struct {
	collection string
	slice      Selector
	property   string
}

// detectFastBulk recognizes exactly Root, Child(Identifier collection),
// Child(Slice), Child(Identifier property) — four segments.
func detectFastBulk(segs []Segment) *fastBulkExtractor {
	if len(segs) != 4 {
		return nil
	}
	if segs[0].Kind != SegRoot {
		return nil
	}
	c1, c2, c3 := segs[1], segs[2], segs[3]
	if c1.Kind != SegChild || c1.Selector.Kind != SelIdentifier {
		return nil
	}
	if c2.Kind != SegChild || c2.Selector.Kind != SelSlice {
		return nil
	}
	if c3.Kind != SegChild || c3.Selector.Kind != SelIdentifier {
		return nil
	}
	return &fastBulkExtractor{collection: c1.Selector.Name, slice: *c2.Selector, property: c3.Selector.Name}
}

func (f *fastBulkExtractor) run(doc Value) []Context {
	coll, ok := doc.Member(f.collection)
	if !ok || !coll.IsArray() {
		return nil
	}
	step := 1
	if f.slice.Step != nil {
		step = *f.slice.Step
	}
	if step == 0 {
		return nil
	}
	start, end, ok := sliceBounds(f.slice.Start, f.slice.End, step, len(coll.Arr))
	if !ok {
		return nil
	}
	out := make([]Context, 0)
	visit := func(i int) {
		elem := coll.Arr[i]
		if v, ok := elem.Member(f.property); ok {
			out = append(out, Context{Value: v, PayloadType: "value"})
		}
	}
	if step > 0 {
		for i := start; i < end; i += step {
			visit(i)
		}
	} else {
		for i := start; i > end; i += step {
			visit(i)
		}
	}
	return out
}
