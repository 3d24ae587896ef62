// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

// Package jsonpath implements a JSONPath query engine covering RFC 9535 and
// a compatible superset of the legacy (Goessner-style) JSONPath dialects.
//
// jsonpath parses a JSONPath expression into an AST, lowers it to a
// CompiledPath that can be evaluated repeatedly against different
// documents, and assembles matched nodes into one of several result shapes
// (values, normalized paths, JSON Pointers, parent references).
//
// # Features
//
//   - RFC 9535 path syntax: root/current identifiers, child and descendant
//     segments, name/index/slice/wildcard selectors, filter selectors
//   - Legacy compatibility: bracket unions, script selectors, parent (^) and
//     property-name (~) selectors, type selectors (@string(), @number(), ...)
//   - Three filter expression modes: RFC boolean/comparison expressions,
//     JSONPath-mode scripts (a small JavaScript-like subset), and XPath-style
//     single-evaluation predicates
//   - Seven result shapes: value, path, pointer, parent, parentProperty,
//     parentChain, all
//   - A parse-and-compile cache keyed by source string, shared across calls
//
// # Basic Usage
//
// Query a parsed document using a JSONPath expression:
//
//	doc, _ := jsonpath.ParseJSONString(`{"store":{"book":[{"price":8.95},{"price":22.99}]}}`)
//	result, ok, err := jsonpath.Query("$.store.book[*].price", doc)
//
// Compile once, evaluate many times against different documents:
//
//	path, _ := jsonpath.Parse("$..price")
//	compiled := jsonpath.Compile(path)
//	result, ok, err := jsonpath.Evaluate(compiled, doc)
//
// Filter array elements with an RFC 9535 comparison expression:
//
//	jsonpath.Query(`$.store.book[?@.price < 10]`, doc)
//
// Filter using JSONPath-mode script syntax instead:
//
//	jsonpath.Query(`$.store.book[?(@.price < 10)]`, doc,
//		jsonpath.WithFilterMode(jsonpath.FilterJSONPath), jsonpath.WithEval(jsonpath.EvalNative))
//
// Request normalized paths or JSON Pointers instead of values:
//
//	jsonpath.Query("$..price", doc, jsonpath.WithResultType(jsonpath.ResultPointer))
//
// # Filter Modes
//
// FilterRFC restricts filter bodies to the RFC 9535 grammar: logical
// operators, comparisons, embedded path existence tests, and the five
// built-in functions (length, count, match, search, value). FilterJSONPath and
// FilterXPath additionally accept arbitrary script expressions; script
// evaluation is disabled by default (EvalDisabledMode) and must be opted
// into with WithEval, since scripts can reference arbitrary sandboxed
// identifiers.
//
// # Path Tracking
//
// Result types that need to know how a node was reached (path, pointer,
// parentChain, all) and a callback force the evaluator to track the
// traversal path for every candidate. Plain value results skip this
// bookkeeping, which is what lets dotted and sliced property chains take
// an optimized direct-walk path.
//
// # Concurrency
//
// Parse, Compile, and Evaluate hold no shared mutable state and are safe
// for concurrent use. Query and QueryAll share a package-level
// parse-and-compile cache guarded by a mutex.
package jsonpath
