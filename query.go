// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

// Parse compiles source into a Path AST without lowering it to a
// CompiledPath.
func Parse(source string) (Path, error) {
	return parse(source)
}

// MustParse is like Parse but panics on a ParseError, for call sites
// constructing paths from trusted, compile-time-constant source text.
func MustParse(source string) Path {
	p, err := parse(source)
	if err != nil {
		panic(err)
	}
	return p
}

// MustCompile parses and compiles source in one step, panicking on a
// ParseError. Intended for compile-time-constant path literals, mirroring
// MustParse.
func MustCompile(source string) *CompiledPath {
	return Compile(MustParse(source))
}

// Evaluate executes compiled against document with the given options. ok
// is false only when wrap is disabled and the result set, after
// flattening, is empty.
func Evaluate(compiled *CompiledPath, document Value, opts ...Option) (Value, bool, error) {
	o := buildOptions(opts...)
	ctxs, err := evaluateCompiled(compiled, document, o)
	if err != nil {
		return Value{}, false, err
	}
	v, ok := assembleResults(ctxs, document, o)
	return v, ok, nil
}

// Query fuses parse, compile, and evaluate, sharing a package-level
// parse-and-compile cache keyed by source string: this is the only
// cross-call state the core keeps.
func Query(source string, document Value, opts ...Option) (Value, bool, error) {
	compiled, err := defaultQueryCache.getOrCompile(source)
	if err != nil {
		return Value{}, false, err
	}
	return Evaluate(compiled, document, opts...)
}

// QueryAll runs Query for each source against the same document, collecting
// one result per source. A source that yields no result under wrap=false
// contributes Undefined rather than shortening the returned slice.
func QueryAll(sources []string, document Value, opts ...Option) ([]Value, error) {
	results := make([]Value, 0, len(sources))
	for _, src := range sources {
		v, ok, err := Query(src, document, opts...)
		if err != nil {
			return nil, err
		}
		if !ok {
			results = append(results, Undefined)
			continue
		}
		results = append(results, v)
	}
	return results, nil
}

// QueryResult is the resolved payload delivered by QueryAsync.
type QueryResult struct {
	Value   Value
	Wrapped bool
	Err     error
}

// QueryAsync presents Query as an asynchronous facade. The core itself
// never yields: the channel is already filled by the time this function
// returns, matching a host language's immediately-resolved promise/future
// without forcing a scheduler into the core.
func QueryAsync(source string, document Value, opts ...Option) <-chan QueryResult {
	ch := make(chan QueryResult, 1)
	v, ok, err := Query(source, document, opts...)
	ch <- QueryResult{Value: v, Wrapped: ok, Err: err}
	close(ch)
	return ch
}
