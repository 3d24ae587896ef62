// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseJSON decodes a JSON document into a Value, preserving object member
// insertion order, since Value's Keys/Vals slices are order-significant.
// encoding/json's Decoder token stream is used instead of unmarshaling into
// map[string]interface{}, which would discard that order.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("jsonpath: trailing data after JSON document")
	}
	return v, nil
}

// ParseJSONString is a convenience wrapper around ParseJSON for string input.
func ParseJSONString(s string) (Value, error) {
	return ParseJSON([]byte(s))
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("jsonpath: unexpected delimiter %q", t)
		}
	case nil:
		return Value{Kind: KindNull}, nil
	case bool:
		return NewBool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("jsonpath: invalid number %q: %w", t.String(), err)
		}
		return NewNumber(f), nil
	case string:
		return NewString(t), nil
	default:
		return Value{}, fmt.Errorf("jsonpath: unsupported token %T", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	b := NewObjectBuilder()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("jsonpath: object key is not a string")
		}
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		b.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return b.Build(), nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, val)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return NewArray(items...), nil
}
