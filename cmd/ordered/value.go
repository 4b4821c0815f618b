// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"io"
	"strconv"

	"git.lukeshu.com/go/lowmemjson"
)

// jsonKind tags which of the scalar JSON types a jsonValue holds.
type jsonKind int8

const (
	kindNull jsonKind = iota
	kindBool
	kindNumber
	kindString
)

var _ fmt.Stringer = kindNull

// String implements fmt.Stringer.
func (k jsonKind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindBool:
		return "bool"
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	default:
		return fmt.Sprintf("jsonKind(%d)", int8(k))
	}
}

// jsonValue is a scalar JSON value.  Aggregates (objects and arrays)
// are not values to this tool.
type jsonValue struct {
	Kind   jsonKind
	Bool   bool
	Number float64
	Str    string
}

var (
	_ fmt.Stringer         = jsonValue{}
	_ lowmemjson.Encodable = jsonValue{}
	_ lowmemjson.Decodable = (*jsonValue)(nil)
)

// String implements fmt.Stringer.
func (v jsonValue) String() string {
	switch v.Kind {
	case kindNull:
		return "null"
	case kindBool:
		return strconv.FormatBool(v.Bool)
	case kindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case kindString:
		return strconv.Quote(v.Str)
	default:
		return fmt.Sprintf("jsonValue(%d)", int8(v.Kind))
	}
}

// EncodeJSON implements lowmemjson.Encodable.
func (v jsonValue) EncodeJSON(w io.Writer) error {
	switch v.Kind {
	case kindNull:
		_, err := io.WriteString(w, "null")
		return err
	case kindBool:
		return lowmemjson.NewEncoder(w).Encode(v.Bool)
	case kindNumber:
		return lowmemjson.NewEncoder(w).Encode(v.Number)
	case kindString:
		return lowmemjson.NewEncoder(w).Encode(v.Str)
	default:
		return fmt.Errorf("invalid kind: %v", int8(v.Kind))
	}
}

// DecodeJSON implements lowmemjson.Decodable.
func (v *jsonValue) DecodeJSON(r io.RuneScanner) error {
	c, _, err := r.ReadRune()
	if err != nil {
		return err
	}
	switch {
	case c == 'n':
		_, _, _ = r.ReadRune() // u
		_, _, _ = r.ReadRune() // l
		_, _, _ = r.ReadRune() // l
		*v = jsonValue{Kind: kindNull}
		return nil
	case c == 't' || c == 'f':
		_ = r.UnreadRune()
		*v = jsonValue{Kind: kindBool}
		return lowmemjson.NewDecoder(r).Decode(&v.Bool)
	case c == '"':
		_ = r.UnreadRune()
		*v = jsonValue{Kind: kindString}
		return lowmemjson.NewDecoder(r).Decode(&v.Str)
	case c == '-' || ('0' <= c && c <= '9'):
		_ = r.UnreadRune()
		*v = jsonValue{Kind: kindNumber}
		return lowmemjson.NewDecoder(r).Decode(&v.Number)
	default:
		return fmt.Errorf("expected a scalar JSON value, but found %q", c)
	}
}
