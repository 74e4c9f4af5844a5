/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/resp/value.go
*/

// Package resp implements framing and serialization for a subset of RESP2,
// the wire protocol spoken by Redis and Redis-compatible servers.
package resp

// ValueType identifies the shape of a RESP value by its protocol prefix.
type ValueType byte

// RESP2 type prefixes.
const (
	SimpleString ValueType = '+'
	Error        ValueType = '-'
	Integer      ValueType = ':'
	Bulk         ValueType = '$'
	Array        ValueType = '*'
	Null         ValueType = 0 // no wire prefix of its own; rendered as $-1
)

// EOD is the RESP line terminator.
const EOD = "\r\n"

// Value is a parsed or to-be-serialized RESP value. Only the fields
// matching Typ are meaningful, mirroring the tagged-union shape of the
// protocol itself.
type Value struct {
	Typ ValueType

	Str string  // SimpleString
	Err string  // Error (the full "<PREFIX> <detail>" text, no leading '-')
	Num int64   // Integer
	Blk []byte  // Bulk (nil means null bulk, $-1)
	Arr []Value // Array (nil means null array, *-1; unused by this server but kept for symmetry)
}

// NewSimpleString builds a +<text> value, used for OK/PONG replies.
func NewSimpleString(s string) Value { return Value{Typ: SimpleString, Str: s} }

// NewError builds a -<prefix> <detail> value. msg must already include the prefix.
func NewError(msg string) Value { return Value{Typ: Error, Err: msg} }

// NewInteger builds a :<n> value.
func NewInteger(n int64) Value { return Value{Typ: Integer, Num: n} }

// NewBulk builds a $<len>\r\n<bytes> value. A nil slice renders as a null bulk.
func NewBulk(b []byte) Value { return Value{Typ: Bulk, Blk: b} }

// NewBulkString is a convenience wrapper over NewBulk for string payloads.
func NewBulkString(s string) Value { return Value{Typ: Bulk, Blk: []byte(s)} }

// NewNullBulk builds the $-1 null reply.
func NewNullBulk() Value { return Value{Typ: Bulk, Blk: nil} }

// NewArray builds a *<count> value from already-built elements.
func NewArray(elems []Value) Value { return Value{Typ: Array, Arr: elems} }

// Bytes returns the raw bulk payload and whether the value was a non-null bulk.
func (v Value) Bytes() ([]byte, bool) {
	if v.Typ != Bulk || v.Blk == nil {
		return nil, false
	}
	return v.Blk, true
}
