/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/resp/encode.go
*/
package resp

import "strconv"

// Encode serializes a Value into its RESP2 wire representation, appending
// to dst and returning the grown slice. Recursing on Array elements mirrors
// recursive descent through nested array elements, but here the codec
// is a pure byte-buffer function with no underlying io.Writer of its own,
// since the event loop owns write timing.
func Encode(dst []byte, v Value) []byte {
	switch v.Typ {
	case SimpleString:
		dst = append(dst, byte(SimpleString))
		dst = append(dst, v.Str...)
		dst = append(dst, EOD...)
	case Error:
		dst = append(dst, byte(Error))
		dst = append(dst, v.Err...)
		dst = append(dst, EOD...)
	case Integer:
		dst = append(dst, byte(Integer))
		dst = strconv.AppendInt(dst, v.Num, 10)
		dst = append(dst, EOD...)
	case Bulk:
		if v.Blk == nil {
			dst = append(dst, "$-1"+EOD...)
			break
		}
		dst = append(dst, byte(Bulk))
		dst = strconv.AppendInt(dst, int64(len(v.Blk)), 10)
		dst = append(dst, EOD...)
		dst = append(dst, v.Blk...)
		dst = append(dst, EOD...)
	case Array:
		if v.Arr == nil {
			dst = append(dst, "*-1"+EOD...)
			break
		}
		dst = append(dst, byte(Array))
		dst = strconv.AppendInt(dst, int64(len(v.Arr)), 10)
		dst = append(dst, EOD...)
		for _, elem := range v.Arr {
			dst = Encode(dst, elem)
		}
	default:
		dst = append(dst, "$-1"+EOD...)
	}
	return dst
}

// OK is the canonical simple-string reply used by SET, FLUSHDB, and the
// tolerated-no-op commands.
var OK = NewSimpleString("OK")

// Pong is PING's reply.
var Pong = NewSimpleString("PONG")

// ErrUnknownCommand formats the "ERR invalid input" reply for parse
// failures and unrecognized verbs.
func ErrUnknownCommand(detail string) Value {
	return NewError("ERR invalid input: " + detail)
}

// ErrWrongType formats the WRONGTYPE reply used whenever an operation is
// applied to a key whose stored variant doesn't match, including the
// folded-in numeric parse/overflow errors.
func ErrWrongType(detail string) Value {
	return NewError("WRONGTYPE " + detail)
}
