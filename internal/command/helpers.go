/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/command/helpers.go
*/
package command

import (
	"strconv"

	"goredis-server/internal/resp"
	"goredis-server/internal/store"
)

// parseInt64 parses a signed base-10 operand, surfacing a generic parse
// error rather than WRONGTYPE — this is for command operands (counts,
// scores, seconds), not stored values.
func parseInt64(b []byte) (int64, bool) {
	n, err := strconv.ParseInt(string(b), 10, 64)
	return n, err == nil
}

func errValue(err error) resp.Value {
	if _, ok := err.(*store.WrongTypeError); ok {
		return resp.ErrWrongType(err.Error())
	}
	return resp.ErrUnknownCommand(err.Error())
}

func wrongArity(verb string) resp.Value {
	return resp.ErrUnknownCommand("wrong number of arguments for '" + verb + "' command")
}

func bulkOrNull(b []byte, ok bool) resp.Value {
	if !ok {
		return resp.NewNullBulk()
	}
	return resp.NewBulk(b)
}

func bulkBytesArray(items [][]byte) resp.Value {
	elems := make([]resp.Value, len(items))
	for i, it := range items {
		elems[i] = resp.NewBulk(it)
	}
	return resp.NewArray(elems)
}

func scoredMembersArray(members []store.ScoredMember, withScores bool) resp.Value {
	elems := make([]resp.Value, 0, len(members)*2)
	for _, m := range members {
		elems = append(elems, resp.NewBulk(m.Member))
		if withScores {
			elems = append(elems, resp.NewBulkString(strconv.FormatInt(m.Score, 10)))
		}
	}
	return resp.NewArray(elems)
}

// hasOptionFold reports whether opt (already uppercase) appears among
// args (raw bytes), matching case-insensitively, since option tokens like
// EX/NX/WITHSCORES are never case-sensitive.
func hasOptionFold(args [][]byte, opt string) bool {
	for _, a := range args {
		if upper(a) == opt {
			return true
		}
	}
	return false
}
