/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/command/lists.go
*/
package command

import "goredis-server/internal/resp"

func init() {
	register("LPUSH", cmdLPush)
	register("RPUSH", cmdRPush)
	register("LPUSHX", cmdLPushX)
	register("RPUSHX", cmdRPushX)
	register("LPOP", cmdLPop)
	register("RPOP", cmdRPop)
	register("LRANGE", cmdLRange)
	register("LLEN", cmdLLen)
}

func cmdLPush(s *Server, args [][]byte) resp.Value {
	if len(args) < 2 {
		return wrongArity("LPUSH")
	}
	n, err := s.Keyspace.LPush(args[0], args[1:])
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}

func cmdRPush(s *Server, args [][]byte) resp.Value {
	if len(args) < 2 {
		return wrongArity("RPUSH")
	}
	n, err := s.Keyspace.RPush(args[0], args[1:])
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}

func cmdLPushX(s *Server, args [][]byte) resp.Value {
	if len(args) < 2 {
		return wrongArity("LPUSHX")
	}
	n, existed, err := s.Keyspace.LPushX(args[0], args[1:])
	if err != nil {
		return errValue(err)
	}
	if !existed {
		return resp.NewInteger(0)
	}
	return resp.NewInteger(n)
}

func cmdRPushX(s *Server, args [][]byte) resp.Value {
	if len(args) < 2 {
		return wrongArity("RPUSHX")
	}
	n, existed, err := s.Keyspace.RPushX(args[0], args[1:])
	if err != nil {
		return errValue(err)
	}
	if !existed {
		return resp.NewInteger(0)
	}
	return resp.NewInteger(n)
}

// cmdLPop / cmdRPop: no count pops one element and returns bulk string
// (or null); a count pops up to that many and returns an array.
func cmdLPop(s *Server, args [][]byte) resp.Value { return popList(s, args, "LPOP", true) }
func cmdRPop(s *Server, args [][]byte) resp.Value { return popList(s, args, "RPOP", false) }

func popList(s *Server, args [][]byte, verb string, fromLeft bool) resp.Value {
	if len(args) < 1 || len(args) > 2 {
		return wrongArity(verb)
	}
	var count *int64
	if len(args) == 2 {
		n, ok := parseInt64(args[1])
		if !ok {
			return resp.ErrUnknownCommand("value is not an integer or out of range")
		}
		count = &n
	}
	var (
		popped [][]byte
		ok     bool
		err    error
	)
	if fromLeft {
		popped, ok, err = s.Keyspace.LPop(args[0], count)
	} else {
		popped, ok, err = s.Keyspace.RPop(args[0], count)
	}
	if err != nil {
		return errValue(err)
	}
	if !ok {
		if count != nil {
			return bulkBytesArray(nil)
		}
		return resp.NewNullBulk()
	}
	if count == nil {
		if len(popped) == 0 {
			return resp.NewNullBulk()
		}
		return resp.NewBulk(popped[0])
	}
	return bulkBytesArray(popped)
}

func cmdLRange(s *Server, args [][]byte) resp.Value {
	if len(args) != 3 {
		return wrongArity("LRANGE")
	}
	start, ok1 := parseInt64(args[1])
	stop, ok2 := parseInt64(args[2])
	if !ok1 || !ok2 {
		return resp.ErrUnknownCommand("value is not an integer or out of range")
	}
	items, err := s.Keyspace.LRange(args[0], start, stop)
	if err != nil {
		return errValue(err)
	}
	return bulkBytesArray(items)
}

func cmdLLen(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("LLEN")
	}
	n, err := s.Keyspace.LLen(args[0])
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}
