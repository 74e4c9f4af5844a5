/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/command/hashes.go
*/
package command

import "goredis-server/internal/resp"

func init() {
	register("HSET", cmdHSet)
	register("HMSET", cmdHSet)
	register("HGET", cmdHGet)
	register("HMGET", cmdHMGet)
	register("HGETALL", cmdHGetAll)
	register("HINCRBY", cmdHIncrBy)
	register("HEXISTS", cmdHExists)
	register("HKEYS", cmdHKeys)
	register("HDEL", cmdHDel)
	register("HLEN", cmdHLen)
}

// cmdHSet backs both HSET and HMSET, which accept the same
// even-operand-count field/value pairing.
func cmdHSet(s *Server, args [][]byte) resp.Value {
	if len(args) < 3 || (len(args)-1)%2 != 0 {
		return wrongArity("HSET")
	}
	pairs := make([][2][]byte, 0, (len(args)-1)/2)
	for i := 1; i < len(args); i += 2 {
		pairs = append(pairs, [2][]byte{args[i], args[i+1]})
	}
	if _, err := s.Keyspace.HSet(args[0], pairs); err != nil {
		return errValue(err)
	}
	return resp.OK
}

func cmdHGet(s *Server, args [][]byte) resp.Value {
	if len(args) != 2 {
		return wrongArity("HGET")
	}
	v, ok, err := s.Keyspace.HGet(args[0], args[1])
	if err != nil {
		return errValue(err)
	}
	return bulkOrNull(v, ok)
}

func cmdHMGet(s *Server, args [][]byte) resp.Value {
	if len(args) < 2 {
		return wrongArity("HMGET")
	}
	vals, err := s.Keyspace.HMGet(args[0], args[1:])
	if err != nil {
		return errValue(err)
	}
	return bulkBytesArray(vals)
}

func cmdHGetAll(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("HGETALL")
	}
	pairs, err := s.Keyspace.HGetAll(args[0])
	if err != nil {
		return errValue(err)
	}
	elems := make([]resp.Value, 0, len(pairs)*2)
	for _, p := range pairs {
		elems = append(elems, resp.NewBulk(p[0]), resp.NewBulk(p[1]))
	}
	return resp.NewArray(elems)
}

func cmdHIncrBy(s *Server, args [][]byte) resp.Value {
	if len(args) != 3 {
		return wrongArity("HINCRBY")
	}
	delta, ok := parseInt64(args[2])
	if !ok {
		return resp.ErrUnknownCommand("value is not an integer or out of range")
	}
	n, err := s.Keyspace.HIncrBy(args[0], args[1], delta)
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}

func cmdHExists(s *Server, args [][]byte) resp.Value {
	if len(args) != 2 {
		return wrongArity("HEXISTS")
	}
	ok, err := s.Keyspace.HExists(args[0], args[1])
	if err != nil {
		return errValue(err)
	}
	if ok {
		return resp.NewInteger(1)
	}
	return resp.NewInteger(0)
}

func cmdHKeys(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("HKEYS")
	}
	fields, err := s.Keyspace.HKeys(args[0])
	if err != nil {
		return errValue(err)
	}
	return bulkBytesArray(fields)
}

// cmdHDel and cmdHLen round out the hash command family.
func cmdHDel(s *Server, args [][]byte) resp.Value {
	if len(args) < 2 {
		return wrongArity("HDEL")
	}
	n, err := s.Keyspace.HDel(args[0], args[1:])
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}

func cmdHLen(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("HLEN")
	}
	n, err := s.Keyspace.HLen(args[0])
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}
