/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/command/strings.go
*/
package command

import (
	"time"

	"goredis-server/internal/resp"
	"goredis-server/internal/store"
)

func init() {
	register("GET", cmdGet)
	register("SET", cmdSet)
	register("SETEX", cmdSetEx)
	register("INCR", cmdIncr)
	register("INCRBY", cmdIncrBy)
	register("MGET", cmdMGet)
	register("MSET", cmdMSet)
}

func cmdGet(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("GET")
	}
	v, ok, err := s.Keyspace.Get(args[0])
	if err != nil {
		return errValue(err)
	}
	return bulkOrNull(v, ok)
}

// cmdSet parses SET's full operand matrix: EX seconds | PX
// milliseconds | NX | XX | GET | KEEPTTL, any number of which may follow
// key and value, matched case-insensitively.
func cmdSet(s *Server, args [][]byte) resp.Value {
	if len(args) < 2 {
		return wrongArity("SET")
	}
	key, val := args[0], args[1]
	opts := store.SetOptions{}

	for i := 2; i < len(args); i++ {
		switch upper(args[i]) {
		case "EX":
			i++
			if i >= len(args) {
				return wrongArity("SET")
			}
			secs, ok := parseInt64(args[i])
			if !ok {
				return resp.ErrUnknownCommand("invalid expire time in 'set' command")
			}
			opts.HasExpiry = true
			opts.Expiry = time.Now().Add(time.Duration(secs) * time.Second)
		case "PX":
			i++
			if i >= len(args) {
				return wrongArity("SET")
			}
			ms, ok := parseInt64(args[i])
			if !ok {
				return resp.ErrUnknownCommand("invalid expire time in 'set' command")
			}
			opts.HasExpiry = true
			opts.Expiry = time.Now().Add(time.Duration(ms) * time.Millisecond)
		case "NX":
			opts.OnlyIfAbs = true
		case "XX":
			opts.OnlyIfPres = true
		case "GET":
			opts.ReturnPrior = true
		case "KEEPTTL":
			opts.KeepTTL = true
		default:
			return resp.ErrUnknownCommand("syntax error")
		}
	}

	prior, wrote, err := s.Keyspace.Set(key, val, opts)
	if err != nil {
		return errValue(err)
	}
	if opts.ReturnPrior {
		return bulkOrNull(prior, prior != nil)
	}
	if !wrote {
		return resp.NewNullBulk()
	}
	return resp.OK
}

// cmdSetEx implements SETEX key seconds value as SET key value EX
// seconds.
func cmdSetEx(s *Server, args [][]byte) resp.Value {
	if len(args) != 3 {
		return wrongArity("SETEX")
	}
	secs, ok := parseInt64(args[1])
	if !ok {
		return resp.ErrUnknownCommand("value is not an integer or out of range")
	}
	_, _, err := s.Keyspace.Set(args[0], args[2], store.SetOptions{
		HasExpiry: true,
		Expiry:    time.Now().Add(time.Duration(secs) * time.Second),
	})
	if err != nil {
		return errValue(err)
	}
	return resp.OK
}

func cmdIncr(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("INCR")
	}
	n, err := s.Keyspace.IncrBy(args[0], 1)
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}

func cmdIncrBy(s *Server, args [][]byte) resp.Value {
	if len(args) != 2 {
		return wrongArity("INCRBY")
	}
	delta, ok := parseInt64(args[1])
	if !ok {
		return resp.ErrUnknownCommand("value is not an integer or out of range")
	}
	n, err := s.Keyspace.IncrBy(args[0], delta)
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}

// cmdMGet and cmdMSet round out the string command family with
// bulk get/set.
func cmdMGet(s *Server, args [][]byte) resp.Value {
	if len(args) == 0 {
		return wrongArity("MGET")
	}
	elems := make([]resp.Value, len(args))
	for i, k := range args {
		v, ok, err := s.Keyspace.Get(k)
		if err != nil {
			elems[i] = resp.NewNullBulk()
			continue
		}
		elems[i] = bulkOrNull(v, ok)
	}
	return resp.NewArray(elems)
}

func cmdMSet(s *Server, args [][]byte) resp.Value {
	if len(args) == 0 || len(args)%2 != 0 {
		return wrongArity("MSET")
	}
	for i := 0; i < len(args); i += 2 {
		if _, _, err := s.Keyspace.Set(args[i], args[i+1], store.SetOptions{}); err != nil {
			return errValue(err)
		}
	}
	return resp.OK
}
