/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/command/keys.go
*/
package command

import (
	"path/filepath"

	"goredis-server/internal/resp"
)

func init() {
	register("DEL", cmdDel)
	register("EXISTS", cmdExists)
	register("TTL", cmdTTL)
	register("EXPIRE", cmdExpire)
	register("PERSIST", cmdPersist)
	register("RENAME", cmdRename)
	register("KEYS", cmdKeys)
	register("TYPE", cmdType)
}

func cmdDel(s *Server, args [][]byte) resp.Value {
	if len(args) == 0 {
		return wrongArity("DEL")
	}
	return resp.NewInteger(s.Keyspace.Del(args))
}

func cmdExists(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("EXISTS")
	}
	if s.Keyspace.Exists(args[0]) {
		return resp.NewInteger(1)
	}
	return resp.NewInteger(0)
}

func cmdTTL(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("TTL")
	}
	return resp.NewInteger(s.Keyspace.TTL(args[0]))
}

// cmdExpire and cmdPersist round out the TTL/SET EX surface.
func cmdExpire(s *Server, args [][]byte) resp.Value {
	if len(args) != 2 {
		return wrongArity("EXPIRE")
	}
	secs, ok := parseInt64(args[1])
	if !ok {
		return resp.ErrUnknownCommand("value is not an integer or out of range")
	}
	if s.Keyspace.Expire(args[0], secs) {
		return resp.NewInteger(1)
	}
	return resp.NewInteger(0)
}

func cmdPersist(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("PERSIST")
	}
	if s.Keyspace.Persist(args[0]) {
		return resp.NewInteger(1)
	}
	return resp.NewInteger(0)
}

func cmdRename(s *Server, args [][]byte) resp.Value {
	if len(args) != 2 {
		return wrongArity("RENAME")
	}
	if err := s.Keyspace.Rename(args[0], args[1]); err != nil {
		return resp.ErrUnknownCommand(err.Error())
	}
	return resp.OK
}

// cmdKeys matches keys with path/filepath.Match, so "*", "?" and
// "[...]" classes work, and "*" does not match a '/' in a key.
func cmdKeys(s *Server, args [][]byte) resp.Value {
	pattern := "*"
	if len(args) == 1 {
		pattern = string(args[0])
	} else if len(args) > 1 {
		return wrongArity("KEYS")
	}
	var matched [][]byte
	for _, k := range s.Keyspace.Keys() {
		ok, err := filepath.Match(pattern, string(k))
		if err == nil && ok {
			matched = append(matched, k)
		}
	}
	return bulkBytesArray(matched)
}

func cmdType(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("TYPE")
	}
	kind, ok := s.Keyspace.Type(args[0])
	if !ok {
		return resp.NewSimpleString("none")
	}
	return resp.NewSimpleString(kind.String())
}
