/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/command/sets.go
*/
package command

import "goredis-server/internal/resp"

func init() {
	register("SADD", cmdSAdd)
	register("SISMEMBER", cmdSIsMember)
	register("SINTER", cmdSInter)
	register("SUNION", cmdSUnion)
	register("SDIFF", cmdSDiff)
	register("SCARD", cmdSCard)
	register("SMEMBERS", cmdSMembers)
	register("SREM", cmdSRem)
	register("SRANDMEMBER", cmdSRandMember)
}

func cmdSAdd(s *Server, args [][]byte) resp.Value {
	if len(args) < 2 {
		return wrongArity("SADD")
	}
	n, err := s.Keyspace.SAdd(args[0], args[1:])
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}

func cmdSIsMember(s *Server, args [][]byte) resp.Value {
	if len(args) != 2 {
		return wrongArity("SISMEMBER")
	}
	ok, err := s.Keyspace.SIsMember(args[0], args[1])
	if err != nil {
		return errValue(err)
	}
	if ok {
		return resp.NewInteger(1)
	}
	return resp.NewInteger(0)
}

func cmdSInter(s *Server, args [][]byte) resp.Value {
	if len(args) == 0 {
		return wrongArity("SINTER")
	}
	members, err := s.Keyspace.SInter(args)
	if err != nil {
		return errValue(err)
	}
	return bulkBytesArray(members)
}

func cmdSUnion(s *Server, args [][]byte) resp.Value {
	if len(args) == 0 {
		return wrongArity("SUNION")
	}
	members, err := s.Keyspace.SUnion(args)
	if err != nil {
		return errValue(err)
	}
	return bulkBytesArray(members)
}

func cmdSDiff(s *Server, args [][]byte) resp.Value {
	if len(args) == 0 {
		return wrongArity("SDIFF")
	}
	members, err := s.Keyspace.SDiff(args)
	if err != nil {
		return errValue(err)
	}
	return bulkBytesArray(members)
}

func cmdSCard(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("SCARD")
	}
	n, err := s.Keyspace.SCard(args[0])
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}

func cmdSMembers(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("SMEMBERS")
	}
	members, err := s.Keyspace.SMembers(args[0])
	if err != nil {
		return errValue(err)
	}
	return bulkBytesArray(members)
}

// cmdSRem and cmdSRandMember round out the set command family.
func cmdSRem(s *Server, args [][]byte) resp.Value {
	if len(args) < 2 {
		return wrongArity("SREM")
	}
	n, err := s.Keyspace.SRem(args[0], args[1:])
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}

func cmdSRandMember(s *Server, args [][]byte) resp.Value {
	if len(args) < 1 || len(args) > 2 {
		return wrongArity("SRANDMEMBER")
	}
	var count *int64
	if len(args) == 2 {
		n, ok := parseInt64(args[1])
		if !ok {
			return resp.ErrUnknownCommand("value is not an integer or out of range")
		}
		count = &n
	}
	members, err := s.Keyspace.SRandMember(args[0], count)
	if err != nil {
		return errValue(err)
	}
	if count == nil {
		if len(members) == 0 {
			return resp.NewNullBulk()
		}
		return resp.NewBulk(members[0])
	}
	return bulkBytesArray(members)
}
