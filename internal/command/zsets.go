/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/command/zsets.go
*/
package command

import (
	"strconv"

	"goredis-server/internal/resp"
	"goredis-server/internal/store"
)

func init() {
	register("ZADD", cmdZAdd)
	register("ZRANGE", cmdZRange)
	register("ZREVRANGE", cmdZRevRange)
	register("ZRANK", cmdZRank)
	register("ZREVRANK", cmdZRevRank)
	register("ZSCORE", cmdZScore)
	register("ZRANGEBYSCORE", cmdZRangeByScore)
	register("ZINCRBY", cmdZIncrBy)
	register("ZCARD", cmdZCard)
	register("ZREM", cmdZRem)
}

// cmdZAdd parses "ZADD key score member [score member ...]".
func cmdZAdd(s *Server, args [][]byte) resp.Value {
	if len(args) < 3 || (len(args)-1)%2 != 0 {
		return wrongArity("ZADD")
	}
	pairs := make([]store.ScoredMember, 0, (len(args)-1)/2)
	for i := 1; i < len(args); i += 2 {
		score, ok := parseInt64(args[i])
		if !ok {
			return resp.ErrUnknownCommand("value is not an integer or out of range")
		}
		pairs = append(pairs, store.ScoredMember{Score: score, Member: args[i+1]})
	}
	n, err := s.Keyspace.ZAdd(args[0], pairs)
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}

// cmdZRange / cmdZRevRange accept the optional WITHSCORES and (for
// ZRANGE only) REV flags trailing start/stop.
func cmdZRange(s *Server, args [][]byte) resp.Value {
	return zrange(s, args, "ZRANGE", false)
}

func cmdZRevRange(s *Server, args [][]byte) resp.Value {
	return zrange(s, args, "ZREVRANGE", true)
}

func zrange(s *Server, args [][]byte, verb string, reverse bool) resp.Value {
	if len(args) < 3 {
		return wrongArity(verb)
	}
	start, ok1 := parseInt64(args[1])
	stop, ok2 := parseInt64(args[2])
	if !ok1 || !ok2 {
		return resp.ErrUnknownCommand("value is not an integer or out of range")
	}
	trailing := args[3:]
	withScores := hasOptionFold(trailing, "WITHSCORES")
	if hasOptionFold(trailing, "REV") {
		reverse = true
	}

	var (
		members []store.ScoredMember
		err     error
	)
	if reverse {
		members, err = s.Keyspace.ZRevRange(args[0], start, stop)
	} else {
		members, err = s.Keyspace.ZRange(args[0], start, stop)
	}
	if err != nil {
		return errValue(err)
	}
	return scoredMembersArray(members, withScores)
}

func cmdZRank(s *Server, args [][]byte) resp.Value { return zrank(s, args, "ZRANK", false) }
func cmdZRevRank(s *Server, args [][]byte) resp.Value {
	return zrank(s, args, "ZREVRANK", true)
}

func zrank(s *Server, args [][]byte, verb string, reverse bool) resp.Value {
	if len(args) != 2 {
		return wrongArity(verb)
	}
	var (
		rank int64
		ok   bool
		err  error
	)
	if reverse {
		rank, ok, err = s.Keyspace.ZRevRank(args[0], args[1])
	} else {
		rank, ok, err = s.Keyspace.ZRank(args[0], args[1])
	}
	if err != nil {
		return errValue(err)
	}
	if !ok {
		return resp.NewNullBulk()
	}
	return resp.NewInteger(rank)
}

func cmdZScore(s *Server, args [][]byte) resp.Value {
	if len(args) != 2 {
		return wrongArity("ZSCORE")
	}
	score, ok, err := s.Keyspace.ZScore(args[0], args[1])
	if err != nil {
		return errValue(err)
	}
	if !ok {
		return resp.NewNullBulk()
	}
	return resp.NewBulkString(strconv.FormatInt(score, 10))
}

func cmdZRangeByScore(s *Server, args [][]byte) resp.Value {
	if len(args) < 3 {
		return wrongArity("ZRANGEBYSCORE")
	}
	min, ok1 := parseInt64(args[1])
	max, ok2 := parseInt64(args[2])
	if !ok1 || !ok2 {
		return resp.ErrUnknownCommand("min or max is not a float")
	}
	withScores := hasOptionFold(args[3:], "WITHSCORES")
	members, err := s.Keyspace.ZRangeByScore(args[0], min, max)
	if err != nil {
		return errValue(err)
	}
	return scoredMembersArray(members, withScores)
}

func cmdZIncrBy(s *Server, args [][]byte) resp.Value {
	if len(args) != 3 {
		return wrongArity("ZINCRBY")
	}
	incr, ok := parseInt64(args[1])
	if !ok {
		return resp.ErrUnknownCommand("value is not an integer or out of range")
	}
	score, err := s.Keyspace.ZIncrBy(args[0], incr, args[2])
	if err != nil {
		return errValue(err)
	}
	return resp.NewBulkString(strconv.FormatInt(score, 10))
}

func cmdZCard(s *Server, args [][]byte) resp.Value {
	if len(args) != 1 {
		return wrongArity("ZCARD")
	}
	n, err := s.Keyspace.ZCard(args[0])
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}

// cmdZRem rounds out the sorted-set command family alongside ZADD/ZREM's
// siblings above.
func cmdZRem(s *Server, args [][]byte) resp.Value {
	if len(args) < 2 {
		return wrongArity("ZREM")
	}
	n, err := s.Keyspace.ZRem(args[0], args[1:])
	if err != nil {
		return errValue(err)
	}
	return resp.NewInteger(n)
}
