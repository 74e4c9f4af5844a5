/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/command/admin.go
*/
package command

import (
	"math"

	"goredis-server/internal/resp"
)

func init() {
	register("PING", cmdPing)
	register("FLUSHDB", cmdFlushDB)
	register("DBSIZE", cmdDBSize)
	register("INFO", cmdInfo)
	register("CLIENT", cmdClient)
	register("CONFIG", cmdConfig)
	register("COMMAND", cmdCommand)
	register("LATENCY", cmdLatency)
}

func cmdPing(s *Server, args [][]byte) resp.Value {
	if len(args) == 1 {
		return resp.NewBulk(args[0])
	}
	return resp.Pong
}

func cmdFlushDB(s *Server, args [][]byte) resp.Value {
	s.Keyspace.Flush()
	return resp.OK
}

func cmdDBSize(s *Server, args [][]byte) resp.Value {
	return resp.NewInteger(int64(s.Keyspace.Len()))
}

func cmdInfo(s *Server, args [][]byte) resp.Value {
	return resp.NewBulkString(s.InfoBlock())
}

// cmdClient implements the tolerated CLIENT SETINFO/SETNAME no-ops, per
// the tolerated no-op set.
func cmdClient(s *Server, args [][]byte) resp.Value {
	return resp.OK
}

// cmdConfig implements the tolerated CONFIG GET/SET no-ops: both reply
// with an empty array.
func cmdConfig(s *Server, args [][]byte) resp.Value {
	return resp.NewArray([]resp.Value{})
}

// cmdCommand tolerates the "COMMAND DOCS" sub-form (empty-array reply);
// any other sub-verb is likewise tolerated rather than rejected, since
// this server doesn't implement command introspection.
func cmdCommand(s *Server, args [][]byte) resp.Value {
	return resp.NewArray([]resp.Value{})
}

// cmdLatency implements "LATENCY HISTOGRAM [verb...]": a top-level array
// of 2N elements, each verb's name bulk string followed by a 4-element
// array of "calls" → integer and "histogram_usec" → a flattened
// (upper-bound, cumulative-count) array, both elements RESP Integers.
// The histogram's implicit +Inf bucket beyond the configured exponential
// buckets has no finite upper bound to report, so it's dropped rather
// than encoded.
func cmdLatency(s *Server, args [][]byte) resp.Value {
	if len(args) == 0 || upper(args[0]) != "HISTOGRAM" {
		return resp.NewArray([]resp.Value{})
	}
	var verbs []string
	for _, a := range args[1:] {
		verbs = append(verbs, upper(a))
	}

	snaps := s.Latency.Snapshot(verbs)
	elems := make([]resp.Value, 0, len(snaps)*2)
	for _, snap := range snaps {
		bucketElems := make([]resp.Value, 0, len(snap.Buckets)*2)
		for _, b := range snap.Buckets {
			if math.IsInf(b.UpperBound, 1) {
				continue
			}
			bucketElems = append(bucketElems,
				resp.NewInteger(int64(math.Round(b.UpperBound))),
				resp.NewInteger(int64(b.Cumulative)),
			)
		}
		body := resp.NewArray([]resp.Value{
			resp.NewBulkString("calls"),
			resp.NewInteger(int64(snap.Calls)),
			resp.NewBulkString("histogram_usec"),
			resp.NewArray(bucketElems),
		})
		elems = append(elems, resp.NewBulkString(snap.Verb), body)
	}
	return resp.NewArray(elems)
}
