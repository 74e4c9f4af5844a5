package command

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"goredis-server/internal/config"
)

func newTestServer() *Server {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewServer(config.DefaultConfig(), log)
}

func tokens(parts ...string) [][]byte {
	out := make([][]byte, len(parts))
	for i, p := range parts {
		out[i] = []byte(p)
	}
	return out
}

func TestStringRoundTrip(t *testing.T) {
	s := newTestServer()
	if got := string(s.Dispatch("c1", tokens("SET", "k", "v"))); got != "+OK\r\n" {
		t.Fatalf("SET = %q", got)
	}
	if got := string(s.Dispatch("c1", tokens("GET", "k"))); got != "$1\r\nv\r\n" {
		t.Fatalf("GET = %q", got)
	}
}

func TestWrongTypeScenario(t *testing.T) {
	s := newTestServer()
	if got := string(s.Dispatch("c1", tokens("LPUSH", "l", "a"))); got != ":1\r\n" {
		t.Fatalf("LPUSH = %q", got)
	}
	got := string(s.Dispatch("c1", tokens("GET", "l")))
	if got != "-WRONGTYPE expected STRING\r\n" {
		t.Fatalf("GET on list = %q", got)
	}
}

func TestListSemanticsScenario(t *testing.T) {
	s := newTestServer()
	if got := string(s.Dispatch("c1", tokens("RPUSH", "L", "a", "b", "c"))); got != ":3\r\n" {
		t.Fatalf("RPUSH = %q", got)
	}
	got := string(s.Dispatch("c1", tokens("LRANGE", "L", "0", "-1")))
	want := "*3\r\n$1\r\na\r\n$1\r\nb\r\n$1\r\nc\r\n"
	if got != want {
		t.Fatalf("LRANGE = %q, want %q", got, want)
	}
}

func TestSortedSetOrderingScenario(t *testing.T) {
	s := newTestServer()
	if got := string(s.Dispatch("c1", tokens("ZADD", "z", "2", "b", "1", "a", "3", "c"))); got != ":3\r\n" {
		t.Fatalf("ZADD = %q", got)
	}
	got := string(s.Dispatch("c1", tokens("ZRANGE", "z", "0", "-1", "WITHSCORES")))
	want := "*6\r\n$1\r\na\r\n$1\r\n1\r\n$1\r\nb\r\n$1\r\n2\r\n$1\r\nc\r\n$1\r\n3\r\n"
	if got != want {
		t.Fatalf("ZRANGE WITHSCORES = %q, want %q", got, want)
	}
}

func TestPingNoArg(t *testing.T) {
	s := newTestServer()
	if got := string(s.Dispatch("c1", tokens("PING"))); got != "+PONG\r\n" {
		t.Fatalf("PING = %q", got)
	}
}

func TestVerbIsCaseInsensitive(t *testing.T) {
	s := newTestServer()
	if got := string(s.Dispatch("c1", tokens("set", "k", "v"))); got != "+OK\r\n" {
		t.Fatalf("lowercase set = %q", got)
	}
	if got := string(s.Dispatch("c1", tokens("GeT", "k"))); got != "$1\r\nv\r\n" {
		t.Fatalf("mixed-case get = %q", got)
	}
}

func TestUnknownVerb(t *testing.T) {
	s := newTestServer()
	got := string(s.Dispatch("c1", tokens("NOSUCHCOMMAND")))
	if len(got) < 4 || got[0] != '-' {
		t.Fatalf("unknown verb should produce an error reply, got %q", got)
	}
}

func TestMGetMSet(t *testing.T) {
	s := newTestServer()
	s.Dispatch("c1", tokens("MSET", "a", "1", "b", "2"))
	got := string(s.Dispatch("c1", tokens("MGET", "a", "b", "c")))
	want := "*3\r\n$1\r\n1\r\n$1\r\n2\r\n$-1\r\n"
	if got != want {
		t.Fatalf("MGET = %q, want %q", got, want)
	}
}

func TestExpirePersist(t *testing.T) {
	s := newTestServer()
	s.Dispatch("c1", tokens("SET", "k", "v"))
	s.Dispatch("c1", tokens("EXPIRE", "k", "100"))
	s.Dispatch("c1", tokens("PERSIST", "k"))
	got := string(s.Dispatch("c1", tokens("TTL", "k")))
	if got != ":-1\r\n" {
		t.Fatalf("TTL after PERSIST = %q, want :-1", got)
	}
}

func TestSetNXTwiceKeepsFirstValue(t *testing.T) {
	s := newTestServer()
	s.Dispatch("c1", tokens("SET", "k", "v1", "NX"))
	got := string(s.Dispatch("c1", tokens("SET", "k", "v2", "NX")))
	if got != "$-1\r\n" {
		t.Fatalf("second NX SET should fail (null reply), got %q", got)
	}
	got = string(s.Dispatch("c1", tokens("GET", "k")))
	if got != "$2\r\nv1\r\n" {
		t.Fatalf("value should be unchanged, got %q", got)
	}
}

func TestDBSizeAndFlushDB(t *testing.T) {
	s := newTestServer()
	s.Dispatch("c1", tokens("SET", "a", "1"))
	s.Dispatch("c1", tokens("SET", "b", "2"))
	if got := string(s.Dispatch("c1", tokens("DBSIZE"))); got != ":2\r\n" {
		t.Fatalf("DBSIZE = %q", got)
	}
	s.Dispatch("c1", tokens("FLUSHDB"))
	if got := string(s.Dispatch("c1", tokens("DBSIZE"))); got != ":0\r\n" {
		t.Fatalf("DBSIZE after FLUSHDB = %q", got)
	}
}

func TestLatencyHistogramShape(t *testing.T) {
	s := newTestServer()
	s.Dispatch("c1", tokens("PING"))
	got := string(s.Dispatch("c1", tokens("LATENCY", "HISTOGRAM", "PING")))
	if len(got) == 0 || got[0] != '*' {
		t.Fatalf("LATENCY HISTOGRAM should reply with an array, got %q", got)
	}
}
