package info

import (
	"strings"
	"testing"
	"time"

	"goredis-server/internal/metrics"
)

func TestBuildContainsRequiredSections(t *testing.T) {
	lt := metrics.NewLatencyTable()
	lt.Observe("GET", 100)
	out := Build(Stats{
		Port:                     6379,
		StartTime:                time.Now().Add(-time.Hour),
		ConnectedClients:         3,
		TotalConnectionsReceived: 10,
		TotalCommandsProcessed:   42,
		Keys:                     7,
		Latency:                  lt,
	})

	for _, want := range []string{
		"# Server", "redis_mode:standalone", "arch_bits:64",
		"# Clients", "connected_clients:3",
		"# Memory", "maxmemory:0", "maxmemory_policy:noeviction",
		"# Stats", "total_commands_processed:42",
		"# Replication", "role:master",
		"# Commandstats", "cmdstat_get:calls=1",
		"# Keyspace", "db0:keys=7,expires=0,avg_ttl=0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("INFO output missing %q\n---\n%s", want, out)
		}
	}
}

func TestBuildWithNilLatency(t *testing.T) {
	out := Build(Stats{StartTime: time.Now()})
	if !strings.Contains(out, "# Commandstats") {
		t.Fatalf("expected Commandstats header even with no observations")
	}
}
