/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/info/info.go
*/

// Package info builds the INFO command's text block: field lines
// grouped into sections under a "# Header" line, using
// shirou/gopsutil/v4/mem.VirtualMemory for total system memory.
package info

import (
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/mem"

	"goredis-server/internal/metrics"
)

const redisVersionTag = "goredis-server-1.0.0"

// Stats is the snapshot of counters the builder needs; the caller (the
// command package) owns the actual counters and passes a read-only copy
// in, keeping this package free of any keyspace or connection-table
// dependency.
type Stats struct {
	Port                     int
	StartTime                time.Time
	ConnectedClients         int
	TotalConnectionsReceived uint64
	TotalCommandsProcessed   uint64
	Keys                     int
	Latency                  *metrics.LatencyTable
}

// Build renders the full INFO bulk-string body, one "# Section" block
// per section with CRLF-terminated field lines.
func Build(s Stats) string {
	var b strings.Builder

	usedMemory := approxUsedMemory()
	uptime := time.Since(s.StartTime)

	fmt.Fprintf(&b, "# Server\r\n")
	fmt.Fprintf(&b, "redis_version:%s\r\n", redisVersionTag)
	fmt.Fprintf(&b, "redis_mode:standalone\r\n")
	fmt.Fprintf(&b, "arch_bits:64\r\n")
	fmt.Fprintf(&b, "tcp_port:%d\r\n", s.Port)
	fmt.Fprintf(&b, "uptime_in_seconds:%d\r\n", int64(uptime.Seconds()))
	fmt.Fprintf(&b, "uptime_in_days:%d\r\n", int64(uptime.Hours()/24))
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "# Clients\r\n")
	fmt.Fprintf(&b, "connected_clients:%d\r\n", s.ConnectedClients)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "# Memory\r\n")
	fmt.Fprintf(&b, "used_memory:%d\r\n", usedMemory)
	fmt.Fprintf(&b, "used_memory_human:%s\r\n", humanKB(usedMemory))
	if total, err := SystemMemoryTotal(); err == nil {
		fmt.Fprintf(&b, "total_system_memory:%d\r\n", total)
		fmt.Fprintf(&b, "total_system_memory_human:%s\r\n", humanKB(total))
	}
	fmt.Fprintf(&b, "maxmemory:0\r\n")
	fmt.Fprintf(&b, "maxmemory_policy:noeviction\r\n")
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "# Stats\r\n")
	fmt.Fprintf(&b, "total_connections_received:%d\r\n", s.TotalConnectionsReceived)
	fmt.Fprintf(&b, "total_commands_processed:%d\r\n", s.TotalCommandsProcessed)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "# Replication\r\n")
	fmt.Fprintf(&b, "role:master\r\n")
	fmt.Fprintf(&b, "connected_slaves:0\r\n")
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "# Commandstats\r\n")
	if s.Latency != nil {
		verbs := s.Latency.Verbs()
		sort.Strings(verbs)
		for _, verb := range verbs {
			snap := s.Latency.Snapshot([]string{verb})
			if len(snap) == 0 {
				continue
			}
			fmt.Fprintf(&b, "cmdstat_%s:calls=%d,usec=%d,usec_per_call=%.2f\r\n",
				strings.ToLower(verb), snap[0].Calls, int64(snap[0].UsecSum), snap[0].UsecPerCall())
		}
	}
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "# Keyspace\r\n")
	fmt.Fprintf(&b, "db0:keys=%d,expires=0,avg_ttl=0\r\n", s.Keys)

	return b.String()
}

// approxUsedMemory asks the Go runtime for its current heap allocation,
// with gopsutil's system total available separately for operators who
// want it.
func approxUsedMemory() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// SystemMemoryTotal reports the host's total physical memory via
// gopsutil, surfaced in the Memory section alongside used_memory;
// INFO's own maxmemory field is fixed at 0 (no cap).
func SystemMemoryTotal() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

func humanKB(bytes uint64) string {
	return strconv.FormatFloat(float64(bytes)/1024.0, 'f', 2, 64) + "K"
}
