/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/command/server.go
*/

// Package command is the dispatch layer between the wire codec and the
// keyspace: it turns decoded RESP tokens into a verb lookup, a typed
// store.Keyspace call, and a resp.Value response, timing every call into
// a metrics.LatencyTable. The big map[string]Handler dispatch table maps
// a verb string to a handler function, looked up once per command.
package command

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"goredis-server/internal/config"
	"goredis-server/internal/info"
	"goredis-server/internal/metrics"
	"goredis-server/internal/resp"
	"goredis-server/internal/store"
)

// Handler executes one verb's operands against the server and returns
// the response to encode. Operand byte slices reference the
// connection's input accumulator and must not be retained past the call
// without copying — store.Keyspace's own per-type operations already
// copy on write, so handlers need not duplicate that discipline
// themselves.
type Handler func(s *Server, args [][]byte) resp.Value

// Server is the single-threaded command processor's shared state: the
// keyspace, the latency table, and the bootstrap counters INFO reports.
// It is touched exclusively from the event-loop goroutine. The
// connection and command counters are guarded by mu; the keyspace
// itself is not locked.
type Server struct {
	Keyspace  *store.Keyspace
	Latency   *metrics.LatencyTable
	Config    *config.Config
	Log       *logrus.Logger
	StartTime time.Time

	mu               sync.Mutex
	connectedClients int
	connsReceived    uint64
	commandsExecuted uint64
}

// NewServer wires an empty keyspace, a fresh latency table, and the
// given config into a ready-to-dispatch Server.
func NewServer(cfg *config.Config, log *logrus.Logger) *Server {
	return &Server{
		Keyspace:  store.NewKeyspace(),
		Latency:   metrics.NewLatencyTable(),
		Config:    cfg,
		Log:       log,
		StartTime: time.Now(),
	}
}

// ClientConnected / ClientDisconnected track the live connection count
// and lifetime total INFO's Clients/Stats sections report.
func (s *Server) ClientConnected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectedClients++
	s.connsReceived++
}

func (s *Server) ClientDisconnected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connectedClients > 0 {
		s.connectedClients--
	}
}

func (s *Server) statsSnapshot() (connected int, received, executed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectedClients, s.connsReceived, s.commandsExecuted
}

// Dispatch implements netio.Dispatcher: it uppercases the verb, looks it
// up in verbTable, runs it, times it into the latency table, and encodes
// the resulting resp.Value. An unrecognized verb yields a parse-error
// reply rather than a panic. connID is accepted for interface
// symmetry with a future per-connection command (e.g. CLIENT INFO) but
// unused by the current verb set.
func (s *Server) Dispatch(connID string, tokens [][]byte) []byte {
	if len(tokens) == 0 {
		return resp.Encode(nil, resp.ErrUnknownCommand("empty command"))
	}
	verb := upper(tokens[0])
	start := time.Now()

	handler, ok := verbTable[verb]
	if !ok {
		return resp.Encode(nil, resp.ErrUnknownCommand("unknown command '"+string(tokens[0])+"'"))
	}

	value := handler(s, tokens[1:])

	elapsedUsec := float64(time.Since(start).Microseconds())
	s.Latency.Observe(verb, elapsedUsec)
	s.mu.Lock()
	s.commandsExecuted++
	s.mu.Unlock()

	return resp.Encode(nil, value)
}

// InfoBlock renders the INFO bulk-string body from the server's live
// counters.
func (s *Server) InfoBlock() string {
	connected, received, executed := s.statsSnapshot()
	return info.Build(info.Stats{
		Port:                     s.Config.Port,
		StartTime:                s.StartTime,
		ConnectedClients:         connected,
		TotalConnectionsReceived: received,
		TotalCommandsProcessed:   executed,
		Keys:                     s.Keyspace.Len(),
		Latency:                  s.Latency,
	})
}

func upper(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
