package server

import (
	"fmt"
	"net"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/xaitan80/filehttpd/internal/auditlog"
)

// DefaultPort is the TCP port the server binary listens on.
const DefaultPort = 8080

// Config describes how to build a Server.
type Config struct {
	// Port to bind on all interfaces. Zero picks a free port.
	Port int
	// AuditLogPath is the request log file, relative to the working directory.
	AuditLogPath string
	// Logger receives operational messages. Nil disables them.
	Logger *zerolog.Logger
}

// DefaultConfig returns the configuration used by the server binary.
func DefaultConfig() Config {
	return Config{
		Port:         DefaultPort,
		AuditLogPath: auditlog.DefaultPath,
	}
}

// Server owns the listening socket and serves one connection at a time.
type Server struct {
	ln     net.Listener
	closed atomic.Bool
	d      *Dispatcher
	log    zerolog.Logger
}

// Listen binds the configured port. It does not start accepting
// connections; call Run for that.
func Listen(cfg Config) (*Server, error) {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	if cfg.AuditLogPath == "" {
		cfg.AuditLogPath = auditlog.DefaultPath
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", cfg.Port, err)
	}
	return &Server{
		ln:  ln,
		d:   NewDispatcher(auditlog.New(cfg.AuditLogPath), log),
		log: log,
	}, nil
}

// Addr returns the address the server is bound to.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Close releases the port. A Run blocked in Accept returns nil.
func (s *Server) Close() error {
	s.closed.Store(true)
	return s.ln.Close()
}

// Run accepts connections until the listener fails or the server is
// closed. Each connection is fully handled before the next Accept, so a
// slow client holds up everyone else. Run returns nil after Close and the
// accept error otherwise.
func (s *Server) Run() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if s.closed.Load() {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		s.log.Debug().Stringer("remote", conn.RemoteAddr()).Msg("accepted connection")
		s.d.Dispatch(conn)
	}
}
