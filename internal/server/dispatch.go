package server

import (
	"bufio"
	"io"

	"github.com/rs/zerolog"

	"github.com/xaitan80/filehttpd/internal/files"
	"github.com/xaitan80/filehttpd/internal/request"
	"github.com/xaitan80/filehttpd/internal/response"
)

// Auditor records one line per handled request.
type Auditor interface {
	Append(message string) error
}

// Dispatcher handles a single connection: it parses the request line,
// routes GET and PUT to the filesystem and answers everything else with
// 501.
type Dispatcher struct {
	audit Auditor
	log   zerolog.Logger
}

// NewDispatcher returns a Dispatcher that records requests with audit and
// reports operational problems to log.
func NewDispatcher(audit Auditor, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{audit: audit, log: log}
}

// Dispatch serves one request on conn and closes it, whatever happens.
func (d *Dispatcher) Dispatch(conn io.ReadWriteCloser) {
	defer conn.Close()

	br := bufio.NewReader(conn)
	req, err := request.RequestFromReader(br)
	if err != nil {
		d.log.Warn().Err(err).Msg("dropping request")
		return
	}

	// GET and PUT are recorded before touching the filesystem; other methods
	// record the response they get.
	switch req.Method {
	case "GET":
		d.record("GET Request: " + req.Path)
		if err := files.Serve(conn, req.Path); err != nil {
			d.log.Error().Err(err).Str("path", req.Path).Msg("serve failed")
		}
	case "PUT":
		d.record("PUT Request: " + req.Path)
		if err := files.Store(conn, req.Path, br); err != nil {
			d.log.Error().Err(err).Str("path", req.Path).Msg("store failed")
		}
	default:
		d.record(response.StatusLine(response.StatusNotImplemented))
		if err := response.WriteStatusLine(conn, response.StatusNotImplemented); err != nil {
			d.log.Error().Err(err).Str("method", req.Method).Msg("write response failed")
		}
	}
}

func (d *Dispatcher) record(message string) {
	if err := d.audit.Append(message); err != nil {
		d.log.Error().Err(err).Msg("audit log")
	}
}
