package response

import (
	"fmt"
	"io"
)

// StatusCode is the limited set of HTTP status codes the server emits.
type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusCreated             StatusCode = 201
	StatusNotFound            StatusCode = 404
	StatusInternalServerError StatusCode = 500
	StatusNotImplemented      StatusCode = 501
)

// Exact bytes on the wire. 201 and 500 carry no terminating blank line;
// clients of this server depend on that.
var statusLines = map[StatusCode]string{
	StatusOK:                  "HTTP/1.0 200 OK\n\n",
	StatusCreated:             "HTTP/1.0 201 Created",
	StatusNotFound:            "HTTP/1.0 404 Not Found\n\n",
	StatusInternalServerError: "HTTP/1.0 500 Internal Server Error",
	StatusNotImplemented:      "HTTP/1.0 501 Not Implemented\n\n",
}

// StatusLine returns the status line for statusCode without any trailing
// newlines, e.g. "HTTP/1.0 501 Not Implemented".
func StatusLine(statusCode StatusCode) string {
	s, ok := statusLines[statusCode]
	if !ok {
		return fmt.Sprintf("HTTP/1.0 %d", int(statusCode))
	}
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}

// WriteStatusLine writes the literal response bytes for statusCode.
func WriteStatusLine(w io.Writer, statusCode StatusCode) error {
	s, ok := statusLines[statusCode]
	if !ok {
		return fmt.Errorf("unsupported status code %d", int(statusCode))
	}
	_, err := io.WriteString(w, s)
	return err
}
