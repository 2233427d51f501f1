package request

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedRequest is returned when the request line does not carry
// both a method and a path.
var ErrMalformedRequest = errors.New("malformed request")

// Request is the part of an HTTP request the server acts on. Headers and
// the version token are never interpreted.
type Request struct {
	Method string
	Path   string
}

// RequestFromReader reads exactly one line from r and parses it as a
// request line. Whatever follows the line stays buffered in r, which is
// how PUT handlers get at the body.
func RequestFromReader(r *bufio.Reader) (Request, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Request{}, fmt.Errorf("read request line: %w", err)
	}
	return ParseRequestLine(line)
}

// ParseRequestLine splits line on whitespace and returns the first token as
// the method and the second as the path. Extra tokens (usually the version)
// are ignored. The method is not validated.
func ParseRequestLine(line string) (Request, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return Request{}, fmt.Errorf("%w: %q", ErrMalformedRequest, line)
	}
	return Request{Method: parts[0], Path: parts[1]}, nil
}
