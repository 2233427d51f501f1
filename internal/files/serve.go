// Package files implements the filesystem side of the server: reading a
// requested file back to the client and storing a PUT body.
//
// Paths are used exactly as the client sent them, relative to the working
// directory. Nothing keeps a request inside that directory; "../" and
// absolute paths reach whatever the process is allowed to open. That is the
// behavior this server exists to demonstrate, so do not add containment here.
package files

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xaitan80/filehttpd/internal/response"
)

// IndexFile is served when the request path is "/" or empty.
const IndexFile = "index.html"

// ResolvePath strips a single leading slash and substitutes IndexFile for
// an empty result. No other normalization happens.
func ResolvePath(p string) string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return IndexFile
	}
	return p
}

// Serve writes the file named by path to w, preceded by a 200 status line.
// If the file cannot be opened or read, a 404 is written instead and Serve
// returns nil. The returned error only reports failures writing to w.
func Serve(w io.Writer, path string) error {
	f, err := os.Open(ResolvePath(path))
	if err != nil {
		return response.WriteStatusLine(w, response.StatusNotFound)
	}
	defer f.Close()

	// Probe before committing to 200: directories open fine but fail here.
	br := bufio.NewReader(f)
	if _, err := br.Peek(1); err != nil && !errors.Is(err, io.EOF) {
		return response.WriteStatusLine(w, response.StatusNotFound)
	}

	if err := response.WriteStatusLine(w, response.StatusOK); err != nil {
		return err
	}
	if _, err := io.Copy(w, br); err != nil {
		return fmt.Errorf("send %s: %w", path, err)
	}
	return nil
}
