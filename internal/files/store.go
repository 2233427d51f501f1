package files

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xaitan80/filehttpd/internal/response"
)

// Store creates or truncates the file at path, exactly as given, and fills
// it with the lines read from body until end of stream. Line terminators
// ("\n", "\r\n" or "\r") are dropped and not re-inserted, so
// "hello\nworld\n" is stored as "helloworld".
//
// The client sees 201 on success and 500 on any failure. A failed store
// leaves whatever was already written on disk. The returned error describes
// the failure; it is nil only when 201 was written.
func Store(w io.Writer, path string, body *bufio.Reader) error {
	storeErr := storeLines(path, body)
	if storeErr != nil {
		if err := response.WriteStatusLine(w, response.StatusInternalServerError); err != nil {
			return errors.Join(storeErr, err)
		}
		return storeErr
	}
	return response.WriteStatusLine(w, response.StatusCreated)
}

func storeLines(path string, body *bufio.Reader) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	for {
		line, rerr := body.ReadBytes('\n')
		if len(line) > 0 {
			// "\n", "\r\n" and a lone "\r" all end a line.
			line = bytes.TrimSuffix(line, []byte{'\n'})
			line = bytes.ReplaceAll(line, []byte{'\r'}, nil)
			if _, err := f.Write(line); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
		if errors.Is(rerr, io.EOF) {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("read body: %w", rerr)
		}
	}
}
