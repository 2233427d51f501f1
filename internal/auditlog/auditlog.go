// Package auditlog appends one line per request to a plain text log file.
package auditlog

import (
	"fmt"
	"os"
	"time"
)

// DefaultPath is the log file used by the server binary, relative to the
// working directory.
const DefaultPath = "serverLog.log"

// TimestampLayout renders times like "Mon Oct 19 13:54:00 UTC 2026".
const TimestampLayout = "Mon Jan 02 15:04:05 MST 2006"

// Logger appends timestamped entries to a file. It holds no open handle;
// every Append opens, writes and closes the file.
type Logger struct {
	path string
	now  func() time.Time
}

// New returns a Logger writing to path.
func New(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

// Path returns the file the logger appends to.
func (l *Logger) Path() string {
	return l.path
}

// Append writes "<timestamp> <message>\r\n" to the end of the log file,
// creating it if needed.
func (l *Logger) Append(message string) (err error) {
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close audit log: %w", cerr)
		}
	}()

	if _, err := fmt.Fprintf(f, "%s %s\r\n", l.now().Format(TimestampLayout), message); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}
