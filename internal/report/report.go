package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// timestampLayout is the compact run-start timestamp embedded in the log
// file name, e.g. shutterpulse_20260830_153000.log.
const timestampLayout = "20060102_150405"

// Logbook mirrors run output to the console and a persisted log file.
// Everything written through Printf lands in both sinks with identical
// content; the transient progress indicator goes to the console only.
type Logbook struct {
	console io.Writer
	both    io.Writer
	path    string
	closer  io.Closer
}

// Open creates the run log file in dir, named prefix + start timestamp +
// ".log", mirroring output to stdout.
func Open(dir, prefix string, start time.Time) (*Logbook, error) {
	path := filepath.Join(dir, prefix+start.Format(timestampLayout)+".log")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	lb := NewLogbook(os.Stdout, f)
	lb.path = path
	lb.closer = f
	return lb, nil
}

// NewLogbook builds a logbook over arbitrary writers. Used by tests and by
// Open.
func NewLogbook(console, file io.Writer) *Logbook {
	return &Logbook{
		console: console,
		both:    io.MultiWriter(console, file),
	}
}

// Printf writes a formatted message to both the console and the log file.
func (l *Logbook) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.both, format, args...)
}

// Progress writes the transient trigger counter to the console only,
// overwriting the line in place. Not persisted to the log file.
func (l *Logbook) Progress(done, total int) {
	fmt.Fprintf(l.console, "Trigger %d/%d\r", done, total)
}

// EndProgress terminates the progress line so subsequent console output
// starts on a fresh line.
func (l *Logbook) EndProgress() {
	fmt.Fprintln(l.console)
}

// Sink returns the combined console+file writer, e.g. for mirroring debug
// output into the run log.
func (l *Logbook) Sink() io.Writer {
	return l.both
}

// Path returns the log file path, empty for writer-backed logbooks.
func (l *Logbook) Path() string {
	return l.path
}

// Close closes the underlying log file, if any.
func (l *Logbook) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
