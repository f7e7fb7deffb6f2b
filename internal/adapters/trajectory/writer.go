// Package trajectory persists simulated day rows to a plain-text log and
// reads them back for downstream aggregation.
//
// The format is one line per simulated day holding the whole population's
// status integers, whitespace separated. The file name embeds the two
// contact-density parameters so distinct scenarios never overwrite each
// other's logs.
package trajectory

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mkret/seihrd/internal/domain/status"
	"github.com/mkret/seihrd/pkg/metrics"
)

// Filename returns the deterministic log name for a scenario's
// contact-density parameters.
func Filename(maxContacts, maxFreq int) string {
	return fmt.Sprintf("simulate_contacts%d_freq%d.csv", maxContacts, maxFreq)
}

// Writer streams day rows to a trajectory log. It implements the engine's
// Reporter contract.
type Writer struct {
	path string
	f    *os.File
	buf  *bufio.Writer
}

// NewWriter creates the log file for the given scenario parameters inside
// dir, truncating any previous run's log.
func NewWriter(dir string, maxContacts, maxFreq int) (*Writer, error) {
	path := filepath.Join(dir, Filename(maxContacts, maxFreq))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenLog, err)
	}
	return &Writer{
		path: path,
		f:    f,
		buf:  bufio.NewWriter(f),
	}, nil
}

// Path returns the log file location.
func (w *Writer) Path() string {
	return w.path
}

// WriteDay appends one day's status row to the log.
func (w *Writer) WriteDay(_ int, row []status.Status) error {
	for i, s := range row {
		if i > 0 {
			if err := w.buf.WriteByte(' '); err != nil {
				metrics.RecordTrajectoryWriteError()
				return fmt.Errorf("%w: %v", ErrWriteLog, err)
			}
		}
		if _, err := w.buf.WriteString(strconv.Itoa(int(s))); err != nil {
			metrics.RecordTrajectoryWriteError()
			return fmt.Errorf("%w: %v", ErrWriteLog, err)
		}
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		metrics.RecordTrajectoryWriteError()
		return fmt.Errorf("%w: %v", ErrWriteLog, err)
	}
	metrics.RecordTrajectoryRow()
	return nil
}

// Close flushes buffered rows and closes the log file.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		_ = w.f.Close()
		return fmt.Errorf("%w: %v", ErrWriteLog, err)
	}
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteLog, err)
	}
	return nil
}
