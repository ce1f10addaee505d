package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// CSVAppender appends rows to a CSV file, writing the header only when the
// file is empty. Rows from several goroutines are serialised.
type CSVAppender struct {
	path   string
	header []string
	mu     sync.Mutex
}

func NewCSVAppender(path string, header []string) *CSVAppender {
	return &CSVAppender{path: path, header: header}
}

func (a *CSVAppender) Path() string {
	return a.path
}

// Append writes one row. The file is opened and closed on each call so a
// crashed run keeps every completed row.
func (a *CSVAppender) Append(row []string) error {
	if len(row) != len(a.header) {
		return fmt.Errorf("csv row has %d fields, header has %d", len(row), len(a.header))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	wr := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := wr.Write(a.header); err != nil {
			return err
		}
	}
	if err := wr.Write(row); err != nil {
		return err
	}
	wr.Flush()
	return wr.Error()
}
