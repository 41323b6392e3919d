package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// LedgerHeader is the fixed first row of every ledger file.
var LedgerHeader = []string{"Project Name", "Client Name", "Total Cost"}

// ProjectRecord is one saved pricing outcome.
type ProjectRecord struct {
	ProjectName string
	ClientName  string
	TotalCost   float64
}

// ValidationError reports a required field that was left empty.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseError reports a ledger row that could not be read back.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ledger line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Validate checks that both name fields are present. Carriage returns are
// rejected because the CSV reader folds "\r\n" inside a quoted field to
// "\n", so such a name would not read back unchanged.
func (r ProjectRecord) Validate() error {
	if strings.TrimSpace(r.ProjectName) == "" {
		return &ValidationError{Field: "project_name", Message: "Project name is required"}
	}
	if strings.ContainsRune(r.ProjectName, '\r') {
		return &ValidationError{Field: "project_name", Message: "Project name must not contain carriage returns"}
	}
	if strings.TrimSpace(r.ClientName) == "" {
		return &ValidationError{Field: "client_name", Message: "Client name is required"}
	}
	if strings.ContainsRune(r.ClientName, '\r') {
		return &ValidationError{Field: "client_name", Message: "Client name must not contain carriage returns"}
	}
	return nil
}

// Ledger is an append-only list of ProjectRecords stored in a CSV file.
// It keeps no state besides the file path; every call opens and closes the
// file. Appends through one Ledger are serialized, but two processes
// appending to the same file can interleave rows.
type Ledger struct {
	path string
	mu   sync.Mutex
}

// NewLedger returns a ledger backed by the CSV file at path. The file is
// created lazily on the first Append.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Path returns the location of the backing file.
func (l *Ledger) Path() string {
	return l.path
}

// Append validates r and writes it as the next row, writing the header first
// when the file is missing or empty. Invalid records leave the file untouched.
func (l *Ledger) Append(r ProjectRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create ledger dir: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat ledger: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(LedgerHeader); err != nil {
			return fmt.Errorf("write ledger header: %w", err)
		}
	} else {
		// A hand-edited file may lack the final newline.
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err != nil {
			return fmt.Errorf("read ledger tail: %w", err)
		}
		if last[0] != '\n' {
			if _, err := f.Write([]byte("\n")); err != nil {
				return fmt.Errorf("terminate last ledger row: %w", err)
			}
		}
	}
	if err := w.Write(recordRow(r)); err != nil {
		return fmt.Errorf("write ledger row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}
	return f.Close()
}

// LoadAll returns every record in file order. A missing file is an empty
// ledger, not an error.
func (l *Ledger) LoadAll() ([]ProjectRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []ProjectRecord{}, nil
		}
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	return readRecords(f)
}

// ExportCopy writes records to a new CSV file at dest. The copy shares
// nothing with the live ledger file.
func (l *Ledger) ExportCopy(records []ProjectRecord, dest string) error {
	data, err := SerializeRecords(records)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(dest); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Serialize is SerializeRecords bound to the ledger for callers that only
// hold a *Ledger.
func (l *Ledger) Serialize(records []ProjectRecord) ([]byte, error) {
	return SerializeRecords(records)
}

// SerializeRecords renders records in the ledger's CSV format, header first.
func SerializeRecords(records []ProjectRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(LedgerHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(recordRow(r)); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// readRecords parses ledger CSV. The header row is checked and skipped.
func readRecords(r io.Reader) ([]ProjectRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(LedgerHeader)
	reader.TrimLeadingSpace = true

	records := []ProjectRecord{}
	header, err := reader.Read()
	if err == io.EOF {
		return records, nil
	}
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}
	if !isLedgerHeader(header) {
		return nil, &ParseError{Line: 1, Err: fmt.Errorf("unexpected header %q", header)}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				line = csvErr.Line
			}
			return nil, &ParseError{Line: line, Err: err}
		}
		line, _ := reader.FieldPos(0)
		total, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("invalid total cost %q", row[2])}
		}
		records = append(records, ProjectRecord{
			ProjectName: row[0],
			ClientName:  row[1],
			TotalCost:   total,
		})
	}
	return records, nil
}

func isLedgerHeader(row []string) bool {
	if len(row) != len(LedgerHeader) {
		return false
	}
	for i, h := range LedgerHeader {
		if !strings.EqualFold(strings.TrimSpace(row[i]), h) {
			return false
		}
	}
	return true
}

func recordRow(r ProjectRecord) []string {
	return []string{
		r.ProjectName,
		r.ClientName,
		strconv.FormatFloat(r.TotalCost, 'f', -1, 64),
	}
}
