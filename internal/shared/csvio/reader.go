package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	ColumnDuration = "Duration"
	ColumnDate     = "Date"
)

var (
	ErrMissingHeader  = errors.New("missing header row")
	ErrMissingColumn  = errors.New("missing column")
	ErrUnknownCharset = errors.New("unknown charset")
)

// Table is a header-indexed view of a CSV document.
type Table struct {
	Header  []string
	Records [][]string
	index   map[string]int
}

// Has reports whether the header contains column (exact, case-sensitive match).
func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Field returns the value of column in record i, or "" when the column is
// absent or the record is too short.
func (t *Table) Field(i int, column string) string {
	pos, ok := t.index[column]
	if !ok || pos >= len(t.Records[i]) {
		return ""
	}
	return t.Records[i][pos]
}

// NewDecoder wraps r so that it yields UTF-8. A leading byte order mark is
// dropped for UTF-8 input.
func NewDecoder(r io.Reader, charset string) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
	}
	if enc == unicode.UTF8 {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// ReadTable reads a whole CSV document in the given charset. The first
// record is the header and must contain every column in required.
// Records may have fewer or more fields than the header.
func ReadTable(r io.Reader, charset string, required ...string) (*Table, error) {
	decoded, err := NewDecoder(r, charset)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingHeader
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	table := &Table{Header: header, index: make(map[string]int, len(header))}
	for i, name := range header {
		if _, dup := table.index[name]; !dup {
			table.index[name] = i
		}
	}
	for _, column := range required {
		if !table.Has(column) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, column)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		table.Records = append(table.Records, record)
	}

	return table, nil
}
