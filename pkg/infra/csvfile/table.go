// Package csvfile reads a CSV export into a header-indexed in-memory table.
package csvfile

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/m-mizutani/reldash/pkg/domain/types"
)

// Table is the content of a CSV file. Rows never contain the header line.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

// Load reads every line of r. The first non-blank line is the header and each
// following line must have exactly as many fields as the header.
func Load(r io.Reader) (*Table, error) {
	// Strip a UTF-8 BOM if the exporter wrote one
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, goerr.New("CSV input is empty", goerr.T(types.ErrTagParse))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read CSV header", goerr.T(types.ErrTagParse))
	}

	t := &Table{
		header: make([]string, len(header)),
		index:  make(map[string]int, len(header)),
	}
	for i, h := range header {
		name := normalizeHeader(h)
		if name == "" {
			return nil, goerr.New("CSV header has an empty column name",
				goerr.T(types.ErrTagParse), goerr.V("column", i+1))
		}
		if _, dup := t.index[name]; dup {
			return nil, goerr.New("CSV header has a duplicated column",
				goerr.T(types.ErrTagParse), goerr.V("column", name))
		}
		t.header[i] = name
		t.index[name] = i
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, goerr.Wrap(err, "malformed CSV row",
					goerr.T(types.ErrTagParse), goerr.V("line", perr.StartLine))
			}
			return nil, goerr.Wrap(err, "failed to read CSV row", goerr.T(types.ErrTagParse))
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// normalizeHeader trims spaces and composes Hangul syllables, since files
// saved on macOS often carry decomposed (NFD) header names
func normalizeHeader(h string) string {
	return norm.NFC.String(strings.TrimSpace(h))
}

// Header returns the normalized column names
func (t *Table) Header() []string {
	return t.header
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th data row
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// Index returns the position of column name. A missing column is a parse error.
func (t *Table) Index(name string) (int, error) {
	idx, ok := t.index[normalizeHeader(name)]
	if !ok {
		return 0, goerr.New("required column is missing",
			goerr.T(types.ErrTagParse),
			goerr.V("column", name),
			goerr.V("header", t.header),
		)
	}
	return idx, nil
}
