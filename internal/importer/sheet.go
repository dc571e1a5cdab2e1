package importer

import (
	"errors"
	"strings"
)

// ErrSheetTooShort rejects sheets without the title/header/data layout.
var ErrSheetTooShort = errors.New("a planilha deve conter pelo menos 3 linhas (título, cabeçalho e dados)")

// Sheet is the tabular input after shaping: the non-blank headers of row 2 and
// the data rows 3+ keyed by header.
type Sheet struct {
	Headers []string
	Rows    []map[string]string
}

// ParseSheet shapes raw cells into a Sheet. Row 1 is a title and ignored, row
// 2 holds the column headers, rows 3+ hold data. Blank headers drop their
// column; rows with no values at all are dropped.
func ParseSheet(cells [][]string) (Sheet, error) {
	if len(cells) < 3 {
		return Sheet{}, ErrSheetTooShort
	}

	headerRow := cells[1]
	headers := make([]string, 0, len(headerRow))
	columns := make([]int, 0, len(headerRow)) // header -> source column index
	for i, h := range headerRow {
		if strings.TrimSpace(h) == "" {
			continue
		}
		headers = append(headers, h)
		columns = append(columns, i)
	}

	var rows []map[string]string
	for _, raw := range cells[2:] {
		row := make(map[string]string, len(headers))
		empty := true
		for j, header := range headers {
			var value string
			if columns[j] < len(raw) {
				value = raw[columns[j]]
			}
			row[header] = value
			if strings.TrimSpace(value) != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}

	return Sheet{Headers: headers, Rows: rows}, nil
}

// AutoMap suggests a field-to-header mapping by matching headers against field
// labels, ignoring case and whitespace.
func AutoMap(headers []string) map[string]string {
	mapping := make(map[string]string)
	for _, field := range Fields {
		want := normalizeLabel(field.Label)
		for _, header := range headers {
			if normalizeLabel(header) == want {
				mapping[field.Key] = header
				break
			}
		}
	}
	return mapping
}

func normalizeLabel(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r == ' ' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
