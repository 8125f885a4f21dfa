package importer

import (
	"strings"

	"github.com/casetrail/casetrail-backend/models"
	"github.com/casetrail/casetrail-backend/pure_utils"
)

// ParseCsv tokenizes the full text of a delimited file into a header row and a
// matrix of string cells. Quoting follows RFC 4180: fields may be enclosed in
// double quotes, embedded quotes are doubled, and quoted fields may contain
// commas and newlines. All of \n, \r and \r\n are row separators. A quote that
// is never closed consumes the rest of the input; the resulting short row is
// handled structurally by higher layers. Row widths are not reconciled against
// the header. Never returns an error.
func ParseCsv(text string) models.RawCsv {
	text = pure_utils.StringWithoutBom(text)

	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false
	fieldStarted := false

	pushField := func() {
		row = append(row, field.String())
		field.Reset()
		fieldStarted = false
	}
	pushRow := func() {
		pushField()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				field.WriteByte(c)
			}
			continue
		}

		switch c {
		case '"':
			if !fieldStarted && field.Len() == 0 {
				inQuotes = true
				fieldStarted = true
			} else {
				// quote in the middle of an unquoted field, keep it literally
				field.WriteByte(c)
			}
		case ',':
			pushField()
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			pushRow()
		case '\n':
			pushRow()
		default:
			field.WriteByte(c)
			fieldStarted = true
		}
	}
	// last field of the last line, unless the input ended on a row separator
	if field.Len() > 0 || fieldStarted || len(row) > 0 {
		pushRow()
	}

	rows = dropBlankTrailingRows(rows)
	if len(rows) == 0 {
		return models.RawCsv{}
	}
	return models.RawCsv{
		Headers: rows[0],
		Rows:    rows[1:],
	}
}

func dropBlankTrailingRows(rows [][]string) [][]string {
	for len(rows) > 0 {
		last := rows[len(rows)-1]
		if !isBlankRow(last) {
			break
		}
		rows = rows[:len(rows)-1]
	}
	return rows
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
