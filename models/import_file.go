package models

// ImportFile is one uploaded delimited-text file, before any parsing.
type ImportFile struct {
	Name    string
	Content string
}

// RawCsv is the output of the tokenizer: a header row and a matrix of string
// cells. Row widths are not reconciled against the header width; missing
// trailing cells read as empty strings when looked up by column name.
type RawCsv struct {
	Headers []string
	Rows    [][]string
}

// ParsedFile is an uploaded file after classification and structural
// validation. Immutable once built; consumed by the dry-run and execution
// stages.
type ParsedFile struct {
	FileName   string
	EntityType EntityType
	Headers    []string
	// Rows maps lowercased header names to raw cell values, in file order.
	Rows     []map[string]string
	Errors   []ImportIssue
	Warnings []ImportIssue
	RowCount int
}

func (f ParsedFile) IsValid() bool {
	return len(f.Errors) == 0
}
