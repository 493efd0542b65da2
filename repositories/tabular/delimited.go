package tabular

import (
	"bytes"
	"encoding/csv"
)

// readDelimitedRecords reads delimited text leniently : rows may be ragged
// and stray quotes are kept as text.
func readDelimitedRecords(content []byte, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, []byte(byteOrderMark))))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}
