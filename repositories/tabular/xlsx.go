package tabular

import (
	"bytes"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"
)

// readXlsxRecords returns the non-blank rows of the first sheet.
func readXlsxRecords(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, goerr.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read sheet", goerr.V("sheet", sheets[0]))
	}
	if len(rows) == 0 {
		return nil, goerr.New("sheet is empty", goerr.V("sheet", sheets[0]))
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		// skip fully blank rows
		if len(row) == 0 {
			continue
		}
		records = append(records, row)
	}

	return records, nil
}
