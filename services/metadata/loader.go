package metadataService

import (
	"context"
	"fmdverse/api/models/constants"
	"fmdverse/api/models/constants/column"
	"fmdverse/api/models/failures"
	"fmdverse/api/models/metadata"
	"fmdverse/api/repositories/tabular"
	"fmdverse/api/utils"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mitchellh/mapstructure"
)

// cell tokens treated as an absent value
var absentTokens = []string{"", "na", "nan", "null"}

type rawRecord struct {
	Accession string `mapstructure:"accession"`
	Country   string `mapstructure:"country"`
	Serotype  string `mapstructure:"serotype"`
	Lineage   string `mapstructure:"lineage"`
	Year      string `mapstructure:"year"`
}

// Load reads a metadata source into a Dataset, keeping source row order.
// Failures are tagged DataUnavailable and are not retried here.
func Load(ctx context.Context, source string, opts tabular.Options) (*metadata.Dataset, error) {
	df, err := tabular.ReadFrame(ctx, source, opts)
	if err != nil {
		return nil, err
	}

	columns := schemaOf(df)
	for _, required := range column.Required {
		if !containsColumn(columns, required) {
			return nil, goerr.New("metadata source is missing a required column",
				goerr.V("source", source),
				goerr.V("column", required),
				goerr.T(failures.DataUnavailable))
		}
	}

	records, err := decodeRecords(df)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode metadata rows",
			goerr.V("source", source),
			goerr.T(failures.DataUnavailable))
	}

	return metadata.NewDataset(source, columns, records), nil
}

func schemaOf(df dataframe.DataFrame) []constants.Column {
	columns := []constants.Column{}
	for _, name := range df.Names() {
		c := column.CastToColumn(name)
		if c == column.Unknown || containsColumn(columns, c) {
			continue
		}
		columns = append(columns, c)
	}
	return columns
}

func decodeRecords(df dataframe.DataFrame) ([]metadata.Record, error) {
	rows := df.Maps()
	records := make([]metadata.Record, 0, len(rows))

	for _, row := range rows {
		var raw rawRecord
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &raw,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(row); err != nil {
			return nil, err
		}

		records = append(records, metadata.Record{
			Accession: raw.Accession,
			Country:   optionalString(raw.Country),
			Serotype:  optionalString(raw.Serotype),
			Lineage:   optionalString(raw.Lineage),
			Year:      parseYear(raw.Year),
		})
	}

	return records, nil
}

func isAbsent(value string) bool {
	return utils.StringInSlice(strings.ToLower(strings.TrimSpace(value)), absentTokens)
}

func optionalString(value string) *string {
	if isAbsent(value) {
		return nil
	}
	return &value
}

// parseYear accepts integers and integral floats (spreadsheets export 2019 as 2019.0)
func parseYear(value string) *int {
	if isAbsent(value) {
		return nil
	}
	trimmed := strings.TrimSpace(value)

	if year, err := strconv.Atoi(trimmed); err == nil {
		return &year
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		year := int(f)
		return &year
	}
	return nil
}

func containsColumn(columns []constants.Column, c constants.Column) bool {
	for _, col := range columns {
		if col == c {
			return true
		}
	}
	return false
}
