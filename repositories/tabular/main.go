package tabular

import (
	"context"
	"fmdverse/api/models/failures"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/m-mizutani/goerr/v2"
)

const byteOrderMark = "\ufeff"

type Format string

const (
	Unknown Format = ""
	Csv     Format = "csv"
	Tsv     Format = "tsv"
	Xlsx    Format = "xlsx"
)

type Options struct {
	MaxRetries      uint64
	Timeout         time.Duration
	InitialInterval time.Duration
}

func DefaultOptions() Options {
	return Options{
		MaxRetries:      5,
		Timeout:         30 * time.Second,
		InitialInterval: 500 * time.Millisecond,
	}
}

// DetectFormat picks the tabular format from the extension of a path or url.
func DetectFormat(source string) Format {
	p := source
	if IsRemote(source) {
		if u, err := url.Parse(source); err == nil {
			p = u.Path
		}
	}

	switch strings.ToLower(path.Ext(p)) {
	case ".csv":
		return Csv
	case ".tsv", ".txt":
		return Tsv
	case ".xlsx":
		return Xlsx
	default:
		return Unknown
	}
}

func IsRemote(source string) bool {
	lowered := strings.ToLower(source)
	return strings.HasPrefix(lowered, "http://") || strings.HasPrefix(lowered, "https://")
}

// ReadFrame reads a tabular source into a string-typed dataframe with trimmed
// header names. Short rows are padded, a header-only source gives an empty
// frame that keeps its columns. Every failure is tagged DataUnavailable.
func ReadFrame(ctx context.Context, source string, opts Options) (dataframe.DataFrame, error) {
	format := DetectFormat(source)
	if format == Unknown {
		return dataframe.DataFrame{}, goerr.New("unsupported metadata source format",
			goerr.V("source", source),
			goerr.T(failures.DataUnavailable))
	}

	content, err := readSource(ctx, source, opts)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	var records [][]string
	switch format {
	case Csv:
		records, err = readDelimitedRecords(content, ',')
	case Tsv:
		records, err = readDelimitedRecords(content, '\t')
	case Xlsx:
		records, err = readXlsxRecords(content)
	}
	if err != nil {
		return dataframe.DataFrame{}, goerr.Wrap(err, "failed to read metadata source",
			goerr.V("source", source),
			goerr.V("format", format),
			goerr.T(failures.DataUnavailable))
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, goerr.New("metadata source has no header row",
			goerr.V("source", source),
			goerr.T(failures.DataUnavailable))
	}

	records = padRecords(normalizeHeaders(records))

	df := loadFrame(records)
	if df.Err != nil {
		return dataframe.DataFrame{}, goerr.Wrap(df.Err, "failed to parse metadata source",
			goerr.V("source", source),
			goerr.T(failures.DataUnavailable))
	}

	return df, nil
}

func loadFrame(records [][]string) dataframe.DataFrame {
	if len(records) == 1 {
		// header only
		columns := make([]series.Series, 0, len(records[0]))
		for _, name := range records[0] {
			columns = append(columns, series.New([]string{}, series.String, name))
		}
		return dataframe.New(columns...)
	}

	return dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
}

func readSource(ctx context.Context, source string, opts Options) ([]byte, error) {
	if IsRemote(source) {
		return fetchRemote(ctx, source, opts)
	}

	content, err := os.ReadFile(source)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read metadata source",
			goerr.V("source", source),
			goerr.T(failures.DataUnavailable))
	}
	return content, nil
}

// header cells often carry stray whitespace or a byte order mark
func normalizeHeaders(records [][]string) [][]string {
	for i, name := range records[0] {
		records[0][i] = strings.TrimSpace(strings.TrimPrefix(name, byteOrderMark))
	}
	return records
}

// padRecords fits every row to the width of the header row.
func padRecords(records [][]string) [][]string {
	width := len(records[0])
	for i, row := range records[1:] {
		if len(row) == width {
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		records[i+1] = padded
	}
	return records
}
