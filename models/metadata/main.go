package metadata

import (
	"fmdverse/api/models/constants"
	"fmdverse/api/models/constants/column"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Record struct {
	Accession string  `json:"accession"`
	Country   *string `json:"country"`
	Serotype  *string `json:"serotype"`
	Lineage   *string `json:"lineage"`
	Year      *int    `json:"year"`
}

// Value returns the record's value for a column rendered as a string,
// and whether that value is present.
func (r Record) Value(c constants.Column) (string, bool) {
	switch c {
	case column.Accession:
		return r.Accession, len(r.Accession) > 0
	case column.Country:
		return deref(r.Country)
	case column.Serotype:
		return deref(r.Serotype)
	case column.Lineage:
		return deref(r.Lineage)
	case column.Year:
		if r.Year == nil {
			return "", false
		}
		return strconv.Itoa(*r.Year), true
	}
	return "", false
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

type Dataset struct {
	Id       uuid.UUID          `json:"id"`
	Source   string             `json:"source"`
	Columns  []constants.Column `json:"columns"`
	Records  []Record           `json:"-"`
	LoadedAt time.Time          `json:"loadedAt"`
}

func NewDataset(source string, columns []constants.Column, records []Record) *Dataset {
	if records == nil {
		records = []Record{}
	}
	return &Dataset{
		Id:       uuid.New(),
		Source:   source,
		Columns:  columns,
		Records:  records,
		LoadedAt: time.Now(),
	}
}

// Derive builds a view over the same schema holding the given records.
func (d *Dataset) Derive(records []Record) *Dataset {
	if records == nil {
		records = []Record{}
	}
	return &Dataset{
		Id:       d.Id,
		Source:   d.Source,
		Columns:  d.Columns,
		Records:  records,
		LoadedAt: d.LoadedAt,
	}
}

func (d *Dataset) HasColumn(c constants.Column) bool {
	for _, col := range d.Columns {
		if col == c {
			return true
		}
	}
	return false
}

func (d *Dataset) Len() int {
	return len(d.Records)
}

// -- helpers for building records by hand
func String(s string) *string { return &s }
func Int(i int) *int          { return &i }
