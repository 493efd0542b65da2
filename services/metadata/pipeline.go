package metadataService

import (
	"fmdverse/api/models/constants"
	"fmdverse/api/models/constants/column"
	"fmdverse/api/models/failures"
	"fmdverse/api/models/filters"
	"fmdverse/api/models/metadata"
	"strconv"

	"github.com/ahmetb/go-linq"
	"github.com/m-mizutani/goerr/v2"
)

type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// Filter keeps the rows satisfying every constraint of the criteria, in their
// original relative order. The input dataset is never modified.
func Filter(ds *metadata.Dataset, criteria filters.Criteria) *metadata.Dataset {
	results := make([]metadata.Record, 0, len(ds.Records))
	if criteria.IsUnconstrained() {
		results = append(results, ds.Records...)
		return ds.Derive(results)
	}

	active := filters.Criteria{}
	for col, con := range criteria {
		if !con.IsUnconstrained() {
			active[col] = con
		}
	}

	linq.From(ds.Records).
		WhereT(func(r metadata.Record) bool {
			for col, con := range active {
				value, present := r.Value(col)
				if !con.Matches(value, present) {
					return false
				}
			}
			return true
		}).
		ToSlice(&results)

	return ds.Derive(results)
}

// ValueCounts groups rows by a column, most frequent first. Ties keep the
// order in which values were first seen. Absent values are not counted.
func ValueCounts(ds *metadata.Dataset, c constants.Column) ([]ValueCount, error) {
	if !ds.HasColumn(c) {
		return nil, columnMissing(c)
	}

	present := presentValues(ds, c)

	firstSeen := map[string]int{}
	for i, v := range present {
		if _, seen := firstSeen[v]; !seen {
			firstSeen[v] = i
		}
	}

	counts := make([]ValueCount, 0)
	linq.From(present).
		GroupByT(
			func(v string) string { return v },
			func(v string) string { return v },
		).
		SelectT(func(g linq.Group) ValueCount {
			return ValueCount{Value: g.Key.(string), Count: len(g.Group)}
		}).
		OrderByDescendingT(func(vc ValueCount) int { return vc.Count }).
		ThenByT(func(vc ValueCount) int { return firstSeen[vc.Value] }).
		ToSlice(&counts)

	return counts, nil
}

// Top truncates counts to the first n entries ; n <= 0 keeps everything.
func Top(counts []ValueCount, n int) []ValueCount {
	if n <= 0 || n >= len(counts) {
		return counts
	}
	return counts[:n]
}

// CountByYear groups rows by collection year, ascending.
func CountByYear(ds *metadata.Dataset) ([]YearCount, error) {
	if !ds.HasColumn(column.Year) {
		return nil, columnMissing(column.Year)
	}

	counts := make([]YearCount, 0)
	linq.From(ds.Records).
		WhereT(func(r metadata.Record) bool { return r.Year != nil }).
		GroupByT(
			func(r metadata.Record) int { return *r.Year },
			func(r metadata.Record) metadata.Record { return r },
		).
		SelectT(func(g linq.Group) YearCount {
			return YearCount{Year: g.Key.(int), Count: len(g.Group)}
		}).
		OrderByT(func(yc YearCount) int { return yc.Year }).
		ToSlice(&counts)

	return counts, nil
}

// FindByAccession returns every row whose accession equals the query exactly.
// An empty query matches nothing.
func FindByAccession(ds *metadata.Dataset, accession string) []metadata.Record {
	results := make([]metadata.Record, 0)
	if len(accession) == 0 {
		return results
	}

	linq.From(ds.Records).
		WhereT(func(r metadata.Record) bool { return r.Accession == accession }).
		ToSlice(&results)

	return results
}

// DistinctValues lists the present values of a column, sorted ascending
// (years numerically), for populating selection controls.
func DistinctValues(ds *metadata.Dataset, c constants.Column) ([]string, error) {
	if !ds.HasColumn(c) {
		return nil, columnMissing(c)
	}

	values := make([]string, 0)
	if c == column.Year {
		years := make([]int, 0)
		linq.From(ds.Records).
			WhereT(func(r metadata.Record) bool { return r.Year != nil }).
			SelectT(func(r metadata.Record) int { return *r.Year }).
			Distinct().
			OrderByT(func(y int) int { return y }).
			ToSlice(&years)

		for _, y := range years {
			values = append(values, strconv.Itoa(y))
		}
		return values, nil
	}

	linq.From(presentValues(ds, c)).
		Distinct().
		OrderByT(func(v string) string { return v }).
		ToSlice(&values)

	return values, nil
}

func presentValues(ds *metadata.Dataset, c constants.Column) []string {
	present := make([]string, 0, len(ds.Records))
	linq.From(ds.Records).
		WhereT(func(r metadata.Record) bool {
			_, ok := r.Value(c)
			return ok
		}).
		SelectT(func(r metadata.Record) string {
			v, _ := r.Value(c)
			return v
		}).
		ToSlice(&present)
	return present
}

func columnMissing(c constants.Column) error {
	return goerr.New("column missing from dataset",
		goerr.V("column", c),
		goerr.T(failures.ColumnMissing))
}
