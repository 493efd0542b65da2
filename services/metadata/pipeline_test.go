package metadataService_test

import (
	"fmdverse/api/models/constants"
	"fmdverse/api/models/constants/column"
	"fmdverse/api/models/failures"
	"fmdverse/api/models/filters"
	"fmdverse/api/models/metadata"
	metadataService "fmdverse/api/services/metadata"
	"fmdverse/api/tests/common"
	"testing"

	. "github.com/ahmetb/go-linq"
	"github.com/stretchr/testify/assert"
)

func accessionsOf(ds *metadata.Dataset) []string {
	accessions := make([]string, 0)
	From(ds.Records).
		SelectT(func(r metadata.Record) string { return r.Accession }).
		ToSlice(&accessions)
	return accessions
}

func TestFilter(t *testing.T) {
	t.Run("should keep matching rows in source order", func(t *testing.T) {
		ds := common.KenyaNigeriaDataset()

		result := metadataService.Filter(ds, filters.Criteria{column.Country: filters.Equals("Kenya")})

		assert.Equal(t, []string{"A1", "A2"}, accessionsOf(result))
		assert.Equal(t, ds.Columns, result.Columns)
	})

	t.Run("should return every row for empty criteria", func(t *testing.T) {
		ds := common.FullDataset()

		From([]filters.Criteria{
			nil,
			{},
			{column.Country: filters.Unconstrained()},
			{column.Serotype: filters.OneOf()},
		}).ForEachT(func(criteria filters.Criteria) {
			result := metadataService.Filter(ds, criteria)
			assert.Equal(t, ds.Records, result.Records)
		})
	})

	t.Run("should not modify the input dataset", func(t *testing.T) {
		ds := common.FullDataset()
		before := accessionsOf(ds)

		result := metadataService.Filter(ds, filters.Criteria{column.Serotype: filters.Equals("O")})
		assert.Equal(t, []string{"A4", "A5"}, accessionsOf(result))

		assert.Equal(t, before, accessionsOf(ds))
		assert.Len(t, ds.Records, 7)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		ds := common.FullDataset()
		criteria := filters.Criteria{column.Country: filters.OneOf("Kenya", "Nigeria")}

		once := metadataService.Filter(ds, criteria)
		twice := metadataService.Filter(once, criteria)

		assert.Equal(t, once.Records, twice.Records)
	})

	t.Run("should commute and compose", func(t *testing.T) {
		ds := common.FullDataset()
		byCountry := filters.Criteria{column.Country: filters.Equals("Kenya")}
		bySerotype := filters.Criteria{column.Serotype: filters.OneOf("SAT1", "O")}
		both := filters.Criteria{
			column.Country:  filters.Equals("Kenya"),
			column.Serotype: filters.OneOf("SAT1", "O"),
		}

		ab := metadataService.Filter(metadataService.Filter(ds, byCountry), bySerotype)
		ba := metadataService.Filter(metadataService.Filter(ds, bySerotype), byCountry)
		combined := metadataService.Filter(ds, both)

		assert.Equal(t, []string{"A1", "A5"}, accessionsOf(combined))
		assert.Equal(t, combined.Records, ab.Records)
		assert.Equal(t, combined.Records, ba.Records)
	})

	t.Run("should exclude rows with an absent value under a concrete constraint", func(t *testing.T) {
		ds := common.FullDataset()

		withLineage := metadataService.Filter(ds, filters.Criteria{column.Lineage: filters.Equals("SAT1/I")})
		assert.Equal(t, []string{"A1"}, accessionsOf(withLineage))

		byYear := metadataService.Filter(ds, filters.Criteria{column.Year: filters.Equals("2012")})
		assert.Equal(t, []string{"A1", "A3"}, accessionsOf(byYear))
	})

	t.Run("should return an empty dataset when nothing matches", func(t *testing.T) {
		result := metadataService.Filter(common.FullDataset(), filters.Criteria{column.Country: filters.Equals("Narnia")})
		assert.NotNil(t, result.Records)
		assert.Equal(t, 0, result.Len())
	})
}

func TestValueCounts(t *testing.T) {
	t.Run("should count the filtered example", func(t *testing.T) {
		ds := common.KenyaNigeriaDataset()
		kenya := metadataService.Filter(ds, filters.Criteria{column.Country: filters.Equals("Kenya")})

		counts, err := metadataService.ValueCounts(kenya, column.Serotype)

		assert.Nil(t, err)
		assert.Equal(t, []metadataService.ValueCount{
			{Value: "SAT1", Count: 1},
			{Value: "SAT2", Count: 1},
		}, counts)
	})

	t.Run("should order by count then first appearance", func(t *testing.T) {
		counts, err := metadataService.ValueCounts(common.FullDataset(), column.Serotype)

		assert.Nil(t, err)
		assert.Equal(t, []metadataService.ValueCount{
			{Value: "SAT1", Count: 2},
			{Value: "O", Count: 2},
			{Value: "A", Count: 2},
			{Value: "SAT2", Count: 1},
		}, counts)
	})

	t.Run("should sum to the number of rows holding a value", func(t *testing.T) {
		ds := common.FullDataset()

		From([]constants.Column{column.Country, column.Serotype, column.Lineage}).ForEachT(func(c constants.Column) {
			counts, err := metadataService.ValueCounts(ds, c)
			assert.Nil(t, err)

			present := From(ds.Records).WhereT(func(r metadata.Record) bool {
				_, ok := r.Value(c)
				return ok
			}).Count()
			total := From(counts).SelectT(func(vc metadataService.ValueCount) int { return vc.Count }).SumInts()

			assert.Equal(t, int64(present), total)
		})
	})

	t.Run("should be empty for an empty dataset", func(t *testing.T) {
		ds := common.FullDataset().Derive(nil)

		counts, err := metadataService.ValueCounts(ds, column.Country)
		assert.Nil(t, err)
		assert.NotNil(t, counts)
		assert.Len(t, counts, 0)
	})

	t.Run("should report a missing column", func(t *testing.T) {
		_, err := metadataService.ValueCounts(common.KenyaNigeriaDataset(), column.Lineage)
		assert.NotNil(t, err)
		assert.True(t, failures.IsColumnMissing(err))
	})
}

func TestTop(t *testing.T) {
	counts := []metadataService.ValueCount{
		{Value: "Kenya", Count: 3},
		{Value: "Nigeria", Count: 1},
		{Value: "Egypt", Count: 1},
	}

	assert.Equal(t, counts[:2], metadataService.Top(counts, 2))
	assert.Equal(t, counts, metadataService.Top(counts, 10))
	assert.Equal(t, counts, metadataService.Top(counts, 0))
}

func TestCountByYear(t *testing.T) {
	t.Run("should group ascending and skip absent years", func(t *testing.T) {
		counts, err := metadataService.CountByYear(common.FullDataset())

		assert.Nil(t, err)
		assert.Equal(t, []metadataService.YearCount{
			{Year: 2012, Count: 2},
			{Year: 2013, Count: 2},
			{Year: 2016, Count: 2},
		}, counts)
	})

	t.Run("should report a missing year column", func(t *testing.T) {
		_, err := metadataService.CountByYear(common.KenyaNigeriaDataset())
		assert.NotNil(t, err)
		assert.True(t, failures.IsColumnMissing(err))
		assert.False(t, failures.IsDataUnavailable(err))
	})
}

func TestFindByAccession(t *testing.T) {
	ds := common.FullDataset()

	t.Run("should return every exact match", func(t *testing.T) {
		results := metadataService.FindByAccession(ds, "A6")
		assert.Len(t, results, 2)
		From(results).ForEachT(func(r metadata.Record) {
			assert.Equal(t, "A6", r.Accession)
		})
	})

	t.Run("should return the single matching row", func(t *testing.T) {
		results := metadataService.FindByAccession(common.KenyaNigeriaDataset(), "A3")
		assert.Equal(t, []metadata.Record{
			{Accession: "A3", Country: metadata.String("Nigeria"), Serotype: metadata.String("SAT1")},
		}, results)
	})

	t.Run("should not match partially", func(t *testing.T) {
		assert.Len(t, metadataService.FindByAccession(ds, "A"), 0)
		assert.Len(t, metadataService.FindByAccession(ds, "a1"), 0)
	})

	t.Run("should return nothing for an unknown or empty query", func(t *testing.T) {
		From([]string{"Z9", ""}).ForEachT(func(query string) {
			results := metadataService.FindByAccession(common.KenyaNigeriaDataset(), query)
			assert.NotNil(t, results)
			assert.Len(t, results, 0)
		})
	})
}

func TestDistinctValues(t *testing.T) {
	ds := common.FullDataset()

	countries, err := metadataService.DistinctValues(ds, column.Country)
	assert.Nil(t, err)
	assert.Equal(t, []string{"Egypt", "Ethiopia", "Kenya", "Nigeria"}, countries)

	years, err := metadataService.DistinctValues(ds, column.Year)
	assert.Nil(t, err)
	assert.Equal(t, []string{"2012", "2013", "2016"}, years)

	_, err = metadataService.DistinctValues(common.KenyaNigeriaDataset(), column.Year)
	assert.True(t, failures.IsColumnMissing(err))
}
