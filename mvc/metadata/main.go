package metadata

import (
	"fmdverse/api/models/constants"
	"fmdverse/api/models/constants/column"
	s "fmdverse/api/models/constants/sort"
	"fmdverse/api/models/dtos"
	"fmdverse/api/models/failures"
	"fmdverse/api/mvc"
	metadataService "fmdverse/api/services/metadata"
	viewsService "fmdverse/api/services/views"
	"net/http"

	"github.com/Jeffail/gabs"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func GetMetadataOverview(c echo.Context) error {
	gc, ds, err := mvc.RetrieveCommonElements(c)
	if err != nil {
		return mvc.RespondError(gc, err)
	}
	gc.ZapLogger.Info("GetMetadataOverview hit", zap.Any("criteria", gc.Criteria))

	overview := viewsService.BuildOverview(ds, gc.Criteria, gc.Config, gc.TreeLoader)

	jsonObj := gabs.New()
	jsonObj.Set(ds.Id.String(), "dataset", "id")
	jsonObj.Set(ds.Source, "dataset", "source")
	jsonObj.Set(ds.Columns, "dataset", "columns")
	jsonObj.Set(ds.LoadedAt, "dataset", "loadedAt")
	jsonObj.Set(gc.Criteria, "criteria")
	jsonObj.Set(overview.Total, "total")
	jsonObj.Set(overview.Displayed, "displayed")
	jsonObj.Set(overview.Countries, "views", "countries")
	jsonObj.Set(overview.Serotypes, "views", "serotypes")
	jsonObj.Set(overview.Lineages, "views", "lineages")
	jsonObj.Set(overview.Years, "views", "years")
	jsonObj.Set(overview.Tree, "views", "tree")

	return c.JSONBlob(http.StatusOK, jsonObj.Bytes())
}

func GetMetadataRecords(c echo.Context) error {
	gc, ds, err := mvc.RetrieveCommonElements(c)
	if err != nil {
		return mvc.RespondError(gc, err)
	}
	gc.ZapLogger.Info("GetMetadataRecords hit", zap.Any("criteria", gc.Criteria), zap.Int("size", gc.Size))

	filtered := metadataService.Filter(ds, gc.Criteria)

	results := filtered.Records
	if gc.Size > 0 && len(results) > gc.Size {
		results = results[:gc.Size]
	}

	return c.JSON(http.StatusOK, dtos.MetadataRecordsResponseDTO{
		MetadataResponse: dtos.MetadataResponse{
			Status:  200,
			Message: "Success",
		},
		Criteria:  gc.Criteria,
		Total:     ds.Len(),
		Displayed: filtered.Len(),
		Count:     len(results),
		Results:   results,
	})
}

func CountMetadataByColumn(c echo.Context) error {
	gc, ds, err := mvc.RetrieveCommonElements(c)
	if err != nil {
		return mvc.RespondError(gc, err)
	}
	gc.ZapLogger.Info("CountMetadataByColumn hit",
		zap.String("column", string(gc.Column)),
		zap.Any("criteria", gc.Criteria),
		zap.Int("top", gc.Top))

	filtered := metadataService.Filter(ds, gc.Criteria)

	var (
		results  interface{}
		countErr error
	)
	if gc.Column == column.Year {
		var years []metadataService.YearCount
		years, countErr = metadataService.CountByYear(filtered)
		if countErr == nil && s.CastToSortDirection(c.QueryParam("sortByYear")) == s.Descending {
			reversed := make([]metadataService.YearCount, 0, len(years))
			for i := len(years) - 1; i >= 0; i-- {
				reversed = append(reversed, years[i])
			}
			years = reversed
		}
		results = years
	} else {
		var counts []metadataService.ValueCount
		counts, countErr = metadataService.ValueCounts(filtered, gc.Column)
		results = metadataService.Top(counts, gc.Top)
	}

	respDTO := dtos.MetadataCountResponseDTO{
		Column:   gc.Column,
		Criteria: gc.Criteria,
	}

	switch {
	case countErr == nil:
		respDTO.Status = 200
		respDTO.Message = "Success"
		respDTO.Results = results
	case failures.IsColumnMissing(countErr):
		// informational : the view is simply not available for this dataset
		respDTO.Status = 200
		respDTO.Message = columnMissingMessage(gc.Column)
		respDTO.Results = []interface{}{}
	default:
		return mvc.RespondError(gc, countErr)
	}

	return c.JSON(http.StatusOK, respDTO)
}

func GetMetadataByAccession(c echo.Context) error {
	gc, ds, err := mvc.RetrieveCommonElements(c)
	if err != nil {
		return mvc.RespondError(gc, err)
	}

	// exact match, no trimming
	term := c.QueryParam("id")
	gc.ZapLogger.Info("GetMetadataByAccession hit", zap.String("term", term))

	results := metadataService.FindByAccession(ds, term)

	message := "Success"
	if len(term) > 0 && len(results) == 0 {
		message = "No match found."
	}

	return c.JSON(http.StatusOK, dtos.AccessionSearchResponseDTO{
		MetadataResponse: dtos.MetadataResponse{
			Status:  200,
			Message: message,
		},
		Term:    term,
		Count:   len(results),
		Results: results,
	})
}

func GetMetadataOptions(c echo.Context) error {
	gc, ds, err := mvc.RetrieveCommonElements(c)
	if err != nil {
		return mvc.RespondError(gc, err)
	}
	gc.ZapLogger.Info("GetMetadataOptions hit")

	options := map[constants.Column][]string{}
	for _, col := range column.Filterable {
		values, valuesErr := metadataService.DistinctValues(ds, col)
		if valuesErr != nil {
			// columns absent from the source offer no options
			continue
		}
		options[col] = values
	}

	return c.JSON(http.StatusOK, dtos.MetadataOptionsResponseDTO{
		MetadataResponse: dtos.MetadataResponse{
			Status:  200,
			Message: "Success",
		},
		Options: options,
	})
}

func columnMissingMessage(col constants.Column) string {
	switch col {
	case column.Year:
		return viewsService.NoYearColumnMessage
	case column.Lineage:
		return viewsService.NoLineageColumnMessage
	default:
		return "No " + string(col) + " column found in data."
	}
}
