package mvc

import (
	"fmdverse/api/contexts"
	"fmdverse/api/models/dtos/errors"
	"fmdverse/api/models/failures"
	"fmdverse/api/models/metadata"
	"net/http"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

// RetrieveCommonElements resolves the explorer context and the memoized dataset.
func RetrieveCommonElements(c echo.Context) (*contexts.ExplorerContext, *metadata.Dataset, error) {
	gc := c.(*contexts.ExplorerContext)

	ds, err := gc.MetadataService.Dataset(c.Request().Context())
	if err != nil {
		return gc, nil, err
	}

	return gc, ds, nil
}

// RespondError reports a failure to the client without taking the process
// down : an unavailable dataset is a 503, anything else a 500.
func RespondError(gc *contexts.ExplorerContext, err error) error {
	if failures.IsDataUnavailable(err) {
		gc.ZapLogger.Warn("dataset unavailable", zap.Error(err))
		return gc.JSON(http.StatusServiceUnavailable, errors.CreateSimpleServiceUnavailable("Metadata could not be loaded: "+err.Error()))
	}
	gc.ZapLogger.Error("request failed", zap.Error(err))
	return gc.JSON(http.StatusInternalServerError, errors.CreateSimpleInternalServerError("Something went wrong... Please contact the administrator!"))
}
