package middleware

import (
	"fmdverse/api/contexts"
	"fmdverse/api/models/constants/column"
	"fmdverse/api/models/dtos/errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

/*
Echo middleware to ensure a known `column` path parameter was provided
*/
func MandateColumnPathParam(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.ExplorerContext)

		columnParam := c.Param("column")
		if !column.IsKnownColumn(columnParam) {
			gc.ZapLogger.Debug("invalid column provided", zap.String("column", columnParam))
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(
				fmt.Sprintf("invalid column %s - please provide one of %v", columnParam, column.All),
			))
		}

		gc.Column = column.CastToColumn(columnParam)
		return next(gc)
	}
}
