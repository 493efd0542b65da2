package middleware

import (
	"fmdverse/api/contexts"
	"fmdverse/api/models/dtos/errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo"
)

/*
Echo middleware to validate an optional `top` query parameter (0 keeps every bucket)
*/
func ValidateOptionalTopParameter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.ExplorerContext)

		topQP := c.QueryParam("top")
		if len(topQP) > 0 {
			top, err := strconv.Atoi(topQP)
			if err != nil || top < 0 {
				return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("invalid top %s - please provide a positive integer", topQP)))
			}
			gc.Top = top
		}

		return next(gc)
	}
}

/*
Echo middleware to prepare the context for an optional `size` query parameter,
falling back to the configured table limit when absent or unparseable
*/
func CalibrateOptionalSizeParameter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.ExplorerContext)

		size := gc.Config.Api.TableLimit
		sizeQP := c.QueryParam("size")
		if len(sizeQP) > 0 {
			parsedSize, sErr := strconv.Atoi(sizeQP)
			if sErr == nil && parsedSize > 0 {
				size = parsedSize
			}
		}

		gc.Size = size
		return next(gc)
	}
}
