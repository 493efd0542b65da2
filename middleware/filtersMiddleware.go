package middleware

import (
	"fmdverse/api/contexts"
	"fmdverse/api/models/constants/column"
	"fmdverse/api/models/constants/constraint"
	"fmdverse/api/models/dtos/errors"
	"fmdverse/api/models/filters"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo"
)

/*
Echo middleware to translate the filter query parameters (`country`, `serotype`,
`lineage`, `year`) into filter criteria. A missing, empty or `All` parameter
leaves the column unconstrained ; one value is an equality, several values
(comma separated or repeated) a membership test.
*/
func CalibrateFilterCriteria(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.ExplorerContext)

		queryParams := c.QueryParams()
		criteria := filters.Criteria{}
		for _, col := range column.Filterable {
			con := filters.FromQueryValues(queryParams[string(col)])

			// years must be integers to ever match
			if col == column.Year && con.Kind != constraint.Unconstrained {
				for _, v := range con.Values {
					if _, err := strconv.Atoi(v); err != nil {
						return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("invalid year %s - please provide an integer", v)))
					}
				}
			}

			criteria[col] = con
		}

		gc.Criteria = criteria
		return next(gc)
	}
}
