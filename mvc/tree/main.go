package tree

import (
	"fmdverse/api/contexts"
	"fmdverse/api/models/dtos/errors"
	"net/http"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

// GetTree serves the Newick artifact as-is for client-side rendering.
func GetTree(c echo.Context) error {
	gc := c.(*contexts.ExplorerContext)
	gc.ZapLogger.Info("GetTree hit", zap.String("path", gc.Config.Api.TreePath))

	artifact, err := gc.TreeLoader(gc.Config.Api.TreePath)
	if err != nil {
		gc.ZapLogger.Warn("tree unavailable", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, errors.CreateSimpleServiceUnavailable("Error loading tree: "+err.Error()))
	}

	return c.String(http.StatusOK, artifact.Newick)
}
