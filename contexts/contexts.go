package contexts

import (
	"fmdverse/api/models"
	"fmdverse/api/models/constants"
	"fmdverse/api/models/filters"
	metadataService "fmdverse/api/services/metadata"
	viewsService "fmdverse/api/services/views"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type (
	// "Helper" Context to pass into routes that need
	// the dataset handle and other variables
	ExplorerContext struct {
		echo.Context
		Config          *models.Config
		ZapLogger       *zap.Logger
		MetadataService *metadataService.MetadataService
		TreeLoader      viewsService.TreeLoader

		// calibrated by middleware
		Criteria filters.Criteria
		Column   constants.Column
		Top      int
		Size     int
	}
)
