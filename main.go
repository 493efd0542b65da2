package main

import (
	"context"
	"fmdverse/api/contexts"
	gam "fmdverse/api/middleware"
	"fmdverse/api/models"
	serviceInfo "fmdverse/api/models/constants/service-info"
	metadataMvc "fmdverse/api/mvc/metadata"
	serviceInfoMvc "fmdverse/api/mvc/service-info"
	treeMvc "fmdverse/api/mvc/tree"
	metadataService "fmdverse/api/services/metadata"
	treeService "fmdverse/api/services/tree"
	"fmdverse/api/utils"

	"fmt"
	"net/http"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"go.uber.org/zap"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	logger, err := utils.NewLogger(&cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	defer logger.Sync()

	logger.Info("Using configuration",
		zap.Bool("debug", cfg.Debug),
		zap.String("metadataSource", cfg.Api.MetadataSource),
		zap.String("treePath", cfg.Api.TreePath),
		zap.Int("topN", cfg.Api.TopN),
		zap.Int("tableLimit", cfg.Api.TableLimit),
		zap.Uint64("sourceFetchMaxRetries", cfg.Api.SourceFetchMaxRetries),
		zap.String("port", cfg.Api.Port))

	// Service Singletons
	ms := metadataService.NewMetadataService(&cfg, logger)

	// -- best-effort preload ; a failure is reported per request
	if _, loadErr := ms.Dataset(context.Background()); loadErr != nil {
		logger.Warn("metadata preload failed, continuing", zap.Error(loadErr))
	}

	// Instantiate Server
	e := echo.New()

	// Configure Server
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet},
	}))

	// -- Override handlers with "custom explorer" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.ExplorerContext{
				Context:         c,
				Config:          &cfg,
				ZapLogger:       logger,
				MetadataService: ms,
				TreeLoader:      treeService.Load,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Metadata
	e.GET("/metadata/overview", metadataMvc.GetMetadataOverview,
		// middleware
		gam.CalibrateFilterCriteria)
	e.GET("/metadata/records", metadataMvc.GetMetadataRecords,
		// middleware
		gam.CalibrateFilterCriteria,
		gam.CalibrateOptionalSizeParameter)
	e.GET("/metadata/count/by/:column", metadataMvc.CountMetadataByColumn,
		// middleware
		gam.MandateColumnPathParam,
		gam.CalibrateFilterCriteria,
		gam.ValidateOptionalTopParameter)
	e.GET("/metadata/get/by/accession", metadataMvc.GetMetadataByAccession)
	e.GET("/metadata/options", metadataMvc.GetMetadataOptions)

	// -- Tree
	e.GET("/tree", treeMvc.GetTree)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
