package viewsService

import (
	"fmdverse/api/models"
	"fmdverse/api/models/constants/column"
	"fmdverse/api/models/filters"
	"fmdverse/api/models/metadata"
	metadataService "fmdverse/api/services/metadata"
	treeService "fmdverse/api/services/tree"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	NoYearColumnMessage    = "No year column found in data."
	NoLineageColumnMessage = "No lineage column found in data."
)

type TreeLoader func(path string) (*treeService.Artifact, error)

type Overview struct {
	Total     int                                  `json:"total"`
	Displayed int                                  `json:"displayed"`
	Countries Result[[]metadataService.ValueCount] `json:"countries"`
	Serotypes Result[[]metadataService.ValueCount] `json:"serotypes"`
	Lineages  Result[[]metadataService.ValueCount] `json:"lineages"`
	Years     Result[[]metadataService.YearCount]  `json:"years"`
	Tree      Result[*treeService.Artifact]        `json:"tree"`
}

// BuildOverview computes every overview view over the filtered dataset
// concurrently. A failing view is reported in its own result only.
func BuildOverview(ds *metadata.Dataset, criteria filters.Criteria, cfg *models.Config, loadTree TreeLoader) *Overview {
	filtered := metadataService.Filter(ds, criteria)

	overview := &Overview{
		Total:     ds.Len(),
		Displayed: filtered.Len(),
	}
	mux := sync.Mutex{}

	var g errgroup.Group

	g.Go(func() error {
		counts, err := metadataService.ValueCounts(filtered, column.Country)
		if err == nil {
			counts = metadataService.Top(counts, cfg.Api.TopN)
		}
		result := FromError(counts, err, fmt.Sprintf("No %s column found in data.", column.Country))

		mux.Lock()
		overview.Countries = result
		mux.Unlock()
		return nil
	})

	g.Go(func() error {
		counts, err := metadataService.ValueCounts(filtered, column.Serotype)
		result := FromError(counts, err, fmt.Sprintf("No %s column found in data.", column.Serotype))

		mux.Lock()
		overview.Serotypes = result
		mux.Unlock()
		return nil
	})

	g.Go(func() error {
		counts, err := metadataService.ValueCounts(filtered, column.Lineage)
		result := FromError(counts, err, NoLineageColumnMessage)

		mux.Lock()
		overview.Lineages = result
		mux.Unlock()
		return nil
	})

	g.Go(func() error {
		counts, err := metadataService.CountByYear(filtered)
		result := FromError(counts, err, NoYearColumnMessage)

		mux.Lock()
		overview.Years = result
		mux.Unlock()
		return nil
	})

	g.Go(func() error {
		var result Result[*treeService.Artifact]
		if loadTree == nil {
			result = Warned[*treeService.Artifact]("no tree artifact configured")
		} else {
			artifact, err := loadTree(cfg.Api.TreePath)
			result = FromError(artifact, err, "")
		}

		mux.Lock()
		overview.Tree = result
		mux.Unlock()
		return nil
	})

	// every view reports its own failure, nothing to propagate
	_ = g.Wait()

	return overview
}
