package tree_test

import (
	"fmdverse/api/contexts"
	treeMvc "fmdverse/api/mvc/tree"
	treeService "fmdverse/api/services/tree"
	"fmdverse/api/tests/common"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestGetTree(t *testing.T) {
	setUpEcho := func(treePath string) (*contexts.ExplorerContext, *httptest.ResponseRecorder) {
		cfg := common.InitConfig()
		cfg.Api.TreePath = treePath

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/tree", nil)
		rec := httptest.NewRecorder()
		gc := &contexts.ExplorerContext{
			Context:    e.NewContext(req, rec),
			Config:     cfg,
			ZapLogger:  common.NewTestLogger(),
			TreeLoader: treeService.Load,
		}
		return gc, rec
	}

	t.Run("should serve the newick text", func(t *testing.T) {
		gc, rec := setUpEcho(common.DataPath("tree.nwk"))

		assert.Nil(t, treeMvc.GetTree(gc))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain))
		assert.True(t, strings.HasSuffix(rec.Body.String(), ";"))
	})

	t.Run("should return 503 for a malformed tree", func(t *testing.T) {
		gc, rec := setUpEcho(common.DataPath("tree_malformed.nwk"))

		assert.Nil(t, treeMvc.GetTree(gc))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "Error loading tree")
	})
}
