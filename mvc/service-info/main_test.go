package serviceInfo_test

import (
	"encoding/json"
	"fmdverse/api/contexts"
	serviceInfo "fmdverse/api/models/constants/service-info"
	serviceInfoMvc "fmdverse/api/mvc/service-info"
	"fmdverse/api/tests/common"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestGetServiceInfo(t *testing.T) {
	cfg := common.InitConfig()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/service-info", nil)
	rec := httptest.NewRecorder()
	gc := &contexts.ExplorerContext{
		Context:   e.NewContext(req, rec),
		Config:    cfg,
		ZapLogger: common.NewTestLogger(),
	}

	assert.Nil(t, serviceInfoMvc.GetServiceInfo(gc))
	assert.Equal(t, http.StatusOK, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	var bodyJson map[string]interface{}
	assert.Nil(t, json.Unmarshal(body, &bodyJson))

	assert.Equal(t, string(serviceInfo.SERVICE_ID), bodyJson["id"].(string))
	assert.Equal(t, string(serviceInfo.SERVICE_NAME), bodyJson["name"].(string))
	assert.Equal(t, cfg.SemVer, bodyJson["version"].(string))
	assert.Equal(t, cfg.ServiceContact, bodyJson["contactUrl"].(string))
	assert.Equal(t, string(serviceInfo.SERVICE_ARTIFACT), bodyJson["type"].(map[string]interface{})["artifact"].(string))
}
