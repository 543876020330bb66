package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToOpenAPI3(t *testing.T) {
	servers := []Server{{URL: "http://localhost:8080", Description: "development"}}

	spec, err := ConvertToOpenAPI3(servers)
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", spec.OpenAPI)
	assert.Equal(t, servers, spec.Servers)
	assert.Equal(t, "Fortuna Reports API", spec.Info["title"])

	for _, path := range []string{
		"/api/v1/reports/months",
		"/api/v1/reports/by-categories",
		"/api/v1/reports/by-categories/{categoryId}/transactions",
		"/api/v1/reports/by-categories/export",
		"/api/v1/categories",
		"/health",
		"/ws",
	} {
		assert.Contains(t, spec.Paths, path)
	}

	schemas, ok := spec.Components["schemas"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, schemas, "report.View")
	assert.Contains(t, schemas, "handler.ProblemDetails")
}

func TestConvertToOpenAPI3_RewritesRefsAndParameters(t *testing.T) {
	spec, err := ConvertToOpenAPI3(nil)
	require.NoError(t, err)

	raw, err := json.Marshal(spec)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "#/definitions/")

	get := spec.Paths["/api/v1/reports/by-categories"].(map[string]interface{})["get"].(map[string]interface{})
	params := get["parameters"].([]interface{})
	require.Len(t, params, 1)
	month := params[0].(map[string]interface{})
	assert.Equal(t, "month", month["name"])
	assert.Equal(t, map[string]interface{}{"type": "string"}, month["schema"])

	ok := get["responses"].(map[string]interface{})["200"].(map[string]interface{})
	assert.NotContains(t, ok, "schema")
	content := ok["content"].(map[string]interface{})["application/json"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"$ref": "#/components/schemas/report.View"}, content["schema"])
}

func TestTransformParameter_EnumAndDefault(t *testing.T) {
	got := transformParameter(map[string]interface{}{
		"name":    "format",
		"in":      "query",
		"type":    "string",
		"enum":    []interface{}{"csv", "pdf"},
		"default": "csv",
	})

	assert.Equal(t, "format", got["name"])
	assert.Equal(t, "query", got["in"])
	assert.NotContains(t, got, "type")
	assert.Equal(t, map[string]interface{}{
		"type":    "string",
		"enum":    []interface{}{"csv", "pdf"},
		"default": "csv",
	}, got["schema"])
}

func TestServeOpenAPI3Spec(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := ServeOpenAPI3Spec([]Server{{URL: "https://reports.example.com"}})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body OpenAPI3Spec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "3.0.3", body.OpenAPI)
	require.Len(t, body.Servers, 1)
	assert.Equal(t, "https://reports.example.com", body.Servers[0].URL)
}
