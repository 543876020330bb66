package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dafibh/fortuna/fortuna-reports/docs"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// OpenAPI3Spec represents an OpenAPI 3.0 spec structure
type OpenAPI3Spec struct {
	OpenAPI    string                 `json:"openapi"`
	Info       map[string]interface{} `json:"info"`
	Servers    []Server               `json:"servers"`
	Paths      map[string]interface{} `json:"paths"`
	Components map[string]interface{} `json:"components,omitempty"`
}

// Server represents an OpenAPI 3.0 server
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// transformRefs recursively rewrites $ref from #/definitions/ to #/components/schemas/
// and converts Swagger 2.0 parameters to OpenAPI 3.0 format
func transformRefs(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		if _, hasIn := v["in"]; hasIn {
			if _, hasName := v["name"]; hasName {
				return transformParameter(v)
			}
		}

		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if ref, ok := value.(string); ok && key == "$ref" {
				result[key] = strings.Replace(ref, "#/definitions/", "#/components/schemas/", 1)
				continue
			}
			result[key] = transformRefs(value)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = transformRefs(item)
		}
		return result
	default:
		return data
	}
}

// transformParameter moves the type fields of a Swagger 2.0 parameter into a schema object
func transformParameter(param map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for _, field := range []string{"name", "in", "description", "required"} {
		if val, ok := param[field]; ok {
			result[field] = val
		}
	}

	schema := make(map[string]interface{})
	for _, field := range []string{"type", "format", "enum", "default", "minimum", "maximum", "items"} {
		val, ok := param[field]
		if !ok {
			continue
		}
		if field == "items" {
			val = transformRefs(val)
		}
		schema[field] = val
	}
	if len(schema) > 0 {
		result["schema"] = schema
	}

	return result
}

// transformResponses wraps Swagger 2.0 response schemas in an application/json media type
func transformResponses(paths map[string]interface{}) {
	for _, item := range paths {
		operations, _ := item.(map[string]interface{})
		for _, op := range operations {
			operation, _ := op.(map[string]interface{})
			delete(operation, "produces")
			responses, _ := operation["responses"].(map[string]interface{})
			for _, r := range responses {
				response, _ := r.(map[string]interface{})
				schema, ok := response["schema"]
				if !ok {
					continue
				}
				delete(response, "schema")
				response["content"] = map[string]interface{}{
					"application/json": map[string]interface{}{"schema": schema},
				}
			}
		}
	}
}

// ConvertToOpenAPI3 converts the registered swagger 2.0 document to OpenAPI 3.0
func ConvertToOpenAPI3(servers []Server) (*OpenAPI3Spec, error) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return nil, err
	}

	var swagger2 map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &swagger2); err != nil {
		return nil, err
	}

	info, _ := swagger2["info"].(map[string]interface{})

	paths, _ := swagger2["paths"].(map[string]interface{})
	transformedPaths, _ := transformRefs(paths).(map[string]interface{})
	transformResponses(transformedPaths)

	components := make(map[string]interface{})
	if definitions, ok := swagger2["definitions"].(map[string]interface{}); ok {
		components["schemas"] = transformRefs(definitions)
	}

	return &OpenAPI3Spec{
		OpenAPI:    "3.0.3",
		Info:       info,
		Servers:    servers,
		Paths:      transformedPaths,
		Components: components,
	}, nil
}

// ServeOpenAPI3Spec serves the swagger spec converted to OpenAPI 3.0 with the given servers
func ServeOpenAPI3Spec(servers []Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		spec, err := ConvertToOpenAPI3(servers)
		if err != nil {
			return NewInternalError(c, "Failed to read API description")
		}
		return c.JSON(http.StatusOK, spec)
	}
}
