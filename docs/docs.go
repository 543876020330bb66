// Package docs holds the Swagger 2.0 description of the reports API.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/categories": {
            "get": {
                "description": "Category directory ordered by group and name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categories"
                ],
                "summary": "List categories",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Include hidden categories",
                        "name": "includeHidden",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Category"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                }
            }
        },
        "/api/v1/reports/by-categories": {
            "get": {
                "description": "Per-category spending totals for a month with the per-note drill-down and the pie chart description",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Spending by category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month in YYYY-MM format (defaults to the current month)",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/report.View"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                }
            }
        },
        "/api/v1/reports/by-categories/export": {
            "post": {
                "description": "Render the month's report and store it in the export storage",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Export the by-categories report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month in YYYY-MM format (defaults to the current month)",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "enum": [
                            "csv",
                            "json",
                            "pdf",
                            "xlsx"
                        ],
                        "type": "string",
                        "default": "csv",
                        "description": "Export format",
                        "name": "format",
                        "in": "query"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.ExportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                }
            }
        },
        "/api/v1/reports/by-categories/{categoryId}/transactions": {
            "get": {
                "description": "Spending transactions of one category in a month. The id \"none\" selects uncategorized transactions.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Drill-down transactions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Category ID or none",
                        "name": "categoryId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Month in YYYY-MM format (defaults to the current month)",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.TransactionResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                }
            }
        },
        "/api/v1/reports/months": {
            "get": {
                "description": "Months from the earliest recorded transaction up to the current month, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "List report months",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.MonthOption"
                            }
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Liveness probe",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/ws": {
            "get": {
                "description": "Upgrades to a WebSocket that receives report.updated and report.error events for the month",
                "tags": [
                    "push"
                ],
                "summary": "Report push channel",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month in YYYY-MM format (defaults to the current month)",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.ProblemDetails"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Category": {
            "type": "object",
            "properties": {
                "groupName": {
                    "type": "string"
                },
                "hidden": {
                    "type": "boolean"
                },
                "id": {
                    "type": "string"
                },
                "isIncome": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "domain.ChartDescription": {
            "type": "object",
            "properties": {
                "dataLabelFormat": {
                    "type": "string"
                },
                "drilldown": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.DrilldownSeries"
                    }
                },
                "series": {
                    "$ref": "#/definitions/domain.PieSeries"
                },
                "showInLegend": {
                    "type": "boolean"
                },
                "tooltipFormat": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "domain.DrilldownPoint": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "y": {
                    "type": "number"
                }
            }
        },
        "domain.DrilldownSeries": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.DrilldownPoint"
                    }
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "domain.MonthOption": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "pretty": {
                    "type": "string"
                }
            }
        },
        "domain.PiePoint": {
            "type": "object",
            "properties": {
                "drilldown": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "y": {
                    "type": "number"
                }
            }
        },
        "domain.PieSeries": {
            "type": "object",
            "properties": {
                "colorByPoint": {
                    "type": "boolean"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.PiePoint"
                    }
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "handler.ExportResponse": {
            "type": "object",
            "properties": {
                "format": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                }
            }
        },
        "handler.ProblemDetails": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.ValidationError"
                    }
                },
                "instance": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "handler.TransactionResponse": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "categoryId": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "handler.ValidationError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "report.CategoryView": {
            "type": "object",
            "properties": {
                "breakdown": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/report.NoteView"
                    }
                },
                "categoryId": {
                    "type": "string"
                },
                "displayName": {
                    "type": "string"
                },
                "total": {
                    "type": "string"
                }
            }
        },
        "report.NoteView": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                }
            }
        },
        "report.View": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/report.CategoryView"
                    }
                },
                "chart": {
                    "$ref": "#/definitions/domain.ChartDescription"
                },
                "endDate": {
                    "type": "string"
                },
                "generatedAt": {
                    "type": "string"
                },
                "month": {
                    "type": "string"
                },
                "sentinelCollision": {
                    "type": "boolean"
                },
                "startDate": {
                    "type": "string"
                },
                "total": {
                    "type": "string"
                },
                "transactionCount": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Fortuna Reports API",
	Description:      "Monthly spending reports by category with drill-down, exports and a push channel.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
