// Package docs registers the OpenAPI document served at /swagger. Keep the
// paths in step with the controller annotations.
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
        "/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue an admin token for the photo gallery",
                "parameters": [
                    {
                        "description": "Admin credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controllers.loginIn"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/photos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["photos"],
                "summary": "List photo folders, newest first",
                "parameters": [
                    {"type": "string", "description": "Gallery password", "name": "password", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/photos/{gridFSId}": {
            "get": {
                "produces": ["image/jpeg"],
                "tags": ["photos"],
                "summary": "Stream one stored photo",
                "parameters": [
                    {"type": "string", "description": "Stored object ID", "name": "gridFSId", "in": "path", "required": true},
                    {"type": "string", "description": "Gallery password", "name": "password", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/submit-form": {
            "post": {
                "consumes": ["application/json", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Submit a lead form",
                "parameters": [
                    {"type": "string", "description": "mediaBuying, advertiser, serviceRep or other", "name": "userType", "in": "formData", "required": true},
                    {"type": "file", "description": "Photos (mediaBuying only)", "name": "photos", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SubmitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.SubmitResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.SubmitResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.SubmitResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.loginIn": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "models.SubmitResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Masons Leads API",
	Description:      "Lead capture, duplicate gate and photo gallery.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
