// Package docs registers the swagger document served under /api/docs.
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
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/api/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "register a new account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "req", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterReq"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AuthEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.CommonResp"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "exchange email and password for a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "req", "required": true, "schema": {"$ref": "#/definitions/dto.LoginReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuthEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            }
        },
        "/api/auth/profile": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["auth"],
                "summary": "profile of the authenticated user",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProfileEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            }
        },
        "/api/auth/password": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["auth"],
                "summary": "change the password of the authenticated user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "req", "required": true, "schema": {"$ref": "#/definitions/dto.ChangePasswordReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            }
        },
        "/api/venues": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["venue"],
                "summary": "list venues of the authenticated user",
                "parameters": [
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "page_size", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["venue"],
                "summary": "create a venue",
                "parameters": [{"in": "body", "name": "req", "required": true, "schema": {"$ref": "#/definitions/dto.VenueBody"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CommonResp"}}}
            }
        },
        "/api/venues/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["venue"],
                "summary": "get one venue",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            },
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["venue"],
                "summary": "update a venue",
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "req", "required": true, "schema": {"$ref": "#/definitions/dto.VenueBody"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["venue"],
                "summary": "delete a venue",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.CommonResp"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CommonResp": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "data": {}
            }
        },
        "dto.RegisterReq": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string", "maxLength": 128},
                "email": {"type": "string", "maxLength": 254},
                "password": {"type": "string", "minLength": 8, "maxLength": 72}
            }
        },
        "dto.LoginReq": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.ChangePasswordReq": {
            "type": "object",
            "required": ["old_password", "new_password"],
            "properties": {
                "old_password": {"type": "string"},
                "new_password": {"type": "string", "minLength": 8, "maxLength": 72}
            }
        },
        "dto.AuthResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "token": {"type": "string"},
                "expires_at": {"type": "integer"}
            }
        },
        "dto.AuthEnvelope": {
            "allOf": [
                {"$ref": "#/definitions/dto.CommonResp"},
                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.AuthResp"}}}
            ]
        },
        "dto.GetProfileResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "created_at": {"type": "integer"},
                "updated_at": {"type": "integer"}
            }
        },
        "dto.ProfileEnvelope": {
            "allOf": [
                {"$ref": "#/definitions/dto.CommonResp"},
                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.GetProfileResp"}}}
            ]
        },
        "dto.VenueBody": {
            "type": "object",
            "required": ["name", "address", "city", "state", "country", "zip_code"],
            "properties": {
                "name": {"type": "string"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "country": {"type": "string"},
                "zip_code": {"type": "string"},
                "capacity": {"type": "integer"},
                "website": {"type": "string"},
                "tech_specs": {"type": "string"},
                "notes": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Venue Tracker API",
	Description:      "Accounts, bearer tokens and venues for touring musicians.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
