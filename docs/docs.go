// Package docs registers the OpenAPI document served at /swagger/.
// It is kept by hand in step with the handler annotations; swag init -g cmd/server/main.go regenerates it.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["meta"],
                "summary": "Index",
                "responses": {
                    "200": {"description": "Hello World", "schema": {"type": "string"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["meta"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "ok", "schema": {"type": "string"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/validation.Credentials"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.Envelope"}},
                    "429": {"description": "Too Many Requests", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Revokes the presented token. Succeeds without a token.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Envelope"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "Registration data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/validation.Credentials"}
                    }
                ],
                "responses": {
                    "200": {"description": "username taken", "schema": {"$ref": "#/definitions/errors.Envelope"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/errors.Envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.Envelope"}}
                }
            }
        },
        "/user/{username}/media": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "List media items",
                "parameters": [
                    {"type": "string", "description": "Owner", "name": "username", "in": "path", "required": true},
                    {"type": "string", "description": "not started, started or finished", "name": "consumed-state", "in": "query"},
                    {"type": "string", "description": "film, audio, literature or other", "name": "medium", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/errors.Envelope"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/model.Media"}}}}
                            ]
                        }
                    },
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.Envelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Add or update a media item",
                "parameters": [
                    {"type": "string", "description": "Owner", "name": "username", "in": "path", "required": true},
                    {
                        "description": "Media item",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.UpsertMediaRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/errors.Envelope"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/model.Media"}}}
                            ]
                        }
                    },
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.Envelope"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Removing an item that does not exist succeeds.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Remove a media item",
                "parameters": [
                    {"type": "string", "description": "Owner", "name": "username", "in": "path", "required": true},
                    {
                        "description": "Media name",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.RemoveMediaRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/errors.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "errors.Envelope": {
            "type": "object",
            "properties": {
                "auth_token": {"type": "string"},
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "handler.RemoveMediaRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Inception"}
            }
        },
        "handler.UpsertMediaRequest": {
            "type": "object",
            "properties": {
                "consumed_state": {"type": "string", "enum": ["not started", "started", "finished"]},
                "medium": {"type": "string", "enum": ["film", "audio", "literature", "other"]},
                "name": {"type": "string", "example": "Dune"}
            }
        },
        "model.Media": {
            "type": "object",
            "properties": {
                "consumed_state": {"type": "string"},
                "medium": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "validation.Credentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" or \"JWT\" followed by a space and the auth_token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "GoGoMedia API",
	Description:      "Personal media tracking: register, log in and keep a list of films, audio and literature.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
