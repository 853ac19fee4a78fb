// Package docs is generated by swaggo/swag from handler annotations.
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
        "/api/v1/menu": {
            "get": {
                "description": "Returns available dinners with their default composition, and serving styles.",
                "produces": ["application/json"],
                "tags": ["Menu"],
                "summary": "Get the menu",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.menuResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/voice-order/start": {
            "post": {
                "description": "Creates a conversation seeded with the menu and returns the assistant greeting.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["VoiceOrder"],
                "summary": "Start a voice order session",
                "parameters": [
                    {"description": "Customer", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/http.startReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.startResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/voice-order/chat": {
            "post": {
                "description": "Runs one conversation turn. When the reply completes the order, order_data is returned.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["VoiceOrder"],
                "summary": "Send a user message",
                "parameters": [
                    {"description": "Turn", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.chatReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Completion provider failed", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/voice-order/order/{session_id}": {
            "get": {
                "description": "Returns the last completed order draft of a session.",
                "produces": ["application/json"],
                "tags": ["VoiceOrder"],
                "summary": "Get the order draft",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.orderResp"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/voice-order/session/{session_id}": {
            "delete": {
                "description": "Drops the conversation and its draft. Ending an unknown session succeeds.",
                "produces": ["application/json"],
                "tags": ["VoiceOrder"],
                "summary": "End a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API can reach the menu catalog",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.startReq": {
            "type": "object",
            "properties": {"customer_name": {"type": "string", "maxLength": 100}}
        },
        "http.startResp": {
            "type": "object",
            "properties": {
                "assistant_message": {"type": "string"},
                "session_id": {"type": "string"}
            }
        },
        "http.chatReq": {
            "type": "object",
            "properties": {
                "customer_name": {"type": "string", "maxLength": 100},
                "session_id": {"type": "string"},
                "user_message": {"type": "string", "maxLength": 4000}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "assistant_message": {"type": "string"},
                "display_message": {"type": "string"},
                "is_order_complete": {"type": "boolean"},
                "order_data": {"$ref": "#/definitions/http.orderResp"},
                "session_id": {"type": "string"}
            }
        },
        "http.orderResp": {
            "type": "object",
            "properties": {
                "card_cvc": {"type": "string"},
                "card_expiry": {"type": "string"},
                "card_number": {"type": "string"},
                "customizations": {"type": "object", "additionalProperties": {"type": "integer"}},
                "delivery_address": {"type": "string"},
                "delivery_date": {"type": "string"},
                "dinner_id": {"type": "string"},
                "dinner_name": {"type": "string"},
                "style_id": {"type": "string"},
                "style_name": {"type": "string"}
            }
        },
        "http.menuItemResp": {
            "type": "object",
            "properties": {
                "can_decrease": {"type": "boolean"},
                "can_increase": {"type": "boolean"},
                "can_remove": {"type": "boolean"},
                "default_quantity": {"type": "integer"},
                "id": {"type": "string"},
                "is_required": {"type": "boolean"},
                "max_quantity": {"type": "integer"},
                "min_quantity": {"type": "integer"},
                "name": {"type": "string"},
                "unit": {"type": "string"},
                "unit_price": {"type": "number"}
            }
        },
        "http.dinnerResp": {
            "type": "object",
            "properties": {
                "allowed_styles": {"type": "array", "items": {"type": "string"}},
                "base_price": {"type": "number"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "image_url": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.menuItemResp"}},
                "name": {"type": "string"}
            }
        },
        "http.styleResp": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price_modifier": {"type": "number"}
            }
        },
        "http.menuResp": {
            "type": "object",
            "properties": {
                "dinners": {"type": "array", "items": {"$ref": "#/definitions/http.dinnerResp"}},
                "styles": {"type": "array", "items": {"$ref": "#/definitions/http.styleResp"}}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
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
	Title:            "Voice Ordering API",
	Description:      "Conversational dinner ordering: sessions, turns and extracted order drafts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
