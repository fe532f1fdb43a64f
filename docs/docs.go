// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/api/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Admin login",
                "parameters": [
                    {
                        "description": "Admin credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/api/admin/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Admin logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/api/admin/payments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "List payments",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PaymentDTO"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/api/payment/webhook": {
            "post": {
                "description": "Gateway callback that moves a payment to its reported status",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Payments"],
                "summary": "Payment webhook",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/api/payments/create": {
            "post": {
                "description": "Record a pending payment and open a gateway checkout",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Payments"],
                "summary": "Create payment order",
                "parameters": [
                    {
                        "description": "Plan and optional customer details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.CreatePaymentRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CreatePaymentOrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/api/payments/verify/{orderId}": {
            "get": {
                "description": "Look up a payment by its order id",
                "produces": ["application/json"],
                "tags": ["Payments"],
                "summary": "Verify payment",
                "parameters": [
                    {"type": "string", "description": "Order ID", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PaymentDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/api/plans": {
            "get": {
                "description": "Get every promotion plan in catalogue order",
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "List plans",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PlanDTO"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        },
        "/api/seed": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Seed"],
                "summary": "Seed data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreatePaymentOrderResponse": {
            "type": "object",
            "properties": {
                "orderId": {"type": "string"},
                "paymentUrl": {"type": "string"}
            }
        },
        "dto.PaymentDTO": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "completedAt": {"type": "string"},
                "createdAt": {"type": "string"},
                "currency": {"type": "string"},
                "customerEmail": {"type": "string"},
                "customerName": {"type": "string"},
                "customerPhone": {"type": "string"},
                "id": {"type": "string"},
                "orderId": {"type": "string"},
                "paymentMethod": {"type": "string"},
                "planId": {"type": "string"},
                "planName": {"type": "string"},
                "status": {"type": "string"},
                "transactionId": {"type": "string"},
                "utr": {"type": "string"}
            }
        },
        "dto.PlanDTO": {
            "type": "object",
            "properties": {
                "duration": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "popular": {"type": "boolean"},
                "price": {"type": "string"}
            }
        },
        "handlers.CreatePaymentRequest": {
            "type": "object",
            "required": ["planId"],
            "properties": {
                "customerEmail": {"type": "string", "maxLength": 255},
                "customerName": {"type": "string", "maxLength": 255},
                "customerPhone": {"type": "string", "maxLength": 32},
                "planId": {"type": "string"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handlers.LoginResponse": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "utils.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Admin session id, sent as \"Bearer <sessionId>\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PromotionX API",
	Description:      "Plan catalogue, payment checkout and admin API for PromotionX.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
