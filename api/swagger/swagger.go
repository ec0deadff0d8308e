package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Caseload Timetable API",
        "description": "Constraint-based session timetable generation",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Timetable", "description": "Schedule generation and export"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/timetable/generate": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Build a conflict-annotated timetable",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateTimetableRequest"}}
                ],
                "responses": {
                    "200": {"description": "Timetable", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Undecodable payload", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/v1/timetable/export": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Export the computed timetable as CSV or PDF",
                "consumes": ["application/json"],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateTimetableRequest"}}
                ],
                "responses": {
                    "200": {"description": "Rendered timetable"},
                    "400": {"description": "Undecodable payload or unknown format", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "GenerateTimetableRequest": {
            "type": "object",
            "properties": {
                "cycle_length": {"type": "integer", "default": 6},
                "workday_start": {"type": "string", "default": "08:00"},
                "workday_end": {"type": "string", "default": "17:00"},
                "slot_template": {"type": "string"},
                "max_clients_per_slot": {"type": "integer", "default": 1},
                "blackouts": {"type": "array", "items": {"$ref": "#/definitions/BlackoutWindow"}},
                "clients": {"type": "array", "items": {"$ref": "#/definitions/ClientRequest"}},
                "resource": {"$ref": "#/definitions/ResourceRequest"}
            }
        },
        "BlackoutWindow": {
            "type": "object",
            "properties": {
                "start": {"type": "string"},
                "end": {"type": "string"}
            }
        },
        "ClientRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "sessions_needed": {"type": "integer"},
                "session_length_minutes": {"type": "integer"},
                "tag": {"type": "string"},
                "spacing_rule": {"type": "string", "enum": ["none", "once_per_day", "no_consecutive_days"]},
                "max_per_day": {"type": "integer"},
                "group_id": {"type": "string"},
                "availability": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "ResourceRequest": {
            "type": "object",
            "properties": {
                "max_sessions_per_day": {"type": "integer"},
                "unavailable": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
