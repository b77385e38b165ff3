package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Landy Compliance API",
        "description": "Compliance rules engine for UK residential landlords",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [
        {"BearerAuth": []}
    ],
    "tags": [
        {"name": "Properties", "description": "Portfolio and compliance checklist"},
        {"name": "Tenancies", "description": "Tenancies and rent increases"},
        {"name": "Notices", "description": "Section 8 and Section 13 notices"},
        {"name": "Maintenance", "description": "Repairs, Awaab's Law and communication logs"},
        {"name": "Documents", "description": "Document vault metadata"},
        {"name": "Dashboard", "description": "Portfolio score, alerts and risk exposure"},
        {"name": "Reports", "description": "Downloadable compliance reports"},
        {"name": "Observability", "description": "Process metrics"}
    ],
    "paths": {
        "/properties": {
            "get": {
                "tags": ["Properties"],
                "summary": "List properties with compliance progress",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Properties"],
                "summary": "Add a property",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePropertyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/properties/{id}": {
            "delete": {
                "tags": ["Properties"],
                "summary": "Delete a property and its dependent records",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not found"}}
            }
        },
        "/properties/{id}/compliance/{field}/toggle": {
            "post": {
                "tags": ["Properties"],
                "summary": "Toggle a compliance checklist item",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "field", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/properties/{id}/compliance/{field}/na": {
            "put": {
                "tags": ["Properties"],
                "summary": "Mark a checklist item not applicable",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "field", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetNotApplicableRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/properties/{id}/safety": {
            "put": {
                "tags": ["Properties"],
                "summary": "Record mould and window restrictor checks",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SafetyCheckRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/properties/{id}/tenancies": {
            "get": {
                "tags": ["Tenancies"],
                "summary": "List tenancies of a property",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Tenancies"],
                "summary": "Start a periodic tenancy",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTenancyRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/tenancies/{id}": {
            "patch": {
                "tags": ["Tenancies"],
                "summary": "Update tenant contact details",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/tenancies/{id}/end": {
            "post": {
                "tags": ["Tenancies"],
                "summary": "End an active tenancy",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Already ended"}}
            }
        },
        "/tenancies/{id}/rent-increases": {
            "get": {
                "tags": ["Tenancies"],
                "summary": "Rent increase history",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Tenancies"],
                "summary": "Propose a Section 13 rent increase",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RentIncreaseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Every violated rule is listed in error.details", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grounds": {
            "get": {
                "tags": ["Notices"],
                "summary": "Section 8 ground catalogue",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/tenancies/{id}/notices": {
            "get": {
                "tags": ["Notices"],
                "summary": "List notices with effective status",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Notices"],
                "summary": "Draft a notice and compute its expiry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DraftNoticeRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/notices/{id}/status": {
            "post": {
                "tags": ["Notices"],
                "summary": "Advance a notice through its lifecycle",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StatusRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Illegal transition"}}
            }
        },
        "/properties/{id}/maintenance": {
            "get": {
                "tags": ["Maintenance"],
                "summary": "List maintenance requests",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Maintenance"],
                "summary": "Report a maintenance issue",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReportIssueRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/maintenance/{id}/status": {
            "post": {
                "tags": ["Maintenance"],
                "summary": "Move a maintenance request to a new status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StatusRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Request is terminal"}}
            }
        },
        "/maintenance/{id}/awaabs-timeline": {
            "get": {
                "tags": ["Maintenance"],
                "summary": "Awaab's Law deadlines for a damp and mould report",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/properties/{id}/communications": {
            "get": {
                "tags": ["Maintenance"],
                "summary": "Communication log of a property",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Maintenance"],
                "summary": "Append a tenant communication",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AppendCommunicationRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/properties/{id}/documents": {
            "get": {
                "tags": ["Documents"],
                "summary": "List vault documents",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Documents"],
                "summary": "Register a vault document",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateDocumentRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/documents/{id}": {
            "delete": {
                "tags": ["Documents"],
                "summary": "Remove a vault document",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Portfolio compliance dashboard",
                "parameters": [{"name": "at", "in": "query", "type": "string", "description": "RFC3339 or YYYY-MM-DD"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/reports/compliance": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the compliance report",
                "produces": ["application/pdf", "text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["pdf", "csv", "xlsx"]},
                    {"name": "at", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "Report file", "schema": {"type": "file"}}}
            }
        },
        "/metrics/snapshot": {
            "get": {
                "tags": ["Observability"],
                "summary": "Aggregated request, cache and evaluation counters",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        }
    },
    "definitions": {
        "CreatePropertyRequest": {
            "type": "object",
            "required": ["address", "heating_type", "category"],
            "properties": {
                "address": {"type": "string"},
                "heating_type": {"type": "string", "enum": ["gas", "electric", "oil"]},
                "category": {"type": "string", "enum": ["house", "flat", "hmo"]}
            }
        },
        "SetNotApplicableRequest": {
            "type": "object",
            "required": ["not_applicable"],
            "properties": {"not_applicable": {"type": "boolean"}}
        },
        "SafetyCheckRequest": {
            "type": "object",
            "properties": {
                "mould_check_passed": {"type": "boolean"},
                "window_restrictors_ok": {"type": "boolean"}
            }
        },
        "CreateTenancyRequest": {
            "type": "object",
            "required": ["tenant_name", "start_date", "monthly_rent"],
            "properties": {
                "tenant_name": {"type": "string"},
                "tenant_email": {"type": "string"},
                "tenant_phone": {"type": "string"},
                "start_date": {"type": "string", "format": "date"},
                "monthly_rent": {"type": "number"},
                "deposit_amount": {"type": "number"}
            }
        },
        "RentIncreaseRequest": {
            "type": "object",
            "required": ["new_rent"],
            "properties": {
                "new_rent": {"type": "number"},
                "notice_served_date": {"type": "string", "format": "date"},
                "effective_date": {"type": "string", "format": "date"}
            }
        },
        "DraftNoticeRequest": {
            "type": "object",
            "required": ["notice_type", "notice_date"],
            "properties": {
                "notice_type": {"type": "string", "enum": ["section_8", "section_13"]},
                "grounds": {"type": "array", "items": {"type": "string"}},
                "notice_date": {"type": "string", "format": "date"},
                "notes": {"type": "string"}
            }
        },
        "ReportIssueRequest": {
            "type": "object",
            "required": ["issue_type", "description"],
            "properties": {
                "issue_type": {"type": "string", "enum": ["damp_mould", "plumbing", "electrical", "structural", "log_burner", "pest", "other"]},
                "description": {"type": "string"},
                "responsibility": {"type": "string", "enum": ["landlord", "tenant"]},
                "priority": {"type": "string", "enum": ["low", "medium", "high", "emergency"]},
                "remedial_deadline": {"type": "string", "format": "date-time"}
            }
        },
        "AppendCommunicationRequest": {
            "type": "object",
            "required": ["tenant_name", "method", "summary"],
            "properties": {
                "tenant_name": {"type": "string"},
                "method": {"type": "string", "enum": ["email", "sms", "phone", "in_person", "letter", "other"]},
                "summary": {"type": "string"},
                "related_request_id": {"type": "string"}
            }
        },
        "CreateDocumentRequest": {
            "type": "object",
            "required": ["name", "type"],
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["gas", "eicr", "epc", "tenant-info", "other"]}
            }
        },
        "StatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string"}}
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "details": {"type": "array", "items": {"type": "string"}}
            }
        },
        "ResponseEnvelope": {
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
