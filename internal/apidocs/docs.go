// Package apidocs registers the OpenAPI document served by the swagger UI.
// The paths and definitions follow the handler annotations in
// internal/httpapi and the DTOs in pkg/types; update them together.
package apidocs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/configs": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "configs"
                ],
                "summary": "List model configs",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ConfigListResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "configs"
                ],
                "summary": "Create a config from the template",
                "parameters": [
                    {
                        "description": "Name",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.CreateConfigRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/types.ConfigFile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/configs/lint": {
            "post": {
                "description": "Lints against the default rule set; an empty findings list means clean.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "configs"
                ],
                "summary": "Lint YAML content",
                "parameters": [
                    {
                        "description": "Content",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.LintRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.LintResponse"
                        }
                    }
                }
            }
        },
        "/api/configs/reference": {
            "get": {
                "description": "Context-size table and common parameter hints.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "configs"
                ],
                "summary": "Editor reference",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ConfigReferenceResponse"
                        }
                    }
                }
            }
        },
        "/api/configs/{name}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "configs"
                ],
                "summary": "Read a config",
                "parameters": [
                    {
                        "type": "string",
                        "description": "File name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ConfigFile"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "description": "Whole-file replace of an existing config; the last writer wins.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "configs"
                ],
                "summary": "Replace a config",
                "parameters": [
                    {
                        "type": "string",
                        "description": "File name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Content",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.ConfigFile"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ConfigFile"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "configs"
                ],
                "summary": "Delete a config",
                "parameters": [
                    {
                        "type": "string",
                        "description": "File name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/configs/{name}/lint": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "configs"
                ],
                "summary": "Lint a stored config",
                "parameters": [
                    {
                        "type": "string",
                        "description": "File name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.LintResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/containers/{name}/logs": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Container logs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Container name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Number of lines (default 100)",
                        "name": "tail",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.LogsResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/types.LogsResponse"
                        }
                    }
                }
            }
        },
        "/api/containers/{name}/{action}": {
            "post": {
                "description": "Issues start, stop, restart or delete. Once issued the call is not canceled by the client going away.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Container lifecycle action",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Container name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "start|stop|restart|delete",
                        "name": "action",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ActionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/types.ActionResponse"
                        }
                    }
                }
            }
        },
        "/api/dashboard": {
            "get": {
                "description": "Lists running and stopped containers with per-container metrics. Listing and metrics failures are reported inline.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Dashboard snapshot",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Auto-refresh interval (0, 30, 60, 120, 300)",
                        "name": "refresh",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.DashboardResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/dashboard/live": {
            "get": {
                "description": "Websocket that pushes a full dashboard snapshot immediately and then every refresh interval. With refresh=0 a single snapshot is sent and the socket is closed.",
                "tags": [
                    "dashboard"
                ],
                "summary": "Live dashboard",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Push interval (0, 30, 60, 120, 300)",
                        "name": "refresh",
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
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/hub/{kind}/download": {
            "post": {
                "description": "Downloads one file, or the whole repository when filename is empty. The output directory is created if absent.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hub"
                ],
                "summary": "Download from the hub",
                "parameters": [
                    {
                        "type": "string",
                        "description": "model|dataset|space",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Download",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.HubDownloadRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.HubDownloadResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/hub/{kind}/files": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hub"
                ],
                "summary": "List repository files",
                "parameters": [
                    {
                        "type": "string",
                        "description": "model|dataset|space",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Repository id (owner/name)",
                        "name": "repo_id",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.HubFilesResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/hub/{kind}/search": {
            "get": {
                "description": "Fetches the full result set for the filters and returns one page of it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hub"
                ],
                "summary": "Search the hub",
                "parameters": [
                    {
                        "type": "string",
                        "description": "model|dataset|space",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Free-text search",
                        "name": "query",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Author or organization",
                        "name": "author",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Pipeline task",
                        "name": "task",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Library",
                        "name": "library",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Trained dataset",
                        "name": "trained_dataset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "1-based page",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.HubSearchResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/run": {
            "post": {
                "description": "Splits the command, prefixes the engine binary and returns raw stdout and stderr. A non-zero exit is visible only through stderr.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "runner"
                ],
                "summary": "Run an engine command",
                "parameters": [
                    {
                        "description": "Command",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.RunRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.RunResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/run/presets": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "runner"
                ],
                "summary": "List runner quick actions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.PresetsResponse"
                        }
                    }
                }
            }
        },
        "/api/run/presets/{preset}": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "runner"
                ],
                "summary": "Run a quick action",
                "parameters": [
                    {
                        "type": "string",
                        "description": "restart|logs|gpu",
                        "name": "preset",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.RunResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/tokens": {
            "post": {
                "description": "Replaces newlines with spaces and counts tokens with the model's tokenizer.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tokens"
                ],
                "summary": "Estimate tokens",
                "parameters": [
                    {
                        "description": "Model and text",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.TokenRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.TokenResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "types.ActionResponse": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "localai"
                },
                "action": {
                    "type": "string",
                    "example": "restart"
                },
                "ok": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "types.ConfigFile": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "mistral.yaml"
                },
                "content": {
                    "type": "string"
                }
            }
        },
        "types.ConfigListResponse": {
            "type": "object",
            "properties": {
                "files": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "types.ConfigReferenceResponse": {
            "type": "object",
            "properties": {
                "context_sizes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.ContextSize"
                    }
                },
                "parameters": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.ParameterHint"
                    }
                }
            }
        },
        "types.ContainerCard": {
            "type": "object",
            "properties": {
                "container": {
                    "$ref": "#/definitions/types.ContainerRecord"
                },
                "metrics": {
                    "$ref": "#/definitions/types.ContainerMetrics"
                },
                "metrics_error": {
                    "type": "string"
                }
            }
        },
        "types.ContainerMetrics": {
            "type": "object",
            "properties": {
                "cpu_percent": {
                    "type": "string",
                    "example": "12.50%"
                },
                "mem_usage": {
                    "type": "string",
                    "example": "1.2GiB / 31.3GiB"
                },
                "net_io": {
                    "type": "string",
                    "example": "1.5kB / 0B"
                },
                "block_io": {
                    "type": "string",
                    "example": "8.19kB / 0B"
                }
            }
        },
        "types.ContainerRecord": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "3f2a9c1b7d4e"
                },
                "name": {
                    "type": "string",
                    "example": "localai"
                },
                "image": {
                    "type": "string",
                    "example": "localai/localai:latest-gpu-nvidia-cuda-12"
                },
                "status": {
                    "type": "string",
                    "example": "Up 3 hours"
                },
                "state": {
                    "type": "string",
                    "example": "running"
                },
                "ports": {
                    "type": "string",
                    "example": "0.0.0.0:8080->8080/tcp"
                }
            }
        },
        "types.ContextSize": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string",
                    "example": "8k"
                },
                "tokens": {
                    "type": "integer",
                    "example": 8192
                }
            }
        },
        "types.CreateConfigRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "mistral"
                }
            }
        },
        "types.DashboardResponse": {
            "type": "object",
            "properties": {
                "running": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.ContainerCard"
                    }
                },
                "stopped": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.ContainerCard"
                    }
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "host": {
                    "$ref": "#/definitions/types.HostSummary"
                },
                "refresh_seconds": {
                    "type": "integer",
                    "example": 60
                },
                "generated_at": {
                    "type": "integer"
                }
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "invalid JSON body"
                },
                "code": {
                    "type": "integer",
                    "example": 400
                }
            }
        },
        "types.HostSummary": {
            "type": "object",
            "properties": {
                "cpu_percent": {
                    "type": "number",
                    "example": 17.4
                },
                "mem_used_percent": {
                    "type": "number",
                    "example": 63.1
                },
                "mem_total_mb": {
                    "type": "integer",
                    "example": 32000
                }
            }
        },
        "types.HubDownloadRequest": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string",
                    "example": "model"
                },
                "repo_id": {
                    "type": "string",
                    "example": "TheBloke/Mistral-7B-Instruct-v0.2-GGUF"
                },
                "filename": {
                    "type": "string",
                    "example": "mistral-7b-instruct-v0.2.Q4_K_M.gguf"
                },
                "output_dir": {
                    "type": "string"
                }
            }
        },
        "types.HubDownloadResponse": {
            "type": "object",
            "properties": {
                "path": {
                    "type": "string"
                },
                "files": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "created_dir": {
                    "type": "boolean"
                }
            }
        },
        "types.HubFilesResponse": {
            "type": "object",
            "properties": {
                "repo_id": {
                    "type": "string",
                    "example": "TheBloke/Mistral-7B-Instruct-v0.2-GGUF"
                },
                "files": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "types.HubRepo": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "TheBloke/Mistral-7B-Instruct-v0.2-GGUF"
                },
                "author": {
                    "type": "string",
                    "example": "TheBloke"
                },
                "description": {
                    "type": "string"
                },
                "downloads": {
                    "type": "integer",
                    "example": 123456
                },
                "likes": {
                    "type": "integer",
                    "example": 42
                }
            }
        },
        "types.HubSearchResponse": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string",
                    "example": "model"
                },
                "page": {
                    "type": "integer",
                    "example": 1
                },
                "total_pages": {
                    "type": "integer",
                    "example": 3
                },
                "total": {
                    "type": "integer",
                    "example": 57
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.HubRepo"
                    }
                }
            }
        },
        "types.LintFinding": {
            "type": "object",
            "properties": {
                "line": {
                    "type": "integer",
                    "example": 3
                },
                "column": {
                    "type": "integer",
                    "example": 1
                },
                "level": {
                    "type": "string",
                    "example": "warning"
                },
                "message": {
                    "type": "string",
                    "example": "missing document start \"---\""
                },
                "rule": {
                    "type": "string",
                    "example": "document-start"
                }
            }
        },
        "types.LintRequest": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                }
            }
        },
        "types.LintResponse": {
            "type": "object",
            "properties": {
                "clean": {
                    "type": "boolean"
                },
                "findings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.LintFinding"
                    }
                }
            }
        },
        "types.LogsResponse": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "localai"
                },
                "tail": {
                    "type": "integer",
                    "example": 100
                },
                "logs": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "types.ParameterHint": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "gpu_layers"
                },
                "description": {
                    "type": "string",
                    "example": "Number of layers to offload to the GPU."
                }
            }
        },
        "types.PresetsResponse": {
            "type": "object",
            "properties": {
                "presets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.RunPreset"
                    }
                }
            }
        },
        "types.RunPreset": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "restart"
                },
                "label": {
                    "type": "string",
                    "example": "Restart LLM server"
                },
                "command": {
                    "type": "string",
                    "example": "restart localai"
                }
            }
        },
        "types.RunRequest": {
            "type": "object",
            "properties": {
                "command": {
                    "type": "string",
                    "example": "ps -a"
                }
            }
        },
        "types.RunResponse": {
            "type": "object",
            "properties": {
                "command": {
                    "type": "string",
                    "example": "ps -a"
                },
                "args": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "stdout": {
                    "type": "string"
                },
                "stderr": {
                    "type": "string"
                }
            }
        },
        "types.TokenRequest": {
            "type": "object",
            "properties": {
                "model": {
                    "type": "string",
                    "example": "mistralai/Mistral-7B-Instruct-v0.2"
                },
                "text": {
                    "type": "string",
                    "example": "Write a haiku about the ocean."
                }
            }
        },
        "types.TokenResponse": {
            "type": "object",
            "properties": {
                "model": {
                    "type": "string",
                    "example": "mistralai/Mistral-7B-Instruct-v0.2"
                },
                "token_count": {
                    "type": "integer",
                    "example": 9
                },
                "original_length": {
                    "type": "integer",
                    "example": 31
                },
                "cleaned_length": {
                    "type": "integer",
                    "example": 31
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "llmtools API",
	Description:      "Operator dashboard for a local LLM serving stack: engine commands, container status, hub browser, token estimator and config editor.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
