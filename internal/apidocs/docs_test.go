package apidocs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocIsRegisteredJSON(t *testing.T) {
	doc, err := swag.ReadDoc("swagger")
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var v map[string]any
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		t.Fatalf("doc is not JSON: %v", err)
	}
	if _, ok := v["paths"].(map[string]any)["/api/run"]; !ok {
		t.Fatalf("missing /api/run path")
	}
}

func TestDocCoversEveryRouteWithSchemas(t *testing.T) {
	doc, err := swag.ReadDoc("swagger")
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var v struct {
		Paths       map[string]map[string]map[string]any `json:"paths"`
		Definitions map[string]any                       `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		t.Fatalf("doc is not JSON: %v", err)
	}
	for _, def := range []string{
		"types.HubSearchResponse", "types.HubFilesResponse", "types.HubDownloadRequest",
		"types.HubDownloadResponse", "types.TokenRequest", "types.TokenResponse",
		"types.LintRequest", "types.LintResponse", "types.ConfigFile", "types.ConfigListResponse",
		"types.ConfigReferenceResponse", "types.PresetsResponse", "types.ContainerCard",
	} {
		if _, ok := v.Definitions[def]; !ok {
			t.Fatalf("missing definition %s", def)
		}
	}
	routes := map[string][]string{
		"/api/dashboard":                  {"get"},
		"/api/dashboard/live":             {"get"},
		"/api/containers/{name}/{action}": {"post"},
		"/api/containers/{name}/logs":     {"get"},
		"/api/run":                        {"post"},
		"/api/run/presets":                {"get"},
		"/api/run/presets/{preset}":       {"post"},
		"/api/hub/{kind}/search":          {"get"},
		"/api/hub/{kind}/files":           {"get"},
		"/api/hub/{kind}/download":        {"post"},
		"/api/tokens":                     {"post"},
		"/api/configs":                    {"get", "post"},
		"/api/configs/{name}":             {"get", "put", "delete"},
		"/api/configs/lint":               {"post"},
		"/api/configs/{name}/lint":        {"post"},
		"/api/configs/reference":          {"get"},
	}
	for path, methods := range routes {
		for _, m := range methods {
			op, ok := v.Paths[path][m]
			if !ok {
				t.Fatalf("missing %s %s", m, path)
			}
			resp, _ := op["responses"].(map[string]any)
			if len(resp) == 0 {
				t.Fatalf("%s %s has no responses", m, path)
			}
		}
	}
	for _, path := range []string{"/api/tokens", "/api/hub/{kind}/download", "/api/configs/lint"} {
		params, _ := v.Paths[path]["post"]["parameters"].([]any)
		if len(params) == 0 {
			t.Fatalf("%s has no body parameter", path)
		}
	}
}
