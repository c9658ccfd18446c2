package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"llmtools/internal/configedit"
	"llmtools/internal/dashboard"
	"llmtools/internal/engine"
	"llmtools/internal/engine/enginetest"
	"llmtools/internal/httpapi"
	"llmtools/internal/hub"
	"llmtools/internal/runner"
	"llmtools/internal/tokens"
)

// stack is a full server wired to a fake engine and a fake hub.
type stack struct {
	srv       *httptest.Server
	docker    *enginetest.Docker
	modelsDir string
	template  string
	dlDir     string
}

// newHubServer answers the listing, info and resolve endpoints for a
// single repository "acme/tiny" holding two files.
func newHubServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"acme/tiny","downloads":42,"likes":7,"cardData":{"description":"tiny test model"}}]`)
	})
	mux.HandleFunc("/api/models/acme/tiny", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"acme/tiny","siblings":[{"rfilename":"config.json"},{"rfilename":"weights/model.gguf"}]}`)
	})
	mux.HandleFunc("/acme/tiny/resolve/main/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "payload:"+strings.TrimPrefix(r.URL.Path, "/acme/tiny/resolve/main/"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type spaceCounter struct{}

func (spaceCounter) Count(text string) (int, error) { return len(strings.Fields(text)), nil }

func newStack(t *testing.T, cs ...enginetest.Container) *stack {
	t.Helper()
	root := t.TempDir()
	st := &stack{
		docker:    enginetest.New(cs...),
		modelsDir: filepath.Join(root, "models"),
		template:  filepath.Join(root, "template.yaml"),
		dlDir:     filepath.Join(root, "downloads", "nested"),
	}
	if err := os.MkdirAll(st.modelsDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(st.template, []byte("---\nname: NAME\ncontext_size: 8192\n"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	hubSrv := newHubServer(t)
	client := hub.NewClient(hub.ClientOptions{Endpoint: hubSrv.URL})
	mux := httpapi.NewMux(httpapi.Deps{
		Dashboard: dashboard.New(engine.NewCLI("docker", st.docker), dashboard.Options{Workers: 2, RefreshSeconds: 30}),
		Runner:    runner.New("docker", st.docker, runner.Options{}),
		Hub:       hub.NewBrowser(client, 20, st.dlDir),
		Tokens: tokens.NewEstimator(tokens.LoaderFunc(func(ctx context.Context, model string) (tokens.Tokenizer, error) {
			return spaceCounter{}, nil
		})),
		Configs: configedit.NewStore(st.modelsDir, st.template),
	})
	st.srv = httptest.NewServer(mux)
	t.Cleanup(st.srv.Close)
	return st
}

func (s *stack) call(t *testing.T, method, path string, body any, out any) int {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, s.srv.URL+path, rdr)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s (status %d): %v", method, path, resp.StatusCode, err)
		}
	}
	return resp.StatusCode
}
