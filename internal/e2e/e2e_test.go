package e2e

import (
	"os"
	"path/filepath"
	"testing"

	"llmtools/internal/engine/enginetest"
	"llmtools/pkg/types"
)

func names(cards []types.ContainerCard) map[string]types.ContainerCard {
	out := map[string]types.ContainerCard{}
	for _, c := range cards {
		out[c.Container.Name] = c
	}
	return out
}

func TestE2E_MalformedListingLinesAreSkipped(t *testing.T) {
	st := newStack(t,
		enginetest.Container{ID: "a1", Name: "one", Image: "x", Running: true},
		enginetest.Container{ID: "b2", Name: "two", Image: "x", Running: true},
		enginetest.Container{ID: "c3", Name: "three", Image: "x"},
	)
	st.docker.Junk = []string{"WARNING: something odd", "{not json", ""}

	var snap types.DashboardResponse
	if code := st.call(t, "GET", "/api/dashboard", nil, &snap); code != 200 {
		t.Fatalf("status=%d", code)
	}
	if len(snap.Running) != 2 || len(snap.Stopped) != 1 {
		t.Fatalf("expected 2 running and 1 stopped, got %d/%d", len(snap.Running), len(snap.Stopped))
	}
	if len(snap.Errors) != 0 {
		t.Fatalf("malformed lines must not surface as errors: %v", snap.Errors)
	}
}

func TestE2E_MetricsFailureIsIsolated(t *testing.T) {
	st := newStack(t,
		enginetest.Container{ID: "a1", Name: "good", Image: "x", Running: true},
		enginetest.Container{ID: "b2", Name: "bad", Image: "x", Running: true, StatsFail: true},
		enginetest.Container{ID: "c3", Name: "also-good", Image: "x", Running: true},
	)
	var snap types.DashboardResponse
	st.call(t, "GET", "/api/dashboard", nil, &snap)
	running := names(snap.Running)
	if running["bad"].MetricsError == "" || running["bad"].Metrics != nil {
		t.Fatalf("bad container should carry an inline error: %+v", running["bad"])
	}
	for _, n := range []string{"good", "also-good"} {
		if running[n].Metrics == nil || running[n].MetricsError != "" {
			t.Fatalf("%s lost its metrics: %+v", n, running[n])
		}
	}
}

func TestE2E_LifecycleIsReflectedInNextListing(t *testing.T) {
	st := newStack(t,
		enginetest.Container{ID: "a1", Name: "localai", Image: "x", Running: true},
		enginetest.Container{ID: "b2", Name: "scratch", Image: "x"},
	)
	var act types.ActionResponse
	if code := st.call(t, "POST", "/api/containers/localai/stop", nil, &act); code != 200 || !act.OK {
		t.Fatalf("stop: %d %+v", code, act)
	}
	var snap types.DashboardResponse
	st.call(t, "GET", "/api/dashboard", nil, &snap)
	if c, ok := names(snap.Stopped)["localai"]; !ok || c.Container.State != "stopped" {
		t.Fatalf("stop not reflected: %+v", snap)
	}

	st.call(t, "POST", "/api/containers/localai/start", nil, &act)
	st.call(t, "POST", "/api/containers/scratch/delete", nil, &act)
	snap = types.DashboardResponse{}
	st.call(t, "GET", "/api/dashboard", nil, &snap)
	if _, ok := names(snap.Running)["localai"]; !ok {
		t.Fatalf("start not reflected: %+v", snap)
	}
	if _, ok := names(snap.Stopped)["scratch"]; ok || len(snap.Stopped) != 0 {
		t.Fatalf("deleted container still listed: %+v", snap.Stopped)
	}
}

func TestE2E_ConfigCreateUsesTemplateAndNeverOverwrites(t *testing.T) {
	st := newStack(t)
	tpl, _ := os.ReadFile(st.template)

	var cf types.ConfigFile
	if code := st.call(t, "POST", "/api/configs", types.CreateConfigRequest{Name: "foo"}, &cf); code != 201 {
		t.Fatalf("create status=%d", code)
	}
	got, err := os.ReadFile(filepath.Join(st.modelsDir, "foo.yaml"))
	if err != nil || string(got) != string(tpl) {
		t.Fatalf("foo.yaml=%q err=%v, want template %q", got, err, tpl)
	}

	st.call(t, "PUT", "/api/configs/foo", types.ConfigFile{Content: "---\nname: edited\n"}, nil)
	var er types.ErrorResponse
	if code := st.call(t, "POST", "/api/configs", types.CreateConfigRequest{Name: "foo"}, &er); code != 409 {
		t.Fatalf("duplicate create status=%d", code)
	}
	got, _ = os.ReadFile(filepath.Join(st.modelsDir, "foo.yaml"))
	if string(got) != "---\nname: edited\n" {
		t.Fatalf("existing file overwritten: %q", got)
	}
}

func TestE2E_Lint(t *testing.T) {
	st := newStack(t)
	var res types.LintResponse
	st.call(t, "POST", "/api/configs/lint", types.LintRequest{Content: "---\nname: tiny\nparameters:\n  model: tiny.gguf\n"}, &res)
	if !res.Clean || len(res.Findings) != 0 {
		t.Fatalf("expected clean: %+v", res)
	}
	res = types.LintResponse{}
	st.call(t, "POST", "/api/configs/lint", types.LintRequest{Content: "---\nname:   tiny  \n"}, &res)
	if res.Clean || len(res.Findings) == 0 {
		t.Fatalf("expected findings: %+v", res)
	}
	for _, f := range res.Findings {
		if f.Line <= 0 {
			t.Fatalf("finding without line: %+v", f)
		}
	}
}

func TestE2E_TokenLengths(t *testing.T) {
	st := newStack(t)
	var res types.TokenResponse
	st.call(t, "POST", "/api/tokens", types.TokenRequest{Model: "any", Text: "a b\r\nc\nd"}, &res)
	if res.TokenCount != 4 {
		t.Fatalf("tokens=%d", res.TokenCount)
	}
	if res.OriginalLength < res.CleanedLength || res.OriginalLength != 8 || res.CleanedLength != 7 {
		t.Fatalf("lengths: %+v", res)
	}
}

func TestE2E_HubSearchAndDownload(t *testing.T) {
	st := newStack(t)
	var page types.HubSearchResponse
	if code := st.call(t, "GET", "/api/hub/model/search?query=tiny", nil, &page); code != 200 {
		t.Fatalf("search status=%d", code)
	}
	if page.Total != 1 || page.Results[0].ID != "acme/tiny" || page.Results[0].Description != "tiny test model" {
		t.Fatalf("search: %+v", page)
	}

	var dl types.HubDownloadResponse
	if code := st.call(t, "POST", "/api/hub/model/download", types.HubDownloadRequest{RepoID: "acme/tiny"}, &dl); code != 200 {
		t.Fatalf("download status=%d", code)
	}
	if !dl.CreatedDir || len(dl.Files) != 2 {
		t.Fatalf("download: %+v", dl)
	}
	b, err := os.ReadFile(filepath.Join(st.dlDir, "acme", "tiny", "weights", "model.gguf"))
	if err != nil || string(b) != "payload:weights/model.gguf" {
		t.Fatalf("file=%q err=%v", b, err)
	}
}

func TestE2E_RunnerForwardsVerbatim(t *testing.T) {
	st := newStack(t, enginetest.Container{ID: "a1", Name: "localai", Image: "x", Running: true, Logs: "booted\n"})
	var res types.RunResponse
	if code := st.call(t, "POST", "/api/run", types.RunRequest{Command: "logs   localai"}, &res); code != 200 {
		t.Fatalf("status=%d", code)
	}
	if res.Stdout != "booted\n" || len(res.Args) != 3 {
		t.Fatalf("run: %+v", res)
	}
}
