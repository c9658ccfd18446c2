package config

import (
	"path/filepath"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	if cfg.Server.Addr != ":8501" || cfg.Engine.Bin != "docker" || cfg.Engine.Mode != "cli" {
		t.Fatalf("unexpected server/engine defaults: %+v %+v", cfg.Server, cfg.Engine)
	}
	if cfg.Engine.LogTail != 100 || cfg.Hub.PageSize != 20 || cfg.Runner.ServerContainer != "localai" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Editor.ModelsDir != "models" || cfg.Hub.DownloadDir != "models" {
		t.Fatalf("models dir defaults: editor=%q hub=%q", cfg.Editor.ModelsDir, cfg.Hub.DownloadDir)
	}
	if filepath.Base(cfg.Tokens.CacheDir) != "tokenizers" {
		t.Fatalf("cache dir=%q", cfg.Tokens.CacheDir)
	}
}

func TestApplyEnv_ModelsPath(t *testing.T) {
	var cfg Config
	cfg.ApplyEnv(envMap(map[string]string{"MODELS_PATH": "/srv/models", "HF_TOKEN": "hf_abc", "HF_ENDPOINT": "http://mirror/"}))
	cfg.Defaults()
	if cfg.Editor.ModelsDir != "/srv/models" || cfg.Hub.DownloadDir != "/srv/models" {
		t.Fatalf("MODELS_PATH not applied: %+v %+v", cfg.Editor, cfg.Hub)
	}
	if cfg.Hub.Token != "hf_abc" || cfg.Hub.Endpoint != "http://mirror" {
		t.Fatalf("hub env not applied: %+v", cfg.Hub)
	}
}

func TestApplyEnv_KeepsExplicitDownloadDir(t *testing.T) {
	cfg := Config{Hub: HubConfig{DownloadDir: "/dl"}}
	cfg.ApplyEnv(envMap(map[string]string{"MODELS_PATH": "/srv/models"}))
	if cfg.Hub.DownloadDir != "/dl" {
		t.Fatalf("download dir overwritten: %q", cfg.Hub.DownloadDir)
	}
}

func TestResolve_FileThenEnv(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "server:\n  addr: :1111\nengine:\n  bin: podman\n")
	cfg, err := Resolve(p, envMap(map[string]string{"LLMTOOLS_ADDR": ":2222"}))
	if err != nil { t.Fatalf("resolve: %v", err) }
	if cfg.Server.Addr != ":2222" { t.Fatalf("env should win over file: %q", cfg.Server.Addr) }
	if cfg.Engine.Bin != "podman" { t.Fatalf("bin=%q", cfg.Engine.Bin) }
	if cfg.Engine.MetricsWorkers != 8 { t.Fatalf("defaults not applied: %+v", cfg.Engine) }
}

func TestResolve_NoFile(t *testing.T) {
	cfg, err := Resolve("", envMap(nil))
	if err != nil { t.Fatalf("resolve: %v", err) }
	if cfg.Server.Addr == "" { t.Fatalf("expected defaults") }
}

func TestSetModelsDir(t *testing.T) {
	cfg, err := Resolve("", envMap(map[string]string{"MODELS_PATH": "/srv/models"}))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	cfg.SetModelsDir("/data/models")
	if cfg.Editor.ModelsDir != "/data/models" || cfg.Hub.DownloadDir != "/data/models" {
		t.Fatalf("defaulted download dir did not follow: %+v %+v", cfg.Editor, cfg.Hub)
	}

	cfg, _ = Resolve("", envMap(nil))
	cfg.SetModelsDir("/data/models")
	if cfg.Hub.DownloadDir != "/data/models" {
		t.Fatalf("download dir=%q", cfg.Hub.DownloadDir)
	}

	cfg = Config{Hub: HubConfig{DownloadDir: "/downloads"}}
	cfg.Defaults()
	cfg.SetModelsDir("/data/models")
	if cfg.Hub.DownloadDir != "/downloads" {
		t.Fatalf("explicit download dir overridden: %q", cfg.Hub.DownloadDir)
	}
}
