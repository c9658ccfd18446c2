package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"llmtools/internal/config"
	"llmtools/internal/configedit"
	"llmtools/internal/dashboard"
	"llmtools/internal/engine"
	"llmtools/internal/httpapi"
	"llmtools/internal/hub"
	"llmtools/internal/runner"
	"llmtools/internal/session"
	"llmtools/internal/tokens"
)

// Hooks replaced in tests.
var (
	fnNewExecutor = func() engine.Executor { return engine.ExecExecutor{} }
	fnNewAPI      = func(host string) (engine.Engine, error) { return engine.NewAPI(host) }
	fnHost        = func() dashboard.HostSampler { return dashboard.PSUtilSampler{} }
)

// app holds the components built from one resolved Config.
type app struct {
	cfg     config.Config
	log     zerolog.Logger
	engine  engine.Engine
	dash    *dashboard.Service
	runner  *runner.Runner
	hub     *hub.Browser
	tokens  *tokens.Estimator
	configs *configedit.Store
}

func newApp(cfg config.Config, log zerolog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}
	ex := fnNewExecutor()

	switch strings.ToLower(cfg.Engine.Mode) {
	case "", "cli":
		a.engine = engine.NewCLI(cfg.Engine.Bin, ex)
	case "api":
		eng, err := fnNewAPI(cfg.Engine.Host)
		if err != nil {
			return nil, err
		}
		a.engine = eng
	default:
		return nil, fmt.Errorf("unknown engine mode %q (want cli or api)", cfg.Engine.Mode)
	}

	dl := log.With().Str("component", "dashboard").Logger()
	a.dash = dashboard.New(a.engine, dashboard.Options{
		Workers:        cfg.Engine.MetricsWorkers,
		LogTail:        cfg.Engine.LogTail,
		RefreshSeconds: cfg.Engine.RefreshSeconds,
		Host:           fnHost(),
		Events:         logPublisher{log: dl},
		Logger:         &dl,
	})

	rl := log.With().Str("component", "runner").Logger()
	a.runner = runner.New(cfg.Engine.Bin, ex, runner.Options{
		QuotedArgs:      cfg.Runner.QuotedArgs,
		Allowed:         cfg.Runner.AllowedSubcommands,
		ServerContainer: cfg.Runner.ServerContainer,
		Logger:          &rl,
	})

	client := hub.NewClient(hub.ClientOptions{
		Endpoint:   cfg.Hub.Endpoint,
		Token:      cfg.Hub.Token,
		MaxResults: cfg.Hub.MaxResults,
	})
	a.hub = hub.NewBrowser(client, cfg.Hub.PageSize, cfg.Hub.DownloadDir)
	a.tokens = tokens.NewEstimator(tokens.RouterLoader{
		Hub:  tokens.NewHubLoader(client, cfg.Tokens.CacheDir),
		GGUF: tokens.NewGGUFLoader(cfg.Tokens.GGUFContext),
	})
	a.configs = configedit.NewStore(cfg.Editor.ModelsDir, cfg.Editor.TemplateFile)
	return a, nil
}

// configureHTTP pushes the server section into the httpapi package settings.
func (a *app) configureHTTP() {
	s := a.cfg.Server
	httpapi.SetLogger(a.log.With().Str("component", "http").Logger())
	httpapi.SetMaxBodyBytes(s.MaxBodyBytes)
	if a.cfg.Engine.RefreshSeconds > 0 {
		httpapi.SetLiveInterval(a.cfg.Engine.RefreshSeconds)
	}
	httpapi.SetCORSOptions(s.CORS.Enabled, s.CORS.Origins, s.CORS.Methods, s.CORS.Headers)
}

func (a *app) deps(sessions *session.Store) httpapi.Deps {
	return httpapi.Deps{
		Dashboard: a.dash,
		Runner:    a.runner,
		Hub:       a.hub,
		Tokens:    a.tokens,
		Configs:   a.configs,
		Sessions:  sessions,
	}
}

func (a *app) sessionIdle() time.Duration {
	return time.Duration(a.cfg.Server.SessionIdleMinutes) * time.Minute
}

func (a *app) Close() error {
	if a.engine != nil {
		return a.engine.Close()
	}
	return nil
}

// logPublisher writes dashboard events to the process log.
type logPublisher struct{ log zerolog.Logger }

func (p logPublisher) Publish(e dashboard.Event) {
	ev := p.log.Info().Str("event", e.Name).Str("container", e.Container)
	if len(e.Fields) > 0 {
		ev = ev.Fields(e.Fields)
	}
	ev.Msg("dashboard event")
}
