package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"llmtools/internal/configedit"
	"llmtools/internal/dashboard"
	"llmtools/internal/engine"
	"llmtools/internal/hub"
	"llmtools/internal/session"
	"llmtools/internal/tokens"
	"llmtools/pkg/types"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"glyph": func(state string) string {
		switch state {
		case engine.StateRunning:
			return "🟢"
		case engine.StateStopped:
			return "🔴"
		}
		return "⚪"
	},
}

var pageTemplates = func() map[string]*template.Template {
	out := map[string]*template.Template{}
	for _, name := range []string{"home", "runner", "dashboard", "hub", "tokens", "editor"} {
		out[name] = template.Must(template.New(name).Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
	return out
}()

type navItem struct {
	Name, Href, Label, Help string
}

type page struct {
	Title   string
	Active  string
	Nav     []navItem
	Error   string
	Warning string
	Notice  string
	// Refresh enables a meta refresh in seconds; 0 disables it.
	Refresh int
	Data    any
}

func (s *server) nav() []navItem {
	items := []navItem{{Name: "home", Href: "/", Label: "Home"}}
	if s.Runner != nil {
		items = append(items, navItem{"runner", "/runner", "Command runner", "run engine commands and quick actions"})
	}
	if s.Dashboard != nil {
		items = append(items, navItem{"dashboard", "/dashboard", "Dashboard", "container status, metrics and lifecycle actions"})
	}
	if s.Hub != nil {
		items = append(items, navItem{"hub", "/hub", "Hub browser", "search and download models, datasets and spaces"})
	}
	if s.Tokens != nil {
		items = append(items, navItem{"tokens", "/tokens", "Token estimator", "count prompt tokens for a model"})
	}
	if s.Configs != nil {
		items = append(items, navItem{"editor", "/editor", "Config editor", "create, edit and lint model configs"})
	}
	return items
}

// render executes a page into a buffer first so a template failure yields
// a clean 500 instead of a half-written page.
func (s *server) render(w http.ResponseWriter, name string, p page) {
	p.Active = name
	p.Nav = s.nav()
	if p.Error != "" {
		IncrementInlineError(name)
	}
	var buf bytes.Buffer
	if err := pageTemplates[name].ExecuteTemplate(&buf, "layout", p); err != nil {
		if zlog != nil {
			zlog.Error().Err(err).Str("page", name).Msg("render page")
		}
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// parseForm applies the body limit before reading form values.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *server) mountPages(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		s.render(w, "home", page{Title: "LLM tools"})
	})
	if s.Runner != nil {
		r.Get("/runner", s.pageRunner)
		r.Post("/runner", s.pageRunner)
	}
	if s.Dashboard != nil {
		r.Get("/dashboard", s.pageDashboard)
		r.Post("/dashboard/act", s.pageDashboardAct)
	}
	if s.Hub != nil {
		r.Get("/hub", s.pageHub)
		r.Post("/hub/search", s.pageHubSearch)
		r.Post("/hub/download", s.pageHubDownload)
	}
	if s.Tokens != nil {
		r.Get("/tokens", s.pageTokens)
		r.Post("/tokens", s.pageTokens)
	}
	if s.Configs != nil {
		r.Get("/editor", s.pageEditor)
		r.Post("/editor", s.pageEditor)
	}
}

type runnerPage struct {
	Command string
	Presets []types.RunPreset
	Last    *types.RunResponse
}

func (s *server) pageRunner(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	p := page{Title: "Command runner"}
	if r.Method == http.MethodPost {
		if !parseForm(w, r) {
			return
		}
		start := time.Now()
		ctx := issuedContext(r)
		var (
			resp types.RunResponse
			err  error
		)
		if preset := r.PostForm.Get("preset"); preset != "" {
			resp, err = s.Runner.RunPreset(ctx, preset)
		} else {
			resp, err = s.Runner.Run(ctx, r.PostForm.Get("command"))
		}
		status := http.StatusOK
		if err != nil {
			status = statusFor(err)
		}
		logOp(r, "run", start, status, err)
		sess.Update(func(d *session.Data) {
			d.LastRun, d.LastRunError = &resp, ""
			if err != nil {
				d.LastRunError = err.Error()
			}
		})
	}
	data := sess.Get()
	p.Error = data.LastRunError
	rp := runnerPage{Presets: s.Runner.Presets(), Last: data.LastRun}
	if data.LastRun != nil {
		rp.Command = data.LastRun.Command
	}
	p.Data = rp
	s.render(w, "runner", p)
}

type dashboardPage struct {
	Intervals []int
	Snap      types.DashboardResponse
	Logs      *types.LogsResponse
}

func (s *server) refreshFor(r *http.Request, sess *session.Session) (int, error) {
	data := sess.Get()
	def := s.Dashboard.DefaultRefresh()
	if data.RefreshSet {
		def = data.RefreshSeconds
	}
	refresh, err := dashboard.ParseRefresh(r.URL.Query().Get("refresh"), def)
	if err != nil {
		return def, err
	}
	sess.Update(func(d *session.Data) { d.RefreshSeconds, d.RefreshSet = refresh, true })
	return refresh, nil
}

func (s *server) pageDashboard(w http.ResponseWriter, r *http.Request) {
	s.dashboardView(w, r, page{})
}

func (s *server) dashboardView(w http.ResponseWriter, r *http.Request, p page) {
	sess := session.FromContext(r.Context())
	p.Title = "Dashboard"
	refresh, err := s.refreshFor(r, sess)
	if err != nil {
		p.Warning = err.Error()
	}
	snap := s.Dashboard.Snapshot(r.Context())
	snap.RefreshSeconds = refresh
	for range snap.Errors {
		IncrementInlineError("dashboard")
	}
	dp := dashboardPage{Intervals: dashboard.RefreshIntervals, Snap: snap}
	if name := r.URL.Query().Get("logs"); name != "" {
		logs := s.Dashboard.Logs(r.Context(), name, 0)
		dp.Logs = &logs
	} else {
		// Viewing logs pauses the refresh so the output stays on screen.
		p.Refresh = refresh
	}
	p.Data = dp
	s.render(w, "dashboard", p)
}

func (s *server) pageDashboardAct(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	start := time.Now()
	resp := s.Dashboard.Act(r.Context(), r.PostForm.Get("name"), r.PostForm.Get("action"))
	p := page{}
	status := http.StatusOK
	if resp.OK {
		p.Notice = resp.Message
	} else {
		p.Error = resp.Message
		status = http.StatusBadGateway
	}
	logOp(r, "container "+resp.Action, start, status, nil)
	// Re-read ground truth after the action.
	r.URL.RawQuery = ""
	s.dashboardView(w, r, p)
}

type hubPage struct {
	Kinds       []string
	Query       types.HubSearchRequest
	Page        *types.HubSearchResponse
	Files       *types.HubFilesResponse
	Download    *types.HubDownloadResponse
	DownloadDir string
}

func (s *server) hubView(w http.ResponseWriter, r *http.Request, p page, hp hubPage) {
	sess := session.FromContext(r.Context())
	data := sess.Get()
	p.Title = "Hub browser"
	for _, k := range hub.Kinds {
		hp.Kinds = append(hp.Kinds, string(k))
	}
	hp.Query = data.HubQuery
	if hp.Query.Kind == "" {
		hp.Query.Kind = string(hub.KindModel)
	}
	hp.DownloadDir = s.Hub.DownloadDir()
	if data.HubResults != nil {
		kind, _ := hub.ParseKind(hp.Query.Kind)
		pageNo, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pg := s.Hub.Page(kind, data.HubResults, pageNo)
		hp.Page = &pg
	}
	if repo := r.URL.Query().Get("files"); repo != "" {
		files, err := s.Hub.ListFiles(r.Context(), hp.Query.Kind, repo)
		if err != nil {
			p.Error = err.Error()
		} else {
			hp.Files = &files
		}
	}
	p.Data = hp
	s.render(w, "hub", p)
}

func (s *server) pageHub(w http.ResponseWriter, r *http.Request) {
	s.hubView(w, r, page{}, hubPage{})
}

func (s *server) pageHubSearch(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	f := r.PostForm
	req := types.HubSearchRequest{
		Kind:           f.Get("kind"),
		Query:          f.Get("query"),
		Author:         f.Get("author"),
		Task:           f.Get("task"),
		Library:        f.Get("library"),
		TrainedDataset: f.Get("trained_dataset"),
	}
	p := page{}
	all, err := s.Hub.SearchAll(r.Context(), req)
	if err != nil {
		p.Error = err.Error()
	}
	session.FromContext(r.Context()).Update(func(d *session.Data) {
		d.HubQuery = req
		d.HubResults = all
		if d.HubResults == nil && err == nil {
			d.HubResults = []types.HubRepo{}
		}
	})
	r.URL.RawQuery = ""
	s.hubView(w, r, p, hubPage{})
}

func (s *server) pageHubDownload(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	data := session.FromContext(r.Context()).Get()
	req := types.HubDownloadRequest{
		Kind:      data.HubQuery.Kind,
		RepoID:    r.PostForm.Get("repo_id"),
		Filename:  r.PostForm.Get("filename"),
		OutputDir: strings.TrimSpace(r.PostForm.Get("output_dir")),
	}
	start := time.Now()
	p, hp := page{}, hubPage{}
	resp, err := s.Hub.Download(issuedContext(r), req)
	if err != nil {
		p.Error = err.Error()
		logOp(r, "hub download", start, statusFor(err), err)
	} else {
		hp.Download = &resp
		logOp(r, "hub download", start, http.StatusOK, nil)
	}
	r.URL.RawQuery = ""
	s.hubView(w, r, p, hp)
}

type tokensPage struct {
	Model  string
	Text   string
	Result *types.TokenResponse
}

func (s *server) pageTokens(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	p := page{Title: "Token estimator"}
	tp := tokensPage{Model: sess.Get().TokenModel}
	if r.Method == http.MethodPost {
		if !parseForm(w, r) {
			return
		}
		tp.Model = strings.TrimSpace(r.PostForm.Get("model"))
		tp.Text = r.PostForm.Get("text")
		sess.Update(func(d *session.Data) { d.TokenModel = tp.Model })
		resp, err := s.Tokens.Estimate(r.Context(), tp.Model, tp.Text)
		switch {
		case tokens.IsInvalidInput(err):
			p.Warning = err.Error()
		case err != nil:
			p.Error = err.Error()
		default:
			tp.Result = &resp
		}
	}
	p.Data = tp
	s.render(w, "tokens", p)
}

type editorPage struct {
	Files     []string
	Selected  string
	Content   string
	Lint      *types.LintResponse
	Reference types.ConfigReferenceResponse
}

func (s *server) pageEditor(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	p := page{Title: "Config editor"}
	ep := editorPage{Reference: configedit.Reference()}

	if r.Method == http.MethodPost {
		if !parseForm(w, r) {
			return
		}
		p.Error, p.Notice, ep.Lint = s.editorOp(sess, r.PostForm.Get("op"), r.PostForm.Get("name"), r.PostForm.Get("content"))
	} else if file := r.URL.Query().Get("file"); file != "" {
		content, err := s.Configs.Read(file)
		if err != nil {
			p.Error = err.Error()
		} else {
			sess.Update(func(d *session.Data) { d.SelectedConfig, d.EditorContent = withExt(file), content })
		}
	}

	files, err := s.Configs.List()
	if err != nil {
		// A missing models directory blocks the page.
		p.Error = err.Error()
		p.Data = ep
		s.render(w, "editor", p)
		return
	}
	ep.Files = files
	data := sess.Get()
	ep.Selected, ep.Content = data.SelectedConfig, data.EditorContent
	p.Data = ep
	s.render(w, "editor", p)
}

// editorOp applies one editor form action and returns the message to show.
func (s *server) editorOp(sess *session.Session, op, name, content string) (errMsg, notice string, lint *types.LintResponse) {
	switch op {
	case "create":
		fn, err := s.Configs.Create(name)
		if err != nil {
			return err.Error(), "", nil
		}
		tmpl, err := s.Configs.Read(fn)
		if err != nil {
			return err.Error(), "", nil
		}
		sess.Update(func(d *session.Data) { d.SelectedConfig, d.EditorContent = fn, tmpl })
		return "", "Created " + fn, nil
	case "save":
		sess.Update(func(d *session.Data) { d.EditorContent = content })
		if err := s.Configs.Save(name, content); err != nil {
			return err.Error(), "", nil
		}
		return "", "Saved " + withExt(name), nil
	case "lint":
		sess.Update(func(d *session.Data) { d.EditorContent = content })
		res := configedit.Lint(content)
		return "", "", &res
	case "delete":
		if err := s.Configs.Delete(name); err != nil {
			return err.Error(), "", nil
		}
		sess.Update(func(d *session.Data) {
			if d.SelectedConfig == withExt(name) {
				d.SelectedConfig, d.EditorContent = "", ""
			}
		})
		return "", "Deleted " + withExt(name), nil
	}
	return "unknown editor action: " + op, "", nil
}
