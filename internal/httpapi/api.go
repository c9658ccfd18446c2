package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"llmtools/internal/configedit"
	"llmtools/internal/dashboard"
	"llmtools/internal/engine"
	"llmtools/internal/hub"
	"llmtools/pkg/types"
)

// decodeJSON enforces the JSON content type and body limit, writing the
// error response itself when it returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// apiDashboard godoc
// @Summary      Dashboard snapshot
// @Description  Lists running and stopped containers with per-container metrics. Listing and metrics failures are reported inline.
// @Tags         dashboard
// @Produce      json
// @Param        refresh  query  int  false  "Auto-refresh interval (0, 30, 60, 120, 300)"
// @Success      200  {object}  types.DashboardResponse
// @Failure      400  {object}  types.ErrorResponse
// @Router       /api/dashboard [get]
func (s *server) apiDashboard(w http.ResponseWriter, r *http.Request) {
	refresh, err := dashboard.ParseRefresh(r.URL.Query().Get("refresh"), s.Dashboard.DefaultRefresh())
	if err != nil {
		writeErr(w, err)
		return
	}
	snap := s.Dashboard.Snapshot(r.Context())
	snap.RefreshSeconds = refresh
	writeJSON(w, http.StatusOK, snap)
}

// apiAction godoc
// @Summary      Container lifecycle action
// @Description  Issues start, stop, restart or delete. Once issued the call is not canceled by the client going away.
// @Tags         dashboard
// @Produce      json
// @Param        name    path  string  true  "Container name"
// @Param        action  path  string  true  "start|stop|restart|delete"
// @Success      200  {object}  types.ActionResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      502  {object}  types.ActionResponse
// @Router       /api/containers/{name}/{action} [post]
func (s *server) apiAction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name, action := chi.URLParam(r, "name"), chi.URLParam(r, "action")
	if _, err := engine.ParseAction(action); err != nil {
		writeErr(w, err)
		return
	}
	resp := s.Dashboard.Act(r.Context(), name, action)
	status := http.StatusOK
	if !resp.OK {
		status = http.StatusBadGateway
	}
	logOp(r, "container "+resp.Action, start, status, nil)
	writeJSON(w, status, resp)
}

// apiLogs godoc
// @Summary      Container logs
// @Tags         dashboard
// @Produce      json
// @Param        name  path   string  true   "Container name"
// @Param        tail  query  int     false  "Number of lines (default 100)"
// @Success      200  {object}  types.LogsResponse
// @Failure      502  {object}  types.LogsResponse
// @Router       /api/containers/{name}/logs [get]
func (s *server) apiLogs(w http.ResponseWriter, r *http.Request) {
	tail := 0
	if v := r.URL.Query().Get("tail"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSONError(w, http.StatusBadRequest, "tail must be a non-negative integer")
			return
		}
		tail = n
	}
	resp := s.Dashboard.Logs(r.Context(), chi.URLParam(r, "name"), tail)
	status := http.StatusOK
	if resp.Error != "" {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, resp)
}

// apiRun godoc
// @Summary      Run an engine command
// @Description  Splits the command, prefixes the engine binary and returns raw stdout and stderr. A non-zero exit is visible only through stderr.
// @Tags         runner
// @Accept       json
// @Produce      json
// @Param        body  body  types.RunRequest  true  "Command"
// @Success      200  {object}  types.RunResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      403  {object}  types.ErrorResponse
// @Failure      503  {object}  types.ErrorResponse
// @Router       /api/run [post]
func (s *server) apiRun(w http.ResponseWriter, r *http.Request) {
	var req types.RunRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		writeJSONError(w, http.StatusBadRequest, "command is required")
		return
	}
	start := time.Now()
	resp, err := s.Runner.Run(issuedContext(r), req.Command)
	s.finishRun(w, r, start, resp, err)
}

// apiPresets godoc
// @Summary      List runner quick actions
// @Tags         runner
// @Produce      json
// @Success      200  {object}  types.PresetsResponse
// @Router       /api/run/presets [get]
func (s *server) apiPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.PresetsResponse{Presets: s.Runner.Presets()})
}

// apiRunPreset godoc
// @Summary      Run a quick action
// @Tags         runner
// @Produce      json
// @Param        preset  path  string  true  "restart|logs|gpu"
// @Success      200  {object}  types.RunResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/run/presets/{preset} [post]
func (s *server) apiRunPreset(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	resp, err := s.Runner.RunPreset(issuedContext(r), chi.URLParam(r, "preset"))
	s.finishRun(w, r, start, resp, err)
}

func (s *server) finishRun(w http.ResponseWriter, r *http.Request, start time.Time, resp types.RunResponse, err error) {
	if err != nil {
		logOp(r, "run", start, statusFor(err), err)
		writeErr(w, err)
		return
	}
	if requestLogLevel(r) >= LevelDebug {
		lw := &loggingLineWriter{prefix: "run"}
		_, _ = lw.Write([]byte(resp.Stdout))
		lw.Flush()
	}
	logOp(r, "run", start, http.StatusOK, nil)
	writeJSON(w, http.StatusOK, resp)
}

// apiHubSearch godoc
// @Summary      Search the hub
// @Description  Fetches the full result set for the filters and returns one page of it.
// @Tags         hub
// @Produce      json
// @Param        kind             path   string  true   "model|dataset|space"
// @Param        query            query  string  false  "Free-text search"
// @Param        author           query  string  false  "Author or organization"
// @Param        task             query  string  false  "Pipeline task"
// @Param        library          query  string  false  "Library"
// @Param        trained_dataset  query  string  false  "Trained dataset"
// @Param        page             query  int     false  "1-based page"
// @Success      200  {object}  types.HubSearchResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      502  {object}  types.ErrorResponse
// @Router       /api/hub/{kind}/search [get]
func (s *server) apiHubSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := types.HubSearchRequest{
		Kind:           chi.URLParam(r, "kind"),
		Query:          q.Get("query"),
		Author:         q.Get("author"),
		Task:           q.Get("task"),
		Library:        q.Get("library"),
		TrainedDataset: q.Get("trained_dataset"),
	}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		req.Page = n
	}
	kind, err := hub.ParseKind(req.Kind)
	if err != nil {
		writeErr(w, err)
		return
	}
	all, err := s.Hub.SearchAll(r.Context(), req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Hub.Page(kind, all, req.Page))
}

// apiHubFiles godoc
// @Summary      List repository files
// @Tags         hub
// @Produce      json
// @Param        kind     path   string  true  "model|dataset|space"
// @Param        repo_id  query  string  true  "Repository id (owner/name)"
// @Success      200  {object}  types.HubFilesResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/hub/{kind}/files [get]
func (s *server) apiHubFiles(w http.ResponseWriter, r *http.Request) {
	resp, err := s.Hub.ListFiles(r.Context(), chi.URLParam(r, "kind"), r.URL.Query().Get("repo_id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// apiHubDownload godoc
// @Summary      Download from the hub
// @Description  Downloads one file, or the whole repository when filename is empty. The output directory is created if absent.
// @Tags         hub
// @Accept       json
// @Produce      json
// @Param        kind  path  string                    true  "model|dataset|space"
// @Param        body  body  types.HubDownloadRequest  true  "Download"
// @Success      200  {object}  types.HubDownloadResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      502  {object}  types.ErrorResponse
// @Router       /api/hub/{kind}/download [post]
func (s *server) apiHubDownload(w http.ResponseWriter, r *http.Request) {
	var req types.HubDownloadRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Kind = chi.URLParam(r, "kind")
	start := time.Now()
	resp, err := s.Hub.Download(issuedContext(r), req)
	if err != nil {
		logOp(r, "hub download", start, statusFor(err), err)
		writeErr(w, err)
		return
	}
	logOp(r, "hub download", start, http.StatusOK, nil)
	writeJSON(w, http.StatusOK, resp)
}

// apiTokens godoc
// @Summary      Estimate tokens
// @Description  Replaces newlines with spaces and counts tokens with the model's tokenizer.
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        body  body  types.TokenRequest  true  "Model and text"
// @Success      200  {object}  types.TokenResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      502  {object}  types.ErrorResponse
// @Router       /api/tokens [post]
func (s *server) apiTokens(w http.ResponseWriter, r *http.Request) {
	var req types.TokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.Tokens.Estimate(r.Context(), req.Model, req.Text)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// apiConfigList godoc
// @Summary      List model configs
// @Tags         configs
// @Produce      json
// @Success      200  {object}  types.ConfigListResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/configs [get]
func (s *server) apiConfigList(w http.ResponseWriter, r *http.Request) {
	files, err := s.Configs.List()
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.ConfigListResponse{Files: files})
}

// apiConfigCreate godoc
// @Summary      Create a config from the template
// @Tags         configs
// @Accept       json
// @Produce      json
// @Param        body  body  types.CreateConfigRequest  true  "Name"
// @Success      201  {object}  types.ConfigFile
// @Failure      400  {object}  types.ErrorResponse
// @Failure      409  {object}  types.ErrorResponse
// @Router       /api/configs [post]
func (s *server) apiConfigCreate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateConfigRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	name, err := s.Configs.Create(req.Name)
	if err != nil {
		writeErr(w, err)
		return
	}
	content, err := s.Configs.Read(name)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.ConfigFile{Name: name, Content: content})
}

// apiConfigRead godoc
// @Summary      Read a config
// @Tags         configs
// @Produce      json
// @Param        name  path  string  true  "File name"
// @Success      200  {object}  types.ConfigFile
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/configs/{name} [get]
func (s *server) apiConfigRead(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	content, err := s.Configs.Read(name)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.ConfigFile{Name: withExt(name), Content: content})
}

// apiConfigSave godoc
// @Summary      Replace a config
// @Description  Whole-file replace of an existing config; the last writer wins.
// @Tags         configs
// @Accept       json
// @Produce      json
// @Param        name  path  string            true  "File name"
// @Param        body  body  types.ConfigFile  true  "Content"
// @Success      200  {object}  types.ConfigFile
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/configs/{name} [put]
func (s *server) apiConfigSave(w http.ResponseWriter, r *http.Request) {
	var req types.ConfigFile
	if !decodeJSON(w, r, &req) {
		return
	}
	name := chi.URLParam(r, "name")
	if err := s.Configs.Save(name, req.Content); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.ConfigFile{Name: withExt(name), Content: req.Content})
}

// apiConfigDelete godoc
// @Summary      Delete a config
// @Tags         configs
// @Param        name  path  string  true  "File name"
// @Success      204
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/configs/{name} [delete]
func (s *server) apiConfigDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Configs.Delete(chi.URLParam(r, "name")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// apiLint godoc
// @Summary      Lint YAML content
// @Description  Lints against the default rule set; an empty findings list means clean.
// @Tags         configs
// @Accept       json
// @Produce      json
// @Param        body  body  types.LintRequest  true  "Content"
// @Success      200  {object}  types.LintResponse
// @Router       /api/configs/lint [post]
func (s *server) apiLint(w http.ResponseWriter, r *http.Request) {
	var req types.LintRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, configedit.Lint(req.Content))
}

// apiConfigLintFile godoc
// @Summary      Lint a stored config
// @Tags         configs
// @Produce      json
// @Param        name  path  string  true  "File name"
// @Success      200  {object}  types.LintResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/configs/{name}/lint [post]
func (s *server) apiConfigLintFile(w http.ResponseWriter, r *http.Request) {
	content, err := s.Configs.Read(chi.URLParam(r, "name"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, configedit.Lint(content))
}

// apiConfigReference godoc
// @Summary      Editor reference
// @Description  Context-size table and common parameter hints.
// @Tags         configs
// @Produce      json
// @Success      200  {object}  types.ConfigReferenceResponse
// @Router       /api/configs/reference [get]
func (s *server) apiConfigReference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, configedit.Reference())
}

func withExt(name string) string {
	if strings.HasSuffix(name, configedit.Ext) {
		return name
	}
	return name + configedit.Ext
}
