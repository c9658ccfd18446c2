package types

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// ContainerCard pairs a container with its metrics snapshot, or with the
// error that prevented fetching one.
type ContainerCard struct {
	Container ContainerRecord   `json:"container"`
	Metrics   *ContainerMetrics `json:"metrics,omitempty"`
	// Inline error from the metrics fetch for this container only.
	MetricsError string `json:"metrics_error,omitempty"`
}

// HostSummary is a host-level CPU and memory header for the dashboard.
type HostSummary struct {
	// example: 17.4
	CPUPercent float64 `json:"cpu_percent" example:"17.4"`
	// example: 63.1
	MemUsedPercent float64 `json:"mem_used_percent" example:"63.1"`
	// example: 32000
	MemTotalMB uint64 `json:"mem_total_mb" example:"32000"`
}

// DashboardResponse is one full render of the status dashboard.
type DashboardResponse struct {
	Running []ContainerCard `json:"running"`
	Stopped []ContainerCard `json:"stopped"`
	// Inline errors from listing calls; the render continues regardless.
	Errors []string     `json:"errors,omitempty"`
	Host   *HostSummary `json:"host,omitempty"`
	// Auto-refresh interval in seconds; 0 means disabled.
	// example: 60
	RefreshSeconds int `json:"refresh_seconds" example:"60"`
	// Unix seconds when the snapshot was taken.
	GeneratedAt int64 `json:"generated_at"`
}

// ActionResponse reports the outcome of a container lifecycle action.
type ActionResponse struct {
	// example: localai
	Name string `json:"name" example:"localai"`
	// example: restart
	Action string `json:"action" example:"restart"`
	OK     bool   `json:"ok"`
	// Success text or the engine's error output.
	Message string `json:"message,omitempty"`
}

// LogsResponse carries the tail of a container's logs.
type LogsResponse struct {
	// example: localai
	Name string `json:"name" example:"localai"`
	// example: 100
	Tail  int    `json:"tail" example:"100"`
	Logs  string `json:"logs"`
	Error string `json:"error,omitempty"`
}

// RunRequest is a free-text engine command.
type RunRequest struct {
	// Command without the engine binary prefix.
	// example: ps -a
	Command string `json:"command" example:"ps -a"`
}

// RunResponse carries the raw output of an engine command.
type RunResponse struct {
	// example: ps -a
	Command string   `json:"command" example:"ps -a"`
	Args    []string `json:"args"`
	Stdout  string   `json:"stdout"`
	Stderr  string   `json:"stderr"`
}

// PresetsResponse lists the runner quick actions.
type PresetsResponse struct {
	Presets []RunPreset `json:"presets"`
}

// RunPreset is a named quick action.
type RunPreset struct {
	// example: restart
	Name string `json:"name" example:"restart"`
	// example: Restart LLM server
	Label string `json:"label" example:"Restart LLM server"`
	// example: restart localai
	Command string `json:"command" example:"restart localai"`
}

// HubSearchRequest is the flat filter mapping for a hub listing.
type HubSearchRequest struct {
	// model, dataset or space.
	// example: model
	Kind string `json:"kind" example:"model"`
	// example: mistral
	Query string `json:"query,omitempty" example:"mistral"`
	// example: TheBloke
	Author string `json:"author,omitempty" example:"TheBloke"`
	// example: text-generation
	Task string `json:"task,omitempty" example:"text-generation"`
	// example: gguf
	Library string `json:"library,omitempty" example:"gguf"`
	// example: wikitext
	TrainedDataset string `json:"trained_dataset,omitempty" example:"wikitext"`
	// 1-based page number.
	// example: 1
	Page int `json:"page,omitempty" example:"1"`
}

// HubSearchResponse is one page of hub results.
type HubSearchResponse struct {
	// example: model
	Kind string `json:"kind" example:"model"`
	// example: 1
	Page int `json:"page" example:"1"`
	// example: 3
	TotalPages int `json:"total_pages" example:"3"`
	// example: 57
	Total   int       `json:"total" example:"57"`
	Results []HubRepo `json:"results"`
}

// HubFilesResponse lists files in a hub repository.
type HubFilesResponse struct {
	// example: TheBloke/Mistral-7B-Instruct-v0.2-GGUF
	RepoID string   `json:"repo_id" example:"TheBloke/Mistral-7B-Instruct-v0.2-GGUF"`
	Files  []string `json:"files"`
}

// HubDownloadRequest downloads one file, or the whole repository when
// Filename is empty.
type HubDownloadRequest struct {
	// example: model
	Kind string `json:"kind" example:"model"`
	// example: TheBloke/Mistral-7B-Instruct-v0.2-GGUF
	RepoID string `json:"repo_id" example:"TheBloke/Mistral-7B-Instruct-v0.2-GGUF"`
	// example: mistral-7b-instruct-v0.2.Q4_K_M.gguf
	Filename string `json:"filename,omitempty" example:"mistral-7b-instruct-v0.2.Q4_K_M.gguf"`
	// Overrides the configured download directory.
	OutputDir string `json:"output_dir,omitempty"`
}

// HubDownloadResponse reports where the artifact was written.
type HubDownloadResponse struct {
	Path string `json:"path"`
	// Files written; one for single-file downloads.
	Files []string `json:"files"`
	// True when the output directory did not exist and was created.
	CreatedDir bool `json:"created_dir"`
}

// TokenRequest asks for a token estimate.
type TokenRequest struct {
	// example: mistralai/Mistral-7B-Instruct-v0.2
	Model string `json:"model" example:"mistralai/Mistral-7B-Instruct-v0.2"`
	// example: Write a haiku about the ocean.
	Text string `json:"text" example:"Write a haiku about the ocean."`
}

// TokenResponse is the estimator report.
type TokenResponse struct {
	// example: mistralai/Mistral-7B-Instruct-v0.2
	Model string `json:"model" example:"mistralai/Mistral-7B-Instruct-v0.2"`
	// example: 9
	TokenCount int `json:"token_count" example:"9"`
	// Characters before newline replacement.
	// example: 31
	OriginalLength int `json:"original_length" example:"31"`
	// Characters after newline replacement.
	// example: 31
	CleanedLength int `json:"cleaned_length" example:"31"`
}

// ConfigListResponse lists YAML files in the models directory.
type ConfigListResponse struct {
	// example: ["mistral.yaml","phi-3.yaml"]
	Files []string `json:"files"`
}

// CreateConfigRequest names a new config file.
type CreateConfigRequest struct {
	// Base name; ".yaml" is appended.
	// example: mistral
	Name string `json:"name" example:"mistral"`
}

// ConfigFile is the whole content of one config file.
type ConfigFile struct {
	// example: mistral.yaml
	Name    string `json:"name" example:"mistral.yaml"`
	Content string `json:"content"`
}

// LintRequest carries YAML content to lint.
type LintRequest struct {
	Content string `json:"content"`
}

// LintResponse is the list of findings; empty means clean.
type LintResponse struct {
	Clean    bool          `json:"clean"`
	Findings []LintFinding `json:"findings"`
}

// ConfigReferenceResponse is the editor's reference material.
type ConfigReferenceResponse struct {
	ContextSizes []ContextSize   `json:"context_sizes"`
	Parameters   []ParameterHint `json:"parameters"`
}
