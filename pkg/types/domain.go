package types

// ContainerRecord is one row of the engine's container listing.
type ContainerRecord struct {
	// Engine identifier (short form).
	// example: 3f2a9c1b7d4e
	ID string `json:"id" example:"3f2a9c1b7d4e"`
	// Container name without the leading slash.
	// example: localai
	Name string `json:"name" example:"localai"`
	// Image reference the container was created from.
	// example: localai/localai:latest-gpu-nvidia-cuda-12
	Image string `json:"image" example:"localai/localai:latest-gpu-nvidia-cuda-12"`
	// Human-readable status as reported by the engine.
	// example: Up 3 hours
	Status string `json:"status" example:"Up 3 hours"`
	// Group derived from Status: running, stopped or unknown.
	// example: running
	State string `json:"state" example:"running"`
	// Port mappings as rendered by the engine.
	// example: 0.0.0.0:8080->8080/tcp
	Ports string `json:"ports,omitempty" example:"0.0.0.0:8080->8080/tcp"`
}

// ContainerMetrics is a point-in-time resource snapshot for one container.
type ContainerMetrics struct {
	// example: 12.50%
	CPUPercent string `json:"cpu_percent" example:"12.50%"`
	// example: 1.2GiB / 31.3GiB
	MemUsage string `json:"mem_usage" example:"1.2GiB / 31.3GiB"`
	// example: 1.5kB / 0B
	NetIO string `json:"net_io" example:"1.5kB / 0B"`
	// example: 8.19kB / 0B
	BlockIO string `json:"block_io" example:"8.19kB / 0B"`
}

// HubRepo is a repository record returned by the model hub.
type HubRepo struct {
	// example: TheBloke/Mistral-7B-Instruct-v0.2-GGUF
	ID string `json:"id" example:"TheBloke/Mistral-7B-Instruct-v0.2-GGUF"`
	// example: TheBloke
	Author string `json:"author,omitempty" example:"TheBloke"`
	// Description when the hub provides one for this kind.
	Description string `json:"description,omitempty"`
	// example: 123456
	Downloads int64 `json:"downloads" example:"123456"`
	// example: 42
	Likes int64 `json:"likes" example:"42"`
}

// LintFinding is one problem reported by the YAML linter.
type LintFinding struct {
	// 1-based line number.
	// example: 3
	Line int `json:"line" example:"3"`
	// 1-based column, 0 when unknown.
	// example: 1
	Column int `json:"column" example:"1"`
	// error or warning.
	// example: warning
	Level string `json:"level" example:"warning"`
	// example: missing document start "---"
	Message string `json:"message" example:"missing document start \"---\""`
	// example: document-start
	Rule string `json:"rule" example:"document-start"`
}

// ContextSize maps a context-window label to its token count.
type ContextSize struct {
	// example: 8k
	Label string `json:"label" example:"8k"`
	// example: 8192
	Tokens int `json:"tokens" example:"8192"`
}

// ParameterHint documents one commonly used model-config parameter.
type ParameterHint struct {
	// example: gpu_layers
	Name string `json:"name" example:"gpu_layers"`
	// example: Number of layers to offload to the GPU.
	Description string `json:"description" example:"Number of layers to offload to the GPU."`
}
