package configedit

import (
	"strconv"

	"llmtools/pkg/types"
)

var contextSizesK = []int{8, 16, 32, 40, 48, 56, 64, 72, 80, 88, 96, 128}

// ContextSizes is the context-window reference table shown in the editor.
func ContextSizes() []types.ContextSize {
	out := make([]types.ContextSize, 0, len(contextSizesK))
	for _, k := range contextSizesK {
		out = append(out, types.ContextSize{Label: strconv.Itoa(k) + "k", Tokens: k * 1024})
	}
	return out
}

// ParameterHints documents commonly tuned model parameters.
func ParameterHints() []types.ParameterHint {
	return []types.ParameterHint{
		{Name: "gpu_layers", Description: "Number of layers to offload to the GPU."},
		{Name: "main_gpu", Description: "GPU used for scratch and small tensors when splitting."},
		{Name: "tensor_split", Description: "Comma-separated proportions for splitting the model across GPUs."},
		{Name: "no_kv_offloading", Description: "Keep the KV cache in system memory instead of VRAM."},
		{Name: "flash_attention", Description: "Enable flash attention kernels."},
		{Name: "f16", Description: "Use 16-bit floats for the KV cache."},
		{Name: "numa", Description: "Enable NUMA-aware memory allocation."},
		{Name: "mmap", Description: "Memory-map the model file instead of reading it into RAM."},
		{Name: "mmlock", Description: "Lock the model in RAM to prevent swapping."},
	}
}

// Reference bundles the editor reference material.
func Reference() types.ConfigReferenceResponse {
	return types.ConfigReferenceResponse{ContextSizes: ContextSizes(), Parameters: ParameterHints()}
}
