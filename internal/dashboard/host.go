package dashboard

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"llmtools/pkg/types"
)

// HostSampler reports host-wide resource usage for the dashboard header.
type HostSampler interface {
	Sample(ctx context.Context) (*types.HostSummary, error)
}

// PSUtilSampler reads host CPU and memory through gopsutil.
type PSUtilSampler struct{}

func (PSUtilSampler) Sample(ctx context.Context) (*types.HostSummary, error) {
	pct, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return nil, err
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, err
	}
	h := &types.HostSummary{MemUsedPercent: vm.UsedPercent, MemTotalMB: vm.Total / (1 << 20)}
	if len(pct) > 0 {
		h.CPUPercent = pct[0]
	}
	return h, nil
}
