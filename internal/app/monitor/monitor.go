package monitor

//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor

import (
	"context"
	"math"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains process resource statistics
type Stats struct {
	CPU     float64
	MEM     float64 // in MB
	Threads int32
}

// Monitor samples the splash process's own resource usage
type Monitor interface {
	Sample(ctx context.Context) (Stats, error)
}

type monitor struct {
	pid int
}

// NewMonitor creates a Monitor for the current process
func NewMonitor() Monitor {
	return &monitor{pid: os.Getpid()}
}

func (m *monitor) Sample(ctx context.Context) (Stats, error) {
	return statsFor(ctx, m.pid)
}

func statsFor(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	cpuPercent, err := proc.CPUPercentWithContext(ctx)
	if err == nil {
		stats.CPU = cpuPercent
	}

	memInfo, err := proc.MemoryInfoWithContext(ctx)
	if err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	threads, err := proc.NumThreadsWithContext(ctx)
	if err == nil {
		stats.Threads = threads
	}

	return stats, nil
}
