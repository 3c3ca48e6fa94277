package docker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
)

// StatsSnapshot is one resource-usage reading of a container.
type StatsSnapshot struct {
	At            time.Time
	CPUPercent    float64
	MemoryUsage   uint64
	MemoryLimit   uint64
	MemoryPercent float64
	NetworkRx     uint64
	NetworkTx     uint64
	BlockRead     uint64
	BlockWrite    uint64
	PIDs          uint64
}

// FetchStats takes a single stats reading. Callers run it under a
// deadline. Non-streaming (as opposed to one-shot) makes the daemon
// prime precpu_stats with a second sample, so the CPU percentage is a
// real delta rather than a since-boot average.
func (c *Client) FetchStats(ctx context.Context, id string) (StatsSnapshot, error) {
	resp, err := c.api.ContainerStats(ctx, id, false)
	if err != nil {
		return StatsSnapshot{}, fmt.Errorf("fetch stats for %s: %w", shortID(id), err)
	}
	defer resp.Body.Close()

	var raw container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return StatsSnapshot{}, fmt.Errorf("decode stats for %s: %w", shortID(id), err)
	}
	return parseStats(raw), nil
}

func parseStats(raw container.StatsResponse) StatsSnapshot {
	snap := StatsSnapshot{
		At:          time.Now(),
		CPUPercent:  cpuPercent(raw.CPUStats, raw.PreCPUStats),
		MemoryUsage: raw.MemoryStats.Usage,
		MemoryLimit: raw.MemoryStats.Limit,
		PIDs:        raw.PidsStats.Current,
	}
	if snap.MemoryLimit > 0 {
		snap.MemoryPercent = float64(snap.MemoryUsage) / float64(snap.MemoryLimit) * 100
	}

	for _, net := range raw.Networks {
		snap.NetworkRx += net.RxBytes
		snap.NetworkTx += net.TxBytes
	}

	for _, entry := range raw.BlkioStats.IoServiceBytesRecursive {
		switch entry.Op {
		case "Read", "read":
			snap.BlockRead += entry.Value
		case "Write", "write":
			snap.BlockWrite += entry.Value
		}
	}
	return snap
}

// cpuPercent derives a usage percentage from the current and previous
// CPU counters, scaled by the number of online CPUs.
func cpuPercent(cur, pre container.CPUStats) float64 {
	cpuDelta := float64(cur.CPUUsage.TotalUsage) - float64(pre.CPUUsage.TotalUsage)
	systemDelta := float64(cur.SystemUsage) - float64(pre.SystemUsage)
	if cpuDelta <= 0 || systemDelta <= 0 {
		return 0
	}
	cpus := float64(cur.OnlineCPUs)
	if cpus == 0 {
		cpus = float64(len(cur.CPUUsage.PercpuUsage))
	}
	if cpus == 0 {
		cpus = 1
	}
	return cpuDelta / systemDelta * cpus * 100
}

// FormatBytes renders a byte count in human-readable form.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}
