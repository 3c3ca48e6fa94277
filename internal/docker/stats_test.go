package docker

import (
	"testing"

	"github.com/docker/docker/api/types/container"
)

func TestCPUPercent(t *testing.T) {
	cur := container.CPUStats{
		CPUUsage:    container.CPUUsage{TotalUsage: 200},
		SystemUsage: 1000,
		OnlineCPUs:  2,
	}
	pre := container.CPUStats{
		CPUUsage:    container.CPUUsage{TotalUsage: 100},
		SystemUsage: 500,
	}

	got := cpuPercent(cur, pre)
	want := 100.0 / 500.0 * 2 * 100
	if got != want {
		t.Errorf("Expected %.2f%%, got %.2f%%", want, got)
	}
}

func TestCPUPercentNoDelta(t *testing.T) {
	cur := container.CPUStats{SystemUsage: 1000}
	if got := cpuPercent(cur, cur); got != 0 {
		t.Errorf("Expected 0%% for zero delta, got %.2f%%", got)
	}
}

func TestParseStatsMemoryPercent(t *testing.T) {
	raw := container.StatsResponse{}
	raw.MemoryStats.Usage = 256
	raw.MemoryStats.Limit = 1024

	snap := parseStats(raw)
	if snap.MemoryPercent != 25 {
		t.Errorf("Expected memory 25%%, got %.2f%%", snap.MemoryPercent)
	}
}

func TestParseStatsBlockIO(t *testing.T) {
	raw := container.StatsResponse{}
	raw.BlkioStats.IoServiceBytesRecursive = []container.BlkioStatEntry{
		{Op: "Read", Value: 100},
		{Op: "Write", Value: 200},
		{Op: "Sync", Value: 999},
	}

	snap := parseStats(raw)
	if snap.BlockRead != 100 || snap.BlockWrite != 200 {
		t.Errorf("Expected read=100 write=200, got read=%d write=%d", snap.BlockRead, snap.BlockWrite)
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{1024 * 1024 * 1024, "1.0 GB"},
	}
	for _, c := range cases {
		if got := FormatBytes(c.in); got != c.want {
			t.Errorf("FormatBytes(%d): expected '%s', got '%s'", c.in, c.want, got)
		}
	}
}
