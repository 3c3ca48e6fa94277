package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types"
)

// ResourceUsage aggregates disk consumption for one resource kind.
type ResourceUsage struct {
	Count       int
	Total       int64
	Reclaimable int64
}

// SystemUsage is the daemon-wide disk usage breakdown.
type SystemUsage struct {
	Images     ResourceUsage
	Containers ResourceUsage
	Volumes    ResourceUsage
	BuildCache ResourceUsage
}

// DiskUsage asks the daemon for its disk usage breakdown.
func (c *Client) DiskUsage(ctx context.Context) (SystemUsage, error) {
	du, err := c.api.DiskUsage(ctx, types.DiskUsageOptions{})
	if err != nil {
		return SystemUsage{}, fmt.Errorf("disk usage: %w", err)
	}
	return summarizeUsage(du), nil
}

// summarizeUsage folds the raw response into per-kind totals.
// Reclaimable follows the prune rules: images no container uses,
// stopped containers, unreferenced volumes and idle build cache.
func summarizeUsage(du types.DiskUsage) SystemUsage {
	var usage SystemUsage

	usage.Images.Count = len(du.Images)
	usage.Images.Total = du.LayersSize
	for _, img := range du.Images {
		if img.Containers == 0 {
			usage.Images.Reclaimable += img.Size - img.SharedSize
		}
	}

	for _, ctr := range du.Containers {
		usage.Containers.Count++
		usage.Containers.Total += ctr.SizeRootFs
		if ctr.State != "running" {
			usage.Containers.Reclaimable += ctr.SizeRootFs
		}
	}

	for _, v := range du.Volumes {
		usage.Volumes.Count++
		if v.UsageData == nil {
			continue
		}
		usage.Volumes.Total += v.UsageData.Size
		if v.UsageData.RefCount == 0 {
			usage.Volumes.Reclaimable += v.UsageData.Size
		}
	}

	for _, b := range du.BuildCache {
		usage.BuildCache.Count++
		usage.BuildCache.Total += b.Size
		if !b.InUse {
			usage.BuildCache.Reclaimable += b.Size
		}
	}
	return usage
}
