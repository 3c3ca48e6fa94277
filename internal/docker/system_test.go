package docker

import (
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/volume"
)

func TestSummarizeUsage(t *testing.T) {
	du := types.DiskUsage{
		LayersSize: 1000,
		Images: []*image.Summary{
			{Containers: 1, Size: 600, SharedSize: 100},
			{Containers: 0, Size: 400, SharedSize: 100},
		},
		Containers: []*types.Container{
			{State: "running", SizeRootFs: 250},
			{State: "exited", SizeRootFs: 150},
		},
		Volumes: []*volume.Volume{
			{UsageData: &volume.UsageData{RefCount: 2, Size: 500}},
			{UsageData: &volume.UsageData{RefCount: 0, Size: 200}},
			{},
		},
		BuildCache: []*types.BuildCache{
			{InUse: true, Size: 80},
			{InUse: false, Size: 20},
		},
	}

	usage := summarizeUsage(du)

	if usage.Images.Count != 2 || usage.Images.Total != 1000 || usage.Images.Reclaimable != 300 {
		t.Errorf("Images = %+v, want count 2, total 1000, reclaimable 300", usage.Images)
	}
	if usage.Containers.Count != 2 || usage.Containers.Total != 400 || usage.Containers.Reclaimable != 150 {
		t.Errorf("Containers = %+v, want count 2, total 400, reclaimable 150", usage.Containers)
	}
	if usage.Volumes.Count != 3 || usage.Volumes.Total != 700 || usage.Volumes.Reclaimable != 200 {
		t.Errorf("Volumes = %+v, want count 3, total 700, reclaimable 200", usage.Volumes)
	}
	if usage.BuildCache.Count != 2 || usage.BuildCache.Total != 100 || usage.BuildCache.Reclaimable != 20 {
		t.Errorf("BuildCache = %+v, want count 2, total 100, reclaimable 20", usage.BuildCache)
	}
}

func TestSummarizeUsageEmpty(t *testing.T) {
	usage := summarizeUsage(types.DiskUsage{})
	if usage != (SystemUsage{}) {
		t.Errorf("empty response should summarize to zero, got %+v", usage)
	}
}
