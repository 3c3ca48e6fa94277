package docker

import (
	"context"
	"fmt"
	"sort"

	"github.com/docker/docker/api/types/volume"
)

// VolumeSummary is one row of the volume list.
type VolumeSummary struct {
	Name       string
	Driver     string
	Mountpoint string
	Created    string
}

// ListVolumes returns summaries for all volumes sorted by name.
func (c *Client) ListVolumes(ctx context.Context) ([]VolumeSummary, error) {
	resp, err := c.api.VolumeList(ctx, volume.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list volumes: %w", err)
	}

	summaries := make([]VolumeSummary, 0, len(resp.Volumes))
	for _, v := range resp.Volumes {
		if v == nil {
			continue
		}
		summaries = append(summaries, VolumeSummary{
			Name:       v.Name,
			Driver:     v.Driver,
			Mountpoint: v.Mountpoint,
			Created:    v.CreatedAt,
		})
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

// RemoveVolume removes a volume that is not in use.
func (c *Client) RemoveVolume(ctx context.Context, name string) error {
	if err := c.api.VolumeRemove(ctx, name, false); err != nil {
		return fmt.Errorf("remove volume %s: %w", name, err)
	}
	return nil
}
