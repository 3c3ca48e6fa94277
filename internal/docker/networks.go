package docker

import (
	"context"
	"fmt"
	"sort"

	"github.com/docker/docker/api/types/network"
)

// NetworkSummary is one row of the network list.
type NetworkSummary struct {
	ID      string
	ShortID string
	Name    string
	Driver  string
	Scope   string
}

// ListNetworks returns summaries for all networks sorted by name.
func (c *Client) ListNetworks(ctx context.Context) ([]NetworkSummary, error) {
	list, err := c.api.NetworkList(ctx, network.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list networks: %w", err)
	}

	summaries := make([]NetworkSummary, 0, len(list))
	for _, n := range list {
		summaries = append(summaries, NetworkSummary{
			ID:      n.ID,
			ShortID: shortID(n.ID),
			Name:    n.Name,
			Driver:  n.Driver,
			Scope:   n.Scope,
		})
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

// RemoveNetwork removes a network with no attached containers.
func (c *Client) RemoveNetwork(ctx context.Context, id string) error {
	if err := c.api.NetworkRemove(ctx, id); err != nil {
		return fmt.Errorf("remove network %s: %w", shortID(id), err)
	}
	return nil
}
