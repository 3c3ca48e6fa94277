package docker

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
)

// ContainerSummary is one row of the container list.
type ContainerSummary struct {
	ID      string
	ShortID string
	Name    string
	Image   string
	State   string
	Status  string
	Created time.Time
	Ports   []PortMapping
}

// PortMapping is one published or exposed container port.
type PortMapping struct {
	Port     uint16
	Protocol string
	HostIP   string
	HostPort uint16
}

// Running reports whether the summary describes a running container.
func (s ContainerSummary) Running() bool {
	return s.State == "running"
}

// ListContainers returns summaries for all containers, running ones first.
func (c *Client) ListContainers(ctx context.Context, all bool) ([]ContainerSummary, error) {
	list, err := c.api.ContainerList(ctx, container.ListOptions{All: all})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	summaries := make([]ContainerSummary, 0, len(list))
	for _, ct := range list {
		name := ""
		if len(ct.Names) > 0 {
			name = strings.TrimPrefix(ct.Names[0], "/")
		}
		ports := make([]PortMapping, 0, len(ct.Ports))
		for _, p := range ct.Ports {
			ports = append(ports, PortMapping{
				Port:     p.PrivatePort,
				Protocol: p.Type,
				HostIP:   p.IP,
				HostPort: p.PublicPort,
			})
		}
		summaries = append(summaries, ContainerSummary{
			ID:      ct.ID,
			ShortID: shortID(ct.ID),
			Name:    name,
			Image:   ct.Image,
			State:   ct.State,
			Status:  ct.Status,
			Created: time.Unix(ct.Created, 0),
			Ports:   ports,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Running() != summaries[j].Running() {
			return summaries[i].Running()
		}
		return summaries[i].Name < summaries[j].Name
	})
	return summaries, nil
}

// StartContainer starts a stopped container.
func (c *Client) StartContainer(ctx context.Context, id string) error {
	if err := c.api.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		return fmt.Errorf("start container %s: %w", shortID(id), err)
	}
	return nil
}

// StopContainer stops a running container with the daemon default grace period.
func (c *Client) StopContainer(ctx context.Context, id string) error {
	if err := c.api.ContainerStop(ctx, id, container.StopOptions{}); err != nil {
		return fmt.Errorf("stop container %s: %w", shortID(id), err)
	}
	return nil
}

// RestartContainer restarts a container.
func (c *Client) RestartContainer(ctx context.Context, id string) error {
	if err := c.api.ContainerRestart(ctx, id, container.StopOptions{}); err != nil {
		return fmt.Errorf("restart container %s: %w", shortID(id), err)
	}
	return nil
}

// RemoveContainer force-removes a container.
func (c *Client) RemoveContainer(ctx context.Context, id string) error {
	if err := c.api.ContainerRemove(ctx, id, container.RemoveOptions{Force: true}); err != nil {
		return fmt.Errorf("remove container %s: %w", shortID(id), err)
	}
	return nil
}
