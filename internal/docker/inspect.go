package docker

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ContainerDetails is the inspect view of one container.
type ContainerDetails struct {
	ID            string
	ShortID       string
	Name          string
	Image         string
	Running       bool
	Paused        bool
	Status        string
	StartedAt     string
	ExitCode      int
	RestartPolicy string
	Entrypoint    []string
	Cmd           []string
	Env           []string
	Labels        map[string]string
	Ports         []PortMapping
	Mounts        []Mount
	Networks      []NetworkAttachment
}

// Mount is one bind/volume mount of a container.
type Mount struct {
	Type        string
	Source      string
	Destination string
	Mode        string
}

// NetworkAttachment is one network a container is attached to.
type NetworkAttachment struct {
	Name      string
	IPAddress string
	Gateway   string
}

// Inspect returns details for a single container.
func (c *Client) Inspect(ctx context.Context, id string) (ContainerDetails, error) {
	resp, err := c.api.ContainerInspect(ctx, id)
	if err != nil {
		return ContainerDetails{}, fmt.Errorf("inspect container %s: %w", shortID(id), err)
	}

	details := ContainerDetails{
		ID:      resp.ID,
		ShortID: shortID(resp.ID),
		Name:    strings.TrimPrefix(resp.Name, "/"),
	}

	if resp.State != nil {
		details.Running = resp.State.Running
		details.Paused = resp.State.Paused
		details.Status = resp.State.Status
		details.StartedAt = resp.State.StartedAt
		details.ExitCode = resp.State.ExitCode
	}

	if resp.Config != nil {
		details.Image = resp.Config.Image
		details.Entrypoint = append([]string(nil), resp.Config.Entrypoint...)
		details.Cmd = append([]string(nil), resp.Config.Cmd...)
		details.Env = append([]string(nil), resp.Config.Env...)
		details.Labels = resp.Config.Labels
	}

	if resp.HostConfig != nil {
		details.RestartPolicy = string(resp.HostConfig.RestartPolicy.Name)
	}

	for _, m := range resp.Mounts {
		details.Mounts = append(details.Mounts, Mount{
			Type:        string(m.Type),
			Source:      m.Source,
			Destination: m.Destination,
			Mode:        m.Mode,
		})
	}

	if resp.NetworkSettings != nil {
		for port, bindings := range resp.NetworkSettings.Ports {
			for _, b := range bindings {
				hostPort, _ := strconv.ParseUint(b.HostPort, 10, 16)
				details.Ports = append(details.Ports, PortMapping{
					Port:     uint16(port.Int()),
					Protocol: port.Proto(),
					HostIP:   b.HostIP,
					HostPort: uint16(hostPort),
				})
			}
		}
		for name, ep := range resp.NetworkSettings.Networks {
			if ep == nil {
				continue
			}
			details.Networks = append(details.Networks, NetworkAttachment{
				Name:      name,
				IPAddress: ep.IPAddress,
				Gateway:   ep.Gateway,
			})
		}
	}
	sort.Slice(details.Ports, func(i, j int) bool { return details.Ports[i].Port < details.Ports[j].Port })
	sort.Slice(details.Networks, func(i, j int) bool { return details.Networks[i].Name < details.Networks[j].Name })

	return details, nil
}
