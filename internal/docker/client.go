package docker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docker/docker/client"
)

// Client wraps the Docker API client used by every screen.
type Client struct {
	api  *client.Client
	host string
	info ConnectionInfo
}

// ConnectionInfo describes the connected daemon.
type ConnectionInfo struct {
	Host       string
	Version    string
	APIVersion string
}

// New creates a client for the given host. An empty host falls back to
// the environment (DOCKER_HOST) or the platform default socket.
func New(ctx context.Context, host string) (*Client, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}

	api, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}

	c := &Client{api: api, host: host}
	if version, err := api.ServerVersion(ctx); err == nil {
		c.info = ConnectionInfo{
			Host:       api.DaemonHost(),
			Version:    version.Version,
			APIVersion: version.APIVersion,
		}
	} else {
		slog.Warn("could not read server version", "error", err)
		c.info = ConnectionInfo{Host: api.DaemonHost()}
	}
	return c, nil
}

// Ping verifies the daemon is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.Ping(ctx); err != nil {
		return fmt.Errorf("ping daemon: %w", err)
	}
	return nil
}

// ConnectionInfo returns daemon details captured at connect time.
func (c *Client) ConnectionInfo() ConnectionInfo {
	return c.info
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.api.Close()
}

func shortID(id string) string {
	const n = 12
	if len(id) <= n {
		return id
	}
	return id[:n]
}
