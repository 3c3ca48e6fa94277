package docker

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/docker/docker/api/types/image"
)

// ImageSummary is one row of the image list.
type ImageSummary struct {
	ID       string
	ShortID  string
	RepoTag  string
	Size     int64
	Created  time.Time
	Dangling bool
}

// ListImages returns summaries for all images, newest first.
func (c *Client) ListImages(ctx context.Context) ([]ImageSummary, error) {
	list, err := c.api.ImageList(ctx, image.ListOptions{All: false})
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	summaries := make([]ImageSummary, 0, len(list))
	for _, img := range list {
		tag := "<none>"
		if len(img.RepoTags) > 0 {
			tag = img.RepoTags[0]
		}
		summaries = append(summaries, ImageSummary{
			ID:       img.ID,
			ShortID:  shortImageID(img.ID),
			RepoTag:  tag,
			Size:     img.Size,
			Created:  time.Unix(img.Created, 0),
			Dangling: len(img.RepoTags) == 0,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Created.After(summaries[j].Created)
	})
	return summaries, nil
}

// ImageDetails is the inspect view of one image, including its build
// history.
type ImageDetails struct {
	ID           string
	ShortID      string
	RepoTags     []string
	Size         int64
	Created      string
	Author       string
	Os           string
	Architecture string
	ExposedPorts []string
	Env          []string
	Entrypoint   []string
	Cmd          []string
	Labels       map[string]string
	Layers       []ImageLayer
}

// ImageLayer is one entry of an image's history, newest first.
type ImageLayer struct {
	ID        string
	Created   time.Time
	CreatedBy string
	Size      int64
}

// InspectImage returns details and layer history for a single image.
func (c *Client) InspectImage(ctx context.Context, id string) (ImageDetails, error) {
	resp, _, err := c.api.ImageInspectWithRaw(ctx, id)
	if err != nil {
		return ImageDetails{}, fmt.Errorf("inspect image %s: %w", shortImageID(id), err)
	}

	details := ImageDetails{
		ID:           resp.ID,
		ShortID:      shortImageID(resp.ID),
		RepoTags:     append([]string(nil), resp.RepoTags...),
		Size:         resp.Size,
		Created:      resp.Created,
		Author:       resp.Author,
		Os:           resp.Os,
		Architecture: resp.Architecture,
	}
	if resp.Config != nil {
		for port := range resp.Config.ExposedPorts {
			details.ExposedPorts = append(details.ExposedPorts, string(port))
		}
		sort.Strings(details.ExposedPorts)
		details.Env = append([]string(nil), resp.Config.Env...)
		details.Entrypoint = append([]string(nil), resp.Config.Entrypoint...)
		details.Cmd = append([]string(nil), resp.Config.Cmd...)
		details.Labels = resp.Config.Labels
	}

	history, err := c.api.ImageHistory(ctx, id)
	if err != nil {
		return ImageDetails{}, fmt.Errorf("image history %s: %w", shortImageID(id), err)
	}
	for _, h := range history {
		details.Layers = append(details.Layers, ImageLayer{
			ID:        shortImageID(h.ID),
			Created:   time.Unix(h.Created, 0),
			CreatedBy: h.CreatedBy,
			Size:      h.Size,
		})
	}
	return details, nil
}

// RemoveImage removes an image, failing if containers still use it.
func (c *Client) RemoveImage(ctx context.Context, id string) error {
	if _, err := c.api.ImageRemove(ctx, id, image.RemoveOptions{}); err != nil {
		return fmt.Errorf("remove image %s: %w", shortImageID(id), err)
	}
	return nil
}

// shortImageID trims the sha256: prefix before shortening.
func shortImageID(id string) string {
	const prefix = "sha256:"
	if len(id) > len(prefix) && id[:len(prefix)] == prefix {
		id = id[len(prefix):]
	}
	return shortID(id)
}
