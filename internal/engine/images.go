package engine

import (
	"context"
	"fmt"
	"strings"
)

// Image describes one entry of the engine's image listing.
type Image struct {
	Repository string
	Tag        string
	ID         string
	Created    string
	Size       string
}

// imagesFormat keeps the listing tab-separated so fields with internal
// spaces ("2 days ago") split cleanly.
const imagesFormat = "{{.Repository}}\t{{.Tag}}\t{{.ID}}\t{{.CreatedSince}}\t{{.Size}}"

// Images returns the engine's image listing keyed by repository name.
// Repositories with multiple tags keep the first entry reported, which
// the engine orders newest first.
func (e *Engine) Images(ctx context.Context) (map[string]Image, error) {
	bin, args := e.command([]string{"images", "--format", imagesFormat})
	out, err := e.runner.Output(ctx, bin, args...)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	images := make(map[string]Image)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 5 {
			continue
		}
		img := Image{
			Repository: fields[0],
			Tag:        fields[1],
			ID:         fields[2],
			Created:    fields[3],
			Size:       fields[4],
		}
		if _, ok := images[img.Repository]; !ok {
			images[img.Repository] = img
		}
	}
	return images, nil
}
