package loaders

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-description/pkg/scene"
)

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "simple.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlProject), 0o644))

	type load struct {
		project *scene.Project
		err     error
	}
	loads := make(chan load, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(p *scene.Project, err error) { loads <- load{p, err} })
	}()

	first := <-loads
	require.NoError(t, first.err)
	assert.Equal(t, 100, first.project.Settings.NSamples)

	updated := strings.Replace(yamlProject, "nsamples: 100", "nsamples: 7", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case l := <-loads:
			// a write may be observed before the content is complete
			if l.err == nil && l.project.Settings.NSamples == 7 {
				reloaded = true
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}

	cancel()
	assert.NoError(t, <-done)
}
