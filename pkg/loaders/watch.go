package loaders

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/df07/go-scene-description/pkg/log"
	"github.com/df07/go-scene-description/pkg/scene"
)

var logger = log.New("loaders")

// Watch loads filename once and again every time it changes, passing each
// result to onLoad, until ctx is done. The parent directory is watched so
// that editors replacing the file are picked up.
func Watch(ctx context.Context, filename string, onLoad func(*scene.Project, error)) error {
	if err := validateFilePath(filename); err != nil {
		return err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating file watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("error watching %s: %w", filepath.Dir(abs), err)
	}

	onLoad(LoadProject(filename))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debugf("%s changed (%s)", filename, event.Op)
			onLoad(LoadProject(filename))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warningf("file watcher error: %v", err)
		}
	}
}
