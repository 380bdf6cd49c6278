package loaders

import (
	"fmt"
	"os"
	"strings"

	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/scene"
)

// documentPrefix marks scene ids that name a document in the scenes directory
const documentPrefix = "document:"

// OpenProject resolves target to a project. target is a path to a project
// document, a "document:<name>" id discovered in scenesDir, or the id of a
// built-in scene. seed feeds the procedural built-in scenes.
func OpenProject(target, scenesDir string, seed int64) (*scene.Project, error) {
	if target == "" {
		return nil, fmt.Errorf("no scene given")
	}

	if strings.HasPrefix(target, documentPrefix) {
		path, err := FindDocument(target, scenesDir)
		if err != nil {
			return nil, err
		}
		return LoadProject(path)
	}

	if _, err := DetectFormat(target); err == nil {
		if _, err := os.Stat(target); err == nil {
			return LoadProject(target)
		}
	}
	return scene.NewBuiltinProject(target, core.NewRandom(seed))
}

// FindDocument returns the path of the document discovered in scenesDir under
// the given "document:<name>" id
func FindDocument(id, scenesDir string) (string, error) {
	documents, err := scene.ListDocumentScenes(scenesDir)
	if err != nil {
		return "", err
	}
	for _, info := range documents {
		if info.ID == id {
			return info.FilePath, nil
		}
	}
	return "", fmt.Errorf("scene %q not found in %s", id, scenesDir)
}
