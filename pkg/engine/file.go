package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"

	"github.com/df07/go-scene-description/pkg/document"
	"github.com/df07/go-scene-description/pkg/scene"
)

// FileEngine writes the resolved document into the project's output
// directory, where a renderer watching that directory picks it up
type FileEngine struct {
	// OutputDir replaces settings.output_dir when set
	OutputDir string
}

// NewFileEngine creates a file engine writing to each project's own output dir
func NewFileEngine() *FileEngine {
	return &FileEngine{}
}

// Path returns the document path for p, with ~ expanded
func (e *FileEngine) Path(p *scene.Project) (string, error) {
	dir := e.OutputDir
	if dir == "" {
		dir = p.Settings.OutputDir
	}
	dir, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("failed to expand output dir %q: %w", dir, err)
	}
	name := p.Name + DocumentSuffix
	if filepath.Base(name) != name {
		return "", fmt.Errorf("project name %q is not a plain file name", p.Name)
	}
	return filepath.Join(dir, name), nil
}

// Write resolves p and writes its document, returning the file path
func (e *FileEngine) Write(p *scene.Project) (string, error) {
	data, err := document.Marshal(p)
	if err != nil {
		return "", err
	}
	path, err := e.Path(p)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("error writing document: %w", err)
	}
	return path, nil
}

// Submit writes the document and returns a fresh submission id
func (e *FileEngine) Submit(ctx context.Context, p *scene.Project) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := e.Write(p)
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	logger.Infof("wrote %s for project %s (%s)", path, p.Name, token)
	return token, nil
}
