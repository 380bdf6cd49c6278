package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/df07/go-scene-description/pkg/scene"
)

// DocumentPlaceholder in a command line is replaced by the document path.
// Without a placeholder the path is appended as the last argument.
const DocumentPlaceholder = "{}"

// CommandEngine writes the document like FileEngine and then runs an
// external renderer on it, blocking until the renderer exits
type CommandEngine struct {
	Command string // e.g. "toy_ray_tracer --project {}"
	Dir     string // working directory, current one when empty
	Stdout  io.Writer
	Stderr  io.Writer
	Files   *FileEngine
}

// NewCommandEngine creates a command engine with output forwarded to the
// current process
func NewCommandEngine(command string) *CommandEngine {
	return &CommandEngine{
		Command: command,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Files:   NewFileEngine(),
	}
}

// Args returns the renderer command line for a document path
func (e *CommandEngine) Args(docPath string) ([]string, error) {
	args, err := shellwords.Parse(e.Command)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", e.Command, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("command %q was not parsed correctly into content", e.Command)
	}

	replaced := false
	for i, arg := range args {
		if strings.Contains(arg, DocumentPlaceholder) {
			args[i] = strings.ReplaceAll(arg, DocumentPlaceholder, docPath)
			replaced = true
		}
	}
	if !replaced {
		args = append(args, docPath)
	}
	return args, nil
}

// Submit writes the document, runs the renderer and returns the document
// path as the token. A failing renderer is reported as an opaque error.
func (e *CommandEngine) Submit(ctx context.Context, p *scene.Project) (string, error) {
	files := e.Files
	if files == nil {
		files = NewFileEngine()
	}
	path, err := files.Write(p)
	if err != nil {
		return "", err
	}
	args, err := e.Args(path)
	if err != nil {
		return "", err
	}

	logger.Noticef("running %s", strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = e.Dir
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("renderer %s failed: %w", args[0], err)
	}
	return path, nil
}
