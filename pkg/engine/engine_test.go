package engine

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/material"
	"github.com/df07/go-scene-description/pkg/primitive"
	"github.com/df07/go-scene-description/pkg/scene"
)

func testProject(name, outputDir string) *scene.Project {
	world := primitive.NewBVH(primitive.NewGeom(geometry.NewSphere(core.Vec3{}, 1), material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	return &scene.Project{
		Name:        name,
		Settings:    scene.NewSettings(outputDir, 64, 64, 1, 4),
		Scenes:      []*scene.Scene{scene.NewScene(world, scene.DefaultCamera())},
		Accelerator: scene.AcceleratorBVH,
	}
}

func TestFileEngineSubmit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	p := testProject("sphere", dir)

	token, err := NewFileEngine().Submit(context.Background(), p)
	require.NoError(t, err)
	_, err = uuid.Parse(token)
	assert.NoError(t, err, "token should be a uuid")

	data, err := os.ReadFile(filepath.Join(dir, "sphere"+DocumentSuffix))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "sphere", doc["name"])
}

func TestFileEnginePath(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	path, err := NewFileEngine().Path(testProject("p", "~/renders"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "renders", "p"+DocumentSuffix), path)

	override := &FileEngine{OutputDir: "/tmp/elsewhere"}
	path, err = override.Path(testProject("p", "./output"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/elsewhere", "p"+DocumentSuffix), path)

	_, err = override.Path(testProject("../../escape", "./output"))
	assert.Error(t, err)
}

func TestFileEngineInvalidProject(t *testing.T) {
	p := testProject("broken", t.TempDir())
	p.Scenes[0].World.Children = nil

	_, err := NewFileEngine().Submit(context.Background(), p)
	var serr *core.StructuralError
	assert.True(t, errors.As(err, &serr), "got %v", err)
}

func TestFileEngineCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFileEngine().Submit(ctx, testProject("p", t.TempDir()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCommandEngineArgs(t *testing.T) {
	tests := []struct {
		command string
		want    []string
	}{
		{"render", []string{"render", "/out/a.scene.json"}},
		{"render --project {}", []string{"render", "--project", "/out/a.scene.json"}},
		{`render --name "my scene" --doc={}`, []string{"render", "--name", "my scene", "--doc=/out/a.scene.json"}},
	}
	for _, tt := range tests {
		args, err := (&CommandEngine{Command: tt.command}).Args("/out/a.scene.json")
		require.NoError(t, err, tt.command)
		assert.Equal(t, tt.want, args, tt.command)
	}

	_, err := (&CommandEngine{Command: ""}).Args("/out/a.scene.json")
	assert.Error(t, err)
	_, err = (&CommandEngine{Command: `render "unterminated`}).Args("/out/a.scene.json")
	assert.Error(t, err)
}

func TestCommandEngineSubmit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses cp and false")
	}
	dir := t.TempDir()
	copyPath := filepath.Join(dir, "copy.json")

	e := NewCommandEngine("cp {} " + copyPath)
	e.Files = &FileEngine{OutputDir: dir}
	token, err := e.Submit(context.Background(), testProject("cmd", "./unused"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cmd"+DocumentSuffix), token)
	_, err = os.Stat(copyPath)
	assert.NoError(t, err, "renderer should have received the document path")

	failing := NewCommandEngine("false")
	failing.Files = &FileEngine{OutputDir: dir}
	_, err = failing.Submit(context.Background(), testProject("cmd", "./unused"))
	assert.Error(t, err)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	token, err := testProject("rec", "./output").Submit(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", token)

	doc, ok := r.Document(token)
	require.True(t, ok)
	require.Len(t, doc.Scenes, 1)
	assert.Len(t, doc.Scenes[0].World.Leaves, 1)
	assert.Equal(t, []string{"rec-1"}, r.Tokens())

	r.Err = errors.New("engine offline")
	_, err = testProject("rec", "./output").Submit(context.Background(), r)
	require.Error(t, err)
	assert.ErrorIs(t, err, r.Err)
	assert.Contains(t, err.Error(), "failed to submit project rec")
}

func TestSubmitAll(t *testing.T) {
	projects := []*scene.Project{
		testProject("a", "./output"),
		testProject("b", "./output"),
		testProject("c", "./output"),
	}
	projects[1].Settings = scene.NewSettings("./output", 64, 64, 0, 4)

	r := NewRecorder()
	results := SubmitAll(context.Background(), r, projects, 2)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[2].Err)
	var cerr *core.ConfigurationError
	require.True(t, errors.As(results[1].Err, &cerr))
	assert.Equal(t, "settings.nsamples", cerr.Field)

	assert.Same(t, projects[2], results[2].Project)
	assert.Len(t, r.Tokens(), 2)
	_, ok := r.Document(results[0].Token)
	assert.True(t, ok)
}
