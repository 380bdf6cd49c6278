package engine

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-scene-description/pkg/scene"
)

// submitTask is one project waiting for a worker
type submitTask struct {
	Index   int
	Project *scene.Project
}

// Result is the outcome of one project in a batch
type Result struct {
	Project *scene.Project
	Token   string
	Err     error
}

// SubmitAll hands independent projects to engine using numWorkers workers
// (one per CPU when numWorkers <= 0). Results are returned in input order;
// a failed project does not stop the others.
func SubmitAll(ctx context.Context, engine Engine, projects []*scene.Project, numWorkers int) []Result {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(projects) {
		numWorkers = len(projects)
	}

	results := make([]Result, len(projects))
	taskQueue := make(chan submitTask, len(projects))
	for i, p := range projects {
		taskQueue <- submitTask{Index: i, Project: p}
	}
	close(taskQueue)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskQueue {
				// each worker writes only its own slots
				token, err := task.Project.Submit(ctx, engine)
				results[task.Index] = Result{Project: task.Project, Token: token, Err: err}
			}
		}()
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	logger.Noticef("submitted %d projects with %d workers, %d failed", len(projects), numWorkers, failed)
	return results
}
