package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/df07/go-scene-description/pkg/scene"
)

// Recorder is an in-memory engine that keeps every resolved document it
// receives. It is safe for concurrent use.
type Recorder struct {
	// Err, when set, is returned by every Submit
	Err error

	mu        sync.Mutex
	documents map[string]*scene.ResolvedProject
	order     []string
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{documents: map[string]*scene.ResolvedProject{}}
}

// Submit resolves p and records it under a sequential token
func (r *Recorder) Submit(ctx context.Context, p *scene.Project) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.Err != nil {
		return "", r.Err
	}
	resolved, err := p.Resolve()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.documents == nil {
		r.documents = map[string]*scene.ResolvedProject{}
	}
	token := fmt.Sprintf("%s-%d", p.Name, len(r.order)+1)
	r.documents[token] = resolved
	r.order = append(r.order, token)
	return token, nil
}

// Document returns the resolved project recorded under token
func (r *Recorder) Document(token string) (*scene.ResolvedProject, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.documents[token]
	return doc, ok
}

// Tokens lists the recorded tokens in submission order
func (r *Recorder) Tokens() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}
