// Package engine holds the submission targets a project can be handed to.
// The rendering engine itself is external; these types only deliver the
// resolved document to it.
package engine

import (
	"context"

	"github.com/df07/go-scene-description/pkg/log"
	"github.com/df07/go-scene-description/pkg/scene"
)

var logger = log.New("engine")

// Engine accepts a project and returns an opaque token identifying the
// submission
type Engine interface {
	Submit(ctx context.Context, p *scene.Project) (string, error)
}

// DocumentSuffix is appended to the project name for emitted documents
const DocumentSuffix = ".scene.json"
