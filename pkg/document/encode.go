// Package document emits the resolved project document the engine consumes
// and summarizes its contents.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/df07/go-scene-description/pkg/scene"
)

// Encode resolves p and writes it as indented JSON
func Encode(w io.Writer, p *scene.Project) error {
	resolved, err := p.Resolve()
	if err != nil {
		return err
	}
	return EncodeResolved(w, resolved)
}

// EncodeResolved writes an already resolved project as indented JSON
func EncodeResolved(w io.Writer, resolved *scene.ResolvedProject) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resolved); err != nil {
		return fmt.Errorf("failed to encode project %s: %w", resolved.Name, err)
	}
	return nil
}

// Marshal resolves p and returns the encoded document
func Marshal(p *scene.Project) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
