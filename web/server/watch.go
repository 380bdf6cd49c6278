package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/df07/go-scene-description/pkg/document"
	"github.com/df07/go-scene-description/pkg/loaders"
	"github.com/df07/go-scene-description/pkg/scene"
)

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "document", "error"
	Data string `json:"data"` // JSON-encoded data
}

// DocumentUpdate is sent every time a watched document is reloaded
type DocumentUpdate struct {
	Version  int                    `json:"version"`
	Stats    document.Stats         `json:"stats"`
	Document *scene.ResolvedProject `json:"document"`
}

// handleWatch streams the resolved document of a scene file via SSE, sending
// a new event each time the file changes on disk
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()
	sseEventChan := make(chan SSEEvent, 16)
	done := make(chan struct{})
	go func() {
		s.writeSSEEvents(w, ctx, sseEventChan)
		close(done)
	}()
	defer func() {
		close(sseEventChan)
		<-done
	}()

	path, err := loaders.FindDocument(r.URL.Query().Get("scene"), s.scenesDir)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	version := 0
	err = loaders.Watch(ctx, path, func(p *scene.Project, err error) {
		if err != nil {
			s.handleError(ctx, sseEventChan, err.Error())
			return
		}
		resolved, err := p.Resolve()
		if err != nil {
			s.handleError(ctx, sseEventChan, err.Error())
			return
		}
		version++
		data, err := json.Marshal(DocumentUpdate{
			Version:  version,
			Stats:    document.Collect(resolved),
			Document: resolved,
		})
		if err != nil {
			s.handleError(ctx, sseEventChan, fmt.Sprintf("failed to encode document: %v", err))
			return
		}
		s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "document", Data: string(data)})
	})
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
	}
}

func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents is the single writer for one SSE response
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data)
			if err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

func (s *Server) sendEvent(ctx context.Context, sseEventChan chan SSEEvent, event SSEEvent) {
	select {
	case sseEventChan <- event:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}

func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, message string) {
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: message})
}
