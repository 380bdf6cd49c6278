package loaders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-scene-description/pkg/builder"
	"github.com/df07/go-scene-description/pkg/scene"
)

// Document formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// maxPathLength bounds document paths accepted by LoadProject
const maxPathLength = 512

// DetectFormat picks the document format from the file extension
func DetectFormat(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported document type %q: expected one of %s",
		filepath.Ext(filename), strings.Join(scene.DocumentExtensions, ", "))
}

// DecodeDocument reads a project document into plain literals. Numbers keep
// the decoder's native type; the builders accept all of them.
func DecodeDocument(reader io.Reader, format string) (map[string]any, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %v", err)
	}

	doc := map[string]any{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s document: %w", format, err)
	}
	return doc, nil
}

// ParseProject decodes a document and builds the project it describes
func ParseProject(reader io.Reader, format string) (*scene.Project, error) {
	doc, err := DecodeDocument(reader, format)
	if err != nil {
		return nil, err
	}
	return builder.MakeProject(doc)
}

// LoadProject loads a project document from disk
func LoadProject(filename string) (*scene.Project, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open project document: %w", err)
	}
	defer file.Close()

	p, err := ParseProject(file, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// validateFilePath rejects paths that cannot name a project document
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}
	if len(filepath.Clean(filename)) > maxPathLength {
		return fmt.Errorf("file path too long: maximum %d characters allowed", maxPathLength)
	}
	return nil
}
