package bulksync

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"schema-engine/core/reconcile"

	"gopkg.in/yaml.v3"
)

// Document is one desired-state file.
type Document struct {
	reconcile.SchemaType `yaml:",inline"`

	// Source overrides the external source of the run for this document.
	Source  string            `json:"source,omitempty" yaml:"source,omitempty"`
	Assets  []reconcile.Asset `json:"assets,omitempty" yaml:"assets,omitempty"`
	Lineage []Link            `json:"lineage,omitempty" yaml:"lineage,omitempty"`
}

// Link is a lineage mapping declared by a document.
type Link struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Supported reports whether key has a document extension.
func Supported(key string) bool {
	switch strings.ToLower(path.Ext(key)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

// Decode parses a document, picking the format from the key extension.
// Unknown fields are rejected.
func Decode(key string, data []byte) (*Document, error) {
	var doc Document
	switch strings.ToLower(path.Ext(key)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", key, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", key, err)
		}
	default:
		return nil, fmt.Errorf("unsupported document type: %s", key)
	}
	return &doc, nil
}
