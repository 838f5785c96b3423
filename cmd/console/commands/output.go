package commands

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/vibe-gaming/hbnb/internal/domain"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// document turns an entity into the plain map both encoders share.
func document(e domain.Entity) (map[string]any, error) {
	data, err := domain.Encode(domain.Public(e))
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", domain.KeyOf(e), err)
	}
	return doc, nil
}

func documents(list []domain.Entity) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(list))
	for _, e := range list {
		doc, err := document(e)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (a *app) print(w io.Writer, v any) error {
	switch a.output {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
