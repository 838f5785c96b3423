package domain

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ClassField carries the kind inside an encoded entity.
const ClassField = "__class__"

// Encode serialises e with its kind marker. Keys are emitted in sorted order,
// so equal entities always encode to equal bytes.
func Encode(e Entity) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", e.Kind(), err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal %s fields: %w", e.Kind(), err)
	}

	class, err := json.Marshal(string(e.Kind()))
	if err != nil {
		return nil, err
	}
	fields[ClassField] = class

	return json.Marshal(fields)
}

// Decode rebuilds an entity from its encoding, using the kind marker to
// pick the concrete type.
func Decode(data []byte) (Entity, error) {
	var head struct {
		Class string `json:"__class__"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode entity header: %w", err)
	}
	if head.Class == "" {
		return nil, errors.New("decode entity: missing " + ClassField)
	}

	kind, err := ParseKind(head.Class)
	if err != nil {
		return nil, err
	}

	e, err := Empty(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return e, nil
}
