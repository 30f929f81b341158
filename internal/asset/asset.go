// Package asset loads the asset index and imports textures into a World.
//
// The index is a list of entries naming a file, its kind and the entity it
// belongs to, stored as JSON (index.json) or YAML (index.yaml).
package asset

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type is the kind of asset an index entry describes.
type Type string

const (
	TypeTexture Type = "texture"
	TypeUnknown Type = "unknown"
)

// ParseType maps a type name in any case to a Type; unrecognised names
// become TypeUnknown.
func ParseType(s string) Type {
	if Type(strings.ToLower(s)) == TypeTexture {
		return TypeTexture
	}
	return TypeUnknown
}

func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*t = ParseType(s)
	return nil
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseType(s)
	return nil
}

// Target names the world object a texture is attached to.
const (
	TargetPlayer     = "player"
	TargetBackground = "background"
)

// Asset is one entry of the asset index.
type Asset struct {
	Path     string `yaml:"path" json:"path"`
	Type     Type   `yaml:"type" json:"type"`
	EntityID string `yaml:"entity_id,omitempty" json:"entity_id,omitempty"` // "player", "background" or an entity handle
}

// ImportError reports an asset that could not be imported.
type ImportError struct {
	Asset string // Resolved path of the asset
	Err   error  // Underlying cause, may be nil
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not import asset `%s`: %v", e.Asset, e.Err)
	}
	return fmt.Sprintf("could not import asset `%s`", e.Asset)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
