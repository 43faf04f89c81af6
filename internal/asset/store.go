// Package asset resolves model keys used by draw calls to model descriptors.
// It never reads geometry; loading meshes belongs to whichever backend
// consumes the frames.
package asset

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var ErrUnknownModel = errors.New("asset: unknown model")

// Model describes how a key is drawn.
type Model struct {
	Key            string      `yaml:"key" json:"key"`
	Path           string      `yaml:"path" json:"path"`
	Wireframe      bool        `yaml:"wireframe,omitempty" json:"wireframe,omitempty"`
	IgnoreLighting bool        `yaml:"ignore_lighting,omitempty" json:"ignoreLighting,omitempty"`
	Color          *mgl32.Vec4 `yaml:"-" json:"color,omitempty"` // override, nil keeps vertex colors
}

type Store struct{ m map[string]Model }

func NewStore() *Store { return &Store{m: map[string]Model{}} }

func (s *Store) Register(m Model) error {
	if m.Key == "" {
		return errors.New("asset: empty model key")
	}
	if _, ok := s.m[m.Key]; ok {
		return fmt.Errorf("asset: duplicate model %q", m.Key)
	}
	s.m[m.Key] = m
	return nil
}

func (s *Store) Resolve(key string) (Model, error) {
	m, ok := s.m[key]
	if !ok {
		return Model{}, fmt.Errorf("%w: %s", ErrUnknownModel, key)
	}
	return m, nil
}

func (s *Store) Keys() []string {
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s *Store) Len() int { return len(s.m) }

type manifestModel struct {
	Model `yaml:",inline"`
	Color []float32 `yaml:"color,omitempty"`
}

type manifest struct {
	Models []manifestModel `yaml:"models"`
}

// ParseManifest builds a store from YAML:
//
//	models:
//	  - key: star
//	    path: models/ISO_Sphere.ply
//	    ignore_lighting: true
//	    color: [1, 1, 1, 1]
func ParseManifest(b []byte) (*Store, error) {
	var mf manifest
	if err := yaml.Unmarshal(b, &mf); err != nil {
		return nil, fmt.Errorf("asset: parse manifest: %w", err)
	}
	s := NewStore()
	for _, mm := range mf.Models {
		m := mm.Model
		switch len(mm.Color) {
		case 0:
		case 4:
			c := mgl32.Vec4{mm.Color[0], mm.Color[1], mm.Color[2], mm.Color[3]}
			m.Color = &c
		default:
			return nil, fmt.Errorf("asset: model %q: color needs 4 components, got %d", m.Key, len(mm.Color))
		}
		if err := s.Register(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func LoadManifest(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(b)
}
