// Package record defines the persisted scene record format.
//
// A record is the externally visible output of one successful placement
// pass: the ordered object names plus name-keyed position, orientation, and
// bounding-box mappings. The JSON key names (objects/position/orientation/
// bbox) are a compatibility contract with the existing corpus of generated
// scenes and the downstream loaders that consume them; the id and name
// fields are additive and ignored by older tooling.
package record

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/scenegen/scenegen/pkg/geom"
	"github.com/scenegen/scenegen/pkg/scene"
)

// Scene is one recorded arrangement. All geometry is keyed by object name;
// Objects preserves placement order.
type Scene struct {
	ID   string `json:"id,omitempty" bson:"_id"`
	Name string `json:"name,omitempty" bson:"name"`

	Objects      []string               `json:"objects" bson:"objects"`
	Positions    map[string]geom.Vec3   `json:"position" bson:"position"`
	Orientations map[string]geom.Quat   `json:"orientation" bson:"orientation"`
	Bounds       map[string][]geom.Vec3 `json:"bbox" bson:"bbox"`
}

// FromSurface exports a completed placement pass into a Scene with a fresh
// UUID. Call it only after [scene.Surface.PlaceObjects] returned nil; a
// partially placed surface yields a partial record.
func FromSurface(s *scene.Surface) *Scene {
	rec := &Scene{
		ID:           uuid.NewString(),
		Objects:      s.Placed(),
		Positions:    make(map[string]geom.Vec3),
		Orientations: make(map[string]geom.Quat),
		Bounds:       make(map[string][]geom.Vec3),
	}
	for _, name := range rec.Objects {
		if pose, ok := s.PoseOf(name); ok {
			rec.Positions[name] = pose.Position
			rec.Orientations[name] = pose.Orientation
		}
		if corners, ok := s.CornersOf(name); ok {
			rec.Bounds[name] = corners
		}
	}
	return rec
}

// Validate checks that every listed object has a position, orientation, and
// bounding box entry.
func (s *Scene) Validate() error {
	for _, name := range s.Objects {
		if _, ok := s.Positions[name]; !ok {
			return fmt.Errorf("scene %s: object %q has no position", s.ID, name)
		}
		if _, ok := s.Orientations[name]; !ok {
			return fmt.Errorf("scene %s: object %q has no orientation", s.ID, name)
		}
		if _, ok := s.Bounds[name]; !ok {
			return fmt.Errorf("scene %s: object %q has no bounding box", s.ID, name)
		}
	}
	return nil
}

// Write encodes the scene as indented JSON.
func (s *Scene) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// Read decodes a scene from JSON.
func Read(r io.Reader) (*Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &s, nil
}

// Export writes the scene to a JSON file at path.
// This is a convenience wrapper around [Scene.Write] for file-based output.
func (s *Scene) Export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return s.Write(f)
}

// Import reads a scene from a JSON file at path.
func Import(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
