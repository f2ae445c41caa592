// Package manifest parses TOML scene manifests.
//
// A manifest describes one scene family: the supporting surface, the objects
// on it, and the qualitative relations between them. The generator samples a
// fresh concrete arrangement from the same manifest for every scene, so one
// manifest yields an unbounded labeled corpus.
//
// # Format
//
//	[surface]
//	name = "table"
//	size = [1.6, 0.8, 0.75]          # width, depth, top height
//
//	[[object]]
//	name   = "monitor1"
//	size   = [0.45, 0.2, 0.4]
//	anchor = "north"                 # direct child of the surface
//	yaw_sigma = 0.196                # yaw ~ N(0, yaw_sigma)
//
//	[[object]]
//	name      = "keyboard1"
//	size      = [0.45, 0.15, 0.03]
//	parent    = "monitor1"           # placed relative to another object
//	direction = "front"
//	distance  = "close"
//
//	[[object]]
//	name       = "cup1"
//	size       = [0.08, 0.08, 0.1]
//	parent     = "monitor1"
//	directions = ["right_front", "left_front"]  # one side per scene
//	random_yaw = true                # yaw ~ U(0, 2π)
//
// Objects must be declared after their parent; relation labels are validated
// against the closed anchor/direction/distance enumerations at load time.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/scenegen/scenegen/pkg/cache"
	"github.com/scenegen/scenegen/pkg/scene"
)

// Manifest is a parsed scene description.
type Manifest struct {
	Surface SurfaceSpec  `toml:"surface"`
	Objects []ObjectSpec `toml:"object"`
}

// SurfaceSpec names the supporting plane and, for the built-in simulation
// backend, its box extents.
type SurfaceSpec struct {
	Name string     `toml:"name"`
	Size [3]float64 `toml:"size"` // width, depth, top height
}

// ObjectSpec describes one object and its relation to its parent.
// Exactly one of Anchor (direct surface child) or Direction/Directions
// (relative placement) applies.
type ObjectSpec struct {
	Name string     `toml:"name"`
	Size [3]float64 `toml:"size"` // width, depth, height

	Parent     string   `toml:"parent"`
	Anchor     string   `toml:"anchor"`
	Direction  string   `toml:"direction"`
	Directions []string `toml:"directions"`
	Distance   string   `toml:"distance"`

	// Yaw policy: a fixed yaw, a Gaussian spread around it, or uniform over
	// the full circle. RandomYaw wins over YawSigma.
	Yaw       float64 `toml:"yaw"`
	YawSigma  float64 `toml:"yaw_sigma"`
	RandomYaw bool    `toml:"random_yaw"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates manifest TOML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks structural and label validity: unique non-empty names,
// positive extents, parents declared before their children, and every
// anchor/direction/distance label inside its closed enumeration.
func (m *Manifest) Validate() error {
	if m.Surface.Name == "" {
		return fmt.Errorf("surface name is required")
	}
	if err := checkSize(m.Surface.Name, m.Surface.Size); err != nil {
		return err
	}

	seen := map[string]bool{m.Surface.Name: true}
	for i, obj := range m.Objects {
		if obj.Name == "" {
			return fmt.Errorf("object %d: name is required", i)
		}
		if seen[obj.Name] {
			return fmt.Errorf("duplicate object name %q", obj.Name)
		}
		if err := checkSize(obj.Name, obj.Size); err != nil {
			return err
		}
		if err := m.validateRelation(obj, seen); err != nil {
			return err
		}
		seen[obj.Name] = true
	}
	return nil
}

func (m *Manifest) validateRelation(obj ObjectSpec, seen map[string]bool) error {
	if obj.Parent == "" || obj.Parent == m.Surface.Name {
		// Direct surface child: anchored placement.
		if len(obj.Directions) > 0 || obj.Direction != "" {
			return fmt.Errorf("object %q: directions only apply with a parent object", obj.Name)
		}
		if _, err := scene.ParseAnchor(anchorOrCenter(obj.Anchor)); err != nil {
			return fmt.Errorf("object %q: %w", obj.Name, err)
		}
		return nil
	}

	if !seen[obj.Parent] {
		return fmt.Errorf("object %q: parent %q must be declared first", obj.Name, obj.Parent)
	}
	if obj.Anchor != "" {
		return fmt.Errorf("object %q: anchors only apply to direct surface children", obj.Name)
	}

	dirs := obj.directionChoices()
	if len(dirs) == 0 {
		return fmt.Errorf("object %q: a direction is required", obj.Name)
	}
	for _, d := range dirs {
		if _, err := scene.ParseDirection(d); err != nil {
			return fmt.Errorf("object %q: %w", obj.Name, err)
		}
	}
	if _, err := scene.ParseDistance(obj.Distance); err != nil {
		return fmt.Errorf("object %q: %w", obj.Name, err)
	}
	return nil
}

// directionChoices returns the candidate directions for the object: the
// alternatives list if given, else the single direction.
func (o *ObjectSpec) directionChoices() []string {
	if len(o.Directions) > 0 {
		return o.Directions
	}
	if o.Direction != "" {
		return []string{o.Direction}
	}
	return nil
}

// anchorOrCenter applies the manifest default: an omitted anchor means the
// surface center.
func anchorOrCenter(label string) string {
	if label == "" {
		return string(scene.AnchorCenter)
	}
	return label
}

func checkSize(name string, size [3]float64) error {
	if size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
		return fmt.Errorf("object %q: size must have three positive extents", name)
	}
	return nil
}

// Fingerprint returns a stable hash of the manifest's geometry: the surface
// and object names with their extents. It changes whenever any declared size
// changes, which makes it the cache namespace for
// [github.com/scenegen/scenegen/pkg/scene.NewCachedBackend] - a reused cache
// directory never serves bounds recorded for an older geometry.
func (m *Manifest) Fingerprint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%v;", m.Surface.Name, m.Surface.Size)
	for _, obj := range m.Objects {
		fmt.Fprintf(&b, "%s:%v;", obj.Name, obj.Size)
	}
	return cache.Hash([]byte(b.String()))
}
