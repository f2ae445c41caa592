package manifest

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/scenegen/scenegen/pkg/scene"
	"github.com/scenegen/scenegen/pkg/sim"
)

// World registers the manifest's surface and objects in a fresh in-memory
// simulation backend. Use it for offline generation and tests; with a real
// simulator backend the objects must already exist there under the same
// names.
func (m *Manifest) World() (*sim.World, error) {
	w := sim.NewWorld()
	if err := w.AddSurface(m.Surface.Name, m.Surface.Size[0], m.Surface.Size[1], m.Surface.Size[2]); err != nil {
		return nil, err
	}
	for _, obj := range m.Objects {
		if err := w.AddBox(obj.Name, obj.Size[0], obj.Size[1], obj.Size[2]); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// BuildTree constructs the relation tree for one scene attempt: every
// object's yaw policy is sampled, and objects with direction alternatives
// get one alternative drawn for this attempt. The returned surface is good
// for exactly one placement pass; call BuildTree again for the next attempt.
func (m *Manifest) BuildTree(ctx context.Context, backend scene.Backend, rng *rand.Rand) (*scene.Surface, error) {
	root, err := scene.NewSurface(ctx, backend, m.Surface.Name)
	if err != nil {
		return nil, err
	}

	nodes := map[string]*scene.Object{}
	for _, spec := range m.Objects {
		obj, err := scene.NewObject(ctx, backend, spec.Name)
		if err != nil {
			return nil, err
		}
		obj.SetYaw(spec.sampleYaw(rng))
		nodes[spec.Name] = obj

		if spec.Parent == "" || spec.Parent == m.Surface.Name {
			anchor, err := scene.ParseAnchor(anchorOrCenter(spec.Anchor))
			if err != nil {
				return nil, fmt.Errorf("object %q: %w", spec.Name, err)
			}
			if err := root.Add(obj, anchor); err != nil {
				return nil, err
			}
			continue
		}

		parent, ok := nodes[spec.Parent]
		if !ok {
			return nil, fmt.Errorf("object %q: parent %q must be declared first", spec.Name, spec.Parent)
		}
		dir, err := scene.ParseDirection(spec.sampleDirection(rng))
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", spec.Name, err)
		}
		distance, err := scene.ParseDistance(spec.Distance)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", spec.Name, err)
		}
		if err := parent.Add(obj, dir, distance); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// sampleYaw draws the object's yaw for one scene attempt.
func (o *ObjectSpec) sampleYaw(rng *rand.Rand) float64 {
	switch {
	case o.RandomYaw:
		return rng.Float64() * 2 * math.Pi
	case o.YawSigma > 0:
		return rng.NormFloat64()*o.YawSigma + o.Yaw
	default:
		return o.Yaw
	}
}

// sampleDirection picks one of the object's direction alternatives.
func (o *ObjectSpec) sampleDirection(rng *rand.Rand) string {
	dirs := o.directionChoices()
	if len(dirs) == 1 {
		return dirs[0]
	}
	return dirs[rng.IntN(len(dirs))]
}
