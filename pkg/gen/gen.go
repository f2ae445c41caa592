// Package gen runs the scene generation pipeline: manifest → relation tree →
// placement pass → persisted record, repeated until the requested corpus
// size is reached.
//
// # Retry Model
//
// Two retry layers exist and are deliberately distinct:
//
//   - Inside one placement pass, the solver retries individual candidate
//     poses up to [scene.MaxAttempts] per object. Exhaustion is a
//     [scene.PlacementError] and poisons the whole pass.
//   - Around the pass, the runner rebuilds the tree with fresh randomness
//     and tries again, up to [Options.SceneAttempts] times per scene. Only
//     this outer loop ever retries; backend errors abort immediately.
//
// # Usage
//
//	m, _ := manifest.Load("desk.toml")
//	world, _ := m.World()
//	store, _ := corpus.NewDirStore("corpus/")
//
//	runner := gen.NewRunner(world, store, logger)
//	result, err := runner.Execute(ctx, gen.Options{Manifest: m, Count: 100, Seed: 42})
package gen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/scenegen/scenegen/pkg/corpus"
	"github.com/scenegen/scenegen/pkg/manifest"
	"github.com/scenegen/scenegen/pkg/record"
	"github.com/scenegen/scenegen/pkg/scene"
)

// DefaultSceneAttempts is how many whole-scene attempts each requested scene
// gets before the run fails. Attempts are cheap (no backend I/O with the
// built-in world), so the budget is generous.
const DefaultSceneAttempts = 50

// DefaultSeed is the default random seed for reproducibility.
const DefaultSeed = uint64(42)

// Options configures one generation run.
type Options struct {
	// Manifest describes the scene family to sample from. Required.
	Manifest *manifest.Manifest

	// Count is the number of scenes to generate. Required, positive.
	Count int

	// Seed initializes the run's random stream. Zero selects [DefaultSeed].
	Seed uint64

	// SceneAttempts bounds whole-scene retries per requested scene.
	// Zero selects [DefaultSceneAttempts].
	SceneAttempts int

	// NamePrefix prefixes generated scene names ("scene" by default, so
	// records are named scene1, scene2, ...).
	NamePrefix string
}

// validate checks required fields and applies defaults.
func (o *Options) validate() error {
	if o.Manifest == nil {
		return fmt.Errorf("manifest is required")
	}
	if o.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", o.Count)
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.SceneAttempts <= 0 {
		o.SceneAttempts = DefaultSceneAttempts
	}
	if o.NamePrefix == "" {
		o.NamePrefix = "scene"
	}
	return nil
}

// Result reports what a generation run produced.
type Result struct {
	Scenes   []string // keys of the persisted scenes, in generation order
	Attempts int      // total placement passes, including rejected ones
	Elapsed  time.Duration
}

// Runner executes generation runs against one backend and store.
// It is stateless between runs apart from the injected collaborators.
type Runner struct {
	backend scene.Backend
	store   corpus.Store
	logger  *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(backend scene.Backend, store corpus.Store, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{backend: backend, store: store, logger: logger}
}

// Execute generates opts.Count scenes. Each scene gets up to
// opts.SceneAttempts placement passes; a pass that fails with
// [scene.ErrPlacementFailed] is discarded and rebuilt with fresh randomness,
// any other error aborts the run. Successful scenes are persisted before the
// next one starts, so a failed run still leaves a usable partial corpus.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	start := time.Now()
	result := &Result{}

	for i := 0; i < opts.Count; i++ {
		name := fmt.Sprintf("%s%d", opts.NamePrefix, i+1)

		rec, attempts, err := r.generateOne(ctx, opts, rng)
		result.Attempts += attempts
		if err != nil {
			return result, fmt.Errorf("scene %s: %w", name, err)
		}

		rec.Name = name
		if err := r.store.Save(ctx, rec); err != nil {
			return result, fmt.Errorf("save %s: %w", name, err)
		}
		result.Scenes = append(result.Scenes, name)

		r.logger.Info("generated scene", "name", name, "objects", len(rec.Objects), "attempts", attempts)
	}

	result.Elapsed = time.Since(start)
	r.logger.Info("generation complete",
		"scenes", len(result.Scenes),
		"attempts", result.Attempts,
		"elapsed", result.Elapsed.Round(time.Millisecond))
	return result, nil
}

// generateOne runs placement passes until one succeeds or the attempt
// budget is spent. Returns the record and the number of passes used.
func (r *Runner) generateOne(ctx context.Context, opts Options, rng *rand.Rand) (*record.Scene, int, error) {
	for attempt := 1; attempt <= opts.SceneAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, attempt - 1, err
		}

		root, err := opts.Manifest.BuildTree(ctx, r.backend, rng)
		if err != nil {
			return nil, attempt - 1, err
		}

		err = root.PlaceObjects(ctx, rng)
		if err == nil {
			return record.FromSurface(root), attempt, nil
		}

		var pe *scene.PlacementError
		if !errors.As(err, &pe) {
			return nil, attempt, err
		}
		r.logger.Debug("placement pass rejected", "object", pe.Object, "attempt", attempt)
	}
	return nil, opts.SceneAttempts, fmt.Errorf("no valid scene after %d attempts: %w", opts.SceneAttempts, scene.ErrPlacementFailed)
}
