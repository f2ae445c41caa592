package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scenegen/scenegen/pkg/cache"
	"github.com/scenegen/scenegen/pkg/corpus"
	"github.com/scenegen/scenegen/pkg/gen"
	"github.com/scenegen/scenegen/pkg/manifest"
	"github.com/scenegen/scenegen/pkg/scene"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	count    int    // number of scenes to generate
	seed     uint64 // random seed
	attempts int    // whole-scene retry budget per scene
	out      string // corpus output directory

	mongoURI  string // MongoDB connection string (overrides --out)
	mongoDB   string // MongoDB database name
	mongoColl string // MongoDB collection name

	redisAddr string // Redis address for the geometry cache
	cacheDir  string // file cache directory for the geometry cache
}

// newGenerateCmd creates the generate command.
// It samples scene records from a TOML manifest into a corpus directory or
// a MongoDB collection.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{count: 10, out: "corpus"}

	cmd := &cobra.Command{
		Use:   "generate <manifest.toml>",
		Short: "Generate scene records from a manifest",
		Long: `Generate samples concrete scenes from a TOML manifest.

Each scene is a fresh draw: object yaws and direction alternatives are
re-rolled, positions are rejection-sampled under the manifest's relations,
and the resulting record is written to the corpus.

Examples:
  scenegen generate desk.toml                       # 10 scenes into ./corpus
  scenegen generate desk.toml -n 500 -o corpus/desk # larger corpus
  scenegen generate desk.toml --seed 7              # reproducible run
  scenegen generate desk.toml --mongo-uri mongodb://localhost:27017`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "number of scenes to generate")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 = default)")
	cmd.Flags().IntVar(&opts.attempts, "scene-attempts", 0, "whole-scene retries per scene (0 = default)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "corpus output directory")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "write the corpus to MongoDB instead of a directory")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", "scenegen", "MongoDB database name")
	cmd.Flags().StringVar(&opts.mongoColl, "mongo-collection", "scenes", "MongoDB collection name")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for caching backend geometry lookups")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "directory for caching backend geometry lookups")

	return cmd
}

func runGenerate(ctx context.Context, opts *generateOpts, manifestPath string) error {
	logger := loggerFromContext(ctx)

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded manifest", "surface", m.Surface.Name, "objects", len(m.Objects))

	backend, err := newBackend(ctx, opts, m)
	if err != nil {
		return err
	}

	store, err := newStore(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	prog := newProgress(logger)
	runner := gen.NewRunner(backend, store, logger)
	result, err := runner.Execute(ctx, gen.Options{
		Manifest:      m,
		Count:         opts.count,
		Seed:          opts.seed,
		SceneAttempts: opts.attempts,
	})
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Generated %d scenes in %d attempts", len(result.Scenes), result.Attempts))
	return nil
}

// newBackend builds the scene backend for a run: the in-memory world from
// the manifest, optionally wrapped with a geometry cache.
func newBackend(ctx context.Context, opts *generateOpts, m *manifest.Manifest) (scene.Backend, error) {
	world, err := m.World()
	if err != nil {
		return nil, err
	}

	c, err := newCache(ctx, opts)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return world, nil
	}
	// Scope cache entries to this manifest's geometry so a reused cache
	// directory never serves bounds for resized objects.
	return scene.NewCachedBackend(world, c, m.Fingerprint()), nil
}

func newCache(ctx context.Context, opts *generateOpts) (cache.Cache, error) {
	switch {
	case opts.redisAddr != "":
		return cache.NewRedisCache(ctx, opts.redisAddr)
	case opts.cacheDir != "":
		return cache.NewFileCache(opts.cacheDir)
	default:
		return nil, nil
	}
}

func newStore(ctx context.Context, opts *generateOpts) (corpus.Store, error) {
	if opts.mongoURI != "" {
		return corpus.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB, opts.mongoColl)
	}
	return corpus.NewDirStore(opts.out)
}
