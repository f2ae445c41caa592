package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/scenegen/scenegen/pkg/corpus"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string // listen address
}

// newServeCmd creates the serve command, which exposes a corpus directory
// over HTTP for downstream training and visualization tools.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve <corpus-dir>",
		Short: "Serve a corpus directory over HTTP",
		Long: `Serve exposes a generated corpus over HTTP:

  GET /scenes        list scene keys
  GET /scenes/{key}  fetch one scene record

Example:
  scenegen serve corpus/ --addr :9000`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runServe(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts, dir string) error {
	logger := loggerFromContext(ctx)

	store, err := corpus.NewDirStore(dir)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           corpus.Handler(store),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("serving corpus", "dir", dir, "addr", opts.addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
