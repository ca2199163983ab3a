package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ventiq/ventiq-terminal/internal/cli"
	"github.com/ventiq/ventiq-terminal/internal/server"
	"github.com/ventiq/ventiq-terminal/pkg/files"
)

var (
	serveAddr  string
	serveWatch bool
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tutorials over a JSON API",
		Long: `Start a read-only HTTP API for pages that embed the walkthrough.

Routes:
  GET /health
  GET /api/tutorials[?category=seller|admin]
  GET /api/tutorials/{key}
  GET /api/tutorials/{key}/steps/{n}
  GET /api/screenshots/{key}/{n}
  GET /api/search?q=<query>
  GET /assets/...

Examples:
  # Serve on the configured address (default :8080)
  ventiq serve

  # Serve on another port and reload when the project files change
  ventiq serve --addr :9000 --watch`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to the server.addr setting)")
	cmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "Reload tutorials when project files change")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cctx, err := cli.NewCommandContextFromFlags(cmd)
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cctx.Settings.Server.Addr
	}

	srv := server.New(cctx.Catalog, cctx.Screenshots, cctx.Settings)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A failing server also stops the watcher
	g, ctx := errgroup.WithContext(ctx)

	watch, _ := cmd.Flags().GetBool("watch")
	if watch {
		w, err := newReloader(cctx.ProjectRoot, srv)
		if err != nil {
			return err
		}
		g.Go(func() error {
			w.Run(ctx)
			return nil
		})
	}

	cli.PrintInfo("Serving %d tutorial(s) on %s", cctx.Catalog.Len(), addr)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, addr)
	})
	return g.Wait()
}

// newReloader watches the project catalog and screenshot index and reloads
// the server when they change. Broken files keep the previous data.
func newReloader(root string, srv *server.Server) (*files.ProjectWatcher, error) {
	reload := func() {
		next, err := cli.NewCommandContext(root)
		if err != nil {
			cli.PrintWarning("Keeping previous tutorials: %v", err)
			return
		}
		srv.Reload(next.Catalog, next.Screenshots)
		cli.PrintInfo("Reloaded %d tutorial(s)", next.Catalog.Len())
	}

	w, err := files.WatchProject(root, reload, files.WithOnError(func(err error) {
		cli.PrintWarning("Watch error: %v", err)
	}))
	if err != nil {
		return nil, err
	}

	cli.PrintInfo("Watching %s for changes", files.ProjectPath(root, ""))
	return w, nil
}
