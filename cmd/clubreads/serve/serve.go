// Package serve implements the serve command.
package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/clubreads/clubreads/cmd"
	"github.com/clubreads/clubreads/pkg/config"
	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/migrate"
	"github.com/spf13/cobra"
)

// Command is the serve command.
var Command = &cobra.Command{
	Use:                "serve",
	Short:              "Start the server",
	Args:               cobra.NoArgs,
	PersistentPreRunE:  cmd.InitBackendContext,
	PersistentPostRunE: cmd.CloseDBContext,
	RunE: func(c *cobra.Command, _ []string) error {
		ctx := c.Context()
		cfg := config.FromContext(ctx)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}

		dbx := db.FromContext(ctx)
		if err := migrate.Migrate(ctx, dbx); err != nil {
			return fmt.Errorf("migration error: %w", err)
		}

		s, err := NewServer(ctx)
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}

		lch := make(chan error, 1)
		done := make(chan os.Signal, 1)
		doneOnce := sync.OnceFunc(func() { close(done) })

		signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			lch <- s.Start()
			doneOnce()
		}()

		select {
		case err := <-lch:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
		case <-done:
		}

		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return s.Shutdown(ctx)
	},
}
