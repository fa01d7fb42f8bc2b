package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"podbrief/internal/server"
)

func newServeCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the pipeline over HTTP with websocket progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, *configFlag)
			if err != nil {
				return err
			}
			defer a.close()

			unlock, err := acquireInstanceLock(a.cfg.Paths.Database, "serve")
			if err != nil {
				return err
			}
			defer unlock()

			srv := &http.Server{
				Addr:    a.cfg.Server.Addr,
				Handler: server.New(a.pipeline, a.logger).Handler(),
			}

			errChan := make(chan error, 1)
			go func() {
				a.logger.Info(ctx, "Listening on %s", a.cfg.Server.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errChan <- err
				}
			}()

			select {
			case <-ctx.Done():
				a.logger.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				return fmt.Errorf("server error: %w", err)
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

// acquireInstanceLock guards against two daemons sharing one database.
func acquireInstanceLock(databasePath, name string) (func(), error) {
	lockPath := filepath.Join(filepath.Dir(databasePath), "podbrief-"+name+".lock")
	lock := flock.New(lockPath)

	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire instance lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another podbrief %s instance is already running (lock: %s)", name, lockPath)
	}

	return func() { _ = lock.Unlock() }, nil
}
