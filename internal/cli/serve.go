package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/kyodera/kanjipath/internal/server"
)

// shutdownGrace is how long in-flight requests get to finish after the
// context is cancelled.
const shutdownGrace = 10 * time.Second

// newServeCmd creates the serve command, which runs the HTTP API until the
// process is interrupted.
func newServeCmd(cfg *Config) *cobra.Command {
	var (
		addr       string
		characters string
		terms      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the character graph and study orders over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.Server.Addr
			}
			return runServe(c.Context(), cfg, addr, characters, terms)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&characters, "characters", "", "character list file (overrides config)")
	cmd.Flags().StringVar(&terms, "terms", "", "EDICT2 dictionary file (overrides config)")

	return cmd
}

func runServe(ctx context.Context, cfg *Config, addr, characters, terms string) error {
	logger := loggerFromContext(ctx)

	records, err := loadRecords(ctx, cfg, characters)
	if err != nil {
		return err
	}
	dictTerms, err := loadTerms(ctx, cfg, terms)
	if err != nil {
		return err
	}

	c, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	srv := server.New(server.Config{
		Records: records,
		Terms:   dictTerms,
		Store:   st,
		Cache:   c,
		Logger:  logger,
	})

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
