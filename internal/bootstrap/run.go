package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/deptboard/board-service/internal/logger"
)

// Run builds the app, serves HTTP and blocks until a signal arrives, then
// drains in-flight requests before returning.
func Run(ctx context.Context, sigCh <-chan os.Signal) error {
	app, err := Build(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:         app.Config.HTTPAddr,
		Handler:      app.Handler,
		ReadTimeout:  app.Config.HTTPReadTimeout,
		WriteTimeout: app.Config.HTTPWriteTimeout,
		IdleTimeout:  app.Config.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case <-ctx.Done():
		logger.Logger.Info().Msg("context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
