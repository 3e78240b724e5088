package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// serve runs handler on port until ctx is done, then shuts the server down
// gracefully.
func serve(ctx context.Context, logger *logrus.Logger, name, port string, handler http.Handler) error {
	server := http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("port", port).Infof("%v.Serve.listening", name)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.WithError(err).Errorf("%v.Serve.listen error", name)
		return fmt.Errorf("%s: %w", name, err)
	case <-ctx.Done():
	}

	logger.Infof("%v.Serve.shutting down", name)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s shutdown: %w", name, err)
	}
	return nil
}
