package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cinebooking/config"
	"github.com/gin-gonic/gin"
)

// Registrar is anything that can mount its routes on the engine.
type Registrar interface {
	Register(router *gin.RouterGroup)
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, handlers ...Registrar) error {
	router := gin.Default()
	root := router.Group("/")
	for _, h := range handlers {
		h.Register(root)
	}

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
