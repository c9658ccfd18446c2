package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"llmtools/internal/httpapi"
	"llmtools/internal/session"
)

const shutdownTimeout = 5 * time.Second

// fnListen is replaced in tests to bind an ephemeral port.
var fnListen = func(addr string) (net.Listener, error) { return net.Listen("tcp", addr) }

// serve runs the web server until ctx is canceled, then shuts down
// gracefully.
func serve(ctx context.Context, a *app, addr string) error {
	a.configureHTTP()
	httpapi.SetBaseContext(ctx)

	sessions := session.NewStore(a.sessionIdle())
	go sessions.Run(ctx, time.Minute)

	ln, err := fnListen(addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           httpapi.NewMux(a.deps(sessions)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", ln.Addr().String()).
			Str("engine", a.cfg.Engine.Mode).
			Str("models_dir", a.cfg.Editor.ModelsDir).
			Msg("llmtools listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Warn().Err(err).Msg("graceful shutdown error")
		return err
	}
	a.log.Info().Msg("server stopped")
	return nil
}
