// Package health serves the liveness endpoint.
package health

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Service is the name reported by the endpoint.
const Service = "Mono - Bionic Reading Editor"

// Path is the liveness route.
const Path = "/api/health"

// ReadyPath is the readiness route.
const ReadyPath = "/api/ready"

// TimestampFormat is RFC 3339 in UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Status is the state reported in a payload.
type Status string

const (
	StatusOK          Status = "ok"
	StatusUnavailable Status = "unavailable"
)

// Payload is the liveness response body.
type Payload struct {
	Status    Status `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// Readiness is the readiness response body.
type Readiness struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// Handler returns the liveness handler. It always answers 200 with status
// "ok". now defaults to time.Now.
func Handler(service string, now func() time.Time) http.Handler {
	if now == nil {
		now = time.Now
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		writeJSON(w, r, http.StatusOK, Payload{
			Status:    StatusOK,
			Timestamp: now().UTC().Format(TimestampFormat),
			Service:   service,
		})
	})
}

// Ready returns the readiness handler. The first failing check turns the
// response into 503 with status "unavailable".
func Ready(checks ...Check) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		p := Readiness{Status: StatusOK}
		code := http.StatusOK
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				p = Readiness{Status: StatusUnavailable, Error: err.Error()}
				code = http.StatusServiceUnavailable
				break
			}
		}
		writeJSON(w, r, code, p)
	})
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	return false
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	if r.Method == http.MethodHead {
		return
	}
	json.NewEncoder(w).Encode(v)
}

// Mux mounts live on Path and, when non-nil, ready on ReadyPath.
func Mux(live, ready http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(Path, live)
	if ready != nil {
		mux.Handle(ReadyPath, ready)
	}
	return mux
}

// Serve listens on addr and serves h until ctx is cancelled.
func Serve(ctx context.Context, addr string, h http.Handler, log *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return serve(ctx, ln, h, log)
}

func serve(ctx context.Context, ln net.Listener, h http.Handler, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("health endpoint listening", "addr", ln.Addr().String(), "path", Path)
		errc <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errc
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
