package api

import (
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saibhanage/me-api-playground/errs"
	"github.com/saibhanage/me-api-playground/ratelimit"
)

// authGate protects the mutating profile routes with a single
// configured basic-auth credential pair. Every protected request
// re-authenticates; no session or token is issued.
type authGate struct {
	username  string
	password  string
	responder Responder
}

func newAuthGate(username, password string, devMode bool) authGate {
	logger := log.With().Str("handlerName", "authGate").Logger()
	return authGate{
		username:  username,
		password:  password,
		responder: NewResponder(logger, devMode),
	}
}

func (g authGate) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Me-API Admin"`)
			g.responder.WriteError(w, errs.NewUnauthorizedError("Authentication required"))
			return
		}

		if username != g.username || password != g.password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Me-API Admin"`)
			g.responder.WriteError(w, errs.NewUnauthorizedError("Invalid credentials"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// Recoverer converts handler panics into logged 500 responses with the
// same JSON body every other internal error produces, so no request
// can crash the process.
func Recoverer(responder Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			srw := &statusResponseWriter{ResponseWriter: w, status: 200}

			defer func() {
				if err := recover(); err != nil {
					log.Error().
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Interface("panic", err).
						Str("stack", string(debug.Stack())).
						Msg("Recovered from panic")

					if !srw.wroteHeader {
						responder.WriteError(srw, errs.NewInternalError("Internal server error"))
					}
				}
			}()

			next.ServeHTTP(srw, r)

			if srw.status == http.StatusInternalServerError {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("500 error response")
			}
		})
	}
}

// RequestLogger logs every request with a correlation id, colored by
// status class on the console.
func RequestLogger(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		srw := &statusResponseWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("requestId", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}

// MaxBodyBytes caps request body reads; oversized bodies fail inside
// the handler's decode with a request-entity error from net/http.
func MaxBodyBytes(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit rejects requests over the per-client fixed-window budget
// with the canonical 429 body.
func RateLimit(store *ratelimit.Store, responder Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.Allow(clientIP(r)) {
				responder.WriteError(w, errs.NewRateLimitedError("Too many requests from this IP, please try again later."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// connection's remote address without its port.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
