package pavlog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	// DefaultMiddlewareFormat is the template used for request events.
	DefaultMiddlewareFormat = "{method} {url} {status} {responseTime} ms - {contentLength}"

	// RequestIDHeader is read from the request and echoed on the response.
	RequestIDHeader = "X-Request-ID"
)

type middlewareOptions struct {
	level   Level
	format  string
	onError func(error)
}

type MiddlewareOption func(*middlewareOptions)

// WithMiddlewareLevel sets the level request events are emitted at.
func WithMiddlewareLevel(level Level) MiddlewareOption {
	return func(o *middlewareOptions) { o.level = level }
}

// WithMiddlewareFormat replaces DefaultMiddlewareFormat. The template may use
// method, url, status, responseTime, contentLength, remoteAddress and
// requestId.
func WithMiddlewareFormat(format string) MiddlewareOption {
	return func(o *middlewareOptions) { o.format = format }
}

// WithMiddlewareErrorHandler receives emission errors, which cannot be
// reported to the client once the response is written.
func WithMiddlewareErrorHandler(fn func(error)) MiddlewareOption {
	return func(o *middlewareOptions) { o.onError = fn }
}

// Middleware returns net/http middleware that emits one template event per
// completed request. It plugs straight into chi routers.
func (l *Logger) Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := middlewareOptions{level: DefaultLevel, format: DefaultMiddlewareFormat}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == emptyString {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			contentLength := ww.Header().Get("Content-Length")
			if contentLength == emptyString {
				contentLength = strconv.Itoa(ww.BytesWritten())
			}
			elapsed := float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)

			details := Fields{
				"method":        r.Method,
				"url":           r.URL.RequestURI(),
				"status":        status,
				"responseTime":  strconv.FormatFloat(elapsed, 'f', 3, 64),
				"contentLength": contentLength,
				"remoteAddress": r.RemoteAddr,
				"requestId":     reqID,
			}
			if err := l.Emit(o.level, o.format, details); err != nil && o.onError != nil {
				o.onError(err)
			}
		})
	}
}
