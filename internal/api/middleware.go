package api

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tommhe14/tmkt-api/internal/api/respond"
	"github.com/tommhe14/tmkt-api/internal/ratelimit"
)

// TimingMiddleware adds an X-Process-Time header to all responses. The
// header has to be stamped before the first byte goes out, so the writer
// is wrapped rather than touched after the handler returns.
func TimingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&timingWriter{ResponseWriter: w, start: time.Now()}, r)
	})
}

type timingWriter struct {
	http.ResponseWriter
	start   time.Time
	stamped bool
}

func (tw *timingWriter) WriteHeader(status int) {
	if !tw.stamped {
		tw.stamped = true
		elapsed := time.Since(tw.start)
		tw.Header().Set("X-Process-Time", fmt.Sprintf("%.2fms", float64(elapsed.Microseconds())/1000.0))
	}
	tw.ResponseWriter.WriteHeader(status)
}

func (tw *timingWriter) Write(b []byte) (int, error) {
	if !tw.stamped {
		tw.WriteHeader(http.StatusOK)
	}
	return tw.ResponseWriter.Write(b)
}

// Flush keeps streaming responses working through the wrapper.
func (tw *timingWriter) Flush() {
	if f, ok := tw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// RateLimitMiddleware enforces the sliding-window limit per client IP and
// route pattern, so hammering one endpoint does not lock a caller out of
// the others. Rejected requests carry the standard X-RateLimit headers
// and do not count against the window.
func RateLimitMiddleware(limiter *ratelimit.Limiter, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			key := ip + ":" + routePattern(r)
			res := limiter.Check(key, limit, window)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset.Unix(), 10))

			if !res.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				respond.Error(w, http.StatusTooManyRequests,
					fmt.Sprintf("Rate limit exceeded: %d requests per %d seconds", limit, int(window.Seconds())))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// routePattern resolves the matched chi pattern for the request, so all
// callers of e.g. /players/{playerID} share one limiter subject no
// matter which player they ask about.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	tctx := chi.NewRouteContext()
	if rctx.Routes != nil && rctx.Routes.Match(tctx, r.Method, r.URL.Path) {
		return tctx.RoutePattern()
	}
	return r.URL.Path
}
