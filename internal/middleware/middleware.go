package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// RequestLogger writes one logrus entry per request, levelled by response status.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		entry := log.WithFields(log.Fields{
			"statusCode": status,
			"latency":    time.Since(start).Microseconds(),
			"clientIp":   r.RemoteAddr,
			"method":     r.Method,
			"path":       r.URL.Path,
			"userAgent":  r.UserAgent(),
			"dataLength": ww.BytesWritten(),
		})

		switch {
		case status > 499:
			entry.Error("request failed")
		case status > 399:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	})
}
