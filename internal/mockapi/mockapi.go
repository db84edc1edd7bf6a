// Package mockapi is a local stand-in for the OnlyFans payouts API. It answers
// every account with the same fixed envelopes.
package mockapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const earningStatistics = `{
  "data": {
    "list": {
      "months": {
        "1735689661": {
          "tips": [{"time": 1735689661, "net": 4, "gross": 5}],
          "total_net": 100,
          "total_gross": 125,
          "subscribes": [{"time": 1735689661, "net": 16, "gross": 20}]
        }
      },
      "total": {
        "tips": {"total_net": 123.45, "total_gross": 123.45},
        "all": {"total_net": 123.45, "total_gross": 123.45},
        "subscribes": {"total_net": 123.45, "total_gross": 123.45},
        "chat_messages": {"total_net": 123.45, "total_gross": 123.45},
        "post": {"total_net": 123.45, "total_gross": 123.45}
      }
    }
  },
  "_meta": {
    "_credits": {"used": 1, "balance": 999999842, "note": "Always"},
    "_cache": {"is_cached": false, "note": "Cache disabled for this endpoint"},
    "_rate_limits": {"limit_minute": 1000, "limit_day": 50000, "remaining_minute": 999, "remaining_day": 49846}
  }
}`

const transactions = `{
  "data": {
    "list": [
      {
        "amount": 12.34,
        "vatAmount": 12.34,
        "taxAmount": 12.34,
        "mediaTaxAmount": 12.34,
        "net": 12.34,
        "fee": 12.34,
        "createdAt": "2025-01-01T01:01:01+00:00",
        "currency": "USD",
        "description": "Subscription from <a href=\"https://onlyfans.com/username\">Name</a>",
        "status": "loading",
        "user": {
          "view": "t",
          "id": 123,
          "name": "Name",
          "username": "username",
          "isVerified": false,
          "avatar": null,
          "avatarThumbs": null
        },
        "payoutPendingDays": 7,
        "id": "abc123"
      }
    ],
    "marker": 123,
    "hasMore": true,
    "nextMarker": 1234
  },
  "_meta": {
    "_credits": {"used": 1, "balance": 999999845, "note": "Always"},
    "_cache": {"is_cached": false, "note": "Cache disabled for this endpoint"},
    "_rate_limits": {"limit_minute": 1000, "limit_day": 50000, "remaining_minute": 999, "remaining_day": 49849}
  }
}`

type Server struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Server {
	return &Server{log: log}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer, s.accessLog)
	r.Get("/api/{account}/payouts/earning-statistics", s.earningStatistics)
	r.Get("/api/{account}/payouts/transactions", s.transactions)
	return r
}

func (s *Server) earningStatistics(w http.ResponseWriter, r *http.Request) {
	s.write(w, earningStatistics)
}

func (s *Server) transactions(w http.ResponseWriter, r *http.Request) {
	s.write(w, transactions)
}

func (s *Server) write(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		s.log.Error().Err(err).Msg("write response")
	}
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
