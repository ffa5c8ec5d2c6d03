// internal/adapters/httpserver/server.go
package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/rkarim/chatcart/internal/application"
	"github.com/rkarim/chatcart/internal/ports"
	"github.com/rkarim/chatcart/pkg/auth"
)

// SessionTokenHeader carries the JWT that pins a request to its
// conversation. A response to a tokenless request returns a fresh one here.
const SessionTokenHeader = "X-Session-Token"

type Server struct {
	router   chi.Router
	chat     *application.ChatService
	sessions *application.SessionStore
	tokens   *auth.TokenManager
	cache    ports.CachePort
	log      *logrus.Logger
}

func New(chat *application.ChatService, sessions *application.SessionStore, tokens *auth.TokenManager, cache ports.CachePort, allowedOrigin string, log *logrus.Logger) *Server {
	s := &Server{
		chat:     chat,
		sessions: sessions,
		tokens:   tokens,
		cache:    cache,
		log:      log,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", SessionTokenHeader},
		ExposedHeaders: []string{SessionTokenHeader},
		MaxAge:         300,
	}))

	r.Post("/chat", s.handleChat)
	r.Get("/healthz", s.handleHealthz)

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"status":  ww.Status(),
			"elapsed": time.Since(start).String(),
		}).Info("request")
	})
}
