package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	skillHandler "github.com/ultradian/alexa-genome-match/internal/handler/skill"
	"github.com/ultradian/alexa-genome-match/internal/service/session"
)

// NewRouter wires HTTP routes to the skill dispatcher.
func NewRouter(dispatcher *session.Dispatcher, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		skillHandler.New(dispatcher, logger).RegisterRoutes(api)
	})

	return r
}
