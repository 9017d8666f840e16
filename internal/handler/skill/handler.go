// Package skill exposes the speech-platform webhook endpoint.
package skill

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	skillModel "github.com/ultradian/alexa-genome-match/internal/model/skill"
	"github.com/ultradian/alexa-genome-match/internal/service/session"
	"github.com/ultradian/alexa-genome-match/pkg/utils"
)

// Handler decodes skill envelopes and hands them to the dispatcher.
type Handler struct {
	dispatcher *session.Dispatcher
	logger     *zap.Logger
}

// New creates the skill endpoint handler.
func New(dispatcher *session.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{dispatcher: dispatcher, logger: logger}
}

// RegisterRoutes mounts the skill endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/skill", h.handleRequest)
}

func (h *Handler) handleRequest(w http.ResponseWriter, r *http.Request) {
	var env skillModel.RequestEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		h.logger.Warn("rejecting malformed envelope", zap.Error(err))
		_ = utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.dispatcher.Handle(r.Context(), &env)
	if err != nil {
		h.logger.Error("dispatch failed",
			zap.String("type", env.Request.Type), zap.Error(err))
		_ = utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.RespondJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("encoding response envelope", zap.Error(err))
	}
}
