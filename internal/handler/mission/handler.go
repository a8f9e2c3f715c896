package mission

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexus-connecte/nexus/backend/internal/model/mission"
	"github.com/nexus-connecte/nexus/backend/pkg/utils"
)

// Handler exposes the mission catalog to the front end.
type Handler struct {
	missions mission.Store
}

// New creates the mission handler.
func New(missions mission.Store) *Handler {
	return &Handler{missions: missions}
}

// RegisterRoutes mounts the mission routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/missions", h.handleListMissions)
}

func (h *Handler) handleListMissions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.missions.List())
}
