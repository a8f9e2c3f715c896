package confirmation

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nexus-connecte/nexus/backend/internal/model/mission"
	"github.com/nexus-connecte/nexus/backend/internal/service/message"
	"github.com/nexus-connecte/nexus/backend/pkg/utils"
)

// defaultName greets visitors who arrive without a name parameter.
const defaultName = "Ami(e) du Nexus"

// Handler serves the confirmation view data.
type Handler struct {
	messages *message.Store
	missions mission.Store
}

// New creates the confirmation handler.
func New(messages *message.Store, missions mission.Store) *Handler {
	return &Handler{messages: messages, missions: missions}
}

// RegisterRoutes mounts the confirmation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/confirmation", h.handleConfirmation)
}

// Response is what the confirmation page renders. GeneratedMessage is
// omitted when the id is unknown or expired; that is a normal state, not an
// error.
type Response struct {
	Name             string `json:"name"`
	Mission          string `json:"mission"`
	Description      string `json:"description"`
	Year             int    `json:"year"`
	GeneratedMessage string `json:"generatedMessage,omitempty"`
}

func (h *Handler) handleConfirmation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	name := strings.TrimSpace(query.Get("name"))
	if name == "" {
		name = defaultName
	}

	missionID := strings.TrimSpace(query.Get("mission"))
	if missionID == "" {
		missionID = mission.Soutien
	}

	m, ok := h.missions.FindByID(missionID)
	if !ok {
		m = h.missions.Default()
	}

	resp := Response{
		Name:        name,
		Mission:     missionID,
		Description: m.Describe(name),
		Year:        time.Now().Year(),
	}

	if text, found := h.messages.Get(query.Get("id")); found {
		resp.GeneratedMessage = text
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}
