package submission

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nexus-connecte/nexus/backend/internal/model/intake"
	"github.com/nexus-connecte/nexus/backend/internal/model/mission"
	"github.com/nexus-connecte/nexus/backend/internal/service/ai"
	"github.com/nexus-connecte/nexus/backend/internal/service/message"
	"github.com/nexus-connecte/nexus/backend/pkg/utils"
)

// Handler serves the intake form endpoint.
type Handler struct {
	gen      ai.Generator
	messages *message.Store
}

// New creates the submission handler. gen is nil when no provider credential
// is configured; requests then fail with a configuration error.
func New(gen ai.Generator, messages *message.Store) *Handler {
	return &Handler{gen: gen, messages: messages}
}

// RegisterRoutes mounts the submission routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/submit", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload intake.Submission
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}

	// Honeypot: the field is invisible to humans, any value means a bot.
	// Spam wins over every other validation outcome.
	if strings.TrimSpace(payload.RobotCheck) != "" {
		utils.RespondError(w, http.StatusBadRequest, "Spam détecté")
		return
	}

	if payload.Email == "" || payload.Mission == "" || payload.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "Champs requis manquants")
		return
	}

	if payload.Mission == mission.Don {
		amount, err := payload.Amount.Value()
		if err != nil || amount <= 0 {
			utils.RespondError(w, http.StatusBadRequest, "Montant du don invalide")
			return
		}
	}

	if h.gen == nil {
		utils.RespondError(w, http.StatusInternalServerError, "Clé API manquante côté serveur")
		return
	}

	text, err := h.gen.GenerateThankYou(r.Context(), payload)
	if err != nil {
		log.Printf("[submit] generation failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la génération IA")
		return
	}

	id := uuid.NewString()
	if err := h.messages.Put(id, text); err != nil {
		log.Printf("[submit] failed to store message %s: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la génération IA")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}
