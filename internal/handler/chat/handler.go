package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatModel "github.com/nexus-connecte/nexus/backend/internal/model/chat"
	"github.com/nexus-connecte/nexus/backend/internal/service/ai"
	"github.com/nexus-connecte/nexus/backend/pkg/utils"
)

// fallbackReply is shown when the provider returns no usable text, keeping
// the assistant's tone instead of surfacing an error.
const fallbackReply = "Désolé, je n'ai pas pu générer une réponse."

// Handler serves the chat widget endpoint.
type Handler struct {
	gen ai.Generator
}

// New creates the chat handler. gen is nil when no provider credential is
// configured.
func New(gen ai.Generator) *Handler {
	return &Handler{gen: gen}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		// Pointer distinguishes a missing field from an empty history;
		// an empty history is valid.
		Messages *[]chatModel.Turn `json:"messages"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Messages == nil {
		utils.RespondError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if h.gen == nil {
		utils.RespondError(w, http.StatusInternalServerError, "Clé OpenAI manquante")
		return
	}

	reply, err := h.gen.ChatReply(r.Context(), *payload.Messages)
	if err != nil {
		log.Printf("[chat] generation failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la génération de la réponse")
		return
	}

	if reply == "" {
		reply = fallbackReply
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": reply})
}
