package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/nexus-connecte/nexus/backend/internal/handler/chat"
	"github.com/nexus-connecte/nexus/backend/internal/handler/confirmation"
	missionHandler "github.com/nexus-connecte/nexus/backend/internal/handler/mission"
	"github.com/nexus-connecte/nexus/backend/internal/handler/submission"
	middlewarePkg "github.com/nexus-connecte/nexus/backend/internal/middleware"
	missionModel "github.com/nexus-connecte/nexus/backend/internal/model/mission"
	"github.com/nexus-connecte/nexus/backend/internal/service/ai"
	"github.com/nexus-connecte/nexus/backend/internal/service/message"
)

// NewRouter wires HTTP routes to core services. aiSvc is nil when no
// provider credential is configured; the handlers then answer with a
// configuration error instead of crashing.
func NewRouter(missions missionModel.Store, messages *message.Store, aiSvc *ai.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	// Assign through the interface only when the service exists, so the
	// handlers' nil check stays meaningful.
	var gen ai.Generator
	if aiSvc != nil {
		gen = aiSvc
	}

	submissionHandler := submission.New(gen, messages)
	widgetHandler := chatHandler.New(gen)
	confirmationHandler := confirmation.New(messages, missions)
	catalogHandler := missionHandler.New(missions)

	r.Route("/api", func(api chi.Router) {
		submissionHandler.RegisterRoutes(api)
		widgetHandler.RegisterRoutes(api)
		confirmationHandler.RegisterRoutes(api)
		catalogHandler.RegisterRoutes(api)
	})

	return r
}
