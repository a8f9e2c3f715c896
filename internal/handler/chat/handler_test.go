package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	chatModel "github.com/nexus-connecte/nexus/backend/internal/model/chat"
	"github.com/nexus-connecte/nexus/backend/internal/model/intake"
	"github.com/nexus-connecte/nexus/backend/internal/service/ai"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
	last  []chatModel.Turn
}

var _ ai.Generator = (*stubGenerator)(nil)

func (g *stubGenerator) GenerateThankYou(_ context.Context, _ intake.Submission) (string, error) {
	return "", errors.New("not used")
}

func (g *stubGenerator) ChatReply(_ context.Context, history []chatModel.Turn) (string, error) {
	g.calls++
	g.last = history
	return g.reply, g.err
}

func setupRouter(gen ai.Generator) *chi.Mux {
	handler := New(gen)
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postChat(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestChatMalformedBody(t *testing.T) {
	r := setupRouter(&stubGenerator{reply: "bienvenue"})

	resp := postChat(r, `{not json`)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatMissingMessagesField(t *testing.T) {
	gen := &stubGenerator{reply: "bienvenue"}
	r := setupRouter(gen)

	resp := postChat(r, `{}`)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if gen.calls != 0 {
		t.Fatal("expected no generation call for missing messages")
	}
}

func TestChatEmptyHistoryIsValid(t *testing.T) {
	gen := &stubGenerator{reply: "bienvenue au Nexus 🌐"}
	r := setupRouter(gen)

	resp := postChat(r, `{"messages":[]}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gen.calls != 1 {
		t.Fatalf("expected one generation call, got %d", gen.calls)
	}
	if len(gen.last) != 0 {
		t.Fatalf("expected empty history forwarded, got %d turns", len(gen.last))
	}
}

func TestChatForwardsFullHistory(t *testing.T) {
	gen := &stubGenerator{reply: "réponse"}
	r := setupRouter(gen)

	resp := postChat(r, `{"messages":[{"role":"user","content":"salut"},{"role":"assistant","content":"bienvenue"},{"role":"user","content":"aide"}]}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if len(gen.last) != 3 {
		t.Fatalf("expected 3 turns forwarded, got %d", len(gen.last))
	}
	if gen.last[2].Content != "aide" {
		t.Fatalf("expected turns in order, last was %q", gen.last[2].Content)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "réponse" {
		t.Fatalf("expected reply verbatim, got %q", body["message"])
	}
}

func TestChatNoCredentialConfigured(t *testing.T) {
	r := setupRouter(nil)

	resp := postChat(r, `{"messages":[]}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "Clé OpenAI manquante" {
		t.Fatalf("expected configuration error, got %q", body["message"])
	}
}

func TestChatGenerationFailureIsGeneric(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream timeout: secret detail")}
	r := setupRouter(gen)

	resp := postChat(r, `{"messages":[{"role":"user","content":"salut"}]}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "Erreur lors de la génération de la réponse" {
		t.Fatalf("expected generic error, got %q", body["message"])
	}
}

func TestChatEmptyCompletionFallsBack(t *testing.T) {
	gen := &stubGenerator{reply: ""}
	r := setupRouter(gen)

	resp := postChat(r, `{"messages":[{"role":"user","content":"salut"}]}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != fallbackReply {
		t.Fatalf("expected fallback reply, got %q", body["message"])
	}
}
