package confirmation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nexus-connecte/nexus/backend/internal/model/mission"
	"github.com/nexus-connecte/nexus/backend/internal/service/message"
)

func setupRouter(t *testing.T) (*chi.Mux, *message.Store) {
	t.Helper()
	store := message.NewStore(time.Hour, 100)
	t.Cleanup(store.Close)

	missions := mission.NewMemoryStore(mission.Seed())
	handler := New(store, missions)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, store
}

func getConfirmation(r http.Handler, rawQuery string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/confirmation?"+rawQuery, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return body
}

func TestConfirmationWithStoredMessage(t *testing.T) {
	r, store := setupRouter(t)
	if err := store.Put("id-1", "Merci, Chevalier du Code !"); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	resp := getConfirmation(r, "id=id-1&name=Ada&mission=contact")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := decodeResponse(t, resp)
	if body.GeneratedMessage != "Merci, Chevalier du Code !" {
		t.Fatalf("expected stored message, got %q", body.GeneratedMessage)
	}
	if body.Name != "Ada" {
		t.Fatalf("expected name echoed, got %q", body.Name)
	}
	if !strings.Contains(body.Description, "Agents de Support") {
		t.Fatalf("expected contact mission copy, got %q", body.Description)
	}
	if body.Year != time.Now().Year() {
		t.Fatalf("expected current year, got %d", body.Year)
	}
}

func TestConfirmationUnknownIDIsNotAnError(t *testing.T) {
	r, _ := setupRouter(t)

	resp := getConfirmation(r, "id=never-stored&mission=info")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := decodeResponse(t, resp)
	if body.GeneratedMessage != "" {
		t.Fatalf("expected no generated message, got %q", body.GeneratedMessage)
	}
	if raw := resp.Body.String(); strings.Contains(raw, "generatedMessage") {
		t.Fatalf("expected generatedMessage omitted from body: %s", raw)
	}
}

func TestConfirmationDefaults(t *testing.T) {
	r, _ := setupRouter(t)

	resp := getConfirmation(r, "")

	body := decodeResponse(t, resp)
	if body.Name != defaultName {
		t.Fatalf("expected default name, got %q", body.Name)
	}
	if body.Mission != mission.Soutien {
		t.Fatalf("expected default mission, got %q", body.Mission)
	}
	if !strings.Contains(body.Description, "Soutiens Essentiels") {
		t.Fatalf("expected fallback copy, got %q", body.Description)
	}
}

func TestConfirmationUnknownMissionFallsBack(t *testing.T) {
	r, _ := setupRouter(t)

	resp := getConfirmation(r, "mission=cartographie")

	body := decodeResponse(t, resp)
	if body.Mission != "cartographie" {
		t.Fatalf("expected requested mission echoed, got %q", body.Mission)
	}
	if !strings.Contains(body.Description, "Soutiens Essentiels") {
		t.Fatalf("expected fallback copy, got %q", body.Description)
	}
}

func TestConfirmationDonCopyUsesName(t *testing.T) {
	r, _ := setupRouter(t)

	resp := getConfirmation(r, "name=Ada&mission=don")

	body := decodeResponse(t, resp)
	if !strings.Contains(body.Description, "Ada") {
		t.Fatalf("expected name inside don copy, got %q", body.Description)
	}
	if strings.Contains(body.Description, "{name}") {
		t.Fatalf("expected {name} token substituted, got %q", body.Description)
	}
}
