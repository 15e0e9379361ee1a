package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"quotewiz/internal/quote"
	"quotewiz/internal/store"
)

type stubGenerator struct {
	spec quote.QuoteSpec
	err  error
}

func (g *stubGenerator) GenerateQuoteSpec(ctx context.Context, input quote.GenerateInput) (quote.QuoteSpec, error) {
	return g.spec, g.err
}

func (g *stubGenerator) GenerateImage(ctx context.Context, prompt string) string {
	return "https://img.example/mock.png"
}

type stubAdviser struct {
	resp quote.AssistResponse
	keys []string
}

func (a *stubAdviser) Suggest(ctx context.Context, sessionKey string, req quote.AssistRequest) quote.AssistResponse {
	a.keys = append(a.keys, sessionKey)
	return a.resp
}

func testServer(t *testing.T, gen QuoteGenerator, adv Adviser) *Server {
	t.Helper()
	return New(gen, adv, store.NewStore(t.TempDir()), zerolog.Nop())
}

func validQuoteBody() []byte {
	body, _ := json.Marshal(map[string]any{
		"type":    "Website",
		"vibe":    "Clean & Simple",
		"layout":  "hero-features",
		"modules": []string{"blog", "shop"},
		"theme":   "light",
		"cta":     "Start Now",
	})
	return body
}

func postJSON(router http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := testServer(t, &stubGenerator{}, &stubAdviser{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestQuoteSuccess(t *testing.T) {
	gen := &stubGenerator{spec: quote.QuoteSpec{Title: "Candleworks", CTA: "Shop Now", ImagePrompt: "mock"}}
	s := testServer(t, gen, &stubAdviser{})

	w := postJSON(s.Router(), "/api/quote", validQuoteBody())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Spec     map[string]any `json:"spec"`
		ImageURL string         `json:"imageUrl"`
		Usage    struct {
			InputTokens   int     `json:"inputTokens"`
			EstimatedCost float64 `json:"estimatedCost"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Spec["title"] != "Candleworks" {
		t.Errorf("spec.title = %v", resp.Spec["title"])
	}
	if resp.ImageURL != "https://img.example/mock.png" {
		t.Errorf("imageUrl = %q", resp.ImageURL)
	}
	if resp.Usage.InputTokens == 0 || resp.Usage.EstimatedCost == 0 {
		t.Errorf("usage not populated: %+v", resp.Usage)
	}
}

func TestRecentEndpoint(t *testing.T) {
	st := store.NewStore(t.TempDir())
	if _, err := st.RecordResult(store.Result{Spec: quote.QuoteSpec{Title: "Candleworks"}, Cost: 0.05}); err != nil {
		t.Fatal(err)
	}
	s := New(&stubGenerator{}, &stubAdviser{}, st, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/recent", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Candleworks") {
		t.Errorf("recent endpoint: %d %s", w.Code, w.Body.String())
	}
}

func TestQuoteOverBudget(t *testing.T) {
	s := testServer(t, &stubGenerator{}, &stubAdviser{})

	body, _ := json.Marshal(map[string]any{
		"type": "Website",
		"vibe": strings.Repeat("sparkly ", 2000),
	})
	w := postJSON(s.Router(), "/api/quote", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "estimatedCost") {
		t.Errorf("over-budget response should carry the estimate: %s", w.Body.String())
	}
}

func TestQuoteMissingFields(t *testing.T) {
	s := testServer(t, &stubGenerator{}, &stubAdviser{})

	body, _ := json.Marshal(map[string]any{"vibe": "Clean & Simple"})
	if w := postJSON(s.Router(), "/api/quote", body); w.Code != http.StatusBadRequest {
		t.Errorf("missing type: status = %d, want 400", w.Code)
	}
	if w := postJSON(s.Router(), "/api/quote", []byte("{not json")); w.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", w.Code)
	}
}

func TestQuoteKillSwitch(t *testing.T) {
	t.Setenv(DisableEnvVar, "1")
	s := testServer(t, &stubGenerator{}, &stubAdviser{})

	if w := postJSON(s.Router(), "/api/quote", validQuoteBody()); w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestQuoteNoCredential(t *testing.T) {
	s := testServer(t, nil, nil)

	if w := postJSON(s.Router(), "/api/quote", validQuoteBody()); w.Code != http.StatusInternalServerError {
		t.Errorf("quote status = %d, want 500", w.Code)
	}
	if w := postJSON(s.Router(), "/api/assist", []byte(`{"step":"goals"}`)); w.Code != http.StatusInternalServerError {
		t.Errorf("assist status = %d, want 500", w.Code)
	}
}

func TestQuoteGenerationError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider exploded")}
	s := testServer(t, gen, &stubAdviser{})

	w := postJSON(s.Router(), "/api/quote", validQuoteBody())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "provider exploded") {
		t.Errorf("error details missing: %s", w.Body.String())
	}
}

func TestAssist(t *testing.T) {
	adv := &stubAdviser{resp: quote.AssistResponse{Suggestions: []string{"Add a blog"}}}
	s := testServer(t, &stubGenerator{}, adv)

	w := postJSON(s.Router(), "/api/assist", []byte(`{"step":"features","projectType":"Website"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Add a blog") {
		t.Errorf("body = %s", w.Body.String())
	}

	// Garbage body still answers 200 with an empty advisory.
	w = postJSON(s.Router(), "/api/assist", []byte("{broken"))
	if w.Code != http.StatusOK || w.Body.String() != "{}" {
		t.Errorf("garbage body: %d %s", w.Code, w.Body.String())
	}
}

func TestAssistScopesSessionPerClient(t *testing.T) {
	adv := &stubAdviser{}
	s := testServer(t, &stubGenerator{}, adv)
	router := s.Router()

	post := func(sessionID string) {
		req := httptest.NewRequest(http.MethodPost, "/api/assist", strings.NewReader(`{"step":"goals"}`))
		req.Header.Set("Content-Type", "application/json")
		if sessionID != "" {
			req.Header.Set(SessionIDHeader, sessionID)
		}
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	post("alpha")
	post("beta")
	post("alpha")
	post("")

	if len(adv.keys) != 4 {
		t.Fatalf("adviser saw %d calls, want 4", len(adv.keys))
	}
	if adv.keys[0] != "alpha" || adv.keys[1] != "beta" || adv.keys[2] != "alpha" {
		t.Errorf("session keys not passed through: %v", adv.keys[:3])
	}
	if adv.keys[3] == "" {
		t.Error("a client without a session header should fall back to a non-empty key")
	}
	if adv.keys[3] == "alpha" || adv.keys[3] == "beta" {
		t.Errorf("fallback key %q collides with an explicit session", adv.keys[3])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := testServer(t, &stubGenerator{}, &stubAdviser{})
	req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}
