// Package api - HTTP surface tests
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vo-quote/core/catalog"
	"vo-quote/core/rate"
)

func newTestServer() *Server {
	return NewServer(rate.NewEngine(catalog.Default()), "test")
}

func doJSON(t *testing.T, s *Server, method, path string, body any, session string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return out
}

// TestHealth checks the liveness endpoint.
func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/health", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode[map[string]any](t, rec)
	if body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
}

// TestResolveEndpoint resolves a term lookup over the wire.
func TestResolveEndpoint(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/resolve", ResolveRequest{
		Category: "radio",
		SubType:  "Local – Regional (Terrestrial)",
		Params:   map[string]any{"term": "1 Year"},
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	resp := decode[ResolveResponse](t, rec)
	if !resp.Resolved || resp.Rate == nil {
		t.Fatalf("response = %+v, want resolved", resp)
	}
	if resp.Rate.Low != "900" || resp.Rate.High != "1500" {
		t.Errorf("bounds = %s / %s", resp.Rate.Low, resp.Rate.High)
	}
	if resp.Rate.Text != "$900–$1,500" {
		t.Errorf("text = %q", resp.Rate.Text)
	}
}

// TestResolveDeclineIsNotAnError returns 200 with resolved=false when
// the selection is incomplete.
func TestResolveDeclineIsNotAnError(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/resolve", ResolveRequest{
		Category: "radio",
		SubType:  "Local – Regional (Terrestrial)",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[ResolveResponse](t, rec)
	if resp.Resolved || resp.Rate != nil {
		t.Errorf("response = %+v, want unresolved", resp)
	}
}

// TestResolveNonFiniteParam proves hostile numeric strings cannot crash
// the handler; they floor like any other malformed quantity.
func TestResolveNonFiniteParam(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/resolve", ResolveRequest{
		Category: "digital_visual",
		SubType:  "Digital Tags",
		Params:   map[string]any{"numberOfTags": "NaN"},
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	resp := decode[ResolveResponse](t, rec)
	if !resp.Resolved || resp.Rate == nil {
		t.Fatalf("response = %+v, want resolved at the floor", resp)
	}
	if resp.Rate.Low != "175" || resp.Rate.High != "225" {
		t.Errorf("bounds = %s / %s, want the one-tag floor", resp.Rate.Low, resp.Rate.High)
	}
}

// TestResolveValidation rejects requests without a selection.
func TestResolveValidation(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/resolve", ResolveRequest{}, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestCartFlow adds, lists and removes quote lines within one session.
func TestCartFlow(t *testing.T) {
	s := newTestServer()

	rec := doJSON(t, s, http.MethodPost, "/cart/items", ResolveRequest{
		Category: "digital_visual",
		SubType:  "Digital Tags",
		Params:   map[string]any{"numberOfTags": 3},
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d, body %s", rec.Code, rec.Body)
	}
	session := rec.Header().Get(SessionHeader)
	if session == "" {
		t.Fatal("no session id issued")
	}
	added := decode[AddItemResponse](t, rec)
	if added.Total.Text != "$525–$675" {
		t.Errorf("total after add = %q", added.Total.Text)
	}

	rec = doJSON(t, s, http.MethodPost, "/cart/items", ResolveRequest{
		Category: "radio",
		SubType:  "Local – Regional (Terrestrial)",
		Params:   map[string]any{"term": "1 Year"},
	}, session)
	if rec.Code != http.StatusCreated {
		t.Fatalf("second add status = %d", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/cart", nil, session)
	cartResp := decode[CartResponse](t, rec)
	if len(cartResp.Items) != 2 {
		t.Fatalf("cart has %d items, want 2", len(cartResp.Items))
	}
	if cartResp.Total.Text != "$1,425–$2,175" {
		t.Errorf("cart total = %q", cartResp.Total.Text)
	}

	rec = doJSON(t, s, http.MethodDelete, "/cart/items/"+added.Item.ID, nil, session)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove status = %d", rec.Code)
	}
	afterRemove := decode[CartResponse](t, rec)
	if len(afterRemove.Items) != 1 {
		t.Errorf("cart has %d items after remove, want 1", len(afterRemove.Items))
	}
	if afterRemove.Total.Text != "$900–$1,500" {
		t.Errorf("total after remove = %q", afterRemove.Total.Text)
	}
}

// TestCartSessionsAreIsolated proves two sessions never share a cart.
func TestCartSessionsAreIsolated(t *testing.T) {
	s := newTestServer()

	doJSON(t, s, http.MethodPost, "/cart/items", ResolveRequest{
		Category: "telephony",
		SubType:  "Voicemail Greeting",
		Params:   map[string]any{"type": "Business"},
	}, "session-a")

	rec := doJSON(t, s, http.MethodGet, "/cart", nil, "session-b")
	cartResp := decode[CartResponse](t, rec)
	if len(cartResp.Items) != 0 {
		t.Errorf("session-b sees %d items", len(cartResp.Items))
	}
	if cartResp.Total.Text != "$0–$0" {
		t.Errorf("empty total = %q, want the zero range", cartResp.Total.Text)
	}
}

// TestAddInformationalRejected keeps guidance rates out of carts.
func TestAddInformationalRejected(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/cart/items", ResolveRequest{
		Category: "tv",
		SubType:  "Mnemonics",
	}, "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	body := decode[map[string]map[string]string](t, rec)
	if body["error"]["code"] != "NOT_ADDABLE" {
		t.Errorf("error code = %q", body["error"]["code"])
	}
}

// TestAddUnresolvedRejected distinguishes unresolvable selections from
// informational ones.
func TestAddUnresolvedRejected(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/cart/items", ResolveRequest{
		Category: "radio",
		SubType:  "No Such Service",
	}, "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	body := decode[map[string]map[string]string](t, rec)
	if body["error"]["code"] != "UNRESOLVED" {
		t.Errorf("error code = %q", body["error"]["code"])
	}
}

// TestCatalogEndpoints lists the card vocabulary.
func TestCatalogEndpoints(t *testing.T) {
	s := newTestServer()

	rec := doJSON(t, s, http.MethodGet, "/catalog", nil, "")
	listing := decode[CatalogResponse](t, rec)
	if len(listing.Categories) == 0 {
		t.Fatal("no categories listed")
	}
	if listing.Categories[0].Key != "radio" {
		t.Errorf("first category = %q, want radio", listing.Categories[0].Key)
	}

	rec = doJSON(t, s, http.MethodGet, "/catalog/video_games", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("category status = %d", rec.Code)
	}
	cat := decode[CategoryDTO](t, rec)
	if cat.Label != "Video Games" || len(cat.SubTypes) == 0 {
		t.Errorf("category = %+v", cat)
	}

	rec = doJSON(t, s, http.MethodGet, "/catalog/billboards", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown category status = %d, want 404", rec.Code)
	}
}

// TestRemoveUnknownItem returns 404 for ids the session never held.
func TestRemoveUnknownItem(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodDelete, "/cart/items/nope", nil, "session-x")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
