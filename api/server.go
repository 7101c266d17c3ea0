// Package api - thin HTTP layer over the quoting engine
// The API is ONLY responsible for input ingestion, engine invocation
// and output serialization. It NEVER computes prices.
package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vo-quote/core/cart"
	"vo-quote/core/catalog"
	"vo-quote/core/rate"
	"vo-quote/core/types"
	"vo-quote/internal/logging"
)

// SessionHeader carries the caller's cart session id. The server
// issues a fresh id when the header is absent and echoes it back.
const SessionHeader = "X-Session-ID"

// Server is the API server.
type Server struct {
	engine   *rate.Engine
	sessions *sessionStore
	mux      *http.ServeMux
	version  string
}

// NewServer creates an API server over the given engine.
func NewServer(engine *rate.Engine, version string) *Server {
	s := &Server{
		engine:   engine,
		sessions: newSessionStore(),
		mux:      http.NewServeMux(),
		version:  version,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /resolve", s.handleResolve)
	s.mux.HandleFunc("GET /cart", s.handleGetCart)
	s.mux.HandleFunc("POST /cart/items", s.handleAddItem)
	s.mux.HandleFunc("DELETE /cart/items/{id}", s.handleRemoveItem)

	// Supporting endpoints
	s.mux.HandleFunc("GET /catalog", s.handleCatalog)
	s.mux.HandleFunc("GET /catalog/{category}", s.handleCategory)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleResolve handles POST /resolve
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Category == "" || req.SubType == "" {
		s.writeError(w, "VALIDATION_ERROR", "category and sub_type are required", http.StatusBadRequest)
		return
	}

	entry := s.engine.Resolve(req.Category, req.SubType, types.Params(req.Params))
	if entry == nil {
		// Not an error: the engine declines until the selection is
		// complete.
		s.writeJSON(w, &ResolveResponse{Resolved: false}, http.StatusOK)
		return
	}

	resp := &ResolveResponse{Resolved: true, Rate: rateDTO(entry)}
	if cat, ok := catalog.ParseCategory(req.Category); ok {
		if card, found := s.engine.Catalog().Get(cat, req.SubType); found {
			resp.Notes = card.Notes
		}
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleAddItem handles POST /cart/items
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	entry := s.engine.Resolve(req.Category, req.SubType, types.Params(req.Params))
	if entry == nil {
		s.writeError(w, "UNRESOLVED", "selection does not resolve to a rate", http.StatusUnprocessableEntity)
		return
	}

	c := s.cartFor(w, r)
	item, added := c.Add(entry)
	if !added {
		s.writeError(w, "NOT_ADDABLE", "informational rates cannot be added to a quote", http.StatusUnprocessableEntity)
		return
	}

	s.writeJSON(w, &AddItemResponse{Item: itemDTO(item), Total: totalDTO(c.Total())}, http.StatusCreated)
}

// handleGetCart handles GET /cart
func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	c := s.cartFor(w, r)

	items := c.Items()
	resp := &CartResponse{
		Items: make([]ItemDTO, 0, len(items)),
		Total: totalDTO(c.Total()),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, itemDTO(item))
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleRemoveItem handles DELETE /cart/items/{id}
func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	c := s.cartFor(w, r)
	if !c.Remove(r.PathValue("id")) {
		s.writeError(w, "NOT_FOUND", "no cart item with that id", http.StatusNotFound)
		return
	}
	s.writeJSON(w, &CartResponse{Items: cartItemDTOs(c), Total: totalDTO(c.Total())}, http.StatusOK)
}

// handleCatalog handles GET /catalog
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	card := s.engine.Catalog()
	resp := &CatalogResponse{}
	for _, cat := range card.Categories() {
		resp.Categories = append(resp.Categories, categoryDTO(card, cat))
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleCategory handles GET /catalog/{category}
func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	cat, ok := catalog.ParseCategory(r.PathValue("category"))
	if !ok {
		s.writeError(w, "NOT_FOUND", "unknown category", http.StatusNotFound)
		return
	}
	s.writeJSON(w, categoryDTO(s.engine.Catalog(), cat), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "vo-quote",
	}, http.StatusOK)
}

// cartFor returns the cart for the request session, creating both the
// session and the cart on first touch. The issued id is echoed so the
// caller can keep it.
func (s *Server) cartFor(w http.ResponseWriter, r *http.Request) *cart.Cart {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(SessionHeader, id)
	return s.sessions.cart(id)
}

func cartItemDTOs(c *cart.Cart) []ItemDTO {
	items := c.Items()
	out := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, itemDTO(item))
	}
	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server.
func (s *Server) ListenAndServe(addr string) error {
	logging.Info("starting quote API", zap.String("addr", addr))
	return http.ListenAndServe(addr, s)
}

// sessionStore keeps one in-memory cart per session id. Nothing is
// persisted; a restart clears every quote.
type sessionStore struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

func newSessionStore() *sessionStore {
	return &sessionStore{carts: make(map[string]*cart.Cart)}
}

func (s *sessionStore) cart(id string) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		c = cart.New()
		s.carts[id] = c
	}
	return c
}
