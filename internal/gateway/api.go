// ABOUTME: HTTP API handlers for queries, sessions, agents, and health
// ABOUTME: Validation failures are the only errors a well-formed client ever sees

package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// QueryRequest is the JSON request body for POST /query.
type QueryRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id,omitempty"`
}

// QueryResponse is the JSON response for POST /query.
type QueryResponse struct {
	Response   string `json:"response"`
	AgentUsed  string `json:"agent_used"`
	Confidence string `json:"confidence"`
	Timestamp  string `json:"timestamp"`
	SessionID  string `json:"session_id"`
}

// MessageResponse is one transcript entry in GET /session/{id}.
type MessageResponse struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Agent     string `json:"agent,omitempty"`
	CreatedAt string `json:"created_at"`
}

// SessionResponse is the JSON response for GET /session/{id}.
type SessionResponse struct {
	SessionID    string            `json:"session_id"`
	MessageCount int               `json:"message_count"`
	Messages     []MessageResponse `json:"messages"`
	LastAgent    string            `json:"last_agent,omitempty"`
	LastActive   string            `json:"last_active,omitempty"`
}

// ActiveSessionResponse is one row in GET /sessions/active.
type ActiveSessionResponse struct {
	SessionID    string `json:"session_id"`
	LastActive   string `json:"last_active"`
	MessageCount int    `json:"message_count"`
	LastAgent    string `json:"last_agent,omitempty"`
}

// ActiveSessionsResponse is the JSON response for GET /sessions/active.
type ActiveSessionsResponse struct {
	ActiveSessions int                     `json:"active_sessions"`
	Sessions       []ActiveSessionResponse `json:"sessions"`
}

// AgentResponse is one specialist in GET /agents.
type AgentResponse struct {
	ID        string `json:"id"`
	Expertise string `json:"expertise"`
}

// AgentsResponse is the JSON response for GET /agents.
type AgentsResponse struct {
	TotalAgents int             `json:"total_agents"`
	Agents      []AgentResponse `json:"agents"`
}

// handleQuery handles POST /query requests. Validation failures are 400s;
// everything past validation produces a 200 with at worst a low-confidence
// fallback answer.
func (g *Gateway) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	req, err := parseQueryRequest(r.Body)
	if err != nil {
		g.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := g.orchestrator.Handle(r.Context(), req.Query, req.SessionID)
	if err != nil {
		// Only cancellation reaches here; the client is not listening anymore.
		g.logger.Debug("query abandoned", "error", err)
		return
	}

	g.writeJSON(w, http.StatusOK, QueryResponse{
		Response:   result.Answer,
		AgentUsed:  string(result.Specialist),
		Confidence: result.Confidence,
		Timestamp:  result.Timestamp.Format(time.RFC3339),
		SessionID:  result.SessionID,
	})
}

// parseQueryRequest parses and validates a QueryRequest from the given reader.
// The query is trimmed, then bounded to 3-1000 characters.
func parseQueryRequest(r io.Reader) (*QueryRequest, error) {
	var req QueryRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, errors.New("invalid JSON body")
	}

	req.Query = strings.TrimSpace(req.Query)
	n := utf8.RuneCountInString(req.Query)
	if n < minQueryLen {
		return nil, errors.New("query must be at least 3 characters")
	}
	if n > maxQueryLen {
		return nil, errors.New("query must be at most 1000 characters")
	}

	return &req, nil
}

// handleHealth handles GET /health requests.
func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	g.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": ServiceName,
		"version": ServiceVersion,
		"agents":  len(specialist.All()),
		"cache_size": map[string]int{
			"weather":   g.weather.CacheLen(),
			"market":    g.market.CacheLen(),
			"knowledge": g.knowledge.CacheLen(),
		},
	})
}

// handleSession handles GET and DELETE /session/{id} requests.
func (g *Gateway) handleSession(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/session/")
	if id == "" || strings.Contains(id, "/") {
		g.sendJSONError(w, http.StatusNotFound, "session id required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		g.handleGetSession(w, r, id)
	case http.MethodDelete:
		g.handleClearSession(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (g *Gateway) handleGetSession(w http.ResponseWriter, r *http.Request, id string) {
	snap, err := g.store.Load(r.Context(), id)
	if err != nil {
		g.logger.Error("loading session", "session_id", id, "error", err)
		g.sendJSONError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	if snap.Empty() {
		g.sendJSONError(w, http.StatusNotFound, "session not found")
		return
	}

	resp := SessionResponse{
		SessionID:    id,
		MessageCount: len(snap.Messages),
		Messages:     make([]MessageResponse, 0, len(snap.Messages)),
		LastAgent:    string(snap.LastAgent),
	}
	if !snap.LastActive.IsZero() {
		resp.LastActive = snap.LastActive.Format(time.RFC3339)
	}
	for _, m := range snap.Messages {
		resp.Messages = append(resp.Messages, MessageResponse{
			Role:      m.Role,
			Content:   m.Content,
			Agent:     string(m.Agent),
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}

	g.writeJSON(w, http.StatusOK, resp)
}

func (g *Gateway) handleClearSession(w http.ResponseWriter, r *http.Request, id string) {
	if err := g.store.Clear(r.Context(), id); err != nil {
		g.logger.Error("clearing session", "session_id", id, "error", err)
		g.sendJSONError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}

	g.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Session " + id + " cleared successfully",
	})
}

// handleActiveSessions handles GET /sessions/active requests. Active means
// last activity inside the continuity idle window.
func (g *Gateway) handleActiveSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cutoff := g.now().Add(-g.config.Session.IdleWindow)
	active, err := g.store.ListActive(r.Context(), cutoff)
	if err != nil {
		g.logger.Error("listing active sessions", "error", err)
		g.sendJSONError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}

	resp := ActiveSessionsResponse{
		ActiveSessions: len(active),
		Sessions:       make([]ActiveSessionResponse, 0, len(active)),
	}
	for _, a := range active {
		resp.Sessions = append(resp.Sessions, ActiveSessionResponse{
			SessionID:    a.ID,
			LastActive:   a.LastActive.Format(time.RFC3339),
			MessageCount: a.MessageCount,
			LastAgent:    string(a.LastAgent),
		})
	}

	g.writeJSON(w, http.StatusOK, resp)
}

// handleAgents handles GET /agents requests, returning the specialist roster.
func (g *Gateway) handleAgents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	all := specialist.All()
	resp := AgentsResponse{
		TotalAgents: len(all),
		Agents:      make([]AgentResponse, 0, len(all)),
	}
	for _, id := range all {
		resp.Agents = append(resp.Agents, AgentResponse{
			ID:        string(id),
			Expertise: specialist.Descriptions[id],
		})
	}

	g.writeJSON(w, http.StatusOK, resp)
}

// handleLanding handles GET / requests with the rendered landing page.
func (g *Gateway) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		g.sendJSONError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(g.landingHTML)
}

// writeJSON writes a JSON response with the given status.
func (g *Gateway) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		g.logger.Error("encoding response", "error", err)
	}
}

// sendJSONError writes a JSON error response.
func (g *Gateway) sendJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
