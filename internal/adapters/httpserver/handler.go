// internal/adapters/httpserver/handler.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rkarim/chatcart/internal/application"
	"github.com/rkarim/chatcart/internal/domain"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sess, freshToken := s.resolveSession(r)
	if freshToken != "" {
		w.Header().Set(SessionTokenHeader, freshToken)
	}

	resp, err := s.chat.Handle(r.Context(), sess, req)
	if err != nil {
		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			s.log.WithError(err).Error("chat handling failed")
		}
		s.writeError(w, status, msg)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.cache.Ping(r.Context()); err != nil {
		s.writeError(w, http.StatusServiceUnavailable, "cache unavailable")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// resolveSession looks up the conversation named by the request token,
// creating a new session (and token) when the token is absent, expired or
// unknown.
func (s *Server) resolveSession(r *http.Request) (*application.Session, string) {
	if tok := r.Header.Get(SessionTokenHeader); tok != "" {
		if claims, err := s.tokens.Validate(tok); err == nil {
			if sess, ok := s.sessions.Get(claims.SessionID); ok {
				return sess, ""
			}
		}
	}
	sess := s.sessions.Create()
	token, err := s.tokens.Generate(sess.ID)
	if err != nil {
		s.log.WithError(err).Error("session token generation failed")
	}
	return sess, token
}

func statusFor(err error) (int, string) {
	var ve *domain.ValidationError
	var pe *domain.PreconditionError
	var ue *domain.UnavailableError
	var ge *domain.GatewayError
	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		return http.StatusUnauthorized, "Login required"
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Reason
	case errors.As(err, &pe):
		return http.StatusBadRequest, pe.Reason
	case errors.As(err, &ue):
		return http.StatusServiceUnavailable, ue.Reason
	case errors.As(err, &ge):
		return http.StatusBadGateway, "Billing error: " + ge.Err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("response encoding failed")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
