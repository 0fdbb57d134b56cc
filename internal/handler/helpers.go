package handler

import (
	"encoding/json"
	"net/http"
	"regexp"

	"mariabakery-be/internal/session"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, message string, code int) {
	writeJSON(w, code, map[string]string{"error": message})
}

// sessionFrom resolves the caller's session from the X-Session-ID
// header. A missing header is a client bug, not an anonymous visit.
func (h *Handler) sessionFrom(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.Header.Get("X-Session-ID")
	if id == "" {
		writeJSONError(w, "X-Session-ID header is required", http.StatusBadRequest)
		return nil, false
	}
	return h.sessions.Get(id), true
}

func validDate(date string) bool {
	return dateRegex.MatchString(date)
}
