// Package apitest provides an in-memory activities service for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Activity mirrors the wire shape of one listing entry
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Server serves GET /activities, POST .../signup and DELETE .../unregister
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	order  []string
	items  map[string]*Activity
	failed bool
	hits   map[string]int
}

// NewServer starts a server seeded with the given activities in order
func NewServer(names []string, activities map[string]Activity) *Server {
	s := &Server{
		items: make(map[string]*Activity),
		hits:  make(map[string]int),
	}
	for _, name := range names {
		a := activities[name]
		if a.Participants == nil {
			a.Participants = []string{}
		}
		s.order = append(s.order, name)
		s.items[name] = &a
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// FailListing makes GET /activities answer 500 until reset
func (s *Server) FailListing(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = fail
}

// Hits returns how many requests reached the given method
func (s *Server) Hits(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[method]
}

// Participants returns a copy of the roster for name
func (s *Server) Participants(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.items[name]; ok {
		return append([]string(nil), a.Participants...)
	}
	return nil
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits[r.Method]++

	if r.URL.Path == "/activities" && r.Method == http.MethodGet {
		s.list(w)
		return
	}

	rest, ok := strings.CutPrefix(r.URL.Path, "/activities/")
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not Found"})
		return
	}
	idx := strings.LastIndex(rest, "/")
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not Found"})
		return
	}
	name, action := rest[:idx], rest[idx+1:]
	email := r.URL.Query().Get("email")

	a, exists := s.items[name]
	if !exists {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Activity not found"})
		return
	}

	switch {
	case action == "signup" && r.Method == http.MethodPost:
		for _, p := range a.Participants {
			if p == email {
				writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Already registered"})
				return
			}
		}
		a.Participants = append(a.Participants, email)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Signed up " + email + " for " + name})
	case action == "unregister" && r.Method == http.MethodDelete:
		for i, p := range a.Participants {
			if p == email {
				a.Participants = append(a.Participants[:i:i], a.Participants[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]string{"message": "Unregistered " + email + " from " + name})
				return
			}
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Student is not signed up for this activity"})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "Method Not Allowed"})
	}
}

// list writes the object by hand so key order follows s.order
func (s *Server) list(w http.ResponseWriter) {
	if s.failed {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	var b strings.Builder
	b.WriteString("{")
	for i, name := range s.order {
		if i > 0 {
			b.WriteString(",")
		}
		key, _ := json.Marshal(name)
		val, _ := json.Marshal(s.items[name])
		b.Write(key)
		b.WriteString(":")
		b.Write(val)
	}
	b.WriteString("}")
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(b.String()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
