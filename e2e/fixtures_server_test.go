//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// fakeActivity is one listing entry as the server sends it
type fakeActivity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// fakeServer is a minimal activities service backing one app instance
type fakeServer struct {
	*httptest.Server

	mu    sync.Mutex
	order []string
	items map[string]*fakeActivity
}

// defaultActivities seeds the server the way a fresh school would look
func defaultActivities() ([]string, map[string]fakeActivity) {
	order := []string{"Chess Club", "Programming Class", "Soccer Team"}
	return order, map[string]fakeActivity{
		"Chess Club": {
			Description: "Learn strategies and compete in chess tournaments",
			Schedule:    "Fridays, 3:30 PM - 5:00 PM", MaxParticipants: 12,
			Participants: []string{"michael@mergington.edu"},
		},
		"Programming Class": {
			Description: "Learn programming fundamentals and build software projects",
			Schedule:    "Tuesdays and Thursdays, 3:30 PM - 4:30 PM", MaxParticipants: 20,
		},
		"Soccer Team": {
			Description: "Join the school soccer team and compete in matches",
			Schedule:    "Tuesdays and Thursdays, 4:00 PM - 5:30 PM", MaxParticipants: 22,
			Participants: []string{"liam@mergington.edu"},
		},
	}
}

func newFakeServer(order []string, activities map[string]fakeActivity) *fakeServer {
	s := &fakeServer{items: make(map[string]*fakeActivity)}
	for _, name := range order {
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

func (s *fakeServer) participants(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.items[name].Participants...)
}

func (s *fakeServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.URL.Path == "/activities" {
		var b strings.Builder
		b.WriteString("{")
		for i, name := range s.order {
			if i > 0 {
				b.WriteString(",")
			}
			key, _ := json.Marshal(name)
			val, _ := json.Marshal(s.items[name])
			fmt.Fprintf(&b, "%s:%s", key, val)
		}
		b.WriteString("}")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(b.String()))
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx < 0 {
		reply(w, http.StatusNotFound, "detail", "Not Found")
		return
	}
	name, action := rest[:idx], rest[idx+1:]
	email := r.URL.Query().Get("email")
	a, ok := s.items[name]
	if !ok {
		reply(w, http.StatusNotFound, "detail", "Activity not found")
		return
	}

	switch action {
	case "signup":
		for _, p := range a.Participants {
			if p == email {
				reply(w, http.StatusBadRequest, "detail", "Student is already signed up")
				return
			}
		}
		a.Participants = append(a.Participants, email)
		reply(w, http.StatusOK, "message", fmt.Sprintf("Signed up %s for %s", email, name))
	case "unregister":
		for i, p := range a.Participants {
			if p == email {
				a.Participants = append(a.Participants[:i:i], a.Participants[i+1:]...)
				reply(w, http.StatusOK, "message", fmt.Sprintf("Unregistered %s from %s", email, name))
				return
			}
		}
		reply(w, http.StatusBadRequest, "detail", "Student is not signed up for this activity")
	default:
		reply(w, http.StatusNotFound, "detail", "Not Found")
	}
}

func reply(w http.ResponseWriter, status int, field, text string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{field: text})
}

// CreateTestWorkspace creates an isolated working directory with a config file
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir

	config := fmt.Sprintf("version = 1\nlog_file = %q\nstatus_timeout = \"30s\"\n",
		filepath.Join(tmpDir, "activityboard.log"))
	if err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(config), 0644); err != nil {
		return "", err
	}
	return tmpDir, nil
}

// StartAgainst creates a workspace and launches the app against server
func (tf *TUITestFramework) StartAgainst(server *fakeServer) error {
	workspace, err := tf.CreateTestWorkspace()
	if err != nil {
		return err
	}
	return tf.StartApp("--config", filepath.Join(workspace, "config.toml"), "--url", server.URL)
}
