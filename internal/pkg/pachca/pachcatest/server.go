// Package pachcatest provides an in-memory fake of the workspace api for tests.
package pachcatest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/ZertGraf/pachca-tags/internal/domain"
	"github.com/go-chi/chi/v5"
)

const Token = "test-token"

type Call struct {
	Method string
	Path   string
	Query  string
	Status int
}

type Server struct {
	*httptest.Server

	mu        sync.Mutex
	tags      []domain.Tag
	users     []domain.User
	nextTagID int64
	calls     []Call

	// MaxPer caps the users page size like a server with its own limit.
	MaxPer int

	// fault injection, zero means normal behavior
	TagsStatus   int
	PageStatus   map[int]int
	CreateStatus map[string]int
	UpdateStatus map[int64]int
}

func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		nextTagID:    1,
		PageStatus:   map[int]int{},
		CreateStatus: map[string]int{},
		UpdateStatus: map[int64]int{},
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// URL of the api root, as a client base url.
func (s *Server) BaseURL() string {
	return s.Server.URL + "/api/shared/v1"
}

func (s *Server) AddTag(name string) domain.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addTagLocked(name)
}

func (s *Server) addTagLocked(name string) domain.Tag {
	tag := domain.Tag{ID: s.nextTagID, Name: name}
	s.nextTagID++
	s.tags = append(s.tags, tag)
	return tag
}

// SetNextTagID controls the id given to the next created tag.
func (s *Server) SetNextTagID(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTagID = id
}

func (s *Server) AddUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = int64(len(s.users) + 1)
	}
	s.users = append(s.users, u)
}

// AddUsers seeds n users named user<i>@example.org.
func (s *Server) AddUsers(n int) {
	for i := 1; i <= n; i++ {
		s.AddUser(domain.User{ID: int64(i), Email: "user" + strconv.Itoa(i) + "@example.org"})
	}
}

func (s *Server) User(id int64) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Server) Tags() []domain.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Tag(nil), s.tags...)
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CountCalls counts recorded calls with the method whose path starts with prefix.
func (s *Server) CountCalls(method, prefix string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && strings.HasPrefix(c.Path, prefix) {
			n++
		}
	}
	return n
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.recordCalls)
	r.Use(recovery)
	r.Use(bearerAuth)

	r.Route("/api/shared/v1", func(r chi.Router) {
		r.Get("/group_tags", s.listTags)
		r.Post("/group_tags", s.createTag)
		r.Get("/users", s.listUsers)
		r.Get("/users/{id}", s.getUser)
		r.Put("/users/{id}", s.updateUser)
	})

	return r
}

func (s *Server) listTags(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.TagsStatus != 0 {
		writeJSON(w, s.TagsStatus, map[string]any{"errors": []string{"forced failure"}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": s.tags})
}

func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GroupTag struct {
			Name string `json:"name"`
		} `json:"group_tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": []string{"invalid body"}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := req.GroupTag.Name
	if status, ok := s.CreateStatus[name]; ok {
		writeJSON(w, status, map[string]any{"errors": []string{"forced failure"}})
		return
	}
	for _, t := range s.tags {
		if t.Name == name {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"errors": []map[string]string{{"key": "name", "value": "has already been taken"}},
			})
			return
		}
	}

	tag := s.addTagLocked(name)
	writeJSON(w, http.StatusCreated, map[string]any{"data": tag})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	per, _ := strconv.Atoi(r.URL.Query().Get("per"))
	if page < 1 {
		page = 1
	}
	if per < 1 {
		per = 50
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.MaxPer > 0 && per > s.MaxPer {
		per = s.MaxPer
	}
	if status, ok := s.PageStatus[page]; ok {
		writeJSON(w, status, map[string]any{"errors": []string{"forced failure"}})
		return
	}

	start := (page - 1) * per
	if start > len(s.users) {
		start = len(s.users)
	}
	end := start + per
	if end > len(s.users) {
		end = len(s.users)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": s.users[start:end]})
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			writeJSON(w, http.StatusOK, map[string]any{"data": u})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"errors": []string{"not found"}})
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	var req struct {
		User struct {
			ListTags []string `json:"list_tags"`
		} `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": []string{"invalid body"}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if status, ok := s.UpdateStatus[id]; ok {
		writeJSON(w, status, map[string]any{"errors": []string{"forced failure"}})
		return
	}
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].ListTags = req.User.ListTags
			writeJSON(w, http.StatusOK, map[string]any{"data": s.users[i]})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"errors": []string{"not found"}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
