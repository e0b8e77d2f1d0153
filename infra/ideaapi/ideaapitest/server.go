// Package ideaapitest provides an in-memory idea board API for tests.
package ideaapitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

// Request is one recorded call against the fake API.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   map[string]any // Decoded JSON body, nil for GETs
}

// Idea is the stored form of an idea.
type Idea struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author,omitempty"`
	Link        string    `json:"link,omitempty"`
	Tags        []string  `json:"tags"`
	Votes       int       `json:"votes"`
	Comments    int       `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
}

// Comment is the stored form of a comment.
type Comment struct {
	ID        int       `json:"id"`
	IdeaID    int       `json:"idea_id"`
	Author    string    `json:"author,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Server is an httptest server speaking the board API.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	nextID   int
	ideas    []Idea
	comments map[int][]Comment
	requests []Request
	failList bool
}

// New starts a fake board API. Callers must Close it.
func New() *Server {
	s := &Server{nextID: 1, comments: make(map[int][]Comment)}
	r := mux.NewRouter()
	r.HandleFunc("/api/ideas", s.listIdeas).Methods(http.MethodGet)
	r.HandleFunc("/api/ideas", s.createIdea).Methods(http.MethodPost)
	r.HandleFunc("/api/ideas/{id}", s.ideaDetail).Methods(http.MethodGet)
	r.HandleFunc("/api/votes", s.vote).Methods(http.MethodPost)
	r.HandleFunc("/api/comments", s.comment).Methods(http.MethodPost)
	s.Server = httptest.NewServer(s.record(r))
	return s
}

// AddIdea seeds an idea and returns its id.
func (s *Server) AddIdea(idea Idea) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertIdea(idea)
}

// FailList makes GET /api/ideas answer with an undecodable body.
func (s *Server) FailList(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failList = fail
}

// Requests returns a copy of every recorded request, oldest first.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// ResetRequests drops the recorded requests.
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// Idea returns a stored idea by id.
func (s *Server) Idea(id int) (Idea, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.ideas {
		if it.ID == id {
			return it, true
		}
	}
	return Idea{}, false
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
		}
		if r.Body != nil && r.Method != http.MethodGet {
			data, _ := io.ReadAll(r.Body)
			_ = r.Body.Close()
			var body map[string]any
			if json.Unmarshal(data, &body) == nil {
				req.Body = body
			}
			r.Body = io.NopCloser(bytes.NewReader(data))
		}
		s.mu.Lock()
		s.requests = append(s.requests, req)
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listIdeas(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failList {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
		return
	}

	var since time.Time
	switch r.URL.Query().Get("period") {
	case "week":
		since = time.Now().AddDate(0, 0, -7)
	case "month":
		since = time.Now().AddDate(0, -1, 0)
	}
	out := make([]Idea, 0, len(s.ideas))
	for _, it := range s.ideas {
		if it.CreatedAt.Before(since) {
			continue
		}
		out = append(out, it)
	}
	byComments := r.URL.Query().Get("sort") == "comments"
	sort.SliceStable(out, func(i, j int) bool {
		if byComments {
			return out[i].Comments > out[j].Comments
		}
		return out[i].Votes > out[j].Votes
	})
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createIdea(w http.ResponseWriter, r *http.Request) {
	var in Idea
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.mu.Lock()
	id := s.insertIdea(Idea{
		Title:       in.Title,
		Description: in.Description,
		Author:      in.Author,
		Link:        in.Link,
		Tags:        in.Tags,
	})
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (s *Server) ideaDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.ideas {
		if it.ID != id {
			continue
		}
		comments := append([]Comment{}, s.comments[id]...)
		writeJSON(w, http.StatusOK, struct {
			Idea
			CommentsList []Comment `json:"comments_list"`
		}{Idea: it, CommentsList: comments})
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

func (s *Server) vote(w http.ResponseWriter, r *http.Request) {
	var in struct {
		IdeaID int `json:"idea_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ideas {
		if s.ideas[i].ID == in.IdeaID {
			s.ideas[i].Votes++
			writeJSON(w, http.StatusOK, map[string]int{"votes": s.ideas[i].Votes})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

func (s *Server) comment(w http.ResponseWriter, r *http.Request) {
	var in Comment
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ideas {
		if s.ideas[i].ID != in.IdeaID {
			continue
		}
		c := Comment{
			ID:        s.nextID,
			IdeaID:    in.IdeaID,
			Author:    in.Author,
			Content:   in.Content,
			CreatedAt: time.Now().UTC(),
		}
		s.nextID++
		s.comments[in.IdeaID] = append(s.comments[in.IdeaID], c)
		s.ideas[i].Comments++
		writeJSON(w, http.StatusCreated, c)
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

func (s *Server) insertIdea(idea Idea) int {
	idea.ID = s.nextID
	s.nextID++
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = time.Now().UTC()
	}
	if idea.Tags == nil {
		idea.Tags = []string{}
	}
	s.ideas = append(s.ideas, idea)
	return idea.ID
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
