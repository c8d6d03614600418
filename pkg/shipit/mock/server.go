// Package mock provides a fake Shipit API server for tests.
package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/tournevent/shipit/pkg/shipit"
)

// Call is one request received by the Server.
type Call struct {
	Method string
	// Path is the escaped request path.
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// DecodeBody unmarshals the recorded body into v.
func (c Call) DecodeBody(v any) error {
	return json.Unmarshal(c.Body, v)
}

type route struct {
	method   string
	segments []string
	handler  http.HandlerFunc
}

func (r route) matches(method string, segments []string) bool {
	if r.method != method || len(r.segments) != len(segments) {
		return false
	}
	for i, s := range r.segments {
		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			continue
		}
		if s != segments[i] {
			return false
		}
	}
	return true
}

// Server is an httptest server answering Shipit API routes. Routes are
// "METHOD /path" patterns where a {name} segment matches any one segment.
// The most recently registered matching route wins. Unmatched requests get
// a 404 error envelope.
type Server struct {
	mu             sync.RWMutex
	simulateErrors bool
	latency        time.Duration
	routes         []route
	calls          []Call
	srv            *httptest.Server
}

// NewServer starts a Server preloaded with canned responses for the
// common read and booking endpoints. Close it when done.
func NewServer() *Server {
	s := &Server{}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	s.registerDefaults()
	return s
}

func (s *Server) URL() string { return s.srv.URL }

func (s *Server) Close() { s.srv.Close() }

// Client returns an HTTP client wired to the server.
func (s *Server) Client() *http.Client { return s.srv.Client() }

// Connector returns a Connector pointed at the server.
func (s *Server) Connector(token string) *shipit.Connector {
	c, err := shipit.New(shipit.Config{
		Token:      token,
		BaseURL:    s.srv.URL,
		HTTPClient: s.srv.Client(),
	})
	if err != nil {
		panic(err)
	}
	return c
}

// SimulateErrors makes every request answer 500 with a MOCK_ERROR envelope
// while on is true.
func (s *Server) SimulateErrors(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulateErrors = on
}

// SimulateLatency delays every response by d.
func (s *Server) SimulateLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latency = d
}

// Handle registers h for pattern. An earlier handler for the same pattern
// is dropped, and the new one becomes the most recently registered route.
func (s *Server) Handle(method, pattern string, h http.HandlerFunc) {
	r := route{method: method, segments: split(pattern), handler: h}
	key := strings.Join(r.segments, "/")

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.routes[:0]
	for _, existing := range s.routes {
		if existing.method == method && strings.Join(existing.segments, "/") == key {
			continue
		}
		kept = append(kept, existing)
	}
	s.routes = append(kept, r)
}

// RespondJSON registers a fixed JSON response. body may be a string or
// []byte holding raw JSON, or any value to marshal.
func (s *Server) RespondJSON(method, pattern string, status int, body any) {
	payload := encode(body)
	s.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, payload)
	})
}

// Calls returns a copy of every request received so far.
func (s *Server) Calls() []Call {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// LastCall returns the most recent request.
func (s *Server) LastCall() (Call, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.calls) == 0 {
		return Call{}, false
	}
	return s.calls[len(s.calls)-1], true
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := r.URL.EscapedPath()

	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	var handler http.HandlerFunc
	segments := split(path)
	for i := len(s.routes) - 1; i >= 0; i-- {
		if s.routes[i].matches(r.Method, segments) {
			handler = s.routes[i].handler
			break
		}
	}
	latency, simulateErrors := s.latency, s.simulateErrors
	s.mu.Unlock()

	if latency > 0 {
		time.Sleep(latency)
	}

	if simulateErrors {
		writeJSON(w, http.StatusInternalServerError,
			encode(map[string]any{"code": "MOCK_ERROR", "message": "Simulated API error"}))
		return
	}

	if handler == nil {
		writeJSON(w, http.StatusNotFound, encode(map[string]any{"code": 404, "message": "Not Found"}))
		return
	}

	// Handlers may read the body again.
	r.Body = io.NopCloser(strings.NewReader(string(body)))
	handler(w, r)
}

func split(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

func encode(body any) []byte {
	switch b := body.(type) {
	case nil:
		return nil
	case []byte:
		return b
	case string:
		return []byte(b)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return payload
}

func writeJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if len(payload) > 0 {
		_, _ = w.Write(payload)
	}
}
