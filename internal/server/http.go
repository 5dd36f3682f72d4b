// Package server serves a live HTML preview of one markdown file so a
// browser can sit next to the terminal editor. The file is re-read and
// re-rendered on every request; a meta refresh keeps the page tracking
// edits.
package server

import (
	"log"
	"net/http"
	"os"

	"github.com/spf13/viper"

	"github.com/inkdraft/inkdraft/internal/render"
	"github.com/inkdraft/inkdraft/pkg/doc"
)

// Server renders one document path over HTTP.
type Server struct {
	cfg  *viper.Viper
	path string
	log  *log.Logger
}

func New(cfg *viper.Viper, path string, logger *log.Logger) *Server {
	return &Server{cfg: cfg, path: path, log: logger}
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/raw", s.handleRaw)
	mux.HandleFunc("/", s.handlePreview)
	return mux
}

// ListenAndServe runs the server on the configured address.
func (s *Server) ListenAndServe() error {
	addr := s.cfg.GetString("serve.http_addr")
	s.log.Printf("serving preview of %s on %s", s.path, addr)
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	text, err := s.read()
	if err != nil {
		http.Error(w, "failed to read document", http.StatusInternalServerError)
		return
	}
	d := doc.Document{Path: s.path, Text: text}
	body := render.HTMLOrError(text)
	page := render.Page(d.Title(), body, s.cfg.GetInt("serve.refresh_seconds"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	text, err := s.read()
	if err != nil {
		http.Error(w, "failed to read document", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

func (s *Server) read() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Printf("read %s: %v", s.path, err)
		return "", err
	}
	return string(b), nil
}
