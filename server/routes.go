//go:build !js

package main

import (
	"embed"
	"encoding/json"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/yaml.v3"

	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/server/views"
	"github.com/simukka/henshin-strike/theme"
)

//go:embed static/*
var embeddedStatic embed.FS

// Server serves the browser build and a few read-only JSON endpoints.
type Server struct {
	Tuning    *config.Tuning
	Themes    *theme.Provider
	StaticDir string
	// Script is the URL of the compiled game.
	Script string
}

// themeInfo is the public summary of a theme.
type themeInfo struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Default bool   `json:"default"`
}

// Routes builds the router.
func (s *Server) Routes() (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	staticFS, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		return nil, err
	}
	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(staticFS))))

	r.Get("/", s.index)
	r.Get("/index.html", s.index)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.health)
		r.Get("/themes", s.themes)
		r.Get("/tuning", s.tuning)
	})

	// Everything else, the compiled game included, comes from disk.
	r.NotFound(http.FileServer(http.Dir(s.StaticDir)).ServeHTTP)
	return r, nil
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	render(w, r, views.Index(views.Page{
		Title:  "Henshin Strike",
		Width:  int(s.Tuning.Canvas.Width),
		Height: int(s.Tuning.Canvas.Height),
		Lives:  s.Tuning.Lives,
		Script: s.Script,
	}))
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) themes(w http.ResponseWriter, r *http.Request) {
	def := s.Themes.Default()
	all := s.Themes.All()
	out := make([]themeInfo, 0, len(all))
	for _, t := range all {
		out = append(out, themeInfo{
			Key:     t.Key,
			Name:    t.Name,
			Tagline: t.Tagline,
			Default: def != nil && def.Key == t.Key,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// tuning returns the active gameplay constants as YAML, in the same shape a
// -config override file takes.
func (s *Server) tuning(w http.ResponseWriter, r *http.Request) {
	data, err := yaml.Marshal(s.Tuning)
	if err != nil {
		http.Error(w, "failed to encode tuning", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(data)
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
