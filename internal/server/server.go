// Package server exposes maze generation over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mazegen/internal/config"
	"mazegen/internal/ctxlog"
	"mazegen/internal/render"
	mazesim "mazegen/internal/sims/maze"
	pkgcore "mazegen/pkg/core"
	"mazegen/pkg/maze"
)

const (
	// MaxSide bounds the logical width and height a request may ask for.
	MaxSide = 512
	// MaxRooms bounds the placement attempts per room class.
	MaxRooms = 256
	// MaxRoomDim bounds the max_dim of either room class.
	MaxRoomDim = 64
)

// Server answers maze requests. Every request builds its own grid and
// RNG, so handlers share nothing mutable.
type Server struct {
	log     *slog.Logger
	presets map[string]*config.Preset
}

// New builds a server. presets may be nil.
func New(log *slog.Logger, presets map[string]*config.Preset) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log, presets: presets}
}

// Routes configures all routes and returns the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/maze", s.getMaze)
		r.Get("/mazes/{seed}", s.getMaze)
		r.Get("/presets", s.listPresets)
		r.Get("/presets/{name}", s.getPreset)
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.log.With("request_id", middleware.GetReqID(r.Context()))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(ctxlog.WithLogger(r.Context(), log)))
		log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) getMaze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if seed := chi.URLParam(r, "seed"); seed != "" {
		q.Set("seed", seed)
	}
	cfg, err := parseConfig(q)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	s.generate(w, r, cfg.Options(), cfg.Seed)
}

func (s *Server) listPresets(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	slices.Sort(names)
	respondJSON(w, r, http.StatusOK, map[string][]string{"presets": names})
}

func (s *Server) getPreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, ok := s.presets[name]
	if !ok {
		respondError(w, r, http.StatusNotFound, fmt.Sprintf("unknown preset %q", name))
		return
	}
	seed := p.Maze.Seed
	if v := r.URL.Query().Get("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "invalid seed")
			return
		}
		seed = parsed
	}
	s.generate(w, r, p.Options(), seed)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, opts maze.Options, seed int64) {
	log := ctxlog.FromContext(r.Context())
	if opts.Width > MaxSide || opts.Height > MaxSide {
		respondError(w, r, http.StatusBadRequest, fmt.Sprintf("maze is limited to %dx%d cells", MaxSide, MaxSide))
		return
	}
	seed = pkgcore.ResolveSeed(seed)
	opts.Logger = log
	res, err := maze.Generate(opts, pkgcore.NewRNG(seed))
	switch {
	case errors.Is(err, maze.ErrInvalidSize), errors.Is(err, maze.ErrInvalidOptions):
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Error("generate failed", "err", err)
		respondError(w, r, http.StatusInternalServerError, "generation failed")
		return
	}
	w.Header().Set("X-Maze-Seed", strconv.FormatInt(seed, 10))
	s.write(w, r, res, seed)
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, res *maze.Result, seed int64) {
	q := r.URL.Query()
	switch format := q.Get("format"); format {
	case "", "json":
		respondJSON(w, r, http.StatusOK, render.NewSummary(res, seed))
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(render.Text(res.Grid, q.Get("spaced") == "true")))
	case "codes":
		respondJSON(w, r, http.StatusOK, render.NewCodes(res.Grid))
	case "png":
		cell := 8
		if v := q.Get("cell"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 32 {
				respondError(w, r, http.StatusBadRequest, "cell must be between 1 and 32")
				return
			}
			cell = n
		}
		img := render.PaletteImage(res.Grid, cell, cell, mazesim.StatePalette())
		w.Header().Set("Content-Type", "image/png")
		if err := render.WritePNG(w, img); err != nil {
			ctxlog.FromContext(r.Context()).Warn("write png", "err", err)
		}
	default:
		respondError(w, r, http.StatusBadRequest, fmt.Sprintf("unknown format %q", format))
	}
}

// parseConfig reads sim-style keys from the query, rejecting bad values.
func parseConfig(q url.Values) (mazesim.Config, error) {
	cfg := mazesim.DefaultConfig()
	p := &cfg.Params
	ints := []struct {
		key   string
		dst   *int
		limit int
	}{
		{"w", &cfg.Width, 0},
		{"h", &cfg.Height, 0},
		{"rooms", &p.Rooms, MaxRooms},
		{"room_max_dim", &p.RoomMaxDim, MaxRoomDim},
		{"alt_rooms", &p.AltRooms, MaxRooms},
		{"alt_max_dim", &p.AltMaxDim, MaxRoomDim},
		{"max_depth", &p.MaxDepth, 0},
	}
	for _, f := range ints {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q", f.key, v)
		}
		if f.limit > 0 && n > f.limit {
			return cfg, fmt.Errorf("%s is limited to %d", f.key, f.limit)
		}
		*f.dst = n
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{"allow_intersection", &p.AllowIntersection},
		{"connect", &p.Connect},
	}
	for _, f := range bools {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q", f.key, v)
		}
		*f.dst = b
	}
	cfg.Seed = 0
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid seed %q", v)
		}
		cfg.Seed = n
	}
	return cfg, nil
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		ctxlog.FromContext(r.Context()).Warn("encode json", "err", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}
