// Package server exposes the character graph and its study orders over HTTP.
//
// The API serves the parsed character set, computed orderings (fresh per
// request, since ordering consumes a graph), and a persistent collection of
// saved orderings. Responses are JSON; errors carry the machine-readable
// codes from pkg/errors.
package server

import (
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kyodera/kanjipath/pkg/cache"
	"github.com/kyodera/kanjipath/pkg/dict"
	"github.com/kyodera/kanjipath/pkg/kanji"
	"github.com/kyodera/kanjipath/pkg/store"
)

// orderTTL bounds how long computed orderings are served from cache.
// Scores only change when the dictionary file does, so this is generous.
const orderTTL = time.Hour

// Config assembles a server from its collaborators.
type Config struct {
	Records []kanji.Record
	Terms   []dict.Term
	Store   store.Store
	Cache   cache.Cache
	Logger  *log.Logger
}

// Server handles the kanjipath HTTP API.
type Server struct {
	records []kanji.Record
	scores  map[rune]int
	byRune  map[rune]kanji.Record
	store   store.Store
	cache   cache.Cache
	logger  *log.Logger
}

// New creates a server. A nil cache disables caching; a nil store is
// replaced with an in-memory one.
func New(cfg Config) *Server {
	s := &Server{
		records: cfg.Records,
		scores:  dict.Popularity(cfg.Terms),
		byRune:  make(map[rune]kanji.Record, len(cfg.Records)),
		store:   cfg.Store,
		cache:   cfg.Cache,
		logger:  cfg.Logger,
	}
	for _, rec := range cfg.Records {
		s.byRune[rec.Character.Writing] = rec
	}
	if s.store == nil {
		s.store = store.NewMemoryStore()
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/characters", s.handleCharacters)
		r.Get("/characters/{char}", s.handleCharacter)
		r.Get("/order", s.handleOrder)
		r.Post("/orderings", s.handleSaveOrdering)
		r.Get("/orderings", s.handleListOrderings)
		r.Get("/orderings/{id}", s.handleGetOrdering)
		r.Delete("/orderings/{id}", s.handleDeleteOrdering)
	})

	return r
}

// logRequests logs method, path, and duration for every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
