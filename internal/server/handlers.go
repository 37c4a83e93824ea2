package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kyodera/kanjipath/pkg/cache"
	apperrors "github.com/kyodera/kanjipath/pkg/errors"
	"github.com/kyodera/kanjipath/pkg/graphio"
	"github.com/kyodera/kanjipath/pkg/kanji"
)

// characterDetail is the response shape for a single character lookup.
type characterDetail struct {
	graphio.Node
	Components []string `json:"components,omitempty"`
	Derived    []string `json:"derived,omitempty"`
	Score      int      `json:"score"`
}

func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	key := cache.Key("characters", len(s.records))
	if data, ok, _ := s.cache.Get(r.Context(), key); ok {
		writeRawJSON(w, http.StatusOK, data)
		return
	}

	g, err := kanji.BuildGraph(s.records)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "building graph"))
		return
	}
	out := graphio.FromGraph(g)

	data, err := json.Marshal(out)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encoding graph"))
		return
	}
	_ = s.cache.Set(r.Context(), key, data, orderTTL)
	writeRawJSON(w, http.StatusOK, data)
}

func (s *Server) handleCharacter(w http.ResponseWriter, r *http.Request) {
	param := []rune(chi.URLParam(r, "char"))
	if len(param) != 1 {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidPath, "expected a single character"))
		return
	}

	rec, ok := s.byRune[param[0]]
	if !ok {
		s.writeError(w, apperrors.New(apperrors.ErrCodeCharacterNotFound, "character %c not found", param[0]))
		return
	}

	detail := characterDetail{
		Node: graphio.Node{
			Writing:     string(rec.Character.Writing),
			Radical:     rec.Character.IsRadical,
			StrokeCount: rec.Character.StrokeCount,
			Meaning:     rec.Character.Meaning,
			Readings:    rec.Character.Readings,
			Note:        rec.Character.Note,
		},
		Score: s.scores[rec.Character.Writing],
	}
	for _, comp := range rec.Components {
		detail.Components = append(detail.Components, string(comp))
	}
	for _, other := range s.records {
		for _, comp := range other.Components {
			if comp == rec.Character.Writing {
				detail.Derived = append(detail.Derived, string(other.Character.Writing))
			}
		}
	}

	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	method := orderMethod(r)

	key := cache.Key("order", method, len(s.records))
	if data, ok, _ := s.cache.Get(r.Context(), key); ok {
		writeRawJSON(w, http.StatusOK, data)
		return
	}

	ord, err := s.computeOrdering(method)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := json.Marshal(ord)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encoding ordering"))
		return
	}
	_ = s.cache.Set(r.Context(), key, data, orderTTL)
	writeRawJSON(w, http.StatusOK, data)
}

func (s *Server) handleSaveOrdering(w http.ResponseWriter, r *http.Request) {
	ord, err := s.computeOrdering(orderMethod(r))
	if err != nil {
		s.writeError(w, err)
		return
	}

	saved, err := s.store.Save(r.Context(), ord)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "saving ordering"))
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListOrderings(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "listing orderings"))
		return
	}
	if list == nil {
		list = []graphio.Ordering{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetOrdering(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ord, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeOrderingNotFound, err, "ordering %s", id))
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

func (s *Server) handleDeleteOrdering(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeOrderingNotFound, err, "ordering %s", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// computeOrdering builds a fresh graph and orders it. Ordering consumes the
// graph (its node sequence becomes the order), so every request gets its
// own.
func (s *Server) computeOrdering(method string) (graphio.Ordering, error) {
	cmp, err := s.comparator(method)
	if err != nil {
		return graphio.Ordering{}, err
	}

	g, err := kanji.BuildGraph(s.records)
	if err != nil {
		return graphio.Ordering{}, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "building graph")
	}
	if err := g.OrderBy(cmp); err != nil {
		return graphio.Ordering{}, apperrors.Wrap(apperrors.ErrCodeIncompleteOrder, err, "ordering by %s", method)
	}
	return graphio.OrderingFrom(method, g), nil
}

func (s *Server) comparator(method string) (kanji.Comparator, error) {
	switch method {
	case "popularity":
		return kanji.ByPopularity(s.scores), nil
	case "descendants":
		return kanji.ByDescendants(), nil
	case "strokes":
		return kanji.ByStrokeCount(), nil
	case "none":
		return kanji.Unranked(), nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidMethod,
			"unknown method %q (want popularity, descendants, strokes, or none)", method)
	}
}

func orderMethod(r *http.Request) string {
	if m := r.URL.Query().Get("by"); m != "" {
		return m
	}
	return "popularity"
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := statusFor(code)

	var resp errorResponse
	resp.Error.Code = string(code)
	resp.Error.Message = apperrors.UserMessage(err)

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	writeJSON(w, status, resp)
}

func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidMethod, apperrors.ErrCodeInvalidPath, apperrors.ErrCodeInvalidGraph:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeCharacterNotFound, apperrors.ErrCodeOrderingNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
