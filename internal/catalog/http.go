package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MiniShop/pkg/kit"
)

const (
	msgFieldsRequired = "Name, price, and category are required."
	msgNotFound       = "Item not found."
	msgBadJSON        = "Invalid JSON body."
	msgServerError    = "Internal server error."
)

type Server struct {
	Store Store
	Log   *zap.Logger
	// Size is optional and tracks the catalog length after each mutation.
	Size prometheus.Gauge
}

func (s *Server) ListHandler() http.HandlerFunc   { return s.list }
func (s *Server) CreateHandler() http.HandlerFunc { return s.create }
func (s *Server) UpdateHandler() http.HandlerFunc { return s.update }
func (s *Server) DeleteHandler() http.HandlerFunc { return s.delete }

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context(), filterFromQuery(r))
	if err != nil {
		s.Log.Error("list products failed", zap.Error(err))
		kit.WriteText(w, http.StatusInternalServerError, msgServerError)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func filterFromQuery(r *http.Request) Filter {
	q := r.URL.Query()
	f := Filter{Category: q.Get("category")}
	if v := q.Get("minPrice"); v != "" {
		f.MinPrice = parseBound(v)
	}
	if v := q.Get("maxPrice"); v != "" {
		f.MaxPrice = parseBound(v)
	}
	return f
}

func parseBound(v string) *float64 {
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nan()
	}
	return &n
}

type createReq struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			kit.WriteText(w, http.StatusBadRequest, msgFieldsRequired)
			return
		}
		kit.WriteText(w, http.StatusBadRequest, msgBadJSON)
		return
	}

	if req.Name == "" || req.Price == 0 || req.Category == "" {
		kit.WriteText(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	p, err := s.Store.Create(r.Context(), req.Name, req.Price, req.Category)
	if err != nil {
		s.Log.Error("create product failed", zap.Error(err))
		kit.WriteText(w, http.StatusInternalServerError, msgServerError)
		return
	}
	s.observeSize(r)

	kit.WriteJSON(w, http.StatusCreated, p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		kit.WriteText(w, http.StatusNotFound, msgNotFound)
		return
	}

	var patch Patch
	if err := kit.DecodeJSON(w, r, &patch); err != nil {
		kit.WriteText(w, http.StatusBadRequest, msgBadJSON)
		return
	}

	p, err := s.Store.Update(r.Context(), id, patch)
	if errors.Is(err, ErrNotFound) {
		kit.WriteText(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		s.Log.Error("update product failed", zap.Error(err), zap.Int("id", id))
		kit.WriteText(w, http.StatusInternalServerError, msgServerError)
		return
	}

	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		kit.WriteText(w, http.StatusNotFound, msgNotFound)
		return
	}

	err := s.Store.Delete(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		kit.WriteText(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		s.Log.Error("delete product failed", zap.Error(err), zap.Int("id", id))
		kit.WriteText(w, http.StatusInternalServerError, msgServerError)
		return
	}
	s.observeSize(r)

	w.WriteHeader(http.StatusNoContent)
}

// pathID reports false for ids that are not integers; those match nothing.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

func (s *Server) observeSize(r *http.Request) {
	if s.Size == nil {
		return
	}
	all, err := s.Store.List(r.Context(), Filter{})
	if err != nil {
		s.Log.Warn("catalog size", zap.Error(err))
		return
	}
	s.Size.Set(float64(len(all)))
}
