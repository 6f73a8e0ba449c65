package cart

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"MiniShop/internal/auth"
	"MiniShop/pkg/kit"
)

const (
	msgAdded       = "Item added to cart successfully."
	msgBadJSON     = "Invalid JSON body."
	msgServerError = "Internal server error."
)

type Server struct {
	Recorder Recorder
	Log      *zap.Logger
}

type addReq struct {
	ItemID   any `json:"itemId"`
	Quantity any `json:"quantity"`
}

func (s *Server) AddHandler() http.HandlerFunc { return s.add }

// add does not check the item against the catalog.
func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req addReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteText(w, http.StatusBadRequest, msgBadJSON)
		return
	}

	a := Action{
		ID:       uuid.NewString(),
		Username: claims.Name,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		At:       time.Now().UTC(),
	}
	if err := s.Recorder.Record(r.Context(), a); err != nil {
		s.Log.Error("record cart action", zap.Error(err), zap.String("action_id", a.ID))
		kit.WriteText(w, http.StatusInternalServerError, msgServerError)
		return
	}

	kit.WriteText(w, http.StatusOK, msgAdded)
}
