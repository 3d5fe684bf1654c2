package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fishbill/internal/catalog/models"
	"fishbill/pkg/money"
	"fishbill/pkg/platform/httputil"
)

// Service is the catalog surface the handler exposes.
type Service interface {
	List(ctx context.Context) ([]*models.Party, error)
}

type Handler struct {
	catalog Service
	logger  *slog.Logger
}

func New(catalog Service, logger *slog.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// Register mounts the catalog routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/parties", h.handleList)
}

type partyResponse struct {
	Name    string `json:"name"`
	Balance string `json:"balance"`
	Contact string `json:"contact"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	parties, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list parties", "error", err)
		httputil.WriteError(w, err)
		return
	}

	out := make([]partyResponse, 0, len(parties))
	for _, p := range parties {
		out = append(out, partyResponse{
			Name:    p.Name,
			Balance: money.Format(p.Balance),
			Contact: p.Contact,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}
