package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"fishbill/internal/billing/models"
	"fishbill/internal/document"
	"fishbill/internal/handoff"
	dErrors "fishbill/pkg/domain-errors"
	"fishbill/pkg/money"
	"fishbill/pkg/platform/httputil"
)

// Service is the billing surface the handler exposes.
type Service interface {
	Generate(ctx context.Context, draft models.DraftBill) (*models.Transaction, error)
	Get(ctx context.Context, billID uuid.UUID) (*models.Transaction, error)
	Document(ctx context.Context, billID uuid.UUID) (*document.Document, error)
	Handoff(ctx context.Context, billID uuid.UUID, userAgentString string) (*handoff.Plan, error)
	Messages(ctx context.Context, billID uuid.UUID) (map[string]string, error)
}

type Handler struct {
	billing Service
	logger  *slog.Logger
}

func New(billing Service, logger *slog.Logger) *Handler {
	return &Handler{billing: billing, logger: logger}
}

// Register mounts the billing routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/bills", h.handleGenerate)
	r.Get("/api/bills/{billID}", h.handleGet)
	r.Get("/api/bills/{billID}/document", h.handleDocument)
	r.Post("/api/bills/{billID}/handoff", h.handleHandoff)
}

// billResponse renders monetary fields as fixed two-decimal strings so
// clients never see float artifacts.
type billResponse struct {
	ID               uuid.UUID            `json:"id"`
	PartyName        string               `json:"party_name"`
	PartyContact     string               `json:"party_contact"`
	Item             string               `json:"item"`
	Quantity         string               `json:"quantity"`
	Rate             string               `json:"rate"`
	Amount           string               `json:"amount"`
	Payment          string               `json:"payment"`
	PriorBalance     string               `json:"prior_balance"`
	Remaining        string               `json:"remaining_balance"`
	Status           models.BalanceStatus `json:"status"`
	Date             string               `json:"date"`
	IssuerName       string               `json:"issuer_name"`
	DocumentFilename string               `json:"document_filename"`
}

func toBillResponse(tx *models.Transaction) billResponse {
	return billResponse{
		ID:               tx.ID,
		PartyName:        tx.PartyName,
		PartyContact:     tx.PartyContact,
		Item:             tx.Item,
		Quantity:         tx.Quantity.String(),
		Rate:             money.Format(tx.Rate),
		Amount:           money.Format(tx.Amount),
		Payment:          money.Format(tx.Payment),
		PriorBalance:     money.Format(tx.PriorBalance),
		Remaining:        money.Format(tx.Remaining),
		Status:           tx.Status,
		Date:             tx.DateString(),
		IssuerName:       tx.IssuerName,
		DocumentFilename: document.Filename(tx.PartyName, tx.Date),
	}
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var draft models.DraftBill
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	tx, err := h.billing.Generate(r.Context(), draft)
	if err != nil {
		h.logger.WarnContext(r.Context(), "bill generation rejected",
			"party", draft.PartyName,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toBillResponse(tx))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	billID, err := parseBillID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	tx, err := h.billing.Get(r.Context(), billID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toBillResponse(tx))
}

func (h *Handler) handleDocument(w http.ResponseWriter, r *http.Request) {
	billID, err := parseBillID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	doc, err := h.billing.Document(r.Context(), billID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Bytes); err != nil {
		h.logger.WarnContext(r.Context(), "document write interrupted", "error", err)
	}
}

type handoffResponse struct {
	Plan     *handoff.Plan     `json:"plan"`
	Messages map[string]string `json:"messages"`
}

func (h *Handler) handleHandoff(w http.ResponseWriter, r *http.Request) {
	billID, err := parseBillID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	plan, err := h.billing.Handoff(r.Context(), billID, r.UserAgent())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	messages, err := h.billing.Messages(r.Context(), billID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, handoffResponse{Plan: plan, Messages: messages})
}

func parseBillID(r *http.Request) (uuid.UUID, error) {
	billID, err := uuid.Parse(chi.URLParam(r, "billID"))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "bill id must be a uuid")
	}
	return billID, nil
}
