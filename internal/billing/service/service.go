package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	catalogmodels "fishbill/internal/catalog/models"
	"fishbill/internal/billing/derive"
	"fishbill/internal/billing/models"
	"fishbill/internal/billing/store/artifact"
	"fishbill/internal/billing/validate"
	"fishbill/internal/document"
	"fishbill/internal/handoff"
	"fishbill/internal/platform/metrics"
	dErrors "fishbill/pkg/domain-errors"
	"fishbill/pkg/money"
	"fishbill/pkg/platform/audit"
	"fishbill/pkg/platform/sentinel"
)

// Catalog resolves the party selected on the form.
type Catalog interface {
	FindByName(ctx context.Context, name string) (*catalogmodels.Party, error)
}

// Renderer turns a finalized transaction into the printable artifact.
type Renderer interface {
	Render(tx *models.Transaction) (*document.Document, error)
}

// Service runs the billing flow: gate, derive, finalize, render, store,
// handoff. Finalized transactions live in memory for the session; only one
// submission is in flight at a time, but the maps are still guarded since
// handoff and download arrive on separate requests.
type Service struct {
	catalog   Catalog
	gate      *validate.Gate
	renderer  Renderer
	artifacts artifact.Store
	handoff   *handoff.Service
	publisher audit.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time

	mu    sync.RWMutex
	bills map[uuid.UUID]*models.Transaction
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(catalog Catalog, gate *validate.Gate, renderer Renderer, artifacts artifact.Store, ho *handoff.Service, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if gate == nil {
		return nil, fmt.Errorf("validation gate is required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if artifacts == nil {
		return nil, fmt.Errorf("artifact store is required")
	}
	if ho == nil {
		return nil, fmt.Errorf("handoff service is required")
	}

	svc := &Service{
		catalog:   catalog,
		gate:      gate,
		renderer:  renderer,
		artifacts: artifacts,
		handoff:   ho,
		logger:    slog.Default(),
		now:       time.Now,
		bills:     make(map[uuid.UUID]*models.Transaction),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Generate runs one submission end to end. The draft passes the gate, the
// party balance is snapshotted, derived fields are computed, and the PDF is
// rendered and stored. A render failure aborts only this submission: no
// transaction is kept and any prior artifact stays referenceable.
func (s *Service) Generate(ctx context.Context, draft models.DraftBill) (*models.Transaction, error) {
	checked, err := s.gate.Check(draft)
	if err != nil {
		return nil, err
	}

	party, err := s.catalog.FindByName(ctx, draft.PartyName)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeNotFound {
			return nil, dErrors.NewField(dErrors.CodeBadRequest, "party_name",
				fmt.Sprintf("unknown customer %q", draft.PartyName))
		}
		return nil, err
	}

	amount := derive.Amount(checked.Quantity, checked.Rate)
	remaining := derive.Remaining(party.Balance, amount, checked.Payment)

	issuerName := draft.IssuerName
	if issuerName == "" {
		issuerName = "Business Owner"
	}

	tx := &models.Transaction{
		ID:            uuid.New(),
		PartyName:     party.Name,
		PartyContact:  party.Contact,
		Item:          draft.Item,
		Quantity:      checked.Quantity,
		Rate:          checked.Rate,
		Amount:        amount,
		Payment:       checked.Payment,
		PriorBalance:  party.Balance,
		Remaining:     remaining,
		Status:        derive.StatusFor(remaining),
		Date:          checked.Date,
		IssuerName:    issuerName,
		IssuerContact: draft.IssuerContact,
		CreatedAt:     s.now(),
	}

	doc, err := s.renderer.Render(tx)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RenderFailures.Inc()
		}
		s.logger.ErrorContext(ctx, "bill rendering failed",
			"party", tx.PartyName,
			"error", err,
		)
		return nil, err
	}

	if err := s.artifacts.Put(ctx, tx.ID, doc); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store rendered bill")
	}

	s.mu.Lock()
	s.bills[tx.ID] = tx
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.BillsGenerated.Inc()
	}
	s.emit(ctx, audit.Event{
		BillID: tx.ID,
		Action: audit.ActionBillGenerated,
		Metadata: map[string]string{
			"party":     tx.PartyName,
			"amount":    money.Format(tx.Amount),
			"remaining": money.Format(tx.Remaining),
			"status":    string(tx.Status),
		},
	})

	return tx, nil
}

// Get returns a finalized transaction by ID.
func (s *Service) Get(_ context.Context, billID uuid.UUID) (*models.Transaction, error) {
	s.mu.RLock()
	tx, exists := s.bills[billID]
	s.mu.RUnlock()
	if !exists {
		return nil, dErrors.New(dErrors.CodeNotFound, "bill not found")
	}
	return tx, nil
}

// Document returns the stored artifact for re-download.
func (s *Service) Document(ctx context.Context, billID uuid.UUID) (*document.Document, error) {
	doc, err := s.artifacts.Get(ctx, billID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no rendered bill for this id")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load rendered bill")
	}

	s.emit(ctx, audit.Event{BillID: billID, Action: audit.ActionDocumentDownloaded})
	return doc, nil
}

// Handoff prepares and dispatches the WhatsApp plan for a finalized bill.
// The plan is returned so browser clients can act on it themselves.
func (s *Service) Handoff(ctx context.Context, billID uuid.UUID, userAgentString string) (*handoff.Plan, error) {
	tx, err := s.Get(ctx, billID)
	if err != nil {
		return nil, err
	}

	plan := s.handoff.Prepare(tx, userAgentString)
	if err := s.handoff.Dispatch(ctx, plan); err != nil {
		// Local open can fail on headless deployments; the client still
		// receives the plan and can open the URL itself.
		s.logger.WarnContext(ctx, "local handoff open failed",
			"bill_id", billID,
			"error", err,
		)
	}

	if s.metrics != nil {
		s.metrics.HandoffsDispatched.WithLabelValues(string(plan.Target)).Inc()
	}
	s.emit(ctx, audit.Event{
		BillID: billID,
		Action: audit.ActionHandoffDispatched,
		Metadata: map[string]string{
			"target": string(plan.Target),
			"party":  tx.PartyName,
		},
	})
	return plan, nil
}

// Messages exposes all three rendered templates for a bill.
func (s *Service) Messages(ctx context.Context, billID uuid.UUID) (map[string]string, error) {
	tx, err := s.Get(ctx, billID)
	if err != nil {
		return nil, err
	}
	return s.handoff.Messages(tx), nil
}

// emit publishes an audit event fail-open: bills never block on audit.
func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"action", event.Action,
			"bill_id", event.BillID,
			"error", err,
		)
	}
}
