// Package handoff projects a finalized transaction into WhatsApp-ready
// messages and delivers one of them through a deep link plus a clipboard
// copy.
package handoff

import (
	"context"
	"log/slog"
	"time"

	"fishbill/internal/billing/models"
)

// Service ties templates, target detection, and dispatch together.
type Service struct {
	templates     *Templates
	detector      Detector
	dispatcher    *Dispatcher
	logger        *slog.Logger
	fallbackDelay time.Duration
}

type ServiceOption func(*Service)

func WithDetector(detector Detector) ServiceOption {
	return func(s *Service) {
		s.detector = detector
	}
}

func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithFallbackDelay(d time.Duration) ServiceOption {
	return func(s *Service) {
		s.fallbackDelay = d
	}
}

func NewService(templates *Templates, dispatcher *Dispatcher, opts ...ServiceOption) *Service {
	s := &Service{
		templates:     templates,
		detector:      UADetector{},
		dispatcher:    dispatcher,
		logger:        slog.Default(),
		fallbackDelay: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prepare builds the dispatch plan for a transaction: the internal summary
// is the forwarded template, the others are available for copy-paste.
func (s *Service) Prepare(tx *models.Transaction, userAgentString string) *Plan {
	target := s.detector.Detect(userAgentString)
	message := s.templates.Summary(tx)

	plan := &Plan{
		Message:       message,
		Target:        target,
		PrimaryURL:    target.SendURL(message),
		FallbackDelay: s.fallbackDelay,
	}
	if target == TargetMobile {
		plan.FallbackURL = FallbackURL(message)
	}
	return plan
}

// Messages returns all three projections for display alongside the plan.
func (s *Service) Messages(tx *models.Transaction) map[string]string {
	return map[string]string{
		"summary":  s.templates.Summary(tx),
		"customer": s.templates.Customer(tx),
		"owner":    s.templates.OwnerReport(tx),
	}
}

// Dispatch executes the plan on the local machine.
func (s *Service) Dispatch(ctx context.Context, plan *Plan) error {
	return s.dispatcher.Dispatch(ctx, plan)
}

// Close stops any pending fallback timer.
func (s *Service) Close() error {
	return s.dispatcher.Close()
}
