package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fishbill/internal/catalog/models"
	dErrors "fishbill/pkg/domain-errors"
	"fishbill/pkg/platform/sentinel"
)

// Store is the synchronous catalog lookup the billing flow needs.
type Store interface {
	List(ctx context.Context) ([]*models.Party, error)
	FindByName(ctx context.Context, name string) (*models.Party, error)
}

type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog store is required")
	}
	svc := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// List returns all known parties in dropdown order.
func (s *Service) List(ctx context.Context) ([]*models.Party, error) {
	parties, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list parties")
	}
	return parties, nil
}

// FindByName resolves the unique party key from the form selection.
func (s *Service) FindByName(ctx context.Context, name string) (*models.Party, error) {
	party, err := s.store.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("unknown party %q", name))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find party")
	}
	return party, nil
}
