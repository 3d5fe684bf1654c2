package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"fishbill/internal/catalog/models"
	"fishbill/pkg/platform/sentinel"
)

type CatalogStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *CatalogStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestCatalogStoreSuite(t *testing.T) {
	suite.Run(t, new(CatalogStoreSuite))
}

func (s *CatalogStoreSuite) newParty(name string, balance int64) *models.Party {
	party, err := models.NewParty(name, "+919876543210", decimal.NewFromInt(balance), time.Now())
	s.Require().NoError(err)
	return party
}

func (s *CatalogStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds party by name", func() {
		party := s.newParty("Murugan Fish Mart", 1500)
		s.Require().NoError(s.store.Create(s.ctx, party))

		found, err := s.store.FindByName(s.ctx, "Murugan Fish Mart")
		s.Require().NoError(err)
		s.True(found.Balance.Equal(decimal.NewFromInt(1500)))
	})

	s.Run("lookup is case-insensitive", func() {
		found, err := s.store.FindByName(s.ctx, "murugan fish mart")
		s.Require().NoError(err)
		s.Equal("Murugan Fish Mart", found.Name)
	})

	s.Run("returns ErrNotFound for unknown name", func() {
		_, err := s.store.FindByName(s.ctx, "No Such Trader")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *CatalogStoreSuite) TestNameUniqueness() {
	party1 := s.newParty("Selva Seafoods", 2500)
	party2 := s.newParty("SELVA SEAFOODS", 0)

	s.Require().NoError(s.store.Create(s.ctx, party1))
	s.Require().ErrorIs(s.store.Create(s.ctx, party2), sentinel.ErrConflict)
}

func (s *CatalogStoreSuite) TestListPreservesInsertionOrder() {
	names := []string{"Raja Fish Center", "Kannan Traders", "Kumaran Exports"}
	for _, n := range names {
		s.Require().NoError(s.store.Create(s.ctx, s.newParty(n, 0)))
	}

	parties, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(parties, len(names))
	for i, n := range names {
		s.Equal(n, parties[i].Name)
	}
}

func (s *CatalogStoreSuite) TestSeedLoadsReferenceParties() {
	Seed(s.store)

	parties, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Len(parties, 5)

	selva, err := s.store.FindByName(s.ctx, "Selva Seafoods")
	s.Require().NoError(err)
	s.True(selva.Balance.Equal(decimal.NewFromInt(2500)))

	kumaran, err := s.store.FindByName(s.ctx, "Kumaran Exports")
	s.Require().NoError(err)
	s.True(kumaran.Balance.IsZero())
}
