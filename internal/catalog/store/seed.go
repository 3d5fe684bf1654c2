package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fishbill/internal/catalog/models"
)

// Seed loads the reference customer list into an empty in-memory catalog.
// A real deployment replaces this with the postgres store.
func Seed(s *InMemory) {
	now := time.Now()
	parties := []struct {
		name    string
		balance int64
		contact string
	}{
		{"Murugan Fish Mart", 1500, "+919876543210"},
		{"Selva Seafoods", 2500, "+919876543211"},
		{"Kannan Traders", 800, "+919876543212"},
		{"Raja Fish Center", 3200, "+919876543213"},
		{"Kumaran Exports", 0, "+919876543214"},
	}
	for _, p := range parties {
		party, err := models.NewParty(p.name, p.contact, decimal.NewFromInt(p.balance), now)
		if err != nil {
			continue
		}
		_ = s.Create(context.Background(), party)
	}
}
