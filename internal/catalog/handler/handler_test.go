package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fishbill/internal/catalog/handler"
	"fishbill/internal/catalog/service"
	"fishbill/internal/catalog/store"
	"fishbill/pkg/testutil"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()

	parties := store.NewInMemory()
	store.Seed(parties)
	svc, err := service.New(parties)
	require.NoError(t, err)

	r := chi.NewRouter()
	handler.New(svc, testutil.DiscardLogger()).Register(r)
	return r
}

func TestListParties(t *testing.T) {
	r := newRouter(t)

	rec := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/api/parties"))
	require.Equal(t, http.StatusOK, rec.Code)

	var parties []struct {
		Name    string `json:"name"`
		Balance string `json:"balance"`
		Contact string `json:"contact"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parties))
	require.Len(t, parties, 5)

	// Dropdown order is insertion order, balances come back as fixed
	// two-decimal strings.
	assert.Equal(t, "Murugan Fish Mart", parties[0].Name)
	assert.Equal(t, "1500.00", parties[0].Balance)
	assert.Equal(t, "Kumaran Exports", parties[4].Name)
	assert.Equal(t, "0.00", parties[4].Balance)
	assert.Equal(t, "+919876543214", parties[4].Contact)
}
