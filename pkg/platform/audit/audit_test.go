package audit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePublisherSetsIdentityAndTimestamp(t *testing.T) {
	store := NewInMemoryStore()
	pub := NewStorePublisher(store)
	defer pub.Close()

	billID := uuid.New()
	err := pub.Emit(context.Background(), Event{
		BillID: billID,
		Action: ActionBillGenerated,
		Metadata: map[string]string{
			"party": "Selva Seafoods",
		},
	})
	require.NoError(t, err)

	events, err := store.ListByBill(context.Background(), billID)
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.NotEqual(t, uuid.Nil, events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())
	assert.Equal(t, ActionBillGenerated, events[0].Action)
	assert.Equal(t, "Selva Seafoods", events[0].Metadata["party"])
}

func TestListByBillFiltersOtherBills(t *testing.T) {
	store := NewInMemoryStore()
	pub := NewStorePublisher(store)
	defer pub.Close()

	billA := uuid.New()
	billB := uuid.New()
	require.NoError(t, pub.Emit(context.Background(), Event{BillID: billA, Action: ActionBillGenerated}))
	require.NoError(t, pub.Emit(context.Background(), Event{BillID: billB, Action: ActionBillGenerated}))
	require.NoError(t, pub.Emit(context.Background(), Event{BillID: billA, Action: ActionHandoffDispatched}))

	events, err := store.ListByBill(context.Background(), billA)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
