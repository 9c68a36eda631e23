package appstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mados/internal/domain/entity"
)

func TestItemLifecycle(t *testing.T) {
	s := newTestState(t)

	s.AddItemToStore("store-1", entity.Item{ID: "item-2", StoreID: "store-1", Name: "Roti Bakar", Price: 15000})
	store, _ := s.Store("store-1")
	require.Len(t, store.Items, 2)
	assert.Equal(t, "item-2", store.Items[1].ID)

	s.UpdateItemInStore("store-1", entity.Item{ID: "item-2", StoreID: "store-1", Name: "Roti Bakar Keju", Price: 17000})
	item, ok := s.Item("store-1", "item-2")
	require.True(t, ok)
	assert.Equal(t, "Roti Bakar Keju", item.Name)
	assert.EqualValues(t, 17000, item.Price)

	s.DeleteItemFromStore("store-1", "item-1")
	store, _ = s.Store("store-1")
	require.Len(t, store.Items, 1)
	assert.Equal(t, "item-2", store.Items[0].ID)
}

func TestStoreOperationsOnMissingStoreAreNoOps(t *testing.T) {
	s := newTestState(t)
	before := s.Stores()

	s.AddItemToStore("store-404", entity.Item{ID: "x"})
	s.UpdateItemInStore("store-1", entity.Item{ID: "item-404", Name: "x"})
	s.DeleteItemFromStore("store-404", "item-1")
	assert.False(t, s.AddReviewToStore("store-404", entity.Review{ID: "r"}))
	assert.False(t, s.AddReviewToItem("store-1", "item-404", entity.Review{ID: "r"}))

	assert.Equal(t, before, s.Stores())
}

func TestReviewsArePrependedOncePerUser(t *testing.T) {
	s := newTestState(t)

	assert.True(t, s.AddReviewToStore("store-1", entity.Review{ID: "r1", UserID: "user-2", Rating: 4}))
	assert.True(t, s.AddReviewToStore("store-1", entity.Review{ID: "r2", UserID: "user-3", Rating: 5}))
	assert.False(t, s.AddReviewToStore("store-1", entity.Review{ID: "r3", UserID: "user-2", Rating: 1}))

	store, _ := s.Store("store-1")
	require.Len(t, store.Reviews, 2)
	assert.Equal(t, "r2", store.Reviews[0].ID)
	assert.Equal(t, "r1", store.Reviews[1].ID)

	assert.True(t, s.AddReviewToItem("store-1", "item-1", entity.Review{ID: "r4", UserID: "user-2"}))
	assert.False(t, s.AddReviewToItem("store-1", "item-1", entity.Review{ID: "r5", UserID: "user-2"}))
	item, _ := s.Item("store-1", "item-1")
	require.Len(t, item.Reviews, 1)
	assert.Equal(t, "r4", item.Reviews[0].ID)
}

func TestPublicServices(t *testing.T) {
	s := newTestState(t)

	s.AddPublicService(entity.PublicService{ID: "ps-2", OwnerID: entity.SystemOwner, Name: "ATM Bersama", Type: "ATM"})
	require.Len(t, s.PublicServices(), 2)

	assert.True(t, s.AddReviewToPublicService("ps-2", entity.Review{ID: "r1", UserID: "user-1"}))
	assert.False(t, s.AddReviewToPublicService("ps-2", entity.Review{ID: "r2", UserID: "user-1"}))
	assert.False(t, s.AddReviewToPublicService("ps-404", entity.Review{ID: "r3", UserID: "user-1"}))

	ps, ok := s.PublicService("ps-2")
	require.True(t, ok)
	require.Len(t, ps.Reviews, 1)
	assert.Equal(t, "r1", ps.Reviews[0].ID)
}

func TestAddStore(t *testing.T) {
	s := newTestState(t)

	s.AddStore(entity.Store{ID: "store-2", Name: "Warung Bu Sri", OwnerID: "user-3"})

	_, ok := s.Store("store-2")
	assert.True(t, ok)
}
