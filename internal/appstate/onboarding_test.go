package appstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mados/internal/domain/entity"
)

func TestSellerOnboarding(t *testing.T) {
	s := newTestState(t)
	session := s.Session("user-2")

	assert.Empty(t, session.ApproveSellerApplication(), "approval requires a pending application")

	ok := session.SubmitSellerApplication(entity.SellerApplication{
		StoreName:   "Batik Citra",
		Address:     "Jl. Merdeka 1",
		Coordinates: entity.Coordinates{Latitude: -7.56, Longitude: 110.82},
	})
	require.True(t, ok)
	me, _ := session.CurrentUser()
	assert.Equal(t, entity.OnboardingPending, me.SellerStatus)
	app, held := session.SellerApplication()
	require.True(t, held)
	assert.Equal(t, fixedNow, app.SubmittedAt)

	assert.False(t, session.SubmitSellerApplication(entity.SellerApplication{StoreName: "again"}))

	storeID := session.ApproveSellerApplication()
	require.NotEmpty(t, storeID)
	me, _ = session.CurrentUser()
	assert.Equal(t, entity.OnboardingApproved, me.SellerStatus)
	assert.Equal(t, storeID, me.StoreID)

	store, found := s.Store(storeID)
	require.True(t, found)
	assert.Equal(t, "Batik Citra", store.Name)
	assert.Equal(t, "user-2", store.OwnerID)
	assert.Equal(t, -7.56, store.Coordinates.Latitude)

	_, held = session.SellerApplication()
	assert.False(t, held)
	assert.Empty(t, session.ApproveSellerApplication())
	assert.False(t, session.SubmitSellerApplication(entity.SellerApplication{StoreName: "reset"}))
}

func TestPublicServiceOnboarding(t *testing.T) {
	s := newTestState(t)
	session := s.Session("user-3")

	require.True(t, session.SubmitPublicServiceApplication(entity.PublicServiceApplication{
		ServiceName: "Bank Mados",
		ServiceType: "Bank",
		Address:     "Jl. Slamet Riyadi 5",
		Coordinates: entity.Coordinates{Latitude: -7.57, Longitude: 110.81},
	}))
	me, _ := session.CurrentUser()
	assert.Equal(t, entity.OnboardingPending, me.PublicServiceStatus)

	serviceID := session.ApprovePublicServiceApplication()
	require.NotEmpty(t, serviceID)

	ps, ok := s.PublicService(serviceID)
	require.True(t, ok)
	assert.Equal(t, "Bank", ps.Type)
	assert.Equal(t, "user-3", ps.OwnerID)

	me, _ = session.CurrentUser()
	assert.Equal(t, entity.OnboardingApproved, me.PublicServiceStatus)
	assert.Equal(t, serviceID, me.PublicServiceID)
}
