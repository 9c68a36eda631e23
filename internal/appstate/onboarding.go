package appstate

import (
	"mados/internal/domain/entity"
)

// Onboarding moves none -> pending -> approved and never back. Each call
// below is a no-op outside its source status.

func (ss *Session) SubmitSellerApplication(app entity.SellerApplication) (ok bool) {
	ss.withCurrentUser(func(s *State, me entity.User) {
		if me.SellerStatus.Normalize() != entity.OnboardingNone {
			return
		}
		if app.SubmittedAt.IsZero() {
			app.SubmittedAt = s.now()
		}
		s.sellerApplications[me.ID] = app
		ok = s.updateUserLocked(me.ID, func(u entity.User) entity.User {
			u.SellerStatus = entity.OnboardingPending
			return u
		})
	})
	return ok
}

// ApproveSellerApplication creates the store from the pending application
// and stamps its id on the user. It returns the new store id, or "".
func (ss *Session) ApproveSellerApplication() (storeID string) {
	ss.withCurrentUser(func(s *State, me entity.User) {
		app, held := s.sellerApplications[me.ID]
		if me.SellerStatus.Normalize() != entity.OnboardingPending || !held {
			return
		}

		store := entity.Store{
			ID:          s.newID("store"),
			Name:        app.StoreName,
			OwnerID:     me.ID,
			Coordinates: app.Coordinates,
			Address:     app.Address,
			Items:       []entity.Item{},
			Reviews:     []entity.Review{},
		}
		s.stores = appendTo(s.stores, store)
		s.updateUserLocked(me.ID, func(u entity.User) entity.User {
			u.SellerStatus = entity.OnboardingApproved
			u.StoreID = store.ID
			return u
		})
		delete(s.sellerApplications, me.ID)
		storeID = store.ID
	})
	return storeID
}

func (ss *Session) SellerApplication() (entity.SellerApplication, bool) {
	s := ss.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.sellerApplications[ss.userID]
	return app, ok
}

func (ss *Session) SubmitPublicServiceApplication(app entity.PublicServiceApplication) (ok bool) {
	ss.withCurrentUser(func(s *State, me entity.User) {
		if me.PublicServiceStatus.Normalize() != entity.OnboardingNone {
			return
		}
		if app.SubmittedAt.IsZero() {
			app.SubmittedAt = s.now()
		}
		s.publicServiceApplications[me.ID] = app
		ok = s.updateUserLocked(me.ID, func(u entity.User) entity.User {
			u.PublicServiceStatus = entity.OnboardingPending
			return u
		})
	})
	return ok
}

func (ss *Session) ApprovePublicServiceApplication() (serviceID string) {
	ss.withCurrentUser(func(s *State, me entity.User) {
		app, held := s.publicServiceApplications[me.ID]
		if me.PublicServiceStatus.Normalize() != entity.OnboardingPending || !held {
			return
		}

		service := entity.PublicService{
			ID:          s.newID("ps"),
			OwnerID:     me.ID,
			Name:        app.ServiceName,
			Type:        app.ServiceType,
			Coordinates: app.Coordinates,
			Address:     app.Address,
			Reviews:     []entity.Review{},
		}
		s.publicServices = appendTo(s.publicServices, service)
		s.updateUserLocked(me.ID, func(u entity.User) entity.User {
			u.PublicServiceStatus = entity.OnboardingApproved
			u.PublicServiceID = service.ID
			return u
		})
		delete(s.publicServiceApplications, me.ID)
		serviceID = service.ID
	})
	return serviceID
}

func (ss *Session) PublicServiceApplication() (entity.PublicServiceApplication, bool) {
	s := ss.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.publicServiceApplications[ss.userID]
	return app, ok
}
