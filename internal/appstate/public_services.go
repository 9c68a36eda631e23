package appstate

import (
	"mados/internal/domain/entity"
)

func (s *State) AddPublicService(service entity.PublicService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publicServices = appendTo(s.publicServices, service.Clone())
}

// AddReviewToPublicService prepends the review, at most one per user, and
// reports whether it was stored.
func (s *State) AddReviewToPublicService(serviceID string, review entity.Review) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.publicServices, func(p entity.PublicService) bool { return p.ID == serviceID })
	if i < 0 {
		return false
	}
	service := s.publicServices[i].Clone()
	if entity.HasReviewFrom(service.Reviews, review.UserID) {
		return false
	}
	service.Reviews = prependTo(service.Reviews, review)
	s.publicServices = replaceAt(s.publicServices, i, service)
	return true
}
