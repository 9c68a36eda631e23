package appstate

import (
	"mados/internal/domain/entity"
)

// Session is the state seen through one current user. The current user is
// only an id; its User value is always looked up from the users collection,
// so there is no second copy to reconcile.
type Session struct {
	state  *State
	userID string
}

// Session binds userID as the current user. An unknown or empty id yields a
// session without a current user, on which every user-bound operation is a
// no-op.
func (s *State) Session(userID string) *Session {
	return &Session{state: s, userID: userID}
}

func (ss *Session) State() *State {
	return ss.state
}

func (ss *Session) UserID() string {
	return ss.userID
}

func (ss *Session) CurrentUser() (entity.User, bool) {
	if ss.userID == "" {
		return entity.User{}, false
	}
	return ss.state.User(ss.userID)
}

// SignUp registers a new user with empty interests and seller status none.
// ok is false, and nothing is added, when the email is already registered.
func (s *State) SignUp(name, email string) (user entity.User, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userByEmailLocked(email); taken {
		return entity.User{}, false
	}

	user = entity.User{
		ID:                  s.newID("user"),
		Name:                name,
		Email:               email,
		Interests:           []string{},
		SellerStatus:        entity.OnboardingNone,
		PublicServiceStatus: entity.OnboardingNone,
		Followers:           []string{},
		Following:           []string{},
		LastActive:          s.now(),
	}
	s.users = appendTo(s.users, user)
	return user.Clone(), true
}

// Touch stamps the current user's LastActive.
func (ss *Session) Touch() {
	s := ss.state
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateUserLocked(ss.userID, func(u entity.User) entity.User {
		u.LastActive = s.now()
		return u
	})
}

// withCurrentUser runs fn under the write lock when the session has a
// current user.
func (ss *Session) withCurrentUser(fn func(s *State, me entity.User)) {
	s := ss.state
	s.mu.Lock()
	defer s.mu.Unlock()

	me, ok := s.userLocked(ss.userID)
	if !ok {
		return
	}
	fn(s, me)
}
