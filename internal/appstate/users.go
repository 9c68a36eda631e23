package appstate

import (
	"errors"
	"strings"

	"mados/internal/domain/entity"
)

var (
	ErrNoCurrentUser = errors.New("appstate: no current user")
	ErrEmailTaken    = errors.New("appstate: email already in use")
)

// ProfileUpdate holds the fields a user edits on the profile screen. An
// empty ProfilePictureURL keeps the current picture.
type ProfileUpdate struct {
	Name              string
	Email             string
	PhoneNumber       string
	Address           string
	Gender            string
	DateOfBirth       string
	ProfilePictureURL string
}

// UpdateUserProfile replaces the user with the same id. Unknown ids are ignored.
func (s *State) UpdateUserProfile(user entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := user.Clone()
	s.updateUserLocked(user.ID, func(entity.User) entity.User { return updated })
}

// UpdateProfile patches the current user's profile fields. The email check
// and the write happen under one lock; follow relations, interests and
// onboarding state are never touched.
func (ss *Session) UpdateProfile(p ProfileUpdate) (entity.User, error) {
	var (
		updated entity.User
		err     = ErrNoCurrentUser
	)
	ss.withCurrentUser(func(s *State, me entity.User) {
		if other, ok := s.userByEmailLocked(p.Email); ok && other.ID != me.ID {
			err = ErrEmailTaken
			return
		}
		s.updateUserLocked(me.ID, func(u entity.User) entity.User {
			u.Name = p.Name
			u.Email = p.Email
			u.PhoneNumber = p.PhoneNumber
			u.Address = p.Address
			u.Gender = p.Gender
			u.DateOfBirth = p.DateOfBirth
			if p.ProfilePictureURL != "" {
				u.ProfilePictureURL = p.ProfilePictureURL
			}
			updated = u.Clone()
			return u
		})
		err = nil
	})
	return updated, err
}

func (ss *Session) UpdateUserInterests(interests []string) {
	ss.withCurrentUser(func(s *State, me entity.User) {
		next := append([]string{}, interests...)
		s.updateUserLocked(me.ID, func(u entity.User) entity.User {
			u.Interests = next
			return u
		})
	})
}

// ToggleFollow flips whether the current user follows targetUserID, updating
// the current user's following and the target's followers together. It
// reports whether the current user follows the target afterwards.
func (ss *Session) ToggleFollow(targetUserID string) (following bool) {
	if targetUserID == ss.userID {
		return false
	}

	ss.withCurrentUser(func(s *State, me entity.User) {
		if _, ok := s.userLocked(targetUserID); !ok {
			return
		}

		wasFollowing := me.IsFollowing(targetUserID)
		following = !wasFollowing

		s.updateUserLocked(me.ID, func(u entity.User) entity.User {
			if wasFollowing {
				u.Following = withoutID(u.Following, targetUserID)
			} else {
				u.Following = withID(u.Following, targetUserID)
			}
			return u
		})
		s.updateUserLocked(targetUserID, func(u entity.User) entity.User {
			if wasFollowing {
				u.Followers = withoutID(u.Followers, me.ID)
			} else {
				u.Followers = withID(u.Followers, me.ID)
			}
			return u
		})
	})
	return following
}

func (s *State) updateUserLocked(id string, update func(entity.User) entity.User) bool {
	i := indexOf(s.users, func(u entity.User) bool { return u.ID == id })
	if i < 0 {
		return false
	}
	s.users = replaceAt(s.users, i, update(s.users[i].Clone()))
	return true
}

func (s *State) userByEmailLocked(email string) (entity.User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return entity.User{}, false
}
