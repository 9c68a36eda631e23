package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"mados/internal/appstate"
	"mados/internal/domain/entity"
	"mados/internal/domain/service"
	"mados/pkg/errors"
)

const (
	FollowListFollowers = "followers"
	FollowListFollowing = "following"
)

type UserUseCase struct {
	state    *appstate.State
	notify   notificationEmitter
	validate *validator.Validate
}

func NewUserUseCase(state *appstate.State, notifier service.Notifier) *UserUseCase {
	return &UserUseCase{
		state:    state,
		notify:   notificationEmitter{state: state, notifier: notifier},
		validate: validator.New(),
	}
}

type UpdateProfileInput struct {
	Name              string
	Email             string
	PhoneNumber       string
	Address           string
	Gender            string
	DateOfBirth       string
	ProfilePictureURL string
}

// UserProfile is what the profile page of a user shows.
type UserProfile struct {
	User            entity.User            `json:"user"`
	LastActiveLabel string                 `json:"last_active_label"`
	FollowersCount  int                    `json:"followers_count"`
	FollowingCount  int                    `json:"following_count"`
	IsFollowed      bool                   `json:"is_followed"`
	Store           *entity.Store          `json:"store,omitempty"`
	PublicService   *entity.PublicService  `json:"public_service,omitempty"`
	Posts           []entity.CommunityPost `json:"posts"`
}

type FollowResult struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followers_count"`
}

// GetProfile shows userID as seen by viewerID. viewerID may be empty.
func (uc *UserUseCase) GetProfile(ctx context.Context, viewerID, userID string) (*UserProfile, error) {
	user, ok := uc.state.User(userID)
	if !ok {
		return nil, errors.NotFound("User", nil)
	}

	profile := &UserProfile{
		User:            user,
		LastActiveLabel: LastActiveLabel(user.LastActive, uc.state.Now()),
		FollowersCount:  len(user.Followers),
		FollowingCount:  len(user.Following),
		Posts:           postsBy(uc.state.CommunityPosts(), userID),
	}
	if viewer, ok := uc.state.User(viewerID); ok {
		profile.IsFollowed = viewer.IsFollowing(userID)
	}
	if user.StoreID != "" {
		if store, ok := uc.state.Store(user.StoreID); ok {
			profile.Store = &store
		}
	}
	if user.PublicServiceID != "" {
		if ps, ok := uc.state.PublicService(user.PublicServiceID); ok {
			profile.PublicService = &ps
		}
	}
	return profile, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	ss, _, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, errors.Validation("Nama dan email harus diisi.")
	}
	if err := uc.validate.Var(email, "email"); err != nil {
		return nil, errors.Validation("Format email tidak valid.")
	}
	if input.Gender != "" && !oneOf(input.Gender, entity.Genders) {
		return nil, errors.Validation("Jenis kelamin harus salah satu dari: " + strings.Join(entity.Genders, ", "))
	}
	if input.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", input.DateOfBirth); err != nil {
			return nil, errors.Validation("Tanggal lahir harus berformat YYYY-MM-DD.")
		}
	}

	updated, err := ss.UpdateProfile(appstate.ProfileUpdate{
		Name:              name,
		Email:             email,
		PhoneNumber:       strings.TrimSpace(input.PhoneNumber),
		Address:           strings.TrimSpace(input.Address),
		Gender:            input.Gender,
		DateOfBirth:       input.DateOfBirth,
		ProfilePictureURL: input.ProfilePictureURL,
	})
	switch err {
	case nil:
		return &updated, nil
	case appstate.ErrEmailTaken:
		return nil, errors.Conflict("Email sudah digunakan oleh pengguna lain.")
	default:
		return nil, errors.Unauthorized(msgLoginRequired, err)
	}
}

// UpdateInterests keeps the known categories in the order given, without
// duplicates.
func (uc *UserUseCase) UpdateInterests(ctx context.Context, userID string, interests []string) (*entity.User, error) {
	ss, _, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(interests))
	selected := make([]string, 0, len(interests))
	for _, interest := range interests {
		if !oneOf(interest, entity.InterestCategories) {
			return nil, errors.Validation(fmt.Sprintf("Kategori minat tidak dikenal: %s", interest))
		}
		if !seen[interest] {
			seen[interest] = true
			selected = append(selected, interest)
		}
	}
	if len(selected) == 0 {
		return nil, errors.Validation("Pilih minimal satu minat.")
	}

	ss.UpdateUserInterests(selected)

	updated, _ := ss.CurrentUser()
	return &updated, nil
}

func (uc *UserUseCase) ToggleFollow(ctx context.Context, userID, targetID string) (*FollowResult, error) {
	ss, me, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}
	if targetID == me.ID {
		return nil, errors.BadRequest("Anda tidak bisa mengikuti diri sendiri.", nil)
	}
	if _, ok := uc.state.User(targetID); !ok {
		return nil, errors.NotFound("User", nil)
	}

	following := ss.ToggleFollow(targetID)
	if following {
		uc.notify.emit(entity.Notification{
			Type:         entity.NotificationFollow,
			RecipientID:  targetID,
			FromUserID:   me.ID,
			FromUserName: me.Name,
		})
	}

	target, _ := uc.state.User(targetID)
	return &FollowResult{Following: following, FollowersCount: len(target.Followers)}, nil
}

// FollowList resolves the followers or following ids of userID. Ids that no
// longer resolve are skipped.
func (uc *UserUseCase) FollowList(ctx context.Context, userID, kind string) ([]entity.User, error) {
	user, ok := uc.state.User(userID)
	if !ok {
		return nil, errors.NotFound("User", nil)
	}

	var ids []string
	switch kind {
	case FollowListFollowers:
		ids = user.Followers
	case FollowListFollowing:
		ids = user.Following
	default:
		return nil, errors.BadRequest("list must be followers or following", nil)
	}

	users := make([]entity.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := uc.state.User(id); ok {
			users = append(users, u)
		}
	}
	return users, nil
}

// LastActiveLabel renders how long ago a user was active, the way the chat
// header shows it.
func LastActiveLabel(lastActive, now time.Time) string {
	diff := now.Sub(lastActive)
	switch {
	case diff < time.Minute:
		return "Online"
	case diff < time.Hour:
		return fmt.Sprintf("Aktif %d menit lalu", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("Aktif %d jam lalu", int(diff/time.Hour))
	case diff < 48*time.Hour:
		return "Aktif kemarin"
	default:
		return "Aktif pada " + lastActive.Format("2/1/2006")
	}
}

func postsBy(posts []entity.CommunityPost, userID string) []entity.CommunityPost {
	out := make([]entity.CommunityPost, 0)
	for _, p := range posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
