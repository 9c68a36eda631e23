// Package appstate holds the whole application state in memory: users,
// stores, community posts, chat sessions, notifications and public services.
//
// Every mutation runs to completion under a single lock and replaces the
// affected collection with a new slice instead of editing entities in
// place. Reads hand out deep copies. Lookups that miss and operations that
// need a current user without having one are silent no-ops.
package appstate

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"mados/internal/domain/entity"
)

type State struct {
	mu sync.RWMutex

	users          []entity.User
	stores         []entity.Store
	communityPosts []entity.CommunityPost
	chats          []entity.ChatSession
	notifications  []entity.Notification
	publicServices []entity.PublicService

	sellerApplications        map[string]entity.SellerApplication
	publicServiceApplications map[string]entity.PublicServiceApplication

	now   func() time.Time
	newID func(prefix string) string
}

type Option func(*State)

// WithClock overrides time.Now, used for timestamps on created entities.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithIDGenerator overrides id synthesis. The prefix is one of "user",
// "store", "ps", "cp", "cmt", "msg", "chat", "notif".
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *State) { s.newID = gen }
}

func defaultID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// New builds the state from a seed dataset. Community posts and
// notifications are ordered newest first.
func New(seed entity.Dataset, opts ...Option) *State {
	s := &State{
		sellerApplications:        make(map[string]entity.SellerApplication),
		publicServiceApplications: make(map[string]entity.PublicServiceApplication),
		now:                       time.Now,
		newID:                     defaultID,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.users = cloneAll(seed.Users, entity.User.Clone)
	s.stores = cloneAll(seed.Stores, entity.Store.Clone)
	s.communityPosts = cloneAll(seed.CommunityPosts, entity.CommunityPost.Clone)
	s.chats = cloneAll(seed.Chats, entity.ChatSession.Clone)
	s.notifications = append([]entity.Notification(nil), seed.Notifications...)
	s.publicServices = cloneAll(seed.PublicServices, entity.PublicService.Clone)

	sort.SliceStable(s.communityPosts, func(i, j int) bool {
		return s.communityPosts[i].Timestamp.After(s.communityPosts[j].Timestamp)
	})
	sort.SliceStable(s.notifications, func(i, j int) bool {
		return s.notifications[i].Timestamp.After(s.notifications[j].Timestamp)
	})

	return s
}

func (s *State) Now() time.Time {
	return s.now()
}

func (s *State) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.users, entity.User.Clone)
}

func (s *State) User(id string) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userLocked(id)
}

// UserByEmail matches case-insensitively.
func (s *State) UserByEmail(email string) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.userByEmailLocked(email)
	if !ok {
		return entity.User{}, false
	}
	return u.Clone(), true
}

func (s *State) Stores() []entity.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.stores, entity.Store.Clone)
}

func (s *State) Store(id string) (entity.Store, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.stores, func(st entity.Store) bool { return st.ID == id })
	if i < 0 {
		return entity.Store{}, false
	}
	return s.stores[i].Clone(), true
}

func (s *State) Item(storeID, itemID string) (entity.Item, bool) {
	store, ok := s.Store(storeID)
	if !ok {
		return entity.Item{}, false
	}
	return store.FindItem(itemID)
}

func (s *State) CommunityPosts() []entity.CommunityPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.communityPosts, entity.CommunityPost.Clone)
}

func (s *State) CommunityPost(id string) (entity.CommunityPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.communityPosts, func(p entity.CommunityPost) bool { return p.ID == id })
	if i < 0 {
		return entity.CommunityPost{}, false
	}
	return s.communityPosts[i].Clone(), true
}

func (s *State) Chats() []entity.ChatSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.chats, entity.ChatSession.Clone)
}

func (s *State) Notifications() []entity.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Notification(nil), s.notifications...)
}

func (s *State) PublicServices() []entity.PublicService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.publicServices, entity.PublicService.Clone)
}

func (s *State) PublicService(id string) (entity.PublicService, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.publicServices, func(p entity.PublicService) bool { return p.ID == id })
	if i < 0 {
		return entity.PublicService{}, false
	}
	return s.publicServices[i].Clone(), true
}

// Snapshot copies every collection.
func (s *State) Snapshot() entity.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.Dataset{
		Users:          cloneAll(s.users, entity.User.Clone),
		Stores:         cloneAll(s.stores, entity.Store.Clone),
		CommunityPosts: cloneAll(s.communityPosts, entity.CommunityPost.Clone),
		Chats:          cloneAll(s.chats, entity.ChatSession.Clone),
		Notifications:  append([]entity.Notification(nil), s.notifications...),
		PublicServices: cloneAll(s.publicServices, entity.PublicService.Clone),
	}
}

func (s *State) userLocked(id string) (entity.User, bool) {
	i := indexOf(s.users, func(u entity.User) bool { return u.ID == id })
	if i < 0 {
		return entity.User{}, false
	}
	return s.users[i].Clone(), true
}
