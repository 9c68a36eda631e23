package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"mados/internal/appstate"
	"mados/internal/domain/entity"
	"mados/internal/domain/service"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

var (
	kopiSenja = entity.Coordinates{Latitude: -7.5666, Longitude: 110.8166}
	farAway   = entity.Coordinates{Latitude: -6.2088, Longitude: 106.8456}
)

func newState(t *testing.T) *appstate.State {
	t.Helper()
	n := 0
	seed := entity.Dataset{
		Users: []entity.User{
			{ID: "user-1", Name: "Budi Santoso", Email: "budi@example.com", SellerStatus: entity.OnboardingApproved, StoreID: "store-1", Followers: []string{}, Following: []string{}, LastActive: testNow.Add(-5 * time.Minute)},
			{ID: "user-2", Name: "Citra Lestari", Email: "citra@example.com", SellerStatus: entity.OnboardingNone, Followers: []string{}, Following: []string{}, LastActive: testNow},
			{ID: "user-3", Name: "Dewi Anggraini", Email: "dewi@example.com", Followers: []string{}, Following: []string{}},
		},
		Stores: []entity.Store{
			{ID: "store-1", Name: "Kopi Senja", OwnerID: "user-1", Coordinates: kopiSenja, Address: "Jl. Slamet Riyadi 10", Items: []entity.Item{
				{ID: "item-1", StoreID: "store-1", Name: "Kopi Susu Gula Aren", Description: "Kopi susu manis", Price: 18000, Category: entity.CategoryGood, ImageURL: "img://kopi"},
				{ID: "item-2", StoreID: "store-1", Name: "Roti Bakar", Description: "Roti bakar coklat keju", Price: 15000, Category: entity.CategoryGood, ImageURL: "img://roti"},
				{ID: "item-3", StoreID: "store-1", Name: "Sepatu Lari", Description: "Bekas", Price: 250000, Category: entity.CategoryGood, ImageURL: "img://sepatu"},
			}},
			{ID: "store-2", Name: "Toko Sepatu Jaya", OwnerID: "user-3", Coordinates: farAway, Address: "Jl. Sudirman 1", Items: []entity.Item{
				{ID: "item-4", StoreID: "store-2", Name: "Sepatu Kulit", Description: "Sepatu formal", Price: 400000, Category: entity.CategoryGood, ImageURL: "img://kulit"},
			}},
		},
		CommunityPosts: []entity.CommunityPost{
			{ID: "cp-1", UserID: "user-3", UserName: "Dewi Anggraini", Title: "Jual sepeda", Timestamp: testNow.Add(-time.Hour), Likes: []string{}, Comments: []entity.CommunityPostComment{}},
		},
		Chats: []entity.ChatSession{
			{ID: "chat-1", ParticipantIDs: []string{"user-1", "user-2"}, Messages: []entity.ChatMessage{
				{ID: "msg-1", SenderID: "user-2", Text: "Halo", Timestamp: testNow.Add(-time.Hour), Status: entity.MessageDelivered},
			}},
		},
		PublicServices: []entity.PublicService{
			{ID: "ps-1", OwnerID: entity.SystemOwner, Name: "Puskesmas Laweyan", Type: "Puskesmas", Coordinates: kopiSenja, Address: "Jl. Dr. Rajiman"},
			{ID: "ps-2", OwnerID: entity.SystemOwner, Name: "ATM Mandiri", Type: "ATM", Coordinates: farAway, Address: "Jl. Thamrin"},
		},
	}
	return appstate.New(seed,
		appstate.WithClock(func() time.Time { return testNow }),
		appstate.WithIDGenerator(func(prefix string) string {
			n++
			return fmt.Sprintf("%s-t%d", prefix, n)
		}),
	)
}

type fakeTokens struct{}

func (fakeTokens) Issue(userID string) (string, error) { return "token-" + userID, nil }

func (fakeTokens) Verify(token string) (string, error) {
	if len(token) > 6 && token[:6] == "token-" {
		return token[6:], nil
	}
	return "", fmt.Errorf("bad token")
}

type pushed struct {
	userID    string
	eventType string
	payload   interface{}
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []pushed
}

func (f *fakeNotifier) Notify(userID, eventType string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, pushed{userID, eventType, payload})
}

func (f *fakeNotifier) count(userID, eventType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.events {
		if e.userID == userID && e.eventType == eventType {
			n++
		}
	}
	return n
}

type denyLimiter struct{}

func (denyLimiter) Allow(string, string) (bool, time.Duration) { return false, 3 * time.Second }

type fixedPositions map[string]entity.Coordinates

func (f fixedPositions) Position(userID string) (entity.Coordinates, bool) {
	c, ok := f[userID]
	return c, ok
}

type fakeAnalyzer struct {
	result *service.ImageAnalysis
	err    error
}

func (f fakeAnalyzer) AnalyzeImage(context.Context, []byte, string) (*service.ImageAnalysis, error) {
	return f.result, f.err
}
