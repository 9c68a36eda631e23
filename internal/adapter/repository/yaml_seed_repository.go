package repository

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"mados/internal/domain/entity"
	"mados/internal/domain/repository"
)

//go:embed seed.yaml
var embeddedSeed []byte

type yamlSeedRepository struct {
	source string
	read   func() ([]byte, error)
	now    func() time.Time
}

// NewEmbeddedSeedRepository serves the demo dataset compiled into the binary.
func NewEmbeddedSeedRepository(now func() time.Time) repository.SeedRepository {
	return &yamlSeedRepository{
		source: "embedded",
		read:   func() ([]byte, error) { return embeddedSeed, nil },
		now:    now,
	}
}

// NewFileSeedRepository reads a dataset in the same format from path.
func NewFileSeedRepository(path string, now func() time.Time) repository.SeedRepository {
	return &yamlSeedRepository{
		source: path,
		read:   func() ([]byte, error) { return os.ReadFile(path) },
		now:    now,
	}
}

func (r *yamlSeedRepository) Load(ctx context.Context) (entity.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return entity.Dataset{}, err
	}

	raw, err := r.read()
	if err != nil {
		return entity.Dataset{}, fmt.Errorf("read seed %s: %w", r.source, err)
	}

	var doc seedDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return entity.Dataset{}, fmt.Errorf("parse seed %s: %w", r.source, err)
	}

	return doc.toDataset(r.now())
}

// ago is a duration before the load time, written as "5m" or "25h".
type ago string

func (a ago) before(now time.Time) (time.Time, error) {
	if a == "" {
		return now, nil
	}
	d, err := time.ParseDuration(string(a))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ago %q: %w", string(a), err)
	}
	return now.Add(-d), nil
}

type seedDocument struct {
	Users          []seedUser          `yaml:"users"`
	Stores         []seedStore         `yaml:"stores"`
	PublicServices []seedPublicService `yaml:"public_services"`
	CommunityPosts []seedPost          `yaml:"community_posts"`
	Chats          []seedChat          `yaml:"chats"`
	Notifications  []seedNotification  `yaml:"notifications"`
}

type seedUser struct {
	ID                  string   `yaml:"id"`
	Name                string   `yaml:"name"`
	Email               string   `yaml:"email"`
	ProfilePictureURL   string   `yaml:"profile_picture_url"`
	PhoneNumber         string   `yaml:"phone_number"`
	Address             string   `yaml:"address"`
	Gender              string   `yaml:"gender"`
	DateOfBirth         string   `yaml:"date_of_birth"`
	Interests           []string `yaml:"interests"`
	SellerStatus        string   `yaml:"seller_status"`
	StoreID             string   `yaml:"store_id"`
	PublicServiceStatus string   `yaml:"public_service_status"`
	PublicServiceID     string   `yaml:"public_service_id"`
	Followers           []string `yaml:"followers"`
	Following           []string `yaml:"following"`
	LastActiveAgo       ago      `yaml:"last_active_ago"`
}

type seedReview struct {
	ID       string `yaml:"id"`
	UserID   string `yaml:"user_id"`
	UserName string `yaml:"user_name"`
	Rating   int    `yaml:"rating"`
	Comment  string `yaml:"comment"`
	Ago      ago    `yaml:"ago"`
}

type seedItem struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Price       int64        `yaml:"price"`
	Category    string       `yaml:"category"`
	ImageURL    string       `yaml:"image_url"`
	Reviews     []seedReview `yaml:"reviews"`
}

type seedStore struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	OwnerID     string             `yaml:"owner_id"`
	Coordinates entity.Coordinates `yaml:"coordinates"`
	Address     string             `yaml:"address"`
	Items       []seedItem         `yaml:"items"`
	Reviews     []seedReview       `yaml:"reviews"`
}

type seedPublicService struct {
	ID          string             `yaml:"id"`
	OwnerID     string             `yaml:"owner_id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Coordinates entity.Coordinates `yaml:"coordinates"`
	Address     string             `yaml:"address"`
	Reviews     []seedReview       `yaml:"reviews"`
}

type seedComment struct {
	ID         string        `yaml:"id"`
	UserID     string        `yaml:"user_id"`
	UserName   string        `yaml:"user_name"`
	Text       string        `yaml:"text"`
	ImageURL   string        `yaml:"image_url"`
	ReplyingTo string        `yaml:"replying_to"`
	Ago        ago           `yaml:"ago"`
	Replies    []seedComment `yaml:"replies"`
}

type seedPost struct {
	ID          string        `yaml:"id"`
	UserID      string        `yaml:"user_id"`
	UserName    string        `yaml:"user_name"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Price       int64         `yaml:"price"`
	ImageURL    string        `yaml:"image_url"`
	Ago         ago           `yaml:"ago"`
	Likes       []string      `yaml:"likes"`
	Comments    []seedComment `yaml:"comments"`
}

type seedMessage struct {
	ID       string `yaml:"id"`
	SenderID string `yaml:"sender_id"`
	Text     string `yaml:"text"`
	Ago      ago    `yaml:"ago"`
	Status   string `yaml:"status"`
}

type seedChat struct {
	ID             string        `yaml:"id"`
	ParticipantIDs []string      `yaml:"participant_ids"`
	Messages       []seedMessage `yaml:"messages"`
}

type seedNotification struct {
	ID            string `yaml:"id"`
	RecipientID   string `yaml:"recipient_id"`
	Type          string `yaml:"type"`
	FromUserID    string `yaml:"from_user_id"`
	FromUserName  string `yaml:"from_user_name"`
	TargetSummary string `yaml:"target_summary"`
	Read          bool   `yaml:"read"`
	Ago           ago    `yaml:"ago"`
}

func (d seedDocument) toDataset(now time.Time) (entity.Dataset, error) {
	var (
		out entity.Dataset
		err error
	)

	out.Users = make([]entity.User, 0, len(d.Users))
	for _, u := range d.Users {
		user := entity.User{
			ID:                  u.ID,
			Name:                u.Name,
			Email:               u.Email,
			ProfilePictureURL:   u.ProfilePictureURL,
			PhoneNumber:         u.PhoneNumber,
			Address:             u.Address,
			Gender:              u.Gender,
			DateOfBirth:         u.DateOfBirth,
			Interests:           nonNil(u.Interests),
			SellerStatus:        entity.OnboardingStatus(u.SellerStatus).Normalize(),
			StoreID:             u.StoreID,
			PublicServiceStatus: entity.OnboardingStatus(u.PublicServiceStatus).Normalize(),
			PublicServiceID:     u.PublicServiceID,
			Followers:           nonNil(u.Followers),
			Following:           nonNil(u.Following),
		}
		if user.LastActive, err = u.LastActiveAgo.before(now); err != nil {
			return entity.Dataset{}, fmt.Errorf("user %s: %w", u.ID, err)
		}
		out.Users = append(out.Users, user)
	}

	out.Stores = make([]entity.Store, 0, len(d.Stores))
	for _, s := range d.Stores {
		store := entity.Store{
			ID:          s.ID,
			Name:        s.Name,
			OwnerID:     s.OwnerID,
			Coordinates: s.Coordinates,
			Address:     s.Address,
			Items:       make([]entity.Item, 0, len(s.Items)),
		}
		for _, it := range s.Items {
			item := entity.Item{
				ID:          it.ID,
				StoreID:     s.ID,
				Name:        it.Name,
				Description: it.Description,
				Price:       it.Price,
				Category:    entity.ItemCategory(it.Category),
				ImageURL:    it.ImageURL,
			}
			if item.Reviews, err = toReviews(it.Reviews, now); err != nil {
				return entity.Dataset{}, fmt.Errorf("item %s: %w", it.ID, err)
			}
			store.Items = append(store.Items, item)
		}
		if store.Reviews, err = toReviews(s.Reviews, now); err != nil {
			return entity.Dataset{}, fmt.Errorf("store %s: %w", s.ID, err)
		}
		out.Stores = append(out.Stores, store)
	}

	out.PublicServices = make([]entity.PublicService, 0, len(d.PublicServices))
	for _, p := range d.PublicServices {
		ps := entity.PublicService{
			ID:          p.ID,
			OwnerID:     p.OwnerID,
			Name:        p.Name,
			Type:        p.Type,
			Coordinates: p.Coordinates,
			Address:     p.Address,
		}
		if ps.OwnerID == "" {
			ps.OwnerID = entity.SystemOwner
		}
		if ps.Reviews, err = toReviews(p.Reviews, now); err != nil {
			return entity.Dataset{}, fmt.Errorf("public service %s: %w", p.ID, err)
		}
		out.PublicServices = append(out.PublicServices, ps)
	}

	out.CommunityPosts = make([]entity.CommunityPost, 0, len(d.CommunityPosts))
	for _, p := range d.CommunityPosts {
		post := entity.CommunityPost{
			ID:          p.ID,
			UserID:      p.UserID,
			UserName:    p.UserName,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Likes:       nonNil(p.Likes),
		}
		if post.Timestamp, err = p.Ago.before(now); err != nil {
			return entity.Dataset{}, fmt.Errorf("post %s: %w", p.ID, err)
		}
		if post.Comments, err = toComments(p.Comments, now); err != nil {
			return entity.Dataset{}, fmt.Errorf("post %s: %w", p.ID, err)
		}
		if post.Comments == nil {
			post.Comments = []entity.CommunityPostComment{}
		}
		out.CommunityPosts = append(out.CommunityPosts, post)
	}

	out.Chats = make([]entity.ChatSession, 0, len(d.Chats))
	for _, c := range d.Chats {
		if len(c.ParticipantIDs) != 2 {
			return entity.Dataset{}, fmt.Errorf("chat %s: want 2 participants, got %d", c.ID, len(c.ParticipantIDs))
		}
		chat := entity.ChatSession{
			ID:             c.ID,
			ParticipantIDs: c.ParticipantIDs,
			Messages:       make([]entity.ChatMessage, 0, len(c.Messages)),
		}
		for _, m := range c.Messages {
			msg := entity.ChatMessage{
				ID:       m.ID,
				SenderID: m.SenderID,
				Text:     m.Text,
				Status:   entity.MessageStatus(m.Status),
			}
			if msg.Status == "" {
				msg.Status = entity.MessageSent
			}
			if msg.Timestamp, err = m.Ago.before(now); err != nil {
				return entity.Dataset{}, fmt.Errorf("message %s: %w", m.ID, err)
			}
			chat.Messages = append(chat.Messages, msg)
		}
		out.Chats = append(out.Chats, chat)
	}

	out.Notifications = make([]entity.Notification, 0, len(d.Notifications))
	for _, n := range d.Notifications {
		notif := entity.Notification{
			ID:            n.ID,
			RecipientID:   n.RecipientID,
			Type:          entity.NotificationType(n.Type),
			FromUserID:    n.FromUserID,
			FromUserName:  n.FromUserName,
			TargetSummary: n.TargetSummary,
			Read:          n.Read,
		}
		if notif.Timestamp, err = n.Ago.before(now); err != nil {
			return entity.Dataset{}, fmt.Errorf("notification %s: %w", n.ID, err)
		}
		out.Notifications = append(out.Notifications, notif)
	}

	return out, nil
}

func toReviews(in []seedReview, now time.Time) ([]entity.Review, error) {
	out := make([]entity.Review, 0, len(in))
	for _, r := range in {
		ts, err := r.Ago.before(now)
		if err != nil {
			return nil, fmt.Errorf("review %s: %w", r.ID, err)
		}
		out = append(out, entity.Review{
			ID:        r.ID,
			UserID:    r.UserID,
			UserName:  r.UserName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			Timestamp: ts,
		})
	}
	return out, nil
}

func toComments(in []seedComment, now time.Time) ([]entity.CommunityPostComment, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]entity.CommunityPostComment, 0, len(in))
	for _, c := range in {
		ts, err := c.Ago.before(now)
		if err != nil {
			return nil, fmt.Errorf("comment %s: %w", c.ID, err)
		}
		replies, err := toComments(c.Replies, now)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.CommunityPostComment{
			ID:         c.ID,
			UserID:     c.UserID,
			UserName:   c.UserName,
			Text:       c.Text,
			ImageURL:   c.ImageURL,
			ReplyingTo: c.ReplyingTo,
			Timestamp:  ts,
			Replies:    replies,
		})
	}
	return out, nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
