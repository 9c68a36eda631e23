package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mados/internal/domain/entity"
	"mados/internal/domain/repository"
	"mados/pkg/logger"
)

const (
	usersCollection          = "users"
	storesCollection         = "stores"
	publicServicesCollection = "publicServices"
	communityPostsCollection = "communityPosts"
	chatsCollection          = "chats"
	notificationsCollection  = "notifications"
)

type firestoreSeedRepository struct {
	client *firestore.Client
}

// NewFirestoreSeedRepository reads the starting dataset from Firestore, one
// collection per entity kind. Nothing is ever written back.
func NewFirestoreSeedRepository(client *firestore.Client) repository.SeedRepository {
	return &firestoreSeedRepository{
		client: client,
	}
}

func (r *firestoreSeedRepository) Load(ctx context.Context) (entity.Dataset, error) {
	var ds entity.Dataset

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		ds.Users, err = readCollection(egCtx, r.client, usersCollection, func(u *entity.User) *string { return &u.ID })
		return err
	})
	eg.Go(func() (err error) {
		ds.Stores, err = readCollection(egCtx, r.client, storesCollection, func(st *entity.Store) *string { return &st.ID })
		return err
	})
	eg.Go(func() (err error) {
		ds.PublicServices, err = readCollection(egCtx, r.client, publicServicesCollection, func(ps *entity.PublicService) *string { return &ps.ID })
		return err
	})
	eg.Go(func() (err error) {
		ds.CommunityPosts, err = readCollection(egCtx, r.client, communityPostsCollection, func(p *entity.CommunityPost) *string { return &p.ID })
		return err
	})
	eg.Go(func() (err error) {
		ds.Chats, err = readCollection(egCtx, r.client, chatsCollection, func(c *entity.ChatSession) *string { return &c.ID })
		return err
	})
	eg.Go(func() (err error) {
		ds.Notifications, err = readCollection(egCtx, r.client, notificationsCollection, func(n *entity.Notification) *string { return &n.ID })
		return err
	})
	if err := eg.Wait(); err != nil {
		return entity.Dataset{}, err
	}

	for i := range ds.Users {
		ds.Users[i].SellerStatus = ds.Users[i].SellerStatus.Normalize()
		ds.Users[i].PublicServiceStatus = ds.Users[i].PublicServiceStatus.Normalize()
	}
	for i := range ds.Stores {
		for j := range ds.Stores[i].Items {
			ds.Stores[i].Items[j].StoreID = ds.Stores[i].ID
		}
	}

	logger.Info("Loaded seed from Firestore: %d users, %d stores, %d posts",
		len(ds.Users), len(ds.Stores), len(ds.CommunityPosts))

	return ds, nil
}

// readCollection decodes every document of name. A missing collection or
// database reads as empty. Documents without an id field take their
// document key as id.
func readCollection[T any](ctx context.Context, client *firestore.Client, name string, id func(*T) *string) ([]T, error) {
	iter := client.Collection(name).Documents(ctx)
	defer iter.Stop()

	out := make([]T, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.NotFound {
				logger.Warn("Firestore collection %s not found, starting empty", name)
				return out, nil
			}
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", name, doc.Ref.ID, err)
		}
		fillID(&v, id, doc.Ref.ID)
		out = append(out, v)
	}

	return out, nil
}

func fillID[T any](v *T, id func(*T) *string, docID string) {
	if p := id(v); *p == "" {
		*p = docID
	}
}
