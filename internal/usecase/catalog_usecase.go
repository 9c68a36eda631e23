package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"mados/internal/appstate"
	"mados/internal/domain/entity"
	"mados/pkg/errors"
)

// CatalogUseCase covers the store pages and the seller dashboard.
type CatalogUseCase struct {
	state *appstate.State
}

func NewCatalogUseCase(state *appstate.State) *CatalogUseCase {
	return &CatalogUseCase{state: state}
}

type ItemInput struct {
	Name        string
	Description string
	Price       int64
	Category    entity.ItemCategory
	ImageURL    string
}

type StoreDetail struct {
	Store         entity.Store `json:"store"`
	Owner         *entity.User `json:"owner,omitempty"`
	AverageRating float64      `json:"average_rating"`
	ReviewCount   int          `json:"review_count"`
}

type ItemDetail struct {
	Item          entity.Item `json:"item"`
	StoreID       string      `json:"store_id"`
	StoreName     string      `json:"store_name"`
	StoreOwnerID  string      `json:"store_owner_id"`
	AverageRating float64     `json:"average_rating"`
}

func (uc *CatalogUseCase) ListStores(ctx context.Context) []entity.Store {
	return uc.state.Stores()
}

func (uc *CatalogUseCase) StoreDetail(ctx context.Context, storeID string) (*StoreDetail, error) {
	store, ok := uc.state.Store(storeID)
	if !ok {
		return nil, errors.NotFound("Store", nil)
	}

	detail := &StoreDetail{
		Store:         store,
		AverageRating: AverageRating(store.Reviews),
		ReviewCount:   len(store.Reviews),
	}
	if owner, ok := uc.state.User(store.OwnerID); ok {
		detail.Owner = &owner
	}
	return detail, nil
}

func (uc *CatalogUseCase) ItemDetail(ctx context.Context, storeID, itemID string) (*ItemDetail, error) {
	store, ok := uc.state.Store(storeID)
	if !ok {
		return nil, errors.NotFound("Store", nil)
	}
	item, ok := store.FindItem(itemID)
	if !ok {
		return nil, errors.NotFound("Item", nil)
	}
	return &ItemDetail{
		Item:          item,
		StoreID:       store.ID,
		StoreName:     store.Name,
		StoreOwnerID:  store.OwnerID,
		AverageRating: AverageRating(item.Reviews),
	}, nil
}

// MyStore returns the store of an approved seller.
func (uc *CatalogUseCase) MyStore(ctx context.Context, userID string) (*entity.Store, error) {
	store, err := uc.ownedStore(userID)
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (uc *CatalogUseCase) AddItem(ctx context.Context, userID string, input ItemInput) (*entity.Item, error) {
	store, err := uc.ownedStore(userID)
	if err != nil {
		return nil, err
	}
	if err := validateItem(input, "Gambar produk harus diupload."); err != nil {
		return nil, err
	}

	item := entity.Item{
		ID:          "item-" + uuid.NewString(),
		StoreID:     store.ID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Reviews:     []entity.Review{},
	}
	uc.state.AddItemToStore(store.ID, item)
	return &item, nil
}

// UpdateItem replaces the editable fields and keeps the reviews.
func (uc *CatalogUseCase) UpdateItem(ctx context.Context, userID, itemID string, input ItemInput) (*entity.Item, error) {
	store, err := uc.ownedStore(userID)
	if err != nil {
		return nil, err
	}
	existing, ok := store.FindItem(itemID)
	if !ok {
		return nil, errors.NotFound("Item", nil)
	}
	if err := validateItem(input, "Gambar produk tidak boleh kosong."); err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Description = strings.TrimSpace(input.Description)
	existing.Price = input.Price
	existing.Category = input.Category
	existing.ImageURL = input.ImageURL

	uc.state.UpdateItemInStore(store.ID, existing)
	return &existing, nil
}

func (uc *CatalogUseCase) DeleteItem(ctx context.Context, userID, itemID string) error {
	store, err := uc.ownedStore(userID)
	if err != nil {
		return err
	}
	if _, ok := store.FindItem(itemID); !ok {
		return errors.NotFound("Item", nil)
	}
	uc.state.DeleteItemFromStore(store.ID, itemID)
	return nil
}

func (uc *CatalogUseCase) ownedStore(userID string) (entity.Store, error) {
	_, me, err := currentSession(uc.state, userID)
	if err != nil {
		return entity.Store{}, err
	}
	if me.SellerStatus.Normalize() != entity.OnboardingApproved || me.StoreID == "" {
		return entity.Store{}, errors.Forbidden("Hanya penjual terverifikasi yang bisa mengelola toko.", nil)
	}
	store, ok := uc.state.Store(me.StoreID)
	if !ok {
		return entity.Store{}, errors.NotFound("Store", nil)
	}
	if store.OwnerID != me.ID {
		return entity.Store{}, errors.Forbidden("Toko ini bukan milik Anda.", nil)
	}
	return store, nil
}

func validateItem(input ItemInput, missingImage string) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.Validation("Nama produk harus diisi.")
	}
	if input.Price < 0 {
		return errors.Validation("Harga tidak boleh negatif.")
	}
	if input.Category != entity.CategoryGood && input.Category != entity.CategoryService {
		return errors.Validation("Kategori harus good atau service.")
	}
	if input.ImageURL == "" {
		return errors.Validation(missingImage)
	}
	return nil
}

// AverageRating is 0 for no reviews.
func AverageRating(reviews []entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews))
}
