package entity

type Coordinates struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

type ItemCategory string

const (
	CategoryGood    ItemCategory = "good"
	CategoryService ItemCategory = "service"
)

type Item struct {
	ID          string       `json:"id" firestore:"id"`
	StoreID     string       `json:"store_id" firestore:"storeId"`
	Name        string       `json:"name" firestore:"name"`
	Description string       `json:"description" firestore:"description"`
	Price       int64        `json:"price" firestore:"price"`
	Category    ItemCategory `json:"category" firestore:"category"`
	ImageURL    string       `json:"image_url" firestore:"imageUrl"`
	Reviews     []Review     `json:"reviews" firestore:"reviews"`
}

func (i Item) Clone() Item {
	i.Reviews = cloneReviews(i.Reviews)
	return i
}

// Store is a seller's shop. Items keep insertion order, reviews are newest first.
type Store struct {
	ID          string      `json:"id" firestore:"id"`
	Name        string      `json:"name" firestore:"name"`
	OwnerID     string      `json:"owner_id" firestore:"ownerId"`
	Coordinates Coordinates `json:"coordinates" firestore:"coordinates"`
	Address     string      `json:"address" firestore:"address"`
	Items       []Item      `json:"items" firestore:"items"`
	Reviews     []Review    `json:"reviews" firestore:"reviews"`
}

func (s Store) Clone() Store {
	if s.Items != nil {
		items := make([]Item, len(s.Items))
		for i, item := range s.Items {
			items[i] = item.Clone()
		}
		s.Items = items
	}
	s.Reviews = cloneReviews(s.Reviews)
	return s
}

func (s Store) FindItem(itemID string) (Item, bool) {
	for _, item := range s.Items {
		if item.ID == itemID {
			return item.Clone(), true
		}
	}
	return Item{}, false
}
