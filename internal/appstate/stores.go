package appstate

import (
	"mados/internal/domain/entity"
)

// AddStore appends the store. Ids are assumed unique.
func (s *State) AddStore(store entity.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores = appendTo(s.stores, store.Clone())
}

func (s *State) AddItemToStore(storeID string, item entity.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := item.Clone()
	s.updateStoreLocked(storeID, func(st entity.Store) entity.Store {
		st.Items = appendTo(st.Items, added)
		return st
	})
}

// UpdateItemInStore replaces the item with the same id inside the store.
func (s *State) UpdateItemInStore(storeID string, item entity.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := item.Clone()
	s.updateStoreLocked(storeID, func(st entity.Store) entity.Store {
		i := indexOf(st.Items, func(it entity.Item) bool { return it.ID == item.ID })
		if i >= 0 {
			st.Items = replaceAt(st.Items, i, updated)
		}
		return st
	})
}

func (s *State) DeleteItemFromStore(storeID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateStoreLocked(storeID, func(st entity.Store) entity.Store {
		st.Items, _ = removeWhere(st.Items, func(it entity.Item) bool { return it.ID == itemID })
		return st
	})
}

// AddReviewToStore prepends the review and reports whether it was stored. A
// second review by the same user on the same store is dropped.
func (s *State) AddReviewToStore(storeID string, review entity.Review) (added bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateStoreLocked(storeID, func(st entity.Store) entity.Store {
		if !entity.HasReviewFrom(st.Reviews, review.UserID) {
			st.Reviews = prependTo(st.Reviews, review)
			added = true
		}
		return st
	})
	return added
}

func (s *State) AddReviewToItem(storeID, itemID string, review entity.Review) (added bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateStoreLocked(storeID, func(st entity.Store) entity.Store {
		i := indexOf(st.Items, func(it entity.Item) bool { return it.ID == itemID })
		if i < 0 || entity.HasReviewFrom(st.Items[i].Reviews, review.UserID) {
			return st
		}
		item := st.Items[i]
		item.Reviews = prependTo(item.Reviews, review)
		st.Items = replaceAt(st.Items, i, item)
		added = true
		return st
	})
	return added
}

func (s *State) updateStoreLocked(id string, update func(entity.Store) entity.Store) bool {
	i := indexOf(s.stores, func(st entity.Store) bool { return st.ID == id })
	if i < 0 {
		return false
	}
	s.stores = replaceAt(s.stores, i, update(s.stores[i].Clone()))
	return true
}
