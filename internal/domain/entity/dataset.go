package entity

import "time"

// Dataset is the full content of the application state. Seed sources produce
// one, State.Snapshot returns one.
type Dataset struct {
	Users          []User          `json:"users"`
	Stores         []Store         `json:"stores"`
	CommunityPosts []CommunityPost `json:"community_posts"`
	Chats          []ChatSession   `json:"chats"`
	Notifications  []Notification  `json:"notifications"`
	PublicServices []PublicService `json:"public_services"`
}

// SellerApplication is what a user submitted while their seller status is pending.
type SellerApplication struct {
	StoreName   string      `json:"store_name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

type PublicServiceApplication struct {
	ServiceName string      `json:"service_name"`
	ServiceType string      `json:"service_type"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
