package entity

import (
	"time"
)

type OnboardingStatus string

const (
	OnboardingNone     OnboardingStatus = "none"
	OnboardingPending  OnboardingStatus = "pending"
	OnboardingApproved OnboardingStatus = "approved"
)

// Normalize treats the zero value as none, so users created before the
// public service flow existed read consistently.
func (s OnboardingStatus) Normalize() OnboardingStatus {
	if s == "" {
		return OnboardingNone
	}
	return s
}

var Genders = []string{"Laki-laki", "Perempuan", "Lainnya"}

var InterestCategories = []string{
	"Kuliner", "Fashion", "Elektronik", "Kecantikan", "Perabotan",
	"Buku & Hobi", "Olahraga", "Otomotif", "Kesehatan", "Jasa",
}

type User struct {
	ID                string `json:"id" firestore:"id"`
	Name              string `json:"name" firestore:"name"`
	Email             string `json:"email" firestore:"email"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty" firestore:"profilePictureUrl,omitempty"`
	PhoneNumber       string `json:"phone_number,omitempty" firestore:"phoneNumber,omitempty"`
	Address           string `json:"address,omitempty" firestore:"address,omitempty"`
	Gender            string `json:"gender,omitempty" firestore:"gender,omitempty"`
	DateOfBirth       string `json:"date_of_birth,omitempty" firestore:"dateOfBirth,omitempty"` // YYYY-MM-DD

	Interests []string `json:"interests" firestore:"interests"`

	SellerStatus        OnboardingStatus `json:"seller_status" firestore:"sellerStatus"`
	StoreID             string           `json:"store_id,omitempty" firestore:"storeId,omitempty"`
	PublicServiceStatus OnboardingStatus `json:"public_service_status" firestore:"publicServiceStatus"`
	PublicServiceID     string           `json:"public_service_id,omitempty" firestore:"publicServiceId,omitempty"`

	Followers  []string  `json:"followers" firestore:"followers"`
	Following  []string  `json:"following" firestore:"following"`
	LastActive time.Time `json:"last_active" firestore:"lastActive"`
}

func (u User) IsFollowing(userID string) bool {
	return containsID(u.Following, userID)
}

func (u User) Clone() User {
	u.Interests = cloneStrings(u.Interests)
	u.Followers = cloneStrings(u.Followers)
	u.Following = cloneStrings(u.Following)
	return u
}
