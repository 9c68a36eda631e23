package entity

// SystemOwner owns public services that no registered user claimed.
const SystemOwner = "system"

var PublicServiceTypes = []string{
	"Kantor Pemerintahan", "Bank", "ATM", "SPBU", "PLN", "PDAM", "Minimarket",
	"Obyek Wisata", "Puskesmas", "Rumah Sakit", "Tempat Ibadah", "Transportasi", "Lainnya",
}

type PublicService struct {
	ID          string      `json:"id" firestore:"id"`
	OwnerID     string      `json:"owner_id" firestore:"ownerId"`
	Name        string      `json:"name" firestore:"name"`
	Type        string      `json:"type" firestore:"type"`
	Coordinates Coordinates `json:"coordinates" firestore:"coordinates"`
	Address     string      `json:"address" firestore:"address"`
	Reviews     []Review    `json:"reviews" firestore:"reviews"`
}

func (p PublicService) Clone() PublicService {
	p.Reviews = cloneReviews(p.Reviews)
	return p
}
