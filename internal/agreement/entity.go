// AngelaMos | 2026
// entity.go

package agreement

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "agreements"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type Agreement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"       json:"_id"`
	UserName    string             `bson:"userName"            json:"userName"`
	UserEmail   string             `bson:"userEmail"           json:"userEmail"`
	FloorNo     int                `bson:"floorNo"             json:"floorNo"`
	BlockName   string             `bson:"blockName"           json:"blockName"`
	ApartmentNo int                `bson:"apartmentNo"         json:"apartmentNo"`
	Rent        float64            `bson:"rent"                json:"rent"`
	Status      string             `bson:"status"              json:"status"`
	CreatedAt   time.Time          `bson:"createdAt"           json:"createdAt"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (a *Agreement) IsPending() bool {
	return a.Status == StatusPending
}

// CanTransition reports whether an agreement in status from may be moved to
// status to. Pending moves to either terminal status; re-sending the current
// terminal status is allowed so a failed follow-up step can be replayed.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusAccepted || to == StatusRejected
	case StatusAccepted, StatusRejected:
		return from == to
	}
	return false
}
