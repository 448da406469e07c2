// AngelaMos | 2026
// entity.go

package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "payments"

// Payment is an append-only record of a rent payment. FinalRent is stored as
// submitted; it is not recomputed from OriginalRent and Discount.
type Payment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserEmail    string             `bson:"userEmail"     json:"userEmail"`
	FloorNo      int                `bson:"floorNo"       json:"floorNo"`
	BlockName    string             `bson:"blockName"     json:"blockName"`
	ApartmentNo  int                `bson:"apartmentNo"   json:"apartmentNo"`
	OriginalRent float64            `bson:"originalRent"  json:"originalRent"`
	FinalRent    float64            `bson:"finalRent"     json:"finalRent"`
	Discount     float64            `bson:"discount"      json:"discount"`
	Month        string             `bson:"month"         json:"month"`
	PaymentDate  time.Time          `bson:"paymentDate"   json:"paymentDate"`
}
