// AngelaMos | 2026
// entity.go

package apartment

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "apartments"

type Apartment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"   json:"_id"             yaml:"-"`
	FloorNo     int                `bson:"floorNo"         json:"floorNo"         yaml:"floorNo"`
	BlockName   string             `bson:"blockName"       json:"blockName"       yaml:"blockName"`
	ApartmentNo int                `bson:"apartmentNo"     json:"apartmentNo"     yaml:"apartmentNo"`
	Rent        float64            `bson:"rent"            json:"rent"            yaml:"rent"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty" yaml:"image,omitempty"`
}
