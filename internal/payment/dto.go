// AngelaMos | 2026
// dto.go

package payment

type RecordPaymentRequest struct {
	UserEmail    string  `json:"userEmail"    validate:"required,email,max=255"`
	FloorNo      int     `json:"floorNo"      validate:"gte=0"`
	BlockName    string  `json:"blockName"    validate:"required,max=50"`
	ApartmentNo  int     `json:"apartmentNo"  validate:"gte=0"`
	OriginalRent float64 `json:"originalRent" validate:"gte=0"`
	FinalRent    float64 `json:"finalRent"    validate:"gte=0"`
	Discount     float64 `json:"discount"     validate:"gte=0"`
	Month        string  `json:"month"        validate:"required,max=32"`
}

type RecordPaymentResponse struct {
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
}

type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
