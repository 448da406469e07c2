// AngelaMos | 2026
// dto.go

package agreement

type CreateAgreementRequest struct {
	UserName    string  `json:"userName"    validate:"required,max=100"`
	UserEmail   string  `json:"userEmail"   validate:"required,email,max=255"`
	FloorNo     int     `json:"floorNo"     validate:"gte=0"`
	BlockName   string  `json:"blockName"   validate:"required,max=50"`
	ApartmentNo int     `json:"apartmentNo" validate:"gte=0"`
	Rent        float64 `json:"rent"        validate:"gt=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
	Role   string `json:"role"   validate:"omitempty,oneof=user member admin"`
}

type CreateAgreementResponse struct {
	Message     string `json:"message"`
	AgreementID string `json:"agreementId"`
}

type UpdateStatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
