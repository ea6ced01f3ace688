package verify

import "github.com/cokeke26/fenats/internal/model"

// VerificationResponse is what anyone scanning a member QR code sees.
// Name and RUT are masked.
type VerificationResponse struct {
	Valid     bool               `json:"valid"`
	Status    model.MemberStatus `json:"status"`
	Name      string             `json:"name"`
	Rut       string             `json:"rut"`
	Affiliate string             `json:"affiliate,omitempty"`
}
