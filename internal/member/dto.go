package member

import (
	"time"

	"github.com/cokeke26/fenats/internal/model"
)

type SaveMemberRequest struct {
	Rut       string       `json:"rut" binding:"required,rut"`
	Name      string       `json:"name" binding:"required,min=1,max=200"`
	Affiliate string       `json:"affiliate" binding:"max=200"`
	Gender    model.Gender `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
}

type UpdateMemberRequest struct {
	Name      string       `json:"name" binding:"required,min=1,max=200"`
	Affiliate string       `json:"affiliate" binding:"max=200"`
	Gender    model.Gender `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
}

type UpdateStatusRequest struct {
	Status model.MemberStatus `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}

type ListMembersQuery struct {
	Q      string             `form:"q" binding:"max=100"`
	Status model.MemberStatus `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Page   int                `form:"page" binding:"omitempty,min=1"`
	Size   int                `form:"size" binding:"omitempty,min=1,max=200"`
}

type LookupQuery struct {
	Rut string `form:"rut" binding:"required,rut"`
}

type MemberResponse struct {
	ID           uint32             `json:"id"`
	Rut          string             `json:"rut"`
	RutDisplay   string             `json:"rutDisplay"`
	Name         string             `json:"name"`
	Affiliate    string             `json:"affiliate,omitempty"`
	Gender       model.Gender       `json:"gender,omitempty"`
	Status       model.MemberStatus `json:"status"`
	Token        string             `json:"token"`
	VerifyURL    string             `json:"verifyUrl"`
	ImportSource string             `json:"importSource,omitempty"`
	ImportedAt   *time.Time         `json:"importedAt,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type ListMembersResponse struct {
	Items []MemberResponse `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}
