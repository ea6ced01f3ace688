package admin

import "github.com/cokeke26/fenats/internal/model"

type CreateAdminRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=100"`
	Email    string          `json:"email" binding:"required,email,max=255"`
	Password string          `json:"password" binding:"required,min=8,max=72"`
	Role     model.AdminRole `json:"role" binding:"omitempty,oneof=ADMIN SUPERADMIN"`
}

type AdminResponse struct {
	ID    uint32          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  model.AdminRole `json:"role"`
}

func toResponse(a *model.Admin) *AdminResponse {
	return &AdminResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}
