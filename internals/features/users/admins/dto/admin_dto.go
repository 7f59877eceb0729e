package dto

// ============================
// Request DTO
// ============================

type RegisterAdminRequest struct {
	AdminName     string `json:"admin_name" validate:"required,min=2"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=6"`
}

type LoginAdminRequest struct {
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required"`
}
