package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnify_backend/internals/constants"
	"learnify_backend/internals/features/users/admins/dto"
	"learnify_backend/internals/features/users/admins/model"
	authService "learnify_backend/internals/features/users/auth/service"
	helpers "learnify_backend/internals/helpers"
)

var validateAdmin = validator.New()

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// =============================
// ➕ Register Admin
// =============================
func (ctrl *AdminController) Register(c *fiber.Ctx) error {
	var body dto.RegisterAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var existing model.AdminModel
	if err := ctrl.DB.First(&existing, "admin_email = ?", body.AdminEmail).Error; err == nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	hash, err := authService.HashPassword(body.AdminPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	admin := model.AdminModel{
		AdminName:     body.AdminName,
		AdminEmail:    body.AdminEmail,
		AdminPassword: hash,
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		if helpers.IsDuplicateKeyError(err) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email already exists")
		}
		log.Printf("[ERROR] create admin: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	token, err := authService.GenerateToken(admin.AdminID, constants.RoleAdmin, admin.AdminEmail)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	authService.SetAuthCookie(c, helpers.AdminTokenCookie, token)

	return helpers.JsonCreated(c, "Registration successful", fiber.Map{
		"token": token,
	})
}

// =============================
// 🔑 Login Admin
// =============================
func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var body dto.LoginAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "admin_email = ?", body.AdminEmail).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid credentials")
	}
	if !authService.CheckPassword(admin.AdminPassword, body.AdminPassword) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	token, err := authService.GenerateToken(admin.AdminID, constants.RoleAdmin, admin.AdminEmail)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	authService.SetAuthCookie(c, helpers.AdminTokenCookie, token)

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
	})
}

// =============================
// 🚪 Logout Admin
// =============================
func (ctrl *AdminController) Logout(c *fiber.Ctx) error {
	authService.ClearAuthCookie(c, helpers.AdminTokenCookie)
	return helpers.JsonOK(c, "Logged out", nil)
}

// =============================
// 👤 Current Admin
// =============================
func (ctrl *AdminController) Me(c *fiber.Ctx) error {
	return helpers.JsonOK(c, "ok", fiber.Map{
		"role":  c.Locals("userRole"),
		"email": c.Locals("user_email"),
	})
}
