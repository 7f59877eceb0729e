package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnify_backend/internals/constants"
	adminModel "learnify_backend/internals/features/users/admins/model"
	studentModel "learnify_backend/internals/features/users/students/model"
	helpers "learnify_backend/internals/helpers"
)

type MeController struct {
	DB *gorm.DB
}

func NewMeController(db *gorm.DB) *MeController {
	return &MeController{DB: db}
}

// GetCurrentUser resolves the token identity against the matching table, so a
// token for a deleted account yields 404 rather than a ghost identity.
func (ctrl *MeController) GetCurrentUser(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	userID, _ := c.Locals("user_id").(string)

	switch role {
	case constants.RoleAdmin:
		var admin adminModel.AdminModel
		if err := ctrl.DB.First(&admin, "admin_id = ?", userID).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helpers.JsonOK(c, "ok", fiber.Map{
			"role":  constants.RoleAdmin,
			"email": admin.AdminEmail,
		})
	case constants.RoleStudent:
		var student studentModel.StudentModel
		if err := ctrl.DB.First(&student, "student_id = ?", userID).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helpers.JsonOK(c, "ok", fiber.Map{
			"role":  constants.RoleStudent,
			"email": student.StudentEmail,
		})
	}
	return helpers.JsonError(c, fiber.StatusForbidden, "Invalid role")
}
