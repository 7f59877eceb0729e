package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnify_backend/internals/constants"
	meController "learnify_backend/internals/features/users/auth/controller"
	authMiddleware "learnify_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the role-agnostic identity endpoint under /api/auth.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := meController.NewMeController(db)

	auth := api.Group("/auth")
	auth.Get("/me", authMiddleware.AuthRequired(constants.AllRoles...), ctrl.GetCurrentUser)
}
